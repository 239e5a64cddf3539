// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"slices"

	"github.com/gogpu/stateautomaton/graphic"
)

// DefaultFont is the font a fresh Recorder reports, as a canvas does.
const DefaultFont = "10px sans-serif"

// Recorder is a graphic.Surface that records commands instead of
// rasterizing. Path points are transformed into device space as they are
// added, the way a canvas does, so paths in a Recording need no transform.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	resources     *ResourcePool

	path  *Path
	state recorderState
	stack []recorderState
}

// recorderState is the part of the context that Save and Restore cover.
// The current path is not part of it.
type recorderState struct {
	lineWidth float64
	fill      graphic.Color
	stroke    graphic.Color
	font      string
	align     graphic.TextAlign
	baseline  graphic.Baseline
	dash      []float64
	transform Matrix
}

var (
	_ graphic.Surface = (*Recorder)(nil)
	_ graphic.Resizer = (*Recorder)(nil)
)

// NewRecorder returns a Recorder with canvas defaults: black fill and
// stroke, 1px lines, solid dash, start alignment, alphabetic baseline,
// identity transform.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:     width,
		height:    height,
		commands:  make([]Command, 0, 256),
		resources: NewResourcePool(),
		path:      NewPath(),
		state: recorderState{
			lineWidth: 1,
			fill:      graphic.Black,
			stroke:    graphic.Black,
			font:      DefaultFont,
			transform: Identity(),
		},
		stack: make([]recorderState, 0, 8),
	}
}

// FinishRecording returns the recorded commands as an immutable
// Recording. The Recorder must not be used afterwards.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:     r.width,
		height:    r.height,
		commands:  r.commands,
		resources: r.resources,
	}
}

// Commands returns the commands recorded so far.
func (r *Recorder) Commands() []Command { return r.commands }

// Resources returns the path pool of the Recorder.
func (r *Recorder) Resources() *ResourcePool { return r.resources }

func (r *Recorder) record(c Command) { r.commands = append(r.commands, c) }

// Width returns the surface width.
func (r *Recorder) Width() int { return r.width }

// Height returns the surface height.
func (r *Recorder) Height() int { return r.height }

// Resize changes the dimensions of the recording. Recorded commands are
// kept; they stay anchored at the top-left corner.
func (r *Recorder) Resize(width, height int) error {
	r.width, r.height = width, height
	return nil
}

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

// Save pushes the drawing state.
func (r *Recorder) Save() {
	s := r.state
	s.dash = slices.Clone(s.dash)
	r.stack = append(r.stack, s)
	r.record(SaveCommand{})
}

// Restore pops the drawing state. With an empty stack it is a no-op.
func (r *Recorder) Restore() {
	n := len(r.stack)
	if n == 0 {
		return
	}
	r.state = r.stack[n-1]
	r.stack = r.stack[:n-1]
	r.record(RestoreCommand{})
}

// Translate moves the origin.
func (r *Recorder) Translate(x, y float64) {
	r.state.transform = r.state.transform.Multiply(Translate(x, y))
	r.record(SetTransformCommand{Matrix: r.state.transform})
}

// Rotate turns the axes by angle radians.
func (r *Recorder) Rotate(angle float64) {
	r.state.transform = r.state.transform.Multiply(Rotate(angle))
	r.record(SetTransformCommand{Matrix: r.state.transform})
}

// Transform returns the current transform.
func (r *Recorder) Transform() Matrix { return r.state.transform }

func (r *Recorder) LineWidth() float64             { return r.state.lineWidth }
func (r *Recorder) FillColor() graphic.Color       { return r.state.fill }
func (r *Recorder) StrokeColor() graphic.Color     { return r.state.stroke }
func (r *Recorder) Font() string                   { return r.state.font }
func (r *Recorder) TextAlign() graphic.TextAlign   { return r.state.align }
func (r *Recorder) TextBaseline() graphic.Baseline { return r.state.baseline }

// LineDash returns a copy of the dash pattern.
func (r *Recorder) LineDash() []float64 { return slices.Clone(r.state.dash) }

// SetLineWidth sets the stroke width. Non-positive or non-finite widths
// are ignored, as on a canvas.
func (r *Recorder) SetLineWidth(w float64) {
	if !(w > 0) || !graphic.C(w, 0).Finite() {
		return
	}
	r.state.lineWidth = w
	r.record(SetLineWidthCommand{Width: w})
}

func (r *Recorder) SetFillColor(c graphic.Color) {
	r.state.fill = c
	r.record(SetFillColorCommand{Color: c})
}

func (r *Recorder) SetStrokeColor(c graphic.Color) {
	r.state.stroke = c
	r.record(SetStrokeColorCommand{Color: c})
}

func (r *Recorder) SetFont(font string) {
	r.state.font = font
	r.record(SetFontCommand{Font: font})
}

func (r *Recorder) SetTextAlign(a graphic.TextAlign) {
	r.state.align = a
	r.record(SetTextAlignCommand{Align: a})
}

func (r *Recorder) SetTextBaseline(b graphic.Baseline) {
	r.state.baseline = b
	r.record(SetTextBaselineCommand{Baseline: b})
}

// SetLineDash sets the dash pattern. A pattern with an odd number of
// segments is repeated to make it even, as on a canvas.
func (r *Recorder) SetLineDash(segments []float64) {
	d := slices.Clone(segments)
	if len(d)%2 == 1 {
		d = append(d, d...)
	}
	r.state.dash = d
	r.record(SetDashCommand{Pattern: slices.Clone(d)})
}

// --------------------------------------------------------------------------
// Path building
// --------------------------------------------------------------------------

func (r *Recorder) device(x, y float64) graphic.Coord {
	if m := r.Transform(); !m.IsIdentity() {
		return m.Apply(graphic.C(x, y))
	}
	return graphic.C(x, y)
}

// BeginPath discards the current path.
func (r *Recorder) BeginPath() { r.path.Reset() }

func (r *Recorder) MoveTo(x, y float64) { r.path.add(MoveTo{P: r.device(x, y)}) }
func (r *Recorder) LineTo(x, y float64) { r.path.add(LineTo{P: r.device(x, y)}) }

func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.path.add(CubicTo{C1: r.device(c1x, c1y), C2: r.device(c2x, c2y), P: r.device(x, y)})
}

// Arc adds a circular arc. The center is transformed and the angles are
// turned by the rotation of the current transform.
func (r *Recorder) Arc(x, y, radius, startAngle, endAngle float64, ccw bool) {
	rot := r.Transform().Angle()
	r.path.add(ArcTo{
		Center:           r.device(x, y),
		Radius:           radius,
		Start:            startAngle + rot,
		End:              endAngle + rot,
		CounterClockwise: ccw,
	})
}

func (r *Recorder) ClosePath() { r.path.add(Close{}) }

// --------------------------------------------------------------------------
// Painting
// --------------------------------------------------------------------------

// Stroke records the current path with the current stroke state. An empty
// path records nothing.
func (r *Recorder) Stroke() error {
	if r.path.Len() == 0 {
		return nil
	}
	r.record(StrokePathCommand{
		Path: r.resources.AddPath(r.path),
		Stroke: Stroke{
			Width: r.state.lineWidth,
			Color: r.state.stroke,
			Dash:  slices.Clone(r.state.dash),
		},
	})
	return nil
}

// Fill records the current path with the current fill color. An empty
// path records nothing.
func (r *Recorder) Fill() error {
	if r.path.Len() == 0 {
		return nil
	}
	r.record(FillPathCommand{Path: r.resources.AddPath(r.path), Color: r.state.fill})
	return nil
}

// FillText records a text run at the transformed anchor.
func (r *Recorder) FillText(s string, x, y float64) error {
	p := r.device(x, y)
	r.record(FillTextCommand{TextRun{
		Text:     s,
		X:        p.X,
		Y:        p.Y,
		Font:     r.state.font,
		Align:    r.state.align,
		Baseline: r.state.baseline,
		Color:    r.state.fill,
	}})
	return nil
}

// MeasureText returns the advance width of s in the current font.
func (r *Recorder) MeasureText(s string) float64 {
	return measureText(r.state.font, s)
}

// ClearRect records clearing a rectangle. Only the translation of the
// current transform applies to it.
func (r *Recorder) ClearRect(x, y, w, h float64) {
	p := r.device(x, y)
	r.record(ClearRectCommand{Rect: Rect{X: p.X, Y: p.Y, W: w, H: h}})
}

// --------------------------------------------------------------------------
// Recording
// --------------------------------------------------------------------------

// Recording is an immutable list of commands that can be replayed to any
// Backend.
type Recording struct {
	width, height int
	commands      []Command
	resources     *ResourcePool
}

// Width returns the width of the recorded surface.
func (r *Recording) Width() int { return r.width }

// Height returns the height of the recorded surface.
func (r *Recording) Height() int { return r.height }

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command { return r.commands }

// Resources returns the path pool.
func (r *Recording) Resources() *ResourcePool { return r.resources }

// Playback replays the paint commands to b. State and attribute commands
// are skipped: every paint command already carries its state.
func (r *Recording) Playback(b Backend) error {
	if err := b.Begin(r.width, r.height); err != nil {
		return err
	}
	graphic.Logger().Debug("recording: playback", "commands", len(r.commands), "paths", r.resources.PathCount())
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case StrokePathCommand:
			b.StrokePath(r.resources.GetPath(c.Path), c.Stroke)
		case FillPathCommand:
			b.FillPath(r.resources.GetPath(c.Path), c.Color)
		case FillTextCommand:
			b.FillText(c.TextRun)
		case ClearRectCommand:
			b.ClearRect(c.Rect)
		}
	}
	return b.End()
}
