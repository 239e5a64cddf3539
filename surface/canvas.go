// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"errors"
	"fmt"
	"image"
	"io"
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/stateautomaton/graphic"
)

// DefaultFont is the font a fresh Canvas reports.
const DefaultFont = "10px sans-serif"

// ErrInvalidSize is returned for non-positive canvas dimensions.
var ErrInvalidSize = errors.New("surface: invalid size")

// Canvas is a graphic.Surface that rasterizes immediately with gg.
//
// The gg context is kept at the identity transform: Canvas tracks its own
// transform and attribute stack and hands device-space geometry to gg, so
// the image can be reallocated on Resize without losing drawing state.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	ctx           *gg.Context
	width, height int

	source     *text.FontSource
	faces      map[float64]text.Face
	background graphic.Color

	state canvasState
	stack []canvasState
}

type canvasState struct {
	lineWidth float64
	fill      graphic.Color
	stroke    graphic.Color
	font      string
	align     graphic.TextAlign
	baseline  graphic.Baseline
	dash      []float64
	matrix    gg.Matrix
}

var (
	_ graphic.Surface = (*Canvas)(nil)
	_ graphic.Resizer = (*Canvas)(nil)
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithFontSource sets the font used for all text. The default is Go
// Regular.
func WithFontSource(src *text.FontSource) Option {
	return func(c *Canvas) {
		if src != nil {
			c.source = src
		}
	}
}

// WithBackground sets the color ClearRect paints. The default is
// transparent, as on an HTML canvas.
func WithBackground(col graphic.Color) Option {
	return func(c *Canvas) {
		c.background = col
	}
}

// NewCanvas returns a width × height canvas cleared to its background.
func NewCanvas(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	c := &Canvas{
		ctx:    gg.NewContext(width, height),
		width:  width,
		height: height,
		faces:  make(map[float64]text.Face),
		state: canvasState{
			lineWidth: 1,
			fill:      graphic.Black,
			stroke:    graphic.Black,
			font:      DefaultFont,
			matrix:    gg.Identity(),
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.source == nil {
		src, err := text.NewFontSource(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("surface: load default font: %w", err)
		}
		c.source = src
	}
	c.ClearRect(0, 0, float64(width), float64(height))
	return c, nil
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Resize changes the canvas dimensions. Existing pixels are kept anchored
// at the top-left corner and new area is cleared to the background. The
// drawing state survives; the current path does not.
func (c *Canvas) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if width == c.width && height == c.height {
		return nil
	}
	old := c.ctx.Image()
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.Draw(dst, dst.Bounds(), image.NewUniform(c.background.Std()), image.Point{}, xdraw.Src)
	xdraw.Draw(dst, old.Bounds(), old, old.Bounds().Min, xdraw.Src)

	_ = c.ctx.Close()
	c.ctx = gg.NewContextForImage(dst)
	c.width, c.height = width, height
	graphic.Logger().Debug("surface: canvas resized", "width", width, "height", height)
	return nil
}

// Image returns a snapshot of the canvas.
func (c *Canvas) Image() image.Image { return c.ctx.Image() }

// EncodePNG writes the canvas as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error { return c.ctx.EncodePNG(w) }

// SavePNG writes the canvas to a PNG file.
func (c *Canvas) SavePNG(path string) error { return c.ctx.SavePNG(path) }

// Close releases the gg context.
func (c *Canvas) Close() error { return c.ctx.Close() }

// --------------------------------------------------------------------------
// State
// --------------------------------------------------------------------------

func (c *Canvas) Save() {
	s := c.state
	s.dash = slices.Clone(s.dash)
	c.stack = append(c.stack, s)
}

func (c *Canvas) Restore() {
	n := len(c.stack)
	if n == 0 {
		return
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
}

func (c *Canvas) Translate(x, y float64) {
	c.state.matrix = c.state.matrix.Multiply(gg.Translate(x, y))
}

func (c *Canvas) Rotate(angle float64) {
	c.state.matrix = c.state.matrix.Multiply(gg.Rotate(angle))
}

func (c *Canvas) LineWidth() float64             { return c.state.lineWidth }
func (c *Canvas) FillColor() graphic.Color       { return c.state.fill }
func (c *Canvas) StrokeColor() graphic.Color     { return c.state.stroke }
func (c *Canvas) Font() string                   { return c.state.font }
func (c *Canvas) TextAlign() graphic.TextAlign   { return c.state.align }
func (c *Canvas) TextBaseline() graphic.Baseline { return c.state.baseline }
func (c *Canvas) LineDash() []float64            { return slices.Clone(c.state.dash) }

// SetLineWidth ignores non-positive and non-finite widths.
func (c *Canvas) SetLineWidth(w float64) {
	if w > 0 && !math.IsInf(w, 1) {
		c.state.lineWidth = w
	}
}

func (c *Canvas) SetFillColor(col graphic.Color)     { c.state.fill = col }
func (c *Canvas) SetStrokeColor(col graphic.Color)   { c.state.stroke = col }
func (c *Canvas) SetFont(font string)                { c.state.font = font }
func (c *Canvas) SetTextAlign(a graphic.TextAlign)   { c.state.align = a }
func (c *Canvas) SetTextBaseline(b graphic.Baseline) { c.state.baseline = b }

// SetLineDash sets the dash pattern; odd patterns are doubled.
func (c *Canvas) SetLineDash(segments []float64) {
	d := slices.Clone(segments)
	if len(d)%2 == 1 {
		d = append(d, d...)
	}
	c.state.dash = d
}

// --------------------------------------------------------------------------
// Path
// --------------------------------------------------------------------------

func (c *Canvas) device(x, y float64) gg.Point {
	return c.state.matrix.TransformPoint(gg.Pt(x, y))
}

func (c *Canvas) BeginPath() { c.ctx.ClearPath() }

func (c *Canvas) MoveTo(x, y float64) {
	p := c.device(x, y)
	c.ctx.MoveTo(p.X, p.Y)
}

func (c *Canvas) LineTo(x, y float64) {
	p := c.device(x, y)
	c.ctx.LineTo(p.X, p.Y)
}

func (c *Canvas) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p1, p2, p := c.device(c1x, c1y), c.device(c2x, c2y), c.device(x, y)
	c.ctx.CubicTo(p1.X, p1.Y, p2.X, p2.Y, p.X, p.Y)
}

// Arc adds a circular arc, joined to the current point by a straight line
// as on an HTML canvas. Angles 2π or more apart give a full circle in
// either direction.
func (c *Canvas) Arc(x, y, radius, startAngle, endAngle float64, ccw bool) {
	center := c.device(x, y)
	rot := math.Atan2(c.state.matrix.D, c.state.matrix.A)
	a0, a1 := startAngle+rot, endAngle+rot
	at := func(a float64) gg.Point {
		return gg.Pt(center.X+radius*math.Cos(a), center.Y+radius*math.Sin(a))
	}

	start := at(a0)
	if _, _, ok := c.ctx.GetCurrentPoint(); ok {
		c.ctx.LineTo(start.X, start.Y)
	} else {
		c.ctx.MoveTo(start.X, start.Y)
	}

	const full = 2 * math.Pi
	switch {
	case math.Abs(a1-a0) >= full:
		c.ctx.DrawArc(center.X, center.Y, radius, a0, a0+full)
	case ccw:
		// gg only sweeps with increasing angle, so the decreasing sweep
		// is traced here as cubics continuing from the start point.
		sweep := math.Mod(a0-a1, full)
		if sweep < 0 {
			sweep += full
		}
		n := math.Ceil(sweep / (math.Pi / 2))
		step := -sweep / n
		k := 4.0 / 3 * math.Tan(step/4) * radius
		for i := 0.0; i < n; i++ {
			a, b := a0+i*step, a0+(i+1)*step
			p, q := at(a), at(b)
			c.ctx.CubicTo(
				p.X-k*math.Sin(a), p.Y+k*math.Cos(a),
				q.X+k*math.Sin(b), q.Y-k*math.Cos(b),
				q.X, q.Y,
			)
		}
	default:
		c.ctx.DrawArc(center.X, center.Y, radius, a0, a1)
	}
}

func (c *Canvas) ClosePath() { c.ctx.ClosePath() }

// --------------------------------------------------------------------------
// Painting
// --------------------------------------------------------------------------

func rgba(col graphic.Color) gg.RGBA {
	return gg.RGBA2(col.R, col.G, col.B, col.A)
}

// Stroke strokes the current path. The path is kept, as on an HTML canvas.
func (c *Canvas) Stroke() error {
	c.ctx.SetStrokeBrush(gg.Solid(rgba(c.state.stroke)))
	c.ctx.SetLineWidth(c.state.lineWidth)
	if len(c.state.dash) > 0 {
		c.ctx.SetDash(c.state.dash...)
	} else {
		c.ctx.ClearDash()
	}
	return c.ctx.StrokePreserve()
}

// Fill fills the current path with the nonzero rule. The path is kept.
func (c *Canvas) Fill() error {
	c.ctx.SetFillBrush(gg.Solid(rgba(c.state.fill)))
	c.ctx.SetFillRule(gg.FillRuleNonZero)
	return c.ctx.FillPreserve()
}

// face returns the gg face for the current font, falling back to the
// default size when the font does not parse.
func (c *Canvas) face() text.Face {
	spec, err := graphic.ParseFont(c.state.font)
	if err != nil {
		spec, _ = graphic.ParseFont(graphic.DefaultFont)
	}
	if f, ok := c.faces[spec.Size]; ok {
		return f
	}
	f := c.source.Face(spec.Size)
	c.faces[spec.Size] = f
	return f
}

// FillText draws s anchored at (x, y) according to the text alignment and
// baseline. Glyphs are not rotated by the current transform.
func (c *Canvas) FillText(s string, x, y float64) error {
	if s == "" {
		return nil
	}
	face := c.face()
	p := c.device(x, y)
	p.X -= textOffset(c.state.align, face.Advance(s))
	p.Y += baselineOffset(c.state.baseline, face.Metrics())

	c.ctx.SetFont(face)
	c.ctx.SetFillBrush(gg.Solid(rgba(c.state.fill)))
	c.ctx.DrawString(s, p.X, p.Y)
	return nil
}

// MeasureText returns the advance width of s in the current font.
func (c *Canvas) MeasureText(s string) float64 {
	return c.face().Advance(s)
}

// textOffset returns how far left of the anchor a run of the given width
// starts.
func textOffset(a graphic.TextAlign, width float64) float64 {
	switch a {
	case graphic.AlignCenter:
		return width / 2
	case graphic.AlignRight:
		return width
	default:
		return 0
	}
}

// baselineOffset returns the distance from the anchor down to the
// alphabetic baseline.
func baselineOffset(b graphic.Baseline, m text.Metrics) float64 {
	switch b {
	case graphic.BaselineTop:
		return m.Ascent
	case graphic.BaselineMiddle:
		return (m.Ascent - m.Descent) / 2
	case graphic.BaselineBottom:
		return -m.Descent
	default:
		return 0
	}
}

// ClearRect resets a rectangle to the background color. Only the
// translation of the current transform applies. Clearing part of the
// canvas discards the current path.
func (c *Canvas) ClearRect(x, y, w, h float64) {
	p := c.device(x, y)
	r := image.Rect(
		int(math.Floor(p.X)), int(math.Floor(p.Y)),
		int(math.Ceil(p.X+w)), int(math.Ceil(p.Y+h)),
	).Intersect(image.Rect(0, 0, c.width, c.height))
	if r.Empty() {
		return
	}
	if r.Eq(image.Rect(0, 0, c.width, c.height)) {
		c.ctx.ClearWithColor(rgba(c.background))
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	xdraw.Draw(img, img.Bounds(), c.ctx.Image(), image.Point{}, xdraw.Src)
	xdraw.Draw(img, r, image.NewUniform(c.background.Std()), image.Point{}, xdraw.Src)
	_ = c.ctx.Close()
	c.ctx = gg.NewContextForImage(img)
}
