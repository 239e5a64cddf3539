package graphic

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode/utf8"
)

const epsilon = 1e-9

func near(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

func coordsNear(a, b Coord, eps float64) bool {
	return near(a.X, b.X, eps) && near(a.Y, b.Y, eps)
}

// sameAngle compares two angles modulo 2π.
func sameAngle(a, b, eps float64) bool {
	d := math.Mod(a-b, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d < eps || 2*math.Pi-d < eps
}

type ctxState struct {
	lineWidth float64
	fill      Color
	stroke    Color
	font      string
	align     TextAlign
	baseline  Baseline
	dash      []float64
}

// fakeContext logs every path, paint and transform call as a short text
// op and keeps canvas-like attribute state with a save stack.
type fakeContext struct {
	ops   []string
	state ctxState
	saved []ctxState

	// painted records the attribute state at every Stroke, Fill and
	// FillText call.
	painted []ctxState
}

func newFakeContext() *fakeContext {
	return &fakeContext{state: ctxState{
		lineWidth: 1,
		fill:      Black,
		stroke:    Black,
		font:      "10px sans-serif",
	}}
}

func (f *fakeContext) op(format string, args ...any) {
	f.ops = append(f.ops, fmt.Sprintf(format, args...))
}

func (f *fakeContext) paint() {
	s := f.state
	s.dash = slices.Clone(s.dash)
	f.painted = append(f.painted, s)
}

func (f *fakeContext) BeginPath()          { f.op("beginPath") }
func (f *fakeContext) MoveTo(x, y float64) { f.op("moveTo %g %g", x, y) }
func (f *fakeContext) LineTo(x, y float64) { f.op("lineTo %g %g", x, y) }
func (f *fakeContext) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	f.op("bezierCurveTo %g %g %g %g %g %g", c1x, c1y, c2x, c2y, x, y)
}
func (f *fakeContext) Arc(x, y, r, a0, a1 float64, ccw bool) {
	f.op("arc %g %g %g %g %g %t", x, y, r, a0, a1, ccw)
}
func (f *fakeContext) ClosePath() { f.op("closePath") }
func (f *fakeContext) Stroke() error {
	f.op("stroke")
	f.paint()
	return nil
}
func (f *fakeContext) Fill() error {
	f.op("fill")
	f.paint()
	return nil
}
func (f *fakeContext) Save() {
	f.op("save")
	s := f.state
	s.dash = slices.Clone(s.dash)
	f.saved = append(f.saved, s)
}
func (f *fakeContext) Restore() {
	f.op("restore")
	if n := len(f.saved); n > 0 {
		f.state = f.saved[n-1]
		f.saved = f.saved[:n-1]
	}
}
func (f *fakeContext) Translate(x, y float64) { f.op("translate %g %g", x, y) }
func (f *fakeContext) Rotate(a float64)       { f.op("rotate %g", a) }

func (f *fakeContext) LineWidth() float64         { return f.state.lineWidth }
func (f *fakeContext) SetLineWidth(w float64)     { f.state.lineWidth = w }
func (f *fakeContext) FillColor() Color           { return f.state.fill }
func (f *fakeContext) SetFillColor(c Color)       { f.state.fill = c }
func (f *fakeContext) StrokeColor() Color         { return f.state.stroke }
func (f *fakeContext) SetStrokeColor(c Color)     { f.state.stroke = c }
func (f *fakeContext) Font() string               { return f.state.font }
func (f *fakeContext) SetFont(s string)           { f.state.font = s }
func (f *fakeContext) TextAlign() TextAlign       { return f.state.align }
func (f *fakeContext) SetTextAlign(a TextAlign)   { f.state.align = a }
func (f *fakeContext) TextBaseline() Baseline     { return f.state.baseline }
func (f *fakeContext) SetTextBaseline(b Baseline) { f.state.baseline = b }
func (f *fakeContext) LineDash() []float64        { return f.state.dash }
func (f *fakeContext) SetLineDash(d []float64)    { f.state.dash = slices.Clone(d) }

func (f *fakeContext) FillText(s string, x, y float64) error {
	f.op("fillText %s %g %g", s, x, y)
	f.paint()
	return nil
}

// MeasureText charges ten pixels per rune.
func (f *fakeContext) MeasureText(s string) float64 {
	return float64(10 * utf8.RuneCountInString(s))
}

// count returns how many ops start with prefix.
func (f *fakeContext) count(prefix string) int {
	n := 0
	for _, op := range f.ops {
		if strings.HasPrefix(op, prefix) {
			n++
		}
	}
	return n
}

func stateEqual(a, b ctxState) bool {
	return a.lineWidth == b.lineWidth &&
		a.fill == b.fill &&
		a.stroke == b.stroke &&
		a.font == b.font &&
		a.align == b.align &&
		a.baseline == b.baseline &&
		slices.Equal(a.dash, b.dash)
}
