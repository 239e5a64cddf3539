package graphic

import (
	"fmt"
	"math"
)

// controlSpread is the angle by which each control bearing leans away
// from the chord normal, toward its own end.
const controlSpread = math.Pi / 11

// Arc is a cubic Bezier curve between two Points, bowed by a signed
// height. Each control point sits at distance height from its end, on a
// bearing tilted by ±π/11 from the normal of the chord.
//
// The control points keep their identity for the lifetime of the Arc and
// are moved in place, so Text labels and other dependents may subscribe to
// them.
type Arc struct {
	notifier
	chord  *Line
	height float64
	style  *Style
	name   string

	control1, control2, middleControl *Point

	watch *Subscription
}

// NewArc returns the Arc from start to end with the given height.
// Recognized options: WithStyle, WithName.
func NewArc(start, end *Point, height float64, opts ...Option) (*Arc, error) {
	if start == nil {
		return nil, missing("new arc", "start point")
	}
	if end == nil {
		return nil, missing("new arc", "end point")
	}
	if !finite(height) {
		return nil, fmt.Errorf("new arc height %v: %w", height, ErrNonFinite)
	}
	o := applyOptions(opts)
	chord, err := NewLine(start, end, WithStyle(o.style))
	if err != nil {
		return nil, err
	}
	a := &Arc{chord: chord, height: height, style: o.style, name: o.name}
	c1, c2, mid := a.controls()
	a.control1, a.control2, a.middleControl = derivedPoint(c1), derivedPoint(c2), derivedPoint(mid)
	a.watch = chord.Subscribe(a.changed)
	return a, nil
}

func (a *Arc) controls() (c1, c2, mid Coord) {
	base := a.chord.Angle() + math.Pi/2
	c1 = a.chord.start.Coord().Polar(a.height, base+controlSpread)
	c2 = a.chord.end.Coord().Polar(a.height, base-controlSpread)
	return c1, c2, c1.Mid(c2)
}

func (a *Arc) changed() {
	c1, c2, mid := a.controls()
	a.control1.x, a.control1.y = c1.X, c1.Y
	a.control2.x, a.control2.y = c2.X, c2.Y
	a.middleControl.x, a.middleControl.y = mid.X, mid.Y
	Logger().Debug("graphic: arc recomputed", "name", a.name, "height", a.height)
	a.control1.notify()
	a.control2.notify()
	a.middleControl.notify()
	a.notify()
}

// Start returns the start point.
func (a *Arc) Start() *Point { return a.chord.start }

// End returns the end point.
func (a *Arc) End() *Point { return a.chord.end }

// Chord returns the straight Line between the ends.
func (a *Arc) Chord() *Line { return a.chord }

// SetStart replaces the start point.
func (a *Arc) SetStart(p *Point) error { return a.chord.SetStart(p) }

// SetEnd replaces the end point.
func (a *Arc) SetEnd(p *Point) error { return a.chord.SetEnd(p) }

// Height returns the signed bow height.
func (a *Arc) Height() float64 { return a.height }

// SetHeight changes the bow height and recomputes the control points.
func (a *Arc) SetHeight(h float64) error {
	if !finite(h) {
		return fmt.Errorf("set arc height %v: %w", h, ErrNonFinite)
	}
	a.height = h
	a.changed()
	return nil
}

// StartControl returns the control point associated with the start.
func (a *Arc) StartControl() *Point { return a.control1 }

// EndControl returns the control point associated with the end.
func (a *Arc) EndControl() *Point { return a.control2 }

// MiddleControl returns the midpoint of the two control points, a
// convenient anchor for a label.
func (a *Arc) MiddleControl() *Point { return a.middleControl }

// Bezier returns the current curve.
func (a *Arc) Bezier() CubicBez {
	return CubicBez{
		P0: a.chord.start.Coord(),
		P1: a.control1.Coord(),
		P2: a.control2.Coord(),
		P3: a.chord.end.Coord(),
	}
}

// Style returns the Style the arc draws with.
func (a *Arc) Style() *Style { return a.style }

// SetStyle replaces the Style. A nil Style is ignored.
func (a *Arc) SetStyle(s *Style) {
	if s != nil {
		a.style = s
		a.chord.SetStyle(s)
	}
}

// Name returns the name given with WithName.
func (a *Arc) Name() string { return a.name }

// Draw strokes the curve.
func (a *Arc) Draw(c Context) error {
	if c == nil {
		return ErrNoContext
	}
	if a == nil {
		return missing("draw arc", "arc")
	}
	defer a.style.Apply(c).Restore()
	b := a.Bezier()
	c.BeginPath()
	c.MoveTo(b.P0.X, b.P0.Y)
	c.BezierCurveTo(b.P1.X, b.P1.Y, b.P2.X, b.P2.Y, b.P3.X, b.P3.Y)
	return c.Stroke()
}
