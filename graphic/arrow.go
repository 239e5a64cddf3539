package graphic

import (
	"fmt"
	"math"
)

// Arrow is a straight Line with arrowheads on the ends selected by its
// Direction.
type Arrow struct {
	notifier
	line      *Line
	direction Direction
	style     *Style
	name      string

	headWidth, headHeight float64
	startHead, endHead    *HeadArrow

	watch *Subscription
}

// NewArrow returns the Arrow from start to end.
// Recognized options: WithStyle, WithDirection, WithHeadSize, WithName.
func NewArrow(start, end *Point, opts ...Option) (*Arrow, error) {
	o := applyOptions(opts)
	if !o.direction.valid() {
		return nil, fmt.Errorf("new arrow: %w: %v", ErrInvalidDirection, o.direction)
	}
	line, err := NewLine(start, end, WithStyle(o.style), WithName(o.name))
	if err != nil {
		return nil, err
	}
	a := &Arrow{
		line:       line,
		direction:  o.direction,
		style:      o.style,
		name:       o.name,
		headWidth:  o.headWidth,
		headHeight: o.headHeight,
	}
	if err := a.configure(); err != nil {
		return nil, err
	}
	a.watch = line.Subscribe(a.changed)
	return a, nil
}

// headAngles returns the bearings of the start and end heads. The line
// angle is orientation-blind, so the assignment is swapped when the vector
// points right.
func headAngles(angle float64, v Coord) (start, end float64) {
	start, end = angle, angle+math.Pi
	if v.X > 0 && v.Y < 0 {
		start, end = angle+math.Pi, angle
	}
	if v.X > 0 && v.Y > 0 {
		start, end = angle+math.Pi, angle
	}
	return start, end
}

func (a *Arrow) configure() error {
	as, ae := headAngles(a.line.Angle(), a.line.Vector())
	var err error
	if a.startHead, err = NewHeadArrow(a.line.start, as, a.headWidth, a.headHeight, WithStyle(a.style)); err != nil {
		return err
	}
	a.endHead, err = NewHeadArrow(a.line.end, ae, a.headWidth, a.headHeight, WithStyle(a.style))
	return err
}

func (a *Arrow) changed() {
	if err := a.configure(); err != nil {
		Logger().Warn("graphic: arrow heads not rebuilt", "name", a.name, "err", err)
	}
	a.notify()
}

// Start returns the start point.
func (a *Arrow) Start() *Point { return a.line.start }

// End returns the end point.
func (a *Arrow) End() *Point { return a.line.end }

// SetStart replaces the start point.
func (a *Arrow) SetStart(p *Point) error { return a.line.SetStart(p) }

// SetEnd replaces the end point.
func (a *Arrow) SetEnd(p *Point) error { return a.line.SetEnd(p) }

// Line returns the shaft.
func (a *Arrow) Line() *Line { return a.line }

// Direction returns which ends carry a head.
func (a *Arrow) Direction() Direction { return a.direction }

// StartHead returns the head at the start point. It is drawn only for
// Left and Both.
func (a *Arrow) StartHead() *HeadArrow { return a.startHead }

// EndHead returns the head at the end point. It is drawn only for Right
// and Both.
func (a *Arrow) EndHead() *HeadArrow { return a.endHead }

// Style returns the Style of the shaft and heads.
func (a *Arrow) Style() *Style { return a.style }

// Name returns the name given with WithName.
func (a *Arrow) Name() string { return a.name }

// Draw strokes the shaft and fills the active heads.
func (a *Arrow) Draw(c Context) error {
	if c == nil {
		return ErrNoContext
	}
	if a == nil {
		return missing("draw arrow", "arrow")
	}
	defer a.style.Apply(c).Restore()
	if err := a.line.Draw(c); err != nil {
		return err
	}
	return drawHeads(c, a.direction, a.startHead, a.endHead)
}

func drawHeads(c Context, d Direction, start, end *HeadArrow) error {
	if d.hasStart() {
		if err := start.Draw(c); err != nil {
			return err
		}
	}
	if d.hasEnd() {
		return end.Draw(c)
	}
	return nil
}
