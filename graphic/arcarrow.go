package graphic

import "fmt"

// ArcArrow is an Arc with arrowheads on the ends selected by its
// Direction. Head bearings follow the curve's tangent near each end.
type ArcArrow struct {
	notifier
	arc       *Arc
	direction Direction
	style     *Style
	name      string

	headWidth, headHeight float64
	startHead, endHead    *HeadArrow

	watch *Subscription
}

// NewArcArrow returns the ArcArrow from start to end with the given bow
// height.
// Recognized options: WithStyle, WithDirection, WithHeadSize, WithName.
func NewArcArrow(start, end *Point, height float64, opts ...Option) (*ArcArrow, error) {
	o := applyOptions(opts)
	if !o.direction.valid() {
		return nil, fmt.Errorf("new arc arrow: %w: %v", ErrInvalidDirection, o.direction)
	}
	arc, err := NewArc(start, end, height, WithStyle(o.style), WithName(o.name))
	if err != nil {
		return nil, err
	}
	a := &ArcArrow{
		arc:        arc,
		direction:  o.direction,
		style:      o.style,
		name:       o.name,
		headWidth:  o.headWidth,
		headHeight: o.headHeight,
	}
	if err := a.configure(); err != nil {
		return nil, err
	}
	a.watch = arc.Subscribe(a.changed)
	return a, nil
}

func (a *ArcArrow) configure() error {
	b := a.arc.Bezier()
	var err error
	if a.startHead, err = NewHeadArrow(a.arc.Start(), b.StartAngle(), a.headWidth, a.headHeight, WithStyle(a.style)); err != nil {
		return err
	}
	a.endHead, err = NewHeadArrow(a.arc.End(), b.EndAngle(), a.headWidth, a.headHeight, WithStyle(a.style))
	return err
}

func (a *ArcArrow) changed() {
	if err := a.configure(); err != nil {
		Logger().Warn("graphic: arc arrow heads not rebuilt", "name", a.name, "err", err)
	}
	a.notify()
}

// Arc returns the underlying curve.
func (a *ArcArrow) Arc() *Arc { return a.arc }

// Start returns the start point.
func (a *ArcArrow) Start() *Point { return a.arc.Start() }

// End returns the end point.
func (a *ArcArrow) End() *Point { return a.arc.End() }

// SetStart replaces the start point.
func (a *ArcArrow) SetStart(p *Point) error { return a.arc.SetStart(p) }

// SetEnd replaces the end point.
func (a *ArcArrow) SetEnd(p *Point) error { return a.arc.SetEnd(p) }

// Height returns the bow height of the curve.
func (a *ArcArrow) Height() float64 { return a.arc.Height() }

// SetHeight changes the bow height.
func (a *ArcArrow) SetHeight(h float64) error { return a.arc.SetHeight(h) }

// Direction returns which ends carry a head.
func (a *ArcArrow) Direction() Direction { return a.direction }

// StartHead returns the head at the start point.
func (a *ArcArrow) StartHead() *HeadArrow { return a.startHead }

// EndHead returns the head at the end point.
func (a *ArcArrow) EndHead() *HeadArrow { return a.endHead }

// Style returns the Style of the curve and heads.
func (a *ArcArrow) Style() *Style { return a.style }

// Name returns the name given with WithName.
func (a *ArcArrow) Name() string { return a.name }

// Draw strokes the curve and fills the active heads.
func (a *ArcArrow) Draw(c Context) error {
	if c == nil {
		return ErrNoContext
	}
	if a == nil {
		return missing("draw arc arrow", "arc arrow")
	}
	defer a.style.Apply(c).Restore()
	if err := a.arc.Draw(c); err != nil {
		return err
	}
	return drawHeads(c, a.direction, a.startHead, a.endHead)
}
