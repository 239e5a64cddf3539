package graphic

import "math"

// Line is the segment between two Points. Its angle and middle follow the
// endpoints; its norm is measured once, at construction.
type Line struct {
	notifier
	start, end *Point
	style      *Style
	name       string

	angle  float64
	middle *Point
	norm   float64

	watch []*Subscription
}

// NewLine returns the Line from start to end.
// Recognized options: WithStyle, WithName.
func NewLine(start, end *Point, opts ...Option) (*Line, error) {
	if start == nil {
		return nil, missing("new line", "start point")
	}
	if end == nil {
		return nil, missing("new line", "end point")
	}
	o := applyOptions(opts)
	l := &Line{start: start, end: end, style: o.style, name: o.name}
	l.norm = start.Distance(end)
	l.subscribe()
	l.compute()
	return l, nil
}

// lineAngle folds a direction vector onto (-π/2, π/2]: vertical vectors
// give π/2, horizontal ones 0, anything else atan(dy/dx). Opposite vectors
// share an angle.
func lineAngle(v Coord) float64 {
	switch {
	case v.X == 0:
		return math.Pi / 2
	case v.Y == 0:
		return 0
	default:
		return math.Atan(v.Y / v.X)
	}
}

func (l *Line) subscribe() {
	for _, s := range l.watch {
		s.Cancel()
	}
	l.watch = append(l.watch[:0], l.start.Subscribe(l.changed))
	if l.end != l.start {
		l.watch = append(l.watch, l.end.Subscribe(l.changed))
	}
}

func (l *Line) compute() {
	l.angle = lineAngle(l.Vector())
	l.middle = derivedPoint(l.start.Coord().Mid(l.end.Coord()))
}

func (l *Line) changed() {
	l.compute()
	Logger().Debug("graphic: line recomputed", "name", l.name, "angle", l.angle)
	l.notify()
}

// Start returns the start point.
func (l *Line) Start() *Point { return l.start }

// End returns the end point.
func (l *Line) End() *Point { return l.end }

// SetStart replaces the start point and notifies dependents once.
func (l *Line) SetStart(p *Point) error {
	if p == nil {
		return missing("set line start", "point")
	}
	l.start = p
	l.subscribe()
	l.changed()
	return nil
}

// SetEnd replaces the end point and notifies dependents once.
func (l *Line) SetEnd(p *Point) error {
	if p == nil {
		return missing("set line end", "point")
	}
	l.end = p
	l.subscribe()
	l.changed()
	return nil
}

// Angle returns the folded angle of the segment, see lineAngle.
// Use Vector when the orientation matters.
func (l *Line) Angle() float64 { return l.angle }

// Middle returns the midpoint. A new Point is built on every change, so
// callers that need to follow the line should re-read it.
func (l *Line) Middle() *Point { return l.middle }

// Norm returns the length measured at construction. It does not follow
// later moves of the endpoints; Length does.
func (l *Line) Norm() float64 { return l.norm }

// Length returns the current length.
func (l *Line) Length() float64 { return l.start.Distance(l.end) }

// Vector returns end minus start.
func (l *Line) Vector() Coord { return l.end.Coord().Sub(l.start.Coord()) }

// Style returns the Style the line draws with.
func (l *Line) Style() *Style { return l.style }

// SetStyle replaces the Style. A nil Style is ignored.
func (l *Line) SetStyle(s *Style) {
	if s != nil {
		l.style = s
	}
}

// Name returns the name given with WithName.
func (l *Line) Name() string { return l.name }

// Draw strokes the segment with the line's Style.
func (l *Line) Draw(c Context) error {
	if c == nil {
		return ErrNoContext
	}
	if l == nil {
		return missing("draw line", "line")
	}
	defer l.style.Apply(c).Restore()
	c.BeginPath()
	c.MoveTo(l.start.x, l.start.y)
	c.LineTo(l.end.x, l.end.y)
	return c.Stroke()
}
