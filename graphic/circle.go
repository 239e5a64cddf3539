package graphic

import (
	"fmt"
	"math"
)

// Circle is a center Point with a radius that is either a number or the
// distance to a second Point. In the second form the radius is re-derived
// whenever either Point moves.
type Circle struct {
	notifier
	center  *Point
	through *Point // nil for a literal radius
	radius  float64
	style   *Style

	watch []*Subscription
}

// NewCircle returns the circle of the given radius around center.
// Recognized options: WithStyle.
func NewCircle(center *Point, radius float64, opts ...Option) (*Circle, error) {
	if center == nil {
		return nil, missing("new circle", "center")
	}
	if err := checkRadius(radius); err != nil {
		return nil, fmt.Errorf("new circle: %w", err)
	}
	c := &Circle{center: center, radius: radius, style: applyOptions(opts).style}
	c.subscribe()
	return c, nil
}

// NewCircleThrough returns the circle around center that passes through p.
func NewCircleThrough(center, p *Point, opts ...Option) (*Circle, error) {
	if center == nil {
		return nil, missing("new circle", "center")
	}
	if p == nil {
		return nil, missing("new circle", "radius point")
	}
	c := &Circle{center: center, through: p, style: applyOptions(opts).style}
	c.radius = center.Distance(p)
	c.subscribe()
	return c, nil
}

func checkRadius(r float64) error {
	if !finite(r) {
		return ErrNonFinite
	}
	if r < 0 {
		return ErrNegativeRadius
	}
	return nil
}

func (c *Circle) subscribe() {
	for _, s := range c.watch {
		s.Cancel()
	}
	c.watch = append(c.watch[:0], c.center.Subscribe(c.changed))
	if c.through != nil && c.through != c.center {
		c.watch = append(c.watch, c.through.Subscribe(c.changed))
	}
}

func (c *Circle) changed() {
	if c.through != nil {
		c.radius = c.center.Distance(c.through)
	}
	c.notify()
}

// Center returns the center point.
func (c *Circle) Center() *Point { return c.center }

// Radius returns the current radius.
func (c *Circle) Radius() float64 { return c.radius }

// Through returns the point the circle passes through, or nil when the
// radius is a literal.
func (c *Circle) Through() *Point { return c.through }

// SetCenter replaces the center point. A point-derived radius is measured
// again from the new center.
func (c *Circle) SetCenter(p *Point) error {
	if p == nil {
		return missing("set circle center", "point")
	}
	c.center = p
	c.subscribe()
	c.changed()
	return nil
}

// MoveCenter moves the existing center point to to. Everything depending
// on that point, this circle included, is notified through it.
func (c *Circle) MoveCenter(to Coord) error {
	return c.center.SetCoord(to)
}

// SetRadius switches to a literal radius.
func (c *Circle) SetRadius(r float64) error {
	if err := checkRadius(r); err != nil {
		return fmt.Errorf("set circle radius: %w", err)
	}
	c.through = nil
	c.radius = r
	c.subscribe()
	c.notify()
	return nil
}

// SetThrough switches to a radius derived from p.
func (c *Circle) SetThrough(p *Point) error {
	if p == nil {
		return missing("set circle radius", "point")
	}
	c.through = p
	c.subscribe()
	c.changed()
	return nil
}

// PointAt returns a new Point on the circle at the given angle, measured
// from the positive x axis toward positive y. The angle must be finite.
func (c *Circle) PointAt(angle float64) (*Point, error) {
	if !finite(angle) {
		return nil, fmt.Errorf("circle point at %v: %w", angle, ErrNonFinite)
	}
	return derivedPoint(c.center.Coord().Polar(c.radius, angle)), nil
}

// Style returns the Style the circle draws with.
func (c *Circle) Style() *Style { return c.style }

// SetStyle replaces the Style. A nil Style is ignored.
func (c *Circle) SetStyle(s *Style) {
	if s != nil {
		c.style = s
	}
}

// Draw strokes the full circle.
func (c *Circle) Draw(ctx Context) error {
	if ctx == nil {
		return ErrNoContext
	}
	if c == nil {
		return missing("draw circle", "circle")
	}
	defer c.style.Apply(ctx).Restore()
	ctx.BeginPath()
	ctx.Arc(c.center.x, c.center.y, c.radius, 0, 2*math.Pi, true)
	return ctx.Stroke()
}
