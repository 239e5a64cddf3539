package graphic

import "fmt"

// HeadArrow is a filled kite-shaped arrowhead whose tip sits on origin and
// which points along angle. It is always filled in its Style's stroke
// color.
//
// The stored width and height include the line width of the Style at
// construction. Width and Height subtract the current line width and add
// one, so with an unchanged Style they report the requested size plus one.
type HeadArrow struct {
	origin        *Point
	angle         float64
	width, height float64
	style         *Style
}

// NewHeadArrow returns an arrowhead at origin.
// Recognized options: WithStyle.
func NewHeadArrow(origin *Point, angle, width, height float64, opts ...Option) (*HeadArrow, error) {
	if origin == nil {
		return nil, missing("new head arrow", "origin")
	}
	for _, v := range [...]float64{angle, width, height} {
		if !finite(v) {
			return nil, fmt.Errorf("new head arrow: %w", ErrNonFinite)
		}
	}
	s := applyOptions(opts).style
	return &HeadArrow{
		origin: origin,
		angle:  angle,
		width:  width + s.LineWidth(),
		height: height + s.LineWidth(),
		style:  s,
	}, nil
}

// Origin returns the tip point.
func (h *HeadArrow) Origin() *Point { return h.origin }

// Angle returns the pointing direction in radians.
func (h *HeadArrow) Angle() float64 { return h.angle }

// Width returns the length of the head along its axis.
func (h *HeadArrow) Width() float64 { return h.width - h.style.LineWidth() + 1 }

// Height returns the half-spread of the head across its axis.
func (h *HeadArrow) Height() float64 { return h.height - h.style.LineWidth() + 1 }

// Style returns the Style the head was built with.
func (h *HeadArrow) Style() *Style { return h.style }

// Draw fills the head polygon.
func (h *HeadArrow) Draw(c Context) error {
	if c == nil {
		return ErrNoContext
	}
	if h == nil {
		return missing("draw head arrow", "head arrow")
	}
	solid := h.style.Clone()
	solid.SetFillColor(solid.StrokeColor())
	defer solid.Apply(c).Restore()

	c.BeginPath()
	c.Save()
	defer c.Restore()
	c.Translate(h.origin.x, h.origin.y)
	c.Rotate(h.angle)
	c.MoveTo(-h.width, 0)
	c.LineTo(-h.width, -h.height)
	c.LineTo(0, 0)
	c.LineTo(-h.width, h.height)
	c.LineTo(-h.width, 0)
	c.ClosePath()
	return c.Fill()
}
