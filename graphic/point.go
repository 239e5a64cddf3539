package graphic

import "fmt"

// Point is a mutable 2D position with identity: two Points with equal
// coordinates are distinct. Points are the only mutable source of truth in
// a drawing; every derived primitive subscribes to the Points it uses.
type Point struct {
	notifier
	x, y float64
	name string
}

// NewPoint returns a Point at (x, y).
// It fails with ErrNonFinite if either coordinate is NaN or infinite.
func NewPoint(x, y float64) (*Point, error) {
	if !finite(x) || !finite(y) {
		return nil, fmt.Errorf("new point (%v, %v): %w", x, y, ErrNonFinite)
	}
	return &Point{x: x, y: y}, nil
}

// MustPoint is like NewPoint but panics on error.
func MustPoint(x, y float64) *Point {
	p, err := NewPoint(x, y)
	if err != nil {
		panic(err)
	}
	return p
}

// NamedPoint returns a finite Point carrying a name.
func NamedPoint(x, y float64, name string) (*Point, error) {
	p, err := NewPoint(x, y)
	if err != nil {
		return nil, err
	}
	p.name = name
	return p, nil
}

// derivedPoint builds a Point from coordinates already known to be finite.
func derivedPoint(c Coord) *Point {
	return &Point{x: c.X, y: c.Y}
}

// Coord returns the current coordinates.
func (p *Point) Coord() Coord {
	return Coord{X: p.x, Y: p.y}
}

// X returns the horizontal coordinate.
func (p *Point) X() float64 { return p.x }

// Y returns the vertical coordinate.
func (p *Point) Y() float64 { return p.y }

// Name returns the optional name.
func (p *Point) Name() string { return p.name }

// SetName replaces the name. Names do not take part in geometry, so no
// change is propagated.
func (p *Point) SetName(name string) { p.name = name }

// SetCoord moves the point and synchronously notifies every dependent
// before returning. Non-finite input is rejected with ErrNonFinite and the
// point is left unchanged.
func (p *Point) SetCoord(c Coord) error {
	if !c.Finite() {
		return fmt.Errorf("set coord (%v, %v): %w", c.X, c.Y, ErrNonFinite)
	}
	p.move(c)
	return nil
}

// move sets coordinates known to be finite and notifies.
func (p *Point) move(c Coord) {
	p.x, p.y = c.X, c.Y
	p.notify()
}

// Distance returns the Euclidean distance to other.
func (p *Point) Distance(other *Point) float64 {
	return p.Coord().Distance(other.Coord())
}

// String implements fmt.Stringer.
func (p *Point) String() string {
	if p.name != "" {
		return fmt.Sprintf("%s(%g, %g)", p.name, p.x, p.y)
	}
	return fmt.Sprintf("(%g, %g)", p.x, p.y)
}

// Draw renders the point as a small cross, one pixel wide.
func (p *Point) Draw(c Context) error {
	if c == nil {
		return ErrNoContext
	}
	if p == nil {
		return missing("draw point", "point")
	}
	c.Save()
	defer c.Restore()
	c.BeginPath()
	c.MoveTo(p.x-2, p.y)
	c.LineTo(p.x+2, p.y)
	c.MoveTo(p.x, p.y-2)
	c.LineTo(p.x, p.y+2)
	c.SetLineWidth(1)
	return c.Stroke()
}
