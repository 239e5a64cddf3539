package graphic

import "math"

// Coord is an immutable 2D coordinate or vector, the value form of a Point.
// The y axis points down, as on a canvas.
type Coord struct {
	X, Y float64
}

// C is shorthand for Coord{X: x, Y: y}.
func C(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// Add returns the vector sum.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the vector difference.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Mul scales the vector.
func (c Coord) Mul(s float64) Coord {
	return Coord{X: c.X * s, Y: c.Y * s}
}

// Length returns the Euclidean length of the vector.
func (c Coord) Length() float64 {
	return math.Hypot(c.X, c.Y)
}

// Distance returns the Euclidean distance between two coordinates.
func (c Coord) Distance(o Coord) float64 {
	return c.Sub(o).Length()
}

// Mid returns the componentwise average.
func (c Coord) Mid(o Coord) Coord {
	return Coord{X: (c.X + o.X) / 2, Y: (c.Y + o.Y) / 2}
}

// Polar returns c offset by r along the bearing angle (radians).
func (c Coord) Polar(r, angle float64) Coord {
	return Coord{X: c.X + r*math.Cos(angle), Y: c.Y + r*math.Sin(angle)}
}

// Finite reports whether both components are finite.
func (c Coord) Finite() bool {
	return finite(c.X) && finite(c.Y)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
