package graphic

import "math"

// Tangent sampling parameters. The curve is sampled a little inside each
// end rather than at the end itself, where a cusp-like configuration leaves
// the tangent undefined.
const (
	tangentWindow = 0.1
	startSampleT  = 0.01 + tangentWindow
	endSampleT    = 0.99 - tangentWindow
)

// CubicBez is a cubic Bezier curve. P0 is the start point, P1 and P2 are
// the control points, P3 is the end point.
type CubicBez struct {
	P0, P1, P2, P3 Coord
}

// Eval evaluates the curve at parameter t (0 to 1).
func (b CubicBez) Eval(t float64) Coord {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t

	// (1-t)^3 P0 + 3(1-t)^2 t P1 + 3(1-t) t^2 P2 + t^3 P3
	return Coord{
		X: mt2*mt*b.P0.X + 3*mt2*t*b.P1.X + 3*mt*t2*b.P2.X + t2*t*b.P3.X,
		Y: mt2*mt*b.P0.Y + 3*mt2*t*b.P1.Y + 3*mt*t2*b.P2.Y + t2*t*b.P3.Y,
	}
}

// StartAngle estimates the outward direction of the curve at P0: the
// bearing from a sample just inside the start toward P0.
func (b CubicBez) StartAngle() float64 {
	return bearing(b.Eval(startSampleT), b.P0)
}

// EndAngle estimates the outward direction of the curve at P3: the
// bearing from a sample just inside the end toward P3.
func (b CubicBez) EndAngle() float64 {
	return bearing(b.Eval(endSampleT), b.P3)
}

func bearing(from, to Coord) float64 {
	return math.Atan2(to.Y-from.Y, to.X-from.X)
}
