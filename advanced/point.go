package advanced

import "math"

// Point is a position in screen space (y grows downward).
type Point struct {
	X float64
	Y float64
}

func (p Point) isPrimitive() {}

// Linear interpolation from p (t = 0) to other (t = 1).
func (p Point) Lerp(other Point, t float64) Point {
	return Point{lerp(p.X, other.X, t), lerp(p.Y, other.Y, t)}
}

// Cubic Bézier interpolation from p (t = 0) to other (t = 1), pulled toward
// the control points c1 and c2.
func (p Point) Berp(other, c1, c2 Point, t float64) Point {
	return Point{
		berp(p.X, c1.X, c2.X, other.X, t),
		berp(p.Y, c1.Y, c2.Y, other.Y, t),
	}
}

func (p Point) Distance(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// Midpoint of p and other.
func (p Point) Average(other Point) Point {
	return Point{(p.X + other.X) / 2, (p.Y + other.Y) / 2}
}

func lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Bernstein form of a cubic with endpoints a, d and control values b, c.
func berp(a, b, c, d, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*a + 3*mt*mt*t*b + 3*mt*t*t*c + t*t*t*d
}

func (p Point) finite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}
