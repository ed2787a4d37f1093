package polymesh

import "math"

// Point represents a 2D position in the collider plane.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the point displaced by a vector.
func (p Point) Add(v Vec2) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the displacement from q to p as a vector.
func (p Point) Sub(q Point) Vec2 {
	return Vec2{X: p.X - q.X, Y: p.Y - q.Y}
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// Vec2 returns the point as a vector from the origin.
func (p Point) Vec2() Vec2 {
	return Vec2(p)
}

// Vec3 lifts the point into the XY plane of 3D space at the given depth.
func (p Point) Vec3(z float64) Vec3 {
	return Vec3{X: p.X, Y: p.Y, Z: z}
}

// Approx reports whether two points are equal within epsilon.
func (p Point) Approx(q Point, epsilon float64) bool {
	return math.Abs(p.X-q.X) <= epsilon && math.Abs(p.Y-q.Y) <= epsilon
}
