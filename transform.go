package polymesh

import "math"

// Transform represents the rigid 2D world transform of a collider.
// It uses a 2x3 matrix in row-major order:
//
//	| a  b  c |
//	| d  e  f |
//
// This represents the transformation:
//
//	x' = a*x + b*y + c
//	y' = d*x + e*y + f
//
// The extractor applies the transform to local shape coordinates so that
// the rest of the pipeline works purely in world space.
type Transform struct {
	A, B, C float64
	D, E, F float64
}

// Identity returns the identity transform.
func Identity() Transform {
	return Transform{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// Translate creates a translation transform.
func Translate(x, y float64) Transform {
	return Transform{
		A: 1, B: 0, C: x,
		D: 0, E: 1, F: y,
	}
}

// Rotate creates a rotation transform (angle in radians).
func Rotate(angle float64) Transform {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Transform{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// Scale creates a scaling transform.
func Scale(x, y float64) Transform {
	return Transform{
		A: x, B: 0, C: 0,
		D: 0, E: y, F: 0,
	}
}

// TRS composes translation, rotation and uniform scale in the order a
// game object transform applies them.
func TRS(tx, ty, angle, scale float64) Transform {
	return Translate(tx, ty).Multiply(Rotate(angle)).Multiply(Scale(scale, scale))
}

// Multiply multiplies two transforms (t * other).
func (t Transform) Multiply(other Transform) Transform {
	return Transform{
		A: t.A*other.A + t.B*other.D,
		B: t.A*other.B + t.B*other.E,
		C: t.A*other.C + t.B*other.F + t.C,
		D: t.D*other.A + t.E*other.D,
		E: t.D*other.B + t.E*other.E,
		F: t.D*other.C + t.E*other.F + t.F,
	}
}

// Apply transforms a point.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.C,
		Y: t.D*p.X + t.E*p.Y + t.F,
	}
}

// ApplyVec transforms a direction vector (no translation).
func (t Transform) ApplyVec(v Vec2) Vec2 {
	return Vec2{
		X: t.A*v.X + t.B*v.Y,
		Y: t.D*v.X + t.E*v.Y,
	}
}

// Invert returns the inverse transform.
// Returns the identity transform if the matrix is not invertible.
func (t Transform) Invert() Transform {
	det := t.A*t.E - t.B*t.D
	if math.Abs(det) < 1e-10 {
		return Identity()
	}

	invDet := 1.0 / det
	return Transform{
		A: t.E * invDet,
		B: -t.B * invDet,
		C: (t.B*t.F - t.C*t.E) * invDet,
		D: -t.D * invDet,
		E: t.A * invDet,
		F: (t.C*t.D - t.A*t.F) * invDet,
	}
}

// IsIdentity returns true if the transform is the identity.
func (t Transform) IsIdentity() bool {
	return t.A == 1 && t.B == 0 && t.C == 0 &&
		t.D == 0 && t.E == 1 && t.F == 0
}
