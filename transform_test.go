package polymesh

import (
	"math"
	"testing"
)

func TestTransform_Apply(t *testing.T) {
	tests := []struct {
		name   string
		xf     Transform
		p      Point
		expect Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(1, -2), Pt(3, 4), Pt(4, 2)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate quarter", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"trs", TRS(10, 0, math.Pi/2, 2), Pt(1, 0), Pt(10, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.xf.Apply(tt.p)
			if !result.Approx(tt.expect, 1e-12) {
				t.Errorf("Apply(%v) = %v, want %v", tt.p, result, tt.expect)
			}
		})
	}
}

func TestTransform_ApplyVec(t *testing.T) {
	// Direction vectors must ignore translation.
	xf := Translate(100, 100).Multiply(Rotate(math.Pi / 2))
	v := xf.ApplyVec(V2(1, 0))
	if !v.Approx(V2(0, 1), 1e-12) {
		t.Errorf("ApplyVec = %v, want (0, 1)", v)
	}
}

func TestTransform_Invert(t *testing.T) {
	xf := TRS(5, -3, 0.7, 1.5)
	inv := xf.Invert()

	p := Pt(2.5, -1.25)
	back := inv.Apply(xf.Apply(p))
	if !back.Approx(p, 1e-9) {
		t.Errorf("Invert round trip = %v, want %v", back, p)
	}

	if !Identity().Multiply(Identity()).IsIdentity() {
		t.Error("identity composition lost identity")
	}
}

func TestTransform_InvertDegenerate(t *testing.T) {
	// A zero-scale transform is not invertible; Invert falls back to
	// the identity instead of dividing by zero.
	if got := Scale(0, 0).Invert(); !got.IsIdentity() {
		t.Errorf("Scale(0,0).Invert() = %+v, want identity", got)
	}
}
