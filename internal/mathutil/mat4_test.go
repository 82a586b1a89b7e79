package mathutil

import (
	"math"
	"testing"
)

func TestTransformIdentity(t *testing.T) {
	samples := []Vec4{
		{0, 0, 0, 1},
		{-1, -1, -1, 1},
		{1, -1, 1, 1},
		{3.25, -7.5, 1e-9, 0},
		{1e12, -1e-12, 42, 0.5},
	}
	id := Mat4Identity()
	for _, v := range samples {
		if got := Transform(id, v); got != v {
			t.Errorf("Transform(identity, %v) = %v", v, got)
		}
	}
}

func TestTransformRowVectorConvention(t *testing.T) {
	// Translation lives in the last row and only affects points (w=1).
	m := FromMat3Translation(Mat3Identity(), Vec3{1, 2, 3})

	if got, want := Transform(m, Point(1, 1, 1)), (Vec4{2, 3, 4, 1}); got != want {
		t.Fatalf("point: got %v, want %v", got, want)
	}
	if got, want := Transform(m, Vec4{1, 1, 1, 0}), (Vec4{1, 1, 1, 0}); got != want {
		t.Fatalf("direction: got %v, want %v", got, want)
	}
}

func TestTransformUsesColumns(t *testing.T) {
	m := Mat4{
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	}
	got := Transform(m, Vec4{1, 0, 0, 0})
	if want := (Vec4{1, 2, 3, 4}); got != want {
		t.Fatalf("x basis picks row 0: got %v, want %v", got, want)
	}
	got = Transform(m, Vec4{1, 1, 1, 1})
	if want := (Vec4{28, 32, 36, 40}); got != want {
		t.Fatalf("sum of rows: got %v, want %v", got, want)
	}
}

func TestMat4MulComposesInOrder(t *testing.T) {
	rot := FromMat3Translation(RotY(math.Pi/2), Vec3{})
	move := FromMat3Translation(Mat3Identity(), Vec3{0, 0, -2})
	m := Mat4Mul(rot, move)

	v := Point(1, 0, 0)
	want := Transform(move, Transform(rot, v))
	got := Transform(m, v)
	for i := range got {
		if math.Abs(got[i]-want[i]) > 1e-12 {
			t.Fatalf("component %d: got %v, want %v", i, got, want)
		}
	}
}

func TestMat4Det(t *testing.T) {
	tests := []struct {
		name string
		m    Mat4
		want float64
	}{
		{"identity", Mat4Identity(), 1},
		{"scale", Mat4{2, 0, 0, 0, 0, 3, 0, 0, 0, 0, 4, 0, 0, 0, 0, 1}, 24},
		{"singular", Mat4{1, 2, 3, 4, 2, 4, 6, 8, 0, 0, 1, 0, 0, 0, 0, 1}, 0},
		{"translation", FromMat3Translation(Mat3Identity(), Vec3{5, -1, 9}), 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.Det(); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("Det() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRotationBlock(t *testing.T) {
	r := RotY(0.7)
	m := FromMat3Translation(r, Vec3{0, 0, -2.5})
	if m.Rotation() != r {
		t.Fatalf("Rotation() = %v, want %v", m.Rotation(), r)
	}
	if !r.IsOrthonormal(1e-12) {
		t.Fatal("RotY is not orthonormal")
	}
}

func TestIsOrthonormal(t *testing.T) {
	if !RotY(2.1).IsOrthonormal(1e-12) {
		t.Fatal("RotY(2.1) not orthonormal")
	}
	if (Mat3{2, 0, 0, 0, 1, 0, 0, 0, 1}).IsOrthonormal(1e-12) {
		t.Fatal("scaled matrix reported orthonormal")
	}
}

func TestVec3Len(t *testing.T) {
	d := Point(1, 2, 3).XYZ().Sub(Vec3{-2, -2, 3})
	if d != (Vec3{3, 4, 0}) || d.Len() != 5 {
		t.Fatalf("Sub = %v, Len = %v", d, d.Len())
	}
}

func TestWrapAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi, math.Pi},
		{2 * math.Pi, 0},
		{2*math.Pi + 0.5, 0.5},
		{-0.5, 2*math.Pi - 0.5},
	}
	for _, tt := range tests {
		if got := WrapAngle(tt.in); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("WrapAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestVec4IsFinite(t *testing.T) {
	if !Point(1, 2, 3).IsFinite() {
		t.Fatal("finite point reported as non-finite")
	}
	if (Vec4{math.NaN(), 0, 0, 1}).IsFinite() {
		t.Fatal("NaN reported as finite")
	}
	if (Vec4{0, math.Inf(-1), 0, 1}).IsFinite() {
		t.Fatal("Inf reported as finite")
	}
}
