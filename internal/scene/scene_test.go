package scene

import (
	"math"
	"testing"

	"cubespin/internal/mathutil"
)

func TestUnitCubeVertices(t *testing.T) {
	c := UnitCube()
	seen := make(map[mathutil.Vec4]bool)
	for i, v := range c.Verts {
		for k := 0; k < 3; k++ {
			if v[k] != -1 && v[k] != 1 {
				t.Fatalf("vertex %d component %d = %v, want ±1", i, k, v[k])
			}
		}
		if v[3] != 1 {
			t.Fatalf("vertex %d w = %v, want 1", i, v[3])
		}
		if seen[v] {
			t.Fatalf("vertex %d duplicated: %v", i, v)
		}
		seen[v] = true
	}
}

func TestUnitCubeIsACopy(t *testing.T) {
	c := UnitCube()
	c.Verts[0] = mathutil.Point(9, 9, 9)
	c.Faces[0] = Quad{0, 0, 0, 0}
	if fresh := UnitCube(); fresh.Verts[0] != mathutil.Point(-1, -1, -1) || fresh.Faces[0] != (Quad{1, 5, 7, 3}) {
		t.Fatal("mutating a returned cube changed the shared geometry")
	}
}

func TestFaceEdgesAreCubeEdges(t *testing.T) {
	c := UnitCube()
	edges := make(map[[2]int]int)
	for fi, f := range c.Faces {
		for _, e := range f.Edges() {
			a, b := e[0], e[1]
			if a < 0 || a >= VertexCount || b < 0 || b >= VertexCount {
				t.Fatalf("face %d references vertex outside 0-7: %v", fi, e)
			}
			// A cube edge has length 2 between corners of the unit cube.
			if l := c.Verts[a].XYZ().Sub(c.Verts[b].XYZ()).Len(); l != 2 {
				t.Fatalf("face %d edge %v has length %v, want 2", fi, e, l)
			}
			if a > b {
				a, b = b, a
			}
			edges[[2]int{a, b}]++
		}
	}
	if len(edges) != 12 {
		t.Fatalf("faces cover %d distinct edges, want 12", len(edges))
	}
	for e, n := range edges {
		if n != 2 {
			t.Errorf("edge %v shared by %d faces, want 2", e, n)
		}
	}
}

func TestQuadEdgesClosesLoop(t *testing.T) {
	got := Quad{1, 5, 7, 3}.Edges()
	want := [4][2]int{{1, 5}, {5, 7}, {7, 3}, {3, 1}}
	if got != want {
		t.Fatalf("Edges() = %v, want %v", got, want)
	}
}

func TestFrameMatrixOrthonormal(t *testing.T) {
	for i := 0; i <= 1000; i++ {
		tm := float64(i) * 0.37
		m := FrameMatrix(tm, DefaultDistance)
		r := m.Rotation()

		c, s := r[0], r[2]
		if d := c*c + s*s; math.Abs(d-1) > 1e-12 {
			t.Fatalf("t=%v: c²+s² = %v", tm, d)
		}
		if r[4] != 1 || r[1] != 0 || r[3] != 0 || r[5] != 0 || r[7] != 0 {
			t.Fatalf("t=%v: Y axis not passed through: %v", tm, r)
		}
		if !r.IsOrthonormal(1e-12) {
			t.Fatalf("t=%v: rotation block not orthonormal", tm)
		}
		if det := m.Det(); math.Abs(det) < 1e-9 {
			t.Fatalf("t=%v: determinant %v is singular", tm, det)
		}
	}
}

func TestFrameMatrixRotatesThenTranslates(t *testing.T) {
	for _, tm := range []float64{0, 0.5, math.Pi / 3, 2.75, 10} {
		got := FrameMatrix(tm, 1.75)
		want := mathutil.FromMat3Translation(mathutil.RotY(tm), mathutil.Vec3{0, 0, -1.75})
		for i := range got {
			if math.Abs(got[i]-want[i]) > 1e-15 {
				t.Fatalf("t=%v: element %d = %v, want %v", tm, i, got[i], want[i])
			}
		}
	}
}

func TestFrameMatrixTranslation(t *testing.T) {
	m := FrameMatrix(1.234, DefaultDistance)
	got := mathutil.Transform(m, mathutil.Point(0, 0, 0))
	if want := (mathutil.Vec4{0, 0, -DefaultDistance, 1}); got != want {
		t.Fatalf("origin maps to %v, want %v", got, want)
	}
}

func TestFrameMatrixAtZero(t *testing.T) {
	m := FrameMatrix(0, DefaultDistance)
	got := mathutil.Transform(m, mathutil.Point(-1, -1, -1))
	if want := (mathutil.Vec4{-1, -1, -3.5, 1}); got != want {
		t.Fatalf("vertex 0 maps to %v, want %v", got, want)
	}
}
