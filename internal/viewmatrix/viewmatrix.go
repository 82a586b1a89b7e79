package viewmatrix

import (
	"math"

	"cubespin/internal/mathutil"
)

// DepthEpsilon is the smallest |z| accepted by the perspective divide.
const DepthEpsilon = 1e-6

// ScreenPoint is a projected vertex in buffer cell coordinates.
type ScreenPoint struct {
	X, Y float64
}

// Viewport maps normalized projected coordinates onto the character grid.
type Viewport struct {
	ScaleX, ScaleY   float64
	OffsetX, OffsetY float64
}

// NewViewport centers the projection: scale and offset are half the buffer
// width and height.
func NewViewport(width, height int) Viewport {
	hw, hh := float64(width)*0.5, float64(height)*0.5
	return Viewport{ScaleX: hw, ScaleY: hh, OffsetX: hw, OffsetY: hh}
}

// Project applies the perspective divide (focal length 1, no near/far
// clipping) to a camera-space vertex. It reports false when |z| is below
// DepthEpsilon or the result is not finite; the caller skips that vertex.
// No clamping to the viewport is done here.
func (vp Viewport) Project(v mathutil.Vec4) (ScreenPoint, bool) {
	z := v[2]
	if math.IsNaN(z) || math.Abs(z) < DepthEpsilon {
		return ScreenPoint{}, false
	}
	invZ := 1 / z
	p := ScreenPoint{
		X: v[0]*invZ*vp.ScaleX + vp.OffsetX,
		Y: v[1]*invZ*vp.ScaleY + vp.OffsetY,
	}
	if !finite(p.X) || !finite(p.Y) {
		return ScreenPoint{}, false
	}
	return p, true
}

// ProjectVertices transforms object-space vertices by m and projects them.
// ok[i] is false for vertices that failed the depth guard.
func ProjectVertices(verts []mathutil.Vec4, m mathutil.Mat4, vp Viewport) (pts []ScreenPoint, ok []bool) {
	pts = make([]ScreenPoint, len(verts))
	ok = make([]bool, len(verts))
	for i, v := range verts {
		pts[i], ok[i] = vp.Project(mathutil.Transform(m, v))
	}
	return pts, ok
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
