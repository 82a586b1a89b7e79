package scene

import "cubespin/internal/mathutil"

// DefaultDistance is how far the cube sits from the camera along -Z.
const DefaultDistance = 2.5

// FrameMatrix builds the per-frame transform: a rotation of the X/Z plane by
// angle t followed by a translation of -distance along Z. It is rebuilt from
// t every frame and carries no other state.
func FrameMatrix(t, distance float64) mathutil.Mat4 {
	rot := mathutil.FromMat3Translation(mathutil.RotY(t), mathutil.Vec3{})
	move := mathutil.FromMat3Translation(mathutil.Mat3Identity(), mathutil.Vec3{0, 0, -distance})
	return mathutil.Mat4Mul(rot, move)
}
