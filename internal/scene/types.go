package scene

import "cubespin/internal/mathutil"

// VertexCount and FaceCount are fixed for the process lifetime.
const (
	VertexCount = 8
	FaceCount   = 6
)

// Quad is a face as a closed loop of 4 vertex indices. Cyclic consecutive
// pairs are the boundary edges.
type Quad [4]int

// Edges returns (q[i], q[i+1 mod 4]) in loop order.
func (q Quad) Edges() [4][2]int {
	var e [4][2]int
	for i := range q {
		e[i] = [2]int{q[i], q[(i+1)%len(q)]}
	}
	return e
}

// Cube holds object-space geometry. Value type: callers get their own copy.
type Cube struct {
	Verts [VertexCount]mathutil.Vec4
	Faces [FaceCount]Quad
}
