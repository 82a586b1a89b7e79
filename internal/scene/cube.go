package scene

import "cubespin/internal/mathutil"

// Vertex numbering:
//
//	4    +------+ 6
//	    /|     /|
//	5  +------+ |7
//	   | |    | |
//	0  | +----|-+ 2
//	   |/     |/
//	1  +------+ 3
var unitCube = Cube{
	Verts: [VertexCount]mathutil.Vec4{
		{-1, -1, -1, 1},
		{-1, -1, 1, 1},
		{1, -1, -1, 1},
		{1, -1, 1, 1},
		{-1, 1, -1, 1},
		{-1, 1, 1, 1},
		{1, 1, -1, 1},
		{1, 1, 1, 1},
	},
	Faces: [FaceCount]Quad{
		{1, 5, 7, 3},
		{3, 7, 6, 2},
		{0, 4, 5, 1},
		{2, 6, 4, 0},
		{0, 1, 3, 2},
		{5, 4, 6, 7},
	},
}

// UnitCube returns the cube with corners in {-1,+1}³.
func UnitCube() Cube {
	return unitCube
}
