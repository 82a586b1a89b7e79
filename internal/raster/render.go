package raster

import (
	"cubespin/internal/mathutil"
	"cubespin/internal/scene"
	"cubespin/internal/viewmatrix"
)

// Glyphs are the characters written for vertices and edges. Both must be
// single printable ASCII characters so every row stays valid text.
// Markers are drawn before edges and every edge ends on a vertex cell, so
// Marker only stays visible where all edges at that vertex were skipped.
type Glyphs struct {
	Marker byte
	Edge   byte
}

// DefaultGlyphs matches the classic spinning-cube look.
var DefaultGlyphs = Glyphs{Marker: '$', Edge: '#'}

// Frame is the result of one pipeline pass, kept for callers that log or
// export it.
type Frame struct {
	Points  []viewmatrix.ScreenPoint
	Visible []bool
	Skipped int // vertices dropped by the depth guard
}

// RenderFrame transforms the cube by m, projects it through vp, then plots
// vertex markers followed by every face's edges in loop order. Vertices that
// fail the depth guard are skipped together with the edges touching them.
func RenderFrame(c Canvas, cube scene.Cube, m mathutil.Mat4, vp viewmatrix.Viewport, g Glyphs) Frame {
	pts, vis := viewmatrix.ProjectVertices(cube.Verts[:], m, vp)

	f := Frame{Points: pts, Visible: vis}
	for i, p := range pts {
		if !vis[i] {
			f.Skipped++
			continue
		}
		PlotMarker(c, p.X, p.Y, g.Marker)
	}

	for _, face := range cube.Faces {
		DrawFace(c, face, pts, vis, g.Edge)
	}
	return f
}

// DrawFace draws the 4 boundary edges of a quad as a closed loop.
func DrawFace(c Canvas, face scene.Quad, pts []viewmatrix.ScreenPoint, vis []bool, glyph byte) {
	for _, e := range face.Edges() {
		a, b := e[0], e[1]
		if !vis[a] || !vis[b] {
			continue
		}
		DrawLine(c, pts[a].X, pts[a].Y, pts[b].X, pts[b].Y, glyph)
	}
}
