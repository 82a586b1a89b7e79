package main

import (
	"flag"
	"fmt"
	"os"

	"cubespin/internal/mathutil"
	"cubespin/internal/raster"
	"cubespin/internal/scene"
	"cubespin/internal/viewmatrix"
)

func main() {
	t := flag.Float64("t", 0, "Time (rotation angle in radians)")
	width := flag.Int("width", 60, "Frame width")
	height := flag.Int("height", 30, "Frame height")
	dist := flag.Float64("distance", scene.DefaultDistance, "Camera distance")
	flag.Parse()

	if *width <= 0 || *height <= 0 {
		fmt.Fprintln(os.Stderr, "Error: width and height must be positive")
		os.Exit(1)
	}

	cube := scene.UnitCube()
	m := scene.FrameMatrix(*t, *dist)
	vp := viewmatrix.NewViewport(*width, *height)

	fmt.Printf("t=%.4f distance=%.3f det=%.6f orthonormal=%v\n",
		*t, *dist, m.Det(), m.Rotation().IsOrthonormal(1e-9))
	fmt.Println("Matrix (row-vector convention):")
	for r := 0; r < 4; r++ {
		fmt.Printf("  [% .4f % .4f % .4f % .4f]\n", m[r*4], m[r*4+1], m[r*4+2], m[r*4+3])
	}

	fmt.Println("Vertices:")
	for i, v := range cube.Verts {
		cam := mathutil.Transform(m, v)
		p, ok := vp.Project(cam)
		status := "ok"
		switch {
		case !ok:
			status = "skipped (degenerate depth)"
		case p.X < 0 || p.Y < 0 || p.X >= float64(*width) || p.Y >= float64(*height):
			status = "off screen"
		}
		fmt.Printf("  [%d] obj(% .0f,% .0f,% .0f) cam(% .3f,% .3f,% .3f) range %.3f screen(%7.3f,%7.3f) %s\n",
			i, v[0], v[1], v[2], cam[0], cam[1], cam[2], cam.XYZ().Len(), p.X, p.Y, status)
	}

	fmt.Println("Faces:")
	for i, f := range cube.Faces {
		// Camera-space edge lengths stay 2 under a rigid transform.
		var lens [4]float64
		for j, e := range f.Edges() {
			a := mathutil.Transform(m, cube.Verts[e[0]]).XYZ()
			b := mathutil.Transform(m, cube.Verts[e[1]]).XYZ()
			lens[j] = a.Sub(b).Len()
		}
		fmt.Printf("  [%d] %v edges %v lengths %.3f\n", i, f, f.Edges(), lens)
	}

	fb := raster.NewFrameBuffer(*width, *height)
	raster.RenderFrame(fb, cube, m, vp, raster.DefaultGlyphs)
	fmt.Println("Frame:")
	fmt.Println(fb.String())
}
