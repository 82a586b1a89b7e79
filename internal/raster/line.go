package raster

import "math"

// ClipSegment clips the segment (x0,y0)-(x1,y1) to the cell rectangle
// [0,w)×[0,h) with Liang–Barsky. It reports false when nothing is left or an
// endpoint is not finite.
func ClipSegment(x0, y0, x1, y1 float64, w, h int) (cx0, cy0, cx1, cy1 float64, ok bool) {
	for _, f := range [4]float64{x0, y0, x1, y1} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, 0, 0, 0, false
		}
	}

	// Keep the far edge just inside the last cell so floor() stays in range.
	maxX := math.Nextafter(float64(w), 0)
	maxY := math.Nextafter(float64(h), 0)

	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0, maxX - x0, y0, maxY - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}

	cx0, cy0 = x0+t0*dx, y0+t0*dy
	cx1, cy1 = x0+t1*dx, y0+t1*dy
	return clampTo(cx0, maxX), clampTo(cy0, maxY), clampTo(cx1, maxX), clampTo(cy1, maxY), true
}

// clampTo absorbs rounding from the parametric step.
func clampTo(v, hi float64) float64 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// DrawLine rasterizes the segment between two screen points with Bresenham,
// both endpoints included. The segment is clipped to the canvas first, so
// every Set call lands inside it and far-off endpoints cost nothing.
func DrawLine(c Canvas, x0, y0, x1, y1 float64, glyph byte) {
	x0, y0, x1, y1, ok := ClipSegment(x0, y0, x1, y1, c.Width(), c.Height())
	if !ok {
		return
	}

	ix0, iy0 := int(math.Floor(x0)), int(math.Floor(y0))
	ix1, iy1 := int(math.Floor(x1)), int(math.Floor(y1))

	dx := abs(ix1 - ix0)
	dy := -abs(iy1 - iy0)
	sx, sy := 1, 1
	if ix0 > ix1 {
		sx = -1
	}
	if iy0 > iy1 {
		sy = -1
	}

	err := dx + dy
	x, y := ix0, iy0
	for {
		c.Set(x, y, glyph)
		if x == ix1 && y == iy1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// PlotMarker writes glyph at the cell containing (x, y), if any.
func PlotMarker(c Canvas, x, y float64, glyph byte) bool {
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	fx, fy := math.Floor(x), math.Floor(y)
	if fx < 0 || fy < 0 || fx >= float64(c.Width()) || fy >= float64(c.Height()) {
		return false
	}
	return c.Set(int(fx), int(fy), glyph)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
