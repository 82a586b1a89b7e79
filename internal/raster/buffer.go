package raster

import "strings"

// Blank fills every cell at the start of a frame.
const Blank byte = ' '

// Canvas is the write target of the rasterizer. Implementations must ignore
// writes outside [0,Width)×[0,Height); the rasterizer clips before writing
// anyway.
type Canvas interface {
	Width() int
	Height() int
	Set(x, y int, glyph byte) bool
}

// FrameBuffer is a fixed-size glyph grid held as one flat slice, row-major.
type FrameBuffer struct {
	w, h  int
	cells []byte
}

// NewFrameBuffer allocates a w×h grid filled with Blank.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{w: w, h: h, cells: make([]byte, w*h)}
	fb.Clear()
	return fb
}

func (fb *FrameBuffer) Width() int  { return fb.w }
func (fb *FrameBuffer) Height() int { return fb.h }

// Clear resets every cell to Blank.
func (fb *FrameBuffer) Clear() {
	for i := range fb.cells {
		fb.cells[i] = Blank
	}
}

// InBounds reports whether (x, y) addresses a cell.
func (fb *FrameBuffer) InBounds(x, y int) bool {
	return x >= 0 && x < fb.w && y >= 0 && y < fb.h
}

// Set writes glyph at (x, y). Out-of-range writes are dropped and report false.
func (fb *FrameBuffer) Set(x, y int, glyph byte) bool {
	if !fb.InBounds(x, y) {
		return false
	}
	fb.cells[y*fb.w+x] = glyph
	return true
}

// At returns the glyph at (x, y), or Blank outside the grid.
func (fb *FrameBuffer) At(x, y int) byte {
	if !fb.InBounds(x, y) {
		return Blank
	}
	return fb.cells[y*fb.w+x]
}

// Row returns row y without copying. Callers must not retain it past the frame.
func (fb *FrameBuffer) Row(y int) []byte {
	return fb.cells[y*fb.w : (y+1)*fb.w]
}

// Rows returns a copy of every row as text.
func (fb *FrameBuffer) Rows() []string {
	rows := make([]string, fb.h)
	for y := range rows {
		rows[y] = string(fb.Row(y))
	}
	return rows
}

func (fb *FrameBuffer) String() string {
	return strings.Join(fb.Rows(), "\n")
}
