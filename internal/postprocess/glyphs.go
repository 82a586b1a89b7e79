package postprocess

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"cubespin/internal/raster"
)

// Style sets the colors used when a glyph grid is turned into pixels.
type Style struct {
	Foreground color.NRGBA
	Background color.NRGBA
}

// DefaultStyle is light text on a near-black terminal background.
var DefaultStyle = Style{
	Foreground: color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
	Background: color.NRGBA{R: 0x12, G: 0x12, B: 0x12, A: 0xff},
}

var face = basicfont.Face7x13

// CellSize is the pixel size of one character cell.
func CellSize() (w, h int) {
	return face.Advance, face.Height
}

// RenderGlyphs draws every non-blank cell of fb with a fixed 7×13 bitmap font.
func RenderGlyphs(fb *raster.FrameBuffer, st Style) *image.NRGBA {
	cw, ch := CellSize()
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width()*cw, fb.Height()*ch))
	draw.Draw(img, img.Bounds(), image.NewUniform(st.Background), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(st.Foreground),
		Face: face,
	}
	var glyph [1]byte
	for y := 0; y < fb.Height(); y++ {
		row := fb.Row(y)
		for x, g := range row {
			if g == raster.Blank {
				continue
			}
			glyph[0] = g
			d.Dot = fixed.P(x*cw, y*ch+face.Ascent)
			d.DrawBytes(glyph[:])
		}
	}
	return img
}
