package voxel

import (
	"image/color"
)

// Canvas is the intermediate RGB raster a frame is painted into: three bytes
// per pixel, row-major by width*row + x. Row 0 is the bottom scanline.
type Canvas struct {
	Width  int
	Height int
	Pix    []byte
}

// NewCanvas allocates a black canvas.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		Pix:    make([]byte, 3*width*height),
	}
}

// Clear fills every pixel with c.
func (c *Canvas) Clear(col color.RGBA) {
	if len(c.Pix) == 0 {
		return
	}
	c.Pix[0], c.Pix[1], c.Pix[2] = col.R, col.G, col.B
	// Doubling copy fills the rest from the first pixel.
	for n := 3; n < len(c.Pix); n *= 2 {
		copy(c.Pix[n:], c.Pix[:n])
	}
}

// At returns the pixel at column x, row y (alpha is always 255).
func (c *Canvas) At(x, y int) color.RGBA {
	i := 3 * (c.Width*y + x)
	return color.RGBA{R: c.Pix[i], G: c.Pix[i+1], B: c.Pix[i+2], A: 255}
}

// FillColumn paints rows [from, to) of column x. The range is clipped to
// the canvas.
func (c *Canvas) FillColumn(x, from, to int, col color.RGBA) {
	if from < 0 {
		from = 0
	}
	if to > c.Height {
		to = c.Height
	}
	for row := from; row < to; row++ {
		i := 3 * (c.Width*row + x)
		c.Pix[i] = col.R
		c.Pix[i+1] = col.G
		c.Pix[i+2] = col.B
	}
}
