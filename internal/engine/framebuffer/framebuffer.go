// Package framebuffer provides the CPU-side RGBA display surface that frames
// are composited into before upload.
package framebuffer

import (
	"image"
	"image/color"
)

// Framebuffer is a packed RGBA pixel surface. Row 0 is the bottom scanline,
// matching the OpenGL texture origin.
type Framebuffer struct {
	pix    []byte
	width  int
	height int
}

// New creates a new framebuffer with the specified dimensions.
// Dimensions below one are raised to one.
func New(width, height int) *Framebuffer {
	fb := &Framebuffer{}
	fb.Resize(width, height)
	return fb
}

// Clear fills every pixel with c.
func (fb *Framebuffer) Clear(c color.RGBA) {
	fb.pix[0], fb.pix[1], fb.pix[2], fb.pix[3] = c.R, c.G, c.B, c.A
	for n := 4; n < len(fb.pix); n *= 2 {
		copy(fb.pix[n:], fb.pix[:n])
	}
}

// Pix returns the backing pixel slice (width*height*4 bytes).
func (fb *Framebuffer) Pix() []byte {
	return fb.pix
}

// Size returns the framebuffer dimensions.
func (fb *Framebuffer) Size() (width, height int) {
	return fb.width, fb.height
}

// Resize reallocates the surface if the dimensions have changed.
// Contents are not preserved.
func (fb *Framebuffer) Resize(width, height int) {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if width == fb.width && height == fb.height {
		return
	}

	fb.width = width
	fb.height = height
	fb.pix = make([]byte, width*height*4)
}

// At returns the pixel at column x, row y counted from the bottom.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	i := (y*fb.width + x) * 4
	return color.RGBA{R: fb.pix[i], G: fb.pix[i+1], B: fb.pix[i+2], A: fb.pix[i+3]}
}

// Image returns an upright copy of the surface (row 0 on top), ready for
// image encoders.
func (fb *Framebuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.width, fb.height))

	rowSize := fb.width * 4
	for y := 0; y < fb.height; y++ {
		srcOffset := (fb.height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], fb.pix[srcOffset:srcOffset+rowSize])
	}
	return img
}
