// Package terrain holds the color and height rasters the voxel renderer marches over.
package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// Terrain map errors.
var (
	ErrInvalidDimensions = errors.New("terrain dimensions must be positive")
	ErrRasterSize        = errors.New("raster length does not match dimensions")
	ErrDimensionMismatch = errors.New("color and height maps differ in size")
)

// Texel is one sampled cell of the terrain.
type Texel struct {
	Color  color.RGBA
	Height uint8
}

// Map is an immutable pair of same-sized rasters addressed by one flat index
// (width*y + x). Color holds 4 bytes per texel, height one.
type Map struct {
	width  int
	height int
	color  []byte
	alt    []byte
}

// New builds a map that takes ownership of the given rasters.
// colorPix must hold 4*width*height RGBA bytes and heights width*height bytes.
func New(width, height int, colorPix, heights []byte) (*Map, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	n := width * height
	if len(colorPix) != 4*n {
		return nil, fmt.Errorf("%w: color has %d bytes, want %d", ErrRasterSize, len(colorPix), 4*n)
	}
	if len(heights) != n {
		return nil, fmt.Errorf("%w: height has %d bytes, want %d", ErrRasterSize, len(heights), n)
	}
	return &Map{width: width, height: height, color: colorPix, alt: heights}, nil
}

// FromImages builds a map from decoded images. Elevation comes from the red
// channel of the height image, which equals luminance for grayscale maps.
func FromImages(colorImg, heightImg *image.RGBA) (*Map, error) {
	cb, hb := colorImg.Bounds(), heightImg.Bounds()
	if cb.Dx() != hb.Dx() || cb.Dy() != hb.Dy() {
		return nil, fmt.Errorf("%w: color %dx%d, height %dx%d",
			ErrDimensionMismatch, cb.Dx(), cb.Dy(), hb.Dx(), hb.Dy())
	}

	w, h := cb.Dx(), cb.Dy()
	colorPix := make([]byte, 0, 4*w*h)
	heights := make([]byte, 0, w*h)
	for y := 0; y < h; y++ {
		row := colorImg.PixOffset(cb.Min.X, cb.Min.Y+y)
		colorPix = append(colorPix, colorImg.Pix[row:row+4*w]...)

		hrow := heightImg.PixOffset(hb.Min.X, hb.Min.Y+y)
		for x := 0; x < w; x++ {
			heights = append(heights, heightImg.Pix[hrow+4*x])
		}
	}
	return New(w, h, colorPix, heights)
}

// Size returns the map dimensions in texels.
func (m *Map) Size() (width, height int) {
	return m.width, m.height
}

// InBounds reports whether (x, y) addresses a texel.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Sample returns the texel at (x, y). ok is false outside [0,width)x[0,height).
func (m *Map) Sample(x, y int) (t Texel, ok bool) {
	if !m.InBounds(x, y) {
		return Texel{}, false
	}
	idx := m.width*y + x
	c := m.color[4*idx : 4*idx+4]
	return Texel{
		Color:  color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]},
		Height: m.alt[idx],
	}, true
}
