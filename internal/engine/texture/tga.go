package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// TGA image type constants.
const (
	TGATypeUncompressed = 2  // Uncompressed true-color
	TGATypeRLE          = 10 // RLE compressed true-color
)

var errTGATruncated = errors.New("TGA data truncated")

// DecodeTGA decodes a TGA image.
// Supports uncompressed true-color (type 2) and RLE compressed (type 10) files
// at 24 or 32 bits per pixel, which covers what common terrain editors export.
func DecodeTGA(data []byte) (image.Image, error) {
	if len(data) < 18 {
		return nil, fmt.Errorf("TGA data too short")
	}

	idLength := int(data[0])
	colorMapType := data[1]
	imageType := data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	descriptor := data[17]

	if colorMapType != 0 {
		return nil, fmt.Errorf("color-mapped TGA not supported")
	}
	if imageType != TGATypeUncompressed && imageType != TGATypeRLE {
		return nil, fmt.Errorf("unsupported TGA type %d (only uncompressed/RLE true-color supported)", imageType)
	}
	if bpp != 24 && bpp != 32 {
		return nil, fmt.Errorf("unsupported TGA bit depth %d (only 24/32 supported)", bpp)
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("TGA has empty dimensions %dx%d", width, height)
	}

	offset := 18 + idLength
	if offset > len(data) {
		return nil, errTGATruncated
	}

	// Reject payloads that cannot fill the declared size before allocating.
	src := data[offset:]
	if len(src) < minTGAPayload(imageType, width*height, bpp/8) {
		return nil, errTGATruncated
	}

	d := tgaDecoder{
		src:         src,
		img:         image.NewRGBA(image.Rect(0, 0, width, height)),
		bpp:         bpp / 8,
		topToBottom: descriptor&0x20 != 0,
	}

	if imageType == TGATypeUncompressed {
		for i := 0; i < width*height; i++ {
			d.put(i, d.read())
		}
		return d.img, nil
	}

	if err := d.decodeRLE(); err != nil {
		return nil, err
	}
	return d.img, nil
}

// minTGAPayload is the smallest pixel payload that can describe pixels
// pixels. An RLE packet covers at most 128 pixels and costs a header byte
// plus one pixel.
func minTGAPayload(imageType byte, pixels, bytesPerPixel int) int {
	if imageType == TGATypeRLE {
		return (pixels + 127) / 128 * (1 + bytesPerPixel)
	}
	return pixels * bytesPerPixel
}

type tgaDecoder struct {
	src         []byte
	pos         int
	img         *image.RGBA
	bpp         int
	topToBottom bool
}

// read consumes one BGR(A) pixel. Callers check that enough bytes remain.
func (d *tgaDecoder) read() color.RGBA {
	p := d.src[d.pos : d.pos+d.bpp]
	d.pos += d.bpp
	c := color.RGBA{R: p[2], G: p[1], B: p[0], A: 255}
	if d.bpp == 4 {
		c.A = p[3]
	}
	return c
}

// put stores pixel i in file order, honouring the vertical origin bit.
func (d *tgaDecoder) put(i int, c color.RGBA) {
	w := d.img.Rect.Dx()
	x, y := i%w, i/w
	if !d.topToBottom {
		y = d.img.Rect.Dy() - 1 - y
	}
	d.img.SetRGBA(x, y, c)
}

func (d *tgaDecoder) decodeRLE() error {
	total := d.img.Rect.Dx() * d.img.Rect.Dy()
	n := 0
	for n < total {
		if d.pos >= len(d.src) {
			return errTGATruncated
		}
		packet := d.src[d.pos]
		d.pos++
		count := int(packet&0x7F) + 1

		if packet&0x80 != 0 {
			if d.pos+d.bpp > len(d.src) {
				return errTGATruncated
			}
			c := d.read()
			for i := 0; i < count && n < total; i++ {
				d.put(n, c)
				n++
			}
			continue
		}

		for i := 0; i < count && n < total; i++ {
			if d.pos+d.bpp > len(d.src) {
				return errTGATruncated
			}
			d.put(n, d.read())
			n++
		}
	}
	return nil
}
