package dpx

import (
	"image"
	"image/color"
	"math"
)

// ToRGBA64 converts img to a 16-bit RGBA image with opaque alpha.
func ToRGBA64(img *Image) *image.RGBA64 {
	out := image.NewRGBA64(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		row := out.Pix[y*out.Stride:]
		for x := 0; x < img.Width; x++ {
			r, g, b := img.At(x, y)
			p := row[x*8 : x*8+8]
			putU16(p[0:2], to16(r))
			putU16(p[2:4], to16(g))
			putU16(p[4:6], to16(b))
			putU16(p[6:8], 0xFFFF)
		}
	}
	return out
}

// FromImage converts any image to normalized RGB samples. Alpha is discarded.
func FromImage(m image.Image) *Image {
	b := m.Bounds()
	out := NewImage(b.Dx(), b.Dy())
	if src, ok := m.(*image.RGBA64); ok {
		for y := 0; y < out.Height; y++ {
			row := src.Pix[(y+b.Min.Y-src.Rect.Min.Y)*src.Stride+(b.Min.X-src.Rect.Min.X)*8:]
			for x := 0; x < out.Width; x++ {
				p := row[x*8 : x*8+8]
				out.Set(x, y, from16(getU16(p[0:2])), from16(getU16(p[2:4])), from16(getU16(p[4:6])))
			}
		}
		return out
	}
	for y := 0; y < out.Height; y++ {
		for x := 0; x < out.Width; x++ {
			c := color.RGBA64Model.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(color.RGBA64)
			out.Set(x, y, from16(c.R), from16(c.G), from16(c.B))
		}
	}
	return out
}

func to16(v float32) uint16 {
	if v != v {
		return 0
	}
	return uint16(math.Round(float64(clamp01(v)) * 65535.0))
}

func from16(v uint16) float32 {
	return float32(v) / 65535.0
}

func putU16(b []byte, v uint16) {
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func getU16(b []byte) uint16 {
	return uint16(b[0])<<8 | uint16(b[1])
}
