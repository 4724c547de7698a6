package dpx

import (
	"errors"
	"io"

	"golang.org/x/image/tiff"
)

// EncodeTIFF writes img as a deflate-compressed 16-bit RGBA TIFF.
func EncodeTIFF(w io.Writer, img *Image) error {
	if img == nil || len(img.Pix) != img.Width*img.Height*channels {
		return errors.New("invalid image")
	}
	return tiff.Encode(w, ToRGBA64(img), &tiff.Options{Compression: tiff.Deflate})
}

// DecodeTIFF reads a TIFF image into normalized RGB samples.
func DecodeTIFF(r io.Reader) (*Image, error) {
	m, err := tiff.Decode(r)
	if err != nil {
		return nil, err
	}
	b := m.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, errors.New("invalid TIFF dimensions")
	}
	return FromImage(m), nil
}
