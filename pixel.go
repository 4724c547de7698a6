package dpx

import (
	"fmt"
	"io"
	"math"
)

// maxPixels bounds the payload size Decode is willing to allocate.
const maxPixels = 1 << 28

// CheckProfile reports whether the first image element is 10-bit RGB, filled to 32-bit
// words with padding first and no encoding. Any other combination is rejected with
// *UnsupportedFormatError.
func CheckProfile(m *Metadata) error {
	if m.Depth() == ProfileDepth && m.Packing() == ProfilePacking &&
		m.Encoding() == ProfileEncoding && m.Descriptor() == ProfileDescriptor {
		return nil
	}
	return &UnsupportedFormatError{
		Depth:      m.Depth(),
		Packing:    m.Packing(),
		Encoding:   m.Encoding(),
		Descriptor: m.Descriptor(),
	}
}

// Decode reads the pixel payload described by m. Rows are returned in stored order;
// the orientation field is not applied.
func Decode(r io.ReadSeeker, m *Metadata) (*Image, error) {
	if err := CheckProfile(m); err != nil {
		return nil, err
	}
	w, h := m.Width(), m.Height()
	if uint64(w)*uint64(h) > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds pixel limit", ErrUnsupportedFormat, w, h)
	}

	words, err := readAt(r, int64(m.PayloadOffset), int64(w)*int64(h)*wordSize)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}

	img := NewImage(int(w), int(h))
	unpackWords(img.Pix, words, m.Endianness)
	return img, nil
}

// Encode writes raw verbatim at offset 0 followed by img packed at raw.PayloadOffset.
// img must have the dimensions recorded in raw; header fields are never rewritten.
// A failed write is not rolled back.
func Encode(w io.WriteSeeker, raw *RawHeader, img *Image) error {
	if err := checkShape(raw, img); err != nil {
		return err
	}

	if _, err := w.Seek(0, io.SeekStart); err != nil {
		return fmt.Errorf("seek header: %w", err)
	}
	if _, err := w.Write(raw.data); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	words := make([]byte, img.Width*img.Height*wordSize)
	packWords(words, img.Pix, raw.Endianness)

	if _, err := w.Seek(int64(raw.PayloadOffset), io.SeekStart); err != nil {
		return fmt.Errorf("seek payload: %w", err)
	}
	if _, err := w.Write(words); err != nil {
		return fmt.Errorf("write payload: %w", err)
	}
	return nil
}

func checkShape(raw *RawHeader, img *Image) error {
	if img == nil {
		return &ShapeError{WantWidth: raw.Width, WantHeight: raw.Height}
	}
	if uint64(img.Width) != uint64(raw.Width) || uint64(img.Height) != uint64(raw.Height) ||
		img.Width < 0 || img.Height < 0 || len(img.Pix) != img.Width*img.Height*channels {
		return &ShapeError{
			WantWidth:  raw.Width,
			WantHeight: raw.Height,
			Width:      img.Width,
			Height:     img.Height,
			Samples:    len(img.Pix),
		}
	}
	return nil
}

// Payload words use the byte order declared by the header magic.
func unpackWords(dst []float32, words []byte, e Endianness) {
	order := e.ByteOrder()
	for i := 0; i < len(dst)/channels; i++ {
		word := order.Uint32(words[i*wordSize:])
		dst[i*channels] = float32((word>>shiftRed)&sampleMask) / sampleMax
		dst[i*channels+1] = float32((word>>shiftGreen)&sampleMask) / sampleMax
		dst[i*channels+2] = float32((word>>shiftBlue)&sampleMask) / sampleMax
	}
}

func packWords(dst []byte, pix []float32, e Endianness) {
	order := e.ByteOrder()
	for i := 0; i < len(pix)/channels; i++ {
		word := quantize(pix[i*channels])<<shiftRed |
			quantize(pix[i*channels+1])<<shiftGreen |
			quantize(pix[i*channels+2])<<shiftBlue
		order.PutUint32(dst[i*wordSize:], word)
	}
}

func quantize(v float32) uint32 {
	if v != v {
		return 0
	}
	return uint32(math.Round(float64(clamp01(v))*sampleMax)) & sampleMask
}
