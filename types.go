package dpx

import (
	"encoding/binary"
	"strings"
)

// Endianness identifies the byte order declared by the file magic.
type Endianness int

const (
	// BigEndian is declared by the "SDPX" magic.
	BigEndian Endianness = iota
	// LittleEndian is declared by the "XPDS" magic.
	LittleEndian
)

// ByteOrder returns the binary byte order for e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// String returns "be" or "le".
func (e Endianness) String() string {
	if e == LittleEndian {
		return "le"
	}
	return "be"
}

// FieldKind selects how a header field is decoded.
type FieldKind int

const (
	KindMagic FieldKind = iota
	KindText
	KindUint8
	KindUint16
	KindUint32
	KindFloat32
	KindRawBytes
)

func (k FieldKind) String() string {
	switch k {
	case KindMagic:
		return "magic"
	case KindText:
		return "text"
	case KindUint8:
		return "uint8"
	case KindUint16:
		return "uint16"
	case KindUint32:
		return "uint32"
	case KindFloat32:
		return "float32"
	case KindRawBytes:
		return "raw"
	default:
		return "unknown"
	}
}

// Value is a decoded header field. Only the member matching Kind is set:
// Uint for the unsigned kinds, Float for float32, Text for magic and text, Raw for raw bytes.
type Value struct {
	Kind  FieldKind
	Uint  uint32
	Float float32
	Text  string
	Raw   []byte
}

// Metadata holds the decoded header of a DPX file.
type Metadata struct {
	Endianness    Endianness
	PayloadOffset uint32

	values map[string]Value
}

// Lookup returns the decoded value of a named field.
func (m *Metadata) Lookup(name string) (Value, bool) {
	v, ok := m.values[name]
	if ok && v.Raw != nil {
		v.Raw = append([]byte(nil), v.Raw...)
	}
	return v, ok
}

// Uint returns an unsigned integer field, or 0 if it is absent.
func (m *Metadata) Uint(name string) uint32 {
	return m.values[name].Uint
}

// Float returns a float32 field, or 0 if it is absent.
func (m *Metadata) Float(name string) float32 {
	return m.values[name].Float
}

// Text returns a fixed-width text field exactly as stored, including NUL padding.
func (m *Metadata) Text(name string) string {
	return m.values[name].Text
}

// TrimmedText returns a text field with trailing NUL padding and surrounding spaces removed.
func (m *Metadata) TrimmedText(name string) string {
	s := m.values[name].Text
	if i := strings.IndexByte(s, 0); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// Raw returns a copy of a raw byte field.
func (m *Metadata) Raw(name string) []byte {
	v := m.values[name]
	if v.Raw == nil {
		return nil
	}
	return append([]byte(nil), v.Raw...)
}

// Width returns the pixels per line of image element 1.
func (m *Metadata) Width() uint32 { return m.Uint("width") }

// Height returns the lines per image element.
func (m *Metadata) Height() uint32 { return m.Uint("height") }

// Depth returns the bit depth of image element 1.
func (m *Metadata) Depth() uint32 { return m.Uint("depth") }

// Packing returns the packing method of image element 1.
func (m *Metadata) Packing() uint32 { return m.Uint("packing") }

// Encoding returns the encoding of image element 1; 0 means uncompressed.
func (m *Metadata) Encoding() uint32 { return m.Uint("encoding") }

// Descriptor returns the component descriptor of image element 1.
func (m *Metadata) Descriptor() uint32 { return m.Uint("descriptor") }

// Orientation returns the image orientation code.
func (m *Metadata) Orientation() uint32 { return m.Uint("orientation") }

// RawHeader is the verbatim byte range [0, PayloadOffset) of a parsed file.
// It is replayed unchanged by Encode.
type RawHeader struct {
	Endianness    Endianness
	PayloadOffset uint32
	Width         uint32
	Height        uint32

	data []byte
}

// Bytes returns a copy of the captured header bytes.
func (h *RawHeader) Bytes() []byte {
	return append([]byte(nil), h.data...)
}

// Len returns the number of captured header bytes.
func (h *RawHeader) Len() int {
	return len(h.data)
}

// Image stores normalized RGB samples in [0, 1].
type Image struct {
	Width  int
	Height int
	Pix    []float32 // row-major, 3 samples per pixel
}

// NewImage allocates a black image.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]float32, width*height*channels),
	}
}

// At returns the samples of pixel (x, y).
func (img *Image) At(x, y int) (r, g, b float32) {
	i := (y*img.Width + x) * channels
	return img.Pix[i], img.Pix[i+1], img.Pix[i+2]
}

// Set stores the samples of pixel (x, y).
func (img *Image) Set(x, y int, r, g, b float32) {
	i := (y*img.Width + x) * channels
	img.Pix[i] = r
	img.Pix[i+1] = g
	img.Pix[i+2] = b
}
