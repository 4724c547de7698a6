package dpx

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadMagic is returned when the first four bytes are neither "SDPX" nor "XPDS".
	ErrBadMagic = errors.New("dpx: bad magic")
	// ErrBadOffset is returned when the declared payload offset cannot hold the header magic.
	ErrBadOffset = errors.New("dpx: invalid payload offset")
	// ErrUnsupportedFormat is matched by *UnsupportedFormatError.
	ErrUnsupportedFormat = errors.New("dpx: unsupported format")
	// ErrShape is matched by *ShapeError.
	ErrShape = errors.New("dpx: image shape mismatch")
)

// UnsupportedFormatError reports image element values outside the supported profile.
type UnsupportedFormatError struct {
	Depth      uint32
	Packing    uint32
	Encoding   uint32
	Descriptor uint32
}

func (e *UnsupportedFormatError) Error() string {
	var bad []string
	if e.Depth != ProfileDepth {
		bad = append(bad, fmt.Sprintf("depth=%d", e.Depth))
	}
	if e.Packing != ProfilePacking {
		bad = append(bad, fmt.Sprintf("packing=%d", e.Packing))
	}
	if e.Encoding != ProfileEncoding {
		bad = append(bad, fmt.Sprintf("encoding=%d", e.Encoding))
	}
	if e.Descriptor != ProfileDescriptor {
		bad = append(bad, fmt.Sprintf("descriptor=%d", e.Descriptor))
	}
	return ErrUnsupportedFormat.Error() + ": " + strings.Join(bad, ", ")
}

// Is reports whether target is ErrUnsupportedFormat.
func (e *UnsupportedFormatError) Is(target error) bool {
	return target == ErrUnsupportedFormat
}

// ShapeError reports an image that does not fit the header it is encoded with.
type ShapeError struct {
	WantWidth, WantHeight uint32
	Width, Height         int
	Samples               int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: header %dx%d, image %dx%d with %d samples",
		ErrShape.Error(), e.WantWidth, e.WantHeight, e.Width, e.Height, e.Samples)
}

// Is reports whether target is ErrShape.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}
