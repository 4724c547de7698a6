package dpx

import (
	"errors"

	"github.com/nfnt/resize"
)

// Interpolation selects the resampling filter used by Resize.
type Interpolation int

const (
	// InterpolationNearest is nearest-neighbor sampling.
	InterpolationNearest Interpolation = iota
	// InterpolationBilinear is linear sampling.
	InterpolationBilinear
	// InterpolationBicubic is cubic sampling.
	InterpolationBicubic
	// InterpolationMitchellNetravali is Mitchell-Netravali sampling.
	InterpolationMitchellNetravali
	// InterpolationLanczos2 is Lanczos sampling with a=2.
	InterpolationLanczos2
	// InterpolationLanczos3 is Lanczos sampling with a=3.
	InterpolationLanczos3
)

var interpolationNames = map[string]Interpolation{
	"nearest":  InterpolationNearest,
	"bilinear": InterpolationBilinear,
	"bicubic":  InterpolationBicubic,
	"mitchell": InterpolationMitchellNetravali,
	"lanczos2": InterpolationLanczos2,
	"lanczos3": InterpolationLanczos3,
}

// ParseInterpolation maps a filter name such as "bilinear" or "lanczos3" to an Interpolation.
func ParseInterpolation(name string) (Interpolation, error) {
	if interp, ok := interpolationNames[name]; ok {
		return interp, nil
	}
	return 0, errors.New("unknown interpolation " + name)
}

func (i Interpolation) filter() resize.InterpolationFunction {
	switch i {
	case InterpolationBilinear:
		return resize.Bilinear
	case InterpolationBicubic:
		return resize.Bicubic
	case InterpolationMitchellNetravali:
		return resize.MitchellNetravali
	case InterpolationLanczos2:
		return resize.Lanczos2
	case InterpolationLanczos3:
		return resize.Lanczos3
	default:
		return resize.NearestNeighbor
	}
}

// Resize returns a new image of the requested dimensions. Samples pass through a 16-bit
// intermediate, which is finer than the 10-bit payload precision.
func Resize(img *Image, width, height uint, interp Interpolation) (*Image, error) {
	if width == 0 || height == 0 {
		return nil, errors.New("invalid target dimensions")
	}
	if img == nil || img.Width <= 0 || img.Height <= 0 || len(img.Pix) != img.Width*img.Height*channels {
		return nil, errors.New("invalid source image")
	}
	out := resize.Resize(width, height, ToRGBA64(img), interp.filter())
	return FromImage(out), nil
}
