package rdefault

import (
	"image"
	"runtime"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
	"github.com/srlehn/imgresize/resize/rez"
	"github.com/srlehn/imgresize/resize/xdraw"
)

// Resizer picks the fastest available resampler for the buffer type.
type Resizer struct{}

var _ imgproc.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if runtime.GOARCH != `amd64` {
		return xdraw.ApproxBiLinear().Resize(img, size)
	}
	switch img.(type) {
	case *image.YCbCr, *image.RGBA, *image.Gray:
		// use SIMD assembly if possible
		imgRet, err := rez.Resizer{}.Resize(img, size)
		if err == nil {
			return imgRet, nil
		}
	}
	return xdraw.ApproxBiLinear().Resize(img, size)
}
