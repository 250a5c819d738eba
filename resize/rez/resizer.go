package rez

import (
	"image"
	"image/draw"

	"github.com/bamiaux/rez"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
)

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct{}

var _ imgproc.Resizer = (*Resizer)(nil)

// Resize converts into a buffer of the source type, rez only scales
// between images of the same kind.
func (r Resizer) Resize(img image.Image, size image.Point) (_ image.Image, err error) {
	defer func() {
		// rez panics on some degenerate sizes
		if rec := recover(); rec != nil {
			err = errors.Errorf(`rez: %v`, rec)
		}
	}()
	if img == nil {
		return nil, errors.NilParam()
	}
	rect := image.Rectangle{Max: size}
	var m image.Image
	switch src := img.(type) {
	case *image.YCbCr:
		m = image.NewYCbCr(rect, src.SubsampleRatio)
	case *image.Gray:
		m = image.NewGray(rect)
	case *image.RGBA:
		m = image.NewRGBA(rect)
	default:
		// rez has no NRGBA and paletted support, convert to RGBA
		b := img.Bounds()
		rgba := image.NewRGBA(image.Rectangle{Max: b.Size()})
		draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
		img = rgba
		m = image.NewRGBA(rect)
	}
	if err = rez.Convert(m, img, rez.NewBilinearFilter()); err != nil {
		return nil, errors.New(err)
	}
	return m, nil
}
