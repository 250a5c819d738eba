package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ imgproc.Resizer = (*Resizer)(nil)

// Resize stretches img to size with Lanczos resampling.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if size.X <= 0 || size.Y <= 0 {
		// nfnt keeps the aspect ratio for a 0 side
		return nil, errors.New(`invalid size`)
	}
	return resize.Resize(uint(size.X), uint(size.Y), img, resize.Lanczos3), nil
}
