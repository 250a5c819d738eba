package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ imgproc.Resizer = (*Resizer)(nil)

// Resize stretches with a Lanczos filter.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	return transform.Resize(img, size.X, size.Y, transform.Lanczos), nil
}
