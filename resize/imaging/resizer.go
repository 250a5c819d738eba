package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
)

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct{}

var _ imgproc.Resizer = (*Resizer)(nil)

// Resize stretches img to size with Lanczos resampling.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	// both sides are given, imaging only keeps the ratio for a 0 side
	return imaging.Resize(img, size.X, size.Y, imaging.Lanczos), nil
}
