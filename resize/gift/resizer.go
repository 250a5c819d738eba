package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var _ imgproc.Resizer = (*Resizer)(nil)

// Resize stretches img to size with Lanczos resampling.
func (r *Resizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	g := gift.New(gift.Resize(size.X, size.Y, gift.LanczosResampling))
	m := image.NewNRGBA(image.Rectangle{Max: size})
	g.Draw(m, img)
	return m, nil
}
