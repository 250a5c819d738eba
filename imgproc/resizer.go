package imgproc

import (
	"image"

	"github.com/srlehn/imgresize/internal/errors"
)

// ResizerDefault is a dependency free nearest-neighbour stretch.
func ResizerDefault() Resizer { return &resizerFallback{} }

type resizerFallback struct{}

func (r *resizerFallback) Resize(img image.Image, size image.Point) (image.Image, error) {
	if img == nil {
		return nil, errors.NilParam()
	}
	if size.X <= 0 || size.Y <= 0 || size.X > MaxPixels/size.Y {
		return nil, errors.New(`invalid size ` + size.String())
	}

	srcB := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	if srcB.Empty() {
		return dst, nil
	}

	for y := 0; y < size.Y; y++ {
		srcY := srcB.Min.Y + y*srcB.Dy()/size.Y
		for x := 0; x < size.X; x++ {
			srcX := srcB.Min.X + x*srcB.Dx()/size.X
			dst.Set(x, y, img.At(srcX, srcY))
		}
	}

	return dst, nil
}
