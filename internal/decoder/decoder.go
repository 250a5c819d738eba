// Package decoder registers the supported source image formats.
package decoder

import (
	"image"
	_ "image/gif"  // register
	_ "image/jpeg" // register
	_ "image/png"  // register
	"io"

	_ "golang.org/x/image/bmp"  // register
	_ "golang.org/x/image/tiff" // register
	_ "golang.org/x/image/webp" // register

	"github.com/srlehn/imgresize/internal/consts"
	"github.com/srlehn/imgresize/internal/errors"
)

// Decode decodes a whole image. format is the name of the used decoder.
func Decode(r io.Reader) (img image.Image, format string, err error) {
	if r == nil {
		return nil, ``, errors.NilParam()
	}
	img, format, err = image.Decode(r)
	if err != nil {
		return nil, ``, errors.New(err)
	}
	if img == nil {
		return nil, ``, errors.New(consts.ErrNilImage)
	}
	return img, format, nil
}
