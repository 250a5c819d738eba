package internal

import (
	"image"
	"io"
)

// ImageEncoder encodes img in the format named by fileExt.
// fileExt may also be a whole file name.
type ImageEncoder interface {
	Encode(w io.Writer, img image.Image, fileExt string) error
}
