package consts

import (
	"errors"
)

var (
	ErrNilImage = errors.New(`nil image`)
)

const (
	LibraryName = `imgresize`

	// output naming of resized images
	ResizedPrefix  = `resized_image_`
	ResizedFileExt = `jpg`

	// JPEG quality of resized images (maximum)
	JPEGQuality = 100

	// largest accepted target in pixels (16384x16384, 1 GiB as RGBA)
	MaxPixels = 1 << 28
)
