package encjpeg

import (
	"image"
	"image/jpeg"
	"io"
	"strings"

	"github.com/srlehn/imgresize/internal"
	"github.com/srlehn/imgresize/internal/consts"
	"github.com/srlehn/imgresize/internal/errors"
)

var _ internal.ImageEncoder = (*JPEGEncoder)(nil)

// JPEGEncoder writes baseline JPEG.
// The zero value encodes at maximum quality.
type JPEGEncoder struct {
	Quality int // 1-100, 0 means consts.JPEGQuality
}

func (e *JPEGEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	if w == nil || img == nil {
		return errors.NilParam()
	}
	// allow passing whole filename
	fileExtParts := strings.Split(fileExt, `.`)
	fileExt = fileExtParts[len(fileExtParts)-1]
	switch strings.ToLower(fileExt) {
	case `jpg`, `jpeg`:
	default:
		return errors.New(`unsupported file format: "` + fileExt + `"`)
	}
	quality := consts.JPEGQuality
	if e != nil && e.Quality > 0 && e.Quality <= 100 {
		quality = e.Quality
	}
	if err := jpeg.Encode(w, img, &jpeg.Options{Quality: quality}); err != nil {
		return errors.New(err)
	}
	return nil
}
