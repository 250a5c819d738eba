// Package testutil generates fixture images.
package testutil

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"

	"github.com/srlehn/imgresize/internal/errors"
)

// Gradient returns a w×h image with a horizontal and vertical color ramp.
func Gradient(w, h int) *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			m.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: 0x80,
				A: 0xff,
			})
		}
	}
	return m
}

// JPEG encodes a gradient of size w×h.
func JPEG(w, h int) ([]byte, error) {
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, Gradient(w, h), &jpeg.Options{Quality: 75}); err != nil {
		return nil, errors.New(err)
	}
	return buf.Bytes(), nil
}

// PNG encodes a gradient of size w×h.
func PNG(w, h int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Gradient(w, h)); err != nil {
		return nil, errors.New(err)
	}
	return buf.Bytes(), nil
}
