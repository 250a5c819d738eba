package viewstate

import (
	"strconv"
	"strings"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
)

// ParseRequest validates user input for the resize dialog.
// Non-numeric and non-positive sides are rejected here so that
// the processor only sees valid requests.
func ParseRequest(width, height string) (imgproc.ResizeRequest, error) {
	w, err := parseSide(`width`, width)
	if err != nil {
		return imgproc.ResizeRequest{}, err
	}
	h, err := parseSide(`height`, height)
	if err != nil {
		return imgproc.ResizeRequest{}, err
	}
	req := imgproc.ResizeRequest{Width: w, Height: h}
	if !req.Valid() {
		return imgproc.ResizeRequest{}, errors.New(req.String() + ` exceeds ` + strconv.Itoa(imgproc.MaxPixels) + ` pixels`)
	}
	return req, nil
}

// ParseSize parses "<w>x<h>".
func ParseSize(s string) (imgproc.ResizeRequest, error) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), `x`)
	if !ok {
		return imgproc.ResizeRequest{}, errors.New(`size must look like <width>x<height>, got "` + s + `"`)
	}
	return ParseRequest(w, h)
}

func parseSide(side, s string) (int, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return 0, errors.New(side + ` is missing`)
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.New(side + ` is not a number: "` + s + `"`)
	}
	if v <= 0 {
		return 0, errors.New(side + ` must be positive`)
	}
	return v, nil
}
