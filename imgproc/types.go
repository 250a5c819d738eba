package imgproc

import (
	"image"
	"io"
	"strconv"

	"github.com/srlehn/imgresize/internal"
	"github.com/srlehn/imgresize/internal/consts"
)

// MaxPixels is the largest target area a ResizeRequest may ask for.
const MaxPixels = consts.MaxPixels

// Reference locates a source image for a Resolver,
// e.g. a file path, a file:// URI or a resolver specific key.
type Reference string

func (r Reference) String() string { return string(r) }

// Metadata describes a source image.
// Size 0 and HasDisplayName == false mean the resolver didn't know.
type Metadata struct {
	Width          int
	Height         int
	Size           int64
	DisplayName    string
	HasDisplayName bool
	MIMEType       string // optional
	Format         string // name of the decoder, e.g. "jpeg"
}

// ResizeRequest is the target size of a resize in pixels.
type ResizeRequest struct {
	Width  int
	Height int
}

// Size returns the target size as a point.
func (r ResizeRequest) Size() image.Point { return image.Point{X: r.Width, Y: r.Height} }

// Valid reports whether both sides are positive
// and the area does not exceed MaxPixels.
func (r ResizeRequest) Valid() bool {
	return r.Width > 0 && r.Height > 0 && r.Width <= MaxPixels/r.Height
}

func (r ResizeRequest) String() string {
	return strconv.Itoa(r.Width) + `x` + strconv.Itoa(r.Height)
}

// Artifact is the result of a resize.
// Image is owned by the caller, the file at Path by the Store
// which may evict it at any time.
type Artifact struct {
	Image image.Image
	Path  string
}

// Reference returns the reference of the written file.
func (a *Artifact) Reference() Reference {
	if a == nil {
		return ``
	}
	return Reference(a.Path)
}

// Well known cursor columns.
const (
	ColumnDisplayName = `_display_name`
	ColumnSize        = `_size`
	ColumnMIMEType    = `mime_type`
)

// Resolver opens references.
type Resolver interface {
	Open(ref Reference) (io.ReadCloser, error)
	Query(ref Reference) (Cursor, error)
}

// Cursor holds the attributes of a single reference.
type Cursor interface {
	Lookup(column string) (any, bool)
	Close() error
}

// Resizer resizes images
type Resizer interface {
	Resize(img image.Image, size image.Point) (image.Image, error)
}

type ImageEncoder = internal.ImageEncoder

// Store is the transient storage area for resized images.
// Put must not leave a file under name behind if write fails.
type Store interface {
	Put(name string, write func(w io.Writer) error) (path string, err error)
}
