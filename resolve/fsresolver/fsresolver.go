// Package fsresolver resolves local file paths and file:// URIs.
package fsresolver

import (
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
)

var _ imgproc.Resolver = (*Resolver)(nil)

// Resolver resolves references relative to Root if they aren't absolute.
// An empty Root uses the working directory.
type Resolver struct {
	Root string
}

func New(root string) *Resolver { return &Resolver{Root: root} }

// Path converts ref to a file path.
func (r *Resolver) Path(ref imgproc.Reference) (string, error) {
	s := string(ref)
	if len(s) == 0 {
		return ``, errors.New(`empty reference`)
	}
	if strings.HasPrefix(s, `file:`) {
		u, err := url.Parse(s)
		if err != nil {
			return ``, errors.New(err)
		}
		if len(u.Host) > 0 && u.Host != `localhost` {
			return ``, errors.New(`non-local file uri: ` + s)
		}
		s = filepath.FromSlash(u.Path)
	} else if i := strings.Index(s, `://`); i > 0 {
		return ``, errors.New(`unsupported scheme: ` + s[:i])
	}
	if !filepath.IsAbs(s) && len(r.Root) > 0 {
		s = filepath.Join(r.Root, s)
	}
	return filepath.Clean(s), nil
}

func (r *Resolver) Open(ref imgproc.Reference) (io.ReadCloser, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	p, err := r.Path(ref)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(p)
	if err != nil {
		return nil, errors.New(err)
	}
	fi, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, errors.New(err)
	}
	if fi.IsDir() {
		_ = f.Close()
		return nil, errors.New(`is a directory: ` + p)
	}
	return f, nil
}

// Query stats the file. The MIME type is sniffed from the content.
func (r *Resolver) Query(ref imgproc.Reference) (imgproc.Cursor, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	p, err := r.Path(ref)
	if err != nil {
		return nil, err
	}
	fi, err := os.Stat(p)
	if err != nil {
		return nil, errors.New(err)
	}
	cols := map[string]any{
		imgproc.ColumnDisplayName: fi.Name(),
		imgproc.ColumnSize:        fi.Size(),
	}
	if mt, err := mimetype.DetectFile(p); err == nil && mt != nil {
		cols[imgproc.ColumnMIMEType] = mt.String()
	}
	return cursor(cols), nil
}

type cursor map[string]any

func (c cursor) Lookup(column string) (any, bool) {
	v, ok := c[column]
	return v, ok
}

func (c cursor) Close() error { return nil }
