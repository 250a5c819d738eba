// Package memresolver serves images from memory, e.g. embedded assets.
package memresolver

import (
	"bytes"
	"io"
	"sync"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/errors"
)

var _ imgproc.Resolver = (*Resolver)(nil)

// Entry is a stored image. Nil Name or negative Size model absent attributes.
type Entry struct {
	Data []byte
	Name *string
	Size int64
}

type Resolver struct {
	mu      sync.RWMutex
	entries map[imgproc.Reference]Entry
	opened  int
	closed  int
}

func New() *Resolver { return &Resolver{entries: make(map[imgproc.Reference]Entry)} }

// Add stores data with all attributes known.
func (r *Resolver) Add(ref imgproc.Reference, name string, data []byte) {
	r.Set(ref, Entry{Data: data, Name: &name, Size: int64(len(data))})
}

func (r *Resolver) Set(ref imgproc.Reference, e Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.entries == nil {
		r.entries = make(map[imgproc.Reference]Entry)
	}
	r.entries[ref] = e
}

func (r *Resolver) Remove(ref imgproc.Reference) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, ref)
}

func (r *Resolver) entry(ref imgproc.Reference) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[ref]
	if !ok {
		return Entry{}, errors.New(`no such image: "` + string(ref) + `"`)
	}
	return e, nil
}

func (r *Resolver) Open(ref imgproc.Reference) (io.ReadCloser, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	e, err := r.entry(ref)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.opened++
	r.mu.Unlock()
	return &stream{Reader: bytes.NewReader(e.Data), r: r}, nil
}

func (r *Resolver) Query(ref imgproc.Reference) (imgproc.Cursor, error) {
	if r == nil {
		return nil, errors.NilReceiver()
	}
	e, err := r.entry(ref)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.opened++
	r.mu.Unlock()
	c := &cursor{r: r, cols: make(map[string]any)}
	if e.Name != nil {
		c.cols[imgproc.ColumnDisplayName] = *e.Name
	}
	if e.Size >= 0 {
		c.cols[imgproc.ColumnSize] = e.Size
	}
	return c, nil
}

// OpenCount returns the number of streams and cursors not closed yet.
func (r *Resolver) OpenCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.opened - r.closed
}

func (r *Resolver) release() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed++
}

type stream struct {
	*bytes.Reader
	r    *Resolver
	once sync.Once
}

func (s *stream) Close() error {
	s.once.Do(s.r.release)
	return nil
}

type cursor struct {
	r    *Resolver
	cols map[string]any
	once sync.Once
}

func (c *cursor) Lookup(column string) (any, bool) {
	v, ok := c.cols[column]
	return v, ok
}

func (c *cursor) Close() error {
	c.once.Do(c.r.release)
	return nil
}
