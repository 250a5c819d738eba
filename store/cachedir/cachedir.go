// Package cachedir stores resized images in a cache directory
// which the host may clear at any time.
package cachedir

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rkoesters/xdg/basedir"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/consts"
	"github.com/srlehn/imgresize/internal/errors"
)

var _ imgproc.Store = (*Store)(nil)

// Store writes files into Dir.
type Store struct {
	Dir string
}

// New uses dir, or DefaultDir() for an empty dir.
func New(dir string) *Store {
	if len(dir) == 0 {
		dir = DefaultDir()
	}
	return &Store{Dir: dir}
}

// DefaultDir is $XDG_CACHE_HOME/imgresize, or below the OS temp dir
// if no cache home is known.
func DefaultDir() string {
	if len(basedir.CacheHome) > 0 {
		return filepath.Join(basedir.CacheHome, consts.LibraryName)
	}
	return filepath.Join(os.TempDir(), consts.LibraryName)
}

// Put writes to a hidden temporary file next to the destination and
// renames it into place after a successful write and close.
// On failure nothing is left under name.
func (s *Store) Put(name string, write func(w io.Writer) error) (path string, err error) {
	if s == nil || len(s.Dir) == 0 {
		return ``, errors.NilReceiver()
	}
	if write == nil {
		return ``, errors.NilParam()
	}
	if len(name) == 0 || name != filepath.Base(name) || strings.HasPrefix(name, `.`) {
		return ``, errors.New(`invalid file name: "` + name + `"`)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return ``, errors.New(err)
	}
	f, err := os.CreateTemp(s.Dir, `.`+name+`.*.part`)
	if err != nil {
		return ``, errors.New(err)
	}
	tmpName := f.Name()
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(tmpName)
		}
	}()
	if err = write(f); err != nil {
		return ``, errors.New(err)
	}
	if err = f.Sync(); err != nil {
		return ``, errors.New(err)
	}
	if err = f.Close(); err != nil {
		return ``, errors.New(err)
	}
	path = filepath.Join(s.Dir, name)
	if err = os.Rename(tmpName, path); err != nil {
		return ``, errors.New(err)
	}
	return path, nil
}

// List returns the paths of the stored resized images.
func (s *Store) List() ([]string, error) {
	if s == nil {
		return nil, errors.NilReceiver()
	}
	matches, err := filepath.Glob(filepath.Join(s.Dir, consts.ResizedPrefix+`*.`+consts.ResizedFileExt))
	if err != nil {
		return nil, errors.New(err)
	}
	return matches, nil
}

// Clear removes the stored resized images and left over temporary files.
func (s *Store) Clear() error {
	if s == nil {
		return errors.NilReceiver()
	}
	entries, err := os.ReadDir(s.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.New(err)
	}
	var errs []error
	for _, e := range entries {
		n := e.Name()
		if e.IsDir() {
			continue
		}
		if !strings.HasPrefix(n, consts.ResizedPrefix) && !strings.HasPrefix(n, `.`+consts.ResizedPrefix) {
			continue
		}
		if err := os.Remove(filepath.Join(s.Dir, n)); err != nil && !os.IsNotExist(err) {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
