package cachedir_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgresize/store/cachedir"
)

func TestPut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), `nested`, `cache`)
	s := cachedir.New(dir)

	path, err := s.Put(`resized_image_1.jpg`, func(w io.Writer) error {
		_, err := w.Write([]byte(`data`))
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, `resized_image_1.jpg`), path)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `data`, string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, `no temporary files left`)

	list, err := s.List()
	require.NoError(t, err)
	assert.Equal(t, []string{path}, list)
}

func TestPutFailureLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	s := cachedir.New(dir)
	_, err := s.Put(`resized_image_2.jpg`, func(w io.Writer) error {
		_, _ = w.Write([]byte(`half`))
		return errors.New(`broken`)
	})
	require.Error(t, err)
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPutKeepsPreviousOnFailure(t *testing.T) {
	dir := t.TempDir()
	s := cachedir.New(dir)
	path, err := s.Put(`resized_image_3.jpg`, func(w io.Writer) error {
		_, err := w.Write([]byte(`first`))
		return err
	})
	require.NoError(t, err)
	_, err = s.Put(`resized_image_3.jpg`, func(w io.Writer) error { return errors.New(`broken`) })
	require.Error(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `first`, string(b))
}

func TestPutInvalidNames(t *testing.T) {
	s := cachedir.New(t.TempDir())
	write := func(w io.Writer) error { return nil }
	for _, name := range []string{``, `../x.jpg`, `a/b.jpg`, `.hidden.jpg`} {
		_, err := s.Put(name, write)
		assert.Error(t, err, name)
	}
	_, err := s.Put(`ok.jpg`, nil)
	assert.Error(t, err)
}

func TestClear(t *testing.T) {
	dir := t.TempDir()
	s := cachedir.New(dir)
	for _, n := range []string{`resized_image_1.jpg`, `.resized_image_2.jpg.123.part`, `keep.txt`} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), nil, 0o644))
	}
	require.NoError(t, s.Clear())
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, `keep.txt`, entries[0].Name())

	assert.NoError(t, cachedir.New(filepath.Join(dir, `missing`)).Clear())
}

func TestDefaultDir(t *testing.T) {
	assert.NotEmpty(t, cachedir.DefaultDir())
	assert.Equal(t, `imgresize`, filepath.Base(cachedir.DefaultDir()))
}
