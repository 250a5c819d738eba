package imgproc_test

import (
	"errors"
	"image"
	"io"
	"math"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/imgresize/imgproc"
	"github.com/srlehn/imgresize/internal/testutil"
	"github.com/srlehn/imgresize/resize/rall"
	"github.com/srlehn/imgresize/resolve/fsresolver"
	"github.com/srlehn/imgresize/resolve/memresolver"
	"github.com/srlehn/imgresize/store/cachedir"
)

func newProcessor(t *testing.T, res imgproc.Resolver, opts ...imgproc.Option) (*imgproc.Processor, string) {
	t.Helper()
	dir := t.TempDir()
	opts = append([]imgproc.Option{
		imgproc.SetResolver(res),
		imgproc.SetStore(cachedir.New(dir)),
	}, opts...)
	p, err := imgproc.NewProcessor(opts...)
	require.NoError(t, err)
	t.Cleanup(func() { _ = p.Close() })
	return p, dir
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func memWithJPEG(t *testing.T, ref imgproc.Reference, w, h int) *memresolver.Resolver {
	t.Helper()
	data, err := testutil.JPEG(w, h)
	require.NoError(t, err)
	res := memresolver.New()
	res.Add(ref, `photo.jpg`, data)
	return res
}

func TestNewProcessorRequiresCollaborators(t *testing.T) {
	_, err := imgproc.NewProcessor()
	assert.Error(t, err)
	_, err = imgproc.NewProcessor(imgproc.SetResolver(memresolver.New()))
	assert.Error(t, err)
}

func TestReadMetadata(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 64, 48)
	p, _ := newProcessor(t, res)

	md, err := p.ReadMetadata(`mem://photo`)
	require.NoError(t, err)
	assert.Equal(t, 64, md.Width)
	assert.Equal(t, 48, md.Height)
	assert.True(t, md.HasDisplayName)
	assert.Equal(t, `photo.jpg`, md.DisplayName)
	assert.Positive(t, md.Size)
	assert.Equal(t, `jpeg`, md.Format)
	assert.Zero(t, res.OpenCount())
}

func TestReadImage(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 64, 48)
	p, _ := newProcessor(t, res)

	img, md, err := p.ReadImage(`mem://photo`)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, image.Pt(64, 48), img.Bounds().Size())
	assert.Equal(t, 64, md.Width)
	assert.Equal(t, `photo.jpg`, md.DisplayName)
	assert.Zero(t, res.OpenCount())

	_, _, err = p.ReadImage(`mem://missing`)
	assert.Equal(t, imgproc.UnreadableSource, imgproc.KindOf(err))
}

func TestReadMetadataAbsentAttributes(t *testing.T) {
	data, err := testutil.PNG(10, 20)
	require.NoError(t, err)
	res := memresolver.New()
	res.Set(`mem://anon`, memresolver.Entry{Data: data, Size: -1})
	p, _ := newProcessor(t, res)

	md, err := p.ReadMetadata(`mem://anon`)
	require.NoError(t, err)
	assert.False(t, md.HasDisplayName)
	assert.Empty(t, md.DisplayName)
	assert.Zero(t, md.Size)
	assert.Equal(t, 10, md.Width)
	assert.Equal(t, 20, md.Height)
	assert.Zero(t, res.OpenCount())
}

func TestReadMetadataCorrupt(t *testing.T) {
	res := memresolver.New()
	res.Add(`mem://broken`, `broken.jpg`, []byte(`definitely not an image`))
	p, _ := newProcessor(t, res)

	_, err := p.ReadMetadata(`mem://broken`)
	require.Error(t, err)
	assert.Equal(t, imgproc.DecodeFailure, imgproc.KindOf(err))
	assert.True(t, errors.Is(err, imgproc.ErrDecodeFailure))
	assert.Zero(t, res.OpenCount(), `stream must be closed on decode failure`)
}

func TestUnreadableSource(t *testing.T) {
	p, dir := newProcessor(t, memresolver.New())

	_, err := p.ReadMetadata(`mem://missing`)
	require.Error(t, err)
	assert.Equal(t, imgproc.UnreadableSource, imgproc.KindOf(err))

	_, err = p.Resize(`mem://missing`, imgproc.ResizeRequest{Width: 10, Height: 10})
	require.Error(t, err)
	assert.True(t, errors.Is(err, imgproc.ErrUnreadableSource))
	assert.Empty(t, dirEntries(t, dir))

	var e *imgproc.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, imgproc.Reference(`mem://missing`), e.Ref)
}

func TestResizeInvalidDimensions(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 16, 16)
	p, dir := newProcessor(t, res)

	for _, req := range []imgproc.ResizeRequest{
		{Width: 0, Height: 10},
		{Width: 10, Height: 0},
		{Width: -1, Height: 10},
		{Width: 10, Height: -5},
		{},
	} {
		a, err := p.Resize(`mem://photo`, req)
		assert.Nil(t, a)
		require.Error(t, err, req.String())
		assert.Equal(t, imgproc.InvalidDimensions, imgproc.KindOf(err), req.String())
	}
	assert.Empty(t, dirEntries(t, dir))
	assert.Zero(t, res.OpenCount())
}

func TestResizeOversizedDimensions(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 16, 16)
	rsz, err := rall.ByName(`nearest`)
	require.NoError(t, err)
	p, dir := newProcessor(t, res, imgproc.SetResizer(rsz))

	for _, req := range []imgproc.ResizeRequest{
		{Width: math.MaxInt32, Height: math.MaxInt32},
		{Width: math.MaxInt, Height: math.MaxInt},
		{Width: imgproc.MaxPixels + 1, Height: 1},
		{Width: 16385, Height: 16384},
		{Width: math.MaxInt, Height: 4},
	} {
		assert.False(t, req.Valid(), req.String())
		var a *imgproc.Artifact
		assert.NotPanics(t, func() { a, err = p.Resize(`mem://photo`, req) }, req.String())
		assert.Nil(t, a)
		require.Error(t, err, req.String())
		assert.Equal(t, imgproc.InvalidDimensions, imgproc.KindOf(err), req.String())
	}
	assert.Empty(t, dirEntries(t, dir))
	assert.Zero(t, res.OpenCount())

	assert.True(t, imgproc.ResizeRequest{Width: 16384, Height: 16384}.Valid())
	assert.True(t, imgproc.ResizeRequest{Width: imgproc.MaxPixels, Height: 1}.Valid())
}

func TestResizerDefaultRejectsHugeSize(t *testing.T) {
	src := testutil.Gradient(4, 4)
	var (
		m   image.Image
		err error
	)
	assert.NotPanics(t, func() { m, err = imgproc.ResizerDefault().Resize(src, image.Pt(math.MaxInt32, math.MaxInt32)) })
	assert.Error(t, err)
	assert.Nil(t, m)
}

func TestResizeExactDimensions(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 120, 80)
	for _, name := range []string{`nearest`, `auto`, `nfnt`, `builtin`} {
		rsz, err := rall.ByName(name)
		require.NoError(t, err)
		p, dir := newProcessor(t, res, imgproc.SetResizer(rsz))
		for _, req := range []imgproc.ResizeRequest{
			{Width: 60, Height: 40},
			{Width: 1, Height: 1},
			{Width: 333, Height: 7},
			{Width: 121, Height: 81},
		} {
			a, err := p.Resize(`mem://photo`, req)
			require.NoError(t, err, "%s %s", name, req)
			assert.Equal(t, req.Size(), a.Image.Bounds().Size(), "%s %s", name, req)
			assert.Equal(t, dir, filepath.Dir(a.Path))
		}
	}
	assert.Zero(t, res.OpenCount())
}

type brokenResizer struct{ panics bool }

func (r *brokenResizer) Resize(img image.Image, size image.Point) (image.Image, error) {
	if r.panics {
		panic(`broken`)
	}
	return image.NewRGBA(image.Rect(0, 0, size.X+1, size.Y)), nil
}

func TestResizeFallsBackOnBrokenResizer(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 30, 30)
	for _, rsz := range []*brokenResizer{{}, {panics: true}} {
		p, _ := newProcessor(t, res, imgproc.SetResizer(rsz))
		a, err := p.Resize(`mem://photo`, imgproc.ResizeRequest{Width: 12, Height: 9})
		require.NoError(t, err)
		assert.Equal(t, image.Pt(12, 9), a.Image.Bounds().Size())
	}
}

func TestResizeTwiceDistinctFiles(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 50, 50)
	fixed := time.UnixMilli(1700000000000)
	p, dir := newProcessor(t, res, imgproc.SetClock(func() time.Time { return fixed }))

	a1, err := p.Resize(`mem://photo`, imgproc.ResizeRequest{Width: 20, Height: 10})
	require.NoError(t, err)
	content1, err := os.ReadFile(a1.Path)
	require.NoError(t, err)

	a2, err := p.Resize(`mem://photo`, imgproc.ResizeRequest{Width: 10, Height: 20})
	require.NoError(t, err)

	assert.NotEqual(t, a1.Path, a2.Path)
	assert.Equal(t, `resized_image_1700000000000.jpg`, filepath.Base(a1.Path))
	assert.Equal(t, `resized_image_1700000000001.jpg`, filepath.Base(a2.Path))
	content1After, err := os.ReadFile(a1.Path)
	require.NoError(t, err)
	assert.Equal(t, content1, content1After)
	assert.Equal(t, image.Pt(20, 10), a1.Image.Bounds().Size())
	assert.Equal(t, image.Pt(10, 20), a2.Image.Bounds().Size())
	assert.Len(t, dirEntries(t, dir), 2)
}

func TestResizeConcurrentUniqueNames(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 20, 20)
	p, dir := newProcessor(t, res)

	const n = 8
	var wg sync.WaitGroup
	paths := make([]string, n)
	errs := make([]error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			a, err := p.Resize(`mem://photo`, imgproc.ResizeRequest{Width: i + 1, Height: i + 1})
			errs[i] = err
			if a != nil {
				paths[i] = a.Path
			}
		}(i)
	}
	wg.Wait()
	seen := make(map[string]struct{})
	for i := range paths {
		require.NoError(t, errs[i])
		seen[paths[i]] = struct{}{}
	}
	assert.Len(t, seen, n)
	assert.Len(t, dirEntries(t, dir), n)
}

type failingStore struct{}

func (s *failingStore) Put(name string, write func(w io.Writer) error) (string, error) {
	return ``, errors.New(`disk full`)
}

type failingEncoder struct{}

func (failingEncoder) Encode(w io.Writer, img image.Image, fileExt string) error {
	_, _ = w.Write([]byte(`partial`))
	return errors.New(`encoder broke`)
}

func TestResizeWriteFailure(t *testing.T) {
	res := memWithJPEG(t, `mem://photo`, 20, 20)

	p, err := imgproc.NewProcessor(imgproc.SetResolver(res), imgproc.SetStore(&failingStore{}))
	require.NoError(t, err)
	_, err = p.Resize(`mem://photo`, imgproc.ResizeRequest{Width: 5, Height: 5})
	require.Error(t, err)
	assert.Equal(t, imgproc.WriteFailure, imgproc.KindOf(err))

	// partially written output never becomes visible
	p2, dir := newProcessor(t, res, imgproc.SetEncoder(failingEncoder{}))
	_, err = p2.Resize(`mem://photo`, imgproc.ResizeRequest{Width: 5, Height: 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, imgproc.ErrWriteFailure))
	assert.Empty(t, dirEntries(t, dir))
}

func TestResizeEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip(`large image`)
	}
	srcDir := t.TempDir()
	data, err := testutil.JPEG(4000, 3000)
	require.NoError(t, err)
	src := filepath.Join(srcDir, `large.jpg`)
	require.NoError(t, os.WriteFile(src, data, 0o644))

	p, dir := newProcessor(t, fsresolver.New(``))

	md, err := p.ReadMetadata(imgproc.Reference(src))
	require.NoError(t, err)
	assert.Equal(t, 4000, md.Width)
	assert.Equal(t, 3000, md.Height)
	assert.Equal(t, int64(len(data)), md.Size)
	assert.Equal(t, `large.jpg`, md.DisplayName)
	assert.Equal(t, `image/jpeg`, md.MIMEType)

	a, err := p.Resize(imgproc.Reference(src), imgproc.ResizeRequest{Width: 200, Height: 100})
	require.NoError(t, err)
	assert.Equal(t, image.Pt(200, 100), a.Image.Bounds().Size())
	assert.Equal(t, dir, filepath.Dir(a.Path))
	fi, err := os.Stat(a.Path)
	require.NoError(t, err)
	assert.Positive(t, fi.Size())

	mdOut, err := p.ReadMetadata(a.Reference())
	require.NoError(t, err)
	assert.Equal(t, 200, mdOut.Width)
	assert.Equal(t, 100, mdOut.Height)
	assert.Equal(t, fi.Size(), mdOut.Size)
	assert.Equal(t, filepath.Base(a.Path), mdOut.DisplayName)
}

func TestErrorFormatting(t *testing.T) {
	e := &imgproc.Error{Kind: imgproc.WriteFailure, Op: `resize`, Ref: `a.jpg`, Err: errors.New(`boom`)}
	assert.Equal(t, `resize "a.jpg": write failure: boom`, e.Error())
	assert.True(t, errors.Is(e, imgproc.ErrWriteFailure))
	assert.False(t, errors.Is(e, imgproc.ErrDecodeFailure))
	assert.Equal(t, imgproc.KindUnknown, imgproc.KindOf(errors.New(`other`)))
}
