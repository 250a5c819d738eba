package imgproc

import (
	"image"
	"io"
	"log/slog"
	"strconv"

	"github.com/srlehn/imgresize/internal/consts"
	"github.com/srlehn/imgresize/internal/decoder"
	"github.com/srlehn/imgresize/internal/encoder/encjpeg"
	"github.com/srlehn/imgresize/internal/errors"
	"github.com/srlehn/imgresize/internal/logx"
)

const (
	opMetadata = `metadata`
	opImage    = `image`
	opResize   = `resize`
)

// Processor reads image metadata and materializes resized images.
// It is safe for concurrent use.
type Processor struct {
	resolver Resolver
	store    Store
	resizer  Resizer
	encoder  ImageEncoder
	names    *namer
	logger   *slog.Logger
	closers  []io.Closer
}

var _ logx.LoggerProvider = (*Processor)(nil)

// NewProcessor requires a Resolver and a Store.
func NewProcessor(opts ...Option) (*Processor, error) {
	p := &Processor{}
	if err := p.setOptions(opts...); err != nil {
		_ = p.Close()
		return nil, err
	}
	if p.resolver == nil || p.store == nil {
		_ = p.Close()
		return nil, errors.New(`processor requires a resolver and a store`)
	}
	if p.encoder == nil {
		p.encoder = &encjpeg.JPEGEncoder{Quality: consts.JPEGQuality}
	}
	if p.names == nil {
		p.names = newNamer(nil)
	}
	return p, nil
}

func (p *Processor) Logger() *slog.Logger {
	if p == nil {
		return nil
	}
	return p.logger
}

// Close releases log files.
func (p *Processor) Close() error {
	if p == nil {
		return nil
	}
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}

// ReadMetadata decodes the referenced image for its dimensions
// and asks the resolver for size and display name.
func (p *Processor) ReadMetadata(ref Reference) (*Metadata, error) {
	if p == nil || p.resolver == nil {
		return nil, errors.NilReceiver()
	}
	_, md, err := p.readImage(opMetadata, ref)
	return md, err
}

// ReadImage is ReadMetadata that also returns the decoded image,
// e.g. for previews.
func (p *Processor) ReadImage(ref Reference) (image.Image, *Metadata, error) {
	if p == nil || p.resolver == nil {
		return nil, nil, errors.NilReceiver()
	}
	return p.readImage(opImage, ref)
}

func (p *Processor) readImage(op string, ref Reference) (image.Image, *Metadata, error) {
	img, format, err := p.decode(op, ref)
	if err != nil {
		return nil, nil, err
	}
	b := img.Bounds()
	md := &Metadata{
		Width:  b.Dx(),
		Height: b.Dy(),
		Format: format,
	}
	p.queryAttributes(ref, md)
	logx.Debug(`read metadata`, p, `ref`, ref, `width`, md.Width, `height`, md.Height, `size`, md.Size)
	return img, md, nil
}

// Resize stretches the referenced image to exactly req and writes it
// as JPEG into the store. The aspect ratio is not preserved.
func (p *Processor) Resize(ref Reference, req ResizeRequest) (*Artifact, error) {
	if p == nil || p.resolver == nil || p.store == nil {
		return nil, errors.NilReceiver()
	}
	if !req.Valid() {
		return nil, p.fail(InvalidDimensions, opResize, ref, errors.New(`target size `+req.String()+
			` must be positive and at most `+strconv.Itoa(MaxPixels)+` pixels`))
	}
	img, _, err := p.decode(opResize, ref)
	if err != nil {
		return nil, err
	}
	scaled, err := logx.TimeIt2(func() (image.Image, error) {
		return p.stretch(img, req.Size())
	}, `resampled image`, p, `ref`, ref, `size`, req.String())
	if err != nil {
		return nil, p.fail(InvalidDimensions, opResize, ref, err)
	}

	name := p.names.next()
	path, err := p.store.Put(name, func(w io.Writer) error {
		return p.encoder.Encode(w, scaled, consts.ResizedFileExt)
	})
	if err != nil {
		return nil, p.fail(WriteFailure, opResize, ref, err)
	}
	logx.Info(`resized image`, p, `ref`, ref, `size`, req.String(), `path`, path)
	return &Artifact{Image: scaled, Path: path}, nil
}

// decode opens ref and decodes it, the stream is closed on return.
func (p *Processor) decode(op string, ref Reference) (image.Image, string, error) {
	rc, err := p.resolver.Open(ref)
	if err != nil {
		return nil, ``, p.fail(UnreadableSource, op, ref, err)
	}
	if rc == nil {
		return nil, ``, p.fail(UnreadableSource, op, ref, errors.New(`resolver returned no stream`))
	}
	defer rc.Close()
	img, format, err := decoder.Decode(rc)
	if err != nil {
		return nil, ``, p.fail(DecodeFailure, op, ref, err)
	}
	return img, format, nil
}

// queryAttributes fills in what the resolver knows, absent attributes are no error.
func (p *Processor) queryAttributes(ref Reference, md *Metadata) {
	cur, err := p.resolver.Query(ref)
	if err != nil || cur == nil {
		logx.IsErr(err, p, slog.LevelDebug, `ref`, ref)
		return
	}
	defer cur.Close()
	if v, ok := cur.Lookup(ColumnSize); ok {
		if sz, ok := toInt64(v); ok && sz >= 0 {
			md.Size = sz
		}
	}
	if v, ok := cur.Lookup(ColumnDisplayName); ok {
		if name, ok := v.(string); ok {
			md.DisplayName = name
			md.HasDisplayName = true
		}
	}
	if v, ok := cur.Lookup(ColumnMIMEType); ok {
		if mime, ok := v.(string); ok {
			md.MIMEType = mime
		}
	}
}

// stretch replaces a misbehaving resizer by the built-in
// nearest-neighbour stretch. It only fails if that can't allocate size either.
func (p *Processor) stretch(img image.Image, size image.Point) (image.Image, error) {
	if p.resizer != nil {
		m, err := safeResize(p.resizer, img, size)
		if err == nil && m != nil && m.Bounds().Size() == size {
			return m, nil
		}
		if err != nil {
			logx.IsErr(err, p, slog.LevelWarn)
		} else {
			logx.Warn(`resizer returned unexpected size, falling back`, p, `want`, size)
		}
	}
	m, err := safeResize(ResizerDefault(), img, size)
	if err != nil {
		return nil, err
	}
	if m == nil || m.Bounds().Size() != size {
		return nil, errors.New(`unable to stretch image to ` + size.String())
	}
	return m, nil
}

func safeResize(rsz Resizer, img image.Image, size image.Point) (m image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			m = nil
			err = errors.Errorf(`resizer panicked: %v`, r)
		}
	}()
	return rsz.Resize(img, size)
}

func (p *Processor) fail(kind Kind, op string, ref Reference, err error) error {
	e := newError(kind, op, ref, err)
	logx.IsErr(e, p, slog.LevelError)
	return e
}

func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint64:
		return int64(n), true
	case uint32:
		return int64(n), true
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	}
	return 0, false
}
