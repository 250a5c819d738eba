package imgproc

import (
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/srlehn/imgresize/internal/errors"
)

type Option interface {
	ApplyOption(p *Processor) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Processor) error

func (o OptFunc) ApplyOption(p *Processor) error { return o(p) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(p *Processor) error { return p.setOptions([]Option(o)...) }

func (p *Processor) setOptions(opts ...Option) error {
	if p == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(p); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetResolver(r Resolver) Option {
	return OptFunc(func(p *Processor) error { p.resolver = r; return nil })
}
func SetStore(s Store) Option {
	return OptFunc(func(p *Processor) error { p.store = s; return nil })
}

// SetResizer sets the resampler. nil selects the built-in nearest-neighbour stretch.
func SetResizer(rsz Resizer) Option {
	return OptFunc(func(p *Processor) error { p.resizer = rsz; return nil })
}
func SetEncoder(enc ImageEncoder) Option {
	return OptFunc(func(p *Processor) error { p.encoder = enc; return nil })
}

// SetClock replaces the wall clock used for output file names.
func SetClock(now func() time.Time) Option {
	return OptFunc(func(p *Processor) error {
		if now == nil {
			return errors.NilParam()
		}
		p.names = newNamer(now)
		return nil
	})
}

func SetSLogger(h slog.Handler, enable bool) Option {
	return OptFunc(func(p *Processor) error {
		if enable {
			if h == nil {
				p.logger = slog.Default()
			} else {
				p.logger = slog.New(h)
			}
		} else {
			p.logger = nil
		}
		return nil
	})
}

// SetLogFile appends text logs to logFile.
// The file is closed by Processor.Close().
func SetLogFile(logFile string, lvl slog.Leveler, enable bool) Option {
	return OptFunc(func(p *Processor) error {
		if !enable || len(logFile) == 0 {
			p.logger = nil
			return nil
		}
		if err := os.MkdirAll(filepath.Dir(logFile), 0o755); err != nil {
			return errors.New(err)
		}
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return errors.New(err)
		}
		p.closers = append(p.closers, f)
		p.logger = slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{AddSource: true, Level: lvl}))
		return nil
	})
}
