package imgproc

import (
	"errors"

	errorsInt "github.com/srlehn/imgresize/internal/errors"
)

// Kind classifies failures of the processor operations.
type Kind uint8

const (
	KindUnknown Kind = iota
	UnreadableSource
	DecodeFailure
	InvalidDimensions
	WriteFailure
)

func (k Kind) String() string {
	switch k {
	case UnreadableSource:
		return `unreadable source`
	case DecodeFailure:
		return `decode failure`
	case InvalidDimensions:
		return `invalid dimensions`
	case WriteFailure:
		return `write failure`
	default:
		return `unknown`
	}
}

// sentinels for errors.Is
var (
	ErrUnreadableSource  = errors.New(UnreadableSource.String())
	ErrDecodeFailure     = errors.New(DecodeFailure.String())
	ErrInvalidDimensions = errors.New(InvalidDimensions.String())
	ErrWriteFailure      = errors.New(WriteFailure.String())
)

func (k Kind) sentinel() error {
	switch k {
	case UnreadableSource:
		return ErrUnreadableSource
	case DecodeFailure:
		return ErrDecodeFailure
	case InvalidDimensions:
		return ErrInvalidDimensions
	case WriteFailure:
		return ErrWriteFailure
	default:
		return nil
	}
}

// Error is the failure of a single processor operation.
type Error struct {
	Kind Kind
	Op   string // "metadata" or "resize"
	Ref  Reference
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return `<nil>`
	}
	msg := e.Op + ` ` + `"` + string(e.Ref) + `": ` + e.Kind.String()
	if e.Err != nil {
		msg += `: ` + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel of the error kind.
func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return false
	}
	return e.Kind.sentinel() == target
}

// KindOf returns the Kind of the first *Error in the chain of err.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) && e != nil {
		return e.Kind
	}
	return KindUnknown
}

// skip 1 keeps the stack trace at the caller of newError
func newError(kind Kind, op string, ref Reference, err error) error {
	return errorsInt.Wrap(&Error{Kind: kind, Op: op, Ref: ref, Err: err}, 1)
}
