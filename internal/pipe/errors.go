package pipe

import (
	"errors"
	"fmt"
)

// ErrMisuse matches every precondition violation reported at call time.
var ErrMisuse = errors.New("pipe: misuse")

// misuseError is a call-time precondition failure; it matches ErrMisuse.
type misuseError struct{ msg string }

func (e misuseError) Error() string { return "pipe: " + e.msg }

func (e misuseError) Is(target error) bool { return target == ErrMisuse }

var (
	// ErrNilObserver is returned by Subscribe when given a nil Observer.
	ErrNilObserver error = misuseError{msg: "subscribe requires an observer"}
	// ErrMissingHandler is returned by NewTypedObserver when a handler is nil.
	ErrMissingHandler error = misuseError{msg: "typed observer requires all handlers"}
)

// IsMisuse reports whether err is a call-time precondition violation.
func IsMisuse(err error) bool { return errors.Is(err, ErrMisuse) }

// ErrNarrowingMismatch matches every *NarrowingError.
var ErrNarrowingMismatch = errors.New("pipe: narrowing mismatch")

// NarrowingError reports an envelope whose scalar is not the requested kind.
type NarrowingError struct {
	Want       Kind
	Got        Kind
	SourceName string
}

func (e *NarrowingError) Error() string {
	return fmt.Sprintf("pipe: cannot narrow %s value from %q to %s", e.Got, e.SourceName, e.Want)
}

func (e *NarrowingError) Is(target error) bool { return target == ErrNarrowingMismatch }

// IsNarrowingMismatch reports whether err came from a failed Narrow.
func IsNarrowingMismatch(err error) bool { return errors.Is(err, ErrNarrowingMismatch) }

// GenerationFault wraps any failure raised while building or delivering the
// envelope with counter Seq. Panic holds the recovered value when the failure
// was a panic.
type GenerationFault struct {
	Seq   uint64
	Err   error
	Panic any
}

func (e *GenerationFault) Error() string {
	return fmt.Sprintf("pipe: generation fault at seq %d: %v", e.Seq, e.Err)
}

func (e *GenerationFault) Unwrap() error { return e.Err }

// IsGenerationFault reports whether err ended a generation loop.
func IsGenerationFault(err error) bool {
	var gf *GenerationFault
	return errors.As(err, &gf)
}
