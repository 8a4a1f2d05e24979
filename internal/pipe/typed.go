package pipe

import (
	"fmt"
	"time"
)

// Typed is an Envelope whose scalar has been narrowed to T.
type Typed[T Scalar] struct {
	Action     Action
	Value      T
	Status     string
	Timestamp  time.Time
	IsGood     bool
	SourceName string
}

// Narrow converts e into a Typed[T]. It returns a *NarrowingError when the
// envelope's scalar is not a T.
func Narrow[T Scalar](e Envelope) (Typed[T], error) {
	v, ok := e.Value.Scalar.(T)
	if !ok {
		var want T
		wantKind := KindInvalid
		if s, ok := any(want).(Scalar); ok {
			wantKind = s.Kind()
		}
		return Typed[T]{}, &NarrowingError{
			Want:       wantKind,
			Got:        kindOf(e.Value.Scalar),
			SourceName: e.SourceName,
		}
	}
	return Typed[T]{
		Action:     e.Action,
		Value:      v,
		Status:     e.Value.Status,
		Timestamp:  e.Value.Timestamp,
		IsGood:     e.Value.IsGood,
		SourceName: e.SourceName,
	}, nil
}

// TypedObserver narrows every envelope to T before calling its next handler.
// A mismatch is returned from OnNext, which ends the subscription with OnError.
type TypedObserver[T Scalar] struct {
	onNext      func(Typed[T])
	onError     func(error)
	onCompleted func()
}

// NewTypedObserver requires all three handlers; a nil one yields ErrMissingHandler.
func NewTypedObserver[T Scalar](onNext func(Typed[T]), onError func(error), onCompleted func()) (*TypedObserver[T], error) {
	switch {
	case onNext == nil:
		return nil, fmt.Errorf("%w: onNext", ErrMissingHandler)
	case onError == nil:
		return nil, fmt.Errorf("%w: onError", ErrMissingHandler)
	case onCompleted == nil:
		return nil, fmt.Errorf("%w: onCompleted", ErrMissingHandler)
	}
	return &TypedObserver[T]{onNext: onNext, onError: onError, onCompleted: onCompleted}, nil
}

// OnNext narrows e to T and hands it to the data handler. A payload of the
// wrong kind is returned as a *NarrowingError and the handler is not called.
func (o *TypedObserver[T]) OnNext(e Envelope) error {
	t, err := Narrow[T](e)
	if err != nil {
		return err
	}
	o.onNext(t)
	return nil
}

// OnError forwards err to the error handler.
func (o *TypedObserver[T]) OnError(err error) { o.onError(err) }

// OnCompleted calls the completion handler.
func (o *TypedObserver[T]) OnCompleted() { o.onCompleted() }
