package pipe

// Observer receives the notifications of one subscription.
//
// A non-nil error from OnNext is treated as a delivery fault: the Stream stops
// and reports it once through OnError. OnError and OnCompleted are terminal and
// at most one of them is called per subscription.
type Observer interface {
	OnNext(Envelope) error
	OnError(error)
	OnCompleted()
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	Next      func(Envelope) error
	Error     func(error)
	Completed func()
}

var _ Observer = ObserverFuncs{}

// OnNext calls Next, or accepts the envelope when Next is nil.
func (f ObserverFuncs) OnNext(e Envelope) error {
	if f.Next == nil {
		return nil
	}
	return f.Next(e)
}

// OnError calls Error if set.
func (f ObserverFuncs) OnError(err error) {
	if f.Error != nil {
		f.Error(err)
	}
}

// OnCompleted calls Completed if set.
func (f ObserverFuncs) OnCompleted() {
	if f.Completed != nil {
		f.Completed()
	}
}
