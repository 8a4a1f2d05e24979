// Package pipe implements a cancellable, push-based data pipe: a Stream
// generates Envelope values on its own goroutine and delivers them to a single
// subscribed Observer. It is structured into small files by concern:
//
//   - scalar.go: the closed set of payload shapes (Float, Int, Text, Bool).
//   - envelope.go: Action, Value and Envelope plus default filling.
//   - observer.go: the Observer contract and ObserverFuncs.
//   - typed.go: Narrow and TypedObserver, the checked narrowing boundary.
//   - errors.go: misuse, narrowing and generation-fault errors.
//   - config.go: Config and package defaults; New applies defaults.
//   - stream.go: Stream lifecycle (Subscribe, Stop, Wait) and the generation loop.
//   - events.go: lifecycle EventPublisher hook.
//   - metrics.go: Prometheus collectors.
//
// Delivery contract for one subscription: zero or more OnNext calls followed by
// at most one of OnError or OnCompleted. All calls for a run happen on the
// run's goroutine, so an Observer never sees concurrent calls.
//
// Cancellation is cooperative. Stop closes the cancellation signal; the loop
// acts on it at the top of the next iteration. After Stop returns at most one
// more OnNext (one already being built or delivered) precedes the terminal
// call. The pacing sleep wakes early on Stop, so the wait is never a full
// interval.
package pipe
