package pipe

import (
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestProperties_GeneratedEnvelopes(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("action is Add iff counter is even", prop.ForAll(
		func(seq uint64) bool {
			e := generatedEnvelope(seq, "", time.Time{})
			return (e.Action == ActionAdd) == (seq%2 == 0) &&
				(e.Action == ActionUpdate) == (seq%2 == 1)
		},
		gen.UInt64(),
	))

	properties.Property("value is counter times ten", prop.ForAll(
		func(seq uint32) bool {
			e := generatedEnvelope(uint64(seq), "", time.Time{})
			return e.Value.Scalar == Float(float64(seq)*10)
		},
		gen.UInt32(),
	))

	properties.Property("envelopes narrow to Float and to nothing else", prop.ForAll(
		func(seq uint16) bool {
			e := generatedEnvelope(uint64(seq), "p", time.Time{})
			f, err := Narrow[Float](e)
			if err != nil || float64(f.Value) != float64(seq)*10 {
				return false
			}
			_, errInt := Narrow[Int](e)
			_, errText := Narrow[Text](e)
			_, errBool := Narrow[Bool](e)
			return IsNarrowingMismatch(errInt) && IsNarrowingMismatch(errText) && IsNarrowingMismatch(errBool)
		},
		gen.UInt16(),
	))

	properties.TestingRun(t)
}

func TestProperties_StoppedRunContract(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 15
	properties := gopter.NewProperties(parameters)

	properties.Property("stopping after n envelopes yields 0..n-1 then one completion", prop.ForAll(
		func(n int) bool {
			s := New(Config{Interval: time.Microsecond})
			r := newRecorder()
			r.nextHook = func(k int) error {
				if k == n {
					s.Stop()
				}
				return nil
			}
			if err := s.Subscribe(r); err != nil {
				return false
			}
			select {
			case <-r.terminal:
			case <-time.After(2 * time.Second):
				return false
			}
			calls := r.snapshot()
			if len(calls) != n+1 || calls[n].kind != "completed" {
				return false
			}
			for i := 0; i < n; i++ {
				if calls[i].kind != "next" || calls[i].env.Value.Scalar != Float(float64(i)*10) || calls[i].env.Action != actionFor(uint64(i)) {
					return false
				}
			}
			return true
		},
		gen.IntRange(1, 12),
	))

	properties.TestingRun(t)
}
