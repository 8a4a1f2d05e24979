package pipe

import "time"

// Action is the semantic kind of change an Envelope describes.
type Action uint8

const (
	ActionAdd Action = iota
	ActionUpdate
	ActionRemove
)

func (a Action) String() string {
	switch a {
	case ActionAdd:
		return "Add"
	case ActionUpdate:
		return "Update"
	case ActionRemove:
		return "Remove"
	default:
		return "Unknown"
	}
}

// Defaults applied when a Value or Envelope is built without explicit fields.
const (
	DefaultStatus     = "Good"
	DefaultSourceName = "SimulatedPoint"
)

// Value is a single data point: the scalar plus its quality metadata.
type Value struct {
	Scalar    Scalar
	Status    string
	Timestamp time.Time
	IsGood    bool
}

// ValueOption overrides a default when building a Value.
type ValueOption func(*Value)

// WithStatus sets the status string and quality flag together.
func WithStatus(status string, good bool) ValueOption {
	return func(v *Value) {
		v.Status = status
		v.IsGood = good
	}
}

// WithTimestamp sets the capture time.
func WithTimestamp(t time.Time) ValueOption {
	return func(v *Value) { v.Timestamp = t }
}

// NewValue builds a Value with Status "Good", IsGood true and the current UTC
// time, then applies opts.
func NewValue(s Scalar, opts ...ValueOption) Value {
	v := Value{
		Scalar:    s,
		Status:    DefaultStatus,
		Timestamp: time.Now().UTC(),
		IsGood:    true,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&v)
		}
	}
	return v
}

// Envelope is the unit carried through a Stream. It is passed by value and
// holds only immutable fields, so a delivered Envelope cannot be changed by
// the producer.
type Envelope struct {
	Action     Action
	Value      Value
	SourceName string
}

// NewEnvelope builds an Envelope. An empty sourceName becomes DefaultSourceName.
func NewEnvelope(action Action, v Value, sourceName string) Envelope {
	if sourceName == "" {
		sourceName = DefaultSourceName
	}
	return Envelope{Action: action, Value: v, SourceName: sourceName}
}

// actionFor returns Add for even counters and Update for odd ones.
func actionFor(seq uint64) Action {
	if seq%2 == 0 {
		return ActionAdd
	}
	return ActionUpdate
}

// generatedEnvelope is the envelope the loop emits for counter seq.
func generatedEnvelope(seq uint64, sourceName string, now time.Time) Envelope {
	v := NewValue(Float(float64(seq)*10), WithTimestamp(now))
	return NewEnvelope(actionFor(seq), v, sourceName)
}
