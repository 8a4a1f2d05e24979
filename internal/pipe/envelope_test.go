package pipe

import (
	"testing"
	"time"
)

func TestNewValue_Defaults(t *testing.T) {
	before := time.Now().UTC()
	v := NewValue(Float(1.5))
	if v.Status != "Good" || !v.IsGood {
		t.Fatalf("unexpected defaults: %+v", v)
	}
	if v.Timestamp.Before(before) || v.Timestamp.Location() != time.UTC {
		t.Fatalf("timestamp not captured in UTC at creation: %v", v.Timestamp)
	}
	if v.Scalar != Float(1.5) {
		t.Fatalf("scalar = %v", v.Scalar)
	}
}

func TestNewValue_Options(t *testing.T) {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	v := NewValue(Text("x"), WithStatus("Bad", false), WithTimestamp(ts), nil)
	if v.Status != "Bad" || v.IsGood || !v.Timestamp.Equal(ts) {
		t.Fatalf("options not applied: %+v", v)
	}
}

func TestNewEnvelope_DefaultSourceName(t *testing.T) {
	e := NewEnvelope(ActionRemove, NewValue(Int(3)), "")
	if e.SourceName != DefaultSourceName {
		t.Fatalf("source = %q", e.SourceName)
	}
	e = NewEnvelope(ActionAdd, NewValue(Int(3)), "tank.level")
	if e.SourceName != "tank.level" {
		t.Fatalf("source = %q", e.SourceName)
	}
}

func TestActionString(t *testing.T) {
	cases := map[Action]string{ActionAdd: "Add", ActionUpdate: "Update", ActionRemove: "Remove", Action(9): "Unknown"}
	for a, want := range cases {
		if got := a.String(); got != want {
			t.Fatalf("%d.String() = %q, want %q", a, got, want)
		}
	}
}

func TestScalarKinds(t *testing.T) {
	cases := []struct {
		s    Scalar
		kind Kind
		str  string
	}{
		{Float(20), KindFloat, "20"},
		{Float(2.5), KindFloat, "2.5"},
		{Int(-4), KindInt, "-4"},
		{Text("ok"), KindText, "ok"},
		{Bool(true), KindBool, "true"},
	}
	for _, c := range cases {
		if c.s.Kind() != c.kind || c.s.String() != c.str {
			t.Fatalf("%#v: kind=%s str=%q", c.s, c.s.Kind(), c.s.String())
		}
	}
	if kindOf(nil) != KindInvalid || KindInvalid.String() != "invalid" {
		t.Fatalf("nil scalar should be invalid")
	}
}

func TestGeneratedEnvelope(t *testing.T) {
	now := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	e := generatedEnvelope(3, "p1", now)
	if e.Action != ActionUpdate || e.Value.Scalar != Float(30) || e.SourceName != "p1" {
		t.Fatalf("unexpected envelope: %+v", e)
	}
	if !e.Value.Timestamp.Equal(now) || e.Value.Status != "Good" || !e.Value.IsGood {
		t.Fatalf("unexpected value metadata: %+v", e.Value)
	}
}
