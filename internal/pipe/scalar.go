package pipe

import "strconv"

// Kind identifies which Scalar shape a payload carries.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindFloat
	KindInt
	KindText
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindText:
		return "text"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Scalar is the closed set of payload values an Envelope can carry.
// Only the types in this package implement it.
type Scalar interface {
	Kind() Kind
	String() string
	scalar()
}

type (
	Float float64
	Int   int64
	Text  string
	Bool  bool
)

func (Float) Kind() Kind { return KindFloat }
func (Int) Kind() Kind   { return KindInt }
func (Text) Kind() Kind  { return KindText }
func (Bool) Kind() Kind  { return KindBool }

func (f Float) String() string { return strconv.FormatFloat(float64(f), 'g', -1, 64) }
func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }
func (t Text) String() string  { return string(t) }
func (b Bool) String() string  { return strconv.FormatBool(bool(b)) }

func (Float) scalar() {}
func (Int) scalar()   {}
func (Text) scalar()  {}
func (Bool) scalar()  {}

// kindOf tolerates a nil Scalar.
func kindOf(s Scalar) Kind {
	if s == nil {
		return KindInvalid
	}
	return s.Kind()
}
