package host

// Value is a host environment value. The concrete types are Record, List,
// the typed vectors, the scalars, and Temporal.
type Value interface {
	isValue()
}

// Int is a 64-bit signed integer scalar.
type Int int64

// Float is a 64-bit floating point scalar.
type Float float64

// Bool is a boolean scalar.
type Bool bool

// Text is a string scalar.
type Text string

// List is a heterogeneous ordered sequence.
type List []Value

// IntVector is a homogeneous sequence of integers.
type IntVector []int64

// FloatVector is a homogeneous sequence of floats.
type FloatVector []float64

// BoolVector is a homogeneous sequence of booleans.
type BoolVector []bool

func (Int) isValue()         {}
func (Float) isValue()       {}
func (Bool) isValue()        {}
func (Text) isValue()        {}
func (List) isValue()        {}
func (IntVector) isValue()   {}
func (FloatVector) isValue() {}
func (BoolVector) isValue()  {}
func (*Record) isValue()     {}
func (Temporal) isValue()    {}
