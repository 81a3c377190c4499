package ir

import (
	"slices"

	"github.com/recform/tomlrec/token"
)

// Date is a calendar date with no time of day or zone.
type Date struct {
	Year, Month, Day int
}

// Time is a wall-clock time with no date or zone.
type Time struct {
	Hour, Min, Sec, Nsec int
}

// Node is a single value in a document tree. Type selects which payload
// fields are meaningful.
//
// TableType nodes keep Keys sorted ascending with Fields parallel to Keys;
// declaration order is not structural and lives only in the per-node Pos.
// Pos, when non-nil, is the source position recorded by the parser and is
// consulted only while reading a freshly parsed document.
type Node struct {
	Type Type

	Keys   []string
	Fields []*Node

	Values []*Node

	String  string
	Bool    bool
	Int64   int64
	Base    IntBase
	Float64 float64

	Date   *Date
	Time   *Time
	Offset *int

	Pos *token.Pos
}

func NewTable() *Node {
	return &Node{Type: TableType}
}

func NewArray() *Node {
	return &Node{Type: ArrayType}
}

// Len returns the number of table fields or array elements.
func (y *Node) Len() int {
	switch y.Type {
	case TableType:
		return len(y.Keys)
	case ArrayType:
		return len(y.Values)
	}
	return 0
}

// Get returns the field named key, or nil.
func (y *Node) Get(key string) *Node {
	i, ok := slices.BinarySearch(y.Keys, key)
	if !ok {
		return nil
	}
	return y.Fields[i]
}

// Set inserts or replaces the field named key, keeping Keys sorted.
func (y *Node) Set(key string, child *Node) {
	i, ok := slices.BinarySearch(y.Keys, key)
	if ok {
		y.Fields[i] = child
		return
	}
	y.Keys = slices.Insert(y.Keys, i, key)
	y.Fields = slices.Insert(y.Fields, i, child)
}

// Append adds an element to an array node.
func (y *Node) Append(v *Node) {
	y.Values = append(y.Values, v)
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int64: v}
}

// FromBasedInt builds an integer node carrying a formatting base tag.
func FromBasedInt(v int64, base IntBase) *Node {
	return &Node{Type: IntegerType, Int64: v, Base: base}
}

func FromFloat(v float64) *Node {
	return &Node{Type: FloatType, Float64: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

func FromDate(d Date) *Node {
	return &Node{Type: DateType, Date: &d}
}

func FromTime(t Time) *Node {
	return &Node{Type: TimeType, Time: &t}
}

// FromDateTime builds a datetime node; offset is minutes east of UTC and
// may be nil for a naive datetime.
func FromDateTime(d Date, t Time, offset *int) *Node {
	n := &Node{Type: DateTimeType, Date: &d, Time: &t}
	if offset != nil {
		off := *offset
		n.Offset = &off
	}
	return n
}

// Clone returns a deep copy of the node. Positions are not copied: a clone
// is a synthesized tree, not a parsed one.
func (y *Node) Clone() *Node {
	if y == nil {
		return nil
	}
	res := &Node{
		Type:    y.Type,
		String:  y.String,
		Bool:    y.Bool,
		Int64:   y.Int64,
		Base:    y.Base,
		Float64: y.Float64,
	}
	if y.Date != nil {
		d := *y.Date
		res.Date = &d
	}
	if y.Time != nil {
		t := *y.Time
		res.Time = &t
	}
	if y.Offset != nil {
		off := *y.Offset
		res.Offset = &off
	}
	if y.Keys != nil {
		res.Keys = slices.Clone(y.Keys)
		res.Fields = make([]*Node, len(y.Fields))
		for i, f := range y.Fields {
			res.Fields[i] = f.Clone()
		}
	}
	if y.Values != nil {
		res.Values = make([]*Node, len(y.Values))
		for i, v := range y.Values {
			res.Values[i] = v.Clone()
		}
	}
	return res
}
