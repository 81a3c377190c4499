package ir

// Type discriminates the payload of a Node.
type Type int

const (
	InvalidType Type = iota
	TableType
	ArrayType
	StringType
	IntegerType
	FloatType
	BoolType
	DateType
	TimeType
	DateTimeType
)

func (t Type) String() string {
	return map[Type]string{
		InvalidType:  "invalid",
		TableType:    "table",
		ArrayType:    "array",
		StringType:   "string",
		IntegerType:  "integer",
		FloatType:    "float",
		BoolType:     "bool",
		DateType:     "date",
		TimeType:     "time",
		DateTimeType: "datetime",
	}[t]
}

// Types lists all node types, in rank order.
func Types() []Type {
	return []Type{
		TableType, ArrayType, StringType, IntegerType,
		FloatType, BoolType, DateType, TimeType, DateTimeType,
	}
}

// IntBase records how an integer was written in the source.
type IntBase int

const (
	BaseDecimal IntBase = iota
	BaseHex
	BaseOctal
	BaseBinary
)

func (b IntBase) String() string {
	return map[IntBase]string{
		BaseDecimal: "decimal",
		BaseHex:     "hex",
		BaseOctal:   "oct",
		BaseBinary:  "bin",
	}[b]
}
