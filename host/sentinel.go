package host

// Sentinel field names and integer format tags. A sentinel is recognized by
// its exact field-name set and field types, never by an explicit
// discriminator, so plain records can carry the convention.
const (
	FieldValue    = "value"
	FieldFormat   = "format"
	FieldDatetime = "datetime"
	FieldOffset   = "offset_minutes"

	FormatHex = "hex"
	FormatOct = "oct"
	FormatBin = "bin"
)

// FormattedInt builds the sentinel record standing for an integer written
// in a non-decimal base. format must be one of FormatHex, FormatOct,
// FormatBin.
func FormattedInt(v int64, format string) *Record {
	r := NewRecord()
	r.Set(FieldValue, Int(v))
	r.Set(FieldFormat, Text(format))
	return r
}

// OffsetDatetime builds the sentinel record standing for a datetime with a
// zone offset, in minutes east of UTC.
func OffsetDatetime(t Temporal, offsetMinutes int) *Record {
	r := NewRecord()
	r.Set(FieldDatetime, t)
	r.Set(FieldOffset, Int(offsetMinutes))
	return r
}

// AsFormattedInt recognizes the formatted-integer sentinel: exactly the
// fields value (integer) and format (one of hex/oct/bin), in any order.
func AsFormattedInt(r *Record) (value int64, format string, ok bool) {
	if r.Len() != 2 {
		return 0, "", false
	}
	v, hasValue := r.Get(FieldValue)
	f, hasFormat := r.Get(FieldFormat)
	if !hasValue || !hasFormat {
		return 0, "", false
	}
	iv, isInt := v.(Int)
	tf, isText := f.(Text)
	if !isInt || !isText {
		return 0, "", false
	}
	switch string(tf) {
	case FormatHex, FormatOct, FormatBin:
		return int64(iv), string(tf), true
	}
	return 0, "", false
}

// AsOffsetDatetime recognizes the offset-datetime sentinel: exactly the
// fields datetime (temporal) and offset_minutes (integer), in any order.
func AsOffsetDatetime(r *Record) (t Temporal, offsetMinutes int, ok bool) {
	if r.Len() != 2 {
		return Temporal{}, 0, false
	}
	dv, hasDatetime := r.Get(FieldDatetime)
	ov, hasOffset := r.Get(FieldOffset)
	if !hasDatetime || !hasOffset {
		return Temporal{}, 0, false
	}
	tv, isTemporal := dv.(Temporal)
	off, isInt := ov.(Int)
	if !isTemporal || !isInt {
		return Temporal{}, 0, false
	}
	return tv, int(off), true
}

// IsSentinel reports whether r matches either sentinel shape.
func IsSentinel(r *Record) bool {
	if _, _, ok := AsFormattedInt(r); ok {
		return true
	}
	_, _, ok := AsOffsetDatetime(r)
	return ok
}
