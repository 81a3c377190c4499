package host

import "testing"

func TestFormattedInt(t *testing.T) {
	r := FormattedInt(255, FormatHex)
	v, format, ok := AsFormattedInt(r)
	if !ok || v != 255 || format != FormatHex {
		t.Errorf("got (%d, %s, %v)", v, format, ok)
	}
	if !IsSentinel(r) {
		t.Errorf("formatted int not recognized as sentinel")
	}

	// field order does not matter
	r = RecordOf(
		Field{Name: FieldFormat, Value: Text(FormatOct)},
		Field{Name: FieldValue, Value: Int(15)},
	)
	v, format, ok = AsFormattedInt(r)
	if !ok || v != 15 || format != FormatOct {
		t.Errorf("reversed fields gave (%d, %s, %v)", v, format, ok)
	}
}

func TestNotFormattedInt(t *testing.T) {
	rs := []*Record{
		// unknown format tag
		RecordOf(
			Field{Name: FieldValue, Value: Int(1)},
			Field{Name: FieldFormat, Value: Text("decimal")},
		),
		// wrong value type
		RecordOf(
			Field{Name: FieldValue, Value: Text("1")},
			Field{Name: FieldFormat, Value: Text(FormatHex)},
		),
		// extra field
		RecordOf(
			Field{Name: FieldValue, Value: Int(1)},
			Field{Name: FieldFormat, Value: Text(FormatHex)},
			Field{Name: "extra", Value: Int(0)},
		),
		// missing field
		RecordOf(Field{Name: FieldValue, Value: Int(1)}),
	}
	for _, r := range rs {
		if _, _, ok := AsFormattedInt(r); ok {
			t.Errorf("%v recognized as formatted int", r.Names())
		}
		if IsSentinel(r) {
			t.Errorf("%v recognized as sentinel", r.Names())
		}
	}
}

func TestOffsetDatetime(t *testing.T) {
	r := OffsetDatetime(DatetimeOf(2024, 1, 15, 10, 30, 0, 0), -300)
	tp, off, ok := AsOffsetDatetime(r)
	if !ok || off != -300 {
		t.Errorf("got (%v, %d, %v)", tp, off, ok)
	}
	if tp.String() != "2024-01-15T10:30:00" {
		t.Errorf("got temporal `%s`", tp.String())
	}
	if !IsSentinel(r) {
		t.Errorf("offset datetime not recognized as sentinel")
	}

	bad := RecordOf(
		Field{Name: FieldDatetime, Value: Text("2024-01-15T10:30:00")},
		Field{Name: FieldOffset, Value: Int(0)},
	)
	if _, _, ok := AsOffsetDatetime(bad); ok {
		t.Errorf("text datetime recognized as sentinel")
	}
}
