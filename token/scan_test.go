package token

import (
	"math"
	"testing"
)

type numScanTest struct {
	in   string
	n    int
	kind NumberKind
	bad  bool
}

func TestScanNumber(t *testing.T) {
	nts := []numScanTest{
		{in: "42", n: 2, kind: Decimal},
		{in: "+42", n: 3, kind: Decimal},
		{in: "-17", n: 3, kind: Decimal},
		{in: "0", n: 1, kind: Decimal},
		{in: "1_000", n: 5, kind: Decimal},
		{in: "0xDEAD_beef", n: 11, kind: Hex},
		{in: "0o17", n: 4, kind: Octal},
		{in: "0b101", n: 5, kind: Binary},
		{in: "3.14", n: 4, kind: Float},
		{in: "1e10", n: 4, kind: Float},
		{in: "6.26e-34", n: 8, kind: Float},
		{in: "-0.01", n: 5, kind: Float},
		{in: "inf", n: 3, kind: Float},
		{in: "+inf", n: 4, kind: Float},
		{in: "-nan", n: 4, kind: Float},
		{in: "42, ", n: 2, kind: Decimal},
		{in: "0123", bad: true},
		{in: "_1", bad: true},
		{in: "1_", bad: true},
		{in: "1__2", bad: true},
		{in: "+0x1", bad: true},
		{in: "1.", bad: true},
		{in: "1e", bad: true},
		{in: "0x", bad: true},
	}
	for _, nt := range nts {
		n, kind, err := ScanNumber([]byte(nt.in))
		if nt.bad {
			if err == nil {
				t.Errorf("`%s` scanned without error", nt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("`%s` gave %v", nt.in, err)
			continue
		}
		if n != nt.n || kind != nt.kind {
			t.Errorf("`%s` gave (%d, %s) want (%d, %s)", nt.in, n, kind, nt.n, nt.kind)
		}
	}
}

func TestParseIntBases(t *testing.T) {
	v, err := ParseInt([]byte("0xFF"), Hex)
	if err != nil || v != 255 {
		t.Errorf("0xFF gave (%d, %v)", v, err)
	}
	v, err = ParseInt([]byte("0o17"), Octal)
	if err != nil || v != 15 {
		t.Errorf("0o17 gave (%d, %v)", v, err)
	}
	v, err = ParseInt([]byte("0b101"), Binary)
	if err != nil || v != 5 {
		t.Errorf("0b101 gave (%d, %v)", v, err)
	}
	v, err = ParseInt([]byte("1_000"), Decimal)
	if err != nil || v != 1000 {
		t.Errorf("1_000 gave (%d, %v)", v, err)
	}
}

func TestParseFloatForms(t *testing.T) {
	f, err := ParseFloat([]byte("-inf"))
	if err != nil || !math.IsInf(f, -1) {
		t.Errorf("-inf gave (%v, %v)", f, err)
	}
	f, err = ParseFloat([]byte("nan"))
	if err != nil || !math.IsNaN(f) {
		t.Errorf("nan gave (%v, %v)", f, err)
	}
	f, err = ParseFloat([]byte("6.26e-34"))
	if err != nil || f != 6.26e-34 {
		t.Errorf("6.26e-34 gave (%v, %v)", f, err)
	}
}

func TestQuoted(t *testing.T) {
	in := `"a\"b\u0041" = 1`
	n, err := Quoted([]byte(in))
	if err != nil {
		t.Fatalf("`%s` gave %v", in, err)
	}
	if n != 12 {
		t.Fatalf("`%s` gave length %d want 12", in, n)
	}
	s, err := Unquote([]byte(in[:n]))
	if err != nil {
		t.Fatalf("unquote gave %v", err)
	}
	if s != `a"bA` {
		t.Errorf("unquote gave `%s`", s)
	}
}

func TestQuotedErrs(t *testing.T) {
	for _, in := range []string{`"abc`, "\"ab\nc\"", `"ab\`} {
		if _, err := Quoted([]byte(in)); err == nil {
			t.Errorf("`%s` scanned without error", in)
		}
	}
}

func TestMQuoted(t *testing.T) {
	in := "\"\"\"\nab\"\"c\"\"\""
	n, err := MQuoted([]byte(in))
	if err != nil {
		t.Fatalf("`%s` gave %v", in, err)
	}
	if n != len(in) {
		t.Fatalf("`%s` gave length %d want %d", in, n, len(in))
	}
	s, err := MUnquote([]byte(in[:n]))
	if err != nil {
		t.Fatalf("munquote gave %v", err)
	}
	if s != `ab""c` {
		t.Errorf("munquote gave `%s`", s)
	}
}

func TestLiteral(t *testing.T) {
	in := `'C:\path\to' rest`
	n, err := Literal([]byte(in))
	if err != nil {
		t.Fatalf("`%s` gave %v", in, err)
	}
	if s := Unliteral([]byte(in[:n])); s != `C:\path\to` {
		t.Errorf("unliteral gave `%s`", s)
	}
}

type dtScanTest struct {
	in      string
	n       int
	date    bool
	time    bool
	nsec    int
	offset  *int
	bad     bool
	notLike bool
}

func intp(v int) *int { return &v }

func TestScanDatetime(t *testing.T) {
	dts := []dtScanTest{
		{in: "2024-01-15", n: 10, date: true},
		{in: "2024-01-15T10:30:00", n: 19, date: true, time: true},
		{in: "2024-01-15 10:30:00", n: 19, date: true, time: true},
		{in: "2024-01-15T10:30:00Z", n: 20, date: true, time: true, offset: intp(0)},
		{in: "2024-01-15T10:30:00-05:00", n: 25, date: true, time: true, offset: intp(-300)},
		{in: "2024-01-15T10:30:00+05:30", n: 25, date: true, time: true, offset: intp(330)},
		{in: "07:32:00", n: 8, time: true},
		{in: "1979-05-27T00:32:00.999999", n: 26, date: true, time: true, nsec: 999999000},
		{in: "2024-01-15 then", n: 10, date: true},
		{in: "2024-13-01", bad: true},
		{in: "2024-01-32", bad: true},
		{in: "25:00:00", bad: true},
		{in: "2024-01-15T10:30:00+25:00", bad: true},
		{in: "hello", notLike: true},
		{in: "123", notLike: true},
	}
	for _, dt := range dts {
		d := []byte(dt.in)
		if LooksLikeDatetime(d) == dt.notLike {
			t.Errorf("`%s` LooksLikeDatetime gave %v", dt.in, !dt.notLike)
			continue
		}
		if dt.notLike {
			continue
		}
		n, res, err := ScanDatetime(d)
		if dt.bad {
			if err == nil {
				t.Errorf("`%s` scanned without error", dt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("`%s` gave %v", dt.in, err)
			continue
		}
		if n != dt.n {
			t.Errorf("`%s` gave length %d want %d", dt.in, n, dt.n)
		}
		if res.HasDate != dt.date || res.HasTime != dt.time {
			t.Errorf("`%s` gave (date=%v, time=%v)", dt.in, res.HasDate, res.HasTime)
		}
		if res.Nsec != dt.nsec {
			t.Errorf("`%s` gave nsec %d want %d", dt.in, res.Nsec, dt.nsec)
		}
		switch {
		case dt.offset == nil && res.Offset != nil:
			t.Errorf("`%s` gave offset %d want none", dt.in, *res.Offset)
		case dt.offset != nil && res.Offset == nil:
			t.Errorf("`%s` gave no offset want %d", dt.in, *dt.offset)
		case dt.offset != nil && *res.Offset != *dt.offset:
			t.Errorf("`%s` gave offset %d want %d", dt.in, *res.Offset, *dt.offset)
		}
	}
}
