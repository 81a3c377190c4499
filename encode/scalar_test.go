package encode

import (
	"math"
	"testing"

	"github.com/recform/tomlrec/ir"
)

func TestFormatFloat(t *testing.T) {
	fts := []struct {
		in   float64
		want string
	}{
		{3.0, "3.0"},
		{-2.0, "-2.0"},
		{0, "0.0"},
		{3.14, "3.14"},
		{-0.01, "-0.01"},
		{0.0001, "0.0001"},
		{0.00005, "5e-05"},
		{1e12, "1000000000000.0"},
		{1e15, "1e+15"},
		{-2.5e-10, "-2.5e-10"},
		{6.26e-34, "6.26e-34"},
		{math.NaN(), "nan"},
		{math.Inf(1), "inf"},
		{math.Inf(-1), "-inf"},
	}
	for _, ft := range fts {
		if got := FormatFloat(ft.in); got != ft.want {
			t.Errorf("%v gave `%s` want `%s`", ft.in, got, ft.want)
		}
	}
}

func TestFormatInt(t *testing.T) {
	its := []struct {
		in   int64
		base ir.IntBase
		want string
	}{
		{42, ir.BaseDecimal, "42"},
		{-17, ir.BaseDecimal, "-17"},
		{255, ir.BaseHex, "0xFF"},
		{-255, ir.BaseHex, "-0xFF"},
		{15, ir.BaseOctal, "0o17"},
		{5, ir.BaseBinary, "0b101"},
		{0, ir.BaseHex, "0x0"},
	}
	for _, it := range its {
		if got := FormatInt(it.in, it.base); got != it.want {
			t.Errorf("(%d, %s) gave `%s` want `%s`", it.in, it.base, got, it.want)
		}
	}
}

func TestFormatString(t *testing.T) {
	sts := []struct {
		in        string
		multiline bool
		want      string
	}{
		{in: "plain", want: `"plain"`},
		{in: "tab\there", want: `"tab\there"`},
		{in: `back\slash "q"`, want: `"back\\slash \"q\""`},
		{in: "two\nlines", want: `"two\nlines"`},
		{in: "two\nlines", multiline: true, want: "\"\"\"\ntwo\nlines\"\"\""},
		{in: "\x01", want: `"\u0001"`},
		{in: "del\x7f", want: `"del\u007F"`},
		{in: "unicode é", want: "\"unicode é\""},
	}
	for _, st := range sts {
		if got := FormatString(st.in, st.multiline); got != st.want {
			t.Errorf("`%s` gave `%s` want `%s`", st.in, got, st.want)
		}
	}
}

func TestScalarString(t *testing.T) {
	off := -300
	sts := []struct {
		in   *ir.Node
		want string
	}{
		{ir.FromBool(true), "true"},
		{ir.FromBasedInt(255, ir.BaseHex), "0xFF"},
		{ir.FromDate(ir.Date{Year: 2024, Month: 1, Day: 15}), "2024-01-15"},
		{ir.FromTime(ir.Time{Hour: 7, Min: 32, Nsec: 500000000}), "07:32:00.5"},
		{
			ir.FromDateTime(ir.Date{Year: 2024, Month: 1, Day: 15}, ir.Time{Hour: 10, Min: 30}, nil),
			"2024-01-15T10:30:00",
		},
		{
			ir.FromDateTime(ir.Date{Year: 2024, Month: 1, Day: 15}, ir.Time{Hour: 10, Min: 30}, &off),
			"2024-01-15T10:30:00-05:00",
		},
	}
	for _, st := range sts {
		got, err := ScalarString(st.in, false)
		if err != nil {
			t.Errorf("%s gave %v", st.in.Type, err)
			continue
		}
		if got != st.want {
			t.Errorf("got `%s` want `%s`", got, st.want)
		}
	}
	if _, err := ScalarString(ir.NewTable(), false); err == nil {
		t.Errorf("table rendered as scalar")
	}
}
