package encode

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"
)

// Float formatting constants. Values at or beyond sciUpper in magnitude,
// or below sciLower, render in scientific notation. Both directions of the
// codec share these; they are fixed, not tuned per document.
const (
	sciUpper = 1e15
	sciLower = 1e-4

	// fraction digits of the scientific mantissa before zero-stripping
	sciMantissaDigits = 10
	// significant digits of the plain form before zero-stripping
	plainSigDigits = 12
)

// FormatInt renders an integer in its tagged base: plain decimal digits,
// 0x with uppercase hex digits, 0o octal, 0b binary. Negative values take
// a leading sign before the prefix; zero is a single 0 digit in every
// base.
func FormatInt(v int64, base ir.IntBase) string {
	if base == ir.BaseDecimal {
		return strconv.FormatInt(v, 10)
	}
	sign := ""
	u := uint64(v)
	if v < 0 {
		sign = "-"
		u = -u
	}
	switch base {
	case ir.BaseHex:
		return sign + "0x" + strings.ToUpper(strconv.FormatUint(u, 16))
	case ir.BaseOctal:
		return sign + "0o" + strconv.FormatUint(u, 8)
	case ir.BaseBinary:
		return sign + "0b" + strconv.FormatUint(u, 2)
	}
	return strconv.FormatInt(v, 10)
}

// FormatFloat renders a float in document form: nan, inf, -inf for the
// special values; scientific notation with a zero-stripped mantissa
// outside the plain range; otherwise a plain decimal with trailing zeros
// stripped, keeping one fractional digit so integral floats stay floats.
func FormatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs >= sciUpper || (abs > 0 && abs < sciLower) {
		return trimMantissa(strconv.FormatFloat(f, 'e', sciMantissaDigits, 64))
	}
	if f == math.Trunc(f) {
		return strconv.FormatFloat(f, 'f', 1, 64)
	}
	exp := int(math.Floor(math.Log10(abs)))
	dec := plainSigDigits - 1 - exp
	if dec < 1 {
		dec = 1
	}
	s := strconv.FormatFloat(f, 'f', dec, 64)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}

// trimMantissa strips trailing zeros from the mantissa of a scientific
// form, dropping the decimal point when nothing follows it.
func trimMantissa(s string) string {
	e := strings.IndexByte(s, 'e')
	if e < 0 {
		return s
	}
	m := strings.TrimRight(s[:e], "0")
	m = strings.TrimSuffix(m, ".")
	return m + s[e:]
}

// FormatString renders text as a basic string. With multiline preferred
// and embedded newlines, the text goes verbatim between triple quotes with
// a newline directly after the opening delimiter; otherwise it is a
// single-line string with the standard escapes.
func FormatString(s string, multiline bool) string {
	if multiline && strings.Contains(s, "\n") && !strings.Contains(s, `"""`) {
		return "\"\"\"\n" + s + "\"\"\""
	}
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '"':
			b.WriteString(`\"`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

func formatDate(d ir.Date) string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func formatClock(t ir.Time) string {
	s := fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Min, t.Sec)
	if t.Nsec != 0 {
		s += "." + strings.TrimRight(fmt.Sprintf("%09d", t.Nsec), "0")
	}
	return s
}

// ScalarString renders a scalar document node as value text. Table and
// array nodes are not scalars and report an unsupported-value error.
func ScalarString(n *ir.Node, multiline bool) (string, error) {
	switch n.Type {
	case ir.StringType:
		return FormatString(n.String, multiline), nil
	case ir.IntegerType:
		return FormatInt(n.Int64, n.Base), nil
	case ir.FloatType:
		return FormatFloat(n.Float64), nil
	case ir.BoolType:
		return strconv.FormatBool(n.Bool), nil
	case ir.DateType:
		return formatDate(*n.Date), nil
	case ir.TimeType:
		return formatClock(*n.Time), nil
	case ir.DateTimeType:
		s := formatDate(*n.Date) + "T" + formatClock(*n.Time)
		if n.Offset != nil {
			s += host.FormatOffset(*n.Offset)
		}
		return s, nil
	}
	return "", fmt.Errorf("%w: %s node is not a scalar", ir.ErrUnsupported, n.Type)
}
