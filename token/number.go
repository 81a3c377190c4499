package token

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// NumberKind classifies a scanned numeric token. The non-decimal integer
// kinds record how the value was written in the source, which the document
// model carries as a base tag.
type NumberKind int

const (
	Decimal NumberKind = iota
	Hex
	Octal
	Binary
	Float
)

func (k NumberKind) String() string {
	return map[NumberKind]string{
		Decimal: "decimal",
		Hex:     "hex",
		Octal:   "octal",
		Binary:  "binary",
		Float:   "float",
	}[k]
}

// ScanNumber returns the length and kind of the numeric token starting at
// d[0]. Underscore digit separators are accepted between digits.
func ScanNumber(d []byte) (int, NumberKind, error) {
	i := 0
	signed := false
	if i < len(d) && (d[i] == '+' || d[i] == '-') {
		signed = true
		i++
	}
	if i >= len(d) {
		return 0, 0, ErrNumber
	}
	if bytes.HasPrefix(d[i:], []byte("inf")) || bytes.HasPrefix(d[i:], []byte("nan")) {
		return i + 3, Float, nil
	}
	if d[i] == '0' && i+1 < len(d) {
		var digits func(byte) bool
		var kind NumberKind
		switch d[i+1] {
		case 'x':
			digits, kind = isHexDigit, Hex
		case 'o':
			digits, kind = isOctalDigit, Octal
		case 'b':
			digits, kind = isBinaryDigit, Binary
		}
		if digits != nil {
			if signed {
				return 0, 0, fmt.Errorf("%w: sign on prefixed integer", ErrNumber)
			}
			run := digitRun(d[i+2:], digits)
			if run == 0 || !validSeparators(d[i+2:i+2+run]) {
				return 0, 0, fmt.Errorf("%w: bad %s digits", ErrNumber, kind)
			}
			return i + 2 + run, kind, nil
		}
	}
	intStart := i
	run := digitRun(d[i:], isDecimalDigit)
	if run == 0 || !validSeparators(d[i:i+run]) {
		return 0, 0, ErrNumber
	}
	i += run
	if d[intStart] == '0' && run > 1 {
		return 0, 0, fmt.Errorf("%w: leading zero", ErrNumber)
	}
	kind := Decimal
	if i < len(d) && d[i] == '.' {
		fn := digitRun(d[i+1:], isDecimalDigit)
		if fn == 0 || !validSeparators(d[i+1:i+1+fn]) {
			return 0, 0, fmt.Errorf("%w: missing fraction digits", ErrNumber)
		}
		i += 1 + fn
		kind = Float
	}
	if i < len(d) && (d[i] == 'e' || d[i] == 'E') {
		j := i + 1
		if j < len(d) && (d[j] == '+' || d[j] == '-') {
			j++
		}
		en := digitRun(d[j:], isDecimalDigit)
		if en == 0 || !validSeparators(d[j:j+en]) {
			return 0, 0, fmt.Errorf("%w: missing exponent digits", ErrNumber)
		}
		i = j + en
		kind = Float
	}
	return i, kind, nil
}

// ParseInt parses a scanned integer token of the given kind.
func ParseInt(d []byte, kind NumberKind) (int64, error) {
	s := strings.ReplaceAll(string(d), "_", "")
	var v int64
	var err error
	switch kind {
	case Decimal:
		v, err = strconv.ParseInt(s, 10, 64)
	case Hex:
		v, err = strconv.ParseInt(s[2:], 16, 64)
	case Octal:
		v, err = strconv.ParseInt(s[2:], 8, 64)
	case Binary:
		v, err = strconv.ParseInt(s[2:], 2, 64)
	default:
		return 0, fmt.Errorf("%w: %q is not an integer", ErrNumber, s)
	}
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return v, nil
}

// ParseFloat parses a scanned float token, including the inf and nan forms.
func ParseFloat(d []byte) (float64, error) {
	s := strings.ReplaceAll(string(d), "_", "")
	switch s {
	case "inf", "+inf":
		return math.Inf(1), nil
	case "-inf":
		return math.Inf(-1), nil
	case "nan", "+nan", "-nan":
		return math.NaN(), nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNumber, s)
	}
	return v, nil
}

func digitRun(d []byte, digit func(byte) bool) int {
	i := 0
	for i < len(d) && (digit(d[i]) || d[i] == '_') {
		i++
	}
	return i
}

// validSeparators reports whether every underscore in the run sits between
// two digits.
func validSeparators(run []byte) bool {
	for i, c := range run {
		if c != '_' {
			continue
		}
		if i == 0 || i == len(run)-1 {
			return false
		}
		if run[i-1] == '_' || run[i+1] == '_' {
			return false
		}
	}
	return true
}

func isDecimalDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func isOctalDigit(c byte) bool {
	return c >= '0' && c <= '7'
}

func isBinaryDigit(c byte) bool {
	return c == '0' || c == '1'
}
