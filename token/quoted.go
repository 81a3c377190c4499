package token

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Quoted returns the length of a single-line basic string starting at d[0],
// including both quote delimiters.
func Quoted(d []byte) (int, error) {
	if len(d) < 2 || d[0] != '"' {
		return 0, ErrString
	}
	i := 1
	for i < len(d) {
		switch d[i] {
		case '"':
			return i + 1, nil
		case '\\':
			if i+1 >= len(d) {
				return 0, fmt.Errorf("%w: unterminated escape", ErrEscape)
			}
			i += 2
		case '\n':
			return 0, fmt.Errorf("%w: newline in single-line string", ErrString)
		default:
			i++
		}
	}
	return 0, fmt.Errorf("%w: unterminated string", ErrString)
}

// MQuoted returns the length of a multiline basic string starting with
// `"""`, including both delimiters. Up to two quotes directly preceding the
// closing delimiter belong to the content.
func MQuoted(d []byte) (int, error) {
	if len(d) < 6 || string(d[:3]) != `"""` {
		return 0, ErrString
	}
	i := 3
	for i < len(d) {
		switch d[i] {
		case '\\':
			if i+1 >= len(d) {
				return 0, fmt.Errorf("%w: unterminated escape", ErrEscape)
			}
			i += 2
		case '"':
			j := i
			for j < len(d) && d[j] == '"' {
				j++
			}
			if j-i >= 3 {
				if j-i > 5 {
					return 0, fmt.Errorf("%w: too many quotes at delimiter", ErrString)
				}
				return j, nil
			}
			i = j
		default:
			i++
		}
	}
	return 0, fmt.Errorf("%w: unterminated string", ErrString)
}

// Literal returns the length of a single-line literal string starting at a
// single quote, including both delimiters.
func Literal(d []byte) (int, error) {
	if len(d) < 2 || d[0] != '\'' {
		return 0, ErrString
	}
	for i := 1; i < len(d); i++ {
		switch d[i] {
		case '\'':
			return i + 1, nil
		case '\n':
			return 0, fmt.Errorf("%w: newline in single-line string", ErrString)
		}
	}
	return 0, fmt.Errorf("%w: unterminated string", ErrString)
}

// MLiteral returns the length of a multiline literal string starting with
// three single quotes, including both delimiters.
func MLiteral(d []byte) (int, error) {
	if len(d) < 6 || string(d[:3]) != "'''" {
		return 0, ErrString
	}
	i := 3
	for i < len(d) {
		if d[i] != '\'' {
			i++
			continue
		}
		j := i
		for j < len(d) && d[j] == '\'' {
			j++
		}
		if j-i >= 3 {
			if j-i > 5 {
				return 0, fmt.Errorf("%w: too many quotes at delimiter", ErrString)
			}
			return j, nil
		}
		i = j
	}
	return 0, fmt.Errorf("%w: unterminated string", ErrString)
}

// Unquote decodes a single-line basic string token, delimiters included.
func Unquote(d []byte) (string, error) {
	if len(d) < 2 {
		return "", ErrString
	}
	return decodeEscapes(d[1:len(d)-1], false)
}

// MUnquote decodes a multiline basic string token, delimiters included. A
// newline immediately following the opening delimiter is trimmed.
func MUnquote(d []byte) (string, error) {
	if len(d) < 6 {
		return "", ErrString
	}
	body := d[3 : len(d)-3]
	if len(body) > 1 && body[0] == '\r' && body[1] == '\n' {
		body = body[2:]
	} else if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}
	return decodeEscapes(body, true)
}

// Unliteral decodes a single-line literal string token, delimiters included.
func Unliteral(d []byte) string {
	return string(d[1 : len(d)-1])
}

// MUnliteral decodes a multiline literal string token, delimiters included.
func MUnliteral(d []byte) string {
	body := d[3 : len(d)-3]
	if len(body) > 1 && body[0] == '\r' && body[1] == '\n' {
		body = body[2:]
	} else if len(body) > 0 && body[0] == '\n' {
		body = body[1:]
	}
	return string(body)
}

func decodeEscapes(d []byte, multiline bool) (string, error) {
	var b strings.Builder
	i := 0
	for i < len(d) {
		c := d[i]
		if c != '\\' {
			b.WriteByte(c)
			i++
			continue
		}
		i++
		if i >= len(d) {
			return "", fmt.Errorf("%w: unterminated escape", ErrEscape)
		}
		switch d[i] {
		case 'b':
			b.WriteByte('\b')
			i++
		case 't':
			b.WriteByte('\t')
			i++
		case 'n':
			b.WriteByte('\n')
			i++
		case 'f':
			b.WriteByte('\f')
			i++
		case 'r':
			b.WriteByte('\r')
			i++
		case '"':
			b.WriteByte('"')
			i++
		case '\\':
			b.WriteByte('\\')
			i++
		case 'u', 'U':
			n := 4
			if d[i] == 'U' {
				n = 8
			}
			i++
			if i+n > len(d) {
				return "", fmt.Errorf("%w: short unicode escape", ErrEscape)
			}
			v, err := strconv.ParseUint(string(d[i:i+n]), 16, 32)
			if err != nil {
				return "", fmt.Errorf("%w: bad unicode escape", ErrEscape)
			}
			r := rune(v)
			if !utf8.ValidRune(r) {
				return "", fmt.Errorf("%w: invalid rune %U", ErrEscape, r)
			}
			b.WriteRune(r)
			i += n
		case ' ', '\t', '\r', '\n':
			// line-ending backslash: valid only in multiline strings, and
			// only when the trimmed whitespace crosses a newline
			if !multiline {
				return "", fmt.Errorf("%w: \\%c", ErrEscape, d[i])
			}
			sawNL := false
			for i < len(d) && (d[i] == ' ' || d[i] == '\t' || d[i] == '\r' || d[i] == '\n') {
				if d[i] == '\n' {
					sawNL = true
				}
				i++
			}
			if !sawNL {
				return "", fmt.Errorf("%w: whitespace after backslash", ErrEscape)
			}
		default:
			return "", fmt.Errorf("%w: \\%c", ErrEscape, d[i])
		}
	}
	return b.String(), nil
}
