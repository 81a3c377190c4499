package parse

import (
	"bytes"
	"fmt"

	"github.com/recform/tomlrec/debug"
	"github.com/recform/tomlrec/ir"
	"github.com/recform/tomlrec/token"
)

// Parse parses a TOML document into an ir.Node table.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{positions: true, maxDepth: 512}
	for _, f := range opts {
		f(pOpts)
	}
	p := &parser{
		d:        d,
		doc:      token.NewDoc(d),
		opts:     pOpts,
		explicit: map[*ir.Node]bool{},
		closed:   map[*ir.Node]bool{},
		aot:      map[*ir.Node]bool{},
	}
	p.root = ir.NewTable()
	p.stamp(p.root, 0)
	p.cur = p.root
	for {
		p.skipVoid()
		if p.off >= len(p.d) {
			break
		}
		if p.d[p.off] == '[' {
			if err := p.header(); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.keyval(p.cur); err != nil {
			return nil, err
		}
		if err := p.endLine(); err != nil {
			return nil, err
		}
	}
	return p.root, nil
}

type parser struct {
	d    []byte
	off  int
	doc  *token.Doc
	opts *parseOpts

	root *ir.Node
	cur  *ir.Node

	depth int

	// explicit marks tables defined by a [header]; closed marks inline
	// values that headers and dotted keys may not extend; aot marks arrays
	// built by [[header]].
	explicit map[*ir.Node]bool
	closed   map[*ir.Node]bool
	aot      map[*ir.Node]bool
}

func (p *parser) errorf(off int, format string, args ...any) error {
	err := fmt.Errorf("%w: %s: %s", ir.ErrParse, p.doc.Pos(off), fmt.Sprintf(format, args...))
	if debug.Parse() {
		debug.Logf("parse: %v\n", err)
	}
	return err
}

func (p *parser) stamp(n *ir.Node, off int) {
	if !p.opts.positions {
		return
	}
	pos := p.doc.Pos(off)
	n.Pos = &pos
}

// skipVoid consumes whitespace, newlines, and comments between top-level
// expressions.
func (p *parser) skipVoid() {
	for p.off < len(p.d) {
		switch p.d[p.off] {
		case ' ', '\t', '\r', '\n':
			p.off++
		case '#':
			for p.off < len(p.d) && p.d[p.off] != '\n' {
				p.off++
			}
		default:
			return
		}
	}
}

func (p *parser) skipSpace() {
	for p.off < len(p.d) && (p.d[p.off] == ' ' || p.d[p.off] == '\t') {
		p.off++
	}
}

// endLine consumes trailing space and an optional comment, then requires a
// newline or end of input.
func (p *parser) endLine() error {
	p.skipSpace()
	if p.off < len(p.d) && p.d[p.off] == '#' {
		for p.off < len(p.d) && p.d[p.off] != '\n' {
			p.off++
		}
	}
	if p.off < len(p.d) && p.d[p.off] == '\r' {
		p.off++
	}
	if p.off >= len(p.d) {
		return nil
	}
	if p.d[p.off] != '\n' {
		return p.errorf(p.off, "expected end of line, got %q", p.d[p.off])
	}
	p.off++
	return nil
}

func (p *parser) header() error {
	start := p.off
	p.off++
	array := p.off < len(p.d) && p.d[p.off] == '['
	if array {
		p.off++
	}
	p.skipSpace()
	keys, err := p.dottedKey()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.off >= len(p.d) || p.d[p.off] != ']' {
		return p.errorf(p.off, "expected ']' in table header")
	}
	p.off++
	if array {
		if p.off >= len(p.d) || p.d[p.off] != ']' {
			return p.errorf(p.off, "expected ']]' in array table header")
		}
		p.off++
	}
	if err := p.endLine(); err != nil {
		return err
	}

	parent := p.root
	for _, k := range keys[:len(keys)-1] {
		parent, err = p.descend(parent, k, start)
		if err != nil {
			return err
		}
	}
	last := keys[len(keys)-1]
	if array {
		return p.openArrayTable(parent, last, start)
	}
	return p.openTable(parent, last, start)
}

// descend resolves one intermediate header segment, creating implicit
// tables as needed. Descending into an array of tables lands on its last
// element.
func (p *parser) descend(parent *ir.Node, key string, off int) (*ir.Node, error) {
	child := parent.Get(key)
	if child == nil {
		child = ir.NewTable()
		p.stamp(child, off)
		parent.Set(key, child)
		return child, nil
	}
	if p.closed[child] {
		return nil, p.errorf(off, "cannot extend inline value %q", key)
	}
	if p.aot[child] {
		return child.Values[len(child.Values)-1], nil
	}
	if child.Type != ir.TableType {
		return nil, p.errorf(off, "key %q is not a table", key)
	}
	return child, nil
}

func (p *parser) openTable(parent *ir.Node, key string, off int) error {
	child := parent.Get(key)
	if child == nil {
		child = ir.NewTable()
		p.stamp(child, off)
		parent.Set(key, child)
	}
	if child.Type != ir.TableType || p.closed[child] || p.aot[child] {
		return p.errorf(off, "key %q is already defined as a value", key)
	}
	if p.explicit[child] {
		return p.errorf(off, "table %q is already defined", key)
	}
	p.explicit[child] = true
	p.cur = child
	return nil
}

func (p *parser) openArrayTable(parent *ir.Node, key string, off int) error {
	arr := parent.Get(key)
	if arr == nil {
		arr = ir.NewArray()
		p.stamp(arr, off)
		p.aot[arr] = true
		parent.Set(key, arr)
	}
	if !p.aot[arr] {
		return p.errorf(off, "key %q is not an array of tables", key)
	}
	elem := ir.NewTable()
	p.stamp(elem, off)
	arr.Append(elem)
	p.cur = elem
	return nil
}

func (p *parser) keyval(tbl *ir.Node) error {
	start := p.off
	keys, err := p.dottedKey()
	if err != nil {
		return err
	}
	p.skipSpace()
	if p.off >= len(p.d) || p.d[p.off] != '=' {
		return p.errorf(p.off, "expected '=' after key")
	}
	p.off++
	p.skipSpace()

	t := tbl
	for _, k := range keys[:len(keys)-1] {
		child := t.Get(k)
		if child == nil {
			child = ir.NewTable()
			p.stamp(child, start)
			t.Set(k, child)
		} else if child.Type != ir.TableType || p.closed[child] || p.aot[child] || p.explicit[child] {
			return p.errorf(start, "dotted key %q conflicts with an existing value", k)
		}
		t = child
	}
	last := keys[len(keys)-1]
	if t.Get(last) != nil {
		return p.errorf(start, "duplicate key %q", last)
	}
	v, err := p.value()
	if err != nil {
		return err
	}
	t.Set(last, v)
	return nil
}

// dottedKey parses one or more simple keys joined by dots.
func (p *parser) dottedKey() ([]string, error) {
	var keys []string
	for {
		k, err := p.simpleKey()
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		p.skipSpace()
		if p.off >= len(p.d) || p.d[p.off] != '.' {
			return keys, nil
		}
		p.off++
		p.skipSpace()
	}
}

func (p *parser) simpleKey() (string, error) {
	if p.off >= len(p.d) {
		return "", p.errorf(p.off, "missing key")
	}
	switch p.d[p.off] {
	case '"':
		n, err := token.Quoted(p.d[p.off:])
		if err != nil {
			return "", p.errorf(p.off, "bad quoted key: %v", err)
		}
		s, err := token.Unquote(p.d[p.off : p.off+n])
		if err != nil {
			return "", p.errorf(p.off, "bad quoted key: %v", err)
		}
		p.off += n
		return s, nil
	case '\'':
		n, err := token.Literal(p.d[p.off:])
		if err != nil {
			return "", p.errorf(p.off, "bad literal key: %v", err)
		}
		s := token.Unliteral(p.d[p.off : p.off+n])
		p.off += n
		return s, nil
	}
	start := p.off
	for p.off < len(p.d) && isBareKeyChar(p.d[p.off]) {
		p.off++
	}
	if p.off == start {
		return "", p.errorf(start, "missing key")
	}
	return string(p.d[start:p.off]), nil
}

func isBareKeyChar(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '-'
}

func (p *parser) value() (*ir.Node, error) {
	if p.depth >= p.opts.maxDepth {
		return nil, p.errorf(p.off, "value nesting exceeds %d levels", p.opts.maxDepth)
	}
	if p.off >= len(p.d) {
		return nil, p.errorf(p.off, "missing value")
	}
	start := p.off
	rest := p.d[p.off:]
	var n *ir.Node
	switch c := p.d[p.off]; {
	case c == '"':
		var s string
		var ln int
		var err error
		if bytes.HasPrefix(rest, []byte(`"""`)) {
			ln, err = token.MQuoted(rest)
			if err == nil {
				s, err = token.MUnquote(rest[:ln])
			}
		} else {
			ln, err = token.Quoted(rest)
			if err == nil {
				s, err = token.Unquote(rest[:ln])
			}
		}
		if err != nil {
			return nil, p.errorf(start, "%v", err)
		}
		p.off += ln
		n = ir.FromString(s)
	case c == '\'':
		var s string
		var ln int
		var err error
		if bytes.HasPrefix(rest, []byte("'''")) {
			ln, err = token.MLiteral(rest)
			if err == nil {
				s = token.MUnliteral(rest[:ln])
			}
		} else {
			ln, err = token.Literal(rest)
			if err == nil {
				s = token.Unliteral(rest[:ln])
			}
		}
		if err != nil {
			return nil, p.errorf(start, "%v", err)
		}
		p.off += ln
		n = ir.FromString(s)
	case c == '[':
		arr, err := p.array()
		if err != nil {
			return nil, err
		}
		n = arr
	case c == '{':
		tbl, err := p.inlineTable()
		if err != nil {
			return nil, err
		}
		n = tbl
	case bytes.HasPrefix(rest, []byte("true")) && p.terminated(start+4):
		p.off += 4
		n = ir.FromBool(true)
	case bytes.HasPrefix(rest, []byte("false")) && p.terminated(start+5):
		p.off += 5
		n = ir.FromBool(false)
	case token.LooksLikeDatetime(rest):
		ln, dt, err := token.ScanDatetime(rest)
		if err != nil {
			return nil, p.errorf(start, "%v", err)
		}
		p.off += ln
		n = fromDatetime(dt)
	default:
		ln, kind, err := token.ScanNumber(rest)
		if err != nil {
			return nil, p.errorf(start, "%v", err)
		}
		tok := rest[:ln]
		p.off += ln
		if kind == token.Float {
			f, err := token.ParseFloat(tok)
			if err != nil {
				return nil, p.errorf(start, "%v", err)
			}
			n = ir.FromFloat(f)
		} else {
			v, err := token.ParseInt(tok, kind)
			if err != nil {
				return nil, p.errorf(start, "%v", err)
			}
			n = ir.FromBasedInt(v, intBase(kind))
		}
	}
	if n.Pos == nil {
		p.stamp(n, start)
	}
	return n, nil
}

func intBase(kind token.NumberKind) ir.IntBase {
	switch kind {
	case token.Hex:
		return ir.BaseHex
	case token.Octal:
		return ir.BaseOctal
	case token.Binary:
		return ir.BaseBinary
	}
	return ir.BaseDecimal
}

func fromDatetime(dt *token.Datetime) *ir.Node {
	date := ir.Date{Year: dt.Year, Month: dt.Month, Day: dt.Day}
	tod := ir.Time{Hour: dt.Hour, Min: dt.Min, Sec: dt.Sec, Nsec: dt.Nsec}
	switch {
	case dt.HasDate && dt.HasTime:
		return ir.FromDateTime(date, tod, dt.Offset)
	case dt.HasDate:
		return ir.FromDate(date)
	default:
		return ir.FromTime(tod)
	}
}

// terminated reports whether off sits at a value boundary.
func (p *parser) terminated(off int) bool {
	if off >= len(p.d) {
		return true
	}
	switch p.d[off] {
	case ' ', '\t', '\r', '\n', ',', ']', '}', '#':
		return true
	}
	return false
}

func (p *parser) array() (*ir.Node, error) {
	start := p.off
	p.off++
	p.depth++
	defer func() { p.depth-- }()
	arr := ir.NewArray()
	p.stamp(arr, start)
	p.closed[arr] = true
	for {
		p.skipVoid()
		if p.off >= len(p.d) {
			return nil, p.errorf(start, "unterminated array")
		}
		if p.d[p.off] == ']' {
			p.off++
			return arr, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Append(v)
		p.skipVoid()
		if p.off >= len(p.d) {
			return nil, p.errorf(start, "unterminated array")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case ']':
			p.off++
			return arr, nil
		default:
			return nil, p.errorf(p.off, "expected ',' or ']' in array")
		}
	}
}

// inlineTable parses { k = v, ... } on a single line. Inline tables are
// closed: later headers and dotted keys may not extend them.
func (p *parser) inlineTable() (*ir.Node, error) {
	start := p.off
	p.off++
	p.depth++
	defer func() { p.depth-- }()
	tbl := ir.NewTable()
	p.stamp(tbl, start)
	p.closed[tbl] = true
	p.skipSpace()
	if p.off < len(p.d) && p.d[p.off] == '}' {
		p.off++
		return tbl, nil
	}
	for {
		p.skipSpace()
		if err := p.keyval(tbl); err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.off >= len(p.d) {
			return nil, p.errorf(start, "unterminated inline table")
		}
		switch p.d[p.off] {
		case ',':
			p.off++
		case '}':
			p.off++
			return tbl, nil
		default:
			return nil, p.errorf(p.off, "expected ',' or '}' in inline table")
		}
	}
}
