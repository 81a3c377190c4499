package encode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/recform/tomlrec/convert"
	"github.com/recform/tomlrec/debug"
	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"
)

const maxDepth = 512

type EncState struct {
	multiline bool

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes rec as a TOML document. The document is built in memory
// first, so an I/O failure surfaces as a single io error with no partial
// output.
func Encode(rec *host.Record, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var buf bytes.Buffer
	if err := es.table(&buf, rec, "", 0); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("%w: %v", ir.ErrIO, err)
	}
	return nil
}

func MustString(rec *host.Record) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(rec, buf); err != nil {
		panic(err)
	}
	return strings.TrimSpace(buf.String())
}

type fieldClass int

const (
	classScalar fieldClass = iota
	classTable
	classTableArray
)

// classify decides a field's emission pass. Sentinels resolve before
// record handling, so they never become section headers; a non-empty list
// whose elements are all plain records is an array of tables.
func classify(v host.Value) fieldClass {
	switch x := v.(type) {
	case *host.Record:
		if host.IsSentinel(x) {
			return classScalar
		}
		return classTable
	case host.List:
		if len(x) == 0 {
			return classScalar
		}
		for _, e := range x {
			rec, ok := e.(*host.Record)
			if !ok || host.IsSentinel(rec) {
				return classScalar
			}
		}
		return classTableArray
	}
	return classScalar
}

// table emits one table body: assignments, then sections, then arrays of
// tables, partitioned up front. Within each pass fields keep declaration
// order.
func (es *EncState) table(buf *bytes.Buffer, rec *host.Record, path string, depth int) error {
	if depth > maxDepth {
		return fmt.Errorf("%w: nesting exceeds %d levels", ir.ErrUnsupported, maxDepth)
	}
	var scalars, tables, arrays []host.Field
	for _, f := range rec.Fields() {
		switch classify(f.Value) {
		case classScalar:
			scalars = append(scalars, f)
		case classTable:
			tables = append(tables, f)
		case classTableArray:
			arrays = append(arrays, f)
		}
	}
	for _, f := range scalars {
		s, t, err := es.valueString(f.Value, depth)
		if err != nil {
			if debug.Encode() {
				debug.Logf("encode: skip %s: %v\n", f.Name, err)
			}
			continue
		}
		buf.WriteString(es.color(t, KeyColor, keyString(f.Name)))
		buf.WriteString(" = ")
		buf.WriteString(s)
		buf.WriteByte('\n')
	}
	for _, f := range tables {
		name := joinKey(path, f.Name)
		if buf.Len() > 0 {
			buf.WriteByte('\n')
		}
		buf.WriteString(es.color(ir.TableType, HeaderColor, "["+name+"]"))
		buf.WriteByte('\n')
		if err := es.table(buf, f.Value.(*host.Record), name, depth+1); err != nil {
			return err
		}
	}
	for _, f := range arrays {
		name := joinKey(path, f.Name)
		for _, e := range f.Value.(host.List) {
			if buf.Len() > 0 {
				buf.WriteByte('\n')
			}
			buf.WriteString(es.color(ir.ArrayType, HeaderColor, "[["+name+"]]"))
			buf.WriteByte('\n')
			if err := es.table(buf, e.(*host.Record), name, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// valueString renders a pass-one value: a scalar, a sentinel, an inline
// array, or an inline table. It reports the document type of the rendered
// value for coloring.
func (es *EncState) valueString(v host.Value, depth int) (string, ir.Type, error) {
	if depth > maxDepth {
		return "", ir.InvalidType, fmt.Errorf("%w: nesting exceeds %d levels", ir.ErrUnsupported, maxDepth)
	}
	switch x := v.(type) {
	case *host.Record:
		if host.IsSentinel(x) {
			n, err := convert.ToNode(x)
			if err != nil {
				return "", ir.InvalidType, err
			}
			s, err := ScalarString(n, false)
			if err != nil {
				return "", ir.InvalidType, err
			}
			return es.color(n.Type, ValueColor, s), n.Type, nil
		}
		parts := make([]string, 0, x.Len())
		for _, f := range x.Fields() {
			s, t, err := es.valueString(f.Value, depth+1)
			if err != nil {
				if debug.Encode() {
					debug.Logf("encode: skip %s: %v\n", f.Name, err)
				}
				continue
			}
			parts = append(parts, es.color(t, KeyColor, keyString(f.Name))+" = "+s)
		}
		return "{" + strings.Join(parts, ", ") + "}", ir.TableType, nil
	case host.List:
		parts := make([]string, 0, len(x))
		for i, e := range x {
			s, _, err := es.valueString(e, depth+1)
			if err != nil {
				if debug.Encode() {
					debug.Logf("encode: skip element %d: %v\n", i, err)
				}
				continue
			}
			parts = append(parts, s)
		}
		return "[" + strings.Join(parts, ", ") + "]", ir.ArrayType, nil
	case host.IntVector, host.FloatVector, host.BoolVector:
		n, err := convert.ToNode(x)
		if err != nil {
			return "", ir.InvalidType, err
		}
		parts := make([]string, 0, len(n.Values))
		for _, e := range n.Values {
			s, err := ScalarString(e, false)
			if err != nil {
				return "", ir.InvalidType, err
			}
			parts = append(parts, es.color(e.Type, ValueColor, s))
		}
		return "[" + strings.Join(parts, ", ") + "]", ir.ArrayType, nil
	}
	n, err := convert.ToNode(v)
	if err != nil {
		return "", ir.InvalidType, err
	}
	s, err := ScalarString(n, es.multiline)
	if err != nil {
		return "", ir.InvalidType, err
	}
	return es.color(n.Type, ValueColor, s), n.Type, nil
}

func (es *EncState) color(t ir.Type, attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(t, attr, s)
}

// keyString renders a key bare when possible and quoted otherwise.
func keyString(name string) string {
	if isBareKey(name) {
		return name
	}
	return FormatString(name, false)
}

func isBareKey(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		ok := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' || c == '_' || c == '-'
		if !ok {
			return false
		}
	}
	return true
}

func joinKey(path, name string) string {
	if path == "" {
		return keyString(name)
	}
	return path + "." + keyString(name)
}
