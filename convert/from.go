package convert

import (
	"fmt"
	"math"
	"slices"

	"github.com/recform/tomlrec/debug"
	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"
	"github.com/recform/tomlrec/token"
)

// maxDepth bounds recursive descent on both conversion directions.
const maxDepth = 512

// FromDocument converts a parsed document root into a host record. The
// root must be a table.
func FromDocument(root *ir.Node) (*host.Record, error) {
	if root == nil || root.Type != ir.TableType {
		return nil, &DecodeError{
			Message: "document root must be a table",
			Err:     ir.ErrUnsupported,
		}
	}
	v, err := fromNode(root, "", 0)
	if err != nil {
		return nil, err
	}
	return v.(*host.Record), nil
}

// FromNode converts any document node into a host value.
func FromNode(n *ir.Node) (host.Value, error) {
	return fromNode(n, "", 0)
}

func fromNode(n *ir.Node, path string, depth int) (host.Value, error) {
	if n == nil {
		return nil, &DecodeError{FieldPath: path, Message: "nil node", Err: ir.ErrUnsupported}
	}
	if depth > maxDepth {
		return nil, &DecodeError{
			FieldPath: path,
			Message:   fmt.Sprintf("nesting exceeds %d levels", maxDepth),
			Err:       ir.ErrUnsupported,
		}
	}
	switch n.Type {
	case ir.TableType:
		return fromTable(n, path, depth)
	case ir.ArrayType:
		return fromArray(n, path, depth)
	case ir.StringType:
		return host.Text(n.String), nil
	case ir.IntegerType:
		switch n.Base {
		case ir.BaseHex:
			return host.FormattedInt(n.Int64, host.FormatHex), nil
		case ir.BaseOctal:
			return host.FormattedInt(n.Int64, host.FormatOct), nil
		case ir.BaseBinary:
			return host.FormattedInt(n.Int64, host.FormatBin), nil
		}
		return host.Int(n.Int64), nil
	case ir.FloatType:
		return host.Float(n.Float64), nil
	case ir.BoolType:
		return host.Bool(n.Bool), nil
	case ir.DateType:
		return host.DateOf(n.Date.Year, n.Date.Month, n.Date.Day), nil
	case ir.TimeType:
		return host.TimeOf(n.Time.Hour, n.Time.Min, n.Time.Sec, n.Time.Nsec), nil
	case ir.DateTimeType:
		t := host.DatetimeOf(
			n.Date.Year, n.Date.Month, n.Date.Day,
			n.Time.Hour, n.Time.Min, n.Time.Sec, n.Time.Nsec,
		)
		if n.Offset != nil {
			return host.OffsetDatetime(t, *n.Offset), nil
		}
		return t, nil
	}
	return nil, &DecodeError{
		FieldPath: path,
		Message:   fmt.Sprintf("no mapping for %s node", n.Type),
		Err:       ir.ErrUnsupported,
	}
}

// fromTable rebuilds declaration order from node positions: fields sort by
// (line, column), nodes without positions sort last, ties keep canonical
// key order. Fields with no host mapping are skipped.
func fromTable(n *ir.Node, path string, depth int) (host.Value, error) {
	type entry struct {
		key  string
		node *ir.Node
		pos  token.Pos
	}
	entries := make([]entry, 0, len(n.Keys))
	for i, k := range n.Keys {
		f := n.Fields[i]
		pos := token.Pos{Line: math.MaxInt, Col: math.MaxInt}
		if f.Pos != nil {
			pos = *f.Pos
		}
		entries = append(entries, entry{key: k, node: f, pos: pos})
	}
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.pos.Compare(b.pos)
	})
	rec := host.NewRecord()
	for _, e := range entries {
		v, err := fromNode(e.node, joinPath(path, e.key), depth+1)
		if err != nil {
			if debug.Convert() {
				debug.Logf("convert: skip %s: %v\n", joinPath(path, e.key), err)
			}
			continue
		}
		rec.Set(e.key, v)
	}
	return rec, nil
}

// fromArray classifies the array for a host container. The homogeneity
// tests run in fixed precedence: all-integer, then all-numeric (integers
// widen to float), then all-bool; the first match picks a typed vector and
// anything else yields a heterogeneous list.
func fromArray(n *ir.Node, path string, depth int) (host.Value, error) {
	if len(n.Values) == 0 {
		return host.List{}, nil
	}
	allInt, allNum, allBool := true, true, true
	for _, v := range n.Values {
		switch v.Type {
		case ir.IntegerType:
			allBool = false
		case ir.FloatType:
			allInt, allBool = false, false
		case ir.BoolType:
			allInt, allNum = false, false
		default:
			allInt, allNum, allBool = false, false, false
		}
	}
	switch {
	case allInt:
		vec := make(host.IntVector, len(n.Values))
		for i, v := range n.Values {
			vec[i] = v.Int64
		}
		return vec, nil
	case allNum:
		vec := make(host.FloatVector, len(n.Values))
		for i, v := range n.Values {
			if v.Type == ir.IntegerType {
				vec[i] = float64(v.Int64)
			} else {
				vec[i] = v.Float64
			}
		}
		return vec, nil
	case allBool:
		vec := make(host.BoolVector, len(n.Values))
		for i, v := range n.Values {
			vec[i] = v.Bool
		}
		return vec, nil
	}
	list := make(host.List, 0, len(n.Values))
	for i, v := range n.Values {
		hv, err := fromNode(v, fmt.Sprintf("%s[%d]", path, i), depth+1)
		if err != nil {
			if debug.Convert() {
				debug.Logf("convert: skip %s[%d]: %v\n", path, i, err)
			}
			continue
		}
		list = append(list, hv)
	}
	return list, nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
