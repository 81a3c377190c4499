package convert

import (
	"fmt"

	"github.com/recform/tomlrec/debug"
	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"
)

// ToNode converts a host value into a document node. Sentinel records take
// precedence over plain record handling: a formatted-integer record yields
// an integer node with a base tag, an offset-datetime record a datetime
// node with an offset.
//
// Plain records produce canonical (key-sorted) tables; the declaration
// order of a record is not structural in the document tree, so callers
// that must preserve it, like the encode package, walk the record themselves.
func ToNode(v host.Value) (*ir.Node, error) {
	return toNode(v, "", 0)
}

func toNode(v host.Value, path string, depth int) (*ir.Node, error) {
	if depth > maxDepth {
		return nil, &EncodeError{
			FieldPath: path,
			Message:   fmt.Sprintf("nesting exceeds %d levels", maxDepth),
			Err:       ir.ErrUnsupported,
		}
	}
	switch x := v.(type) {
	case host.Int:
		return ir.FromInt(int64(x)), nil
	case host.Float:
		return ir.FromFloat(float64(x)), nil
	case host.Bool:
		return ir.FromBool(bool(x)), nil
	case host.Text:
		return ir.FromString(string(x)), nil
	case host.Temporal:
		return temporalNode(x, nil), nil
	case host.IntVector:
		arr := ir.NewArray()
		for _, e := range x {
			arr.Append(ir.FromInt(e))
		}
		return arr, nil
	case host.FloatVector:
		arr := ir.NewArray()
		for _, e := range x {
			arr.Append(ir.FromFloat(e))
		}
		return arr, nil
	case host.BoolVector:
		arr := ir.NewArray()
		for _, e := range x {
			arr.Append(ir.FromBool(e))
		}
		return arr, nil
	case host.List:
		arr := ir.NewArray()
		for i, e := range x {
			child, err := toNode(e, fmt.Sprintf("%s[%d]", path, i), depth+1)
			if err != nil {
				if debug.Convert() {
					debug.Logf("convert: skip %s[%d]: %v\n", path, i, err)
				}
				continue
			}
			arr.Append(child)
		}
		return arr, nil
	case *host.Record:
		if value, format, ok := host.AsFormattedInt(x); ok {
			return ir.FromBasedInt(value, baseOf(format)), nil
		}
		if t, off, ok := host.AsOffsetDatetime(x); ok {
			return temporalNode(t, &off), nil
		}
		tbl := ir.NewTable()
		for _, f := range x.Fields() {
			child, err := toNode(f.Value, joinPath(path, f.Name), depth+1)
			if err != nil {
				if debug.Convert() {
					debug.Logf("convert: skip %s: %v\n", joinPath(path, f.Name), err)
				}
				continue
			}
			tbl.Set(f.Name, child)
		}
		return tbl, nil
	}
	return nil, &EncodeError{
		FieldPath: path,
		Message:   fmt.Sprintf("no mapping for host value %T", v),
		Err:       ir.ErrUnsupported,
	}
}

func baseOf(format string) ir.IntBase {
	switch format {
	case host.FormatHex:
		return ir.BaseHex
	case host.FormatOct:
		return ir.BaseOctal
	case host.FormatBin:
		return ir.BaseBinary
	}
	return ir.BaseDecimal
}

// temporalNode renders a host temporal as a document node. An offset
// applies only to full datetimes; for date-only and time-only values it is
// dropped.
func temporalNode(t host.Temporal, offset *int) *ir.Node {
	date := ir.Date{Year: t.Year, Month: t.Month, Day: t.Day}
	clock := ir.Time{Hour: t.Hour, Min: t.Min, Sec: t.Sec, Nsec: t.Nsec}
	switch t.Kind {
	case host.DateOnly:
		return ir.FromDate(date)
	case host.TimeOnly:
		return ir.FromTime(clock)
	default:
		return ir.FromDateTime(date, clock, offset)
	}
}
