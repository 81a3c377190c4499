package convert

import (
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"
	"github.com/recform/tomlrec/token"
)

// ToAny lowers a host value to plain Go values: records become
// map[string]any (field order is lost), lists become []any, vectors keep
// their element slices, and temporals become their document text. It feeds
// expression environments; the ordered JSON bridge is separate.
func ToAny(v host.Value) any {
	switch x := v.(type) {
	case host.Int:
		return int64(x)
	case host.Float:
		return float64(x)
	case host.Bool:
		return bool(x)
	case host.Text:
		return string(x)
	case host.Temporal:
		return x.String()
	case host.IntVector:
		return []int64(x)
	case host.FloatVector:
		return []float64(x)
	case host.BoolVector:
		return []bool(x)
	case host.List:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = ToAny(e)
		}
		return out
	case *host.Record:
		out := make(map[string]any, x.Len())
		for _, f := range x.Fields() {
			out[f.Name] = ToAny(f.Value)
		}
		return out
	}
	return nil
}

// FromAny raises plain Go values into host values. Ambient numerics follow
// the document narrowing rule: an integral float within the 64-bit signed
// range becomes an integer. Slices are classified the way document arrays
// are.
func FromAny(v any) (host.Value, error) {
	switch x := v.(type) {
	case host.Value:
		return x, nil
	case bool:
		return host.Bool(x), nil
	case string:
		return host.Text(x), nil
	case int:
		return host.Int(x), nil
	case int64:
		return host.Int(x), nil
	case float64:
		return narrowFloat(x), nil
	case time.Time:
		t, off := host.FromTime(x)
		return host.OffsetDatetime(t, off), nil
	case host.TemporalSource:
		t, off, ok := host.FromSource(x)
		if !ok {
			return nil, &EncodeError{Message: "temporal source has no components", Err: ir.ErrUnsupported}
		}
		if off != nil {
			return host.OffsetDatetime(t, *off), nil
		}
		return t, nil
	case []any:
		vals := make([]host.Value, 0, len(x))
		for _, e := range x {
			hv, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vals = append(vals, hv)
		}
		return InferList(vals), nil
	case map[string]any:
		// no order to preserve; sort names for determinism
		names := make([]string, 0, len(x))
		for name := range x {
			names = append(names, name)
		}
		sort.Strings(names)
		rec := host.NewRecord()
		for _, name := range names {
			hv, err := FromAny(x[name])
			if err != nil {
				return nil, err
			}
			rec.Set(name, hv)
		}
		return rec, nil
	}
	return nil, &EncodeError{
		Message: fmt.Sprintf("no mapping for %T", v),
		Err:     ir.ErrUnsupported,
	}
}

// narrowFloat applies the ambient numeric rule used where values arrive
// untyped (JSON, expression results): integral floats in range become
// integers.
func narrowFloat(f float64) host.Value {
	if f == math.Trunc(f) && f >= math.MinInt64 && f <= math.MaxInt64 {
		return host.Int(int64(f))
	}
	return host.Float(f)
}

// InferList packs values into a typed vector when they are homogeneous,
// with the same precedence order used for document arrays: all-integer,
// all-numeric, all-bool, first match wins.
func InferList(vals []host.Value) host.Value {
	if len(vals) == 0 {
		return host.List{}
	}
	allInt, allNum, allBool := true, true, true
	for _, v := range vals {
		switch v.(type) {
		case host.Int:
			allBool = false
		case host.Float:
			allInt, allBool = false, false
		case host.Bool:
			allInt, allNum = false, false
		default:
			allInt, allNum, allBool = false, false, false
		}
	}
	switch {
	case allInt:
		vec := make(host.IntVector, len(vals))
		for i, v := range vals {
			vec[i] = int64(v.(host.Int))
		}
		return vec
	case allNum:
		vec := make(host.FloatVector, len(vals))
		for i, v := range vals {
			switch n := v.(type) {
			case host.Int:
				vec[i] = float64(n)
			case host.Float:
				vec[i] = float64(n)
			}
		}
		return vec
	case allBool:
		vec := make(host.BoolVector, len(vals))
		for i, v := range vals {
			vec[i] = bool(v.(host.Bool))
		}
		return vec
	}
	return host.List(vals)
}

// DetectTemporal recognizes text in the document's temporal grammar:
// RFC-3339-like dates, times, and datetimes, with the zone given as Z, a
// sign HH:MM offset, or a trailing " UTC". Anything else fails closed and
// stays text.
func DetectTemporal(s string) (host.Value, bool) {
	body := s
	utc := false
	if rest, found := strings.CutSuffix(s, " UTC"); found {
		body, utc = rest, true
	}
	d := []byte(body)
	if !token.LooksLikeDatetime(d) {
		return nil, false
	}
	n, dt, err := token.ScanDatetime(d)
	if err != nil || n != len(d) {
		return nil, false
	}
	offset := dt.Offset
	if utc {
		if offset != nil || !dt.HasDate || !dt.HasTime {
			return nil, false
		}
		zero := 0
		offset = &zero
	}
	var t host.Temporal
	switch {
	case dt.HasDate && dt.HasTime:
		t = host.DatetimeOf(dt.Year, dt.Month, dt.Day, dt.Hour, dt.Min, dt.Sec, dt.Nsec)
	case dt.HasDate:
		t = host.DateOf(dt.Year, dt.Month, dt.Day)
	default:
		t = host.TimeOf(dt.Hour, dt.Min, dt.Sec, dt.Nsec)
	}
	if offset != nil {
		return host.OffsetDatetime(t, *offset), true
	}
	return t, true
}
