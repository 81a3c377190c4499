package convert

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"
)

// MarshalJSON renders a host record as JSON with field order preserved.
// Sentinel records keep their record shape, so patches can address and
// round-trip them. Temporals become their document text; non-finite floats,
// which JSON cannot carry, become their document text too.
func MarshalJSON(r *host.Record) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, r, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v host.Value, depth int) error {
	if depth > maxDepth {
		return &EncodeError{
			Message: fmt.Sprintf("nesting exceeds %d levels", maxDepth),
			Err:     ir.ErrUnsupported,
		}
	}
	switch x := v.(type) {
	case host.Int:
		buf.WriteString(strconv.FormatInt(int64(x), 10))
	case host.Float:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return writeJSONString(buf, nonFiniteText(f))
		}
		buf.WriteString(strconv.FormatFloat(f, 'g', -1, 64))
	case host.Bool:
		buf.WriteString(strconv.FormatBool(bool(x)))
	case host.Text:
		return writeJSONString(buf, string(x))
	case host.Temporal:
		return writeJSONString(buf, x.String())
	case host.IntVector:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.FormatInt(e, 10))
		}
		buf.WriteByte(']')
	case host.FloatVector:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, host.Float(e), depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case host.BoolVector:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(strconv.FormatBool(e))
		}
		buf.WriteByte(']')
	case host.List:
		buf.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, e, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *host.Record:
		buf.WriteByte('{')
		for i, f := range x.Fields() {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSONString(buf, f.Name); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeJSON(buf, f.Value, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return &EncodeError{
			Message: fmt.Sprintf("no JSON mapping for %T", v),
			Err:     ir.ErrUnsupported,
		}
	}
	return nil
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	d, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(d)
	return nil
}

func nonFiniteText(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case f > 0:
		return "inf"
	default:
		return "-inf"
	}
}

// UnmarshalJSON parses JSON into a host record, preserving object key
// order. Numbers follow the ambient narrowing rule; strings in the
// temporal grammar are raised back to temporals.
func UnmarshalJSON(d []byte) (*host.Record, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	v, err := decodeJSONValue(dec, 0)
	if err != nil {
		return nil, &DecodeError{Message: err.Error(), Err: ir.ErrParse}
	}
	rec, ok := v.(*host.Record)
	if !ok {
		return nil, &DecodeError{Message: "top-level JSON value must be an object", Err: ir.ErrUnsupported}
	}
	return rec, nil
}

func decodeJSONValue(dec *json.Decoder, depth int) (host.Value, error) {
	if depth > maxDepth {
		return nil, fmt.Errorf("nesting exceeds %d levels", maxDepth)
	}
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			rec := host.NewRecord()
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("object key is not a string")
				}
				v, err := decodeJSONValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				rec.Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // closing '}'
				return nil, err
			}
			return rec, nil
		case '[':
			var vals []host.Value
			for dec.More() {
				v, err := decodeJSONValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil { // closing ']'
				return nil, err
			}
			return InferList(vals), nil
		}
		return nil, fmt.Errorf("unexpected delimiter %v", t)
	case string:
		if tv, ok := DetectTemporal(t); ok {
			return tv, nil
		}
		return host.Text(t), nil
	case json.Number:
		if i, err := strconv.ParseInt(t.String(), 10, 64); err == nil {
			return host.Int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return narrowFloat(f), nil
	case bool:
		return host.Bool(t), nil
	case nil:
		return nil, fmt.Errorf("null has no host mapping")
	}
	return nil, fmt.Errorf("unexpected token %v", tok)
}
