package convert

import (
	"math"

	"github.com/goccy/go-yaml"

	"github.com/recform/tomlrec/host"
)

// ToYAML lowers a host value to input for goccy/go-yaml marshaling, using
// yaml.MapSlice so record field order survives. Temporals and non-finite
// floats keep the same text forms as the JSON bridge.
func ToYAML(v host.Value) any {
	switch x := v.(type) {
	case host.Int:
		return int64(x)
	case host.Float:
		f := float64(x)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nonFiniteText(f)
		}
		return f
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
			out[i] = ToYAML(e)
		}
		return out
	case *host.Record:
		out := make(yaml.MapSlice, 0, x.Len())
		for _, f := range x.Fields() {
			out = append(out, yaml.MapItem{Key: f.Name, Value: ToYAML(f.Value)})
		}
		return out
	}
	return nil
}
