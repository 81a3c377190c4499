package tomlrec

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/recform/tomlrec/convert"
	"github.com/recform/tomlrec/host"
)

// Patch applies an RFC 6902 JSON patch to a record.  The record round
// trips through the JSON bridge; fields the patch does not touch keep
// their document positions and patched-in fields append after them.
func Patch(rec *host.Record, patchJSON []byte) (*host.Record, error) {
	p, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decoding patch: %w", err)
	}
	doc, err := convert.MarshalJSON(rec)
	if err != nil {
		return nil, err
	}
	out, err := p.Apply(doc)
	if err != nil {
		return nil, fmt.Errorf("applying patch: %w", err)
	}
	res, err := convert.UnmarshalJSON(out)
	if err != nil {
		return nil, err
	}
	return reorderLike(res, rec), nil
}

// Merge applies an RFC 7386 merge patch to a record.  Fields present
// in the patch replace the corresponding document fields, nulls delete
// them, and untouched fields keep their positions.
func Merge(rec *host.Record, mergeJSON []byte) (*host.Record, error) {
	doc, err := convert.MarshalJSON(rec)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(doc, mergeJSON)
	if err != nil {
		return nil, fmt.Errorf("applying merge patch: %w", err)
	}
	res, err := convert.UnmarshalJSON(out)
	if err != nil {
		return nil, err
	}
	return reorderLike(res, rec), nil
}

// reorderLike rebuilds patched so that field names shared with orig
// appear in orig's order, recursively.  The patch library serializes
// objects through Go maps, which alphabetizes keys; this pass puts
// surviving fields back where the document had them.  Names the patch
// introduced follow in the order the library emitted them.
func reorderLike(patched, orig *host.Record) *host.Record {
	res := host.NewRecord()
	for _, f := range orig.Fields() {
		pv, ok := patched.Get(f.Name)
		if !ok {
			continue
		}
		res.Set(f.Name, reorderValue(pv, f.Value))
	}
	for _, f := range patched.Fields() {
		if _, ok := res.Get(f.Name); !ok {
			res.Set(f.Name, f.Value)
		}
	}
	return res
}

func reorderValue(patched, orig host.Value) host.Value {
	switch pv := patched.(type) {
	case *host.Record:
		if ov, ok := orig.(*host.Record); ok {
			return reorderLike(pv, ov)
		}
	case host.List:
		ov, ok := orig.(host.List)
		if !ok {
			return patched
		}
		res := make(host.List, len(pv))
		for i, el := range pv {
			if i < len(ov) {
				res[i] = reorderValue(el, ov[i])
			} else {
				res[i] = el
			}
		}
		return res
	}
	return patched
}
