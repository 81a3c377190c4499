package tomlrec

import (
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"
)

func TestRoundTrip(t *testing.T) {
	in := `b = 1
a = "x"

[t]
k = 0xFF
`
	rec, err := Parse([]byte(in))
	if err != nil {
		t.Fatalf("parse gave %v", err)
	}
	d, err := Marshal(rec)
	if err != nil {
		t.Fatalf("marshal gave %v", err)
	}
	if string(d) != in {
		t.Errorf("round trip changed the document:\n%s", d)
	}
	back, err := Parse(d)
	if err != nil {
		t.Fatalf("reparse gave %v", err)
	}
	if !Equal(rec, back) {
		t.Errorf("reparsed document differs")
	}
}

func TestFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.toml")
	rec := host.RecordOf(
		host.Field{Name: "z", Value: host.Int(1)},
		host.Field{Name: "a", Value: host.Text("two")},
	)
	if err := WriteFile(path, rec); err != nil {
		t.Fatalf("write gave %v", err)
	}
	back, err := ParseFile(path)
	if err != nil {
		t.Fatalf("read gave %v", err)
	}
	if !Equal(rec, back) {
		t.Errorf("file round trip differs")
	}

	_, err = ParseFile(filepath.Join(t.TempDir(), "absent.toml"))
	if !errors.Is(err, ir.ErrIO) {
		t.Errorf("missing file gave %v", err)
	}
}

func TestDiff(t *testing.T) {
	from, err := Parse([]byte("a = 1\nb = 2\n"))
	if err != nil {
		t.Fatalf("parse gave %v", err)
	}
	to, err := Parse([]byte("a = 1\nb = 3\n"))
	if err != nil {
		t.Fatalf("parse gave %v", err)
	}
	d, err := Diff(from, to)
	if err != nil {
		t.Fatalf("diff gave %v", err)
	}
	if !strings.Contains(d, "-b = 2") || !strings.Contains(d, "+b = 3") {
		t.Errorf("diff missing changed lines:\n%s", d)
	}
	if strings.Contains(d, "-a = 1") || strings.Contains(d, "+a = 1") {
		t.Errorf("diff marks unchanged lines:\n%s", d)
	}

	same, err := Diff(from, from)
	if err != nil {
		t.Fatalf("diff gave %v", err)
	}
	if same != "" {
		t.Errorf("identical documents gave a diff:\n%s", same)
	}
}

func TestPatch(t *testing.T) {
	rec, err := Parse([]byte("a = 1\nb = 2\n"))
	if err != nil {
		t.Fatalf("parse gave %v", err)
	}
	patch := []byte(`[
		{"op": "replace", "path": "/b", "value": 3},
		{"op": "add", "path": "/c", "value": "x"}
	]`)
	res, err := Patch(rec, patch)
	if err != nil {
		t.Fatalf("patch gave %v", err)
	}
	if !slices.Equal(res.Names(), []string{"a", "b", "c"}) {
		t.Errorf("names %v", res.Names())
	}
	b, _ := res.Get("b")
	if b.(host.Int) != 3 {
		t.Errorf("b gave %v", b)
	}
	c, _ := res.Get("c")
	if c.(host.Text) != "x" {
		t.Errorf("c gave %v", c)
	}

	if _, err := Patch(rec, []byte(`{"not":"a patch"}`)); err == nil {
		t.Errorf("bad patch applied without error")
	}
}

func TestPatchKeepsNestedOrder(t *testing.T) {
	rec, err := Parse([]byte("[t]\nz = 1\na = 2\nm = 3\n"))
	if err != nil {
		t.Fatalf("parse gave %v", err)
	}
	res, err := Patch(rec, []byte(`[{"op": "replace", "path": "/t/a", "value": 9}]`))
	if err != nil {
		t.Fatalf("patch gave %v", err)
	}
	tv, _ := res.Get("t")
	if !slices.Equal(tv.(*host.Record).Names(), []string{"z", "a", "m"}) {
		t.Errorf("nested names %v", tv.(*host.Record).Names())
	}
}

func TestMerge(t *testing.T) {
	rec, err := Parse([]byte("a = 1\nb = 2\n"))
	if err != nil {
		t.Fatalf("parse gave %v", err)
	}
	res, err := Merge(rec, []byte(`{"b": null, "c": 5}`))
	if err != nil {
		t.Fatalf("merge gave %v", err)
	}
	if !slices.Equal(res.Names(), []string{"a", "c"}) {
		t.Errorf("names %v", res.Names())
	}
	c, _ := res.Get("c")
	if c.(host.Int) != 5 {
		t.Errorf("c gave %v", c)
	}
}
