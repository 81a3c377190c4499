package host

import (
	"slices"
	"testing"
)

func TestRecordOrder(t *testing.T) {
	r := NewRecord()
	r.Set("z", Int(1))
	r.Set("a", Int(2))
	r.Set("m", Int(3))
	if !slices.Equal(r.Names(), []string{"z", "a", "m"}) {
		t.Errorf("names %v not in declaration order", r.Names())
	}

	// updating keeps the original position
	r.Set("a", Int(9))
	if !slices.Equal(r.Names(), []string{"z", "a", "m"}) {
		t.Errorf("update moved a field: %v", r.Names())
	}
	v, ok := r.Get("a")
	if !ok || v.(Int) != 9 {
		t.Errorf("get a gave (%v, %v)", v, ok)
	}

	if !r.Delete("a") {
		t.Errorf("delete a gave false")
	}
	if !slices.Equal(r.Names(), []string{"z", "m"}) {
		t.Errorf("delete left %v", r.Names())
	}
	if r.Delete("a") {
		t.Errorf("second delete gave true")
	}
}

func TestRecordOf(t *testing.T) {
	r := RecordOf(
		Field{Name: "x", Value: Int(1)},
		Field{Name: "y", Value: Int(2)},
		Field{Name: "x", Value: Int(3)},
	)
	if r.Len() != 2 {
		t.Fatalf("len %d want 2", r.Len())
	}
	if r.At(0).Name != "x" || r.At(0).Value.(Int) != 3 {
		t.Errorf("duplicate did not overwrite in place: %+v", r.At(0))
	}
}
