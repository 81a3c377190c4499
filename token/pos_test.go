package token

import "testing"

func TestDocPos(t *testing.T) {
	doc := NewDoc([]byte("ab\ncd\n\nef"))
	pts := []struct {
		off       int
		line, col int
	}{
		{0, 1, 1},
		{1, 1, 2},
		{3, 2, 1},
		{4, 2, 2},
		{6, 3, 1},
		{7, 4, 1},
		{8, 4, 2},
	}
	for _, pt := range pts {
		p := doc.Pos(pt.off)
		if p.Line != pt.line || p.Col != pt.col {
			t.Errorf("offset %d gave %s want %d:%d", pt.off, p, pt.line, pt.col)
		}
	}
}

func TestPosCompare(t *testing.T) {
	a := Pos{Line: 1, Col: 5}
	b := Pos{Line: 2, Col: 1}
	c := Pos{Line: 1, Col: 5}
	if a.Compare(b) >= 0 {
		t.Errorf("%s should sort before %s", a, b)
	}
	if b.Compare(a) <= 0 {
		t.Errorf("%s should sort after %s", b, a)
	}
	if a.Compare(c) != 0 {
		t.Errorf("%s should equal %s", a, c)
	}
}
