package token

import (
	"cmp"
	"fmt"
	"sort"
)

// Pos is a 1-based line and column position in a source document.
type Pos struct {
	Line int
	Col  int
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// Compare orders positions by line, breaking ties by column.
func (p Pos) Compare(q Pos) int {
	if p.Line != q.Line {
		return cmp.Compare(p.Line, q.Line)
	}
	return cmp.Compare(p.Col, q.Col)
}

// Doc maps byte offsets in a document to positions. It indexes the
// newlines of the document once at construction.
type Doc struct {
	nl []int
}

func NewDoc(d []byte) *Doc {
	doc := &Doc{}
	for i, c := range d {
		if c == '\n' {
			doc.nl = append(doc.nl, i)
		}
	}
	return doc
}

func (d *Doc) Pos(off int) Pos {
	i := sort.SearchInts(d.nl, off)
	if i == 0 {
		return Pos{Line: 1, Col: off + 1}
	}
	return Pos{Line: i + 1, Col: off - d.nl[i-1]}
}
