package tomlrec

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/recform/tomlrec/host"
)

// Diff returns a line diff between the canonical encodings of two
// records.  Deleted lines are prefixed with "-", inserted lines with
// "+", and unchanged lines with a space.  The result is empty when the
// canonical encodings agree.
func Diff(from, to *host.Record) (string, error) {
	a, err := Marshal(from)
	if err != nil {
		return "", err
	}
	b, err := Marshal(to)
	if err != nil {
		return "", err
	}
	return DiffText(string(a), string(b)), nil
}

// DiffText line-diffs two already-encoded documents.
func DiffText(from, to string) string {
	if from == to {
		return ""
	}
	cfg := diffpatch.New()
	fromRunes, toRunes, lines := cfg.DiffLinesToRunes(from, to)
	diffs := cfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = cfg.DiffCharsToLines(diffs, lines)

	var sb strings.Builder
	for i := range diffs {
		diff := &diffs[i]
		var mark string
		switch diff.Type {
		case diffpatch.DiffDelete:
			mark = "-"
		case diffpatch.DiffInsert:
			mark = "+"
		case diffpatch.DiffEqual:
			mark = " "
		}
		for _, line := range splitLines(diff.Text) {
			sb.WriteString(mark)
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Equal reports whether two records have the same canonical encoding,
// which is to say the same fields with the same values in the same
// order.
func Equal(a, b *host.Record) bool {
	da, err := Marshal(a)
	if err != nil {
		return false
	}
	db, err := Marshal(b)
	if err != nil {
		return false
	}
	return string(da) == string(db)
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
