// Package tomlrec reads and writes TOML documents as ordered records.
//
// A document parses into a *host.Record whose fields appear in document
// order.  Marshalling a record produces canonical TOML with the same
// field order, so Parse followed by Marshal is a faithful reformat.
package tomlrec

import (
	"bytes"
	"fmt"
	"os"

	"github.com/recform/tomlrec/convert"
	"github.com/recform/tomlrec/encode"
	"github.com/recform/tomlrec/host"
	"github.com/recform/tomlrec/ir"
	"github.com/recform/tomlrec/parse"
)

// Parse decodes a TOML document into an ordered record.
func Parse(d []byte, opts ...parse.ParseOption) (*host.Record, error) {
	n, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	return convert.FromDocument(n)
}

// ParseFile reads and decodes the TOML document at path.
func ParseFile(path string, opts ...parse.ParseOption) (*host.Record, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ir.ErrIO, err)
	}
	return Parse(d, opts...)
}

// Marshal encodes a record as a TOML document.
func Marshal(rec *host.Record, opts ...encode.EncodeOption) ([]byte, error) {
	var buf bytes.Buffer
	if err := encode.Encode(rec, &buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes rec and writes the result to path.
func WriteFile(path string, rec *host.Record, opts ...encode.EncodeOption) error {
	d, err := Marshal(rec, opts...)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, d, 0o644); err != nil {
		return fmt.Errorf("%w: %s", ir.ErrIO, err)
	}
	return nil
}
