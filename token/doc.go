// Package token provides lexical support for TOML documents: source
// positions and scanners for the scalar token classes (strings, numbers,
// datetimes).
//
// The scanners operate on byte slices and return consumed lengths, leaving
// the driving of the grammar to the parse package. Positions are computed
// from byte offsets against a newline index built once per document.
//
// # Related Packages
//
//   - github.com/recform/tomlrec/parse - Parse text to document trees
//   - github.com/recform/tomlrec/ir - Document tree representation
package token
