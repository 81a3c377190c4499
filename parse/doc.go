// Package parse provides TOML parsing support.
//
// Parse produces an ir.Node tree whose table keys are held in canonical
// sorted order; the declaration order of the source is recorded on each
// node as a position, which the convert package uses to rebuild host
// records in source order.
//
// The parser validates structure (duplicate keys, table redefinition,
// addressing into closed inline values) and reports failures as a single
// positioned error wrapping ir.ErrParse.
//
// # Related Packages
//
//   - github.com/recform/tomlrec/token - Scalar token scanning
//   - github.com/recform/tomlrec/convert - Document trees to host records
package parse
