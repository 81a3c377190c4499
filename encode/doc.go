// Package encode serializes host records to TOML text.
//
// The writer walks a record's fields in declaration order and emits each
// table in three passes: direct assignments first, then [table] sections,
// then [[array-of-tables]] blocks. The format requires every assignment in
// a table to precede any nested table header, so the passes never
// interleave; within a pass, declaration order is kept. Fields are
// classified into their pass up front, which keeps the invariant checkable
// on its own.
//
// Sentinel records (formatted integers, offset datetimes) are recognized
// before table classification and always render as scalars.
//
// The scalar formatting routines are exported so callers rendering single
// values (the command line tool's get, for one) produce the same text as
// whole-document encoding.
//
// # Related Packages
//
//   - github.com/recform/tomlrec/host - Host value model
//   - github.com/recform/tomlrec/convert - Host values to document nodes
package encode
