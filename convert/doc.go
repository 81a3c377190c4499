// Package convert maps document trees to host values and back.
//
// # Reading
//
// FromDocument walks a parsed ir table and produces a host record whose
// field order is the source declaration order, rebuilt from the per-node
// positions the parser recorded. Arrays are classified by element types
// into typed vectors or heterogeneous lists. Integers with a non-decimal
// base tag and datetimes with a zone offset become sentinel records, so
// those distinctions survive a round trip through the host.
//
// # Writing
//
// ToNode converts individual host values to document nodes; the encode
// package drives it while walking records in field order.
//
// Unsupported fields and elements are skipped rather than failing the whole
// conversion; set TOMLREC_DEBUG_CONVERT=1 to trace skips.
//
// # Related Packages
//
//   - github.com/recform/tomlrec/parse - Text to document trees
//   - github.com/recform/tomlrec/encode - Host records to document text
package convert
