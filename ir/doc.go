// Package ir provides the document tree representation for TOML documents.
//
// # Overview
//
// All documents, whether parsed from text or built programmatically, are
// represented as ir.Node trees. The Node is a tagged union: the Type field
// selects which payload fields are meaningful.
//
// Tables keep their keys in canonical sorted order, matching the sorted-map
// semantics of the table type the codec was designed against. Declaration
// order in the source is not structural; it is carried per node as an
// optional position and recovered by the convert package when building host
// records.
//
// # Node Types
//
//   - TableType: ordered-by-key mapping, unique keys
//   - ArrayType: sequence, possibly heterogeneous
//   - StringType: text
//   - IntegerType: 64-bit signed integer with a formatting base tag
//   - FloatType: 64-bit float, including inf and nan
//   - BoolType: true/false
//   - DateType, TimeType, DateTimeType: temporal values; a DateTime carries
//     an optional zone offset in minutes
//
// # Related Packages
//
//   - github.com/recform/tomlrec/parse - Parse text to Node trees
//   - github.com/recform/tomlrec/encode - Encode Node scalars to text
//   - github.com/recform/tomlrec/convert - Node trees to host records
package ir
