// Package host provides the dynamic value model of the host environment:
// ordered records, heterogeneous lists, typed vectors, scalars, and
// temporal values.
//
// A Record preserves field declaration order, which the encode package
// treats as authoritative when writing TOML. Two record shapes act as
// sentinels for document concepts with no native host type: the
// formatted-integer record {value, format} and the offset-datetime record
// {datetime, offset_minutes}. Sentinels are recognized structurally; a
// user-built record with the same fields and types is indistinguishable
// from one produced by the reader. That ambiguity is accepted rather than
// disambiguated, so plain records can carry the convention.
//
// # Related Packages
//
//   - github.com/recform/tomlrec/convert - Document trees to host values
//   - github.com/recform/tomlrec/encode - Host records to TOML text
package host
