// Package layout computes how a struct of typed, fixed-width fields is packed
// into a single 256-bit word, and synthesizes the symbolic expressions that
// read and write each field.
//
// # Pipeline
//
//  1. Validate checks a field list: known types, 160-bit addresses, widths in
//     range, unique names, and a total width of at most 256 bits.
//  2. Build folds over the fields in declaration order, assigning each field
//     the running sum of the widths before it as its offset.
//  3. Each FieldLayout exposes its mask and extract/inject expressions built
//     with ToUint and FromUint, the only type-aware functions in the package.
//
// Offsets count from the most-significant bit: the first field occupies the
// top bits of the word and unused bits, if any, are the lowest ones.
//
// Declaration order fixes the physical layout and is never normalized.
package layout
