// Package gen renders struct layouts into Solidity source files.
//
// Each struct becomes one file holding the unpacked struct, the packed value
// type, per-field bits/before/mask constants and a library of accessors. A
// shared utilities file declares uint_of_bool and ONES for all of them.
//
// Expressions come from the layout package as trees and are printed by
// Render; templates only place the printed strings.
package gen
