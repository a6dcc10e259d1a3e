// Package expr provides the small symbolic expression language that layout
// facts are expressed in.
//
// An expression is a tree of values (operation + operands). The package does
// not know any target-language syntax: emitters walk the tree and render it,
// and tests evaluate it. String returns a language-neutral s-expression form
// that is stable across runs, e.g.
//
//	(shr (shl word prev_before) (sub 256 prev_bits))
package expr
