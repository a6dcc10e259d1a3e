package layout

import (
	"github.com/mangrovedao/mangrove-strats/internal/expr"
)

// FieldSpec is one declared field of a struct definition.
type FieldSpec struct {
	Name string
	Type Kind
	Bits int
	// TypeName is the type as written in a definitions file, if any. It
	// only shows up in error messages.
	TypeName string
}

// FieldLayout is a FieldSpec placed at a fixed offset inside the word.
type FieldLayout struct {
	FieldSpec

	// Offset is the number of bits between the word's most-significant bit
	// and the field's most-significant bit.
	Offset int

	// BitsVar and BeforeVar name the width and offset constants that the
	// expressions refer to.
	BitsVar   expr.Sym
	BeforeVar expr.Sym
	// MaskName names the constant an emitter declares for Mask.
	MaskName string

	// Mask has 0s across the field's span and 1s elsewhere.
	Mask expr.Expr
}

// NewFieldLayout places spec at offset. spec must have passed Validate and
// offset+spec.Bits must not exceed WordBits.
func NewFieldLayout(spec FieldSpec, offset int) FieldLayout {
	f := FieldLayout{
		FieldSpec: spec,
		Offset:    offset,
		BitsVar:   expr.Sym{Name: spec.Name + "_bits", Value: uint64(spec.Bits)},
		BeforeVar: expr.Sym{Name: spec.Name + "_before", Value: uint64(offset)},
		MaskName:  spec.Name + "_mask",
	}

	if f.fillsWord() {
		f.Mask = expr.L(0)
	} else {
		// ~((ONES << (256 - bits)) >> before)
		f.Mask = expr.Not(expr.Shr(expr.Shl(expr.Ones{}, f.padding()), f.BeforeVar))
	}

	return f
}

// End returns the first bit offset after the field.
func (f FieldLayout) End() int {
	return f.Offset + f.Bits
}

// Extract reads the field out of the word from and converts it to the
// field's type.
func (f FieldLayout) Extract(from expr.Expr) expr.Expr {
	if f.fillsWord() {
		return FromUint(f.Type, from)
	}

	raw := expr.Shr(expr.Shl(from, f.BeforeVar), f.padding())

	return FromUint(f.Type, raw)
}

// Inject converts value to a word and moves it to the field's span. Every
// bit outside the span is zero, so the result can be OR-ed into a word that
// was cleared with Mask.
func (f FieldLayout) Inject(value expr.Expr) expr.Expr {
	raw := ToUint(f.Type, value)
	if f.fillsWord() {
		return raw
	}

	return expr.Shr(expr.Shl(raw, f.padding()), f.BeforeVar)
}

// Set returns word with the field replaced by value.
func (f FieldLayout) Set(word, value expr.Expr) expr.Expr {
	return expr.Or(expr.And(word, f.Mask), f.Inject(value))
}

// padding is 256 - bits: the shift that aligns the field to the low end.
func (f FieldLayout) padding() expr.Expr {
	return expr.Sub(expr.L(WordBits), f.BitsVar)
}

func (f FieldLayout) fillsWord() bool {
	return f.Bits == WordBits
}
