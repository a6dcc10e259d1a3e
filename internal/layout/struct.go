package layout

import (
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/mangrovedao/mangrove-strats/internal/expr"
)

// StructDef is a named, ordered list of fields to pack into one word.
type StructDef struct {
	Name   string
	Fields []FieldSpec
}

// StructLayout is the packed layout of a StructDef.
type StructLayout struct {
	// Name is the struct name as declared.
	Name string
	// Capitalized is Name with its first letter upper-cased.
	Capitalized string
	// Packed names the opaque single-word type.
	Packed string
	// Unpacked names the decomposed tuple type.
	Unpacked string
	// Fields are in declaration order.
	Fields []FieldLayout
	// TotalBits is the sum of all field widths.
	TotalBits int
}

// Build validates def and lays its fields out in declaration order, the first
// field taking the most-significant bits. Validation errors are returned
// unchanged.
func Build(def StructDef) (*StructLayout, error) {
	if err := Validate(def.Name, def.Fields); err != nil {
		return nil, err
	}

	name := Capitalize(def.Name)
	s := &StructLayout{
		Name:        def.Name,
		Capitalized: name,
		Packed:      name + "Packed",
		Unpacked:    name + "Unpacked",
		Fields:      make([]FieldLayout, 0, len(def.Fields)),
	}

	offset := 0
	for _, spec := range def.Fields {
		s.Fields = append(s.Fields, NewFieldLayout(spec, offset))
		offset += spec.Bits
	}

	s.TotalBits = offset

	return s, nil
}

// Capitalize upper-cases the first letter of an identifier and leaves the
// rest untouched ("offerDetail" -> "OfferDetail"). Underscores do not start
// new words.
func Capitalize(name string) string {
	if name == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(name)

	return cases.Upper(language.Und).String(name[:size]) + name[size:]
}

// UnusedBits returns the number of low-order bits no field occupies.
func (s *StructLayout) UnusedBits() int {
	return WordBits - s.TotalBits
}

// Field looks a field up by name.
func (s *StructLayout) Field(name string) (FieldLayout, bool) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, true
		}
	}

	return FieldLayout{}, false
}

// Wrap converts a raw word into the packed type. It is the identity on values.
func (s *StructLayout) Wrap(word expr.Expr) expr.Expr {
	return expr.Wrap{Type: s.Packed, X: word}
}

// Unwrap converts a packed value into its raw word. It is the identity on values.
func (s *StructLayout) Unwrap(packed expr.Expr) expr.Expr {
	return expr.Unwrap{Type: s.Packed, X: packed}
}

// Pack returns a packed value holding values, given one per field in
// declaration order. It panics if the counts differ.
func (s *StructLayout) Pack(values []expr.Expr) expr.Expr {
	if len(values) != len(s.Fields) {
		panic("layout: Pack needs exactly one value per field of " + s.Name)
	}

	var word expr.Expr = expr.L(0)

	for i, f := range s.Fields {
		if i == 0 {
			word = f.Inject(values[i])
			continue
		}

		word = expr.Or(word, f.Inject(values[i]))
	}

	return s.Wrap(word)
}
