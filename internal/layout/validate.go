package layout

import (
	"regexp"

	"github.com/mangrovedao/mangrove-strats/internal/common"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the fields of struct name in declaration order and returns
// a *ValidationError for the first broken rule, or nil. A total width below
// WordBits is legal: the remaining low bits are left unused.
func Validate(name string, fields []FieldSpec) error {
	if !identRe.MatchString(name) {
		return &ValidationError{Kind: InvalidStructName, Struct: name}
	}

	seen := make(map[string]struct{}, len(fields))

	for _, f := range fields {
		fail := func(kind ErrorKind) error {
			return &ValidationError{Kind: kind, Struct: name, Field: f.Name, Type: f.Type, TypeName: f.TypeName, Bits: f.Bits}
		}

		if !f.Type.IsValid() {
			return fail(InvalidFieldType)
		}

		if f.Type == KindAddress && f.Bits != AddressBits {
			return fail(InvalidAddressWidth)
		}

		if !common.IsInRange(1, f.Bits, WordBits) {
			return fail(InvalidFieldWidth)
		}

		if !identRe.MatchString(f.Name) {
			return fail(InvalidFieldName)
		}

		if _, dup := seen[f.Name]; dup {
			return fail(DuplicateField)
		}

		seen[f.Name] = struct{}{}
	}

	total := common.Sum(fields, func(f FieldSpec) int { return f.Bits })
	if total > WordBits {
		return &ValidationError{Kind: LayoutOverflow, Struct: name, Total: total}
	}

	return nil
}
