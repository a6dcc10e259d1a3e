package layout

import (
	"fmt"

	"github.com/mangrovedao/mangrove-strats/internal/common"
)

//go:generate go tool stringer -type=ErrorKind -output=errorkind_string.go

// ErrorKind classifies a ValidationError. It is itself an error, so callers
// can test for a kind with errors.Is(err, layout.LayoutOverflow).
type ErrorKind int

const (
	_ ErrorKind = iota // skip zero value, it is not a valid kind

	InvalidFieldType
	InvalidAddressWidth
	InvalidFieldWidth
	InvalidFieldName
	DuplicateField
	LayoutOverflow
	DuplicateStruct
	InvalidStructName
)

// Error implements error.
func (k ErrorKind) Error() string {
	return k.String()
}

// Code returns the diagnostic code for k.
func (k ErrorKind) Code() string {
	switch k {
	case InvalidFieldType:
		return "invalid_field_type"
	case InvalidAddressWidth:
		return "invalid_address_width"
	case InvalidFieldWidth:
		return "invalid_field_width"
	case InvalidFieldName:
		return "invalid_field_name"
	case DuplicateField:
		return "duplicate_field"
	case LayoutOverflow:
		return "layout_overflow"
	case DuplicateStruct:
		return "duplicate_struct"
	case InvalidStructName:
		return "invalid_struct_name"
	default:
		return common.UnknownStr
	}
}

// ValidationError reports the first rule a struct definition breaks.
type ValidationError struct {
	Kind ErrorKind
	// Struct is the name of the offending struct.
	Struct string
	// Field is the offending field; empty for struct-level errors.
	Field string
	// Type and Bits describe the offending field.
	Type Kind
	// TypeName is the field's type as written, when known.
	TypeName string
	Bits int
	// Total is the summed width of all fields, set for LayoutOverflow.
	Total int
}

// Error implements error.
func (e *ValidationError) Error() string {
	prefix := fmt.Sprintf("struct %q", e.Struct)
	if e.Field != "" {
		prefix += fmt.Sprintf(", field %q", e.Field)
	}

	return prefix + ": " + e.rule()
}

// Is makes errors.Is match the error's kind.
func (e *ValidationError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}

func (e *ValidationError) rule() string {
	switch e.Kind {
	case InvalidFieldType:
		return fmt.Sprintf("type %s is not allowed, only uint, address and bool are", e.typeName())
	case InvalidAddressWidth:
		return fmt.Sprintf("addresses must have %d bits, got %d", AddressBits, e.Bits)
	case InvalidFieldWidth:
		return fmt.Sprintf("width must be between 1 and %d bits, got %d", WordBits, e.Bits)
	case InvalidFieldName:
		return "name must be a non-empty identifier"
	case DuplicateField:
		return "field is declared more than once"
	case LayoutOverflow:
		return fmt.Sprintf("bitsize %d > %d", e.Total, WordBits)
	case DuplicateStruct:
		return "struct is declared more than once"
	case InvalidStructName:
		return "name must be a non-empty identifier"
	default:
		return e.Kind.String()
	}
}

func (e *ValidationError) typeName() string {
	if e.TypeName != "" {
		return e.TypeName
	}

	return e.Type.String()
}
