package layout

import "fmt"

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the semantic type of a packed field.
type Kind int

const (
	KindInvalid Kind = iota // invalid

	KindUint    // uint
	KindBool    // bool
	KindAddress // address
)

// Word geometry.
const (
	WordBits    = 256
	AddressBits = 160
)

// ParseKind maps a type name from a definitions file to a Kind.
// Unknown names map to KindInvalid so that validation can report them.
func ParseKind(name string) Kind {
	switch name {
	default:
		return KindInvalid
	case "uint":
		return KindUint
	case "bool":
		return KindBool
	case "address":
		return KindAddress
	}
}

// IsValid reports whether k is one of the packable kinds.
func (k Kind) IsValid() bool {
	switch k {
	default:
		return false
	case KindUint, KindBool, KindAddress:
		return true
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Unlike ParseKind it
// rejects unknown names.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed := ParseKind(string(text))
	if !parsed.IsValid() {
		return fmt.Errorf("unknown field type %q", text)
	}

	*k = parsed

	return nil
}
