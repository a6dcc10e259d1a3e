package layout

import (
	"fmt"

	"github.com/mangrovedao/mangrove-strats/internal/expr"
)

// UintOfBool is the file-level helper emitters must provide: it converts a
// bool to a word without branching.
const UintOfBool = "uint_of_bool"

// ToUint converts a value of kind k into its raw unsigned word representation.
// Addresses are zero-extended; booleans go through UintOfBool.
func ToUint(k Kind, value expr.Expr) expr.Expr {
	switch k {
	case KindUint:
		return value
	case KindBool:
		return expr.Call{Func: UintOfBool, Args: []expr.Expr{value}}
	case KindAddress:
		return expr.Convert{Type: expr.TypeUint, X: expr.Convert{Type: expr.TypeUint160, X: value}}
	default:
		panic(fmt.Sprintf("layout: no word coercion for kind %s", k))
	}
}

// FromUint converts a raw word back into a value of kind k. Any nonzero word
// is a true bool; addresses keep only the low 160 bits.
func FromUint(k Kind, raw expr.Expr) expr.Expr {
	switch k {
	case KindUint:
		return raw
	case KindBool:
		return expr.Gt(raw, expr.L(0))
	case KindAddress:
		return expr.Convert{Type: expr.TypeAddress, X: expr.Convert{Type: expr.TypeUint160, X: raw}}
	default:
		panic(fmt.Sprintf("layout: no word coercion for kind %s", k))
	}
}
