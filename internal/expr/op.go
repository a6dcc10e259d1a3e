package expr

//go:generate go tool stringer -type=Op -linecomment -output=op_string.go

// Op is an operator of a Unary or Binary expression.
type Op int

const (
	_ Op = iota // skip zero value, it marks an uninitialized operator

	OpNot // not
	OpShl // shl
	OpShr // shr
	OpAnd // and
	OpOr  // or
	OpSub // sub
	OpGt  // gt
)

// IsUnary reports whether op takes a single operand.
func (op Op) IsUnary() bool {
	return op == OpNot
}

// IsBinary reports whether op takes two operands.
func (op Op) IsBinary() bool {
	switch op {
	default:
		return false
	case OpShl, OpShr, OpAnd, OpOr, OpSub, OpGt:
		return true
	}
}
