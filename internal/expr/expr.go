package expr

import (
	"strconv"
	"strings"
)

// Elementary word types used by Convert.
const (
	TypeUint    = "uint"
	TypeUint160 = "uint160"
	TypeAddress = "address"
)

// Expr is a node of a symbolic expression tree.
type Expr interface {
	// String returns the s-expression form of the node.
	String() string

	expr()
}

// Lit is a small unsigned literal.
type Lit struct {
	Value uint64
}

// Ones is the word with every bit set.
type Ones struct{}

// Sym is a named constant whose value is known at generation time.
// Emitters declare it once and refer to it by name.
type Sym struct {
	Name  string
	Value uint64
}

// Ref is a free variable supplied by the caller of the generated code.
type Ref struct {
	Name string
}

// Unary applies a single-operand operator.
type Unary struct {
	Op Op
	X  Expr
}

// Binary applies a two-operand operator.
type Binary struct {
	Op   Op
	X, Y Expr
}

// Convert is an explicit conversion to one of the elementary word types.
type Convert struct {
	Type string
	X    Expr
}

// Call invokes a file-level helper function.
type Call struct {
	Func string
	Args []Expr
}

// Wrap converts a raw word into the opaque user-defined type Type.
type Wrap struct {
	Type string
	X    Expr
}

// Unwrap converts a value of the opaque user-defined type Type into a raw word.
type Unwrap struct {
	Type string
	X    Expr
}

func (Lit) expr()     {}
func (Ones) expr()    {}
func (Sym) expr()     {}
func (Ref) expr()     {}
func (Unary) expr()   {}
func (Binary) expr()  {}
func (Convert) expr() {}
func (Call) expr()    {}
func (Wrap) expr()    {}
func (Unwrap) expr()  {}

func (e Lit) String() string { return strconv.FormatUint(e.Value, 10) }
func (Ones) String() string  { return "ones" }
func (e Sym) String() string { return e.Name }
func (e Ref) String() string { return e.Name }

func (e Unary) String() string {
	return sexpr(e.Op.String(), e.X)
}

func (e Binary) String() string {
	return sexpr(e.Op.String(), e.X, e.Y)
}

func (e Convert) String() string {
	return sexpr(e.Type, e.X)
}

func (e Call) String() string {
	return sexpr(e.Func, e.Args...)
}

func (e Wrap) String() string {
	return sexpr(e.Type+".wrap", e.X)
}

func (e Unwrap) String() string {
	return sexpr(e.Type+".unwrap", e.X)
}

func sexpr(head string, args ...Expr) string {
	var sb strings.Builder

	sb.WriteString("(")
	sb.WriteString(head)

	for _, a := range args {
		sb.WriteString(" ")
		sb.WriteString(a.String())
	}

	sb.WriteString(")")

	return sb.String()
}

// L returns a literal.
func L(v uint64) Lit { return Lit{Value: v} }

// Not returns ~x.
func Not(x Expr) Unary { return Unary{Op: OpNot, X: x} }

// Shl returns x << y.
func Shl(x, y Expr) Binary { return Binary{Op: OpShl, X: x, Y: y} }

// Shr returns x >> y.
func Shr(x, y Expr) Binary { return Binary{Op: OpShr, X: x, Y: y} }

// And returns x & y.
func And(x, y Expr) Binary { return Binary{Op: OpAnd, X: x, Y: y} }

// Or returns x | y.
func Or(x, y Expr) Binary { return Binary{Op: OpOr, X: x, Y: y} }

// Sub returns x - y.
func Sub(x, y Expr) Binary { return Binary{Op: OpSub, X: x, Y: y} }

// Gt returns x > y.
func Gt(x, y Expr) Binary { return Binary{Op: OpGt, X: x, Y: y} }

// Walk visits e and its operands depth-first, parents before children.
// Returning false from fn skips the operands of the current node.
func Walk(e Expr, fn func(Expr) bool) {
	if e == nil || !fn(e) {
		return
	}

	switch n := e.(type) {
	case Unary:
		Walk(n.X, fn)
	case Binary:
		Walk(n.X, fn)
		Walk(n.Y, fn)
	case Convert:
		Walk(n.X, fn)
	case Call:
		for _, a := range n.Args {
			Walk(a, fn)
		}
	case Wrap:
		Walk(n.X, fn)
	case Unwrap:
		Walk(n.X, fn)
	}
}

// Syms returns the distinct symbols referenced by e in first-seen order.
func Syms(e Expr) []Sym {
	var (
		res  []Sym
		seen = map[string]struct{}{}
	)

	Walk(e, func(n Expr) bool {
		if s, ok := n.(Sym); ok {
			if _, dup := seen[s.Name]; !dup {
				seen[s.Name] = struct{}{}
				res = append(res, s)
			}
		}

		return true
	})

	return res
}
