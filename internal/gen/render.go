package gen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mangrovedao/mangrove-strats/internal/expr"
	"github.com/mangrovedao/mangrove-strats/internal/layout"
)

// OnesConst names the all-ones word constant declared in the utilities file.
const OnesConst = "ONES"

var solidityOps = map[expr.Op]string{
	expr.OpNot: "~",
	expr.OpShl: "<<",
	expr.OpShr: ">>",
	expr.OpAnd: "&",
	expr.OpOr:  "|",
	expr.OpSub: "-",
	expr.OpGt:  ">",
}

// Render renders e as a Solidity expression. Nested binary operations are
// always parenthesized, so the result never depends on operator precedence.
func Render(e expr.Expr) string {
	var sb strings.Builder

	render(&sb, e, true)

	return sb.String()
}

func render(sb *strings.Builder, e expr.Expr, top bool) {
	switch n := e.(type) {
	case expr.Lit:
		sb.WriteString(strconv.FormatUint(n.Value, 10))
	case expr.Ones:
		sb.WriteString(OnesConst)
	case expr.Sym:
		sb.WriteString(n.Name)
	case expr.Ref:
		sb.WriteString(n.Name)
	case expr.Unary:
		if !n.Op.IsUnary() {
			panic("gen: " + n.Op.String() + " is not a unary operator")
		}

		sb.WriteString(op(n.Op))
		render(sb, n.X, false)
	case expr.Binary:
		if !n.Op.IsBinary() {
			panic("gen: " + n.Op.String() + " is not a binary operator")
		}

		if !top {
			sb.WriteString("(")
		}

		render(sb, n.X, false)
		sb.WriteString(" " + op(n.Op) + " ")
		render(sb, n.Y, false)

		if !top {
			sb.WriteString(")")
		}
	case expr.Convert:
		call(sb, n.Type, n.X)
	case expr.Call:
		call(sb, n.Func, n.Args...)
	case expr.Wrap:
		call(sb, n.Type+".wrap", n.X)
	case expr.Unwrap:
		call(sb, n.Type+".unwrap", n.X)
	default:
		panic(fmt.Sprintf("gen: cannot render %T", e))
	}
}

func call(sb *strings.Builder, fn string, args ...expr.Expr) {
	sb.WriteString(fn)
	sb.WriteString("(")

	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}

		render(sb, a, true)
	}

	sb.WriteString(")")
}

func op(o expr.Op) string {
	s, ok := solidityOps[o]
	if !ok {
		panic("gen: no solidity operator for " + o.String())
	}

	return s
}

// solidityType returns the Solidity type a field of kind k is exposed as.
func solidityType(k layout.Kind) string {
	switch k {
	case layout.KindUint:
		return "uint"
	case layout.KindBool:
		return "bool"
	case layout.KindAddress:
		return "address"
	default:
		panic("gen: no solidity type for kind " + k.String())
	}
}
