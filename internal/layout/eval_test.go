package layout

import (
	"fmt"
	"math/big"

	"github.com/mangrovedao/mangrove-strats/internal/expr"
)

var (
	wordMod    = new(big.Int).Lsh(big.NewInt(1), WordBits)
	wordOnes   = new(big.Int).Sub(wordMod, big.NewInt(1))
	addressMod = new(big.Int).Lsh(big.NewInt(1), AddressBits)
)

// eval computes e with 256-bit wrap-around semantics. Free variables come
// from env.
func eval(e expr.Expr, env map[string]*big.Int) *big.Int {
	switch n := e.(type) {
	case expr.Lit:
		return new(big.Int).SetUint64(n.Value)
	case expr.Ones:
		return new(big.Int).Set(wordOnes)
	case expr.Sym:
		return new(big.Int).SetUint64(n.Value)
	case expr.Ref:
		v, ok := env[n.Name]
		if !ok {
			panic("unbound variable " + n.Name)
		}

		return new(big.Int).Set(v)
	case expr.Unary:
		x := eval(n.X, env)
		if n.Op != expr.OpNot {
			panic("bad unary op " + n.Op.String())
		}

		return x.Xor(x, wordOnes)
	case expr.Binary:
		x, y := eval(n.X, env), eval(n.Y, env)

		switch n.Op {
		case expr.OpShl:
			if y.Cmp(big.NewInt(WordBits)) >= 0 {
				return new(big.Int)
			}

			x.Lsh(x, uint(y.Uint64()))

			return x.Mod(x, wordMod)
		case expr.OpShr:
			if y.Cmp(big.NewInt(WordBits)) >= 0 {
				return new(big.Int)
			}

			return x.Rsh(x, uint(y.Uint64()))
		case expr.OpAnd:
			return x.And(x, y)
		case expr.OpOr:
			return x.Or(x, y)
		case expr.OpSub:
			x.Sub(x, y)

			return x.Mod(x, wordMod)
		case expr.OpGt:
			if x.Cmp(y) > 0 {
				return big.NewInt(1)
			}

			return big.NewInt(0)
		default:
			panic("bad binary op " + n.Op.String())
		}
	case expr.Convert:
		x := eval(n.X, env)

		switch n.Type {
		case expr.TypeUint160:
			return x.Mod(x, addressMod)
		case expr.TypeUint, expr.TypeAddress:
			return x
		default:
			panic("bad conversion " + n.Type)
		}
	case expr.Call:
		if n.Func != UintOfBool || len(n.Args) != 1 {
			panic("bad call " + n.String())
		}

		if eval(n.Args[0], env).Sign() != 0 {
			return big.NewInt(1)
		}

		return big.NewInt(0)
	case expr.Wrap:
		return eval(n.X, env)
	case expr.Unwrap:
		return eval(n.X, env)
	default:
		panic(fmt.Sprintf("unexpected node %T", e))
	}
}
