package symdiff

import (
	"fmt"
	"math"
)

// Eval folds an expression to a float64 under the given symbol bindings.
// A symbol with no binding fails with ErrUnknownSymbol; a quotient whose
// divisor evaluates to zero fails with ErrDivisionByZero.
func Eval(e Expr, vars map[string]float64) (float64, error) {
	return Traverse(e, func(n Expr, operands ...float64) (float64, error) {
		switch v := n.(type) {
		case *Number:
			return v.Value(), nil
		case *Symbol:
			val, ok := vars[v.Name()]
			if !ok {
				return 0, fmt.Errorf("%w: %s", ErrUnknownSymbol, v.Name())
			}
			return val, nil
		}
		l, r := operands[0], operands[1]
		switch n.Kind() {
		case KindAdd:
			return l + r, nil
		case KindSub:
			return l - r, nil
		case KindMul:
			return l * r, nil
		case KindDiv:
			if r == 0 {
				return 0, fmt.Errorf("%w: %s / 0", ErrDivisionByZero, Format(n.(*BinOp).Left()))
			}
			return l / r, nil
		default:
			return math.Pow(l, r), nil
		}
	})
}

// Substitute returns root with every occurrence of the named symbol replaced
// by repl. Untouched subtrees are reused, not copied, so sharing in the
// input survives in the output; the input itself is never mutated.
func Substitute(root Expr, name string, repl Expr) (Expr, error) {
	return Traverse(root, func(e Expr, operands ...Expr) (Expr, error) {
		switch n := e.(type) {
		case *Number:
			return n, nil
		case *Symbol:
			if n.Name() == name {
				return repl, nil
			}
			return n, nil
		}
		b := e.(*BinOp)
		if operands[0] == b.Left() && operands[1] == b.Right() {
			return b, nil
		}
		return binOp(b.Kind(), operands[0], operands[1]), nil
	})
}
