package symdiff

import "fmt"

// Diff returns the derivative of root with respect to variable as a new
// expression tree. The input is never mutated and no simplification is
// performed: derivatives of constants stay in the result as literal 0s and
// 1s.
//
// Diff runs as a Traverse visitor, so a subexpression shared by several
// parents is differentiated once and its derivative is shared in the result
// the same way. Powers with non-constant exponents, and only those, fail
// with ErrUnsupported; the error aborts the whole call and no partial tree
// is returned.
func Diff(root Expr, variable string) (Expr, error) {
	return Traverse(root, func(e Expr, operands ...Expr) (Expr, error) {
		return derive(e, variable, operands)
	})
}

// derive applies the rule for a single node. operands holds the derivatives
// of the node's operands; the undifferentiated subtrees come from the node
// itself.
func derive(e Expr, variable string, operands []Expr) (Expr, error) {
	switch n := e.(type) {
	case *Number:
		return Num(0), nil
	case *Symbol:
		if n.Name() == variable {
			return Num(1), nil
		}
		return Num(0), nil
	case *BinOp:
		f, g := n.Left(), n.Right()
		df, dg := operands[0], operands[1]
		switch n.Kind() {
		case KindAdd:
			// (f + g)' = f' + g'
			return Add(df, dg), nil
		case KindSub:
			// (f - g)' = f' - g'
			return Sub(df, dg), nil
		case KindMul:
			// (f * g)' = f'g + g'f
			return Add(Mul(df, g), Mul(dg, f)), nil
		case KindDiv:
			// (f / g)' = (f'g - g'f) / g^2
			return Div(Sub(Mul(df, g), Mul(dg, f)), Pow(g, Num(2))), nil
		case KindPow:
			// (f ^ n)' = n * f^(n-1) * f' for constant n.
			exp, ok := g.(*Number)
			if !ok {
				return nil, fmt.Errorf("%w: variable exponents not supported", ErrUnsupported)
			}
			return Mul(Mul(exp, Pow(f, Sub(exp, Num(1)))), df), nil
		}
	}
	return nil, fmt.Errorf("%w: cannot differentiate %s node", ErrUnsupported, e.Kind())
}
