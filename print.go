package symdiff

import "strconv"

// Format renders an expression as infix text, parenthesizing an operand only
// when it is an operator of strictly lower precedence than its parent, so
// "a - b + c" stays flat while "(a + b) * c" keeps its brackets. Leaves are
// never parenthesized.
func Format(e Expr) string {
	s, err := Traverse(e, renderNode)
	if err != nil {
		// renderNode never fails on the closed node set.
		panic(err)
	}
	return s
}

func renderNode(e Expr, operands ...string) (string, error) {
	switch n := e.(type) {
	case *Number:
		return strconv.FormatFloat(n.Value(), 'g', -1, 64), nil
	case *Symbol:
		return n.Name(), nil
	}
	b := e.(*BinOp)
	left, right := operands[0], operands[1]
	if needsParens(b.Left(), b.Kind()) {
		left = "(" + left + ")"
	}
	if needsParens(b.Right(), b.Kind()) {
		right = "(" + right + ")"
	}
	return left + " " + b.Kind().Token() + " " + right, nil
}

// needsParens reports whether a child operator binds more loosely than its parent
// and so needs brackets.
func needsParens(child Expr, parent Kind) bool {
	if _, ok := child.(*BinOp); !ok {
		return false
	}
	return child.Kind().Precedence() < parent.Precedence()
}

func (n *Number) String() string { return Format(n) }
func (s *Symbol) String() string { return Format(s) }
func (b *BinOp) String() string  { return Format(b) }
