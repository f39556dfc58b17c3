package symdiff

// Visitor computes a result for one node given the already-computed results
// of its operands, in left-to-right order. Leaves receive no operand
// results. Returning an error aborts the traversal.
type Visitor[R any] func(e Expr, operands ...R) (R, error)

// Traverse folds visit over root in post-order: every node is visited only
// after all of its operands, and the result for root is returned.
//
// Results are memoized by node identity, so a node shared by several parents
// is visited exactly once and each parent reuses its result. This makes
// Traverse safe and linear on DAG-shaped expressions; it does not detect
// cycles, which the expression contract forbids.
//
// The walk is iterative with an explicit stack, so input depth is bounded by
// memory rather than the call stack. The memo is local to the call and
// discarded on return.
func Traverse[R any](root Expr, visit Visitor[R]) (R, error) {
	stack := []Expr{root}
	memo := make(map[Expr]R)

	for len(stack) > 0 {
		e := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, done := memo[e]; done {
			// Shared node resolved while queued under another parent.
			continue
		}

		var unvisited []Expr
		ops := e.Operands()
		for _, o := range ops {
			if _, done := memo[o]; !done {
				unvisited = append(unvisited, o)
			}
		}
		if len(unvisited) > 0 {
			// Re-pop e once every operand has a result.
			stack = append(stack, e)
			stack = append(stack, unvisited...)
			continue
		}

		results := make([]R, len(ops))
		for i, o := range ops {
			results[i] = memo[o]
		}
		r, err := visit(e, results...)
		if err != nil {
			var zero R
			return zero, err
		}
		memo[e] = r
	}

	return memo[root], nil
}
