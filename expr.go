// Package symdiff models arithmetic expressions as immutable trees and
// provides two tree algorithms over them: a generic memoized post-order
// traversal and symbolic differentiation built on top of it.
//
// Design goals:
//   - Closed set of node kinds with exhaustive type-switch dispatch
//   - Nodes are immutable once built; every operation allocates fresh nodes
//   - Shared subexpressions (DAG-shaped trees) are visited exactly once
//   - Iterative traversal, so tree depth never grows the call stack
package symdiff

import "fmt"

// Kind identifies the variant of an expression node.
type Kind int

const (
	KindNumber Kind = iota
	KindSymbol
	KindAdd
	KindSub
	KindMul
	KindDiv
	KindPow
)

// Precedence returns the display precedence of the kind. Leaves are 0 and
// never need parenthesization; operators range from 1 (Add/Sub) to 3 (Pow).
func (k Kind) Precedence() int {
	switch k {
	case KindAdd, KindSub:
		return 1
	case KindMul, KindDiv:
		return 2
	case KindPow:
		return 3
	}
	return 0
}

// Token returns the infix symbol for operator kinds and "" for leaves.
func (k Kind) Token() string {
	switch k {
	case KindAdd:
		return "+"
	case KindSub:
		return "-"
	case KindMul:
		return "*"
	case KindDiv:
		return "/"
	case KindPow:
		return "^"
	}
	return ""
}

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindSymbol:
		return "symbol"
	case KindAdd:
		return "add"
	case KindSub:
		return "sub"
	case KindMul:
		return "mul"
	case KindDiv:
		return "div"
	case KindPow:
		return "pow"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Expr is an expression node: a numeric literal, a named symbol, or a binary
// operator over two operands. The set of implementations is closed; every
// node is one of *Number, *Symbol, or *BinOp.
//
// Nodes are compared by identity, not structure: two separately built 1s are
// distinct nodes, while one node held by two parents is a shared
// subexpression and is visited once per Traverse call.
type Expr interface {
	// Kind reports the variant of the node.
	Kind() Kind
	// Operands returns the node's operands in left-to-right order. The
	// slice is a copy; callers may keep or modify it. Leaves return nil.
	Operands() []Expr
	String() string

	exprNode()
}

// Number is a numeric literal.
type Number struct{ val float64 }

// Num builds a literal from a float64. Integral values render without a
// decimal point.
func Num(v float64) *Number { return &Number{val: v} }

// NewNumber builds a literal from any Go integer or float value. Anything
// else fails with ErrTypeMismatch.
func NewNumber(v any) (*Number, error) {
	switch n := v.(type) {
	case int:
		return Num(float64(n)), nil
	case int8:
		return Num(float64(n)), nil
	case int16:
		return Num(float64(n)), nil
	case int32:
		return Num(float64(n)), nil
	case int64:
		return Num(float64(n)), nil
	case uint:
		return Num(float64(n)), nil
	case uint8:
		return Num(float64(n)), nil
	case uint16:
		return Num(float64(n)), nil
	case uint32:
		return Num(float64(n)), nil
	case uint64:
		return Num(float64(n)), nil
	case float32:
		return Num(float64(n)), nil
	case float64:
		return Num(n), nil
	}
	return nil, fmt.Errorf("%w: number value must be numeric, got %T", ErrTypeMismatch, v)
}

func (n *Number) Kind() Kind       { return KindNumber }
func (n *Number) Operands() []Expr { return nil }
func (n *Number) Value() float64   { return n.val }
func (n *Number) exprNode()        {}

// Symbol is a named variable.
type Symbol struct{ name string }

// Sym builds a symbol. It panics on an empty name; use NewSymbol when the
// name comes from untrusted input.
func Sym(name string) *Symbol {
	if name == "" {
		panic("symdiff: empty symbol name")
	}
	return &Symbol{name: name}
}

// NewSymbol builds a symbol from any value. Non-string or empty names fail
// with ErrTypeMismatch.
func NewSymbol(v any) (*Symbol, error) {
	name, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: symbol name must be a string, got %T", ErrTypeMismatch, v)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: symbol name must be non-empty", ErrTypeMismatch)
	}
	return &Symbol{name: name}, nil
}

func (s *Symbol) Kind() Kind       { return KindSymbol }
func (s *Symbol) Operands() []Expr { return nil }
func (s *Symbol) Name() string     { return s.name }
func (s *Symbol) exprNode()        {}

// BinOp is a binary operator node. One struct covers all five operators;
// the stored kind selects the operator.
type BinOp struct {
	kind        Kind
	left, right Expr
}

func binOp(k Kind, l, r Expr) *BinOp {
	if k.Token() == "" {
		panic("symdiff: " + k.String() + " is not an operator kind")
	}
	if l == nil || r == nil {
		panic("symdiff: nil operand")
	}
	return &BinOp{kind: k, left: l, right: r}
}

// Add builds l + r.
func Add(l, r Expr) *BinOp { return binOp(KindAdd, l, r) }

// Sub builds l - r.
func Sub(l, r Expr) *BinOp { return binOp(KindSub, l, r) }

// Mul builds l * r.
func Mul(l, r Expr) *BinOp { return binOp(KindMul, l, r) }

// Div builds l / r.
func Div(l, r Expr) *BinOp { return binOp(KindDiv, l, r) }

// Pow builds l ^ r.
func Pow(l, r Expr) *BinOp { return binOp(KindPow, l, r) }

func (b *BinOp) Kind() Kind       { return b.kind }
func (b *BinOp) Operands() []Expr { return []Expr{b.left, b.right} }
func (b *BinOp) Left() Expr       { return b.left }
func (b *BinOp) Right() Expr      { return b.right }
func (b *BinOp) exprNode()        {}
