package symdiff

import "fmt"

// Convenience constructors that accept raw Go numbers alongside expressions,
// so callers can write Times(Sym("x"), 2) instead of spelling out the
// literal. They panic on operands that are neither Expr nor numeric; the
// typed constructors in expr.go are the error-free core surface.

// Plus builds l + r, lifting raw numbers to literals.
func Plus(l, r any) Expr { return Add(lift(l), lift(r)) }

// Minus builds l - r, lifting raw numbers to literals.
func Minus(l, r any) Expr { return Sub(lift(l), lift(r)) }

// Times builds l * r, lifting raw numbers to literals.
func Times(l, r any) Expr { return Mul(lift(l), lift(r)) }

// Over builds l / r, lifting raw numbers to literals.
func Over(l, r any) Expr { return Div(lift(l), lift(r)) }

// Raise builds l ^ r, lifting raw numbers to literals.
func Raise(l, r any) Expr { return Pow(lift(l), lift(r)) }

func lift(v any) Expr {
	if e, ok := v.(Expr); ok {
		return e
	}
	n, err := NewNumber(v)
	if err != nil {
		panic(fmt.Errorf("%w: operand must be an Expr or a number, got %T", ErrTypeMismatch, v))
	}
	return n
}
