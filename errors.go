package symdiff

import "errors"

var (
	// ErrTypeMismatch reports a leaf constructed from a value of the wrong
	// type: a non-numeric number or a non-string symbol name.
	ErrTypeMismatch = errors.New("symdiff: type mismatch")

	// ErrUnsupported reports an expression that differentiation has no rule
	// for, such as a power with a non-constant exponent.
	ErrUnsupported = errors.New("symdiff: unsupported operation")

	// ErrUnknownSymbol reports evaluation of a symbol with no binding.
	ErrUnknownSymbol = errors.New("symdiff: unknown symbol")

	// ErrDivisionByZero reports evaluation of a quotient whose divisor
	// evaluates to zero.
	ErrDivisionByZero = errors.New("symdiff: division by zero")
)
