package symdiff

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNumber(t *testing.T) {
	t.Run("int", func(t *testing.T) {
		n, err := NewNumber(42)
		require.NoError(t, err)
		assert.Equal(t, 42.0, n.Value())
	})

	t.Run("float64", func(t *testing.T) {
		n, err := NewNumber(2.5)
		require.NoError(t, err)
		assert.Equal(t, 2.5, n.Value())
	})

	t.Run("unsigned", func(t *testing.T) {
		n, err := NewNumber(uint8(7))
		require.NoError(t, err)
		assert.Equal(t, 7.0, n.Value())
	})

	t.Run("string is rejected", func(t *testing.T) {
		_, err := NewNumber("not a number")
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("bool is rejected", func(t *testing.T) {
		_, err := NewNumber(true)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestNewSymbol(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		s, err := NewSymbol("x")
		require.NoError(t, err)
		assert.Equal(t, "x", s.Name())
	})

	t.Run("non-string is rejected", func(t *testing.T) {
		_, err := NewSymbol(42)
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		_, err := NewSymbol("")
		assert.ErrorIs(t, err, ErrTypeMismatch)
	})
}

func TestSymPanicsOnEmptyName(t *testing.T) {
	assert.Panics(t, func() { Sym("") })
}

func TestKinds(t *testing.T) {
	x := Sym("x")
	two := Num(2)

	cases := []struct {
		expr       Expr
		kind       Kind
		precedence int
		token      string
	}{
		{two, KindNumber, 0, ""},
		{x, KindSymbol, 0, ""},
		{Add(x, two), KindAdd, 1, "+"},
		{Sub(x, two), KindSub, 1, "-"},
		{Mul(x, two), KindMul, 2, "*"},
		{Div(x, two), KindDiv, 2, "/"},
		{Pow(x, two), KindPow, 3, "^"},
	}
	for _, c := range cases {
		t.Run(c.kind.String(), func(t *testing.T) {
			assert.Equal(t, c.kind, c.expr.Kind())
			assert.Equal(t, c.precedence, c.expr.Kind().Precedence())
			assert.Equal(t, c.token, c.expr.Kind().Token())
		})
	}
}

func TestOperands(t *testing.T) {
	t.Run("leaves have none", func(t *testing.T) {
		assert.Nil(t, Num(1).Operands())
		assert.Nil(t, Sym("x").Operands())
	})

	t.Run("left to right order", func(t *testing.T) {
		a, b := Sym("a"), Sym("b")
		ops := Add(a, b).Operands()
		require.Len(t, ops, 2)
		assert.Same(t, a, ops[0])
		assert.Same(t, b, ops[1])
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		a, b := Sym("a"), Sym("b")
		e := Mul(a, b)
		ops := e.Operands()
		ops[0] = Num(99)
		fresh := e.Operands()
		assert.Same(t, a, fresh[0])
		assert.Same(t, b, fresh[1])
	})
}

func TestSharedOperandsAllowed(t *testing.T) {
	// One node under two parents forms a DAG, not a copy.
	x := Sym("x")
	e := Mul(x, x)
	ops := e.Operands()
	assert.Same(t, ops[0], ops[1])
}
