package php

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumberOverflowPromotes(t *testing.T) {
	n := LongNumber(math.MaxInt64).Add(LongNumber(1))
	assert.True(t, n.IsDouble())
	assert.Equal(t, float64(math.MaxInt64)+1, n.ToDouble())

	n = LongNumber(math.MinInt64).Sub(LongNumber(1))
	assert.True(t, n.IsDouble())

	n = LongNumber(math.MaxInt64 / 2).Mul(LongNumber(3))
	assert.True(t, n.IsDouble())

	n = LongNumber(math.MinInt64).Neg()
	assert.True(t, n.IsDouble())

	n = LongNumber(6).Mul(LongNumber(-7))
	assert.False(t, n.IsDouble())
	assert.Equal(t, int64(-42), n.ToLong())
}

func TestNumberDiv(t *testing.T) {
	n, err := LongNumber(6).Div(LongNumber(3))
	require.NoError(t, err)
	assert.False(t, n.IsDouble())
	assert.Equal(t, int64(2), n.ToLong())

	n, err = LongNumber(7).Div(LongNumber(2))
	require.NoError(t, err)
	assert.True(t, n.IsDouble())
	assert.Equal(t, 3.5, n.ToDouble())

	n, err = LongNumber(math.MinInt64).Div(LongNumber(-1))
	require.NoError(t, err)
	assert.True(t, n.IsDouble())

	_, err = LongNumber(1).Div(LongNumber(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
	_, err = LongNumber(1).Div(DoubleNumber(0))
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestNumberMod(t *testing.T) {
	n, err := LongNumber(-7).Mod(LongNumber(3))
	require.NoError(t, err)
	assert.Equal(t, int64(-1), n.ToLong())

	n, err = DoubleNumber(7.9).Mod(LongNumber(4))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n.ToLong())

	n, err = LongNumber(math.MinInt64).Mod(LongNumber(-1))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.ToLong())

	_, err = LongNumber(1).Mod(DoubleNumber(0.5))
	assert.ErrorIs(t, err, ErrModuloByZero)
}

func TestNumberCompareAndSign(t *testing.T) {
	assert.Equal(t, -1, LongNumber(1).Compare(DoubleNumber(1.5)))
	assert.Equal(t, 0, LongNumber(2).Compare(DoubleNumber(2)))
	assert.Equal(t, 1, LongNumber(3).Compare(LongNumber(2)))
	assert.Equal(t, -1, DoubleNumber(-0.1).Sign())
	assert.Equal(t, 0, DoubleNumber(math.NaN()).Sign())
	assert.Equal(t, 0, Number{}.Sign())
	assert.Equal(t, KindDouble, DoubleNumber(1).ToValue().Kind())
	assert.Equal(t, KindLong, LongNumber(1).ToValue().Kind())
}

func TestArithmetic(t *testing.T) {
	ctx, rec := newTestContext()

	v, err := Add(ctx, FromLong(1), FromString("2"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), v.Long())

	v, err = Add(ctx, FromLong(1), FromString("1.5"))
	require.NoError(t, err)
	assert.Equal(t, 2.5, v.Double())

	v, err = Mul(ctx, True, FromLong(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), v.Long())

	v, err = Sub(ctx, Null, FromLong(4))
	require.NoError(t, err)
	assert.Equal(t, int64(-4), v.Long())

	v, err = Div(ctx, FromLong(1), FromLong(4))
	require.NoError(t, err)
	assert.Equal(t, 0.25, v.Double())

	v, err = Mod(ctx, FromLong(10), FromLong(4))
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Long())

	assert.Empty(t, rec.Reports())
}

func TestArithmeticDiagnostics(t *testing.T) {
	ctx, rec := newTestContext()

	v, err := Add(ctx, FromLong(1), FromString("abc"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), v.Long())
	last, _ := rec.Last()
	assert.Equal(t, Report{Level: LevelWarning, Message: "A non-numeric value encountered"}, last)

	v, err = Add(ctx, FromLong(1), FromString("5 apples"))
	require.NoError(t, err)
	assert.Equal(t, int64(6), v.Long())
	last, _ = rec.Last()
	assert.Equal(t, LevelNotice, last.Level)

	_, err = Div(ctx, FromLong(1), FromString("0"))
	assert.ErrorIs(t, err, ErrDivisionByZero)

	_, err = Sub(ctx, FromArray(NewArray()), FromLong(1))
	assert.ErrorIs(t, err, ErrUnsupportedOperand)
	assert.EqualError(t, err, "array - integer: unsupported operand types")
}
