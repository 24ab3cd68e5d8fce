package php

import (
	"math"

	"github.com/chazu/phpcore/convert"
)

// Number is the numeric operand of PHP arithmetic: a long or a double.
// The zero Number is the long 0.
type Number struct {
	isDouble bool
	l        int64
	d        float64
}

// LongNumber creates an integer Number.
func LongNumber(l int64) Number {
	return Number{l: l}
}

// DoubleNumber creates a float Number.
func DoubleNumber(d float64) Number {
	return Number{isDouble: true, d: d}
}

// IsDouble reports whether n holds a double.
func (n Number) IsDouble() bool {
	return n.isDouble
}

// ToLong returns n as a long, truncating doubles with PHP cast rules.
func (n Number) ToLong() int64 {
	if n.isDouble {
		return convert.DoubleToLong(n.d)
	}
	return n.l
}

// ToDouble returns n as a double.
func (n Number) ToDouble() float64 {
	if n.isDouble {
		return n.d
	}
	return float64(n.l)
}

// ToValue returns n as a Value.
func (n Number) ToValue() Value {
	return FromNumber(n)
}

// Sign returns -1, 0 or 1. NaN has sign 0.
func (n Number) Sign() int {
	if n.isDouble {
		switch {
		case n.d < 0:
			return -1
		case n.d > 0:
			return 1
		}
		return 0
	}
	return cmpInt(n.l, 0)
}

// Compare returns -1, 0 or 1. Mixed operands compare as doubles.
func (n Number) Compare(m Number) int {
	if !n.isDouble && !m.isDouble {
		return cmpInt(n.l, m.l)
	}
	return cmpFloat(n.ToDouble(), m.ToDouble())
}

// Add returns n+m. Long overflow promotes to double.
func (n Number) Add(m Number) Number {
	if !n.isDouble && !m.isDouble {
		r := n.l + m.l
		if (n.l >= 0) == (m.l >= 0) && (r >= 0) != (n.l >= 0) {
			return DoubleNumber(float64(n.l) + float64(m.l))
		}
		return LongNumber(r)
	}
	return DoubleNumber(n.ToDouble() + m.ToDouble())
}

// Sub returns n-m. Long overflow promotes to double.
func (n Number) Sub(m Number) Number {
	if !n.isDouble && !m.isDouble {
		r := n.l - m.l
		if (n.l >= 0) != (m.l >= 0) && (r >= 0) != (n.l >= 0) {
			return DoubleNumber(float64(n.l) - float64(m.l))
		}
		return LongNumber(r)
	}
	return DoubleNumber(n.ToDouble() - m.ToDouble())
}

// Mul returns n*m. Long overflow promotes to double.
func (n Number) Mul(m Number) Number {
	if !n.isDouble && !m.isDouble {
		a, b := n.l, m.l
		if a == 0 || b == 0 {
			return LongNumber(0)
		}
		r := a * b
		if r/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
			return DoubleNumber(float64(a) * float64(b))
		}
		return LongNumber(r)
	}
	return DoubleNumber(n.ToDouble() * m.ToDouble())
}

// Div returns n/m. The result is a long only when both operands are
// longs and the division is exact.
func (n Number) Div(m Number) (Number, error) {
	if m.Sign() == 0 && !(m.isDouble && math.IsNaN(m.d)) {
		return Number{}, ErrDivisionByZero
	}
	if !n.isDouble && !m.isDouble {
		if m.l == -1 && n.l == math.MinInt64 {
			return DoubleNumber(-float64(n.l)), nil
		}
		if n.l%m.l == 0 {
			return LongNumber(n.l / m.l), nil
		}
	}
	return DoubleNumber(n.ToDouble() / m.ToDouble()), nil
}

// Mod returns n%m computed on longs.
func (n Number) Mod(m Number) (Number, error) {
	a, b := n.ToLong(), m.ToLong()
	if b == 0 {
		return Number{}, ErrModuloByZero
	}
	if b == -1 {
		return LongNumber(0), nil
	}
	return LongNumber(a % b), nil
}

// Neg returns -n.
func (n Number) Neg() Number {
	if n.isDouble {
		return DoubleNumber(-n.d)
	}
	if n.l == math.MinInt64 {
		return DoubleNumber(-float64(n.l))
	}
	return LongNumber(-n.l)
}

func cmpInt[T int | int64](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// cmpFloat orders doubles. Comparisons involving NaN are unordered, which
// PHP reports as "greater" from the left operand's point of view.
func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a == b:
		return 0
	}
	return 1
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	}
	return -1
}
