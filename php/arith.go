package php

import (
	"fmt"

	"github.com/chazu/phpcore/convert"
)

// Add implements +. Two arrays produce their union: entries of y whose
// keys are missing from x are appended to a copy of x.
func Add(ctx *Context, x, y Value) (Value, error) {
	x, y = x.GetValue(), y.GetValue()
	if x.kind == KindArray && y.kind == KindArray {
		r := x.ref.(*Array).Duplicate()
		for k, v := range y.ref.(*Array).All() {
			if !r.Contains(k) {
				r.Set(k, v)
			}
		}
		return FromArray(r), nil
	}
	return arith(ctx, "+", x, y, func(a, b Number) (Number, error) { return a.Add(b), nil })
}

// Sub implements -.
func Sub(ctx *Context, x, y Value) (Value, error) {
	return arith(ctx, "-", x, y, func(a, b Number) (Number, error) { return a.Sub(b), nil })
}

// Mul implements *.
func Mul(ctx *Context, x, y Value) (Value, error) {
	return arith(ctx, "*", x, y, func(a, b Number) (Number, error) { return a.Mul(b), nil })
}

// Div implements /.
func Div(ctx *Context, x, y Value) (Value, error) {
	return arith(ctx, "/", x, y, Number.Div)
}

// Mod implements %.
func Mod(ctx *Context, x, y Value) (Value, error) {
	return arith(ctx, "%", x, y, Number.Mod)
}

func arith(ctx *Context, op string, x, y Value, f func(a, b Number) (Number, error)) (Value, error) {
	ctx = ctxOr(ctx)
	nx, ix := x.toNumber(ctx)
	ny, iy := y.toNumber(ctx)
	if ix.Has(convert.IsPhpArray) || iy.Has(convert.IsPhpArray) {
		return Null, fmt.Errorf("%s %s %s: %w", x.TypeName(), op, y.TypeName(), ErrUnsupportedOperand)
	}
	warnNonNumeric(ctx, x, ix)
	warnNonNumeric(ctx, y, iy)
	n, err := f(nx, ny)
	if err != nil {
		return Null, err
	}
	return FromNumber(n), nil
}

func warnNonNumeric(ctx *Context, v Value, info convert.NumberInfo) {
	if !v.GetValue().IsString() || info.Has(convert.IsNumber) {
		return
	}
	if info == convert.None {
		ctx.Warning("A non-numeric value encountered")
	} else {
		ctx.Notice("A non well formed numeric value encountered")
	}
}
