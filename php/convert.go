package php

import (
	"strconv"

	"github.com/chazu/phpcore/convert"
)

// ---------------------------------------------------------------------------
// Conversions
// ---------------------------------------------------------------------------

// ToBoolean converts v following PHP truthiness: "" and "0" are false,
// empty arrays are false, NULL is false, objects are true.
func (v Value) ToBoolean() bool {
	return tableOf(v.kind).toBoolean(v)
}

// ToLong performs an (int) cast.
func (v Value) ToLong() int64 {
	return tableOf(v.kind).toLong(v)
}

// ToDouble performs a (float) cast.
func (v Value) ToDouble() float64 {
	return tableOf(v.kind).toDouble(v)
}

// ToNumber converts v for arithmetic. Strings use their numeric prefix,
// arrays convert to their element count with convert.IsPhpArray set, and
// objects without a numeric conversion report a notice and become 1.
func (v Value) ToNumber(ctx *Context) (Number, convert.NumberInfo) {
	return v.toNumber(ctxOr(ctx))
}

func (v Value) toNumber(ctx *Context) (Number, convert.NumberInfo) {
	return tableOf(v.kind).toNumber(ctx, v)
}

// ToString performs a (string) cast. Doubles use ctx.Precision.
func (v Value) ToString(ctx *Context) string {
	return tableOf(v.kind).toString(ctxOr(ctx), v)
}

// ToKey converts v to an array key. The second result is false for
// arrays and objects, which are illegal offsets; a warning is reported.
func (v Value) ToKey(ctx *Context) (Key, bool) {
	return tableOf(v.kind).toKey(ctxOr(ctx), v)
}

// ToArray performs an (array) cast. NULL becomes an empty array, scalars
// a one-element list, arrays a new handle on the same table and objects
// a copy of their property table.
func (v Value) ToArray() *Array {
	v = v.GetValue()
	switch v.kind {
	case KindNull:
		return NewArray()
	case KindArray:
		return v.ref.(*Array).Duplicate()
	case KindObject:
		if p := v.ref.(Object).Properties(); p != nil {
			return p.Duplicate()
		}
		return NewArray()
	default:
		return NewList(v)
	}
}

// ToClass performs an (object) cast. Objects are returned as they are,
// arrays become a stdClass whose properties are the array entries, NULL
// becomes an empty stdClass and scalars are stored in a "scalar"
// property.
func (v Value) ToClass() Object {
	v = v.GetValue()
	switch v.kind {
	case KindObject:
		return v.ref.(Object)
	case KindNull:
		return NewInstance(StdClass)
	case KindArray:
		o := NewInstance(StdClass)
		o.props = v.ref.(*Array).Duplicate()
		return o
	default:
		o := NewInstance(StdClass)
		o.Set("scalar", v)
		return o
	}
}

// TypeName returns the name gettype() reports for v.
func (v Value) TypeName() string {
	return tableOf(v.GetValue().kind).name
}

// Accept dispatches v to the matching Visitor method.
func (v Value) Accept(vis Visitor) {
	tableOf(v.kind).accept(v, vis)
}

// ---------------------------------------------------------------------------
// Per-kind helpers
// ---------------------------------------------------------------------------

func boolToString(_ *Context, v Value) string {
	if v.n != 0 {
		return "1"
	}
	return ""
}

func longToString(_ *Context, v Value) string {
	return strconv.FormatInt(int64(v.n), 10)
}

func doubleToString(ctx *Context, v Value) string {
	return convert.FormatDouble(v.Double(), ctx.Precision)
}

func doubleToLong(v Value) int64 {
	return convert.DoubleToLong(v.Double())
}

func doubleToKey(ctx *Context, v Value) (Key, bool) {
	d := v.Double()
	if !convert.FitsLong(d) {
		ctx.Deprecated("Implicit conversion from float %s to int loses precision",
			convert.FormatDouble(d, ctx.SerializePrecision))
	}
	return IntKey(convert.DoubleToLong(d)), true
}

func stringToBoolean(s string) bool {
	return s != "" && s != "0"
}

func stringToLong(s string) int64 {
	return convert.StringToLong(s)
}

func stringToDouble(s string) float64 {
	return convert.StringToDouble(s)
}

func stringToNumber(s string) (Number, convert.NumberInfo) {
	r := convert.StringToNumber(s)
	if r.IsDouble() {
		return DoubleNumber(r.Double), r.Info
	}
	return LongNumber(r.Long), r.Info
}

func arrayToLong(v Value) int64 {
	if v.ref.(*Array).Count() != 0 {
		return 1
	}
	return 0
}

func arrayToString(ctx *Context, _ Value) string {
	ctx.Warning("Array to string conversion")
	return "Array"
}

func illegalOffset(ctx *Context, v Value) (Key, bool) {
	ctx.Warning("Illegal offset type %s", v.TypeName())
	return Key{}, false
}

func objectToString(ctx *Context, v Value) string {
	o := v.ref.(Object)
	if sc, ok := o.(StringConverter); ok {
		return sc.ToPhpString(ctx)
	}
	ctx.Warning("Object of class %s could not be converted to string", o.Class().Name)
	return o.Class().Name
}

func objectToNumber(ctx *Context, o Object) Number {
	if nc, ok := o.(NumberConverter); ok {
		if n, ok := nc.ToNumber(); ok {
			return n
		}
	}
	ctxOr(ctx).Notice("Object of class %s could not be converted to number", o.Class().Name)
	return LongNumber(1)
}
