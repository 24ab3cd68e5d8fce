package php

import "github.com/chazu/phpcore/convert"

// typeTable holds the per-kind behavior of Value.
//
// Operations are stored in an array indexed by Kind, so dispatch is a
// single indexed load instead of a type switch at every call site. The
// table is filled in init because several entries refer back to
// functions that themselves dispatch through it.
type typeTable struct {
	name         string
	toBoolean    func(v Value) bool
	toLong       func(v Value) int64
	toDouble     func(v Value) float64
	toNumber     func(ctx *Context, v Value) (Number, convert.NumberInfo)
	toString     func(ctx *Context, v Value) string
	toKey        func(ctx *Context, v Value) (Key, bool)
	deepCopy     func(v Value) Value
	compare      func(ctx *Context, x, y Value) int
	strictEquals func(ctx *Context, x, y Value) bool
	accept       func(v Value, vis Visitor)
}

var typeTables [kindCount]*typeTable

// tableOf returns the dispatch table for k.
// Panics on kindInvalid; deleted slots must never reach value code.
func tableOf(k Kind) *typeTable {
	if k >= kindCount {
		panic("php: operation on a deleted slot")
	}
	return typeTables[k]
}

func identity(v Value) Value { return v }

func init() {
	typeTables[KindNull] = &typeTable{
		name:         "NULL",
		toBoolean:    func(Value) bool { return false },
		toLong:       func(Value) int64 { return 0 },
		toDouble:     func(Value) float64 { return 0 },
		toNumber:     func(*Context, Value) (Number, convert.NumberInfo) { return LongNumber(0), convert.LongInteger },
		toString:     func(*Context, Value) string { return "" },
		toKey:        func(*Context, Value) (Key, bool) { return StringKey(""), true },
		deepCopy:     identity,
		compare:      compareNull,
		strictEquals: func(_ *Context, _, y Value) bool { return y.kind == KindNull },
		accept:       func(_ Value, vis Visitor) { vis.VisitNull() },
	}

	typeTables[KindBool] = &typeTable{
		name:      "boolean",
		toBoolean: func(v Value) bool { return v.n != 0 },
		toLong:    func(v Value) int64 { return int64(v.n) },
		toDouble:  func(v Value) float64 { return float64(v.n) },
		toNumber: func(_ *Context, v Value) (Number, convert.NumberInfo) {
			return LongNumber(int64(v.n)), convert.LongInteger
		},
		toString:     boolToString,
		toKey:        func(_ *Context, v Value) (Key, bool) { return IntKey(int64(v.n)), true },
		deepCopy:     identity,
		compare:      compareBool,
		strictEquals: func(_ *Context, x, y Value) bool { return y.kind == KindBool && x.n == y.n },
		accept:       func(v Value, vis Visitor) { vis.VisitBool(v.n != 0) },
	}

	typeTables[KindLong] = &typeTable{
		name:         "integer",
		toBoolean:    func(v Value) bool { return v.n != 0 },
		toLong:       func(v Value) int64 { return int64(v.n) },
		toDouble:     func(v Value) float64 { return float64(int64(v.n)) },
		toNumber:     func(_ *Context, v Value) (Number, convert.NumberInfo) { return LongNumber(int64(v.n)), convert.LongInteger },
		toString:     longToString,
		toKey:        func(_ *Context, v Value) (Key, bool) { return IntKey(int64(v.n)), true },
		deepCopy:     identity,
		compare:      compareLong,
		strictEquals: func(_ *Context, x, y Value) bool { return y.kind == KindLong && x.n == y.n },
		accept:       func(v Value, vis Visitor) { vis.VisitLong(int64(v.n)) },
	}

	typeTables[KindDouble] = &typeTable{
		name:      "double",
		toBoolean: func(v Value) bool { return v.Double() != 0 },
		toLong:    doubleToLong,
		toDouble:  func(v Value) float64 { return v.Double() },
		toNumber: func(_ *Context, v Value) (Number, convert.NumberInfo) {
			return DoubleNumber(v.Double()), convert.Double
		},
		toString:     doubleToString,
		toKey:        doubleToKey,
		deepCopy:     identity,
		compare:      compareDouble,
		strictEquals: func(_ *Context, x, y Value) bool { return y.kind == KindDouble && x.Double() == y.Double() },
		accept:       func(v Value, vis Visitor) { vis.VisitDouble(v.Double()) },
	}

	typeTables[KindString] = &typeTable{
		name:         "string",
		toBoolean:    func(v Value) bool { return stringToBoolean(v.ref.(string)) },
		toLong:       func(v Value) int64 { return stringToLong(v.ref.(string)) },
		toDouble:     func(v Value) float64 { return stringToDouble(v.ref.(string)) },
		toNumber:     func(_ *Context, v Value) (Number, convert.NumberInfo) { return stringToNumber(v.ref.(string)) },
		toString:     func(_ *Context, v Value) string { return v.ref.(string) },
		toKey:        func(_ *Context, v Value) (Key, bool) { return KeyFromString(v.ref.(string)), true },
		deepCopy:     identity,
		compare:      compareString,
		strictEquals: strictEqualsString,
		accept:       func(v Value, vis Visitor) { vis.VisitString(v.ref.(string)) },
	}

	typeTables[KindMutableString] = &typeTable{
		name:      "string",
		toBoolean: func(v Value) bool { return stringToBoolean(v.ref.(*Blob).ToString(nil)) },
		toLong:    func(v Value) int64 { return stringToLong(v.ref.(*Blob).ToString(nil)) },
		toDouble:  func(v Value) float64 { return stringToDouble(v.ref.(*Blob).ToString(nil)) },
		toNumber: func(ctx *Context, v Value) (Number, convert.NumberInfo) {
			return stringToNumber(v.ref.(*Blob).ToString(ctx))
		},
		toString: func(ctx *Context, v Value) string { return v.ref.(*Blob).ToString(ctx) },
		toKey: func(ctx *Context, v Value) (Key, bool) {
			return KeyFromString(v.ref.(*Blob).ToString(ctx)), true
		},
		deepCopy:     func(v Value) Value { return FromBlob(v.ref.(*Blob).AddRef()) },
		compare:      compareString,
		strictEquals: strictEqualsString,
		accept:       func(v Value, vis Visitor) { vis.VisitBlob(v.ref.(*Blob)) },
	}

	typeTables[KindArray] = &typeTable{
		name:      "array",
		toBoolean: func(v Value) bool { return v.ref.(*Array).Count() != 0 },
		toLong:    arrayToLong,
		toDouble:  func(v Value) float64 { return float64(arrayToLong(v)) },
		toNumber: func(_ *Context, v Value) (Number, convert.NumberInfo) {
			return LongNumber(int64(v.ref.(*Array).Count())), convert.LongInteger | convert.IsPhpArray
		},
		toString:     arrayToString,
		toKey:        illegalOffset,
		deepCopy:     func(v Value) Value { return FromArray(v.ref.(*Array).Duplicate()) },
		compare:      compareArray,
		strictEquals: strictEqualsArray,
		accept:       func(v Value, vis Visitor) { vis.VisitArray(v.ref.(*Array)) },
	}

	typeTables[KindObject] = &typeTable{
		name:         "object",
		toBoolean:    func(Value) bool { return true },
		toLong:       func(v Value) int64 { return objectToNumber(nil, v.ref.(Object)).ToLong() },
		toDouble:     func(v Value) float64 { return objectToNumber(nil, v.ref.(Object)).ToDouble() },
		toNumber:     func(ctx *Context, v Value) (Number, convert.NumberInfo) { return objectToNumber(ctx, v.ref.(Object)), convert.LongInteger },
		toString:     objectToString,
		toKey:        illegalOffset,
		deepCopy:     identity,
		compare:      compareObject,
		strictEquals: func(_ *Context, x, y Value) bool { return y.kind == KindObject && sameObject(x.ref.(Object), y.ref.(Object)) },
		accept:       func(v Value, vis Visitor) { vis.VisitObject(v.ref.(Object)) },
	}

	// Alias entries are only reached through callers that skipped GetValue.
	// They forward to the pointee.
	typeTables[KindAlias] = &typeTable{
		name:         "reference",
		toBoolean:    func(v Value) bool { return v.GetValue().ToBoolean() },
		toLong:       func(v Value) int64 { return v.GetValue().ToLong() },
		toDouble:     func(v Value) float64 { return v.GetValue().ToDouble() },
		toNumber:     func(ctx *Context, v Value) (Number, convert.NumberInfo) { return v.GetValue().toNumber(ctx) },
		toString:     func(ctx *Context, v Value) string { return v.GetValue().ToString(ctx) },
		toKey:        func(ctx *Context, v Value) (Key, bool) { return v.GetValue().ToKey(ctx) },
		deepCopy:     func(v Value) Value { return v.GetValue().DeepCopy() },
		compare:      func(ctx *Context, x, y Value) int { return Compare(ctx, x.GetValue(), y) },
		strictEquals: func(ctx *Context, x, y Value) bool { return StrictEquals(ctx, x.GetValue(), y) },
		accept:       func(v Value, vis Visitor) { vis.VisitAlias(v.ref.(*Alias)) },
	}
}
