package php

import (
	"strings"

	"github.com/chazu/phpcore/convert"
)

// Incomparable is the result of comparing values that have no order,
// such as cyclic arrays or objects of unrelated classes.
const Incomparable = 1

// Compare performs PHP loose comparison (the <=> operator) and returns
// -1, 0 or 1.
func Compare(ctx *Context, x, y Value) int {
	x, y = x.GetValue(), y.GetValue()
	return tableOf(x.kind).compare(ctxOr(ctx), x, y)
}

// LooseEquals implements ==.
func LooseEquals(ctx *Context, x, y Value) bool {
	return Compare(ctx, x, y) == 0
}

// StrictEquals implements ===. Cycles are reported to ctx.
func StrictEquals(ctx *Context, x, y Value) bool {
	x, y = x.GetValue(), y.GetValue()
	return tableOf(x.kind).strictEquals(ctxOr(ctx), x, y)
}

// Compare performs loose comparison of v against y.
func (v Value) Compare(ctx *Context, y Value) int {
	return Compare(ctx, v, y)
}

// StrictEquals performs strict comparison of v against y.
func (v Value) StrictEquals(ctx *Context, y Value) bool {
	return StrictEquals(ctx, v, y)
}

// ---------------------------------------------------------------------------
// Loose comparison matrix, one function per left-hand kind
// ---------------------------------------------------------------------------

// compareNull treats NULL as empty: it equals false, 0, "" and [] and is
// less than anything non-empty.
func compareNull(ctx *Context, _ Value, y Value) int {
	switch y.kind {
	case KindNull:
		return 0
	case KindBool:
		return cmpBool(false, y.n != 0)
	case KindLong, KindDouble:
		return cmpBool(false, y.ToBoolean())
	case KindString, KindMutableString:
		if y.ToString(ctx) == "" {
			return 0
		}
		return -1
	case KindArray:
		return cmpInt(0, y.ref.(*Array).Count())
	}
	return -1
}

func compareBool(_ *Context, x, y Value) int {
	return cmpBool(x.n != 0, y.ToBoolean())
}

func compareLong(ctx *Context, x, y Value) int {
	l := int64(x.n)
	switch y.kind {
	case KindNull:
		return cmpBool(l != 0, false)
	case KindBool:
		return cmpBool(l != 0, y.n != 0)
	case KindLong:
		return cmpInt(l, int64(y.n))
	case KindDouble:
		return cmpFloat(float64(l), y.Double())
	case KindString, KindMutableString:
		return compareNumberString(LongNumber(l), y.ToString(ctx))
	case KindArray:
		return -1
	case KindObject:
		return LongNumber(l).Compare(objectToNumber(ctx, y.ref.(Object)))
	}
	return -1
}

func compareDouble(ctx *Context, x, y Value) int {
	d := x.Double()
	switch y.kind {
	case KindNull:
		return cmpBool(d != 0, false)
	case KindBool:
		return cmpBool(d != 0, y.n != 0)
	case KindLong:
		return cmpFloat(d, float64(int64(y.n)))
	case KindDouble:
		return cmpFloat(d, y.Double())
	case KindString, KindMutableString:
		return compareNumberString(DoubleNumber(d), y.ToString(ctx))
	case KindArray:
		return -1
	case KindObject:
		return DoubleNumber(d).Compare(objectToNumber(ctx, y.ref.(Object)))
	}
	return -1
}

func compareString(ctx *Context, x, y Value) int {
	s := x.ToString(ctx)
	switch y.kind {
	case KindNull:
		if s == "" {
			return 0
		}
		return 1
	case KindBool:
		return cmpBool(stringToBoolean(s), y.n != 0)
	case KindLong:
		return -compareNumberString(LongNumber(int64(y.n)), s)
	case KindDouble:
		return -compareNumberString(DoubleNumber(y.Double()), s)
	case KindString, KindMutableString:
		return CompareStrings(s, y.ToString(ctx))
	case KindArray:
		return -1
	case KindObject:
		if sc, ok := y.ref.(StringConverter); ok {
			return CompareStrings(s, sc.ToPhpString(ctx))
		}
		return -1
	}
	return -1
}

func compareArray(ctx *Context, x, y Value) int {
	a := x.ref.(*Array)
	switch y.kind {
	case KindNull:
		return cmpInt(a.Count(), 0)
	case KindBool:
		return cmpBool(a.Count() != 0, y.n != 0)
	case KindArray:
		return compareArrays(ctx, a, y.ref.(*Array))
	case KindObject:
		return -1
	}
	return 1
}

func compareObject(ctx *Context, x, y Value) int {
	o := x.ref.(Object)
	switch y.kind {
	case KindNull:
		return 1
	case KindBool:
		return cmpBool(true, y.n != 0)
	case KindLong, KindDouble:
		n, _ := y.toNumber(ctx)
		return objectToNumber(ctx, o).Compare(n)
	case KindString, KindMutableString:
		if sc, ok := o.(StringConverter); ok {
			return CompareStrings(sc.ToPhpString(ctx), y.ToString(ctx))
		}
		return 1
	case KindArray:
		return 1
	case KindObject:
		return compareObjects(ctx, o, y.ref.(Object))
	}
	return 1
}

// compareNumberString compares a number with a string. A numeric string
// compares numerically; otherwise the string's leading numeric prefix is
// used, so non-numeric strings compare as 0.
func compareNumberString(n Number, s string) int {
	r := convert.StringToNumber(s)
	if r.IsDouble() {
		return n.Compare(DoubleNumber(r.Double))
	}
	return n.Compare(LongNumber(r.Long))
}

// CompareStrings compares two strings the way == and <=> do: when both
// are numeric strings they compare as numbers, otherwise ordinally.
func CompareStrings(a, b string) int {
	ra := convert.StringToNumber(a)
	if ra.IsNumeric() {
		rb := convert.StringToNumber(b)
		if rb.IsNumeric() {
			if ra.IsDouble() || rb.IsDouble() {
				return cmpFloat(resultDouble(ra), resultDouble(rb))
			}
			return cmpInt(ra.Long, rb.Long)
		}
	}
	return strings.Compare(a, b)
}

func resultDouble(r convert.Result) float64 {
	if r.IsDouble() {
		return r.Double
	}
	return float64(r.Long)
}

// ---------------------------------------------------------------------------
// Arrays and objects
// ---------------------------------------------------------------------------

// compareArrays orders arrays by count, then by the values under the
// receiver's keys taken in key order. A key missing from y makes the
// pair unordered. Cycles are detected with the per-array comparing
// counters: a nested pair whose arrays are both already being compared
// is reported as incomparable.
func compareArrays(ctx *Context, x, y *Array) int {
	if x == y || x.table == y.table {
		return 0
	}
	if c := cmpInt(x.Count(), y.Count()); c != 0 {
		return c
	}
	if x.comparing.Load() > 0 && y.comparing.Load() > 0 {
		ctx.Warning("Incomparable values: nesting level too deep")
		return Incomparable
	}
	x.comparing.Add(1)
	y.comparing.Add(1)
	defer x.comparing.Add(-1)
	defer y.comparing.Add(-1)

	for _, k := range x.sortedKeys() {
		yv, ok := y.table.Get(k)
		if !ok {
			return Incomparable
		}
		xv, _ := x.table.Get(k)
		if c := Compare(ctx, xv, yv); c != 0 {
			return c
		}
	}
	return 0
}

func strictEqualsArray(ctx *Context, x, y Value) bool {
	if y.kind != KindArray {
		return false
	}
	return strictEqualArrays(ctx, x.ref.(*Array), y.ref.(*Array))
}

// strictEqualArrays requires the same entries in the same order with
// strictly equal values.
func strictEqualArrays(ctx *Context, x, y *Array) bool {
	if x == y || x.table == y.table {
		return true
	}
	if x.Count() != y.Count() {
		return false
	}
	if x.comparing.Load() > 0 && y.comparing.Load() > 0 {
		ctx.Warning("Incomparable values: nesting level too deep")
		return false
	}
	x.comparing.Add(1)
	y.comparing.Add(1)
	defer x.comparing.Add(-1)
	defer y.comparing.Add(-1)

	ex, ey := x.table.Enumerator(), y.table.Enumerator()
	for ex.MoveNext() {
		if !ey.MoveNext() {
			return false
		}
		if ex.Key() != ey.Key() || !StrictEquals(ctx, ex.Value(), ey.Value()) {
			return false
		}
	}
	return !ey.MoveNext()
}

func strictEqualsString(_ *Context, x, y Value) bool {
	if y.kind != KindString && y.kind != KindMutableString {
		return false
	}
	return x.ToString(nil) == y.ToString(nil)
}

func sameObject(a, b Object) bool {
	return a == b
}

// compareObjects orders two objects. A custom comparison wins; the same
// instance is equal; instances of one class compare property by
// property; a subclass instance is greater than its parent class
// instance; anything else is incomparable.
func compareObjects(ctx *Context, x, y Object) int {
	if sameObject(x, y) {
		return 0
	}
	if oc, ok := x.(ObjectComparer); ok {
		if r, ok := oc.CompareObject(ctx, FromObject(y)); ok {
			return r
		}
	}
	cx, cy := x.Class(), y.Class()
	if cx != cy {
		switch {
		case cx.IsSubclassOf(cy):
			return 1
		case cy.IsSubclassOf(cx):
			return -1
		}
		ctx.Warning("Incomparable values: objects of class %s and %s", cx.Name, cy.Name)
		return Incomparable
	}
	return compareProperties(ctx, x.Properties(), y.Properties())
}

// compareProperties walks x's properties in declaration order.
func compareProperties(ctx *Context, px, py *Array) int {
	if px == nil || py == nil {
		return cmpInt(countOf(px), countOf(py))
	}
	if px.table == py.table {
		return 0
	}
	if c := cmpInt(px.Count(), py.Count()); c != 0 {
		return c
	}
	if px.comparing.Load() > 0 && py.comparing.Load() > 0 {
		ctx.Warning("Incomparable values: nesting level too deep")
		return Incomparable
	}
	px.comparing.Add(1)
	py.comparing.Add(1)
	defer px.comparing.Add(-1)
	defer py.comparing.Add(-1)

	for k, xv := range px.table.All() {
		yv, ok := py.table.Get(k)
		if !ok {
			return Incomparable
		}
		if c := Compare(ctx, xv, yv); c != 0 {
			return c
		}
	}
	return 0
}

func countOf(a *Array) int {
	if a == nil {
		return 0
	}
	return a.Count()
}
