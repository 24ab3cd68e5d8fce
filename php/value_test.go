package php

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chazu/phpcore/convert"
)

func newTestContext() (*Context, *RecordingReporter) {
	rec := &RecordingReporter{}
	ctx := NewContext()
	ctx.Reporter = rec
	return ctx, rec
}

// ---------------------------------------------------------------------------
// Conversions
// ---------------------------------------------------------------------------

func TestToBoolean(t *testing.T) {
	tests := []struct {
		v    Value
		want bool
	}{
		{Null, false},
		{True, true},
		{False, false},
		{FromLong(0), false},
		{FromLong(-1), true},
		{FromDouble(0), false},
		{FromDouble(math.Copysign(0, -1)), false},
		{FromDouble(0.1), true},
		{FromDouble(math.NaN()), true},
		{FromString(""), false},
		{FromString("0"), false},
		{FromString("0.0"), true},
		{FromString(" "), true},
		{FromBlob(NewBlobString("0")), false},
		{FromArray(NewArray()), false},
		{FromArray(NewList(Null)), true},
		{FromObject(NewInstance(StdClass)), true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.ToBoolean(), "ToBoolean(%s %v)", tt.v.TypeName(), tt.v)
	}
}

func TestToLongAndDouble(t *testing.T) {
	assert.Equal(t, int64(0), Null.ToLong())
	assert.Equal(t, int64(1), True.ToLong())
	assert.Equal(t, int64(3), FromDouble(3.99).ToLong())
	assert.Equal(t, int64(0), FromDouble(math.NaN()).ToLong())
	assert.Equal(t, int64(12), FromString("12abc").ToLong())
	assert.Equal(t, int64(255), FromString("0xFF").ToLong())
	assert.Equal(t, int64(1000), FromString("1e3").ToLong())
	assert.Equal(t, int64(math.MaxInt64), FromString("99999999999999999999").ToLong())
	assert.Equal(t, int64(0), FromArray(NewArray()).ToLong())
	assert.Equal(t, int64(1), FromArray(NewList(FromLong(5), FromLong(6))).ToLong())

	assert.Equal(t, 1.5, FromString("1.5xyz").ToDouble())
	assert.Equal(t, 7.0, FromLong(7).ToDouble())
	assert.Equal(t, 0.0, FromString("abc").ToDouble())
}

func TestToNumber(t *testing.T) {
	ctx, rec := newTestContext()

	n, info := FromString("42").ToNumber(ctx)
	assert.False(t, n.IsDouble())
	assert.Equal(t, int64(42), n.ToLong())
	assert.True(t, info.Has(convert.IsNumber))

	n, _ = FromString("4.5").ToNumber(ctx)
	assert.True(t, n.IsDouble())
	assert.Equal(t, 4.5, n.ToDouble())

	n, info = FromArray(NewList(Null, Null, Null)).ToNumber(ctx)
	assert.Equal(t, int64(3), n.ToLong())
	assert.True(t, info.Has(convert.IsPhpArray))

	n, _ = FromObject(NewInstance(StdClass)).ToNumber(ctx)
	assert.Equal(t, int64(1), n.ToLong())
	assert.Equal(t, 1, rec.Count(LevelNotice))
}

func TestToString(t *testing.T) {
	ctx, rec := newTestContext()
	tests := []struct {
		v    Value
		want string
	}{
		{Null, ""},
		{True, "1"},
		{False, ""},
		{FromLong(-12), "-12"},
		{FromDouble(0.1 + 0.2), "0.3"},
		{FromDouble(1e25), "1.0E+25"},
		{FromDouble(math.Copysign(0, -1)), "-0"},
		{FromDouble(math.Inf(-1)), "-INF"},
		{FromString("abc"), "abc"},
		{FromBlob(NewBlobString("blob")), "blob"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.v.ToString(ctx))
	}
	assert.Equal(t, 0, rec.Count(LevelWarning))

	assert.Equal(t, "Array", FromArray(NewArray()).ToString(ctx))
	assert.Equal(t, 1, rec.Count(LevelWarning))
}

func TestToStringPrecision(t *testing.T) {
	ctx, _ := newTestContext()
	ctx.Precision = 17
	assert.Equal(t, "0.30000000000000004", FromDouble(0.30000000000000004).ToString(ctx))
}

func TestToKey(t *testing.T) {
	ctx, rec := newTestContext()
	tests := []struct {
		v    Value
		want Key
	}{
		{Null, StringKey("")},
		{True, IntKey(1)},
		{FromLong(7), IntKey(7)},
		{FromDouble(2.0), IntKey(2)},
		{FromString("8"), IntKey(8)},
		{FromString("08"), StringKey("08")},
		{FromString("-0"), StringKey("-0")},
		{FromString("1.5"), StringKey("1.5")},
	}
	for _, tt := range tests {
		k, ok := tt.v.ToKey(ctx)
		require.True(t, ok)
		assert.Equal(t, tt.want, k, "ToKey(%v)", tt.v)
	}
	assert.Empty(t, rec.Reports())

	k, ok := FromDouble(1.5).ToKey(ctx)
	require.True(t, ok)
	assert.Equal(t, IntKey(1), k)
	assert.Equal(t, 1, rec.Count(LevelDeprecated))

	_, ok = FromArray(NewArray()).ToKey(ctx)
	assert.False(t, ok)
	assert.Equal(t, 1, rec.Count(LevelWarning))
}

func TestToArrayAndClass(t *testing.T) {
	a := Null.ToArray()
	assert.Equal(t, 0, a.Count())

	a = FromLong(5).ToArray()
	v, ok := a.Get(IntKey(0))
	require.True(t, ok)
	assert.Equal(t, int64(5), v.Long())

	o := FromArray(NewList(FromString("x"))).ToClass()
	assert.Equal(t, StdClass, o.Class())
	assert.Equal(t, 1, o.Properties().Count())

	o = FromLong(3).ToClass()
	assert.Equal(t, int64(3), o.(*Instance).Get("scalar").Long())

	inst := NewInstance(StdClass)
	inst.Set("p", FromLong(1))
	props := FromObject(inst).ToArray()
	props.Set(StringKey("p"), FromLong(2))
	assert.Equal(t, int64(1), inst.Get("p").Long())
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "NULL", Null.TypeName())
	assert.Equal(t, "boolean", True.TypeName())
	assert.Equal(t, "integer", FromLong(1).TypeName())
	assert.Equal(t, "double", FromDouble(1).TypeName())
	assert.Equal(t, "string", FromString("").TypeName())
	assert.Equal(t, "string", FromBlob(NewBlob()).TypeName())
	assert.Equal(t, "array", FromArray(NewArray()).TypeName())
	assert.Equal(t, "object", FromObject(NewInstance(StdClass)).TypeName())
	assert.Equal(t, "integer", FromAlias(NewAlias(FromLong(1))).TypeName())
}

// ---------------------------------------------------------------------------
// References and copies
// ---------------------------------------------------------------------------

func TestAliasAssignWritesThrough(t *testing.T) {
	v := FromLong(1)
	r := v.EnsureAlias()
	w := FromAlias(r)

	w.Assign(FromLong(2))
	assert.Equal(t, int64(2), v.GetValue().Long())
	assert.Same(t, r, v.EnsureAlias())
}

func TestAliasNeverWrapsAlias(t *testing.T) {
	inner := NewAlias(FromLong(1))
	outer := NewAlias(FromAlias(inner))
	assert.Equal(t, KindLong, outer.Get().Kind())

	outer.Set(FromAlias(inner))
	assert.Equal(t, KindLong, outer.Get().Kind())
}

func TestDeepCopyIsolatesArrays(t *testing.T) {
	v := FromArray(NewList(FromLong(1)))
	w := v.DeepCopy()

	_, err := w.Array().Append(FromLong(2))
	require.NoError(t, err)
	assert.Equal(t, 1, v.Array().Count())
	assert.Equal(t, 2, w.Array().Count())
}

func TestDeepCopyComparesEqual(t *testing.T) {
	ctx, rec := newTestContext()
	nested := NewArray()
	nested.Set(StringKey("inner"), FromArray(NewList(FromLong(1), FromString("two"))))
	nested.Set(IntKey(5), FromBlob(NewBlobString("blob")))
	o := NewInstance(StdClass)
	o.Set("p", FromDouble(2.5))

	for _, v := range []Value{
		Null, True, FromLong(-3), FromDouble(1.25), FromString("s"),
		FromBlob(NewBlobString("b")), FromArray(nested), FromObject(o),
		FromAlias(NewAlias(FromLong(9))),
	} {
		w := v.DeepCopy()
		assert.Equal(t, 0, w.Compare(ctx, v), v.TypeName())
		assert.Equal(t, 0, v.Compare(ctx, w), v.TypeName())
		assert.True(t, w.StrictEquals(ctx, v), v.TypeName())
	}

	separated := FromArray(nested).DeepCopy()
	separated.Array().Set(IntKey(5), FromBlob(NewBlobString("blob")))
	assert.NotSame(t, nested.table, separated.Array().table)
	assert.Equal(t, 0, separated.Compare(ctx, FromArray(nested)))
	assert.True(t, separated.StrictEquals(ctx, FromArray(nested)))
	assert.Empty(t, rec.Reports())
}

func TestMutableBlobCopyOnWrite(t *testing.T) {
	v := FromBlob(NewBlobString("ab"))
	w := v.DeepCopy()

	w.MutableBlob(nil).Append("c")
	assert.Equal(t, "ab", v.ToString(nil))
	assert.Equal(t, "abc", w.ToString(nil))

	s := FromString("x")
	s.MutableBlob(nil).Append("y")
	assert.Equal(t, KindMutableString, s.Kind())
	assert.Equal(t, "xy", s.ToString(nil))
}

func TestAccessorPanics(t *testing.T) {
	assert.Panics(t, func() { FromString("x").Long() })
	assert.Panics(t, func() { Null.Array() })
	assert.NotPanics(t, func() { FromLong(1).Long() })
}
