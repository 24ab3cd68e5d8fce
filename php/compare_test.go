package php

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLooseCompareMatrix(t *testing.T) {
	ctx, _ := newTestContext()
	tests := []struct {
		x, y Value
		want int
	}{
		{Null, Null, 0},
		{Null, False, 0},
		{Null, True, -1},
		{Null, FromLong(0), 0},
		{Null, FromLong(-1), -1},
		{FromLong(-1), Null, 1},
		{FromDouble(0.5), Null, 1},
		{Null, FromString(""), 0},
		{Null, FromString("a"), -1},
		{Null, FromArray(NewArray()), 0},
		{FromArray(NewArray()), False, 0},
		{False, FromArray(NewArray()), 0},
		{FromArray(NewList(FromLong(0))), True, 0},
		{True, FromString("a"), 0},
		{False, FromString("0"), 0},
		{FromLong(1), FromString("1"), 0},
		{FromLong(1), FromString("01"), 0},
		{FromLong(10), FromString("9"), 1},
		{FromString("abc"), FromLong(0), 0},
		{FromLong(5), FromDouble(5.0), 0},
		{FromDouble(1.5), FromLong(2), -1},
		{FromString("1e3"), FromString("1000"), 0},
		{FromString("10"), FromString("9"), 1},
		{FromString("10"), FromString("9a"), -1},
		{FromString("1 "), FromString("1"), 0},
		{FromString("abc"), FromString("abd"), -1},
		{FromBlob(NewBlobString("x")), FromString("x"), 0},
		{FromArray(longList(1)), FromLong(5), 1},
		{FromLong(5), FromArray(longList(1)), -1},
		{FromArray(NewArray()), FromObject(NewInstance(StdClass)), -1},
		{FromObject(NewInstance(StdClass)), FromArray(NewArray()), 1},
		{FromObject(NewInstance(StdClass)), Null, 1},
		{FromAlias(NewAlias(FromLong(3))), FromLong(3), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Compare(ctx, tt.x, tt.y), "%s(%v) <=> %s(%v)",
			tt.x.TypeName(), tt.x, tt.y.TypeName(), tt.y)
	}
}

func TestNaNIsUnordered(t *testing.T) {
	ctx, _ := newTestContext()
	nan := FromDouble(math.NaN())
	assert.Equal(t, 1, Compare(ctx, nan, FromDouble(0)))
	assert.Equal(t, 1, Compare(ctx, FromDouble(0), nan))
	assert.False(t, LooseEquals(ctx, nan, nan))
}

func TestStrictEquals(t *testing.T) {
	assert.True(t, StrictEquals(nil, FromLong(1), FromLong(1)))
	assert.False(t, StrictEquals(nil, FromLong(1), FromDouble(1)))
	assert.False(t, StrictEquals(nil, FromLong(1), FromString("1")))
	assert.True(t, StrictEquals(nil, FromString("a"), FromBlob(NewBlobString("a"))))
	assert.True(t, StrictEquals(nil, Null, Null))
	assert.False(t, StrictEquals(nil, Null, False))
	assert.True(t, StrictEquals(nil, FromAlias(NewAlias(True)), True))

	o := NewInstance(StdClass)
	assert.True(t, FromObject(o).StrictEquals(nil, FromObject(o)))
	assert.False(t, FromObject(o).StrictEquals(nil, FromObject(NewInstance(StdClass))))
}

func TestCompareObjects(t *testing.T) {
	ctx, rec := newTestContext()
	point := NewClass("Point", nil, "x", "y")

	p1, p2 := NewInstance(point), NewInstance(point)
	p1.Set("x", FromLong(1))
	p2.Set("x", FromLong(2))
	assert.Equal(t, -1, Compare(ctx, FromObject(p1), FromObject(p2)))
	assert.Equal(t, 0, Compare(ctx, FromObject(p1), FromObject(p1)))

	p2.Set("x", FromLong(1))
	assert.True(t, LooseEquals(ctx, FromObject(p1), FromObject(p2)))
	assert.False(t, StrictEquals(nil, FromObject(p1), FromObject(p2)))

	other := NewInstance(NewClass("Other", nil, "x", "y"))
	assert.Equal(t, Incomparable, Compare(ctx, FromObject(p1), FromObject(other)))
	assert.Equal(t, 1, rec.Count(LevelWarning))

	point3 := NewInstance(NewClass("Point3", point, "z"))
	assert.Equal(t, 1, Compare(ctx, FromObject(point3), FromObject(p1)))
	assert.Equal(t, -1, Compare(ctx, FromObject(p1), FromObject(point3)))
}

type money struct {
	*Instance
	cents int64
}

func (m *money) ToNumber() (Number, bool) {
	return LongNumber(m.cents), true
}

type label struct {
	*Instance
	text string
}

func (l *label) ToPhpString(*Context) string {
	return l.text
}

type version struct {
	*Instance
	n int
}

func (v *version) CompareObject(_ *Context, other Value) (int, bool) {
	o, ok := other.Object().(*version)
	if !ok {
		return 0, false
	}
	return cmpInt(v.n, o.n), true
}

func TestObjectConversionHooks(t *testing.T) {
	ctx, rec := newTestContext()

	m := &money{Instance: NewInstance(StdClass), cents: 5}
	assert.Equal(t, 0, Compare(ctx, FromLong(5), FromObject(m)))
	assert.Equal(t, -1, Compare(ctx, FromObject(m), FromDouble(5.5)))

	l := &label{Instance: NewInstance(StdClass), text: "bob"}
	assert.Equal(t, "bob", FromObject(l).ToString(ctx))
	assert.Equal(t, 0, Compare(ctx, FromString("bob"), FromObject(l)))
	assert.Equal(t, 1, Compare(ctx, FromObject(l), FromString("alice")))

	assert.Empty(t, rec.Reports())

	assert.Equal(t, "stdClass", FromObject(NewInstance(StdClass)).ToString(ctx))
	assert.Equal(t, 1, rec.Count(LevelWarning))
}

func TestObjectComparer(t *testing.T) {
	ctx, _ := newTestContext()
	cls := NewClass("Version", nil)
	v1 := &version{Instance: NewInstance(cls), n: 1}
	v2 := &version{Instance: NewInstance(cls), n: 2}
	assert.Equal(t, -1, Compare(ctx, FromObject(v1), FromObject(v2)))
	assert.Equal(t, 1, Compare(ctx, FromObject(v2), FromObject(v1)))
}

func TestCompareStrings(t *testing.T) {
	assert.Equal(t, 0, CompareStrings("1.0", "1"))
	assert.Equal(t, -1, CompareStrings("2", "10"))
	assert.Equal(t, 1, CompareStrings("2a", "10"))
	assert.Equal(t, 0, CompareStrings("0x1A", "0x1A"))
}

// ---------------------------------------------------------------------------
// Natural order
// ---------------------------------------------------------------------------

func TestNaturalCompare(t *testing.T) {
	tests := []struct {
		a, b string
		ci   bool
		want int
	}{
		{"img12", "img10", false, 1},
		{"img2", "img10", false, -1},
		{"0001", "1", false, 0},
		{"1.5", "1.10", false, -1},
		{"a 1", "a  1", false, 0},
		{"", "a", false, -1},
		{"a", "", false, 1},
		{"", "", false, 0},
		{"abc", "ABC", false, 1},
		{"abc", "ABC", true, 0},
		{"x01", "x1", false, -1},
		{"same", "same", false, 0},
		{"file", "file1", false, -1},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, NaturalCompare(tt.a, tt.b, tt.ci), "NaturalCompare(%q, %q, %t)", tt.a, tt.b, tt.ci)
	}
}

// ---------------------------------------------------------------------------
// Comparers
// ---------------------------------------------------------------------------

func TestComparers(t *testing.T) {
	ctx, _ := newTestContext()

	assert.Equal(t, -1, NumericComparer{Ctx: ctx}.Compare(FromString("9"), FromString("10")))
	assert.Equal(t, 1, StringComparer{Ctx: ctx}.Compare(FromString("9"), FromString("10")))
	assert.Equal(t, 1, StringComparer{Ctx: ctx}.Compare(FromString("a"), FromString("B")))
	assert.Equal(t, -1, StringComparer{Ctx: ctx, CaseInsensitive: true}.Compare(FromString("a"), FromString("B")))
	assert.Equal(t, 0, StringComparer{Ctx: ctx, CaseInsensitive: true}.Compare(FromString("Straße"), FromString("STRASSE")))
	assert.Equal(t, -1, KeyComparer{}.Compare(FromLong(2), FromLong(10)))
	assert.Equal(t, 1, KeyComparer{}.Compare(FromLong(2), FromString("10")))

	r := Reverse(DefaultComparer{Ctx: ctx})
	assert.Equal(t, 1, r.Compare(FromLong(1), FromLong(2)))
	assert.IsType(t, DefaultComparer{}, Reverse(r))
}

func TestUserComparer(t *testing.T) {
	ctx, _ := newTestContext()
	spaceship := UserComparer{Ctx: ctx, Func: func(x, y Value) Value {
		return FromDouble(float64(x.Long()-y.Long()) * 0.5)
	}}
	assert.Equal(t, -1, spaceship.Compare(FromLong(1), FromLong(2)))
	assert.Equal(t, 0, spaceship.Compare(FromLong(2), FromLong(2)))

	greater := UserComparer{Ctx: ctx, Func: func(x, y Value) Value {
		return FromBool(x.Long() > y.Long())
	}}
	assert.Equal(t, 1, greater.Compare(FromLong(3), FromLong(2)))
	assert.Equal(t, 0, greater.Compare(FromLong(1), FromLong(2)))

	a := longList(3, 1, 2)
	a.SortValues(spaceship, false)
	assert.Equal(t, []int64{1, 2, 3}, arrayLongs(a))
}

func TestComparerForFlags(t *testing.T) {
	ctx, _ := newTestContext()
	assert.IsType(t, DefaultComparer{}, ComparerForFlags(ctx, SortRegular))
	assert.IsType(t, NumericComparer{}, ComparerForFlags(ctx, SortNumeric))
	assert.Equal(t, StringComparer{Ctx: ctx, CaseInsensitive: true}, ComparerForFlags(ctx, SortString|SortFlagCase))
	assert.Equal(t, NaturalComparer{Ctx: ctx}, ComparerForFlags(ctx, SortNatural))
	assert.IsType(t, &LocaleComparer{}, ComparerForFlags(ctx, SortLocaleString))
}

func TestLookupComparer(t *testing.T) {
	ctx, _ := newTestContext()
	for _, name := range []string{"regular", "default", "numeric", "string", "STRING_CI", "locale_string", "natural", "natural_ci", "key"} {
		c, ok := LookupComparer(ctx, name)
		assert.True(t, ok, name)
		assert.NotNil(t, c, name)
	}
	_, ok := LookupComparer(ctx, "bogus")
	assert.False(t, ok)
}

func TestLocaleComparer(t *testing.T) {
	ctx, _ := newTestContext()

	c, err := NewLocaleComparer(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, -1, c.Compare(FromString("a"), FromString("B")))
	assert.Equal(t, -1, c.Compare(FromString("e"), FromString("é")))

	ci, err := NewLocaleComparer(ctx, "fr-FR", LocaleIgnoreCase, LocaleIgnoreDiacritics)
	require.NoError(t, err)
	assert.Equal(t, 0, ci.Compare(FromString("a"), FromString("A")))
	assert.Equal(t, 0, ci.Compare(FromString("e"), FromString("É")))

	num, err := NewLocaleComparer(ctx, "en", LocaleNumeric)
	require.NoError(t, err)
	assert.Equal(t, -1, num.Compare(FromString("2"), FromString("10")))

	_, err = NewLocaleComparer(ctx, "not a locale!")
	assert.Error(t, err)
}
