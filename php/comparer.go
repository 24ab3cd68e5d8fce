package php

import (
	"strings"

	"golang.org/x/text/cases"
)

// Comparer is a total order over values used by sorts and set
// operations. Compare returns a negative number, zero or a positive
// number.
type Comparer interface {
	Compare(x, y Value) int
}

// ComparerFunc adapts a function to Comparer.
type ComparerFunc func(x, y Value) int

// Compare implements Comparer.
func (f ComparerFunc) Compare(x, y Value) int { return f(x, y) }

// DefaultComparer uses loose comparison (SORT_REGULAR).
type DefaultComparer struct {
	Ctx *Context
}

func (c DefaultComparer) Compare(x, y Value) int {
	return Compare(c.Ctx, x, y)
}

// NumericComparer converts both sides to numbers (SORT_NUMERIC).
type NumericComparer struct {
	Ctx *Context
}

func (c NumericComparer) Compare(x, y Value) int {
	nx, _ := x.ToNumber(c.Ctx)
	ny, _ := y.ToNumber(c.Ctx)
	return nx.Compare(ny)
}

// StringComparer compares string conversions byte by byte
// (SORT_STRING). CaseInsensitive folds case first (SORT_FLAG_CASE).
type StringComparer struct {
	Ctx             *Context
	CaseInsensitive bool
}

func (c StringComparer) Compare(x, y Value) int {
	a, b := x.ToString(c.Ctx), y.ToString(c.Ctx)
	if c.CaseInsensitive {
		a, b = foldCase(a), foldCase(b)
	}
	return strings.Compare(a, b)
}

func foldCase(s string) string {
	return cases.Fold().String(s)
}

// KeyComparer orders key-like values: integers numerically, strings
// ordinally, an integer against a string as strings.
type KeyComparer struct{}

func (KeyComparer) Compare(x, y Value) int {
	return CompareKeys(keyOf(x), keyOf(y))
}

func keyOf(v Value) Key {
	v = v.GetValue()
	switch v.kind {
	case KindLong:
		return IntKey(int64(v.n))
	case KindString:
		return StringKey(v.ref.(string))
	}
	k, ok := v.ToKey(nil)
	if !ok {
		return StringKey(v.TypeName())
	}
	return k
}

// NaturalComparer orders strings in natural order (SORT_NATURAL).
type NaturalComparer struct {
	Ctx             *Context
	CaseInsensitive bool
}

func (c NaturalComparer) Compare(x, y Value) int {
	return NaturalCompare(x.ToString(c.Ctx), y.ToString(c.Ctx), c.CaseInsensitive)
}

// UserComparer calls a user callback and uses the sign of its numeric
// result.
type UserComparer struct {
	Ctx  *Context
	Func func(x, y Value) Value
}

func (c UserComparer) Compare(x, y Value) int {
	r := c.Func(x, y)
	if r.GetValue().kind == KindBool {
		// Legacy callbacks return a boolean "greater than".
		if r.GetValue().n != 0 {
			return 1
		}
		return 0
	}
	n, _ := r.ToNumber(c.Ctx)
	return n.Sign()
}

type reversed struct {
	c Comparer
}

func (r reversed) Compare(x, y Value) int {
	return r.c.Compare(y, x)
}

// Reverse returns a comparer with the opposite order.
func Reverse(c Comparer) Comparer {
	if r, ok := c.(reversed); ok {
		return r.c
	}
	return reversed{c: c}
}

// ---------------------------------------------------------------------------
// Entry comparers
// ---------------------------------------------------------------------------

// EntryComparer orders Dictionary entries.
type EntryComparer interface {
	CompareEntries(x, y Entry) int
}

// EntryComparerFunc adapts a function to EntryComparer.
type EntryComparerFunc func(x, y Entry) int

// CompareEntries implements EntryComparer.
func (f EntryComparerFunc) CompareEntries(x, y Entry) int { return f(x, y) }

// ByValue orders entries by value.
func ByValue(c Comparer) EntryComparer {
	return EntryComparerFunc(func(x, y Entry) int {
		return c.Compare(x.Value, y.Value)
	})
}

// ByKey orders entries by key. Keys reach c as long or string values.
func ByKey(c Comparer) EntryComparer {
	return EntryComparerFunc(func(x, y Entry) int {
		return c.Compare(x.Key.ToValue(), y.Key.ToValue())
	})
}

// ByKeyThenValue orders entries by key and breaks ties by value.
func ByKeyThenValue(kc, vc Comparer) EntryComparer {
	return EntryComparerFunc(func(x, y Entry) int {
		if c := kc.Compare(x.Key.ToValue(), y.Key.ToValue()); c != 0 {
			return c
		}
		return vc.Compare(x.Value, y.Value)
	})
}

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

// SortFlag holds PHP's SORT_* constants.
type SortFlag int

const (
	SortRegular      SortFlag = 0
	SortNumeric      SortFlag = 1
	SortString       SortFlag = 2
	SortLocaleString SortFlag = 5
	SortNatural      SortFlag = 6
	SortFlagCase     SortFlag = 8
)

// ComparerForFlags returns the comparer PHP sort functions use for
// flags.
func ComparerForFlags(ctx *Context, flags SortFlag) Comparer {
	ci := flags&SortFlagCase != 0
	switch flags &^ SortFlagCase {
	case SortNumeric:
		return NumericComparer{Ctx: ctx}
	case SortString:
		return StringComparer{Ctx: ctx, CaseInsensitive: ci}
	case SortLocaleString:
		if lc, err := NewLocaleComparer(ctx, ""); err == nil {
			return lc
		}
		return StringComparer{Ctx: ctx}
	case SortNatural:
		return NaturalComparer{Ctx: ctx, CaseInsensitive: ci}
	}
	return DefaultComparer{Ctx: ctx}
}

// LookupComparer returns a comparer by name: regular, numeric, string,
// string_ci, locale_string, natural, natural_ci or key.
func LookupComparer(ctx *Context, name string) (Comparer, bool) {
	switch strings.ToLower(name) {
	case "regular", "default":
		return DefaultComparer{Ctx: ctx}, true
	case "numeric":
		return NumericComparer{Ctx: ctx}, true
	case "string":
		return StringComparer{Ctx: ctx}, true
	case "string_ci":
		return StringComparer{Ctx: ctx, CaseInsensitive: true}, true
	case "locale_string":
		lc, err := NewLocaleComparer(ctx, "")
		if err != nil {
			return nil, false
		}
		return lc, true
	case "natural":
		return NaturalComparer{Ctx: ctx}, true
	case "natural_ci":
		return NaturalComparer{Ctx: ctx, CaseInsensitive: true}, true
	case "key":
		return KeyComparer{}, true
	}
	return nil, false
}
