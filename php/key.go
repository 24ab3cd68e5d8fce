package php

import (
	"strconv"
	"strings"

	"github.com/zeebo/xxh3"

	"github.com/chazu/phpcore/convert"
)

// Key is an array key: an int64 or a string. Two keys are equal when
// they are the same integer or the same string; Key values can be
// compared with ==.
type Key struct {
	s     string
	i     int64
	isStr bool
}

// IntKey creates an integer key.
func IntKey(i int64) Key {
	return Key{i: i}
}

// StringKey creates a string key without canonicalization.
func StringKey(s string) Key {
	return Key{s: s, isStr: true}
}

// KeyFromString creates the key PHP uses for the string index s:
// canonical decimal integers become integer keys.
func KeyFromString(s string) Key {
	if i, ok := convert.StringToArrayKey(s); ok {
		return IntKey(i)
	}
	return StringKey(s)
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return !k.isStr }

// IsString reports whether k is a string key.
func (k Key) IsString() bool { return k.isStr }

// Int returns the integer of an integer key.
func (k Key) Int() int64 { return k.i }

// Str returns the string of a string key.
func (k Key) Str() string { return k.s }

// String returns the key as PHP would print it.
func (k Key) String() string {
	if k.isStr {
		return k.s
	}
	return strconv.FormatInt(k.i, 10)
}

// ToValue returns k as a long or string Value.
func (k Key) ToValue() Value {
	if k.isStr {
		return FromString(k.s)
	}
	return FromLong(k.i)
}

func (k Key) hash() uint64 {
	if k.isStr {
		return xxh3.HashString(k.s)
	}
	return uint64(k.i)
}

// CompareKeys orders keys: integers numerically, strings ordinally, and
// an integer against a string by comparing their decimal text.
func CompareKeys(a, b Key) int {
	if !a.isStr && !b.isStr {
		return cmpInt(a.i, b.i)
	}
	return strings.Compare(a.String(), b.String())
}
