package php

import (
	"math"
)

// Kind identifies the variant held by a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindLong
	KindDouble
	KindString
	KindMutableString
	KindArray
	KindObject
	KindAlias

	kindCount

	// kindInvalid marks a deleted dictionary slot. It never escapes the
	// package.
	kindInvalid Kind = 0xff
)

var kindNames = [kindCount]string{
	KindNull:          "null",
	KindBool:          "bool",
	KindLong:          "long",
	KindDouble:        "double",
	KindString:        "string",
	KindMutableString: "mutable-string",
	KindArray:         "array",
	KindObject:        "object",
	KindAlias:         "alias",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "invalid"
}

// Value is a PHP value.
//
// A Value is one scalar word plus one reference word. Scalars (bool,
// long, double) live in n; strings, blobs, arrays, objects and aliases
// live in ref. The zero Value is NULL.
//
// Values are copied by assignment. Arrays and blobs are copy-on-write
// handles, so a plain Go copy of a Value shares them; use DeepCopy when
// PHP assignment semantics are wanted.
type Value struct {
	kind Kind
	n    uint64
	ref  any
}

// Pre-defined values.
var (
	Null  = Value{}
	True  = Value{kind: KindBool, n: 1}
	False = Value{kind: KindBool}

	invalidValue = Value{kind: kindInvalid}
)

// ---------------------------------------------------------------------------
// Construction
// ---------------------------------------------------------------------------

// FromBool creates a Value from a bool.
func FromBool(b bool) Value {
	if b {
		return True
	}
	return False
}

// FromLong creates an integer Value.
func FromLong(l int64) Value {
	return Value{kind: KindLong, n: uint64(l)}
}

// FromInt creates an integer Value from an int.
func FromInt(i int) Value {
	return FromLong(int64(i))
}

// FromDouble creates a float Value.
func FromDouble(d float64) Value {
	return Value{kind: KindDouble, n: math.Float64bits(d)}
}

// FromString creates an immutable string Value.
func FromString(s string) Value {
	return Value{kind: KindString, ref: s}
}

// FromBlob creates a mutable string Value. The blob is not retained;
// callers hand over their reference.
func FromBlob(b *Blob) Value {
	if b == nil {
		return Null
	}
	return Value{kind: KindMutableString, ref: b}
}

// FromArray creates an array Value wrapping a.
func FromArray(a *Array) Value {
	if a == nil {
		return Null
	}
	return Value{kind: KindArray, ref: a}
}

// FromObject creates an object Value.
func FromObject(o Object) Value {
	if o == nil {
		return Null
	}
	return Value{kind: KindObject, ref: o}
}

// FromAlias creates a Value holding a reference.
func FromAlias(a *Alias) Value {
	if a == nil {
		return Null
	}
	return Value{kind: KindAlias, ref: a}
}

// FromNumber creates a long or double Value.
func FromNumber(n Number) Value {
	if n.isDouble {
		return FromDouble(n.d)
	}
	return FromLong(n.l)
}

// ---------------------------------------------------------------------------
// Type checking
// ---------------------------------------------------------------------------

// Kind returns the variant tag of v. Aliases report KindAlias; use
// GetValue first to inspect the pointee.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull returns true if v is NULL.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// IsBool returns true if v is a boolean.
func (v Value) IsBool() bool {
	return v.kind == KindBool
}

// IsLong returns true if v is an integer.
func (v Value) IsLong() bool {
	return v.kind == KindLong
}

// IsDouble returns true if v is a float.
func (v Value) IsDouble() bool {
	return v.kind == KindDouble
}

// IsString returns true for both immutable and mutable strings.
func (v Value) IsString() bool {
	return v.kind == KindString || v.kind == KindMutableString
}

// IsArray returns true if v is an array.
func (v Value) IsArray() bool {
	return v.kind == KindArray
}

// IsObject returns true if v is an object.
func (v Value) IsObject() bool {
	return v.kind == KindObject
}

// IsAlias returns true if v is a reference.
func (v Value) IsAlias() bool {
	return v.kind == KindAlias
}

func (v Value) isValid() bool {
	return v.kind != kindInvalid
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

// Bool returns the boolean payload.
// Panics if v is not a boolean.
func (v Value) Bool() bool {
	if v.kind != KindBool {
		panic("Value.Bool: not a boolean")
	}
	return v.n != 0
}

// Long returns the integer payload.
// Panics if v is not an integer.
func (v Value) Long() int64 {
	if v.kind != KindLong {
		panic("Value.Long: not an integer")
	}
	return int64(v.n)
}

// Double returns the float payload.
// Panics if v is not a float.
func (v Value) Double() float64 {
	if v.kind != KindDouble {
		panic("Value.Double: not a float")
	}
	return math.Float64frombits(v.n)
}

// Str returns the immutable string payload.
// Panics if v is not an immutable string.
func (v Value) Str() string {
	if v.kind != KindString {
		panic("Value.Str: not a string")
	}
	return v.ref.(string)
}

// Blob returns the mutable string payload.
// Panics if v is not a mutable string.
func (v Value) Blob() *Blob {
	if v.kind != KindMutableString {
		panic("Value.Blob: not a mutable string")
	}
	return v.ref.(*Blob)
}

// Array returns the array payload.
// Panics if v is not an array.
func (v Value) Array() *Array {
	if v.kind != KindArray {
		panic("Value.Array: not an array")
	}
	return v.ref.(*Array)
}

// Object returns the object payload.
// Panics if v is not an object.
func (v Value) Object() Object {
	if v.kind != KindObject {
		panic("Value.Object: not an object")
	}
	return v.ref.(Object)
}

// Alias returns the reference payload.
// Panics if v is not a reference.
func (v Value) Alias() *Alias {
	if v.kind != KindAlias {
		panic("Value.Alias: not a reference")
	}
	return v.ref.(*Alias)
}

// AsArray returns the array behind v, dereferencing an alias.
func (v Value) AsArray() (*Array, bool) {
	v = v.GetValue()
	if v.kind == KindArray {
		return v.ref.(*Array), true
	}
	return nil, false
}

// AsObject returns the object behind v, dereferencing an alias.
func (v Value) AsObject() (Object, bool) {
	v = v.GetValue()
	if v.kind == KindObject {
		return v.ref.(Object), true
	}
	return nil, false
}

// ---------------------------------------------------------------------------
// References and copies
// ---------------------------------------------------------------------------

// GetValue dereferences an alias. The result is never an alias.
func (v Value) GetValue() Value {
	if v.kind == KindAlias {
		return v.ref.(*Alias).value
	}
	return v
}

// DeepCopy returns the value PHP assignment would store. Scalars and
// objects are returned unchanged; arrays and blobs get a new shared
// handle and are duplicated lazily on first write. Aliases are
// dereferenced.
func (v Value) DeepCopy() Value {
	v = v.GetValue()
	return tableOf(v.kind).deepCopy(v)
}

// copyForStore is DeepCopy that keeps aliases, used when a slot takes
// ownership of a value.
func (v Value) copyForStore() Value {
	if v.kind == KindAlias {
		return v
	}
	return tableOf(v.kind).deepCopy(v)
}

// Assign stores nv into the variable v. When v holds an alias the
// pointee is updated and every holder of the alias observes the change.
func (v *Value) Assign(nv Value) {
	nv = nv.DeepCopy()
	if v.kind == KindAlias {
		v.ref.(*Alias).value = nv
		return
	}
	*v = nv
}

// EnsureAlias turns the variable v into a reference (if it is not one
// already) and returns it.
func (v *Value) EnsureAlias() *Alias {
	if v.kind == KindAlias {
		return v.ref.(*Alias)
	}
	a := &Alias{value: *v}
	*v = FromAlias(a)
	return a
}

// MutableBlob returns a blob that may be written in place. A string is
// converted to a blob and a shared blob is cloned; v is rebound to the
// result. Non-string values are converted with ToString first.
func (v *Value) MutableBlob(ctx *Context) *Blob {
	if v.kind == KindAlias {
		return v.ref.(*Alias).ptr().MutableBlob(ctx)
	}
	switch v.kind {
	case KindMutableString:
		b := v.ref.(*Blob)
		if b.IsShared() {
			b = b.ReleaseOne()
			v.ref = b
		}
		return b
	case KindString:
		b := NewBlobString(v.ref.(string))
		*v = FromBlob(b)
		return b
	default:
		b := NewBlobString(v.ToString(ctx))
		*v = FromBlob(b)
		return b
	}
}

// String implements fmt.Stringer using the default context.
func (v Value) String() string {
	if !v.isValid() {
		return "<invalid>"
	}
	return v.ToString(nil)
}
