package php

import (
	"iter"
	"slices"
	"sync/atomic"
)

// Array is a PHP array: a value-semantics handle over a Dictionary.
//
// Duplicate is O(1): the new handle shares the table and the first write
// through either handle clones it. An Array also carries PHP's internal
// pointer (current/next/reset) and the counter that detects cycles
// during comparison.
type Array struct {
	table     *Dictionary
	pointer   int
	comparing atomic.Int32
}

// NewArray creates an empty array.
func NewArray() *Array {
	return &Array{table: NewDictionary()}
}

// NewArrayCapacity creates an empty array with room for n entries.
func NewArrayCapacity(n int) *Array {
	return &Array{table: NewDictionaryCapacity(n)}
}

// NewList creates an array holding values under keys 0..n-1.
func NewList(values ...Value) *Array {
	a := NewArrayCapacity(len(values))
	for _, v := range values {
		_, _ = a.table.Append(v.copyForStore())
	}
	return a
}

// NewArrayFromDictionary wraps d. d must not be held by another handle.
func NewArrayFromDictionary(d *Dictionary) *Array {
	return &Array{table: d}
}

// Duplicate returns a new handle sharing a's table.
func (a *Array) Duplicate() *Array {
	return &Array{table: a.table.AddRef(), pointer: a.pointer}
}

// Release drops a's hold on its table. a must not be used afterwards.
func (a *Array) Release() {
	a.table.Release()
}

// Table returns the underlying table for reading.
func (a *Array) Table() *Dictionary {
	return a.table
}

// writable runs the write barrier: a shared table is cloned so that a
// holds a private copy.
func (a *Array) writable() *Dictionary {
	if a.table.IsShared() {
		a.table = a.table.ReleaseOne(a)
	}
	return a.table
}

// ---------------------------------------------------------------------------
// Element access
// ---------------------------------------------------------------------------

// Count returns the number of entries.
func (a *Array) Count() int {
	return a.table.Count()
}

// Get returns the value under k. Aliases are returned as stored.
func (a *Array) Get(k Key) (Value, bool) {
	return a.table.Get(k)
}

// Contains reports whether k is present.
func (a *Array) Contains(k Key) bool {
	return a.table.Contains(k)
}

// GetValue reads $a[index]. Illegal offsets and missing keys report a
// warning and yield NULL. Aliases are dereferenced.
func (a *Array) GetValue(ctx *Context, index Value) Value {
	ctx = ctxOr(ctx)
	k, ok := index.ToKey(ctx)
	if !ok {
		return Null
	}
	v, ok := a.table.Get(k)
	if !ok {
		if k.isStr {
			ctx.Warning("Undefined array key \"%s\"", k.s)
		} else {
			ctx.Warning("Undefined array key %d", k.i)
		}
		return Null
	}
	return v.GetValue()
}

// Set stores v under k with assignment semantics. Storing into a slot
// that holds an alias updates the alias target.
func (a *Array) Set(k Key, v Value) {
	d := a.writable()
	if p := d.slot(k); p != nil {
		if p.kind == KindAlias && v.kind != KindAlias {
			p.ref.(*Alias).Set(v.DeepCopy())
			return
		}
		*p = v.copyForStore()
		return
	}
	d.insert(k, v.copyForStore())
}

// SetValue performs $a[index] = v. Illegal offsets report a warning and
// leave the array unchanged.
func (a *Array) SetValue(ctx *Context, index Value, v Value) {
	k, ok := index.ToKey(ctxOr(ctx))
	if !ok {
		return
	}
	a.Set(k, v)
}

// SetAlias binds key k to the reference r ($a[k] = &$x).
func (a *Array) SetAlias(k Key, r *Alias) {
	a.writable().Set(k, FromAlias(r))
}

// Append performs $a[] = v and returns the key used.
func (a *Array) Append(v Value) (Key, error) {
	return a.writable().Append(v.copyForStore())
}

// Remove deletes k.
func (a *Array) Remove(k Key) bool {
	if !a.table.Contains(k) {
		return false
	}
	return a.writable().Remove(k)
}

// Keys returns the keys in order.
func (a *Array) Keys() []Key {
	return a.table.Keys()
}

// Values returns the values in order.
func (a *Array) Values() []Value {
	return a.table.Values()
}

// All iterates the entries in order.
func (a *Array) All() iter.Seq2[Key, Value] {
	return a.table.All()
}

// Clear removes every entry.
func (a *Array) Clear() {
	if a.table.IsShared() {
		a.table.Release()
		a.table = NewDictionary()
	} else {
		a.table.Clear()
	}
	a.pointer = 0
}

// Accept visits a.
func (a *Array) Accept(vis Visitor) {
	vis.VisitArray(a)
}

func (a *Array) sortedKeys() []Key {
	keys := a.table.Keys()
	slices.SortFunc(keys, CompareKeys)
	return keys
}

// ---------------------------------------------------------------------------
// Comparison
// ---------------------------------------------------------------------------

// LooseCompare compares a with other using ==/<=> rules.
func (a *Array) LooseCompare(ctx *Context, other *Array) int {
	return compareArrays(ctxOr(ctx), a, other)
}

// LooseEquals reports a == other.
func (a *Array) LooseEquals(ctx *Context, other *Array) bool {
	return a.LooseCompare(ctx, other) == 0
}

// StrictEquals reports a === other.
func (a *Array) StrictEquals(ctx *Context, other *Array) bool {
	return strictEqualArrays(ctxOr(ctx), a, other)
}

// ---------------------------------------------------------------------------
// Nested slots
// ---------------------------------------------------------------------------

// EnsureArray returns the array stored under k for in-place writes
// ($a[k][] = ...), creating it when the slot is missing or NULL. A slot
// holding false is converted with a Deprecated report. Any other value,
// including an empty string, is ErrIncompatibleNested. A shared nested
// array is cloned first.
func (a *Array) EnsureArray(ctx *Context, k Key) (*Array, error) {
	d := a.writable()
	p := d.slot(k)
	if p == nil {
		n := NewArray()
		d.insert(k, FromArray(n))
		return n, nil
	}
	if p.kind == KindAlias {
		p = p.ref.(*Alias).ptr()
	}
	return ensureArrayIn(ctx, p)
}

func ensureArrayIn(ctx *Context, p *Value) (*Array, error) {
	switch p.kind {
	case KindArray:
		return p.ref.(*Array), nil
	case KindNull:
	case KindBool:
		if p.n != 0 {
			return nil, ErrIncompatibleNested
		}
		ctxOr(ctx).Deprecated("Automatic conversion of false to array is deprecated")
	default:
		return nil, ErrIncompatibleNested
	}
	n := NewArray()
	*p = FromArray(n)
	return n, nil
}

// EnsureObject returns the object stored under k, creating it with
// newObject when the slot is missing or NULL.
func (a *Array) EnsureObject(k Key, newObject func() Object) (Object, error) {
	d := a.writable()
	p := d.slot(k)
	if p == nil {
		o := newObject()
		d.insert(k, FromObject(o))
		return o, nil
	}
	if p.kind == KindAlias {
		p = p.ref.(*Alias).ptr()
	}
	switch p.kind {
	case KindObject:
		return p.ref.(Object), nil
	case KindNull:
		o := newObject()
		*p = FromObject(o)
		return o, nil
	}
	return nil, ErrIncompatibleNested
}

// EnsureAlias turns the slot k into a reference and returns it
// (&$a[k]). A missing slot is created holding NULL.
func (a *Array) EnsureAlias(k Key) *Alias {
	d := a.writable()
	p := d.slot(k)
	if p == nil {
		r := &Alias{}
		d.insert(k, FromAlias(r))
		return r
	}
	return p.EnsureAlias()
}
