package php

import (
	"iter"
	"math"
	"math/bits"
	"sync/atomic"
)

const minCapacity = 8

// bucket is one slot of a Dictionary. A bucket whose value has kind
// kindInvalid is a tombstone: its key is gone but the slot keeps its
// position until the table is compacted.
type bucket struct {
	key   Key
	value Value
	next  int32
}

func (b *bucket) live() bool {
	return b.value.kind != kindInvalid
}

// Entry is a key and value pair handed to entry comparers and iterators.
type Entry struct {
	Key   Key
	Value Value
}

// Dictionary is the ordered associative table behind a PHP array.
//
// Buckets are kept in insertion order in a slice whose capacity is a
// power of two. While every bucket i holds the integer key i the table
// is packed and has no hash index; lookups index the slice directly.
// Any operation that breaks this builds the hash index (chain heads
// masked by capacity-1) without moving buckets.
//
// A Dictionary may be shared by several Arrays. refs counts the extra
// holders; writers go through Array, which clones a shared table first.
type Dictionary struct {
	refs      atomic.Int32
	buckets   []bucket
	hash      []int32
	mask      uint64
	deleted   int
	maxIntKey int64
}

// NewDictionary creates an empty packed table.
func NewDictionary() *Dictionary {
	return NewDictionaryCapacity(0)
}

// NewDictionaryCapacity creates an empty packed table with room for n
// entries.
func NewDictionaryCapacity(n int) *Dictionary {
	return &Dictionary{
		buckets:   make([]bucket, 0, roundCapacity(n)),
		maxIntKey: -1,
	}
}

func roundCapacity(n int) int {
	if n <= minCapacity {
		return minCapacity
	}
	return 1 << bits.Len(uint(n-1))
}

// ---------------------------------------------------------------------------
// Inspection
// ---------------------------------------------------------------------------

// Count returns the number of live entries.
func (d *Dictionary) Count() int {
	return len(d.buckets) - d.deleted
}

// Capacity returns the number of slots allocated.
func (d *Dictionary) Capacity() int {
	return cap(d.buckets)
}

// IsPacked reports whether the table is in packed mode.
func (d *Dictionary) IsPacked() bool {
	return d.hash == nil
}

// MaxIntKey returns the largest integer key ever inserted, or -1.
// Append uses MaxIntKey()+1.
func (d *Dictionary) MaxIntKey() int64 {
	return d.maxIntKey
}

// findIndex returns the bucket index of k or -1.
func (d *Dictionary) findIndex(k Key) int {
	if d.hash == nil {
		if !k.isStr && k.i >= 0 && k.i < int64(len(d.buckets)) {
			return int(k.i)
		}
		return -1
	}
	for i := d.hash[k.hash()&d.mask]; i >= 0; i = d.buckets[i].next {
		if d.buckets[i].key == k {
			return int(i)
		}
	}
	return -1
}

// Get returns the value stored under k.
func (d *Dictionary) Get(k Key) (Value, bool) {
	if i := d.findIndex(k); i >= 0 {
		return d.buckets[i].value, true
	}
	return Null, false
}

// Contains reports whether k is present.
func (d *Dictionary) Contains(k Key) bool {
	return d.findIndex(k) >= 0
}

// slot returns the storage of k for in-place updates. The pointer is
// invalidated by the next insertion.
func (d *Dictionary) slot(k Key) *Value {
	if i := d.findIndex(k); i >= 0 {
		return &d.buckets[i].value
	}
	return nil
}

// Keys returns the live keys in order.
func (d *Dictionary) Keys() []Key {
	keys := make([]Key, 0, d.Count())
	for i := range d.buckets {
		if d.buckets[i].live() {
			keys = append(keys, d.buckets[i].key)
		}
	}
	return keys
}

// Values returns the live values in order.
func (d *Dictionary) Values() []Value {
	vals := make([]Value, 0, d.Count())
	for i := range d.buckets {
		if d.buckets[i].live() {
			vals = append(vals, d.buckets[i].value)
		}
	}
	return vals
}

// All iterates the live entries in order.
func (d *Dictionary) All() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		for i := 0; i < len(d.buckets); i++ {
			b := &d.buckets[i]
			if !b.live() {
				continue
			}
			if !yield(b.key, b.value) {
				return
			}
		}
	}
}

func (d *Dictionary) entries() []Entry {
	out := make([]Entry, 0, d.Count())
	for i := range d.buckets {
		if b := &d.buckets[i]; b.live() {
			out = append(out, Entry{Key: b.key, Value: b.value})
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Mutation
// ---------------------------------------------------------------------------

// Set stores v under k, replacing an existing value in place or
// appending a new entry at the end of the order.
func (d *Dictionary) Set(k Key, v Value) {
	if i := d.findIndex(k); i >= 0 {
		d.buckets[i].value = v
		return
	}
	d.insert(k, v)
}

// Append stores v under MaxIntKey()+1.
func (d *Dictionary) Append(v Value) (Key, error) {
	if d.maxIntKey == math.MaxInt64 {
		return Key{}, ErrKeySpaceExhausted
	}
	k := IntKey(d.maxIntKey + 1)
	d.insert(k, v)
	return k, nil
}

// insert adds a new entry at the end. k must be absent.
func (d *Dictionary) insert(k Key, v Value) {
	if d.hash == nil && (k.isStr || k.i != int64(len(d.buckets))) {
		d.buildHash()
	}
	if len(d.buckets) == cap(d.buckets) {
		d.grow()
	}
	i := len(d.buckets)
	d.buckets = append(d.buckets, bucket{key: k, value: v, next: -1})
	if d.hash != nil {
		d.link(i)
	}
	if !k.isStr && k.i > d.maxIntKey {
		d.maxIntKey = k.i
	}
}

// grow makes room for one more bucket: in-place compaction when at
// least half the slots are tombstones, doubling otherwise.
func (d *Dictionary) grow() {
	if d.deleted > 0 && d.deleted >= len(d.buckets)/2 {
		d.Compact()
		return
	}
	nb := make([]bucket, len(d.buckets), cap(d.buckets)*2)
	copy(nb, d.buckets)
	d.buckets = nb
	if d.hash != nil {
		d.buildHash()
	}
}

// buildHash (re)creates the hash index over the current buckets.
func (d *Dictionary) buildHash() {
	n := cap(d.buckets)
	if len(d.hash) != n {
		d.hash = make([]int32, n)
	}
	for i := range d.hash {
		d.hash[i] = -1
	}
	d.mask = uint64(n - 1)
	for i := range d.buckets {
		if d.buckets[i].live() {
			d.link(i)
		} else {
			d.buckets[i].next = -1
		}
	}
}

func (d *Dictionary) link(i int) {
	h := d.buckets[i].key.hash() & d.mask
	d.buckets[i].next = d.hash[h]
	d.hash[h] = int32(i)
}

func (d *Dictionary) unlink(i int) {
	h := d.buckets[i].key.hash() & d.mask
	if d.hash[h] == int32(i) {
		d.hash[h] = d.buckets[i].next
		return
	}
	for j := d.hash[h]; j >= 0; j = d.buckets[j].next {
		if d.buckets[j].next == int32(i) {
			d.buckets[j].next = d.buckets[i].next
			return
		}
	}
}

// Remove deletes k and reports whether it was present.
func (d *Dictionary) Remove(k Key) bool {
	i := d.findIndex(k)
	if i < 0 {
		return false
	}
	d.removeAt(i)
	return true
}

// removeAt deletes the live bucket i. A trailing bucket is reclaimed
// along with any tombstones before it; any other becomes a tombstone.
func (d *Dictionary) removeAt(i int) {
	if d.hash != nil {
		d.unlink(i)
	}
	if i == len(d.buckets)-1 {
		d.buckets[i] = bucket{}
		d.buckets = d.buckets[:i]
		for n := len(d.buckets); n > 0 && !d.buckets[n-1].live(); n-- {
			d.buckets[n-1] = bucket{}
			d.buckets = d.buckets[:n-1]
			d.deleted--
		}
		return
	}
	if d.hash == nil {
		d.buildHash()
		d.unlink(i)
	}
	d.buckets[i] = bucket{value: invalidValue, next: -1}
	d.deleted++
}

// Prepend inserts v under k at the front of the order. An existing
// entry for k is removed first. The table leaves packed mode.
func (d *Dictionary) Prepend(k Key, v Value) {
	if i := d.findIndex(k); i >= 0 {
		d.removeAt(i)
	}
	if len(d.buckets) > 0 && !d.buckets[0].live() {
		d.buckets[0] = bucket{key: k, value: v}
		d.deleted--
		if d.hash == nil {
			d.buildHash()
		} else {
			d.link(0)
		}
	} else {
		if len(d.buckets) == cap(d.buckets) {
			d.grow()
		}
		d.buckets = append(d.buckets, bucket{})
		copy(d.buckets[1:], d.buckets[:len(d.buckets)-1])
		d.buckets[0] = bucket{key: k, value: v}
		d.buildHash()
	}
	if !k.isStr && k.i > d.maxIntKey {
		d.maxIntKey = k.i
	}
}

// PopLast removes and returns the last entry. Popping the entry that
// holds MaxIntKey lowers MaxIntKey by one so the key is reused.
func (d *Dictionary) PopLast() (Entry, bool) {
	for i := len(d.buckets) - 1; i >= 0; i-- {
		b := d.buckets[i]
		if !b.live() {
			continue
		}
		d.removeAt(i)
		if !b.key.isStr && b.key.i == d.maxIntKey {
			d.maxIntKey--
		}
		return Entry{Key: b.key, Value: b.value}, true
	}
	return Entry{}, false
}

// PopFirst removes and returns the first entry.
func (d *Dictionary) PopFirst() (Entry, bool) {
	for i := range d.buckets {
		b := d.buckets[i]
		if !b.live() {
			continue
		}
		d.removeAt(i)
		return Entry{Key: b.key, Value: b.value}, true
	}
	return Entry{}, false
}

// Clear removes every entry and returns to packed mode.
func (d *Dictionary) Clear() {
	d.buckets = make([]bucket, 0, minCapacity)
	d.hash = nil
	d.mask = 0
	d.deleted = 0
	d.maxIntKey = -1
}

// Compact drops tombstones, keeping the order of live entries. The table
// stays in hashed mode if it was hashed.
func (d *Dictionary) Compact() {
	if d.deleted == 0 {
		return
	}
	j := 0
	for i := range d.buckets {
		if d.buckets[i].live() {
			d.buckets[j] = d.buckets[i]
			j++
		}
	}
	clear(d.buckets[j:])
	d.buckets = d.buckets[:j]
	d.deleted = 0
	if d.hash != nil {
		d.buildHash()
	}
}

// ---------------------------------------------------------------------------
// Sharing
// ---------------------------------------------------------------------------

// AddRef registers another holder and returns d.
func (d *Dictionary) AddRef() *Dictionary {
	d.refs.Add(1)
	return d
}

// IsShared reports whether more than one holder references d.
func (d *Dictionary) IsShared() bool {
	return d.refs.Load() > 0
}

// Release drops one holder.
func (d *Dictionary) Release() {
	for {
		r := d.refs.Load()
		if r <= 0 || d.refs.CompareAndSwap(r, r-1) {
			return
		}
	}
}

// ReleaseOne gives owner a private clone of d and drops owner's hold
// on d. Aliases inside d that point at an array backed by d itself are
// rewritten to point at owner, so a self-reference keeps referring to
// the array that owns it.
func (d *Dictionary) ReleaseOne(owner *Array) *Dictionary {
	nd := d.clone(owner)
	d.Release()
	return nd
}

// Copy returns an unshared clone of d. Nested arrays and blobs are shared
// copy-on-write; aliases are kept.
func (d *Dictionary) Copy() *Dictionary {
	return d.clone(nil)
}

// clone copies the bucket layout exactly, tombstones included, so bucket
// positions held by enumerators and internal pointers stay meaningful.
func (d *Dictionary) clone(owner *Array) *Dictionary {
	nd := &Dictionary{
		buckets:   make([]bucket, len(d.buckets), cap(d.buckets)),
		mask:      d.mask,
		deleted:   d.deleted,
		maxIntKey: d.maxIntKey,
	}
	if d.hash != nil {
		nd.hash = make([]int32, len(d.hash))
		copy(nd.hash, d.hash)
	}
	for i := range d.buckets {
		b := d.buckets[i]
		if b.live() {
			b.value = d.cloneValue(b.value, owner)
		}
		nd.buckets[i] = b
	}
	return nd
}

func (d *Dictionary) cloneValue(v Value, owner *Array) Value {
	switch v.kind {
	case KindArray, KindMutableString:
		return tableOf(v.kind).deepCopy(v)
	case KindAlias:
		if owner == nil {
			return v
		}
		if a, ok := v.ref.(*Alias).value.ref.(*Array); ok && a.table == d {
			return FromAlias(&Alias{value: FromArray(owner)})
		}
	}
	return v
}
