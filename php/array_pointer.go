package php

// The internal pointer is a bucket position. Table clones keep bucket
// positions, so the pointer survives the write barrier. A position at or
// past the last bucket is "beyond the end" and reads as false.

func (a *Array) pointerPos() int {
	return a.table.nextLive(a.pointer)
}

// Current returns the value at the internal pointer (current()).
func (a *Array) Current() (Value, bool) {
	i := a.pointerPos()
	if i >= len(a.table.buckets) {
		return Null, false
	}
	return a.table.buckets[i].value.GetValue(), true
}

// Key returns the key at the internal pointer (key()).
func (a *Array) Key() (Key, bool) {
	i := a.pointerPos()
	if i >= len(a.table.buckets) {
		return Key{}, false
	}
	return a.table.buckets[i].key, true
}

// Next advances the internal pointer and returns the new current value
// (next()).
func (a *Array) Next() (Value, bool) {
	i := a.pointerPos()
	if i < len(a.table.buckets) {
		a.pointer = a.table.nextLive(i + 1)
	}
	return a.Current()
}

// Prev moves the internal pointer back and returns the new current value
// (prev()). Moving before the first entry leaves the pointer beyond the
// end.
func (a *Array) Prev() (Value, bool) {
	i := a.pointerPos()
	if i >= len(a.table.buckets) {
		return Null, false
	}
	j := a.table.prevLive(i - 1)
	if j < 0 {
		a.pointer = len(a.table.buckets)
		return Null, false
	}
	a.pointer = j
	return a.Current()
}

// Reset moves the internal pointer to the first entry (reset()).
func (a *Array) Reset() (Value, bool) {
	a.pointer = 0
	return a.Current()
}

// End moves the internal pointer to the last entry (end()).
func (a *Array) End() (Value, bool) {
	j := a.table.prevLive(len(a.table.buckets) - 1)
	if j < 0 {
		a.pointer = len(a.table.buckets)
		return Null, false
	}
	a.pointer = j
	return a.Current()
}
