package php

import (
	"fmt"
)

// The functions in this file are the table-level halves of PHP's array
// library (sort, array_splice, array_diff, ...). Each runs the write
// barrier and leaves the internal pointer on the first entry when the
// order changed.

// SortValues sorts by value. With preserveKeys the keys move with their
// values (asort); otherwise the result is reindexed (sort).
func (a *Array) SortValues(cmp Comparer, preserveKeys bool) {
	a.SortEntries(ByValue(cmp), preserveKeys)
}

// SortKeys sorts by key (ksort).
func (a *Array) SortKeys(cmp Comparer) {
	a.SortEntries(ByKey(cmp), true)
}

// SortEntries sorts with an entry comparer (uasort, uksort, usort).
func (a *Array) SortEntries(cmp EntryComparer, preserveKeys bool) {
	d := a.writable()
	d.Sort(cmp)
	if !preserveKeys {
		d.ReindexAll()
	}
	a.pointer = 0
}

// Shuffle randomizes the order and reindexes (shuffle).
func (a *Array) Shuffle(rng RandomSource) {
	d := a.writable()
	d.Shuffle(rng)
	d.ReindexAll()
	a.pointer = 0
}

// Reverse returns a new array with the entries in reverse order
// (array_reverse). String keys are always kept; integer keys are kept
// only with preserveKeys.
func (a *Array) Reverse(preserveKeys bool) *Array {
	r := a.Duplicate()
	d := r.writable()
	d.Reverse()
	if !preserveKeys {
		d.renumber(0)
	}
	r.pointer = 0
	return r
}

// Splice removes length entries starting at offset, inserts replacement
// in their place and returns the removed entries (array_splice). A
// negative offset counts from the end; a negative length leaves that
// many entries at the end; a length past the end is clipped. An offset
// beyond the end is an error.
func (a *Array) Splice(offset, length int, replacement []Value) (*Array, error) {
	n := a.Count()
	if offset < 0 {
		offset += n
		if offset < 0 {
			offset = 0
		}
	}
	if offset > n {
		return nil, fmt.Errorf("array splice: %w", ErrOutOfRange)
	}
	if length < 0 {
		length = n - offset + length
		if length < 0 {
			length = 0
		}
	}
	if length > n-offset {
		length = n - offset
	}
	values := make([]Value, len(replacement))
	for i, v := range replacement {
		values[i] = v.copyForStore()
	}
	removed, err := a.writable().SpliceAndReindex(offset, length, values)
	if err != nil {
		return nil, err
	}
	a.pointer = 0
	return NewArrayFromDictionary(removed), nil
}

// Diff returns the entries of a whose values are found in none of
// others (array_diff). A nil comparer compares string conversions.
func (a *Array) Diff(ctx *Context, cmp Comparer, others ...*Array) *Array {
	return a.setOperation(SetDifference, ByValue(stringComparerOr(ctx, cmp)), others)
}

// Intersect returns the entries of a whose values are found in all of
// others (array_intersect).
func (a *Array) Intersect(ctx *Context, cmp Comparer, others ...*Array) *Array {
	return a.setOperation(SetIntersection, ByValue(stringComparerOr(ctx, cmp)), others)
}

// DiffKeys returns the entries of a whose keys are found in none of
// others (array_diff_key).
func (a *Array) DiffKeys(others ...*Array) *Array {
	return a.setOperation(SetDifference, ByKey(KeyComparer{}), others)
}

// IntersectKeys returns the entries of a whose keys are found in all of
// others (array_intersect_key).
func (a *Array) IntersectKeys(others ...*Array) *Array {
	return a.setOperation(SetIntersection, ByKey(KeyComparer{}), others)
}

func (a *Array) setOperation(kind SetOperationKind, cmp EntryComparer, others []*Array) *Array {
	tables := make([]*Dictionary, len(others))
	for i, o := range others {
		tables[i] = o.table
	}
	return NewArrayFromDictionary(a.table.SetOperation(kind, tables, cmp))
}

func stringComparerOr(ctx *Context, cmp Comparer) Comparer {
	if cmp != nil {
		return cmp
	}
	return StringComparer{Ctx: ctx}
}

// MultiSortArrays sorts several arrays of the same size together
// (array_multisort). comparers[i] orders arrays[i]; later arrays break
// ties of earlier ones.
func MultiSortArrays(arrays []*Array, comparers []Comparer) error {
	if len(arrays) == 0 {
		return nil
	}
	if len(comparers) != len(arrays) {
		return fmt.Errorf("%d comparers for %d arrays: %w", len(comparers), len(arrays), ErrRowCount)
	}
	count := arrays[0].Count()
	for _, a := range arrays {
		if a.Count() != count {
			return fmt.Errorf("array sizes %d and %d: %w", count, a.Count(), ErrRowCount)
		}
	}
	tables := make([]*Dictionary, len(arrays))
	ecs := make([]EntryComparer, len(arrays))
	for i, a := range arrays {
		tables[i] = a.writable()
		ecs[i] = ByValue(comparers[i])
		a.pointer = 0
	}
	return MultiSort(count, tables, ecs)
}

// Pop removes and returns the last value (array_pop).
func (a *Array) Pop() (Value, bool) {
	if a.Count() == 0 {
		return Null, false
	}
	e, ok := a.writable().PopLast()
	a.pointer = 0
	return e.Value.GetValue(), ok
}

// Shift removes and returns the first value and renumbers integer keys
// (array_shift).
func (a *Array) Shift() (Value, bool) {
	if a.Count() == 0 {
		return Null, false
	}
	d := a.writable()
	e, ok := d.PopFirst()
	d.renumber(0)
	a.pointer = 0
	return e.Value.GetValue(), ok
}

// Unshift inserts values at the front, renumbers integer keys and
// returns the new count (array_unshift).
func (a *Array) Unshift(values ...Value) int {
	if len(values) > 0 {
		stored := make([]Value, len(values))
		for i, v := range values {
			stored[i] = v.copyForStore()
		}
		_, _ = a.writable().SpliceAndReindex(0, 0, stored)
		a.pointer = 0
	}
	return a.Count()
}

// Prepend inserts v under k at the front without renumbering.
func (a *Array) Prepend(k Key, v Value) {
	a.writable().Prepend(k, v.copyForStore())
	a.pointer = 0
}

// Reindex replaces every key with 0..n-1 (array_values in place).
func (a *Array) Reindex() {
	a.writable().ReindexAll()
	a.pointer = 0
}
