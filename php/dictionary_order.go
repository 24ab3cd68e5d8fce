package php

import (
	"fmt"
	"slices"
)

// RandomSource supplies uniform random integers in [0, n). A
// *math/rand/v2.Rand satisfies it.
type RandomSource interface {
	IntN(n int) int
}

// SetOperationKind selects the behavior of SetOperation.
type SetOperationKind int

const (
	// SetDifference keeps entries of the receiver found in none of the
	// other tables.
	SetDifference SetOperationKind = iota
	// SetIntersection keeps entries of the receiver found in all of the
	// other tables.
	SetIntersection
)

// Sort reorders the entries with a stable sort. Tombstones are dropped
// and the hash index is rebuilt; a packed table stays packed only when
// the new order still has bucket i holding key i.
func (d *Dictionary) Sort(cmp EntryComparer) {
	d.Compact()
	slices.SortStableFunc(d.buckets, func(a, b bucket) int {
		return cmp.CompareEntries(Entry{Key: a.key, Value: a.value}, Entry{Key: b.key, Value: b.value})
	})
	d.rebuildIndex()
}

// rebuildIndex picks packed or hashed mode after buckets were moved.
func (d *Dictionary) rebuildIndex() {
	if d.deleted == 0 && d.isSequential() {
		d.hash = nil
		d.mask = 0
		return
	}
	d.buildHash()
}

func (d *Dictionary) isSequential() bool {
	for i := range d.buckets {
		if k := d.buckets[i].key; k.isStr || k.i != int64(i) {
			return false
		}
	}
	return true
}

// ReindexAll replaces every key with 0..n-1 in order and packs the
// table.
func (d *Dictionary) ReindexAll() {
	if d.hash == nil {
		d.maxIntKey = int64(len(d.buckets)) - 1
		return
	}
	d.Compact()
	for i := range d.buckets {
		d.buckets[i].key = IntKey(int64(i))
	}
	d.hash = nil
	d.mask = 0
	d.maxIntKey = int64(len(d.buckets)) - 1
}

// ReindexIntegers renumbers integer keys from start in order; string
// keys are kept.
func (d *Dictionary) ReindexIntegers(start int64) {
	if d.hash == nil && start == 0 {
		d.maxIntKey = int64(len(d.buckets)) - 1
		return
	}
	d.renumber(start)
}

func (d *Dictionary) renumber(start int64) {
	d.Compact()
	next := start
	for i := range d.buckets {
		if !d.buckets[i].key.isStr {
			d.buckets[i].key = IntKey(next)
			next++
		}
	}
	if next > start {
		d.maxIntKey = next - 1
	} else {
		d.maxIntKey = -1
	}
	d.rebuildIndex()
}

// SpliceAndReindex removes length entries starting at position offset,
// inserts values in their place and renumbers integer keys from 0. The
// removed entries are returned in a new table with their integer keys
// renumbered from 0 and string keys kept.
func (d *Dictionary) SpliceAndReindex(offset, length int, values []Value) (*Dictionary, error) {
	n := d.Count()
	if offset < 0 || offset > n || length < 0 || length > n-offset {
		return nil, fmt.Errorf("splice offset %d length %d on %d entries: %w", offset, length, n, ErrOutOfRange)
	}
	d.Compact()

	removed := NewDictionaryCapacity(length)
	for _, b := range d.buckets[offset : offset+length] {
		if b.key.isStr {
			removed.Set(b.key, b.value)
		} else {
			_, _ = removed.Append(b.value)
		}
	}

	nb := make([]bucket, 0, roundCapacity(n-length+len(values)))
	nb = append(nb, d.buckets[:offset]...)
	for _, v := range values {
		nb = append(nb, bucket{value: v, next: -1})
	}
	nb = append(nb, d.buckets[offset+length:]...)
	d.buckets = nb
	d.hash = nil
	d.renumber(0)
	return removed, nil
}

// SetOperation returns a new table holding the entries of d that survive
// the difference or intersection against others. cmp decides entry
// equality; surviving entries keep their keys and order.
func (d *Dictionary) SetOperation(kind SetOperationKind, others []*Dictionary, cmp EntryComparer) *Dictionary {
	result := d.Copy()
	result.Compact()
	n := len(result.buckets)
	entry := func(i int) Entry {
		return Entry{Key: result.buckets[i].key, Value: result.buckets[i].value}
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.CompareEntries(entry(a), entry(b))
	})

	removed := make([]bool, n)
	for _, other := range others {
		theirs := other.entries()
		slices.SortStableFunc(theirs, cmp.CompareEntries)

		var matched []bool
		if kind == SetIntersection {
			matched = make([]bool, n)
		}
		i, j := 0, 0
		for i < n && j < len(theirs) {
			x := order[i]
			if removed[x] {
				i++
				continue
			}
			c := cmp.CompareEntries(entry(x), theirs[j])
			switch {
			case c < 0:
				i++
			case c > 0:
				j++
			default:
				if kind == SetDifference {
					removed[x] = true
				} else {
					matched[x] = true
				}
				i++
			}
		}
		if kind == SetIntersection {
			for x := range removed {
				if !matched[x] {
					removed[x] = true
				}
			}
		}
	}

	for x := n - 1; x >= 0; x-- {
		if removed[x] {
			result.removeAt(x)
		}
	}
	result.Compact()
	return result
}

// MultiSort sorts several tables of count entries by the same
// permutation. Rows are ordered by comparers[0] on tables[0], ties
// broken by the next table, and so on. Integer keys are renumbered
// afterwards; string keys are kept.
func MultiSort(count int, tables []*Dictionary, comparers []EntryComparer) error {
	if len(comparers) != len(tables) {
		return fmt.Errorf("%d comparers for %d tables: %w", len(comparers), len(tables), ErrRowCount)
	}
	for _, t := range tables {
		if t.Count() != count {
			return fmt.Errorf("table has %d entries, expected %d: %w", t.Count(), count, ErrRowCount)
		}
		t.Compact()
	}
	perm := make([]int, count)
	for i := range perm {
		perm[i] = i
	}
	slices.SortStableFunc(perm, func(a, b int) int {
		for t, tbl := range tables {
			x := Entry{Key: tbl.buckets[a].key, Value: tbl.buckets[a].value}
			y := Entry{Key: tbl.buckets[b].key, Value: tbl.buckets[b].value}
			if c := comparers[t].CompareEntries(x, y); c != 0 {
				return c
			}
		}
		return 0
	})
	for _, t := range tables {
		nb := make([]bucket, count, cap(t.buckets))
		for i, p := range perm {
			nb[i] = t.buckets[p]
		}
		t.buckets = nb
		t.hash = nil
		t.renumber(0)
	}
	return nil
}

// MultiSort sorts d together with others; see the package-level
// MultiSort.
func (d *Dictionary) MultiSort(count int, others []*Dictionary, comparers []EntryComparer) error {
	return MultiSort(count, append([]*Dictionary{d}, others...), comparers)
}

// Shuffle permutes the live entries uniformly and leaves the table in
// hashed mode with its keys preserved.
func (d *Dictionary) Shuffle(rng RandomSource) {
	d.Compact()
	for i := len(d.buckets) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.buckets[i], d.buckets[j] = d.buckets[j], d.buckets[i]
	}
	d.buildHash()
}

// Reverse reverses the order of the live entries, keeping their keys.
func (d *Dictionary) Reverse() {
	d.Compact()
	slices.Reverse(d.buckets)
	d.buildHash()
}
