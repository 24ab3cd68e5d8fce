package php

// Enumerator walks a Dictionary by bucket position, skipping tombstones.
// It starts before the first entry. Deleting the current entry and then
// advancing is safe; any other mutation during iteration is not.
type Enumerator struct {
	d   *Dictionary
	pos int
}

// Enumerator returns an enumerator positioned before the first entry.
func (d *Dictionary) Enumerator() *Enumerator {
	return &Enumerator{d: d, pos: -1}
}

// MoveNext advances to the next live entry.
func (e *Enumerator) MoveNext() bool {
	e.pos = e.d.nextLive(e.pos + 1)
	return e.pos < len(e.d.buckets)
}

// MovePrevious steps back to the previous live entry.
func (e *Enumerator) MovePrevious() bool {
	start := e.pos - 1
	if start >= len(e.d.buckets) {
		start = len(e.d.buckets) - 1
	}
	e.pos = e.d.prevLive(start)
	return e.pos >= 0
}

// MoveFirst positions on the first live entry.
func (e *Enumerator) MoveFirst() bool {
	e.pos = -1
	return e.MoveNext()
}

// MoveLast positions on the last live entry.
func (e *Enumerator) MoveLast() bool {
	e.pos = len(e.d.buckets)
	return e.MovePrevious()
}

// Valid reports whether the enumerator is on a live entry.
func (e *Enumerator) Valid() bool {
	return e.pos >= 0 && e.pos < len(e.d.buckets) && e.d.buckets[e.pos].live()
}

// Key returns the current key.
func (e *Enumerator) Key() Key {
	if !e.Valid() {
		return Key{}
	}
	return e.d.buckets[e.pos].key
}

// Value returns the current value.
func (e *Enumerator) Value() Value {
	if !e.Valid() {
		return Null
	}
	return e.d.buckets[e.pos].value
}

// Current returns the current entry.
func (e *Enumerator) Current() Entry {
	return Entry{Key: e.Key(), Value: e.Value()}
}

// DeleteCurrent removes the current entry. The next MoveNext goes to
// the entry that followed it.
func (e *Enumerator) DeleteCurrent() bool {
	if !e.Valid() {
		return false
	}
	e.d.removeAt(e.pos)
	return true
}

func (d *Dictionary) nextLive(i int) int {
	if i < 0 {
		i = 0
	}
	for i < len(d.buckets) && !d.buckets[i].live() {
		i++
	}
	if i > len(d.buckets) {
		i = len(d.buckets)
	}
	return i
}

func (d *Dictionary) prevLive(i int) int {
	for i >= 0 && !d.buckets[i].live() {
		i--
	}
	if i < -1 {
		i = -1
	}
	return i
}
