package php

// Alias is a heap-allocated mutable box shared by every holder of a PHP
// reference (&$x). Writing through any holder is visible to all of them.
//
// An alias never holds another alias: Set and NewAlias dereference
// their argument, so GetValue needs at most one hop.
type Alias struct {
	value Value
}

// NewAlias creates a reference holding v.
func NewAlias(v Value) *Alias {
	return &Alias{value: v.GetValue()}
}

// Get returns the referenced value.
func (a *Alias) Get() Value {
	return a.value
}

// Set replaces the referenced value.
func (a *Alias) Set(v Value) {
	a.value = v.GetValue()
}

// ptr exposes the slot for in-place updates of nested arrays.
func (a *Alias) ptr() *Value {
	return &a.value
}
