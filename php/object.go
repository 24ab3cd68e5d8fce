package php

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Class describes a PHP class as far as value semantics need it: its
// name, its parent, and its declared properties in declaration order.
type Class struct {
	Name       string
	Parent     *Class
	Properties []string
}

// NewClass creates a class. Inherited properties come before the class's
// own declarations.
func NewClass(name string, parent *Class, properties ...string) *Class {
	return &Class{Name: name, Parent: parent, Properties: properties}
}

// IsSubclassOf reports whether c extends other, directly or not.
func (c *Class) IsSubclassOf(other *Class) bool {
	for p := c.Parent; p != nil; p = p.Parent {
		if p == other {
			return true
		}
	}
	return false
}

// DeclaredProperties returns every declared property, parents first.
func (c *Class) DeclaredProperties() []string {
	var chain []*Class
	for k := c; k != nil; k = k.Parent {
		chain = append(chain, k)
	}
	var out []string
	seen := make(map[string]bool)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, p := range chain[i].Properties {
			if !seen[p] {
				seen[p] = true
				out = append(out, p)
			}
		}
	}
	return out
}

// StdClass is PHP's generic object class.
var StdClass = NewClass("stdClass", nil)

// Object is a PHP object. Implementations must be pointer types; object
// identity is pointer identity.
type Object interface {
	Class() *Class
	// Properties returns the property table in declaration-then-runtime
	// order. It may return nil for objects without properties.
	Properties() *Array
}

// ObjectComparer is implemented by objects with a custom comparison.
// ok=false falls back to the default property comparison.
type ObjectComparer interface {
	CompareObject(ctx *Context, other Value) (result int, ok bool)
}

// NumberConverter is implemented by objects with a numeric conversion.
type NumberConverter interface {
	ToNumber() (Number, bool)
}

// StringConverter is implemented by objects with __toString.
type StringConverter interface {
	ToPhpString(ctx *Context) string
}

var nextInstanceID atomic.Int64

// Instance is the stock Object implementation.
type Instance struct {
	id    int64
	class *Class
	props *Array
}

// NewInstance creates an object of class c with its declared properties
// set to NULL.
func NewInstance(c *Class) *Instance {
	o := &Instance{
		id:    nextInstanceID.Add(1),
		class: c,
		props: NewArray(),
	}
	for _, p := range c.DeclaredProperties() {
		o.props.Set(StringKey(p), Null)
	}
	return o
}

// ID returns the process-unique object handle (spl_object_id).
func (o *Instance) ID() int64 { return o.id }

// Class implements Object.
func (o *Instance) Class() *Class { return o.class }

// Properties implements Object.
func (o *Instance) Properties() *Array { return o.props }

// Get returns a property, NULL when absent.
func (o *Instance) Get(name string) Value {
	v, _ := o.props.Get(KeyFromString(name))
	return v
}

// Set assigns a property. New properties are appended after the declared
// ones.
func (o *Instance) Set(name string, v Value) {
	o.props.Set(KeyFromString(name), v)
}

// ClassTable registers classes by case-insensitive name.
type ClassTable struct {
	classes map[string]*Class
	mu      sync.RWMutex
}

// NewClassTable creates a table holding stdClass.
func NewClassTable() *ClassTable {
	t := &ClassTable{classes: make(map[string]*Class)}
	t.Register(StdClass)
	return t
}

// Register adds c, replacing a class of the same name.
func (t *ClassTable) Register(c *Class) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.classes[strings.ToLower(c.Name)] = c
}

// Lookup finds a class by name.
func (t *ClassTable) Lookup(name string) (*Class, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	c, ok := t.classes[strings.ToLower(name)]
	return c, ok
}

// Instantiate creates an instance of the named class.
func (t *ClassTable) Instantiate(name string) (*Instance, bool) {
	c, ok := t.Lookup(name)
	if !ok {
		return nil, false
	}
	return NewInstance(c), true
}
