// Package inspect renders PHP values for humans and debuggers.
//
// Dump and PrintR produce the text of var_dump and print_r. Snapshot
// encodes a value graph as canonical CBOR for offline inspection.
// Cycles are cut at the first repeated array or object on the current
// path.
package inspect

import (
	"fmt"
	"strings"

	"github.com/chazu/phpcore/convert"
	"github.com/chazu/phpcore/php"
)

// Dump returns the var_dump text of v.
func Dump(ctx *php.Context, v php.Value) string {
	d := &dumper{ctx: ctxOr(ctx), tracker: newTracker()}
	v.Accept(d)
	return d.sb.String()
}

type dumper struct {
	ctx    *php.Context
	sb     strings.Builder
	indent int
	*tracker
}

func (d *dumper) pad() {
	d.sb.WriteString(strings.Repeat(" ", d.indent))
}

func (d *dumper) VisitNull() {
	d.pad()
	d.sb.WriteString("NULL\n")
}

func (d *dumper) VisitBool(b bool) {
	d.pad()
	fmt.Fprintf(&d.sb, "bool(%t)\n", b)
}

func (d *dumper) VisitLong(l int64) {
	d.pad()
	fmt.Fprintf(&d.sb, "int(%d)\n", l)
}

func (d *dumper) VisitDouble(f float64) {
	d.pad()
	fmt.Fprintf(&d.sb, "float(%s)\n", convert.FormatDouble(f, d.ctx.SerializePrecision))
}

func (d *dumper) VisitString(s string) {
	d.pad()
	fmt.Fprintf(&d.sb, "string(%d) \"%s\"\n", len(s), s)
}

func (d *dumper) VisitBlob(b *php.Blob) {
	d.VisitString(b.ToString(d.ctx))
}

func (d *dumper) VisitAlias(a *php.Alias) {
	a.Get().Accept(d)
}

func (d *dumper) VisitArray(a *php.Array) {
	if !d.enterArray(a) {
		d.pad()
		d.sb.WriteString("*RECURSION*\n")
		return
	}
	defer d.leaveArray(a)

	d.pad()
	fmt.Fprintf(&d.sb, "array(%d) {\n", a.Count())
	d.entries(a)
	d.pad()
	d.sb.WriteString("}\n")
}

func (d *dumper) VisitObject(o php.Object) {
	if !d.enterObject(o) {
		d.pad()
		d.sb.WriteString("*RECURSION*\n")
		return
	}
	defer d.leaveObject(o)

	props := o.Properties()
	n := 0
	if props != nil {
		n = props.Count()
	}
	d.pad()
	fmt.Fprintf(&d.sb, "object(%s)#%d (%d) {\n", o.Class().Name, objectID(o), n)
	if props != nil {
		d.entries(props)
	}
	d.pad()
	d.sb.WriteString("}\n")
}

func (d *dumper) entries(a *php.Array) {
	d.indent += 2
	for k, v := range a.All() {
		d.pad()
		if k.IsString() {
			fmt.Fprintf(&d.sb, "[\"%s\"]=>\n", k.Str())
		} else {
			fmt.Fprintf(&d.sb, "[%d]=>\n", k.Int())
		}
		v.Accept(d)
	}
	d.indent -= 2
}

// objectID returns the handle var_dump prints after '#'.
func objectID(o php.Object) int64 {
	if i, ok := o.(interface{ ID() int64 }); ok {
		return i.ID()
	}
	return 0
}

func ctxOr(ctx *php.Context) *php.Context {
	if ctx == nil {
		return php.DefaultContext()
	}
	return ctx
}

// tracker records the arrays and objects on the current path. Arrays are
// tracked by table, so two handles sharing a table count as the same
// array.
type tracker struct {
	arrays  map[*php.Dictionary]int64
	objects map[php.Object]int64
	nextID  int64
}

func newTracker() *tracker {
	return &tracker{
		arrays:  make(map[*php.Dictionary]int64),
		objects: make(map[php.Object]int64),
	}
}

func (t *tracker) enterArray(a *php.Array) bool {
	if _, ok := t.arrays[a.Table()]; ok {
		return false
	}
	t.nextID++
	t.arrays[a.Table()] = t.nextID
	return true
}

func (t *tracker) leaveArray(a *php.Array) {
	delete(t.arrays, a.Table())
}

func (t *tracker) enterObject(o php.Object) bool {
	if _, ok := t.objects[o]; ok {
		return false
	}
	t.nextID++
	t.objects[o] = t.nextID
	return true
}

func (t *tracker) leaveObject(o php.Object) {
	delete(t.objects, o)
}
