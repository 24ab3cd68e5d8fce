package inspect

import (
	"strings"

	"github.com/chazu/phpcore/php"
)

const printIndent = 4

// PrintR returns the print_r text of v.
func PrintR(ctx *php.Context, v php.Value) string {
	p := &printer{ctx: ctxOr(ctx), tracker: newTracker()}
	v.Accept(p)
	return p.sb.String()
}

type printer struct {
	php.BaseVisitor
	ctx    *php.Context
	sb     strings.Builder
	indent int
	*tracker
}

func (p *printer) VisitBool(b bool) {
	if b {
		p.sb.WriteString("1")
	}
}

func (p *printer) VisitLong(l int64) {
	p.sb.WriteString(php.FromLong(l).ToString(p.ctx))
}

func (p *printer) VisitDouble(d float64) {
	p.sb.WriteString(php.FromDouble(d).ToString(p.ctx))
}

func (p *printer) VisitString(s string) {
	p.sb.WriteString(s)
}

func (p *printer) VisitBlob(b *php.Blob) {
	p.sb.WriteString(b.ToString(p.ctx))
}

func (p *printer) VisitAlias(a *php.Alias) {
	a.Get().Accept(p)
}

func (p *printer) VisitArray(a *php.Array) {
	p.sb.WriteString("Array\n")
	if !p.enterArray(a) {
		p.sb.WriteString(" *RECURSION*")
		return
	}
	defer p.leaveArray(a)
	p.hash(a)
}

func (p *printer) VisitObject(o php.Object) {
	p.sb.WriteString(o.Class().Name)
	p.sb.WriteString(" Object\n")
	if !p.enterObject(o) {
		p.sb.WriteString(" *RECURSION*")
		return
	}
	defer p.leaveObject(o)
	props := o.Properties()
	if props == nil {
		props = php.NewArray()
	}
	p.hash(props)
}

func (p *printer) hash(a *php.Array) {
	p.pad(p.indent)
	p.sb.WriteString("(\n")
	saved := p.indent
	for k, v := range a.All() {
		p.pad(saved + printIndent)
		p.sb.WriteString("[")
		p.sb.WriteString(k.String())
		p.sb.WriteString("] => ")
		p.indent = saved + 2*printIndent
		v.Accept(p)
		p.sb.WriteString("\n")
	}
	p.indent = saved
	p.pad(p.indent)
	p.sb.WriteString(")\n")
}

func (p *printer) pad(n int) {
	p.sb.WriteString(strings.Repeat(" ", n))
}
