package php

// Visitor receives a Value by kind. Walkers such as printers implement
// it and descend into arrays and objects themselves.
type Visitor interface {
	VisitNull()
	VisitBool(b bool)
	VisitLong(l int64)
	VisitDouble(d float64)
	VisitString(s string)
	VisitBlob(b *Blob)
	VisitArray(a *Array)
	VisitObject(o Object)
	VisitAlias(a *Alias)
}

// BaseVisitor implements every Visitor method as a no-op. Embed it to
// handle only some kinds.
type BaseVisitor struct{}

func (BaseVisitor) VisitNull()          {}
func (BaseVisitor) VisitBool(bool)      {}
func (BaseVisitor) VisitLong(int64)     {}
func (BaseVisitor) VisitDouble(float64) {}
func (BaseVisitor) VisitString(string)  {}
func (BaseVisitor) VisitBlob(*Blob)     {}
func (BaseVisitor) VisitArray(*Array)   {}
func (BaseVisitor) VisitObject(Object)  {}
func (BaseVisitor) VisitAlias(*Alias)   {}
