package inspect

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/chazu/phpcore/php"
)

// snapshotNamespace scopes snapshot IDs.
var snapshotNamespace = uuid.MustParse("5b7d1f0e-3c43-4f0a-9d6e-2f7c9a1e8b44")

var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("inspect: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// Node is one value in a snapshot tree.
type Node struct {
	Kind    string  `cbor:"1,keyasint"`
	Bool    bool    `cbor:"2,keyasint,omitempty"`
	Long    int64   `cbor:"3,keyasint,omitempty"`
	Double  float64 `cbor:"4,keyasint,omitempty"`
	Str     string  `cbor:"5,keyasint,omitempty"`
	Class   string  `cbor:"6,keyasint,omitempty"`
	ID      int64   `cbor:"7,keyasint,omitempty"` // set on arrays and objects
	Ref     int64   `cbor:"8,keyasint,omitempty"` // ID of an enclosing node (cycle)
	Alias   bool    `cbor:"9,keyasint,omitempty"`
	Entries []Entry `cbor:"10,keyasint,omitempty"`
}

// Entry is one key and value of an array or object node.
type Entry struct {
	IntKey *int64  `cbor:"1,keyasint,omitempty"`
	StrKey *string `cbor:"2,keyasint,omitempty"`
	Value  Node    `cbor:"3,keyasint"`
}

// Key returns the entry key.
func (e Entry) Key() php.Key {
	if e.StrKey != nil {
		return php.StringKey(*e.StrKey)
	}
	if e.IntKey != nil {
		return php.IntKey(*e.IntKey)
	}
	return php.IntKey(0)
}

// Snapshot is a decoded debug snapshot.
type Snapshot struct {
	// ID is derived from the encoded root, so equal graphs get equal IDs.
	ID   uuid.UUID `cbor:"1,keyasint"`
	Root Node      `cbor:"2,keyasint"`
}

// BuildNode converts v to a snapshot tree.
func BuildNode(ctx *php.Context, v php.Value) Node {
	b := &builder{ctx: ctxOr(ctx), tracker: newTracker()}
	v.Accept(b)
	return b.node
}

// Encode serializes v as a canonical CBOR snapshot.
func Encode(ctx *php.Context, v php.Value) ([]byte, error) {
	root := BuildNode(ctx, v)
	body, err := cborEncMode.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("inspect: marshal snapshot: %w", err)
	}
	return cborEncMode.Marshal(Snapshot{ID: uuid.NewSHA1(snapshotNamespace, body), Root: root})
}

// Decode deserializes a snapshot produced by Encode.
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("inspect: unmarshal snapshot: %w", err)
	}
	return &s, nil
}

type builder struct {
	ctx  *php.Context
	node Node
	*tracker
}

func (b *builder) VisitNull()            { b.node = Node{Kind: "null"} }
func (b *builder) VisitBool(v bool)      { b.node = Node{Kind: "bool", Bool: v} }
func (b *builder) VisitLong(l int64)     { b.node = Node{Kind: "long", Long: l} }
func (b *builder) VisitDouble(d float64) { b.node = Node{Kind: "double", Double: d} }
func (b *builder) VisitString(s string)  { b.node = Node{Kind: "string", Str: s} }

func (b *builder) VisitBlob(bl *php.Blob) {
	b.node = Node{Kind: "string", Str: bl.ToString(b.ctx)}
}

func (b *builder) VisitAlias(a *php.Alias) {
	a.Get().Accept(b)
	b.node.Alias = true
}

func (b *builder) VisitArray(a *php.Array) {
	if id, ok := b.arrays[a.Table()]; ok {
		b.node = Node{Kind: "array", Ref: id}
		return
	}
	b.enterArray(a)
	defer b.leaveArray(a)
	n := Node{Kind: "array", ID: b.arrays[a.Table()]}
	n.Entries = b.entries(a)
	b.node = n
}

func (b *builder) VisitObject(o php.Object) {
	if id, ok := b.objects[o]; ok {
		b.node = Node{Kind: "object", Class: o.Class().Name, Ref: id}
		return
	}
	b.enterObject(o)
	defer b.leaveObject(o)
	n := Node{Kind: "object", Class: o.Class().Name, ID: b.objects[o]}
	if props := o.Properties(); props != nil {
		n.Entries = b.entries(props)
	}
	b.node = n
}

func (b *builder) entries(a *php.Array) []Entry {
	out := make([]Entry, 0, a.Count())
	for k, v := range a.All() {
		var e Entry
		if k.IsString() {
			s := k.Str()
			e.StrKey = &s
		} else {
			i := k.Int()
			e.IntKey = &i
		}
		v.Accept(b)
		e.Value = b.node
		out = append(out, e)
	}
	return out
}
