package php

import (
	"strings"
	"sync/atomic"
)

// blobChunk is a run of text or of raw bytes.
type blobChunk struct {
	text   string
	data   []byte
	binary bool
}

// Blob is a mutable PHP string: a list of text and binary chunks built
// by appending. Blobs are reference counted and copy-on-write like
// Dictionary. Binary chunks are decoded with the context encoding when
// the blob is read as text.
type Blob struct {
	refs   atomic.Int32
	chunks []blobChunk
}

// NewBlob creates an empty blob.
func NewBlob() *Blob {
	return &Blob{}
}

// NewBlobString creates a blob holding s.
func NewBlobString(s string) *Blob {
	b := &Blob{}
	b.Append(s)
	return b
}

// NewBlobBytes creates a blob holding a copy of p.
func NewBlobBytes(p []byte) *Blob {
	b := &Blob{}
	b.AppendBytes(p)
	return b
}

// Append adds text.
func (b *Blob) Append(s string) {
	if s == "" {
		return
	}
	if n := len(b.chunks); n > 0 && !b.chunks[n-1].binary {
		b.chunks[n-1].text += s
		return
	}
	b.chunks = append(b.chunks, blobChunk{text: s})
}

// AppendBytes adds a copy of p as binary data.
func (b *Blob) AppendBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	if n := len(b.chunks); n > 0 && b.chunks[n-1].binary {
		b.chunks[n-1].data = append(b.chunks[n-1].data, p...)
		return
	}
	b.chunks = append(b.chunks, blobChunk{data: append([]byte(nil), p...), binary: true})
}

// AppendValue adds the string conversion of v.
func (b *Blob) AppendValue(ctx *Context, v Value) {
	v = v.GetValue()
	if v.kind == KindMutableString {
		for _, c := range v.ref.(*Blob).chunks {
			if c.binary {
				b.AppendBytes(c.data)
			} else {
				b.Append(c.text)
			}
		}
		return
	}
	b.Append(v.ToString(ctx))
}

// Len returns the length in bytes, counting text as UTF-8.
func (b *Blob) Len() int {
	n := 0
	for _, c := range b.chunks {
		if c.binary {
			n += len(c.data)
		} else {
			n += len(c.text)
		}
	}
	return n
}

// IsEmpty reports whether the blob has no content.
func (b *Blob) IsEmpty() bool {
	return b.Len() == 0
}

// IsBinary reports whether any chunk holds raw bytes.
func (b *Blob) IsBinary() bool {
	for _, c := range b.chunks {
		if c.binary {
			return true
		}
	}
	return false
}

// ToString returns the content as text. Binary chunks are decoded with
// ctx.Encoding; without an encoding (or on a decoding error) their bytes
// are used as they are.
func (b *Blob) ToString(ctx *Context) string {
	if len(b.chunks) == 1 && !b.chunks[0].binary {
		return b.chunks[0].text
	}
	ctx = ctxOr(ctx)
	var sb strings.Builder
	for _, c := range b.chunks {
		if !c.binary {
			sb.WriteString(c.text)
			continue
		}
		if ctx.Encoding != nil {
			if s, err := ctx.Encoding.NewDecoder().Bytes(c.data); err == nil {
				sb.Write(s)
				continue
			}
		}
		sb.Write(c.data)
	}
	return sb.String()
}

// Bytes returns the content as bytes. Text chunks are encoded with
// ctx.Encoding when one is set.
func (b *Blob) Bytes(ctx *Context) []byte {
	ctx = ctxOr(ctx)
	out := make([]byte, 0, b.Len())
	for _, c := range b.chunks {
		if c.binary {
			out = append(out, c.data...)
			continue
		}
		if ctx.Encoding != nil {
			if p, err := ctx.Encoding.NewEncoder().String(c.text); err == nil {
				out = append(out, p...)
				continue
			}
		}
		out = append(out, c.text...)
	}
	return out
}

// ByteAt returns the byte at offset i of the raw content.
func (b *Blob) ByteAt(i int) (byte, bool) {
	if i < 0 {
		return 0, false
	}
	for _, c := range b.chunks {
		n := len(c.text)
		if c.binary {
			n = len(c.data)
		}
		if i < n {
			if c.binary {
				return c.data[i], true
			}
			return c.text[i], true
		}
		i -= n
	}
	return 0, false
}

// SetByteAt replaces the byte at offset i. Writing past the end pads
// with spaces, as PHP string offsets do. The blob is flattened to a
// single binary chunk.
func (b *Blob) SetByteAt(i int, c byte) bool {
	if i < 0 {
		return false
	}
	data := b.Bytes(nil)
	for len(data) <= i {
		data = append(data, ' ')
	}
	data[i] = c
	b.chunks = []blobChunk{{data: data, binary: true}}
	return true
}

// Truncate shortens the blob to n bytes.
func (b *Blob) Truncate(n int) {
	if n >= b.Len() {
		return
	}
	if n <= 0 {
		b.chunks = nil
		return
	}
	data := b.Bytes(nil)[:n]
	b.chunks = []blobChunk{{data: data, binary: true}}
}

// AddRef registers another holder and returns b.
func (b *Blob) AddRef() *Blob {
	b.refs.Add(1)
	return b
}

// IsShared reports whether more than one holder references b.
func (b *Blob) IsShared() bool {
	return b.refs.Load() > 0
}

// Release drops one holder.
func (b *Blob) Release() {
	for {
		r := b.refs.Load()
		if r <= 0 || b.refs.CompareAndSwap(r, r-1) {
			return
		}
	}
}

// ReleaseOne returns a private copy of b and drops one hold on b.
func (b *Blob) ReleaseOne() *Blob {
	nb := b.Clone()
	b.Release()
	return nb
}

// Clone returns an unshared copy.
func (b *Blob) Clone() *Blob {
	nb := &Blob{chunks: make([]blobChunk, len(b.chunks))}
	for i, c := range b.chunks {
		if c.binary {
			c.data = append([]byte(nil), c.data...)
		}
		nb.chunks[i] = c
	}
	return nb
}
