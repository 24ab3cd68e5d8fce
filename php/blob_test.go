package php

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/charmap"
)

func TestBlobAppendMergesChunks(t *testing.T) {
	b := NewBlobString("ab")
	b.Append("cd")
	b.AppendBytes([]byte{'e'})
	b.AppendBytes([]byte{'f'})
	assert.Len(t, b.chunks, 2)
	assert.Equal(t, 6, b.Len())
	assert.True(t, b.IsBinary())
	assert.Equal(t, "abcdef", b.ToString(nil))

	b.AppendValue(nil, FromLong(42))
	assert.Equal(t, "abcdef42", b.ToString(nil))
	b.AppendValue(nil, FromBlob(NewBlobBytes([]byte("!"))))
	assert.Equal(t, "abcdef42!", b.ToString(nil))
	assert.False(t, NewBlob().IsBinary())
	assert.True(t, NewBlob().IsEmpty())
}

func TestBlobDecodesBinaryWithEncoding(t *testing.T) {
	ctx, _ := newTestContext()
	b := NewBlobString("caf")
	b.AppendBytes([]byte{0xE9})

	assert.Equal(t, "caf\xe9", b.ToString(ctx))

	ctx.Encoding = charmap.Windows1252
	assert.Equal(t, "café", b.ToString(ctx))
	assert.Equal(t, []byte("caf\xe9"), b.Bytes(ctx))

	text := NewBlobString("é")
	assert.Equal(t, []byte{0xE9}, text.Bytes(ctx))
	assert.Equal(t, []byte("é"), text.Bytes(nil))
}

func TestBlobByteAccess(t *testing.T) {
	b := NewBlobString("ab")
	b.AppendBytes([]byte("cd"))

	c, ok := b.ByteAt(2)
	assert.True(t, ok)
	assert.Equal(t, byte('c'), c)
	_, ok = b.ByteAt(4)
	assert.False(t, ok)
	_, ok = b.ByteAt(-1)
	assert.False(t, ok)

	assert.True(t, b.SetByteAt(6, 'x'))
	assert.Equal(t, "abcd  x", b.ToString(nil))
	assert.False(t, b.SetByteAt(-1, 'x'))

	b.Truncate(3)
	assert.Equal(t, "abc", b.ToString(nil))
	b.Truncate(10)
	assert.Equal(t, 3, b.Len())
	b.Truncate(0)
	assert.True(t, b.IsEmpty())
}

func TestBlobCloneIsIndependent(t *testing.T) {
	b := NewBlobBytes([]byte("xy"))
	c := b.Clone()
	c.SetByteAt(0, 'z')
	assert.Equal(t, "xy", b.ToString(nil))
	assert.Equal(t, "zy", c.ToString(nil))

	b.AddRef()
	assert.True(t, b.IsShared())
	d := b.ReleaseOne()
	assert.False(t, b.IsShared())
	assert.NotSame(t, b, d)
}
