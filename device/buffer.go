package device

import (
	"bytes"
)

// Buffer is an in-memory device: input is fed from a byte slice,
// output is captured for later inspection. It plays the same role for
// the VM that an in-process transport plays for a network server --
// everything a test or an embedding needs, no terminal required.
type Buffer struct {
	in  []byte
	pos int
	out bytes.Buffer
}

func NewBuffer(input []byte) *Buffer {
	return &Buffer{
		in: input,
	}
}

func (b *Buffer) ReadChar() (byte, bool, error) {
	if b.pos >= len(b.in) {
		return 0, false, nil
	}
	c := b.in[b.pos]
	b.pos += 1
	return c, true, nil
}

func (b *Buffer) WriteChar(c byte) error {
	b.out.WriteByte(c)
	return nil
}

// Output returns everything written so far.
func (b *Buffer) Output() []byte {
	return b.out.Bytes()
}

func (b *Buffer) String() string {
	return b.out.String()
}
