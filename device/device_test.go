package device

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuffer(t *testing.T) {
	b := NewBuffer([]byte("hi"))

	c, ok, err := b.ReadChar()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, byte('h'), c)

	c, ok, err = b.ReadChar()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, byte('i'), c)

	// exhausted
	_, ok, err = b.ReadChar()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.WriteChar('x'))
	require.NoError(t, b.WriteChar('y'))
	assert.Equal(t, "xy", b.String())
	assert.Equal(t, []byte("xy"), b.Output())
}

func TestTerminal_ReadChar(t *testing.T) {
	term := NewTerminal(strings.NewReader("z"), &bytes.Buffer{})

	c, ok, err := term.ReadChar()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, byte('z'), c)

	// EOF is "no character available", not an error
	_, ok, err = term.ReadChar()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTerminal_WriteChar(t *testing.T) {
	out := &bytes.Buffer{}
	term := NewTerminal(strings.NewReader(""), out)

	require.NoError(t, term.WriteChar('A'))
	require.NoError(t, term.WriteChar('B'))
	assert.Equal(t, "AB", out.String())
}
