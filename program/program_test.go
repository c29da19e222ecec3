package program

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "hello.bf")
	source := []byte("+++++[>+<-]")
	require.NoError(t, os.WriteFile(path, source, 0o644))

	prog, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, len(source), prog.Len())
	assert.Equal(t, source, prog.Bytes())
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.bf"))
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestLoad_TruncatesAtCapacity(t *testing.T) {
	source := bytes.Repeat([]byte{'+'}, MaxCodeSize+100)

	prog, err := Load(bytes.NewReader(source))
	require.NoError(t, err)
	assert.Equal(t, MaxCodeSize, prog.Len())
}

func TestLoad_Empty(t *testing.T) {
	prog, err := Load(bytes.NewReader(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, prog.Len())
}
