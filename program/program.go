// Package program implements the loading contract: bring source bytes
// from storage into a fixed-capacity code buffer, before the VM ever
// sees them.
package program

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// MaxCodeSize is the code capacity. A longer source is silently
// truncated to this many bytes.
const MaxCodeSize = 1 << 15

// ErrSourceNotFound is returned when the named source does not exist.
// Checked before any read attempt.
var ErrSourceNotFound = errors.New("unable to find the file")

// Program is an immutable sequence of instruction bytes, sized to
// what was actually read.
type Program struct {
	code []byte
}

// Load copies up to MaxCodeSize bytes from the source.
func Load(r io.Reader) (*Program, error) {
	code, err := io.ReadAll(io.LimitReader(r, MaxCodeSize))
	if err != nil {
		return nil, fmt.Errorf("load program: %w", err)
	}

	return &Program{code: code}, nil
}

// LoadFile loads the source at the given path. The existence check
// runs first so a missing file surfaces as ErrSourceNotFound rather
// than a bare open error.
func LoadFile(path string) (*Program, error) {
	_, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load program %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}

// Bytes returns the raw code. Callers must treat it as read-only.
func (p *Program) Bytes() []byte {
	return p.code
}

// Len is the number of bytes actually loaded.
func (p *Program) Len() int {
	return len(p.code)
}
