// Package device holds the character I/O capabilities the VM core
// consumes. How a device reaches a terminal, a file or a buffer is
// not the core's concern.
package device

// Reader reads one character on demand, synchronously. ok is false
// when no character is available (end of input); err is reserved for
// real device failures.
type Reader interface {
	ReadChar() (c byte, ok bool, err error)
}

// Writer writes one character, synchronously. The core imposes no
// buffering requirements.
type Writer interface {
	WriteChar(c byte) error
}
