package device

import (
	"errors"
	"io"
)

// Terminal adapts an io.Reader/io.Writer pair, typically stdin and
// stdout, to the character device contracts. ReadChar blocks until a
// byte arrives; EOF maps to "no character available".
type Terminal struct {
	in  io.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:  in,
		out: out,
	}
}

func (t *Terminal) ReadChar() (byte, bool, error) {
	var buf [1]byte
	_, err := io.ReadFull(t.in, buf[:])
	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return buf[0], true, nil
}

func (t *Terminal) WriteChar(c byte) error {
	_, err := t.out.Write([]byte{c})
	return err
}
