package exec

import "io"

// Console is the byte-oriented terminal a running program sees. A nil
// Console, a nil Input or a nil Output all behave as an exhausted
// reader and a discarding writer, so a program that does no IO needs
// no wiring.
type Console struct {
	Input  io.Reader
	Output io.Writer
}

// ReadByte reads the next input byte.
func (c *Console) ReadByte() (b byte, err error) {
	if c == nil || c.Input == nil {
		err = io.EOF
		return
	}
	var buf [1]byte
	_, err = io.ReadFull(c.Input, buf[:])
	b = buf[0]
	return
}

// WriteByte writes one output byte.
func (c *Console) WriteByte(b byte) (err error) {
	if c == nil || c.Output == nil {
		return
	}
	_, err = c.Output.Write([]byte{b})
	return
}

// WriteString writes a run of output bytes.
func (c *Console) WriteString(text string) (err error) {
	if c == nil || c.Output == nil {
		return
	}
	_, err = io.WriteString(c.Output, text)
	return
}
