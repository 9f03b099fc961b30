package gblogo

import (
	"io"
)

type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
	}
}

func (w *Writer) write(b []byte) (int, error) {
	n, err := w.out.Write(b)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return n, err
}

func (w *Writer) WriteLogo() error {
	_, err := w.write(logo)
	return err
}

func (w *Writer) WriteHex(text string) (int, error) {
	b, err := ParseHex(text)
	if err != nil {
		return 0, err
	}
	return w.write(b)
}

func (w *Writer) Write(b []byte) (int, error) {
	return w.write(b)
}
