package gblogo

import (
	"io"
)

// MaxROMSize is the size of the two fixed ROM banks.
const MaxROMSize = 0x8000

type Reader struct {
	in io.Reader
}

func NewReader(in io.Reader) *Reader {
	return &Reader{
		in: in,
	}
}

func (r *Reader) ReadAll() ([]byte, error) {
	return io.ReadAll(r.in)
}

// ReadROM reads at most one byte past MaxROMSize so that oversized images
// are detected without reading them whole.
func (r *Reader) ReadROM() ([]byte, error) {
	b, err := io.ReadAll(io.LimitReader(r.in, MaxROMSize+1))
	if err != nil {
		return nil, err
	}
	if len(b) > MaxROMSize {
		return nil, ErrROMTooBig
	}
	return b, nil
}

func (r *Reader) ReadHex() ([]byte, error) {
	b, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	return ParseHex(string(b))
}
