package gblogo

import (
	"io"
	"os"
)

type File struct {
	Name string
}

func (f File) Read() (io.ReadCloser, error) {
	r, err := os.Open(f.Name)
	if err != nil {
		return nil, &IOError{Op: "open", Path: f.Name, Err: err}
	}
	return r, nil
}

// Write creates or truncates the file. Parent directories are never
// created, a missing one is an error.
func (f File) Write() (io.WriteCloser, error) {
	w, err := os.OpenFile(f.Name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return nil, &IOError{Op: "create", Path: f.Name, Err: err}
	}
	return w, nil
}

// WriteFile writes data to name, closing the file on every path.
func WriteFile(name string, data []byte) (n int, err error) {
	wc, err := File{Name: name}.Write()
	if err != nil {
		return 0, err
	}
	defer func() {
		if e := wc.Close(); e != nil && err == nil {
			err = &IOError{Op: "close", Path: name, Err: e}
		}
	}()
	n, err = NewWriter(wc).Write(data)
	if err != nil {
		err = &IOError{Op: "write", Path: name, Err: err}
	}
	return
}

// ConvertAndWrite parses hexText and writes the bytes to name. Nothing is
// written when parsing fails.
func ConvertAndWrite(hexText, name string) (int, error) {
	b, err := ParseHex(hexText)
	if err != nil {
		return 0, err
	}
	return WriteFile(name, b)
}

func ReadFile(name string) ([]byte, error) {
	rc, err := File{Name: name}.Read()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	b, err := NewReader(rc).ReadAll()
	if err != nil {
		return nil, &IOError{Op: "read", Path: name, Err: err}
	}
	return b, nil
}
