package gblogo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestConvertAndWrite(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nintendo.bin")
	n, err := ConvertAndWrite(LogoHex, name)
	if err != nil {
		t.Fatal(err)
	}
	if n != LogoSize {
		t.Fatalf("wrote %d bytes, want %d", n, LogoSize)
	}
	b, err := os.ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != LogoSize {
		t.Fatalf("file has %d bytes, want %d", len(b), LogoSize)
	}
	want, _ := ParseHex(LogoHex)
	for i := range want {
		if b[i] != want[i] {
			t.Fatalf("byte %d: got 0x%02X, want 0x%02X", i, b[i], want[i])
		}
	}
	if !bytes.Equal(b[:4], []byte{0xCE, 0xED, 0x66, 0x66}) {
		t.Fatalf("unexpected head % X", b[:4])
	}
	if !bytes.Equal(b[44:], []byte{0xBB, 0xB9, 0x33, 0x3E}) {
		t.Fatalf("unexpected tail % X", b[44:])
	}
}

func TestConvertAndWriteIdempotent(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nintendo.bin")
	var files [2][]byte
	for i := range files {
		if _, err := ConvertAndWrite(LogoHex, name); err != nil {
			t.Fatal(err)
		}
		b, err := ReadFile(name)
		if err != nil {
			t.Fatal(err)
		}
		files[i] = b
	}
	if !bytes.Equal(files[0], files[1]) {
		t.Fatal("second write differs from the first")
	}
}

func TestWriteFileTruncates(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nintendo.bin")
	if err := os.WriteFile(name, bytes.Repeat([]byte{0xFF}, 100), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := WriteFile(name, Logo()); err != nil {
		t.Fatal(err)
	}
	b, err := ReadFile(name)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, Logo()) {
		t.Fatalf("got % X", b)
	}
}

func TestWriteFileMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	_, err := WriteFile(filepath.Join(dir, "nintendo.bin"), Logo())
	var ioe *IOError
	if !errors.As(err, &ioe) {
		t.Fatalf("expected *IOError, got %v", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist, got %v", err)
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Fatal("parent directory must not be created")
	}
}

func TestConvertAndWriteParseError(t *testing.T) {
	name := filepath.Join(t.TempDir(), "nintendo.bin")
	_, err := ConvertAndWrite("CE XY", name)
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if _, err := os.Stat(name); !os.IsNotExist(err) {
		t.Fatal("nothing must be written on parse failure")
	}
}

type shortWriter struct{}

func (shortWriter) Write(b []byte) (int, error) {
	return len(b) / 2, nil
}

func TestWriterShortWrite(t *testing.T) {
	if err := NewWriter(shortWriter{}).WriteLogo(); !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected short write, got %v", err)
	}
}

func TestReaderReadHex(t *testing.T) {
	b, err := NewReader(bytes.NewBufferString(LogoHex)).ReadHex()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(b, Logo()) {
		t.Fatalf("got % X", b)
	}
}

func ExampleConvertAndWrite() {
	dir, err := os.MkdirTemp("", "gblogo")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)
	n, err := ConvertAndWrite(LogoHex, filepath.Join(dir, "nintendo.bin"))
	if err != nil {
		panic(err)
	}
	fmt.Println(n)
	// Output: 48
}
