package main

import (
	"io"

	"github.com/egor9814/gblogo"
)

const defaultOutput = "nintendo.bin"

func isStdIOFile(name string) bool {
	return name == "-"
}

func openFileForRead(name string) (io.Reader, io.Closer, error) {
	if isStdIOFile(name) || name == "" {
		return stdin, nil, nil
	} else {
		f, err := gblogo.File{Name: name}.Read()
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
}

func openFileForWrite(name string) (io.Writer, io.Closer, error) {
	if isStdIOFile(name) {
		return stdout, nil, nil
	} else {
		f, err := gblogo.File{Name: name}.Write()
		if err != nil {
			return nil, nil, err
		}
		return f, f, nil
	}
}

func handleClosing(c io.Closer, name string) {
	if c == nil {
		return
	}
	if err := c.Close(); err != nil {
		logf("warning: cannot close %q: %v\n", name, err)
	}
}

// handleCommand reports err and returns the process exit code.
func handleCommand(err error) int {
	if err != nil {
		logf("error: %v\n", err)
		return 1
	}
	return 0
}
