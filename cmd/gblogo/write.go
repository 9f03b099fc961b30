package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/egor9814/gblogo"
)

type outputFormat int

const (
	formatRaw outputFormat = iota
	formatIntelHex
)

func (f outputFormat) String() string {
	switch f {
	case formatIntelHex:
		return "intel hex"
	default:
		return "raw"
	}
}

func encodeLogo(format outputFormat) ([]byte, error) {
	data, err := gblogo.ParseHex(gblogo.LogoHex)
	if err != nil {
		return nil, err
	}
	if format == formatIntelHex {
		var buf bytes.Buffer
		if err := dumpIntelHex(&buf, data); err != nil {
			return nil, err
		}
		data = buf.Bytes()
	}
	return data, nil
}

// writeLogo returns the number of payload bytes handed to the output,
// before compression.
func writeLogo(name string, format outputFormat, zstd *zstdInfo, verbose bool) (n int, err error) {
	if verbose {
		log("writing ", format, " logo")
		if !isStdIOFile(name) {
			logf(" to %q", name)
		}
		logln("...")
	}

	if format == formatRaw && zstd == nil && !isStdIOFile(name) {
		return gblogo.ConvertAndWrite(gblogo.LogoHex, name)
	}

	data, err := encodeLogo(format)
	if err != nil {
		return 0, err
	}

	w, c, err := openFileForWrite(name)
	if err != nil {
		return 0, err
	}
	defer closeOutput(c, name, &err)

	w, zc, err := zstd.wrapWriter(w, uint64(len(data)))
	if err != nil {
		return 0, err
	}
	defer closeOutput(zc, "ZSTD Compressor", &err)

	n, err = gblogo.NewWriter(w).Write(data)
	if err != nil {
		err = &gblogo.IOError{Op: "write", Path: name, Err: err}
	}
	return
}

// closeOutput reports a close failure unless an earlier error is pending.
func closeOutput(c io.Closer, name string, err *error) {
	if c == nil {
		return
	}
	if e := c.Close(); e != nil && *err == nil {
		*err = &gblogo.IOError{Op: "close", Path: name, Err: e}
	}
}

func statusMessage(n int, name string) string {
	if isStdIOFile(name) {
		return fmt.Sprintf("written %d bytes to stdout", n)
	}
	return fmt.Sprintf("written %d bytes to %q", n, name)
}
