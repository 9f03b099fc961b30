package main

import (
	"fmt"

	"github.com/egor9814/gblogo"
)

func readInput(name string) (r *gblogo.Reader, done func(), err error) {
	in, c, err := openFileForRead(name)
	if err != nil {
		return nil, nil, err
	}
	in, zc, err := (*zstdInfo)(nil).wrapReader(in)
	if err != nil {
		handleClosing(c, name)
		return nil, nil, err
	}
	return gblogo.NewReader(in), func() {
		handleClosing(zc, "ZSTD Decompressor")
		handleClosing(c, name)
	}, nil
}

func checkROM(name string, verbose bool) error {
	if verbose {
		logf("checking rom header %q...\n", name)
	}
	r, done, err := readInput(name)
	if err != nil {
		return err
	}
	defer done()

	rom, err := r.ReadROM()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if err := gblogo.CheckROM(rom); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	if verbose {
		header, _ := gblogo.HeaderLogo(rom)
		logf("logo at 0x%04X: %s\n", gblogo.LogoOffset, gblogo.FormatHex(header))
		logf("header checksum: 0x%02X\n", rom[gblogo.HeaderChecksumOffset])
	}
	_, _ = fmt.Fprintf(stdout, "%s: ok\n", name)
	return nil
}

func dumpFile(name string, verbose bool) error {
	r, done, err := readInput(name)
	if err != nil {
		return err
	}
	defer done()

	b, err := r.ReadAll()
	if err != nil {
		return &gblogo.IOError{Op: "read", Path: name, Err: err}
	}
	if verbose {
		logf("%q: %d bytes\n", name, len(b))
	}
	for len(b) > 0 {
		line := b[:min(16, len(b))]
		_, _ = fmt.Fprintln(stdout, gblogo.FormatHex(line))
		b = b[len(line):]
	}
	return nil
}
