package main

import (
	"io"

	"github.com/egor9814/gblogo"
	"github.com/marcinbor85/gohex"
)

const ihexLineLength = 16

// dumpIntelHex writes data as Intel HEX records placed at the header's
// logo address.
func dumpIntelHex(w io.Writer, data []byte) error {
	mem := gohex.NewMemory()
	if err := mem.AddBinary(gblogo.LogoOffset, data); err != nil {
		return err
	}
	return mem.DumpIntelHex(w, ihexLineLength)
}
