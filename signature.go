package gblogo

import (
	"bytes"
)

// Cartridge header layout.
const (
	LogoOffset           = 0x0104
	TitleOffset          = 0x0134
	HeaderChecksumOffset = 0x014D
	HeaderEnd            = 0x0150
)

// HeaderLogo returns the logo slice of a ROM header, or false when rom
// ends before it.
func HeaderLogo(rom []byte) ([]byte, bool) {
	if len(rom) < LogoOffset+LogoSize {
		return nil, false
	}
	return rom[LogoOffset : LogoOffset+LogoSize], true
}

func CheckLogo(rom []byte) bool {
	b, ok := HeaderLogo(rom)
	return ok && bytes.Equal(b, logo)
}

// HeaderChecksum computes the checksum the boot ROM verifies over
// 0x0134..0x014C.
func HeaderChecksum(rom []byte) (x byte, err error) {
	if len(rom) <= HeaderChecksumOffset {
		return 0, ErrROMTooSmall
	}
	for _, it := range rom[TitleOffset:HeaderChecksumOffset] {
		x = x - it - 1
	}
	return
}

func CheckROM(rom []byte) error {
	if len(rom) > MaxROMSize {
		return ErrROMTooBig
	}
	if len(rom) < HeaderEnd {
		return ErrROMTooSmall
	}
	if !CheckLogo(rom) {
		return ErrLogoMismatch
	}
	want, err := HeaderChecksum(rom)
	if err != nil {
		return err
	}
	if got := rom[HeaderChecksumOffset]; want != got {
		return &ChecksumError{Want: want, Got: got}
	}
	return nil
}
