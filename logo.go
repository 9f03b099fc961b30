package gblogo

// LogoHex is the boot logo bitmap every Game Boy cartridge carries in its
// header, as whitespace separated hex tokens.
const LogoHex = `
CE ED 66 66 CC 0D 00 0B 03 73 00 83 00 0C 00 0D
00 08 11 1F 88 89 00 0E DC CC 6E E6 DD DD D9 99
BB BB 67 63 6E 0E EC CC DD DC 99 9F BB B9 33 3E
`

const LogoSize = 48

var logo = mustParseHex(LogoHex)

// Logo returns a copy of the parsed logo bytes.
func Logo() []byte {
	b := make([]byte, len(logo))
	copy(b, logo)
	return b
}

func mustParseHex(s string) []byte {
	b, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	if len(b) != LogoSize {
		panic("invalid logo size")
	}
	return b
}
