package gblogo

import (
	"strconv"
	"strings"
)

// ParseHex converts whitespace separated two-digit hex tokens into bytes,
// one byte per token, in input order.
func ParseHex(text string) ([]byte, error) {
	tokens := strings.Fields(text)
	b := make([]byte, 0, len(tokens))
	for i, it := range tokens {
		if len(it) != 2 {
			return nil, &ParseError{Index: i, Token: it}
		}
		v, err := strconv.ParseUint(it, 16, 8)
		if err != nil {
			return nil, &ParseError{Index: i, Token: it, Err: err}
		}
		b = append(b, byte(v))
	}
	return b, nil
}

// FormatHex is the inverse of ParseHex: uppercase tokens joined by a space.
func FormatHex(b []byte) string {
	const digits = "0123456789ABCDEF"
	if len(b) == 0 {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(b)*3 - 1)
	for i, it := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(digits[it>>4])
		sb.WriteByte(digits[it&0x0f])
	}
	return sb.String()
}
