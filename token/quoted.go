package token

import (
	"unicode/utf8"
)

const hexDigits = "0123456789abcdef"

// Quote returns v as a double quoted JSON string literal.
//
// Only '"', '\\' and control characters below U+0020 are escaped; every
// other rune is copied as UTF-8. Invalid UTF-8 is replaced by U+FFFD.
func Quote(v string) string {
	return string(AppendQuote(make([]byte, 0, len(v)+2), v))
}

func AppendQuote(d []byte, v string) []byte {
	d = append(d, '"')
	for _, r := range v {
		switch r {
		case '"':
			d = append(d, '\\', '"')
		case '\\':
			d = append(d, '\\', '\\')
		case '\b':
			d = append(d, '\\', 'b')
		case '\f':
			d = append(d, '\\', 'f')
		case '\n':
			d = append(d, '\\', 'n')
		case '\r':
			d = append(d, '\\', 'r')
		case '\t':
			d = append(d, '\\', 't')
		default:
			if r < 0x20 {
				d = append(d, '\\', 'u', '0', '0', hexDigits[r>>4], hexDigits[r&0xf])
			} else {
				d = utf8.AppendRune(d, r)
			}
		}
	}
	return append(d, '"')
}
