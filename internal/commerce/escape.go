package commerce

import "strings"

const upperhex = "0123456789ABCDEF"

// EscapeSegment percent-encodes s so it can be used as a single path segment.
// Only ASCII letters, digits and - _ . ! ~ * ' ( ) are left as-is; every other byte,
// including ',' and '/', is encoded as %XX.
func EscapeSegment(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreserved(c) {
			sb.WriteByte(c)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperhex[c>>4])
		sb.WriteByte(upperhex[c&15])
	}
	return sb.String()
}

func isUnreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}
