package uio

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// formEncode converts s to Latin-1 and percent-encodes it for the search
// forms, which do not accept UTF-8. Letters, digits and "-./" pass
// through, space becomes '+', NUL is dropped and every other byte is
// escaped.
func formEncode(s string) string {
	raw, err := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder()).String(s)
	if err != nil {
		raw = s
	}
	var b strings.Builder
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		switch {
		case c == 0:
		case c == ' ':
			b.WriteByte('+')
		case c >= '-' && c <= '9', c >= 'A' && c <= 'Z', c >= 'a' && c <= 'z':
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}

// decodeBody returns the page as UTF-8. Pages that are not valid UTF-8
// are taken to be Latin-1.
func decodeBody(body []byte) string {
	if utf8.Valid(body) {
		return string(body)
	}
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(body)
	if err != nil {
		return string(body)
	}
	return string(s)
}
