package bot

import (
	"strings"
	"unicode"
)

// SplitArgs splits s on whitespace. Double quotes group words into one
// argument and are removed; an unterminated quote runs to the end.
func SplitArgs(s string) []string {
	var (
		out    []string
		cur    strings.Builder
		quoted bool
		inArg  bool
	)
	for _, r := range s {
		switch {
		case r == '"':
			quoted = !quoted
			inArg = true
		case unicode.IsSpace(r) && !quoted:
			if inArg {
				out = append(out, cur.String())
				cur.Reset()
				inArg = false
			}
		default:
			cur.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		out = append(out, cur.String())
	}
	return out
}

// cutCommand splits "name rest of line" into the name and the trimmed rest.
func cutCommand(s string) (name, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], strings.TrimSpace(s[i:])
}

// guessText returns the text after a guess marker (':', '.' or ';').
func guessText(content string) (string, bool) {
	if content == "" {
		return "", false
	}
	switch content[0] {
	case ':', '.', ';':
		return content[1:], true
	}
	return "", false
}
