// internal/markup/discord.go
//
// Discord styled-text builder.
// Responsibilities:
//   - Accumulate text runs, each with a CalculatedStyle.
//   - Emit Discord markdown delimiters only where the style changes.
//   - Keep delimiters outside leading/trailing whitespace of a run, since
//     Discord does not render styling that opens or closes on whitespace.
//
// Delimiters open in the order ~~ _ ** __ and close in the reverse order.

package markup

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	underlineMark     = "__"
	boldMark          = "**"
	italicsMark       = "_"
	strikethroughMark = "~~"
)

// TextBuilder accumulates styled runs into one Discord message body.
type TextBuilder struct {
	buf       []byte
	last      CalculatedStyle
	trailingW int // bytes of whitespace at the end of buf since the last visible text

	limit     int // bytes of text accepted, 0 for no limit
	written   int
	truncated bool
}

// SetLimit caps the text the builder accepts at n bytes. Text past the cap
// is dropped, cut on a rune boundary; delimiters do not count.
func (b *TextBuilder) SetLimit(n int) { b.limit = n }

// Truncated reports whether the limit dropped any text.
func (b *TextBuilder) Truncated() bool { return b.truncated }

func (b *TextBuilder) budget(s string) string {
	room := max(b.limit-b.written, 0)
	if len(s) > room {
		for room > 0 && !utf8.RuneStart(s[room]) {
			room--
		}
		s = s[:room]
		b.truncated = true
	}
	b.written += len(s)
	return s
}

// change describes what happened to one flag between two runs.
type change uint8

const (
	same change = iota
	turnedOn
	turnedOff
)

func diff(was, now bool) change {
	switch {
	case was == now:
		return same
	case now:
		return turnedOn
	default:
		return turnedOff
	}
}

// WriteString appends s styled with style.
func (b *TextBuilder) WriteString(s string, style CalculatedStyle) {
	switch {
	case style.Superscript:
		s = ToSuperscript(s)
	case style.Subscript:
		s = ToSubscript(s)
	}
	if b.limit > 0 {
		s = b.budget(s)
	}
	if s == "" {
		return
	}

	lead, text, trail := SplitTrim(s)
	if text == "" {
		// Pure whitespace never carries a style transition.
		b.buf = append(b.buf, s...)
		b.trailingW += len(s)
		return
	}

	underline := diff(b.last.Underline, style.Underline)
	bold := diff(b.last.Bold, style.Bold)
	italics := diff(b.last.Italics, style.Italics)
	strike := diff(b.last.Strikethrough, style.Strikethrough)

	if underline == same && bold == same && italics == same && strike == same {
		b.buf = append(b.buf, s...)
		b.trailingW = len(trail)
		b.last = style
		return
	}

	// Closing delimiters must precede whitespace already written.
	pulled := string(b.buf[len(b.buf)-b.trailingW:])
	b.buf = b.buf[:len(b.buf)-b.trailingW]

	b.mark(underlineMark, underline, turnedOff)
	b.mark(boldMark, bold, turnedOff)
	b.mark(italicsMark, italics, turnedOff)
	b.mark(strikethroughMark, strike, turnedOff)

	b.buf = append(b.buf, pulled...)
	b.buf = append(b.buf, lead...)

	b.mark(strikethroughMark, strike, turnedOn)
	b.mark(italicsMark, italics, turnedOn)
	b.mark(boldMark, bold, turnedOn)
	b.mark(underlineMark, underline, turnedOn)

	b.buf = append(b.buf, text...)
	b.buf = append(b.buf, trail...)
	b.trailingW = len(trail)
	b.last = style
}

func (b *TextBuilder) mark(m string, c, want change) {
	if c == want {
		b.buf = append(b.buf, m...)
	}
}

// String closes every style still open and returns the message text.
// The builder must not be written to afterwards.
func (b *TextBuilder) String() string {
	pulled := string(b.buf[len(b.buf)-b.trailingW:])
	b.buf = b.buf[:len(b.buf)-b.trailingW]

	if b.last.Underline {
		b.buf = append(b.buf, underlineMark...)
	}
	if b.last.Bold {
		b.buf = append(b.buf, boldMark...)
	}
	if b.last.Italics {
		b.buf = append(b.buf, italicsMark...)
	}
	if b.last.Strikethrough {
		b.buf = append(b.buf, strikethroughMark...)
	}
	b.buf = append(b.buf, pulled...)
	b.trailingW = 0
	b.last = CalculatedStyle{}
	return string(b.buf)
}

// SplitTrim splits s into its leading whitespace, its core text and its
// trailing whitespace. A string of only whitespace is all trailing.
func SplitTrim(s string) (lead, text, trail string) {
	end := strings.LastIndexFunc(s, func(r rune) bool { return !unicode.IsSpace(r) })
	if end < 0 {
		return "", "", s
	}
	_, size := utf8.DecodeRuneInString(s[end:])
	end += size

	start := strings.IndexFunc(s[:end], func(r rune) bool { return !unicode.IsSpace(r) })
	return s[:start], s[start:end], s[end:]
}
