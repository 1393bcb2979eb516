// internal/msgbunch/msgbunch.go
//
// Splits long, structured text into Discord-sized messages.
// Responsibilities:
//   - Accumulate text into payloads of at most Limit runes each.
//   - Keep "no-split sections" (an entry, a table, a line) inside a single
//     payload whenever the section fits.
//   - When a section cannot fit, split it at a caller-chosen character class
//     (punctuation by default), never inside a rune.
//
// Counting is in Unicode scalar values (runes), not bytes.
// A section longer than a payload with no acceptable split point within a
// payload's width is a malformed section; the builder stops and Build
// reports ErrMalformedSection.

package msgbunch

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// Limit is the maximum number of runes in one Discord message.
const Limit = 2000

// ErrMalformedSection reports a section that has to be split but contains
// no acceptable split point within a full payload.
var ErrMalformedSection = errors.New("msgbunch: no split point in section")

// Bunch is an ordered list of payloads, each at most Limit runes long.
type Bunch struct {
	Messages []string
}

// String joins all payloads back into one text.
func (b Bunch) String() string { return strings.Join(b.Messages, "") }

// Builder accumulates text into a Bunch.
//
// The zero value is ready to use. Methods return the builder so that calls
// can be chained.
type Builder struct {
	limit    int
	messages []string
	cur      strings.Builder
	count    int // runes in cur
	section  *section
	err      error
}

type section struct {
	buf   strings.Builder
	count int
}

// New returns an empty builder.
func New() *Builder { return &Builder{} }

// newWithLimit is used by tests to exercise splitting with short payloads.
func newWithLimit(limit int) *Builder { return &Builder{limit: limit} }

func (b *Builder) capacity() int {
	if b.limit > 0 {
		return b.limit
	}
	return Limit
}

// DefaultSplit reports whether r is one of the characters a section is
// split after by default.
func DefaultSplit(r rune) bool {
	switch r {
	case ';', ',', '.', '?', '!', ')', ':', '-':
		return true
	}
	return false
}

// NeverSplit rejects every split point. Sections ended with it are kept
// whole or reported as malformed.
func NeverSplit(rune) bool { return false }

// AddString appends s to the open section or, outside a section, to the
// current payload, starting new payloads at exactly Limit runes.
func (b *Builder) AddString(s string) *Builder {
	if b.err != nil || s == "" {
		return b
	}
	n := utf8.RuneCountInString(s)
	if b.section != nil {
		b.section.buf.WriteString(s)
		b.section.count += n
		return b
	}
	for b.count+n > b.capacity() {
		i := byteOffset(s, b.capacity()-b.count)
		b.cur.WriteString(s[:i])
		b.flush()
		s = s[i:]
		n = utf8.RuneCountInString(s)
	}
	b.cur.WriteString(s)
	b.count += n
	return b
}

// AddStringf is AddString with fmt.Sprintf formatting.
func (b *Builder) AddStringf(format string, args ...any) *Builder {
	return b.AddString(fmt.Sprintf(format, args...))
}

// BeginSection starts a no-split section. It does nothing when a section
// is already open.
func (b *Builder) BeginSection() *Builder {
	if b.section == nil && b.err == nil {
		b.section = &section{}
	}
	return b
}

// InSection reports whether a section is open.
func (b *Builder) InSection() bool { return b.section != nil }

// EndSection ends the open section, splitting at DefaultSplit characters
// if it has to be split.
func (b *Builder) EndSection() *Builder { return b.EndSectionWith(DefaultSplit) }

// EndSectionWith ends the open section. If the section does not fit in the
// room left in the current payload, it is split after the last rune
// accepted by split that still fits, and the rest continues in new
// payloads. It does nothing when no section is open.
func (b *Builder) EndSectionWith(split func(rune) bool) *Builder {
	return b.endSection(split, true)
}

// endSection commits the open section. Without fillRoom a section that
// does not fit starts a new payload and is only split when it is longer
// than a whole payload.
func (b *Builder) endSection(split func(rune) bool, fillRoom bool) *Builder {
	sec := b.section
	b.section = nil
	if sec == nil || b.err != nil {
		return b
	}
	if b.count+sec.count <= b.capacity() {
		b.cur.WriteString(sec.buf.String())
		b.count += sec.count
		return b
	}

	s := sec.buf.String()
	n := sec.count

	// Fill what is left of the current payload if a split point fits there.
	if room := b.capacity() - b.count; fillRoom && room > 0 {
		if i, ok := splitPoint(s, room, split); ok {
			b.cur.WriteString(s[:i])
			s = s[i:]
			n = utf8.RuneCountInString(s)
		}
	}
	b.flush()

	for n > b.capacity() {
		i, ok := splitPoint(s, b.capacity(), split)
		if !ok {
			b.err = fmt.Errorf("%w: %d runes left, none splittable in the first %d", ErrMalformedSection, n, b.capacity())
			return b
		}
		b.cur.WriteString(s[:i])
		b.flush()
		s = s[i:]
		n = utf8.RuneCountInString(s)
	}
	b.cur.WriteString(s)
	b.count = n
	return b
}

// AddLines adds every line of text as its own section, each followed by a
// newline. A trailing newline is added even if text has none. A line that
// does not fit in the current payload moves whole to the next one; only a
// line longer than a payload is split, at DefaultSplit characters.
func (b *Builder) AddLines(text string) *Builder {
	for _, line := range lines(text) {
		b.BeginSection().AddString(line).AddString("\n").endSection(DefaultSplit, false)
	}
	return b
}

// Entries adds each entry with AddLines. It does not open a section around
// an entry; callers wanting one should wrap the call.
func Entries[E fmt.Stringer](b *Builder, entries []E) *Builder {
	for _, e := range entries {
		b.AddLines(e.String())
	}
	return b
}

// Err returns the error that stopped the builder, if any.
func (b *Builder) Err() error { return b.err }

// Build ends any open section and returns the payloads. Empty payloads are
// never returned. On ErrMalformedSection the payloads built before the
// failure are returned alongside the error.
func (b *Builder) Build() (Bunch, error) {
	b.EndSection()
	b.flush()
	return Bunch{Messages: b.messages}, b.err
}

// flush commits the current payload and starts an empty one.
func (b *Builder) flush() {
	if b.cur.Len() > 0 {
		b.messages = append(b.messages, b.cur.String())
	}
	b.cur.Reset()
	b.count = 0
}

// byteOffset returns the byte index of rune number n in s, or len(s).
func byteOffset(s string, n int) int {
	for i := range s {
		if n == 0 {
			return i
		}
		n--
	}
	return len(s)
}

// splitPoint finds the byte index just after the last rune among the first
// room runes of s that split accepts. The index always lies on a rune
// boundary and is greater than zero when ok.
func splitPoint(s string, room int, split func(rune) bool) (idx int, ok bool) {
	for i := 0; i < len(s) && room > 0; room-- {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		if split(r) {
			idx, ok = i, true
		}
	}
	return idx, ok
}

// lines splits text on '\n', dropping a trailing '\r' from each line and
// the empty string after a final newline.
func lines(text string) []string {
	if text == "" {
		return nil
	}
	out := strings.Split(text, "\n")
	if out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for i, l := range out {
		out[i] = strings.TrimSuffix(l, "\r")
	}
	return out
}
