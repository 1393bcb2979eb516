package msgbunch

import (
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runes(s string) int { return utf8.RuneCountInString(s) }

func build(t *testing.T, b *Builder) []string {
	t.Helper()
	bunch, err := b.Build()
	require.NoError(t, err)
	return bunch.Messages
}

func TestAddStringSplitsAtLimit(t *testing.T) {
	in := strings.Repeat("a", 2500)
	msgs := build(t, New().AddString(in))

	require.Len(t, msgs, 2)
	assert.Equal(t, 2000, runes(msgs[0]))
	assert.Equal(t, 500, runes(msgs[1]))
}

func TestAddStringManyPayloads(t *testing.T) {
	in := strings.Repeat("b", 2*Limit+1)
	msgs := build(t, New().AddString(in))

	require.Len(t, msgs, 3)
	assert.Equal(t, []int{Limit, Limit, 1}, []int{runes(msgs[0]), runes(msgs[1]), runes(msgs[2])})
}

func TestAddStringRuneAligned(t *testing.T) {
	b := New().AddString(strings.Repeat("a", Limit-1)).AddString("øøø")
	msgs := build(t, b)

	require.Len(t, msgs, 2)
	assert.Equal(t, Limit, runes(msgs[0]))
	assert.True(t, strings.HasSuffix(msgs[0], "ø"))
	assert.Equal(t, "øø", msgs[1])
	for _, m := range msgs {
		assert.True(t, utf8.ValidString(m))
	}
}

func TestEmptyBuilder(t *testing.T) {
	bunch, err := New().Build()
	require.NoError(t, err)
	assert.Empty(t, bunch.Messages)
}

func TestSectionFitsIsNotSplit(t *testing.T) {
	b := New().AddString(strings.Repeat("a", 1900))
	b.BeginSection().AddString(strings.Repeat("x", 100)).EndSection()
	msgs := build(t, b)

	require.Len(t, msgs, 1)
	assert.Equal(t, Limit, runes(msgs[0]))
}

func TestSectionMovesToNextPayload(t *testing.T) {
	b := New().AddString(strings.Repeat("a", 1995))
	b.BeginSection().AddString("hello, world").EndSection()
	msgs := build(t, b)

	// "hello," is six runes and does not fit in the five left.
	require.Len(t, msgs, 2)
	assert.Equal(t, strings.Repeat("a", 1995), msgs[0])
	assert.Equal(t, "hello, world", msgs[1])
}

func TestSectionSplitsAtPunctuationInRoom(t *testing.T) {
	b := New().AddString(strings.Repeat("a", 1994))
	b.BeginSection().AddString("hello, world").EndSection()
	msgs := build(t, b)

	require.Len(t, msgs, 2)
	assert.Equal(t, strings.Repeat("a", 1994)+"hello,", msgs[0])
	assert.Equal(t, " world", msgs[1])
}

func TestBeginSectionIdempotent(t *testing.T) {
	once := New().AddString(strings.Repeat("a", 1994))
	once.BeginSection().AddString("hello, ").AddString("world").EndSection()

	twice := New().AddString(strings.Repeat("a", 1994))
	twice.BeginSection().AddString("hello, ").BeginSection().AddString("world").EndSection()

	assert.Equal(t, build(t, once), build(t, twice))
}

func TestInSection(t *testing.T) {
	b := New()
	assert.False(t, b.InSection())
	b.BeginSection()
	assert.True(t, b.InSection())
	b.EndSection()
	assert.False(t, b.InSection())
}

func TestEndSectionWithoutBegin(t *testing.T) {
	msgs := build(t, New().AddString("x").EndSection().EndSection())
	assert.Equal(t, []string{"x"}, msgs)
}

func TestBuildClosesOpenSection(t *testing.T) {
	b := New().AddString("head ")
	b.BeginSection().AddString("tail")
	assert.Equal(t, []string{"head tail"}, build(t, b))
}

func TestLongSectionSplitsRepeatedly(t *testing.T) {
	b := newWithLimit(10)
	b.BeginSection().AddString("aaaa,bbbb,cccc,dddd,ee").EndSection()
	msgs := build(t, b)

	assert.Equal(t, []string{"aaaa,bbbb,", "cccc,dddd,", "ee"}, msgs)
}

func TestLongSectionCustomSplit(t *testing.T) {
	b := newWithLimit(6)
	b.BeginSection().AddString("ab cd ef gh").EndSectionWith(func(r rune) bool { return r == ' ' })
	msgs := build(t, b)

	assert.Equal(t, []string{"ab cd ", "ef gh"}, msgs)
}

func TestSplitPointSnapsToRuneBoundary(t *testing.T) {
	b := newWithLimit(4)
	b.BeginSection().AddString("ø,øø,ø").EndSection()
	msgs := build(t, b)

	assert.Equal(t, []string{"ø,", "øø,ø"}, msgs)
	for _, m := range msgs {
		assert.True(t, utf8.ValidString(m), "payload %q", m)
		assert.LessOrEqual(t, runes(m), 4)
	}
	assert.Equal(t, "ø,øø,ø", strings.Join(msgs, ""))
}

func TestMalformedSection(t *testing.T) {
	b := newWithLimit(5).AddString("ok")
	b.BeginSection().AddString("abcdefghij").EndSection()
	b.AddString("ignored")

	bunch, err := b.Build()
	require.ErrorIs(t, err, ErrMalformedSection)
	assert.ErrorIs(t, b.Err(), ErrMalformedSection)
	assert.Equal(t, []string{"ok"}, bunch.Messages)
}

func TestNeverSplitKeepsSectionWhole(t *testing.T) {
	b := newWithLimit(10).AddString("12345678")
	b.BeginSection().AddString("a,b,c").EndSectionWith(NeverSplit)
	assert.Equal(t, []string{"12345678", "a,b,c"}, build(t, b))
}

func TestAddLinesKeepsShortLinesTogether(t *testing.T) {
	b := New().AddString(strings.Repeat("a", 1990))
	b.AddLines("abc").AddLines("def")
	msgs := build(t, b)

	require.Len(t, msgs, 1)
	assert.True(t, strings.HasSuffix(msgs[0], "abc\ndef\n"))
}

func TestAddLinesBreaksBetweenLinesNearLimit(t *testing.T) {
	b := New().AddString(strings.Repeat("a", 1995))
	b.AddLines("abc\ndef")
	msgs := build(t, b)

	require.Len(t, msgs, 2)
	assert.True(t, strings.HasSuffix(msgs[0], "abc\n"))
	assert.Equal(t, "def\n", msgs[1])
}

func TestAddLinesMovesWholeLine(t *testing.T) {
	b := New().AddString(strings.Repeat("a", 1994))
	b.AddLines("hello, world")
	msgs := build(t, b)

	require.Len(t, msgs, 2)
	assert.Equal(t, strings.Repeat("a", 1994), msgs[0])
	assert.Equal(t, "hello, world\n", msgs[1])
}

func TestEndSectionStillFillsRoom(t *testing.T) {
	b := New().AddString(strings.Repeat("a", 1994))
	b.BeginSection().AddString("hello, world").EndSection()
	msgs := build(t, b)

	require.Len(t, msgs, 2)
	assert.True(t, strings.HasSuffix(msgs[0], "ahello,"))
	assert.Equal(t, " world", msgs[1])
}

func TestAddLinesSplitsOverlongLine(t *testing.T) {
	b := newWithLimit(10).AddString("xx")
	b.AddLines("abcd, efgh, ijkl")
	msgs := build(t, b)

	assert.Equal(t, []string{"xx", "abcd,", " efgh,", " ijkl\n"}, msgs)
}

func TestAddLinesTrimsCarriageReturns(t *testing.T) {
	assert.Equal(t, []string{"a\nb\n\nc\n"}, build(t, New().AddLines("a\r\nb\n\nc\n")))
}

type entry string

func (e entry) String() string { return string(e) }

func TestEntries(t *testing.T) {
	b := New()
	Entries(b, []entry{"one", "two\nlines"})
	assert.Equal(t, []string{"one\ntwo\nlines\n"}, build(t, b))
}

var alphabet = []rune("abcdefghijklmnopqrstuvwxyzæøåðíóú ,.;:!?-()\n€𝄞")

func randomText(r *rand.Rand, n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		sb.WriteRune(alphabet[r.Intn(len(alphabet))])
	}
	return sb.String()
}

func checkInvariants(t *testing.T, msgs []string, want string, limit int) {
	t.Helper()
	for _, m := range msgs {
		require.True(t, utf8.ValidString(m), "invalid utf-8 payload")
		require.LessOrEqual(t, runes(m), limit)
		require.NotEmpty(t, m)
	}
	require.Equal(t, want, strings.Join(msgs, ""))
}

func TestAddStringProperties(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		b := New()
		var all strings.Builder
		for i := r.Intn(20); i >= 0; i-- {
			s := randomText(r, r.Intn(900))
			all.WriteString(s)
			b.AddString(s)
		}
		checkInvariants(t, build(t, b), all.String(), Limit)
	}
}

func TestSectionProperties(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for round := 0; round < 200; round++ {
		b := newWithLimit(128)
		var all strings.Builder
		for i := r.Intn(30); i >= 0; i-- {
			// Roughly one rune in six is a split character, so every
			// 128 rune window holds one for this fixed seed.
			s := randomText(r, r.Intn(400))
			all.WriteString(s)
			if r.Intn(2) == 0 {
				b.BeginSection().AddString(s).EndSection()
			} else {
				b.AddString(s)
			}
		}
		checkInvariants(t, build(t, b), all.String(), 128)
	}
}
