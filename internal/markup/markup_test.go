package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagOr(t *testing.T) {
	assert.Equal(t, On, On.Or(Off))
	assert.Equal(t, Off, Off.Or(On))
	assert.Equal(t, On, Inherit.Or(On))
	assert.Equal(t, Inherit, Inherit.Or(Inherit))
}

func TestOverInnerWins(t *testing.T) {
	assert.False(t, Style{Bold: Off}.Over(Style{Bold: On}).Calculate().Bold)
	assert.True(t, Style{Bold: On}.Over(Style{Bold: Off}).Calculate().Bold)
	assert.True(t, Empty.Over(Style{Bold: On}).Calculate().Bold)
	assert.Equal(t, CalculatedStyle{}, Empty.Calculate())

	got := Empty.Over(Style{Underline: Off}.Over(Style{Italics: On, Underline: On})).Calculate()
	assert.Equal(t, CalculatedStyle{Italics: true}, got)
}

func TestOverDoesNotInheritNewline(t *testing.T) {
	parent := Style{NewlineFollows: true, Bold: On}
	child := Empty.Over(parent)
	assert.False(t, child.NewlineFollows)
	assert.Equal(t, On, child.Bold)
}

func TestFromTables(t *testing.T) {
	assert.Equal(t, Style{Bold: On}, FromElementName("strong"))
	assert.Equal(t, Style{Underline: On}, FromElementName("a"))
	assert.Equal(t, Empty, FromElementName("span"))

	r := FromClass("_r")
	assert.True(t, r.NewlineFollows)
	assert.Equal(t, On, r.Bold)
	assert.Equal(t, Off, r.Italics)
	assert.Equal(t, Empty, FromClass("unknown"))
	assert.Equal(t, On, FromClass("_c").Superscript)
}

func TestSplitTrim(t *testing.T) {
	cases := []struct {
		in                string
		lead, text, trail string
	}{
		{"hestetest", "", "hestetest", ""},
		{"   hest  \n\n asdg \t\n", "   ", "hest  \n\n asdg", " \t\n"},
		{"\n", "", "", "\n"},
		{" ", "", "", " "},
		{"", "", "", ""},
		{" ø ", " ", "ø", " "},
	}
	for _, c := range cases {
		lead, text, trail := SplitTrim(c.in)
		assert.Equal(t, c.lead, lead, "lead of %q", c.in)
		assert.Equal(t, c.text, text, "text of %q", c.in)
		assert.Equal(t, c.trail, trail, "trail of %q", c.in)
	}
}

func TestScripts(t *testing.T) {
	assert.Equal(t, "x⁻¹²", ToSuperscript("x-12"))
	assert.Equal(t, "H₂O", ToSubscript("H2O"))
	assert.Equal(t, "abc", ToSuperscript("abc"))
}

func TestFlatten(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "just text", "just text"},
		{"bold word", "plain <b>bold</b> text", "plain **bold** text"},
		{"markers outside whitespace", "a<b> foo </b>b", "a **foo** b"},
		{"whitespace at both ends", "<b> foo </b>", " **foo** "},
		{"nested", "<i>x <b>y</b></i>", "_x **y**_"},
		{"adjacent same style", "<b>a</b><b> b</b>", "**a b**"},
		{"class newline", `<span class="_r">word</span>rest`, "**word**\nrest"},
		{"superscript", "x<sup>2</sup>", "x²"},
		{"subscript", "H<sub>2</sub>O", "H₂O"},
		{"child overrides class", `<span class="_d"><b>y</b></span>`, "_**y**_"},
		{"class overrides ancestor", `<b><span class="_d">y</span></b>`, "_y_"},
		{"underline link", `see <a href="x">here</a>`, "see __here__"},
		{"entities decoded", "a &amp; b", "a & b"},
		{"strikethrough", "<del>old</del> new", "~~old~~ new"},
		{"whitespace-only styled run", "a<b> </b>b", "a b"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, Flatten(c.in, Empty))
		})
	}
}

func TestFlattenInitialStyle(t *testing.T) {
	assert.Equal(t, "_kv._", Flatten("kv.", Italics))
	// Default clears an inherited italic initial style.
	assert.Equal(t, "_a_ b", Flatten(`a <span class="_h">b</span>`, Italics))
}

func TestTextBuilderClosesBeforeTrailingWhitespace(t *testing.T) {
	var b TextBuilder
	b.WriteString("x", CalculatedStyle{})
	b.WriteString("bold  \n", CalculatedStyle{Bold: true})
	assert.Equal(t, "x**bold**  \n", b.String())
}

func TestFlattenLimit(t *testing.T) {
	got, cut := FlattenLimit("<i>abc</i>def", Empty, 2)
	assert.True(t, cut)
	assert.Equal(t, "_ab_", got)

	got, cut = FlattenLimit("<i>abc</i>def", Empty, 5)
	assert.True(t, cut)
	assert.Equal(t, "_abc_de", got)

	got, cut = FlattenLimit("<b>abc</b>", Empty, 3)
	assert.False(t, cut)
	assert.Equal(t, "**abc**", got)

	// ø is two bytes; a cut inside it moves back.
	got, cut = FlattenLimit("<b>aøb</b>", Empty, 2)
	assert.True(t, cut)
	assert.Equal(t, "**a**", got)
}
