package sprotin

import (
	"strings"

	"github.com/LFalch/ordabottur/internal/markup"
	"github.com/LFalch/ordabottur/internal/msgbunch"
)

// shortExplanation is the byte length of explanation text a short
// rendering keeps.
const shortExplanation = 138

// VeryShort renders the headword line: display word, short inflection,
// grammatical tags, phonetics and origin.
func (w Word) VeryShort() string {
	var b strings.Builder
	b.WriteString("**" + w.DisplayWord + "**")
	if w.ShortInflectedForm != "" {
		s := strings.NewReplacer("\r", "", "\n", "").Replace(w.ShortInflectedForm)
		b.WriteString(" " + markup.Flatten(s, markup.Empty))
	}
	if w.InflexCats != "" {
		b.WriteString(" " + markup.Flatten(w.InflexCats, markup.Italics))
	}
	if w.GrammarComment != "" {
		b.WriteString(" " + markup.Flatten(w.GrammarComment, markup.Italics))
	}
	if w.ShortInflection != "" {
		b.WriteString(", ²" + w.ShortInflection)
	}
	if w.Phonetic != "" {
		b.WriteString(" " + markup.Flatten(w.Phonetic, markup.Empty))
	}
	switch {
	case w.Origin != "" && w.OriginSource != "":
		b.WriteString(" (frá " + w.Origin + " " + w.OriginSource + ")")
	case w.Origin != "":
		b.WriteString(" (frá " + w.Origin + ")")
	case w.OriginSource != "":
		b.WriteString(" (frá " + w.OriginSource + ")")
	}
	return b.String()
}

// Short renders the headword line followed by the explanation on one
// line, truncated with an ellipsis.
func (w Word) Short() string {
	expl, cut := markup.FlattenLimit(w.Explanation, markup.Empty, shortExplanation)
	expl = strings.ReplaceAll(expl, "\n", " ")
	if cut {
		expl += "…"
	}
	return w.VeryShort() + ": " + expl
}

// Full writes the complete entry into b: the headword line, the
// explanation line by line and the inflection table.
func (w Word) Full(b *msgbunch.Builder) {
	b.BeginSection().AddString(w.VeryShort()).AddString("\n").EndSection()
	b.AddLines(markup.Flatten(w.Explanation, markup.Empty))
	if len(w.InflectedForm) == 0 {
		return
	}
	split := msgbunch.DefaultSplit
	if ParadigmOf(w.InflectedForm) != UnknownParadigm {
		split = msgbunch.NeverSplit
	}
	b.BeginSection().AddString(InflectionTable(w.InflectedForm)).AddString("\n").EndSectionWith(split)
}

// Matches reports whether s is the search word or one of its inflections.
func (w Word) Matches(s string) bool {
	if s == w.SearchWord {
		return true
	}
	for _, f := range w.InflectedForm {
		if f == s {
			return true
		}
	}
	return false
}
