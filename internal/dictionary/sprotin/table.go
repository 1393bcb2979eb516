// internal/dictionary/sprotin/table.go
//
// Inflection tables. The paradigm is picked from the number of inflected
// forms; every column is as wide as its longest value, header included.

package sprotin

import (
	"strings"
	"unicode/utf8"
)

// Paradigm is the grammatical category implied by an inflection list.
type Paradigm int

const (
	UnknownParadigm Paradigm = iota
	Verb
	Noun
	Adjective
)

// ParadigmOf selects the paradigm by the shape of forms.
func ParadigmOf(forms []string) Paradigm {
	switch len(forms) {
	case 6:
		return Verb
	case 16:
		return Noun
	case 24:
		return Adjective
	default:
		return UnknownParadigm
	}
}

// table is a row-labelled grid. A row with only a label is a subheading.
type table [][]string

var caseLabels = [4]string{"hvørfall/nom", "hvønnfall/acc", "hvørjumfall/dat", "hvørsfall/gen"}

// InflectionTable renders forms as a monospaced code block, or as a plain
// dump when the shape is not recognised.
func InflectionTable(forms []string) string {
	switch ParadigmOf(forms) {
	case Verb:
		return verbTable(forms).String()
	case Noun:
		return caseTable(forms, "  eintal/sg.", "ób./indef", "b./def").String()
	case Adjective:
		return caseTable(forms, "  eintal/sg", "k./masc", "kv./fem", "h./neut").String()
	default:
		return "Unknown inflectional paradigm:\n" + strings.Join(forms, ", ")
	}
}

// forms: infinitive, 3rd sg. present, past sg., past pl., supine, past participle
func verbTable(f []string) table {
	inf, pres3, pastSg, pastPl, supine, pastPart := f[0], f[1], f[2], f[3], f[4], f[5]
	return table{
		{"navnháttur/infinitive", inf},
		{"lýsingarháttur í tátíð / supine", supine},
		{"  Bendingar í tíð / conjugations", "eintal/sg", "fleirtal/pl"},
		{"3. persónur í nútíð / 3rd sg. present", pres3, inf},
		{"eintal   í tátíð / sg. past", pastSg, pastPl},
		{"lýsingarháttur í tátíð, k. hvørfall / past part.", pastPart, ""},
	}
}

// caseTable lays out one column per block of eight forms: four singular
// cases followed by four plural cases.
func caseTable(f []string, heading string, titles ...string) table {
	row := func(label string, i int) []string {
		r := []string{label}
		for col := range titles {
			r = append(r, f[col*8+i])
		}
		return r
	}
	t := table{append([]string{heading}, titles...)}
	for i, l := range caseLabels {
		t = append(t, row(l, i))
	}
	t = append(t, []string{"  fleirtal/pl."})
	for i, l := range caseLabels {
		t = append(t, row(l, 4+i))
	}
	return t
}

func (t table) String() string {
	var widths []int
	for _, r := range t {
		for i, cell := range r {
			if i == len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], utf8.RuneCountInString(cell))
		}
	}

	var b strings.Builder
	b.WriteString("```\n")
	for _, r := range t {
		if len(r) == 1 {
			b.WriteString(r[0])
			b.WriteByte('\n')
			continue
		}
		for i, cell := range r {
			if i > 0 {
				b.WriteString(" | ")
			}
			b.WriteString(pad(cell, widths[i]))
		}
		b.WriteString(" |\n")
	}
	b.WriteString("```")
	return b.String()
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
