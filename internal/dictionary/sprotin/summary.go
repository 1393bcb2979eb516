package sprotin

import (
	"strings"

	"github.com/LFalch/ordabottur/internal/msgbunch"
)

// maxShortWords is how many short lines a summary lists.
const maxShortWords = 50

// Summary renders the response: the server message, the paging line,
// per-dictionary hit counts, then suggestions, one full entry or a
// numbered list of short entries.
func (r *Response) Summary() (msgbunch.Bunch, error) {
	b := msgbunch.New()
	b.BeginSection()
	if r.Message != "" {
		b.AddString("__").AddString(r.Message).AddString("__\n").EndSection().BeginSection()
	}
	b.AddStringf("Síða %d. Vísir úrslit %d - %d av %d (%.3f sekund)\n", r.Page, r.From, r.To, r.Total, r.Time).
		EndSection().BeginSection()
	for _, res := range r.DictionariesResults {
		if res.Results > 0 {
			b.AddString("**").AddString(DictionaryName(res.ID)).AddString("** ").AddStringf("%d ", res.Results)
		}
	}
	b.AddString("\n\n").EndSection()

	switch r.Status {
	case StatusNotFound:
		if len(r.SimilarWords) > 0 {
			similar := make([]string, len(r.SimilarWords))
			for i, w := range r.SimilarWords {
				similar[i] = "_" + w.SearchWord + "_"
			}
			b.BeginSection().AddString("Meinti tú: ").AddString(strings.Join(similar, ", ")).EndSection()
		}
	case StatusSuccess:
		if len(r.Words) == 1 {
			r.Words[0].Full(b.BeginSection().AddString("1. "))
			break
		}
		for i, w := range r.Words {
			if i == maxShortWords {
				break
			}
			b.BeginSection().AddStringf("%d. %s\n", i+1, w.Short()).EndSection()
		}
	}
	return b.Build()
}

// WordAt renders the full entry of the n-th word, counting from 1.
// ok is false when n is out of range.
func (r *Response) WordAt(n int) (bunch msgbunch.Bunch, ok bool, err error) {
	if n < 1 || n > len(r.Words) {
		return msgbunch.Bunch{}, false, nil
	}
	b := msgbunch.New()
	r.Words[n-1].Full(b)
	bunch, err = b.Build()
	return bunch, true, err
}
