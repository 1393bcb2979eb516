// internal/dictionary/dictionary.go
//
// Shared dictionary types.
// Defines:
//   - Entry: one result row from the University of Oslo archives.
//   - Entities: the entity-to-glyph table applied to raw archive HTML.
//   - StatusError: a dictionary backend answered with a non-success status.

package dictionary

import (
	"fmt"
	"strings"

	"github.com/LFalch/ordabottur/assets"
)

// Entry is a dictionary entry: a word form, its class (part of speech) and
// a body explaining it. Body is display text, already decoded and styled.
type Entry struct {
	Word  string
	Class string
	Body  string
}

// shortBody is the longest body, in bytes, kept on the headword line.
const shortBody = 20

// NewEntry builds an entry, escaping backticks in the body so it cannot
// open a code span in Discord.
func NewEntry(word, class, body string) Entry {
	return Entry{
		Word:  word,
		Class: class,
		Body:  strings.ReplaceAll(body, "`", "\\`"),
	}
}

// String renders the entry as Discord markdown.
func (e Entry) String() string {
	sep := ": "
	if len(e.Body) > shortBody {
		sep = "\n"
	}
	return "**" + e.Word + "** _" + e.Class + "_" + sep + e.Body
}

// Entities replaces archive-specific entities with their glyphs.
type Entities struct {
	r *strings.Replacer
}

// NewEntities builds a replacer from a table.
func NewEntities(table []assets.Entity) *Entities {
	pairs := make([]string, 0, 2*len(table))
	for _, e := range table {
		pairs = append(pairs, e.Entity, e.Glyph)
	}
	return &Entities{r: strings.NewReplacer(pairs...)}
}

// LoadEntities reads the table at path, or the embedded one if path is empty.
func LoadEntities(path string) (*Entities, error) {
	table, err := assets.EntitiesFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load entities: %w", err)
	}
	return NewEntities(table), nil
}

// Decode applies the table to s. A nil table leaves s unchanged.
func (e *Entities) Decode(s string) string {
	if e == nil {
		return s
	}
	return e.r.Replace(s)
}

// StatusError is returned when a backend answers with a non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string { return fmt.Sprintf("dictionary: status %d", e.Code) }
