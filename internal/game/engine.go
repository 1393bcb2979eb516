// internal/game/engine.go
//
// Core engine for a word game session.
// Responsibilities:
//   - Create games over a 16-letter table.
//   - Validate guesses (already taken, length, letters, dictionary).
//   - Score accepted words on the Boggle table and keep standings.
//   - Render the status message through msgbunch.
//
// Notes:
//   - Tables come from the words package.
//   - The dictionary check is a Checker so tests run offline.

package game

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/LFalch/ordabottur/internal/msgbunch"
	"github.com/LFalch/ordabottur/internal/words"
)

// RepostEvery is how many accepted words pass before the table is posted
// again.
const RepostEvery = 6

// New constructs a game over table, showing its status in msg.
func New(table words.Table, msg MessageRef) *State {
	return &State{
		ID:       uuid.NewString(),
		Table:    table,
		Guessers: map[string]*Points{},
		Message:  msg,
	}
}

// Guess validates word for user and records it.
//
// Validation order:
//   - not already taken,
//   - at least MinLength letters,
//   - made of table letters, each used at most once,
//   - found by check.
//
// A Checker error is returned wrapped and the guess is not recorded.
func (s *State) Guess(ctx context.Context, user, word string, check Checker) error {
	word = strings.ToLower(word)
	i := sort.SearchStrings(s.TakenWords, word)
	if i < len(s.TakenWords) && s.TakenWords[i] == word {
		return ErrAlreadyGuessed
	}
	n := utf8.RuneCountInString(word)
	if n < MinLength {
		return ErrTooShort
	}
	if !words.Contains(s.Table, word) {
		return ErrWrongLetters
	}
	ok, err := check.WordExists(ctx, word)
	if err != nil {
		return fmt.Errorf("check %q: %w", word, err)
	}
	if !ok {
		return ErrNotInDictionary
	}

	s.TakenWords = append(s.TakenWords, "")
	copy(s.TakenWords[i+1:], s.TakenWords[i:])
	s.TakenWords[i] = word

	p := s.Guessers[user]
	if p == nil {
		p = &Points{}
		s.Guessers[user] = p
	}
	p.Points += Score(n)
	p.Letters += n
	p.Words++
	return nil
}

// Score is the Boggle value of a word with n letters.
func Score(n int) int {
	switch {
	case n < MinLength:
		return 0
	case n <= 4:
		return 1
	case n == 5:
		return 2
	case n == 6:
		return 3
	case n == 7:
		return 5
	default:
		return 11
	}
}

// NeedsRepost reports whether the table should be posted again after the
// latest accepted word.
func (s *State) NeedsRepost() bool {
	return len(s.TakenWords) > 0 && len(s.TakenWords)%RepostEvery == 0
}

// Standing is one row of the score list.
type Standing struct {
	User string
	Points
}

// Standings returns players by points, then words, then user id.
func (s *State) Standings() []Standing {
	out := make([]Standing, 0, len(s.Guessers))
	for u, p := range s.Guessers {
		out = append(out, Standing{User: u, Points: *p})
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Points.Points != b.Points.Points {
			return a.Points.Points > b.Points.Points
		}
		if a.Words != b.Words {
			return a.Words > b.Words
		}
		return a.User < b.User
	})
	return out
}

// Status renders the taken words, the standings and the table. The table
// is never split.
func (s *State) Status() (msgbunch.Bunch, error) {
	b := msgbunch.New()
	b.BeginSection().
		AddString("Taken words: ").
		AddString(strings.Join(s.TakenWords, ", ")).
		AddString("\n\n").
		EndSection()
	for _, st := range s.Standings() {
		b.BeginSection().
			AddStringf("<@%s>: %d (%d bókstavir, %d orð)\n", st.User, st.Points.Points, st.Letters, st.Words).
			EndSection()
	}
	b.AddString("\n")
	b.BeginSection().AddString(words.Format(s.Table)).AddString("\n").EndSectionWith(msgbunch.NeverSplit)
	b.AddString("Type `.` or `:` followed by your guess(es)")
	return b.Build()
}
