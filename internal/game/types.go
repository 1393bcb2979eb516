// internal/game/types.go
//
// Core type definitions for the word game.
// Defines:
//   - Points: a player's running score.
//   - MessageRef: the chat message showing the game status.
//   - State: one running game.
//   - Checker: the dictionary check guesses must pass.
//   - Guess errors: why a guess was rejected.

package game

import (
	"context"
	"errors"

	"github.com/LFalch/ordabottur/internal/words"
)

// MinLength is the shortest accepted guess, in letters.
const MinLength = 3

// Points is one player's score.
type Points struct {
	Points  int // Boggle points
	Letters int // letters over all accepted words
	Words   int // accepted words
}

// MessageRef identifies a chat message.
type MessageRef struct {
	ChannelID string
	MessageID string
}

// State holds a single running game.
type State struct {
	ID         string             // Unique game identifier (uuid).
	Table      words.Table        // The 16 letters in play.
	TakenWords []string           // Accepted words, lowercased and sorted; the submitted casing is not kept.
	Guessers   map[string]*Points // Keyed by user id.
	Message    MessageRef         // Message that is edited with the status.
}

// Checker reports whether a word is in the dictionary.
type Checker interface {
	WordExists(ctx context.Context, word string) (bool, error)
}

// Reasons a guess is rejected.
var (
	ErrAlreadyGuessed  = errors.New("already guessed")
	ErrTooShort        = errors.New("too short")
	ErrWrongLetters    = errors.New("letters not in the game")
	ErrNotInDictionary = errors.New("not found in a dictionary")
)
