// internal/store/memory.go
//
// In-memory holder of the single running word game.
//
// Characteristics:
//   - At most one game at a time.
//   - Access is exclusive: With holds the lock while the callback runs,
//     so guesses are applied one at a time.
//   - State is lost when the process restarts.

package store

import (
	"errors"
	"sync"

	"github.com/LFalch/ordabottur/internal/game"
)

var (
	ErrGameRunning = errors.New("a game is already running")
	ErrNoGame      = errors.New("no game is running")
)

// Slot holds zero or one game. The zero value is empty and ready to use.
type Slot struct {
	mu   sync.Mutex
	game *game.State
}

// Start installs g unless a game is already running.
func (s *Slot) Start(g *game.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game != nil {
		return ErrGameRunning
	}
	s.game = g
	return nil
}

// Stop ends the running game, if any, and reports whether there was one.
func (s *Slot) Stop() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	had := s.game != nil
	s.game = nil
	return had
}

// Running reports whether a game is in the slot.
func (s *Slot) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game != nil
}

// With runs fn on the running game while holding the slot.
// It returns ErrNoGame when the slot is empty, otherwise fn's error.
func (s *Slot) With(fn func(g *game.State) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.game == nil {
		return ErrNoGame
	}
	return fn(s.game)
}
