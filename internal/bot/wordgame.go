package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/LFalch/ordabottur/internal/game"
	"github.com/LFalch/ordabottur/internal/store"
	"github.com/LFalch/ordabottur/internal/words"
)

// handleGuesses applies every whitespace-separated word of a guess
// message to the running game. It reports whether m was a guess in the
// game channel.
func (b *Bot) handleGuesses(ctx context.Context, m Message) bool {
	text, ok := guessText(m.Content)
	if !ok {
		return false
	}
	handled := false
	err := b.slot.With(func(g *game.State) error {
		if g.Message.ChannelID != m.ChannelID {
			return nil
		}
		handled = true
		l := b.log.With().Str("game", g.ID).Str("user", m.AuthorID).Logger()
		for _, w := range strings.Fields(text) {
			if err := b.guess(ctx, l, g, m, w); err != nil {
				l.Error().Err(err).Str("word", w).Msg("guess failed")
			}
		}
		return nil
	})
	if err != nil && !errors.Is(err, store.ErrNoGame) {
		b.log.Error().Err(err).Msg("word game")
	}
	return handled
}

func (b *Bot) guess(ctx context.Context, l zerolog.Logger, g *game.State, m Message, word string) error {
	err := g.Guess(ctx, m.AuthorID, word, b.sprotin)
	switch {
	case err == nil:
		l.Debug().Str("word", word).Msg("word accepted")
		if err := b.t.React(m.Ref(), "✅"); err != nil {
			return err
		}
		return b.refreshStatus(g)
	case errors.Is(err, game.ErrAlreadyGuessed):
		return b.t.React(m.Ref(), "♻️")
	case errors.Is(err, game.ErrNotInDictionary):
		return b.reject(m, fmt.Sprintf("_%s_ not found in a dictionary.", word))
	case errors.Is(err, game.ErrWrongLetters):
		return b.reject(m, "You used letters not in the game.")
	case errors.Is(err, game.ErrTooShort):
		return b.reject(m, "Your guess was too short.")
	default:
		return b.lookupFailed(m.ChannelID, err)
	}
}

func (b *Bot) reject(m Message, text string) error {
	if err := b.t.React(m.Ref(), "❌"); err != nil {
		return err
	}
	return b.say(m.ChannelID, text)
}

// refreshStatus re-posts the table when due and edits the status message.
// A status longer than one payload continues in new messages.
func (b *Bot) refreshStatus(g *game.State) error {
	if g.NeedsRepost() {
		ref, err := b.t.Send(g.Message.ChannelID, words.Format(g.Table))
		if err != nil {
			return err
		}
		g.Message = ref
	}
	status, err := g.Status()
	if err != nil {
		return err
	}
	if len(status.Messages) == 0 {
		return nil
	}
	if err := b.t.Edit(g.Message, status.Messages[0]); err != nil {
		return err
	}
	for _, msg := range status.Messages[1:] {
		if _, err := b.t.Send(g.Message.ChannelID, msg); err != nil {
			return err
		}
	}
	return nil
}
