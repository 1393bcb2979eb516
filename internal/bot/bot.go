// internal/bot/bot.go
//
// Command layer of the dictionary bot.
// Responsibilities:
//   - Resolve the command prefix (config, overridden by a prefix file).
//   - Route prefixed messages to commands and their aliases.
//   - Route game guesses in the game channel to the running game.
//   - Send rendered bunches payload by payload, in order.
//
// Notes:
//   - The chat platform is reached only through Transport.
//   - Dictionary backends are interfaces so handlers test offline.

package bot

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/LFalch/ordabottur/internal/config"
	"github.com/LFalch/ordabottur/internal/dictionary"
	"github.com/LFalch/ordabottur/internal/dictionary/sprotin"
	"github.com/LFalch/ordabottur/internal/dictionary/uio"
	"github.com/LFalch/ordabottur/internal/game"
	"github.com/LFalch/ordabottur/internal/msgbunch"
	"github.com/LFalch/ordabottur/internal/store"
)

// Sprotin is the JSON dictionary backend.
type Sprotin interface {
	Search(ctx context.Context, q sprotin.Query) (*sprotin.Response, error)
	WordExists(ctx context.Context, word string) (bool, error)
}

// Archive is the University of Oslo backend.
type Archive interface {
	SearchGM(ctx context.Context, word string, rows int) (*uio.Result, error)
	SearchSA(ctx context.Context, word string, rows int, o uio.Options) (*uio.Result, error)
	SlipByID(ctx context.Context, id uint64) (*uio.Slip, error)
}

// Message is an incoming chat message.
type Message struct {
	ID        string
	ChannelID string
	GuildID   string
	AuthorID  string
	AuthorBot bool
	Content   string
}

// Ref returns the message's reference.
func (m Message) Ref() game.MessageRef {
	return game.MessageRef{ChannelID: m.ChannelID, MessageID: m.ID}
}

// Bot handles messages and member events.
type Bot struct {
	cfg     config.Config
	log     zerolog.Logger
	t       Transport
	sprotin Sprotin
	archive Archive
	slot    *store.Slot

	commands []*command
	byName   map[string]*command

	now func() time.Time
}

// New builds a bot. slot holds the running word game.
func New(cfg config.Config, log zerolog.Logger, t Transport, sp Sprotin, ar Archive, slot *store.Slot) *Bot {
	b := &Bot{
		cfg:     cfg,
		log:     log,
		t:       t,
		sprotin: sp,
		archive: ar,
		slot:    slot,
		byName:  map[string]*command{},
		now:     time.Now,
	}
	b.register()
	return b
}

// Prefix returns the command prefix in effect.
func (b *Bot) Prefix() string {
	if b.cfg.PrefixFile != "" {
		if p, err := os.ReadFile(b.cfg.PrefixFile); err == nil {
			if s := strings.TrimSpace(string(p)); s != "" {
				return s
			}
		}
	}
	return b.cfg.Prefix
}

// HandleMessage processes one incoming message.
func (b *Bot) HandleMessage(ctx context.Context, m Message) {
	if m.AuthorBot {
		return
	}
	if b.handleGuesses(ctx, m) {
		return
	}
	prefix := b.Prefix()
	body, ok := strings.CutPrefix(m.Content, prefix)
	if !ok || prefix == "" {
		return
	}
	name, rest := cutCommand(body)
	cmd := b.lookup(name)
	if cmd == nil {
		return
	}
	if cmd.guildOnly && m.GuildID == "" {
		return
	}
	if cmd.ownerOnly && (b.cfg.OwnerID == "" || m.AuthorID != b.cfg.OwnerID) {
		b.log.Debug().Str("cmd", cmd.name).Str("user", m.AuthorID).Msg("owner command refused")
		return
	}

	req := &request{
		id:      uuid.NewString(),
		msg:     m,
		name:    name,
		args:    rest,
		command: cmd,
	}
	l := b.log.With().Str("req", req.id).Str("cmd", cmd.name).Str("channel", m.ChannelID).Logger()
	start := b.now()
	if err := cmd.run(b, ctx, req); err != nil {
		l.Error().Err(err).Msg("command failed")
		return
	}
	l.Info().Dur("took", b.now().Sub(start)).Msg("command")
}

func (b *Bot) lookup(name string) *command {
	if c, ok := b.byName[name]; ok {
		return c
	}
	return b.byName[strings.ToLower(name)]
}

// say sends text as one or more payloads.
func (b *Bot) say(channelID, text string) error {
	bunch, err := msgbunch.New().AddString(text).Build()
	if err != nil {
		return err
	}
	return b.sendBunch(channelID, bunch)
}

// sendBunch sends every payload in order, stopping at the first failure.
func (b *Bot) sendBunch(channelID string, bunch msgbunch.Bunch) error {
	for i, msg := range bunch.Messages {
		if _, err := b.t.Send(channelID, msg); err != nil {
			return fmt.Errorf("send payload %d/%d: %w", i+1, len(bunch.Messages), err)
		}
	}
	return nil
}

// sendBuilt sends a builder's payloads. On a builder error the payloads
// are dropped and the error is returned.
func (b *Bot) sendBuilt(channelID string, bunch msgbunch.Bunch, err error) error {
	if err != nil {
		_ = b.say(channelID, "Eg fekk tíverri ikki sett svarið upp.")
		return err
	}
	return b.sendBunch(channelID, bunch)
}

// lookupFailed tells the channel a lookup failed and returns err for
// logging.
func (b *Bot) lookupFailed(channelID string, err error) error {
	var se *dictionary.StatusError
	if errors.As(err, &se) {
		_ = b.say(channelID, fmt.Sprintf("Eg fekk tíverri %d", se.Code))
	} else {
		_ = b.say(channelID, "Eg fekk tíverri ein feil")
	}
	return err
}
