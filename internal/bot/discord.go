package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// Intents the bot needs: guild and member events, messages and their
// content, and reactions.
const Intents = discordgo.IntentsGuilds |
	discordgo.IntentsGuildMembers |
	discordgo.IntentsGuildMessages |
	discordgo.IntentsGuildMessageReactions |
	discordgo.IntentsDirectMessages |
	discordgo.IntentsDirectMessageReactions |
	discordgo.IntentsMessageContent

// NewSession creates an unopened Discord session for token.
func NewSession(token string) (*discordgo.Session, error) {
	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("discord session: %w", err)
	}
	s.Identify.Intents = Intents
	return s, nil
}

// Run attaches the bot to s, opens the gateway and blocks until ctx is
// done.
func (b *Bot) Run(ctx context.Context, s *discordgo.Session) error {
	s.AddHandler(func(_ *discordgo.Session, r *discordgo.Ready) {
		ids := make([]string, len(r.Guilds))
		for i, g := range r.Guilds {
			ids[i] = g.ID
		}
		b.log.Info().Str("user", r.User.Username).Strs("guilds", ids).Msg("connected")
	})
	s.AddHandler(func(_ *discordgo.Session, m *discordgo.MessageCreate) {
		if m.Author == nil {
			return
		}
		b.HandleMessage(ctx, Message{
			ID:        m.ID,
			ChannelID: m.ChannelID,
			GuildID:   m.GuildID,
			AuthorID:  m.Author.ID,
			AuthorBot: m.Author.Bot,
			Content:   m.Content,
		})
	})
	s.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildMemberAdd) {
		if e.Member == nil || e.User == nil {
			return
		}
		b.MemberJoined(e.GuildID, e.User.ID, e.User.String())
	})
	s.AddHandler(func(_ *discordgo.Session, e *discordgo.GuildMemberRemove) {
		if e.Member == nil || e.User == nil {
			return
		}
		b.MemberLeft(e.GuildID, e.User.ID)
	})

	if err := s.Open(); err != nil {
		return fmt.Errorf("discord open: %w", err)
	}
	defer s.Close()
	<-ctx.Done()
	b.log.Info().Msg("disconnecting")
	return nil
}

// MemberJoined greets a new member of the welcome guild and logs the join.
func (b *Bot) MemberJoined(guildID, userID, name string) {
	if b.cfg.WelcomeGuildID == "" || guildID != b.cfg.WelcomeGuildID {
		return
	}
	b.announce(b.cfg.WelcomeChannelID, fmt.Sprintf("Bjóðið **%s** vælkomnum/-ari!", name))
	b.announce(b.cfg.MembersChannelID, fmt.Sprintf("<@%s> er júst komin upp í servaran!", userID))
}

// MemberLeft logs a member leaving the welcome guild.
func (b *Bot) MemberLeft(guildID, userID string) {
	if b.cfg.WelcomeGuildID == "" || guildID != b.cfg.WelcomeGuildID {
		return
	}
	b.announce(b.cfg.MembersChannelID, fmt.Sprintf("<@%s> fór júst úr servaranum.", userID))
}

func (b *Bot) announce(channelID, text string) {
	if channelID == "" {
		return
	}
	if _, err := b.t.Send(channelID, text); err != nil {
		b.log.Error().Err(err).Str("channel", channelID).Msg("welcome message failed")
	}
}
