// internal/bot/transport.go
//
// The chat side of the bot. Transport is what handlers call; the
// discordgo implementation sends every message with mentions disabled.

package bot

import (
	"github.com/bwmarrin/discordgo"

	"github.com/LFalch/ordabottur/internal/game"
)

// Transport delivers payloads to and manipulates messages in channels.
type Transport interface {
	Send(channelID, content string) (game.MessageRef, error)
	SendImage(channelID, content, imageURL string) (game.MessageRef, error)
	Edit(ref game.MessageRef, content string) error
	React(ref game.MessageRef, emoji string) error
	Delete(ref game.MessageRef) error
	SetGame(name string) error
}

type discordTransport struct {
	s *discordgo.Session
}

// NewDiscordTransport wraps an open or unopened session.
func NewDiscordTransport(s *discordgo.Session) Transport {
	return &discordTransport{s: s}
}

func noMentions() *discordgo.MessageAllowedMentions {
	return &discordgo.MessageAllowedMentions{Parse: []discordgo.AllowedMentionType{}}
}

func (t *discordTransport) send(channelID string, m *discordgo.MessageSend) (game.MessageRef, error) {
	m.AllowedMentions = noMentions()
	msg, err := t.s.ChannelMessageSendComplex(channelID, m)
	if err != nil {
		return game.MessageRef{}, err
	}
	return game.MessageRef{ChannelID: msg.ChannelID, MessageID: msg.ID}, nil
}

func (t *discordTransport) Send(channelID, content string) (game.MessageRef, error) {
	return t.send(channelID, &discordgo.MessageSend{Content: content})
}

func (t *discordTransport) SendImage(channelID, content, imageURL string) (game.MessageRef, error) {
	return t.send(channelID, &discordgo.MessageSend{
		Content: content,
		Embeds:  []*discordgo.MessageEmbed{{Image: &discordgo.MessageEmbedImage{URL: imageURL}}},
	})
}

func (t *discordTransport) Edit(ref game.MessageRef, content string) error {
	_, err := t.s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		ID:              ref.MessageID,
		Channel:         ref.ChannelID,
		Content:         &content,
		AllowedMentions: noMentions(),
	})
	return err
}

func (t *discordTransport) React(ref game.MessageRef, emoji string) error {
	return t.s.MessageReactionAdd(ref.ChannelID, ref.MessageID, emoji)
}

func (t *discordTransport) Delete(ref game.MessageRef) error {
	return t.s.ChannelMessageDelete(ref.ChannelID, ref.MessageID)
}

func (t *discordTransport) SetGame(name string) error {
	return t.s.UpdateGameStatus(0, name)
}
