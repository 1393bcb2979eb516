package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/LFalch/ordabottur/internal/daily"
	"github.com/LFalch/ordabottur/internal/dictionary/sprotin"
	"github.com/LFalch/ordabottur/internal/dictionary/uio"
	"github.com/LFalch/ordabottur/internal/game"
	"github.com/LFalch/ordabottur/internal/msgbunch"
	"github.com/LFalch/ordabottur/internal/words"
)

type command struct {
	name        string
	aliases     []string
	description string
	usage       string
	ownerOnly   bool
	guildOnly   bool
	run         func(b *Bot, ctx context.Context, r *request) error
}

type request struct {
	id      string
	msg     Message
	name    string // as typed, alias included
	args    string
	command *command
}

func (b *Bot) register() {
	add := func(c *command) {
		b.commands = append(b.commands, c)
		b.byName[c.name] = c
		for _, a := range c.aliases {
			b.byName[a] = c
		}
	}

	add(&command{name: "gm", description: "Søk í grunnmanuskriptet", usage: "<orð>", guildOnly: true, run: (*Bot).cmdGM})
	add(&command{name: "sa", description: "Søk í Setelarkivet",
		usage:     "[-r <registrant>] [-f <forfattar>] [-t <tittel>] [-o <område>] [-s|p <stad>] [oppslagsord]",
		guildOnly: true, run: (*Bot).cmdSA})
	add(&command{name: "sai", description: "Sjå eit oppslag frå Setelarkivet", usage: "<id>", guildOnly: true, run: (*Bot).cmdSAI})
	add(&command{name: "sprotin", aliases: []string{"fo"},
		description: "Look up in a Sprotin dictionary", usage: "[dictionary] <word> [word number]",
		guildOnly: true, run: (*Bot).cmdSprotin})
	for _, s := range sprotin.Shortcuts {
		name := s.Name
		add(&command{name: name, aliases: s.Aliases, description: s.Description, usage: "<word> [word number]",
			guildOnly: true,
			run: func(b *Bot, ctx context.Context, r *request) error {
				sub := *r
				sub.args = name + " " + r.args
				return b.cmdSprotin(ctx, &sub)
			}})
	}
	add(&command{name: "wg", aliases: []string{"wordgame", "orðaspæl"}, description: "Start a word game!", usage: "[daily]",
		guildOnly: true, run: (*Bot).cmdWordGame})
	add(&command{name: "wgdel", aliases: []string{"deletewordgame", "nýttorðaspæl"}, description: "Stop current word game!",
		ownerOnly: true, guildOnly: true, run: (*Bot).cmdWordGameStop})
	add(&command{name: "say", description: "Say", usage: "<text>", ownerOnly: true, guildOnly: true, run: (*Bot).cmdSay})
	add(&command{name: "setgame", description: "Set the status of the bot to be playing the set game", usage: "<game>",
		ownerOnly: true, guildOnly: true, run: (*Bot).cmdSetGame})
	add(&command{name: "help", aliases: []string{"h", "hjelp", "hjálp"}, description: "List the commands", usage: "[command]",
		run: (*Bot).cmdHelp})
}

func (b *Bot) cmdGM(ctx context.Context, r *request) error {
	res, err := b.archive.SearchGM(ctx, r.args, uio.GMRows)
	if err != nil {
		return b.lookupFailed(r.msg.ChannelID, err)
	}
	bunch, err := res.Bunch()
	return b.sendBuilt(r.msg.ChannelID, bunch, err)
}

// parseSAOptions reads "-x value" pairs; the last bare argument is the
// word form.
func parseSAOptions(args []string) (word string, o uio.Options, ok bool) {
	var opt string
	for _, a := range args {
		if f, isOpt := strings.CutPrefix(a, "-"); isOpt {
			opt = f
			continue
		}
		if opt == "" {
			word = a
			continue
		}
		switch opt {
		case "r":
			o.Registrant = a
		case "f":
			o.Author = a
		case "t":
			o.Title = a
		case "o":
			o.Area = a
		case "s", "p":
			o.Place = a
		default:
			return "", o, false
		}
		opt = ""
	}
	return word, o, true
}

func (b *Bot) cmdSA(ctx context.Context, r *request) error {
	word, opts, ok := parseSAOptions(SplitArgs(r.args))
	if !ok {
		return b.say(r.msg.ChannelID, "Ukjend søkjeinstilling")
	}
	res, err := b.archive.SearchSA(ctx, word, uio.SARows, opts)
	if err != nil {
		return b.lookupFailed(r.msg.ChannelID, err)
	}
	bunch, err := res.Bunch()
	return b.sendBuilt(r.msg.ChannelID, bunch, err)
}

func (b *Bot) cmdSAI(ctx context.Context, r *request) error {
	id, err := strconv.ParseUint(strings.TrimSpace(r.args), 10, 32)
	if err != nil {
		return b.usage(r)
	}
	slip, err := b.archive.SlipByID(ctx, id)
	if err != nil {
		return b.lookupFailed(r.msg.ChannelID, err)
	}
	if slip.ImageURL != "" {
		_, err = b.t.SendImage(r.msg.ChannelID, slip.Text, slip.ImageURL)
		return err
	}
	return b.say(r.msg.ChannelID, slip.Text)
}

func (b *Bot) cmdSprotin(ctx context.Context, r *request) error {
	args := SplitArgs(r.args)
	dict := sprotin.FaroeseFaroese
	if len(args) > 0 {
		if id, ok := sprotin.ParseDictionary(args[0]); ok {
			dict, args = id, args[1:]
		}
	}
	if len(args) == 0 {
		return b.usage(r)
	}
	res, err := b.sprotin.Search(ctx, sprotin.Query{Dictionary: dict, Page: 1, SearchFor: args[0]})
	if err != nil {
		return b.lookupFailed(r.msg.ChannelID, err)
	}
	if len(args) > 1 {
		if n, err := strconv.Atoi(args[1]); err == nil {
			if bunch, ok, err := res.WordAt(n); ok {
				return b.sendBuilt(r.msg.ChannelID, bunch, err)
			}
		}
	}
	bunch, err := res.Summary()
	return b.sendBuilt(r.msg.ChannelID, bunch, err)
}

func (b *Bot) cmdWordGame(ctx context.Context, r *request) error {
	var table words.Table
	switch strings.TrimSpace(r.args) {
	case "":
		table = words.RandomTable()
	case "daily":
		table = words.SeededTable(daily.Seed(b.now(), b.cfg.DailySalt))
	default:
		return b.usage(r)
	}
	if b.slot.Running() {
		return b.t.React(r.msg.Ref(), "🔂")
	}
	ref, err := b.t.Send(r.msg.ChannelID, words.Format(table))
	if err != nil {
		return err
	}
	g := game.New(table, ref)
	if err := b.slot.Start(g); err != nil {
		// Another wg won the race.
		return b.t.React(r.msg.Ref(), "🔂")
	}
	b.log.Info().Str("game", g.ID).Str("channel", r.msg.ChannelID).Msg("word game started")
	return nil
}

func (b *Bot) cmdWordGameStop(ctx context.Context, r *request) error {
	if b.slot.Stop() {
		b.log.Info().Str("channel", r.msg.ChannelID).Msg("word game stopped")
	}
	return b.t.React(r.msg.Ref(), "✅")
}

func (b *Bot) cmdSay(ctx context.Context, r *request) error {
	if r.args == "" {
		return b.usage(r)
	}
	if err := b.say(r.msg.ChannelID, r.args); err != nil {
		return err
	}
	return b.t.Delete(r.msg.Ref())
}

func (b *Bot) cmdSetGame(ctx context.Context, r *request) error {
	if r.args == "" {
		return b.usage(r)
	}
	return b.t.SetGame(r.args)
}

func (b *Bot) cmdHelp(ctx context.Context, r *request) error {
	prefix := b.Prefix()
	if name := strings.TrimSpace(r.args); name != "" {
		c := b.lookup(name)
		if c == nil {
			return b.say(r.msg.ChannelID, fmt.Sprintf("Eingin kommando eitur `%s`.", name))
		}
		text := fmt.Sprintf("**%s%s** %s\n%s", prefix, c.name, c.usage, c.description)
		if len(c.aliases) > 0 {
			text += "\nAliases: " + strings.Join(c.aliases, ", ")
		}
		return b.say(r.msg.ChannelID, text)
	}

	mb := msgbunch.New()
	for _, c := range b.commands {
		if c.ownerOnly && r.msg.AuthorID != b.cfg.OwnerID {
			continue
		}
		mb.BeginSection().AddStringf("**%s%s**: %s\n", prefix, c.name, c.description).EndSection()
	}
	bunch, err := mb.Build()
	return b.sendBuilt(r.msg.ChannelID, bunch, err)
}

func (b *Bot) usage(r *request) error {
	return b.say(r.msg.ChannelID, fmt.Sprintf("Usage: `%s%s %s`", b.Prefix(), r.name, r.command.usage))
}
