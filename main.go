package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/LFalch/ordabottur/internal/bot"
	"github.com/LFalch/ordabottur/internal/config"
	"github.com/LFalch/ordabottur/internal/dictionary"
	"github.com/LFalch/ordabottur/internal/dictionary/sprotin"
	"github.com/LFalch/ordabottur/internal/dictionary/uio"
	"github.com/LFalch/ordabottur/internal/httpserver"
	"github.com/LFalch/ordabottur/internal/store"
)

func main() {
	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if os.Getenv("LOG_PRETTY") != "" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "ordabottur",
	Short:         "Faroese dictionary bot for Discord",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(runCmd, lookupCmd, gmCmd)
}

// backends are the dictionary clients shared by every entry point.
type backends struct {
	cfg     config.Config
	sprotin *sprotin.Client
	uio     *uio.Client
}

func loadBackends() (*backends, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	ents, err := dictionary.LoadEntities(cfg.EntitiesFile)
	if err != nil {
		return nil, err
	}
	hc := &http.Client{Timeout: cfg.HTTPTimeout}
	return &backends{
		cfg:     cfg,
		sprotin: sprotin.New(cfg.SprotinURL, hc),
		uio:     uio.New(cfg.UIOURL, hc, ents),
	}, nil
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Connect to Discord and serve the preview API when HTTP_ADDR is set",
	Args:  cobra.NoArgs,
	RunE:  logged(runBot),
}

func runBot(cmd *cobra.Command, _ []string) error {
	be, err := loadBackends()
	if err != nil {
		return err
	}
	if err := be.cfg.Validate(); err != nil {
		return err
	}
	sess, err := bot.NewSession(be.cfg.Token)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	b := bot.New(be.cfg, log.With().Str("component", "bot").Logger(),
		bot.NewDiscordTransport(sess), be.sprotin, be.uio, &store.Slot{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return b.Run(ctx, sess) })
	if be.cfg.HTTPAddr != "" {
		srv := httpserver.New(log.With().Str("component", "http").Logger(), be.sprotin, be.uio)
		log.Info().Str("addr", be.cfg.HTTPAddr).Msg("starting http server")
		g.Go(func() error { return srv.Start(ctx, be.cfg.HTTPAddr) })
	}
	return g.Wait()
}

var lookupCmd = &cobra.Command{
	Use:   "lookup [dictionary] <word> [n]",
	Short: "Print the Sprotin lookup the bot would send",
	Args:  cobra.RangeArgs(1, 3),
	RunE:  logged(runLookup),
}

func runLookup(cmd *cobra.Command, args []string) error {
	be, err := loadBackends()
	if err != nil {
		return err
	}
	dict := sprotin.FaroeseFaroese
	if len(args) > 1 {
		if id, ok := sprotin.ParseDictionary(args[0]); ok {
			dict, args = id, args[1:]
		}
	}
	res, err := be.sprotin.Search(cmd.Context(), sprotin.Query{Dictionary: dict, Page: 1, SearchFor: args[0]})
	if err != nil {
		return err
	}
	if len(args) > 1 {
		var n int
		if _, err := fmt.Sscan(args[1], &n); err != nil {
			return fmt.Errorf("word number %q: %w", args[1], err)
		}
		if bunch, ok, err := res.WordAt(n); ok {
			if err != nil {
				return err
			}
			printPayloads(cmd, bunch.Messages)
			return nil
		}
	}
	bunch, err := res.Summary()
	if err != nil {
		return err
	}
	printPayloads(cmd, bunch.Messages)
	return nil
}

var gmCmd = &cobra.Command{
	Use:   "gm <word>",
	Short: "Print the Grunnmanuskriptet search the bot would send",
	Args:  cobra.ExactArgs(1),
	RunE:  logged(runGM),
}

func runGM(cmd *cobra.Command, args []string) error {
	be, err := loadBackends()
	if err != nil {
		return err
	}
	res, err := be.uio.SearchGM(cmd.Context(), args[0], uio.GMRows)
	if err != nil {
		return err
	}
	bunch, err := res.Bunch()
	if err != nil {
		return err
	}
	printPayloads(cmd, bunch.Messages)
	return nil
}

func printPayloads(cmd *cobra.Command, msgs []string) {
	out := cmd.OutOrStdout()
	for i, m := range msgs {
		if i > 0 {
			fmt.Fprintln(out, "\n----------------------------------------")
		}
		fmt.Fprint(out, m)
	}
	fmt.Fprintln(out)
}

// logged reports a command's error through the global logger.
func logged(run func(*cobra.Command, []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			log.Error().Err(err).Str("cmd", cmd.Name()).Msg("command failed")
		}
		return err
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
