// internal/config/config.go
//
// Process configuration read from the environment (after godotenv has
// loaded .env in main).
//
// Environment variables:
//   ORDABOT_TOKEN              Discord bot token (required by `run`)
//   ORDABOT_PREFIX             command prefix, default "]"
//   ORDABOT_PREFIX_FILE        file whose contents override the prefix, default ".prefix_override"
//   ORDABOT_OWNER_ID           user allowed to run owner commands
//   ORDABOT_WELCOME_GUILD_ID   guild that gets welcome messages
//   ORDABOT_WELCOME_CHANNEL_ID channel greeting new members
//   ORDABOT_MEMBERS_CHANNEL_ID channel logging joins and leaves
//   HTTP_ADDR                  preview API listen address; empty disables it
//   SPROTIN_BASE_URL, UIO_BASE_URL  dictionary endpoints
//   DAILY_SALT                 salt for the daily table seed
//   ENTITIES_FILE              entity table overriding the embedded one
//   HTTP_TIMEOUT               outbound request timeout, default 15s

package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/LFalch/ordabottur/internal/dictionary/sprotin"
	"github.com/LFalch/ordabottur/internal/dictionary/uio"
)

// ErrNoToken is returned by Validate when no bot token is configured.
var ErrNoToken = errors.New("config: ORDABOT_TOKEN is not set")

// Config is the full process configuration.
type Config struct {
	Token            string
	Prefix           string
	PrefixFile       string
	OwnerID          string
	WelcomeGuildID   string
	WelcomeChannelID string
	MembersChannelID string

	HTTPAddr     string
	SprotinURL   string
	UIOURL       string
	DailySalt    string
	EntitiesFile string
	HTTPTimeout  time.Duration
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	c := Config{
		Token:            os.Getenv("ORDABOT_TOKEN"),
		Prefix:           getEnv("ORDABOT_PREFIX", "]"),
		PrefixFile:       getEnv("ORDABOT_PREFIX_FILE", ".prefix_override"),
		OwnerID:          os.Getenv("ORDABOT_OWNER_ID"),
		WelcomeGuildID:   os.Getenv("ORDABOT_WELCOME_GUILD_ID"),
		WelcomeChannelID: os.Getenv("ORDABOT_WELCOME_CHANNEL_ID"),
		MembersChannelID: os.Getenv("ORDABOT_MEMBERS_CHANNEL_ID"),
		HTTPAddr:         os.Getenv("HTTP_ADDR"),
		SprotinURL:       getEnv("SPROTIN_BASE_URL", sprotin.DefaultBaseURL),
		UIOURL:           getEnv("UIO_BASE_URL", uio.DefaultBaseURL),
		DailySalt:        getEnv("DAILY_SALT", "ordabottur"),
		EntitiesFile:     os.Getenv("ENTITIES_FILE"),
	}
	d, err := time.ParseDuration(getEnv("HTTP_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("config: HTTP_TIMEOUT: %w", err)
	}
	if d <= 0 {
		return Config{}, fmt.Errorf("config: HTTP_TIMEOUT must be positive, got %s", d)
	}
	c.HTTPTimeout = d
	return c, nil
}

// Validate checks what the bot needs to connect.
func (c Config) Validate() error {
	if c.Token == "" {
		return ErrNoToken
	}
	return nil
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
