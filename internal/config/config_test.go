package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"ORDABOT_TOKEN", "ORDABOT_PREFIX", "ORDABOT_PREFIX_FILE", "HTTP_ADDR",
		"SPROTIN_BASE_URL", "UIO_BASE_URL", "DAILY_SALT", "ENTITIES_FILE", "HTTP_TIMEOUT"} {
		t.Setenv(k, "")
	}
	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "]", c.Prefix)
	assert.Equal(t, ".prefix_override", c.PrefixFile)
	assert.Equal(t, "https://sprotin.fo", c.SprotinURL)
	assert.Equal(t, "https://www.edd.uio.no", c.UIOURL)
	assert.Equal(t, 15*time.Second, c.HTTPTimeout)
	assert.Empty(t, c.HTTPAddr)
	assert.ErrorIs(t, c.Validate(), ErrNoToken)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ORDABOT_TOKEN", "tok")
	t.Setenv("ORDABOT_PREFIX", "!")
	t.Setenv("ORDABOT_OWNER_ID", "165877785544491008")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("HTTP_TIMEOUT", "2s")

	c, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "!", c.Prefix)
	assert.Equal(t, "165877785544491008", c.OwnerID)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 2*time.Second, c.HTTPTimeout)
	assert.NoError(t, c.Validate())
}

func TestLoadBadTimeout(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT", "soon")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("HTTP_TIMEOUT", "-1s")
	_, err = Load()
	assert.Error(t, err)
}
