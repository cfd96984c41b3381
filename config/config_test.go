package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears keys for the test; t.Setenv restores them afterwards
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, key := range keys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	unsetEnv(t, "PORT", "LP_CAMPAIGN_ID", "LP_CAMPAIGN_KEY", "PING_URL", "PING_TIMEOUT",
		"STATIC_DIR", "RATE_LIMIT_WINDOW_SECONDS")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 15*time.Second, cfg.PingTimeout)
	assert.Equal(t, "public", cfg.StaticDir)
	assert.False(t, cfg.Campaign().Complete())
	assert.Equal(t, time.Minute, cfg.RateLimitWindow())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("LP_CAMPAIGN_ID", "1234")
	t.Setenv("LP_CAMPAIGN_KEY", "secretkey")
	t.Setenv("PING_URL", " https://api.leadspedia.com/core/v2/ping.do ")
	t.Setenv("PING_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example.com/, https://b.example.com")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.PingTimeout)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.AllowedOrigins)

	campaign := cfg.Campaign()
	assert.True(t, campaign.Complete())
	assert.Equal(t, "https://api.leadspedia.com/core/v2/ping.do", campaign.PingURL)

	snapshot := cfg.Snapshot()
	assert.Equal(t, "se*****ey", snapshot["lp_campaign_key"])
	assert.Equal(t, "1234", snapshot["lp_campaign_id"])
}

func TestMaskSecret(t *testing.T) {
	assert.Equal(t, "", maskSecret(""))
	assert.Equal(t, "****", maskSecret("abc"))
	assert.Equal(t, "ab**ef", maskSecret("abcdef"))
}
