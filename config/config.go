package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"lead-relay-backend/internal/domain"
)

type Config struct {
	Port    string `env:"PORT" envDefault:"3000"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`
	// Leadspedia campaign credentials and ping endpoint
	CampaignID  string        `env:"LP_CAMPAIGN_ID"`
	CampaignKey string        `env:"LP_CAMPAIGN_KEY"`
	PingURL     string        `env:"PING_URL"`
	PingTimeout time.Duration `env:"PING_TIMEOUT" envDefault:"15s"`
	// HTTP surface
	StaticDir      string   `env:"STATIC_DIR" envDefault:"public"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
	MaxBodyBytes   int64    `env:"MAX_BODY_BYTES" envDefault:"65536"`
	// Logging
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`
	// Redis/Upstash Configuration
	UpstashRedisURL      string `env:"UPSTASH_REDIS_URL"`
	UpstashRedisPassword string `env:"UPSTASH_REDIS_PASSWORD"`
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int `env:"RATE_LIMIT_WINDOW_SECONDS" envDefault:"60"`
	RateLimitSubmitThreshold int `env:"RATE_LIMIT_SUBMIT_THRESHOLD" envDefault:"30"`
}

func LoadConfig() (*Config, error) {
	// Local development only; in production the variables come from the environment.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.PingURL = strings.TrimSpace(cfg.PingURL)
	for i, origin := range cfg.AllowedOrigins {
		cfg.AllowedOrigins[i] = strings.TrimRight(strings.TrimSpace(origin), "/")
	}

	// Missing campaign settings are not fatal: /submit answers 500 until they are fixed.
	if !cfg.Campaign().Complete() {
		log.Println("WARNING: LP_CAMPAIGN_ID, LP_CAMPAIGN_KEY or PING_URL is missing. Lead submissions will fail.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// Campaign returns the immutable campaign settings handed to the lead usecase.
func (c *Config) Campaign() domain.CampaignConfig {
	return domain.CampaignConfig{
		CampaignID:  c.CampaignID,
		CampaignKey: c.CampaignKey,
		PingURL:     c.PingURL,
	}
}

// RateLimitWindow returns the rate limit window as a duration
func (c *Config) RateLimitWindow() time.Duration {
	if c.RateLimitWindowSeconds <= 0 {
		return time.Minute
	}
	return time.Duration(c.RateLimitWindowSeconds) * time.Second
}

// Snapshot returns the loggable view of the configuration. The campaign key is masked.
func (c *Config) Snapshot() map[string]any {
	return map[string]any{
		"port":            c.Port,
		"lp_campaign_id":  c.CampaignID,
		"lp_campaign_key": maskSecret(c.CampaignKey),
		"ping_url":        c.PingURL,
		"ping_timeout":    c.PingTimeout.String(),
		"static_dir":      c.StaticDir,
		"redis":           c.UpstashRedisURL != "",
	}
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return s[:2] + strings.Repeat("*", len(s)-4) + s[len(s)-2:]
}
