// Package config loads the service configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultPort        = 8001
	defaultModel       = "gpt-4-turbo"
	defaultMaxComments = 5
)

// Config is the fully resolved service configuration. It is built once at
// startup and passed to constructors; nothing reads the environment after
// Load returns.
type Config struct {
	Port          int
	BearerToken   string
	YouTubeAPIKey string
	OpenAIAPIKey  string
	OpenAIModel   string
	MaxComments   int
	LogLevel      string

	// Conversation storage. Supabase is preferred when configured;
	// DatabaseURL selects the direct-Postgres store.
	SupabaseURL string
	SupabaseKey string
	DatabaseURL string
}

// Load reads configuration from the environment and validates it.
func Load() (Config, error) {
	cfg := Config{
		Port:          envInt("PORT", defaultPort),
		BearerToken:   os.Getenv("API_BEARER_TOKEN"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
		OpenAIAPIKey:  os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:   envStr("OPENAI_MODEL", defaultModel),
		MaxComments:   envInt("MAX_COMMENTS", defaultMaxComments),
		LogLevel:      envStr("LOG_LEVEL", "info"),
		SupabaseURL:   os.Getenv("SUPABASE_URL"),
		SupabaseKey:   os.Getenv("SUPABASE_KEY"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
	}

	var missing []string
	for _, v := range []struct {
		key   string
		value string
	}{
		{"API_BEARER_TOKEN", cfg.BearerToken},
		{"YOUTUBE_API_KEY", cfg.YouTubeAPIKey},
		{"OPENAI_API_KEY", cfg.OpenAIAPIKey},
	} {
		if v.value == "" {
			missing = append(missing, v.key)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if cfg.SupabaseURL != "" && cfg.SupabaseKey == "" {
		return Config{}, errors.New("SUPABASE_KEY is required when SUPABASE_URL is set")
	}
	if cfg.SupabaseURL == "" && cfg.DatabaseURL == "" {
		return Config{}, errors.New("conversation storage is not configured: set SUPABASE_URL and SUPABASE_KEY, or DATABASE_URL")
	}

	return cfg, nil
}

// UseSupabase reports whether conversation turns go through the Supabase
// REST API rather than straight to Postgres.
func (c Config) UseSupabase() bool {
	return c.SupabaseURL != ""
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
