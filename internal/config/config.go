// internal/config/config.go
//
// Runtime configuration, read from the environment (after godotenv has
// merged any .env file in main).

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig
	Words   WordsConfig
	Wordnik WordnikConfig
	Server  ServerConfig
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"` // "console" or "json"
}

// WordsConfig selects the word list and the server's default length range.
type WordsConfig struct {
	File      string `env:"HANGMAN_WORDS_FILE"` // empty: embedded default list
	MinLength int    `env:"HANGMAN_MIN_LENGTH" envDefault:"4"`
	MaxLength int    `env:"HANGMAN_MAX_LENGTH" envDefault:"8"`
}

// WordnikConfig configures the remote word source.
type WordnikConfig struct {
	APIKey  string        `env:"WORDNIK_API_KEY"`
	BaseURL string        `env:"WORDNIK_BASE_URL" envDefault:"https://api.wordnik.com/v4"`
	Timeout time.Duration `env:"WORDNIK_TIMEOUT"  envDefault:"10s"`
}

// ServerConfig configures `hangman serve`.
type ServerConfig struct {
	Port         string        `env:"PORT"          envDefault:"5175"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
	TokenSecret  string        `env:"JWT_SECRET"    envDefault:"dev_secret_change_me"`
	TokenTTL     time.Duration `env:"JWT_TTL"       envDefault:"24h"`
}

// Load parses the process environment into a Config.
func Load() (*Config, error) {
	return Parse(env.ToMap(os.Environ()))
}

// Parse builds a Config from an explicit environment map.
func Parse(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Words.MinLength < 1 || cfg.Words.MinLength > cfg.Words.MaxLength {
		return nil, fmt.Errorf("invalid default length range [%d, %d]", cfg.Words.MinLength, cfg.Words.MaxLength)
	}
	return &cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string { return ":" + c.Server.Port }
