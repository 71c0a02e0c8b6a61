// Package config provides shared configuration utilities.
package config

import (
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// SSH configures the SSH game server.
type SSH struct {
	Host            string        `env:"SSH_HOST" envDefault:"::"`
	Port            string        `env:"SSH_PORT" envDefault:"2222"`
	HostKeyPath     string        `env:"SSH_HOST_KEY" envDefault:"/app/keys/host_key"`
	MaxSessions     int           `env:"SSH_MAX_SESSIONS" envDefault:"64"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Web configures the landing page server.
type Web struct {
	Host        string        `env:"WEB_HOST" envDefault:"0.0.0.0"`
	Port        string        `env:"WEB_PORT" envDefault:"8080"`
	SSHHost     string        `env:"SSH_DISPLAY_HOST" envDefault:"your-server.com"`
	SSHPort     string        `env:"SSH_DISPLAY_PORT" envDefault:"2222"`
	LogLevel    string        `env:"LOG_LEVEL" envDefault:"info"`
	ReadTimeout time.Duration `env:"WEB_READ_TIMEOUT" envDefault:"5s"`
}

// Game configures local play.
type Game struct {
	// Seed fixes the spawn randomness when non-zero.
	Seed    uint64 `env:"GAME_SEED" envDefault:"0"`
	LogFile string `env:"GAME_LOG_FILE"`
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// NewLogger builds a structured logger writing to w for the given level name.
// Unknown levels fall back to info.
func NewLogger(w io.Writer, level, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Prefix:          prefix,
	})
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
