package config

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestParseEnvDefaults(t *testing.T) {
	var cfg SSH
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Host != "::" || cfg.Port != "2222" {
		t.Fatalf("expected default address, got %q:%q", cfg.Host, cfg.Port)
	}
	if cfg.MaxSessions != 64 {
		t.Fatalf("expected 64 max sessions, got %d", cfg.MaxSessions)
	}
	if cfg.ShutdownTimeout != 15*time.Second {
		t.Fatalf("expected 15s shutdown timeout, got %v", cfg.ShutdownTimeout)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("SSH_PORT", "2323")
	t.Setenv("SSH_MAX_SESSIONS", "2")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("GAME_SEED", "42")

	var ssh SSH
	if err := ParseEnv(&ssh); err != nil {
		t.Fatalf("parse ssh: %v", err)
	}
	if ssh.Port != "2323" || ssh.MaxSessions != 2 || ssh.ShutdownTimeout != 3*time.Second {
		t.Fatalf("overrides not applied: %+v", ssh)
	}

	var game Game
	if err := ParseEnv(&game); err != nil {
		t.Fatalf("parse game: %v", err)
	}
	if game.Seed != 42 {
		t.Fatalf("expected seed 42, got %d", game.Seed)
	}
}

func TestParseEnvInvalid(t *testing.T) {
	t.Setenv("SSH_MAX_SESSIONS", "many")

	var cfg SSH
	if err := ParseEnv(&cfg); err == nil {
		t.Fatal("expected error for non-numeric session limit")
	}
}

func TestNewLoggerLevel(t *testing.T) {
	if got := NewLogger(io.Discard, "debug", "test").GetLevel(); got != log.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	if got := NewLogger(io.Discard, "bogus", "test").GetLevel(); got != log.InfoLevel {
		t.Fatalf("expected info fallback, got %v", got)
	}
}

func TestNewLoggerWritesPrefix(t *testing.T) {
	var buf bytes.Buffer
	NewLogger(&buf, "info", "web").Info("listening", "addr", ":8080")
	if out := buf.String(); !strings.Contains(out, "web") || !strings.Contains(out, "addr=:8080") {
		t.Fatalf("unexpected log line %q", out)
	}
}
