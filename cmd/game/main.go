package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/tomz197/keyrunner/internal/config"
	"github.com/tomz197/keyrunner/internal/loop/client"
	"github.com/tomz197/keyrunner/internal/loop/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg config.Game
	if err := config.ParseEnv(&cfg); err != nil {
		return err
	}

	// The raw-mode terminal must stay clean, so logs only go to a file.
	var logOut io.Writer = io.Discard
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "debug", "game")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	renderer := lipgloss.NewRenderer(os.Stdout)
	renderer.SetColorProfile(termenv.EnvColorProfile())

	// Local play is a hub of one.
	hub := server.NewHub(1)
	c, err := client.NewClient(hub, bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Username: os.Getenv("USER"),
		Seed:     cfg.Seed,
		Renderer: renderer,
		Logger:   logger,
	})
	if err != nil {
		return err
	}
	logger.Info("local game started", "seed", cfg.Seed)
	return c.Run()
}
