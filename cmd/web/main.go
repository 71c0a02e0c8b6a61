package main

import (
	_ "embed"
	"fmt"
	"net"
	"net/http"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/tomz197/keyrunner/internal/config"
)

//go:embed index.html
var htmlPage string

// newHandler serves the landing page with the public SSH address filled in.
func newHandler(cfg config.Web, logger *log.Logger) http.Handler {
	page := strings.NewReplacer(
		"{{.SSHHost}}", cfg.SSHHost,
		"{{.SSHPort}}", cfg.SSHPort,
	).Replace(htmlPage)

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := fmt.Fprint(w, page); err != nil {
			logger.Debug("write page", "err", err)
		}
	})
	return mux
}

func main() {
	var cfg config.Web
	if err := config.ParseEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr, cfg.LogLevel, "web")

	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           newHandler(cfg, logger),
		ReadHeaderTimeout: cfg.ReadTimeout,
		ReadTimeout:       cfg.ReadTimeout,
	}

	logger.Info("Starting web server", "url", "http://"+addr, "sshHost", cfg.SSHHost)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
