package main

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/tomz197/keyrunner/internal/config"
)

func TestHandlerFillsConnectCommand(t *testing.T) {
	h := newHandler(config.Web{SSHHost: "play.example.com", SSHPort: "2323"}, log.New(io.Discard))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Fatalf("unexpected content type %q", ct)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "ssh -t -p 2323 play.example.com") {
		t.Fatalf("expected connect command in page")
	}
	if strings.Contains(body, "{{.") {
		t.Fatal("expected all placeholders replaced")
	}
}

func TestHandlerUnknownPath(t *testing.T) {
	h := newHandler(config.Web{}, log.New(io.Discard))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
