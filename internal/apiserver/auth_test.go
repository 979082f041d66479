package apiserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/altairalabs/omnia-console/internal/config"
)

func newAuthedServer(t *testing.T) *Server {
	t.Helper()
	return newTestServer(t, func(cfg *config.Config) {
		cfg.Auth.Disabled = false
		cfg.Auth.Secret = "test-secret"
	})
}

func TestAuthRejectsMissingToken(t *testing.T) {
	h := newAuthedServer(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/workspaces", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthAcceptsBearerToken(t *testing.T) {
	s := newAuthedServer(t)
	h := s.Handler()

	token, err := s.verifier.Generate("dev@acme.test", time.Minute)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/workspaces", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAuthAcceptsQueryToken(t *testing.T) {
	s := newAuthedServer(t)
	h := s.Handler()

	token, err := s.verifier.Generate("dev@acme.test", time.Minute)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/workspaces?token="+token, nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestAuthRejectsExpiredToken(t *testing.T) {
	s := newAuthedServer(t)
	h := s.Handler()

	token, err := s.verifier.Generate("dev@acme.test", -time.Minute)
	if err != nil {
		t.Fatalf("generating token: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/workspaces", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestHealthSkipsAuth(t *testing.T) {
	h := newAuthedServer(t).Handler()

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestConfigSkipsAuth(t *testing.T) {
	h := newAuthedServer(t).Handler()

	// The frontend bootstraps from /api/config before it has a token; it
	// must be able to learn that auth is enabled.
	var fc struct {
		AuthEnabled bool `json:"authEnabled"`
	}
	rec := doJSON(t, h, http.MethodGet, "/api/config", nil, &fc)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}
	if !fc.AuthEnabled {
		t.Error("config should report auth enabled")
	}
}

func TestTabsAreScopedToTokenUser(t *testing.T) {
	s := newAuthedServer(t)
	h := s.Handler()

	alice, _ := s.verifier.Generate("alice", time.Minute)
	bob, _ := s.verifier.Generate("bob", time.Minute)

	// Open a tab as alice.
	body := `{"kind":"agentruntime","workspace":"acme-support","name":"support-bot","title":"support-bot"}`
	req := httptest.NewRequest(http.MethodPost, "/api/tabs", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+alice)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("open status = %d: %s", rec.Code, rec.Body.String())
	}

	// Bob sees no tabs.
	req = httptest.NewRequest(http.MethodGet, "/api/tabs", nil)
	req.Header.Set("Authorization", "Bearer "+bob)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "[]" && got != "null" {
		t.Fatalf("bob's tabs = %s", got)
	}
}
