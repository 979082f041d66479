package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultValidates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.yaml")
	data := []byte(`
mode: live
listenAddr: ":9999"
sharedNamespace: shared
auth:
  disabled: false
  secret: topsecret
tabs:
  capacity: 5
logs:
  interval: 5s
  capacity: 100
`)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeLive {
		t.Errorf("mode = %q, want live", cfg.Mode)
	}
	if cfg.ListenAddr != ":9999" {
		t.Errorf("listenAddr = %q", cfg.ListenAddr)
	}
	if cfg.Auth.Secret != "topsecret" {
		t.Errorf("auth secret not loaded")
	}
	if cfg.Tabs.Capacity != 5 {
		t.Errorf("tabs capacity = %d, want 5", cfg.Tabs.Capacity)
	}
	if cfg.Logs.Interval.Std() != 5*time.Second {
		t.Errorf("logs interval = %v", cfg.Logs.Interval)
	}
	// Unset fields keep their defaults.
	if cfg.WorkspaceLabel == "" {
		t.Error("workspaceLabel default lost")
	}
}

func TestLoadRejectsBadMode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "console.yaml")
	if err := os.WriteFile(path, []byte("mode: hybrid\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for invalid mode")
	}
}

func TestAuthRequiresSecret(t *testing.T) {
	cfg := Default()
	cfg.Auth.Disabled = false
	cfg.Auth.Secret = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error when auth enabled without secret")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("OMNIA_CONSOLE_MODE", "live")
	t.Setenv("OMNIA_CONSOLE_ADDR", ":7070")
	t.Setenv("OMNIA_CONSOLE_AUTH_SECRET", "envsecret")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeLive {
		t.Errorf("mode = %q, want live", cfg.Mode)
	}
	if cfg.ListenAddr != ":7070" {
		t.Errorf("addr = %q", cfg.ListenAddr)
	}
	if cfg.Auth.Disabled || cfg.Auth.Secret != "envsecret" {
		t.Errorf("auth env override not applied: %+v", cfg.Auth)
	}
}

func TestFrontendHidesSecrets(t *testing.T) {
	cfg := Default()
	cfg.Auth.Disabled = false
	cfg.Auth.Secret = "hush"

	fe := cfg.Frontend()
	if !fe.AuthEnabled {
		t.Error("authEnabled should be true")
	}
	if fe.Mode != cfg.Mode {
		t.Errorf("mode = %q", fe.Mode)
	}
	// The Frontend struct has no secret field at all; this test pins the
	// tab capacity and poll interval passthrough.
	if fe.TabCapacity != cfg.Tabs.Capacity {
		t.Errorf("tabCapacity = %d", fe.TabCapacity)
	}
	if fe.LogPollMillis != cfg.Logs.Interval.Std().Milliseconds() {
		t.Errorf("logPollMillis = %d", fe.LogPollMillis)
	}
}
