package apiserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-logr/logr"

	v1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
	"github.com/altairalabs/omnia-console/internal/config"
	"github.com/altairalabs/omnia-console/internal/cost"
	"github.com/altairalabs/omnia-console/internal/dataservice"
	"github.com/altairalabs/omnia-console/internal/logstream"
	"github.com/altairalabs/omnia-console/internal/query"
	"github.com/altairalabs/omnia-console/internal/tabs"
)

func newTestServer(t *testing.T, mutate func(cfg *config.Config)) *Server {
	t.Helper()

	cfg := config.Default()
	cfg.Tabs.Path = filepath.Join(t.TempDir(), "tabs.db")
	if mutate != nil {
		mutate(cfg)
	}

	tabStore, err := tabs.NewStore(cfg.Tabs.Path, cfg.Tabs.Capacity)
	if err != nil {
		t.Fatalf("opening tab store: %v", err)
	}
	t.Cleanup(func() { tabStore.CloseStore() })

	return NewServer(Options{
		Config: cfg,
		Data:   dataservice.NewDemo(cfg.SharedNamespace),
		Cache:  query.New(cfg.CacheTTL.Std()),
		Tabs:   tabStore,
		LogSource: func(ctx context.Context, workspace, runtime string) (logstream.Source, error) {
			return logstream.DemoSource(runtime), nil
		},
		Log: logr.Discard(),
	})
}

func doJSON(t *testing.T, handler http.Handler, method, path string, body any, out any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if out != nil && rec.Code < 300 {
		if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
			t.Fatalf("decoding %s %s response: %v\n%s", method, path, err, rec.Body.String())
		}
	}
	return rec
}

// ── resource routes ──

func TestListWorkspaces(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	var workspaces []dataservice.Workspace
	rec := doJSON(t, h, http.MethodGet, "/api/workspaces", nil, &workspaces)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(workspaces) == 0 {
		t.Fatal("expected demo workspaces")
	}
}

func TestGetAgentRuntime(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	var runtime v1alpha1.AgentRuntime
	rec := doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/agentruntimes/support-bot", nil, &runtime)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if runtime.Name != "support-bot" {
		t.Errorf("name = %q", runtime.Name)
	}

	rec = doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/agentruntimes/ghost", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing runtime: status = %d", rec.Code)
	}
}

func TestSharedProviders(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	var providers []v1alpha1.Provider
	rec := doJSON(t, h, http.MethodGet, "/api/shared/providers", nil, &providers)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(providers) == 0 {
		t.Fatal("expected shared providers")
	}
}

func TestGetConfigExposesSafeSubset(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	var frontend map[string]any
	rec := doJSON(t, h, http.MethodGet, "/api/config", nil, &frontend)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if frontend["mode"] != "demo" {
		t.Errorf("mode = %v", frontend["mode"])
	}
	if _, leaked := frontend["secret"]; leaked {
		t.Error("config response leaked a secret field")
	}
}

// ── arena routes ──

func TestArenaJobLifecycle(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	create := CreateArenaJobRequest{Name: "eval-900", Project: "deflection-quality", SourceRef: "tickets-2025-q4", RuntimeRef: "support-bot"}
	rec := doJSON(t, h, http.MethodPost, "/api/workspaces/acme-support/arena/jobs", create, nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, rec.Body.String())
	}

	// The write invalidated the cache, so the new job lists immediately.
	var jobs []v1alpha1.ArenaJob
	doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/arena/jobs", nil, &jobs)
	found := false
	for _, j := range jobs {
		if j.Name == "eval-900" {
			found = true
		}
	}
	if !found {
		t.Fatal("created job not listed")
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/workspaces/acme-support/arena/jobs/eval-900", nil, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("cancel status = %d", rec.Code)
	}

	var job v1alpha1.ArenaJob
	doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/arena/jobs/eval-900", nil, &job)
	if job.Status.Phase != v1alpha1.ArenaJobPhaseCanceled {
		t.Errorf("phase = %q", job.Status.Phase)
	}
}

func TestCreateArenaSourceValidation(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	rec := doJSON(t, h, http.MethodPost, "/api/workspaces/acme-support/arena/sources", CreateArenaSourceRequest{Name: "x"}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

// ── metrics and cost ──

func TestMetricsDemoFrame(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	var frame struct {
		Series  []string `json:"series"`
		Buckets []struct {
			Values map[string]float64 `json:"values"`
		} `json:"buckets"`
	}
	rec := doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/metrics?metric=requests&window=1h", nil, &frame)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if len(frame.Series) == 0 || len(frame.Buckets) == 0 {
		t.Fatal("expected a shaped frame")
	}
	for _, b := range frame.Buckets {
		if len(b.Values) != len(frame.Series) {
			t.Fatal("bucket missing series values")
		}
	}
}

func TestMetricsRejectsBadWindow(t *testing.T) {
	h := newTestServer(t, nil).Handler()
	rec := doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/metrics?window=yesterday", nil, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestCostReportByProvider(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	var report cost.Report
	rec := doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/cost?window=1h&by=provider", nil, &report)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
	}
	if report.GroupBy != "provider" || len(report.Items) == 0 {
		t.Fatalf("unexpected report: %+v", report)
	}
	if report.TotalCost <= 0 {
		t.Errorf("total cost = %v", report.TotalCost)
	}
}

func TestWarmCostPrimesCache(t *testing.T) {
	s := newTestServer(t, nil)
	if err := s.WarmCost(context.Background()); err != nil {
		t.Fatalf("WarmCost: %v", err)
	}
	if s.cache.Len() == 0 {
		t.Fatal("expected warmed cache entries")
	}
}

func TestCacheTTLFollowsConfigReload(t *testing.T) {
	s := newTestServer(t, nil)
	h := s.Handler()

	doJSON(t, h, http.MethodGet, "/api/workspaces", nil, nil)
	if s.cache.Len() == 0 {
		t.Fatal("expected a cached entry with the default TTL")
	}

	// A reloaded zero TTL must take effect without a restart.
	updated := config.Default()
	updated.CacheTTL = 0
	s.UpdateConfig(updated)
	s.cache.Invalidate("")

	doJSON(t, h, http.MethodGet, "/api/workspaces", nil, nil)
	if got := s.cache.Len(); got != 0 {
		t.Fatalf("cache entries after zero-TTL reload = %d, want 0", got)
	}
}

// ── sessions ──

func TestSessionRoutes(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	var sessions []map[string]any
	rec := doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/sessions?runtime=support-bot", nil, &sessions)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(sessions) == 0 {
		t.Fatal("expected demo sessions")
	}

	var transcript []map[string]any
	rec = doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/sessions/sess-0001/transcript", nil, &transcript)
	if rec.Code != http.StatusOK {
		t.Fatalf("transcript status = %d", rec.Code)
	}
	if len(transcript) == 0 {
		t.Fatal("expected transcript events")
	}

	rec = doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/sessions/nope", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("missing session: status = %d", rec.Code)
	}
}

// ── logs ──

func TestLogsSnapshot(t *testing.T) {
	h := newTestServer(t, func(cfg *config.Config) {
		cfg.Logs.Interval = config.Duration(10 * time.Millisecond)
	}).Handler()

	deadline := time.Now().Add(2 * time.Second)
	for {
		var lines []logstream.Line
		rec := doJSON(t, h, http.MethodGet, "/api/workspaces/acme-support/agentruntimes/support-bot/logs", nil, &lines)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d: %s", rec.Code, rec.Body.String())
		}
		if len(lines) > 0 {
			if lines[0].Seq != 1 {
				t.Errorf("first seq = %d", lines[0].Seq)
			}
			return
		}
		if time.Now().After(deadline) {
			t.Fatal("poller produced no lines")
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// ── tabs ──

func TestTabRoutes(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	var opened OpenTabResponse
	rec := doJSON(t, h, http.MethodPost, "/api/tabs", OpenTabRequest{Kind: "agentruntime", Workspace: "acme-support", Name: "support-bot", Title: "support-bot"}, &opened)
	if rec.Code != http.StatusCreated {
		t.Fatalf("open status = %d: %s", rec.Code, rec.Body.String())
	}
	if opened.Tab == nil || !opened.Tab.Active {
		t.Fatalf("unexpected open response: %+v", opened)
	}

	var listed []tabs.Tab
	doJSON(t, h, http.MethodGet, "/api/tabs", nil, &listed)
	if len(listed) != 1 {
		t.Fatalf("expected 1 tab, got %d", len(listed))
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/tabs/"+opened.Tab.ID, nil, nil)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("close status = %d", rec.Code)
	}

	rec = doJSON(t, h, http.MethodDelete, "/api/tabs/"+opened.Tab.ID, nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("double close status = %d", rec.Code)
	}
}

// ── health ──

func TestHealthEndpoints(t *testing.T) {
	h := newTestServer(t, nil).Handler()

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := doJSON(t, h, http.MethodGet, path, nil, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("%s status = %d", path, rec.Code)
		}
	}
}
