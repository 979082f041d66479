// Package apiserver serves the console's HTTP + WebSocket API and the
// embedded dashboard frontend.
package apiserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/altairalabs/omnia-console/internal/config"
	"github.com/altairalabs/omnia-console/internal/dataservice"
	"github.com/altairalabs/omnia-console/internal/eventbus"
	"github.com/altairalabs/omnia-console/internal/promquery"
	"github.com/altairalabs/omnia-console/internal/query"
	"github.com/altairalabs/omnia-console/internal/tabs"
)

// Options carries the server's collaborators. Prom, Bus, and LogSource are
// optional; the routes needing them return 503 when absent.
type Options struct {
	Config    *config.Config
	Data      dataservice.Service
	Cache     *query.Cache
	Tabs      *tabs.Store
	Prom      *promquery.Client
	Bus       eventbus.EventBus
	LogSource LogSourceFactory
	Log       logr.Logger
}

// Server is the console API server.
type Server struct {
	cfgMu    sync.RWMutex
	cfg      *config.Config
	data     dataservice.Service
	cache    *query.Cache
	tabs     *tabs.Store
	prom     *promquery.Client
	bus      eventbus.EventBus
	logs     *logManager
	verifier *JWTVerifier
	log      logr.Logger
	upgrader websocket.Upgrader
}

// NewServer creates the API server.
func NewServer(opts Options) *Server {
	s := &Server{
		cfg:   opts.Config,
		data:  opts.Data,
		cache: opts.Cache,
		tabs:  opts.Tabs,
		prom:  opts.Prom,
		bus:   opts.Bus,
		log:   opts.Log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	if !opts.Config.Auth.Disabled {
		s.verifier = NewJWTVerifier([]byte(opts.Config.Auth.Secret))
	}
	s.logs = newLogManager(opts.LogSource, opts.Config.Logs.Interval.Std(), opts.Config.Logs.Capacity, opts.Log.WithName("logs"))
	return s
}

// Handler builds the route table.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	api := http.NewServeMux()

	// Workspace-scoped resources
	api.HandleFunc("GET /api/workspaces", s.listWorkspaces)
	api.HandleFunc("GET /api/workspaces/{ws}/agentruntimes", s.listAgentRuntimes)
	api.HandleFunc("GET /api/workspaces/{ws}/agentruntimes/{name}", s.getAgentRuntime)
	api.HandleFunc("GET /api/workspaces/{ws}/agentruntimes/{name}/logs", s.getLogs)
	api.HandleFunc("GET /api/workspaces/{ws}/agentruntimes/{name}/logs/ws", s.followLogs)
	api.HandleFunc("GET /api/workspaces/{ws}/promptpacks", s.listPromptPacks)
	api.HandleFunc("GET /api/workspaces/{ws}/promptpacks/{name}", s.getPromptPack)
	api.HandleFunc("GET /api/workspaces/{ws}/toolregistries", s.listToolRegistries)
	api.HandleFunc("GET /api/workspaces/{ws}/toolregistries/{name}", s.getToolRegistry)
	api.HandleFunc("GET /api/workspaces/{ws}/secrets", s.listSecrets)

	// Providers
	api.HandleFunc("GET /api/providers/{ns}/{name}", s.getProvider)
	api.HandleFunc("GET /api/shared/providers", s.listSharedProviders)

	// Arena
	api.HandleFunc("GET /api/workspaces/{ws}/arena/sources", s.listArenaSources)
	api.HandleFunc("POST /api/workspaces/{ws}/arena/sources", s.createArenaSource)
	api.HandleFunc("GET /api/workspaces/{ws}/arena/sources/{name}", s.getArenaSource)
	api.HandleFunc("DELETE /api/workspaces/{ws}/arena/sources/{name}", s.deleteArenaSource)
	api.HandleFunc("GET /api/workspaces/{ws}/arena/jobs", s.listArenaJobs)
	api.HandleFunc("POST /api/workspaces/{ws}/arena/jobs", s.createArenaJob)
	api.HandleFunc("GET /api/workspaces/{ws}/arena/jobs/{name}", s.getArenaJob)
	api.HandleFunc("DELETE /api/workspaces/{ws}/arena/jobs/{name}", s.cancelArenaJob)
	api.HandleFunc("GET /api/workspaces/{ws}/arena/projects", s.listArenaProjects)
	api.HandleFunc("GET /api/workspaces/{ws}/arena/projects/{name}", s.getArenaProject)

	// Metrics and cost views
	api.HandleFunc("GET /api/workspaces/{ws}/metrics", s.getMetrics)
	api.HandleFunc("GET /api/workspaces/{ws}/cost", s.getCost)

	// Sessions
	api.HandleFunc("GET /api/workspaces/{ws}/sessions", s.listSessions)
	api.HandleFunc("GET /api/workspaces/{ws}/sessions/{id}", s.getSession)
	api.HandleFunc("GET /api/workspaces/{ws}/sessions/{id}/transcript", s.getTranscript)
	api.HandleFunc("GET /api/workspaces/{ws}/sessions/ws", s.streamSessions)

	// Per-user tab state
	api.HandleFunc("GET /api/tabs", s.listTabs)
	api.HandleFunc("POST /api/tabs", s.openTab)
	api.HandleFunc("PUT /api/tabs/{id}", s.activateTab)
	api.HandleFunc("DELETE /api/tabs/{id}", s.closeTab)

	// Config stays outside auth: the frontend bootstraps from it to learn
	// whether a login flow is needed at all.
	mux.Handle("GET /api/config", instrument(http.HandlerFunc(s.getConfig)))

	mux.Handle("/api/", s.requireAuth(instrument(api)))

	// Health & metrics
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", s.ready)
	mux.Handle("/metrics", promhttp.Handler())

	// Embedded frontend
	mux.Handle("/", s.frontendHandler())

	return mux
}

// Start starts the HTTP server.
func (s *Server) Start(addr string) error {
	return s.StartWith(addr, nil)
}

// StartWith starts the HTTP server with an optional outer middleware
// (request tracing).
func (s *Server) StartWith(addr string, middleware func(http.Handler) http.Handler) error {
	handler := s.Handler()
	if middleware != nil {
		handler = middleware(handler)
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	s.log.Info("Starting console API server", "addr", addr)
	return server.ListenAndServe()
}

// UpdateConfig swaps the configuration after a hot reload. Only settings
// read per request (the frontend config, cache TTL, default windows) take
// effect; listen address and store paths need a restart.
func (s *Server) UpdateConfig(cfg *config.Config) {
	s.cfgMu.Lock()
	s.cfg = cfg
	s.cfgMu.Unlock()
	s.log.Info("configuration reloaded")
}

func (s *Server) config() *config.Config {
	s.cfgMu.RLock()
	defer s.cfgMu.RUnlock()
	return s.cfg
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	// The console is ready once the data service answers.
	if _, err := s.data.Workspaces(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) getConfig(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.config().Frontend())
}

// cached serves a request through the query cache under the given key. The
// TTL is read per request so a config reload takes effect immediately.
func (s *Server) cached(w http.ResponseWriter, r *http.Request, key string, fetch query.Fetcher) {
	value, err := s.cache.GetTTL(r.Context(), key, s.config().CacheTTL.Std(), fetch)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, value)
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	if dataservice.IsNotFound(err) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
