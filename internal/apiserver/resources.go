package apiserver

import (
	"context"
	"net/http"

	"github.com/altairalabs/omnia-console/internal/query"
)

// --- Workspace and resource reads ---
//
// Every read goes through the query cache keyed by the request shape, so
// repeated dashboard polls collapse onto one upstream fetch.

func (s *Server) listWorkspaces(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, query.Key("workspaces"), func(ctx context.Context) (any, error) {
		return s.data.Workspaces(ctx)
	})
}

func (s *Server) listAgentRuntimes(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	s.cached(w, r, query.Key("agentruntimes", ws), func(ctx context.Context) (any, error) {
		return s.data.AgentRuntimes(ctx, ws)
	})
}

func (s *Server) getAgentRuntime(w http.ResponseWriter, r *http.Request) {
	ws, name := r.PathValue("ws"), r.PathValue("name")
	s.cached(w, r, query.Key("agentruntimes", ws, name), func(ctx context.Context) (any, error) {
		return s.data.AgentRuntime(ctx, ws, name)
	})
}

func (s *Server) listPromptPacks(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	s.cached(w, r, query.Key("promptpacks", ws), func(ctx context.Context) (any, error) {
		return s.data.PromptPacks(ctx, ws)
	})
}

func (s *Server) getPromptPack(w http.ResponseWriter, r *http.Request) {
	ws, name := r.PathValue("ws"), r.PathValue("name")
	s.cached(w, r, query.Key("promptpacks", ws, name), func(ctx context.Context) (any, error) {
		return s.data.PromptPack(ctx, ws, name)
	})
}

func (s *Server) listToolRegistries(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	s.cached(w, r, query.Key("toolregistries", ws), func(ctx context.Context) (any, error) {
		return s.data.ToolRegistries(ctx, ws)
	})
}

func (s *Server) getToolRegistry(w http.ResponseWriter, r *http.Request) {
	ws, name := r.PathValue("ws"), r.PathValue("name")
	s.cached(w, r, query.Key("toolregistries", ws, name), func(ctx context.Context) (any, error) {
		return s.data.ToolRegistry(ctx, ws, name)
	})
}

func (s *Server) getProvider(w http.ResponseWriter, r *http.Request) {
	ns, name := r.PathValue("ns"), r.PathValue("name")
	s.cached(w, r, query.Key("providers", ns, name), func(ctx context.Context) (any, error) {
		return s.data.Provider(ctx, ns, name)
	})
}

func (s *Server) listSharedProviders(w http.ResponseWriter, r *http.Request) {
	s.cached(w, r, query.Key("providers", "shared"), func(ctx context.Context) (any, error) {
		return s.data.SharedProviders(ctx)
	})
}

func (s *Server) listSecrets(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	s.cached(w, r, query.Key("secrets", ws), func(ctx context.Context) (any, error) {
		return s.data.Secrets(ctx, ws)
	})
}
