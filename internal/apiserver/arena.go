package apiserver

import (
	"context"
	"encoding/json"
	"net/http"

	v1alpha1 "github.com/altairalabs/omnia-console/api/v1alpha1"
	"github.com/altairalabs/omnia-console/internal/query"
)

// --- Arena handlers ---
//
// Writes invalidate the workspace's arena cache prefix so the next list
// reflects the change immediately.

func (s *Server) listArenaSources(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	s.cached(w, r, query.Key("arena", ws, "sources"), func(ctx context.Context) (any, error) {
		return s.data.ArenaSources(ctx, ws)
	})
}

func (s *Server) getArenaSource(w http.ResponseWriter, r *http.Request) {
	ws, name := r.PathValue("ws"), r.PathValue("name")
	s.cached(w, r, query.Key("arena", ws, "sources", name), func(ctx context.Context) (any, error) {
		return s.data.ArenaSource(ctx, ws, name)
	})
}

// CreateArenaSourceRequest is the request body for creating an ArenaSource.
type CreateArenaSourceRequest struct {
	Name       string `json:"name"`
	Project    string `json:"project"`
	Type       string `json:"type"`
	URI        string `json:"uri,omitempty"`
	Format     string `json:"format,omitempty"`
	SampleRate string `json:"sampleRate,omitempty"`
}

func (s *Server) createArenaSource(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")

	var req CreateArenaSourceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Project == "" || req.Type == "" {
		http.Error(w, "name, project, and type are required", http.StatusBadRequest)
		return
	}

	source := &v1alpha1.ArenaSource{}
	source.Name = req.Name
	source.Spec = v1alpha1.ArenaSourceSpec{
		Project:    req.Project,
		Type:       req.Type,
		URI:        req.URI,
		Format:     req.Format,
		SampleRate: req.SampleRate,
	}

	if err := s.data.CreateArenaSource(r.Context(), ws, source); err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.Invalidate(query.Key("arena", ws))

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, source)
}

func (s *Server) deleteArenaSource(w http.ResponseWriter, r *http.Request) {
	ws, name := r.PathValue("ws"), r.PathValue("name")

	if err := s.data.DeleteArenaSource(r.Context(), ws, name); err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.Invalidate(query.Key("arena", ws))

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listArenaJobs(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	s.cached(w, r, query.Key("arena", ws, "jobs"), func(ctx context.Context) (any, error) {
		return s.data.ArenaJobs(ctx, ws)
	})
}

func (s *Server) getArenaJob(w http.ResponseWriter, r *http.Request) {
	ws, name := r.PathValue("ws"), r.PathValue("name")
	s.cached(w, r, query.Key("arena", ws, "jobs", name), func(ctx context.Context) (any, error) {
		return s.data.ArenaJob(ctx, ws, name)
	})
}

// CreateArenaJobRequest is the request body for creating an ArenaJob.
type CreateArenaJobRequest struct {
	Name       string `json:"name"`
	Project    string `json:"project"`
	SourceRef  string `json:"sourceRef"`
	RuntimeRef string `json:"runtimeRef"`
}

func (s *Server) createArenaJob(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")

	var req CreateArenaJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Name == "" || req.Project == "" || req.SourceRef == "" || req.RuntimeRef == "" {
		http.Error(w, "name, project, sourceRef, and runtimeRef are required", http.StatusBadRequest)
		return
	}

	job := &v1alpha1.ArenaJob{}
	job.Name = req.Name
	job.Spec = v1alpha1.ArenaJobSpec{
		Project:    req.Project,
		SourceRef:  req.SourceRef,
		RuntimeRef: req.RuntimeRef,
	}

	if err := s.data.CreateArenaJob(r.Context(), ws, job); err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.Invalidate(query.Key("arena", ws))

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, job)
}

// cancelArenaJob suspends the job rather than deleting it so its result
// history stays visible in the arena views.
func (s *Server) cancelArenaJob(w http.ResponseWriter, r *http.Request) {
	ws, name := r.PathValue("ws"), r.PathValue("name")

	if err := s.data.CancelArenaJob(r.Context(), ws, name); err != nil {
		s.writeError(w, err)
		return
	}
	s.cache.Invalidate(query.Key("arena", ws))

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listArenaProjects(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	s.cached(w, r, query.Key("arena", ws, "projects"), func(ctx context.Context) (any, error) {
		return s.data.ArenaProjects(ctx, ws)
	})
}

func (s *Server) getArenaProject(w http.ResponseWriter, r *http.Request) {
	ws, name := r.PathValue("ws"), r.PathValue("name")
	s.cached(w, r, query.Key("arena", ws, "projects", name), func(ctx context.Context) (any, error) {
		return s.data.ArenaProject(ctx, ws, name)
	})
}
