package apiserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/altairalabs/omnia-console/internal/tabs"
)

// --- Tab handlers ---
//
// Tab state is per authenticated user; the store enforces the capacity and
// eviction rules.

func (s *Server) listTabs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.tabs.List(userFrom(r.Context())))
}

// OpenTabRequest is the request body for opening a tab.
type OpenTabRequest struct {
	Kind      string `json:"kind"`
	Workspace string `json:"workspace"`
	Name      string `json:"name"`
	Title     string `json:"title"`
}

// OpenTabResponse reports the opened tab and the tab evicted to make room,
// if any, so the frontend can close it without refetching the list.
type OpenTabResponse struct {
	Tab     *tabs.Tab `json:"tab"`
	Evicted *tabs.Tab `json:"evicted,omitempty"`
}

func (s *Server) openTab(w http.ResponseWriter, r *http.Request) {
	var req OpenTabRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.Kind == "" || req.Name == "" {
		http.Error(w, "kind and name are required", http.StatusBadRequest)
		return
	}

	tab, evicted, err := s.tabs.Open(userFrom(r.Context()), req.Kind, req.Workspace, req.Name, req.Title)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	writeJSON(w, OpenTabResponse{Tab: tab, Evicted: evicted})
}

func (s *Server) activateTab(w http.ResponseWriter, r *http.Request) {
	tab, err := s.tabs.Activate(userFrom(r.Context()), r.PathValue("id"))
	if err != nil {
		s.writeTabError(w, err)
		return
	}
	writeJSON(w, tab)
}

func (s *Server) closeTab(w http.ResponseWriter, r *http.Request) {
	if err := s.tabs.Close(userFrom(r.Context()), r.PathValue("id")); err != nil {
		s.writeTabError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) writeTabError(w http.ResponseWriter, err error) {
	if errors.Is(err, tabs.ErrTabNotFound) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	http.Error(w, err.Error(), http.StatusInternalServerError)
}
