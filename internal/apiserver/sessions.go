package apiserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/altairalabs/omnia-console/internal/eventbus"
)

// --- Session handlers ---

func (s *Server) listSessions(w http.ResponseWriter, r *http.Request) {
	ws := r.PathValue("ws")
	runtime := r.URL.Query().Get("runtime")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	// Session lists change on every message; they bypass the cache.
	sessions, err := s.data.Sessions(r.Context(), ws, runtime, limit)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, sessions)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	ws, id := r.PathValue("ws"), r.PathValue("id")

	sess, err := s.data.Session(r.Context(), ws, id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, sess)
}

func (s *Server) getTranscript(w http.ResponseWriter, r *http.Request) {
	ws, id := r.PathValue("ws"), r.PathValue("id")

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			http.Error(w, "invalid since timestamp: "+err.Error(), http.StatusBadRequest)
			return
		}
		since = parsed
	}

	events, err := s.data.Transcript(r.Context(), ws, id, since)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, events)
}

// streamSessions bridges live session events from the bus to a WebSocket
// client, filtered to the requested workspace.
func (s *Server) streamSessions(w http.ResponseWriter, r *http.Request) {
	if s.bus == nil {
		http.Error(w, "session streaming not available", http.StatusServiceUnavailable)
		return
	}
	ws := r.PathValue("ws")

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error(err, "failed to upgrade websocket")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	events, err := s.bus.Subscribe(ctx, eventbus.TopicSessionStreamChunk, ws)
	if err != nil {
		s.log.Error(err, "failed to subscribe to session events")
		return
	}

	// Read loop (handle client messages / keep-alive)
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	// Write loop (forward the workspace's events to the client)
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			data, _ := json.Marshal(event)
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}
