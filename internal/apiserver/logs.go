package apiserver

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/websocket"

	"github.com/altairalabs/omnia-console/internal/logstream"
)

// LogSourceFactory resolves a log source for one runtime's pods. In demo
// mode it returns a synthetic source; in live mode it reads pod logs.
type LogSourceFactory func(ctx context.Context, workspace, runtime string) (logstream.Source, error)

// logManager owns one poller per runtime, started on first request and kept
// running so the line buffer survives across dashboard visits.
type logManager struct {
	factory  LogSourceFactory
	interval time.Duration
	capacity int
	log      logr.Logger

	mu      sync.Mutex
	pollers map[string]*logstream.Poller
	cancels []context.CancelFunc
}

func newLogManager(factory LogSourceFactory, interval time.Duration, capacity int, log logr.Logger) *logManager {
	return &logManager{
		factory:  factory,
		interval: interval,
		capacity: capacity,
		log:      log,
		pollers:  make(map[string]*logstream.Poller),
	}
}

func (m *logManager) poller(ctx context.Context, workspace, runtime string) (*logstream.Poller, error) {
	key := workspace + "/" + runtime

	m.mu.Lock()
	defer m.mu.Unlock()

	if p, ok := m.pollers[key]; ok {
		return p, nil
	}

	source, err := m.factory(ctx, workspace, runtime)
	if err != nil {
		return nil, err
	}

	p := logstream.NewPoller(source, m.interval, m.capacity, m.log.WithValues("runtime", key))

	// Pollers outlive the request that started them.
	runCtx, cancel := context.WithCancel(context.Background())
	m.cancels = append(m.cancels, cancel)
	go p.Run(runCtx)

	m.pollers[key] = p
	return p, nil
}

// Close stops all pollers.
func (m *logManager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cancel := range m.cancels {
		cancel()
	}
	m.cancels = nil
}

// --- Log handlers ---

func (s *Server) getLogs(w http.ResponseWriter, r *http.Request) {
	if s.logs.factory == nil {
		http.Error(w, "log streaming not available", http.StatusServiceUnavailable)
		return
	}
	ws, name := r.PathValue("ws"), r.PathValue("name")

	poller, err := s.logs.poller(r.Context(), ws, name)
	if err != nil {
		s.writeError(w, err)
		return
	}

	since, _ := strconv.ParseInt(r.URL.Query().Get("since"), 10, 64)
	writeJSON(w, poller.Snapshot(since))
}

func (s *Server) followLogs(w http.ResponseWriter, r *http.Request) {
	if s.logs.factory == nil {
		http.Error(w, "log streaming not available", http.StatusServiceUnavailable)
		return
	}
	ws, name := r.PathValue("ws"), r.PathValue("name")

	poller, err := s.logs.poller(r.Context(), ws, name)
	if err != nil {
		s.writeError(w, err)
		return
	}

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Error(err, "failed to upgrade websocket")
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	// Subscribe before sending history so no line falls in the gap.
	lines := poller.Subscribe(ctx)
	lastSeq := int64(0)
	for _, line := range poller.Snapshot(0) {
		data, _ := json.Marshal(line)
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
		lastSeq = line.Seq
	}

	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				cancel()
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case line, ok := <-lines:
			if !ok {
				return
			}
			if line.Seq <= lastSeq {
				continue
			}
			data, _ := json.Marshal(line)
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		}
	}
}
