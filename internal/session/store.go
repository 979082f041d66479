// Package session reads conversation sessions and transcripts from the
// PostgreSQL store that agent runtimes write into. The console only
// observes: it never creates or mutates sessions.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/altairalabs/omnia-console/internal/cost"
)

// ErrSessionNotFound is returned when no session matches the workspace and
// ID, including sessions that exist but belong to another workspace.
var ErrSessionNotFound = errors.New("session not found")

// Session is one conversation held by an agent runtime.
type Session struct {
	ID          string            `json:"id"`
	Workspace   string            `json:"workspace"`
	Runtime     string            `json:"runtime"`
	Provider    string            `json:"provider"`
	Status      string            `json:"status"` // active, ended
	Metadata    map[string]string `json:"metadata,omitempty"`
	EventCount  int               `json:"eventCount"`
	StartedAt   time.Time         `json:"startedAt"`
	LastEventAt time.Time         `json:"lastEventAt"`
}

// TranscriptEvent is a single event in a session transcript.
type TranscriptEvent struct {
	ID        string          `json:"id"`
	SessionID string          `json:"sessionId"`
	Role      string          `json:"role"` // user, assistant, system, tool
	Content   string          `json:"content"`
	ToolName  string          `json:"toolName,omitempty"`
	ToolInput json.RawMessage `json:"toolInput,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

// Store reads sessions and transcripts from PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore connects to the session database and verifies the connection.
func NewStore(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &Store{pool: pool}, nil
}

// Close shuts down the database connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// ListSessions returns sessions in a workspace, most recent activity first.
// runtime narrows to one AgentRuntime when non-empty.
func (s *Store) ListSessions(ctx context.Context, workspace, runtime string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 100
	}

	query := `SELECT id, workspace, runtime, provider, status, metadata, event_count, started_at, last_event_at
	          FROM sessions WHERE workspace = $1`
	args := []any{workspace}
	if runtime != "" {
		query += ` AND runtime = $2`
		args = append(args, runtime)
	}
	query += fmt.Sprintf(` ORDER BY last_event_at DESC LIMIT %d`, limit)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, *sess)
	}

	return sessions, rows.Err()
}

// GetSession retrieves a session by ID, scoped to a workspace so one
// workspace cannot read another's sessions by guessing IDs.
func (s *Store) GetSession(ctx context.Context, workspace, id string) (*Session, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, workspace, runtime, provider, status, metadata, event_count, started_at, last_event_at
		 FROM sessions WHERE workspace = $1 AND id = $2`, workspace, id)
	sess, err := scanSession(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("session %s/%s: %w", workspace, id, ErrSessionNotFound)
		}
		return nil, err
	}
	return sess, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	sess := &Session{}
	var metadataJSON []byte

	err := row.Scan(&sess.ID, &sess.Workspace, &sess.Runtime, &sess.Provider, &sess.Status,
		&metadataJSON, &sess.EventCount, &sess.StartedAt, &sess.LastEventAt)
	if err != nil {
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	if metadataJSON != nil {
		if err := json.Unmarshal(metadataJSON, &sess.Metadata); err != nil {
			return nil, fmt.Errorf("unmarshalling metadata: %w", err)
		}
	}

	return sess, nil
}

// GetTranscript retrieves the transcript of a session, oldest first. since
// skips events at or before the given time when non-zero.
func (s *Store) GetTranscript(ctx context.Context, workspace, sessionID string, since time.Time) ([]TranscriptEvent, error) {
	// Confirm the session belongs to the workspace before reading events.
	if _, err := s.GetSession(ctx, workspace, sessionID); err != nil {
		return nil, err
	}

	query := `SELECT id, session_id, role, content, tool_name, tool_input, created_at
	          FROM transcript_events WHERE session_id = $1`
	args := []any{sessionID}
	if !since.IsZero() {
		query += ` AND created_at > $2`
		args = append(args, since)
	}
	query += ` ORDER BY created_at ASC`

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying transcript: %w", err)
	}
	defer rows.Close()

	var events []TranscriptEvent
	for rows.Next() {
		var e TranscriptEvent
		if err := rows.Scan(&e.ID, &e.SessionID, &e.Role, &e.Content, &e.ToolName, &e.ToolInput, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scanning transcript event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// UsageSince aggregates token counts per runtime and provider for sessions
// active in the window. Feeds the cost report in live mode.
func (s *Store) UsageSince(ctx context.Context, workspace string, window time.Duration) ([]cost.Usage, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT runtime, provider,
		        COALESCE(SUM(input_tokens), 0),
		        COALESCE(SUM(output_tokens), 0),
		        COALESCE(SUM(cached_tokens), 0)
		 FROM sessions
		 WHERE workspace = $1 AND last_event_at > $2
		 GROUP BY runtime, provider`,
		workspace, time.Now().Add(-window))
	if err != nil {
		return nil, fmt.Errorf("querying usage: %w", err)
	}
	defer rows.Close()

	var usages []cost.Usage
	for rows.Next() {
		var u cost.Usage
		if err := rows.Scan(&u.Runtime, &u.Provider, &u.InputTokens, &u.OutputTokens, &u.CachedTokens); err != nil {
			return nil, fmt.Errorf("scanning usage: %w", err)
		}
		usages = append(usages, u)
	}

	return usages, rows.Err()
}
