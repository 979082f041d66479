// Package tabs implements the dashboard's tab-management store: an
// in-memory, per-user set of open resource tabs persisted to SQLite so a
// console restart restores the user's workspace. Capacity is fixed; opening
// a tab beyond it evicts the oldest-inactive tab.
package tabs

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	_ "modernc.org/sqlite"
)

// ErrTabNotFound is returned when the id does not match one of the
// user's tabs.
var ErrTabNotFound = errors.New("tab not found")

// Tab is one open resource view in the dashboard.
type Tab struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Workspace  string    `json:"workspace"`
	Name       string    `json:"name"`
	Title      string    `json:"title"`
	Active     bool      `json:"active"`
	OpenedAt   time.Time `json:"openedAt"`
	LastActive time.Time `json:"lastActive"`
}

// Store holds open tabs per user. All access is serialized by a single
// mutex; mutations write through to SQLite.
type Store struct {
	mu       sync.Mutex
	db       *sql.DB
	capacity int
	byUser   map[string][]*Tab

	now func() time.Time
}

const schema = `
CREATE TABLE IF NOT EXISTS tabs (
	user_id     TEXT NOT NULL,
	id          TEXT NOT NULL,
	kind        TEXT NOT NULL,
	workspace   TEXT NOT NULL,
	name        TEXT NOT NULL,
	title       TEXT NOT NULL,
	active      INTEGER NOT NULL,
	opened_at   INTEGER NOT NULL,
	last_active INTEGER NOT NULL,
	PRIMARY KEY (user_id, id)
);`

// NewStore opens (or creates) the SQLite file at path and loads persisted
// tabs. capacity is the per-user tab limit.
func NewStore(path string, capacity int) (*Store, error) {
	if capacity < 1 {
		return nil, fmt.Errorf("tab capacity must be at least 1, got %d", capacity)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening tab store: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing tab store: %w", err)
	}

	s := &Store{
		db:       db,
		capacity: capacity,
		byUser:   make(map[string][]*Tab),
		now:      time.Now,
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	rows, err := s.db.Query(
		`SELECT user_id, id, kind, workspace, name, title, active, opened_at, last_active FROM tabs`)
	if err != nil {
		return fmt.Errorf("loading tabs: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var user string
		var t Tab
		var active int
		var opened, last int64
		if err := rows.Scan(&user, &t.ID, &t.Kind, &t.Workspace, &t.Name, &t.Title, &active, &opened, &last); err != nil {
			return fmt.Errorf("scanning tab: %w", err)
		}
		t.Active = active != 0
		t.OpenedAt = time.Unix(opened, 0)
		t.LastActive = time.Unix(last, 0)
		s.byUser[user] = append(s.byUser[user], &t)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("loading tabs: %w", err)
	}

	for user, tabs := range s.byUser {
		sort.Slice(tabs, func(i, j int) bool { return tabs[i].OpenedAt.Before(tabs[j].OpenedAt) })

		// Capacity may have been lowered since the tabs were persisted.
		trimmed := false
		for len(s.byUser[user]) > s.capacity {
			if s.evictLocked(user) == nil {
				break
			}
			trimmed = true
		}
		if trimmed {
			if err := s.persistUser(user); err != nil {
				return err
			}
		}
	}
	return nil
}

// Open opens a tab for the given resource and makes it active. If a tab for
// the same resource already exists it is activated in place. The evicted
// tab, if capacity forced one out, is returned.
func (s *Store) Open(user, kind, workspace, name, title string) (*Tab, *Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	tabs := s.byUser[user]

	for _, t := range tabs {
		if t.Kind == kind && t.Workspace == workspace && t.Name == name {
			s.activateLocked(user, t.ID, now)
			if err := s.persistUser(user); err != nil {
				return nil, nil, err
			}
			return t.clone(), nil, nil
		}
	}

	tab := &Tab{
		ID:         uuid.NewString(),
		Kind:       kind,
		Workspace:  workspace,
		Name:       name,
		Title:      title,
		Active:     true,
		OpenedAt:   now,
		LastActive: now,
	}
	for _, t := range tabs {
		t.Active = false
	}
	tabs = append(tabs, tab)
	s.byUser[user] = tabs

	var evicted *Tab
	if len(tabs) > s.capacity {
		evicted = s.evictLocked(user)
	}

	if err := s.persistUser(user); err != nil {
		return nil, nil, err
	}
	return tab.clone(), evicted, nil
}

// evictLocked removes and returns the oldest-inactive tab. The active tab
// is never evicted.
func (s *Store) evictLocked(user string) *Tab {
	tabs := s.byUser[user]

	idx := -1
	for i, t := range tabs {
		if t.Active {
			continue
		}
		if idx < 0 || t.LastActive.Before(tabs[idx].LastActive) {
			idx = i
		}
	}
	if idx < 0 {
		return nil
	}

	victim := tabs[idx]
	s.byUser[user] = append(tabs[:idx], tabs[idx+1:]...)
	return victim
}

// Activate marks the tab active and touches its LastActive.
func (s *Store) Activate(user, id string) (*Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab := s.findLocked(user, id)
	if tab == nil {
		return nil, fmt.Errorf("tab %s: %w", id, ErrTabNotFound)
	}
	s.activateLocked(user, id, s.now())
	if err := s.persistUser(user); err != nil {
		return nil, err
	}
	return tab.clone(), nil
}

func (s *Store) activateLocked(user, id string, now time.Time) {
	for _, t := range s.byUser[user] {
		t.Active = t.ID == id
		if t.Active {
			t.LastActive = now
		}
	}
}

// Close removes the tab. Closing the active tab activates the most
// recently active remaining tab.
func (s *Store) Close(user, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs := s.byUser[user]
	idx := -1
	for i, t := range tabs {
		if t.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("tab %s: %w", id, ErrTabNotFound)
	}

	wasActive := tabs[idx].Active
	tabs = append(tabs[:idx], tabs[idx+1:]...)
	s.byUser[user] = tabs

	if wasActive && len(tabs) > 0 {
		next := tabs[0]
		for _, t := range tabs[1:] {
			if t.LastActive.After(next.LastActive) {
				next = t
			}
		}
		s.activateLocked(user, next.ID, s.now())
	}

	return s.persistUser(user)
}

// List returns the user's tabs in open order.
func (s *Store) List(user string) []Tab {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs := s.byUser[user]
	out := make([]Tab, len(tabs))
	for i, t := range tabs {
		out[i] = *t
	}
	return out
}

func (s *Store) findLocked(user, id string) *Tab {
	for _, t := range s.byUser[user] {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// persistUser rewrites the user's rows. Tab counts are tiny (capacity is
// typically ~12) so replacing the whole set is cheaper than diffing.
func (s *Store) persistUser(user string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("persisting tabs: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM tabs WHERE user_id = ?`, user); err != nil {
		return fmt.Errorf("persisting tabs: %w", err)
	}
	for _, t := range s.byUser[user] {
		active := 0
		if t.Active {
			active = 1
		}
		if _, err := tx.Exec(
			`INSERT INTO tabs (user_id, id, kind, workspace, name, title, active, opened_at, last_active)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			user, t.ID, t.Kind, t.Workspace, t.Name, t.Title, active, t.OpenedAt.Unix(), t.LastActive.Unix(),
		); err != nil {
			return fmt.Errorf("persisting tab %s: %w", t.ID, err)
		}
	}
	return tx.Commit()
}

// CloseStore shuts down the underlying database.
func (s *Store) CloseStore() error {
	return s.db.Close()
}

func (t *Tab) clone() *Tab {
	c := *t
	return &c
}
