// Package eventbus provides an abstraction over the event bus (NATS
// JetStream) that Omnia components publish runtime activity onto. The
// console subscribes to bridge live session traffic to dashboard clients.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

// Event represents a message on the event bus.
type Event struct {
	// Topic is the event topic (e.g., "session.stream.chunk").
	Topic string `json:"topic"`

	// Timestamp when the event was published.
	Timestamp time.Time `json:"timestamp"`

	// Metadata contains key-value metadata. Session events carry
	// "workspace" and "sessionId" keys.
	Metadata map[string]string `json:"metadata"`

	// Data is the event payload.
	Data json.RawMessage `json:"data"`
}

// InWorkspace reports whether the event belongs to the workspace. An empty
// workspace matches everything.
func (e *Event) InWorkspace(workspace string) bool {
	return workspace == "" || e.Metadata["workspace"] == workspace
}

// EventBus is the console's read-only view of the platform event bus.
type EventBus interface {
	// Subscribe returns a channel that receives events for the given topic,
	// filtered to a workspace when one is given. Wildcard topics
	// ("session.stream.*") are supported.
	Subscribe(ctx context.Context, topic, workspace string) (<-chan *Event, error)

	// Close shuts down the event bus connection.
	Close() error
}

// Topics the console consumes.
const (
	TopicSessionStarted     = "session.started"
	TopicSessionEnded       = "session.ended"
	TopicSessionStreamChunk = "session.stream.chunk"
	TopicRuntimePhaseChange = "runtime.phase.changed"
	TopicArenaJobUpdated    = "arena.job.updated"
)

// NewEvent creates a new event with the current timestamp.
func NewEvent(topic string, metadata map[string]string, data interface{}) (*Event, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshalling event data: %w", err)
	}
	return &Event{
		Topic:     topic,
		Timestamp: time.Now(),
		Metadata:  metadata,
		Data:      raw,
	}, nil
}
