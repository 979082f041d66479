package eventbus

import (
	"encoding/json"
	"testing"
)

func TestNewEvent(t *testing.T) {
	payload := map[string]string{"text": "hello"}
	event, err := NewEvent(TopicSessionStreamChunk, map[string]string{"sessionId": "s-1"}, payload)
	if err != nil {
		t.Fatalf("NewEvent: %v", err)
	}

	if event.Topic != TopicSessionStreamChunk {
		t.Errorf("topic = %q", event.Topic)
	}
	if event.Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
	if event.Metadata["sessionId"] != "s-1" {
		t.Errorf("metadata = %v", event.Metadata)
	}

	var decoded map[string]string
	if err := json.Unmarshal(event.Data, &decoded); err != nil {
		t.Fatalf("unmarshalling data: %v", err)
	}
	if decoded["text"] != "hello" {
		t.Errorf("data = %v", decoded)
	}
}

func TestNewEventRejectsUnmarshallable(t *testing.T) {
	if _, err := NewEvent(TopicSessionStarted, nil, make(chan int)); err == nil {
		t.Fatal("expected error for unmarshallable payload")
	}
}

func TestEventInWorkspace(t *testing.T) {
	event := &Event{Metadata: map[string]string{"workspace": "team-a"}}

	if !event.InWorkspace("team-a") {
		t.Error("event should match its own workspace")
	}
	if event.InWorkspace("team-b") {
		t.Error("event should not match another workspace")
	}
	if !event.InWorkspace("") {
		t.Error("empty workspace should match everything")
	}

	bare := &Event{}
	if bare.InWorkspace("team-a") {
		t.Error("event without workspace metadata should not match a workspace")
	}
	if !bare.InWorkspace("") {
		t.Error("event without workspace metadata should match the empty filter")
	}
}

func TestTopicToSubject(t *testing.T) {
	if got := topicToSubject(TopicSessionStreamChunk); got != "omnia.session.stream.chunk" {
		t.Fatalf("subject = %q", got)
	}
}
