package logstream

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/go-logr/logr"
)

func newTestPoller(capacity int) *Poller {
	return NewPoller(nil, time.Second, capacity, logr.Discard())
}

func texts(lines []Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Text
	}
	return out
}

func assertLines(t *testing.T, got []Line, want ...string) {
	t.Helper()
	g := texts(got)
	if len(g) != len(want) {
		t.Fatalf("line count = %d, want %d (%v)", len(g), len(want), g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, g[i], want[i])
		}
	}
}

func TestIngestAppendsInOrder(t *testing.T) {
	p := newTestPoller(100)
	if n := p.ingest([]string{"a", "b", "c"}); n != 3 {
		t.Errorf("appended = %d, want 3", n)
	}
	assertLines(t, p.Snapshot(0), "a", "b", "c")
}

func TestIngestDeduplicatesOverlap(t *testing.T) {
	p := newTestPoller(100)
	p.ingest([]string{"a", "b", "c"})

	// The next window overlaps the tail of the previous one.
	if n := p.ingest([]string{"b", "c", "d", "e"}); n != 2 {
		t.Errorf("appended = %d, want 2", n)
	}
	assertLines(t, p.Snapshot(0), "a", "b", "c", "d", "e")
}

func TestIngestFullOverlapAppendsNothing(t *testing.T) {
	p := newTestPoller(100)
	p.ingest([]string{"a", "b", "c"})
	if n := p.ingest([]string{"a", "b", "c"}); n != 0 {
		t.Errorf("appended = %d, want 0", n)
	}
	assertLines(t, p.Snapshot(0), "a", "b", "c")
}

func TestIngestRepeatedLines(t *testing.T) {
	p := newTestPoller(100)
	p.ingest([]string{"tick", "tick"})

	// Overlap matching must prefer the longest suffix/prefix match, so only
	// one new "tick" is appended here.
	if n := p.ingest([]string{"tick", "tick", "tick"}); n != 1 {
		t.Errorf("appended = %d, want 1", n)
	}
	assertLines(t, p.Snapshot(0), "tick", "tick", "tick")
}

func TestIngestNoOverlap(t *testing.T) {
	p := newTestPoller(100)
	p.ingest([]string{"a", "b"})
	// Burst between polls: the window moved entirely past the buffer.
	if n := p.ingest([]string{"x", "y"}); n != 2 {
		t.Errorf("appended = %d, want 2", n)
	}
	assertLines(t, p.Snapshot(0), "a", "b", "x", "y")
}

func TestCapacityDropsOldest(t *testing.T) {
	p := newTestPoller(3)
	p.ingest([]string{"a", "b", "c"})
	p.ingest([]string{"c", "d", "e"})
	assertLines(t, p.Snapshot(0), "c", "d", "e")
}

func TestSeqMonotonicAcrossEviction(t *testing.T) {
	p := newTestPoller(2)
	p.ingest([]string{"a", "b"})
	p.ingest([]string{"b", "c"})

	lines := p.Snapshot(0)
	assertLines(t, lines, "b", "c")
	if lines[0].Seq != 2 || lines[1].Seq != 3 {
		t.Errorf("seqs = %d,%d, want 2,3", lines[0].Seq, lines[1].Seq)
	}
}

func TestSnapshotSince(t *testing.T) {
	p := newTestPoller(100)
	p.ingest([]string{"a", "b", "c"})

	lines := p.Snapshot(2)
	assertLines(t, lines, "c")
	if lines[0].Seq != 3 {
		t.Errorf("seq = %d, want 3", lines[0].Seq)
	}
	if got := p.Snapshot(99); len(got) != 0 {
		t.Errorf("snapshot past end = %v", got)
	}
}

func TestSubscribeReceivesAppendedLines(t *testing.T) {
	p := newTestPoller(100)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := p.Subscribe(ctx)
	p.ingest([]string{"a", "b"})

	for _, want := range []string{"a", "b"} {
		select {
		case line := <-ch:
			if line.Text != want {
				t.Errorf("got %q, want %q", line.Text, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %q", want)
		}
	}
}

func TestRunPollsSource(t *testing.T) {
	calls := make(chan struct{}, 10)
	source := func(ctx context.Context) ([]string, error) {
		calls <- struct{}{}
		return []string{"line"}, nil
	}
	p := NewPoller(source, 5*time.Millisecond, 10, logr.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Run(ctx)

	for i := 0; i < 3; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("poller did not poll")
		}
	}
	if got := texts(p.Snapshot(0)); len(got) != 1 || got[0] != "line" {
		t.Errorf("dedup across polls failed: %v", got)
	}
}

func TestSourceErrorKeepsBuffer(t *testing.T) {
	fail := false
	source := func(ctx context.Context) ([]string, error) {
		if fail {
			return nil, fmt.Errorf("unavailable")
		}
		return []string{"a"}, nil
	}
	p := NewPoller(source, time.Second, 10, logr.Discard())

	p.poll(context.Background())
	fail = true
	p.poll(context.Background())

	assertLines(t, p.Snapshot(0), "a")
}
