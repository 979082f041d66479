// Package logstream polls runtime pod logs on an interval and maintains a
// deduplicated, ordered, capacity-bound line buffer that views can snapshot
// or follow.
package logstream

import (
	"context"
	"sync"
	"time"

	"github.com/go-logr/logr"
)

// Line is one buffered log line. Seq increases monotonically across the
// life of the poller so followers can resume from where they left off.
type Line struct {
	Seq  int64  `json:"seq"`
	Text string `json:"text"`
}

// Source fetches the current tail of logs for the polled target. Fetches
// overlap: consecutive calls usually return some of the same lines.
type Source func(ctx context.Context) ([]string, error)

// Poller drives a Source on an interval and folds the results into the
// buffer. Lines already present at the overlap boundary are dropped, new
// lines are appended in order, and the buffer is capped at capacity by
// discarding the oldest lines.
type Poller struct {
	source   Source
	interval time.Duration
	capacity int
	log      logr.Logger

	mu    sync.Mutex
	lines []Line
	seq   int64
	subs  map[chan Line]struct{}
}

// NewPoller creates a poller. Run must be called to start polling.
func NewPoller(source Source, interval time.Duration, capacity int, log logr.Logger) *Poller {
	return &Poller{
		source:   source,
		interval: interval,
		capacity: capacity,
		log:      log,
		subs:     make(map[chan Line]struct{}),
	}
}

// Run polls until ctx is canceled. Fetch errors are logged and the
// previous buffer is kept; the next tick retries.
func (p *Poller) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.poll(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	batch, err := p.source(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.log.V(1).Info("log poll failed", "err", err)
		}
		return
	}
	p.ingest(batch)
}

// ingest merges a fetched batch into the buffer and returns the number of
// lines appended. The merge aligns the batch against the buffered tail:
// the longest suffix of the buffer that matches a prefix of the batch is
// treated as already-seen overlap.
func (p *Poller) ingest(batch []string) int {
	if len(batch) == 0 {
		return 0
	}

	p.mu.Lock()

	overlap := 0
	max := len(p.lines)
	if len(batch) < max {
		max = len(batch)
	}
	for k := max; k > 0; k-- {
		if p.tailMatches(batch, k) {
			overlap = k
			break
		}
	}

	fresh := batch[overlap:]
	appended := make([]Line, 0, len(fresh))
	for _, text := range fresh {
		p.seq++
		appended = append(appended, Line{Seq: p.seq, Text: text})
	}
	p.lines = append(p.lines, appended...)

	if excess := len(p.lines) - p.capacity; excess > 0 {
		p.lines = append(p.lines[:0:0], p.lines[excess:]...)
	}

	// Fan out under the lock so a concurrent unsubscribe cannot close a
	// channel mid-send. Sends never block: slow followers miss lines.
	for _, line := range appended {
		for ch := range p.subs {
			select {
			case ch <- line:
			default:
			}
		}
	}
	p.mu.Unlock()

	return len(appended)
}

// tailMatches reports whether the last k buffered lines equal the first k
// batch lines. Caller holds p.mu.
func (p *Poller) tailMatches(batch []string, k int) bool {
	tail := p.lines[len(p.lines)-k:]
	for i := 0; i < k; i++ {
		if tail[i].Text != batch[i] {
			return false
		}
	}
	return true
}

// Snapshot returns buffered lines with Seq greater than since. Pass 0 for
// the whole buffer.
func (p *Poller) Snapshot(since int64) []Line {
	p.mu.Lock()
	defer p.mu.Unlock()

	start := len(p.lines)
	for i, l := range p.lines {
		if l.Seq > since {
			start = i
			break
		}
	}
	out := make([]Line, len(p.lines)-start)
	copy(out, p.lines[start:])
	return out
}

// Subscribe registers a follower channel fed with each appended line until
// ctx is canceled. Slow followers miss lines instead of blocking the poller.
func (p *Poller) Subscribe(ctx context.Context) <-chan Line {
	ch := make(chan Line, 256)

	p.mu.Lock()
	p.subs[ch] = struct{}{}
	p.mu.Unlock()

	go func() {
		<-ctx.Done()
		p.mu.Lock()
		delete(p.subs, ch)
		p.mu.Unlock()
		close(ch)
	}()

	return ch
}
