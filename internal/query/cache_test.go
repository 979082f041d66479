package query

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func newTestCache(ttl time.Duration) (*Cache, *time.Time) {
	c := New(ttl)
	now := time.Unix(1000, 0)
	c.now = func() time.Time { return now }
	return c, &now
}

func TestGetCachesValue(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return "v1", nil
	}

	for i := 0; i < 3; i++ {
		v, err := c.Get(context.Background(), "runtimes/default", fetch)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if v != "v1" {
			t.Errorf("value = %v", v)
		}
	}
	if calls != 1 {
		t.Errorf("fetch calls = %d, want 1", calls)
	}
}

func TestErrorsAreNotCached(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		if calls == 1 {
			return nil, errors.New("boom")
		}
		return "ok", nil
	}

	if _, err := c.Get(context.Background(), "k", fetch); err == nil {
		t.Fatal("expected error on first fetch")
	}
	v, err := c.Get(context.Background(), "k", fetch)
	if err != nil || v != "ok" {
		t.Fatalf("second fetch = %v, %v", v, err)
	}
	if calls != 2 {
		t.Errorf("fetch calls = %d, want 2", calls)
	}
}

func TestZeroTTLBypassesCache(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	calls := 0
	fetch := func(ctx context.Context) (any, error) {
		calls++
		return calls, nil
	}

	for i := 1; i <= 3; i++ {
		v, err := c.GetTTL(context.Background(), "k", 0, fetch)
		if err != nil {
			t.Fatal(err)
		}
		if v != i {
			t.Errorf("call %d returned %v", i, v)
		}
	}
	if c.Len() != 0 {
		t.Errorf("cache should stay empty, has %d entries", c.Len())
	}
}

func TestStaleServesWhileRefreshing(t *testing.T) {
	c, now := newTestCache(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		if calls.Add(1) > 1 {
			<-release
			return "v2", nil
		}
		return "v1", nil
	}

	if _, err := c.Get(context.Background(), "k", fetch); err != nil {
		t.Fatal(err)
	}

	// Expire the entry. The stale value must come back without blocking on
	// the in-flight refresh.
	*now = now.Add(2 * time.Minute)
	v, err := c.Get(context.Background(), "k", fetch)
	if err != nil {
		t.Fatal(err)
	}
	if v != "v1" {
		t.Errorf("stale read = %v, want v1", v)
	}

	close(release)
	waitFor(t, func() bool {
		v, _ := c.Get(context.Background(), "k", fetch)
		return v == "v2"
	})
}

func TestConcurrentFetchesCollapse(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	var calls atomic.Int32
	gate := make(chan struct{})
	fetch := func(ctx context.Context) (any, error) {
		calls.Add(1)
		<-gate
		return "v", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := c.Get(context.Background(), "k", fetch); err != nil {
				t.Error(err)
			}
		}()
	}
	// Let the goroutines pile up on the single flight before releasing it.
	time.Sleep(20 * time.Millisecond)
	close(gate)
	wg.Wait()

	if n := calls.Load(); n != 1 {
		t.Errorf("fetch calls = %d, want 1", n)
	}
}

func TestInvalidateByPrefix(t *testing.T) {
	c, _ := newTestCache(time.Minute)
	fetch := func(v string) Fetcher {
		return func(ctx context.Context) (any, error) { return v, nil }
	}

	c.Get(context.Background(), Key("runtimes", "team-a"), fetch("a"))
	c.Get(context.Background(), Key("runtimes", "team-b"), fetch("b"))
	c.Get(context.Background(), Key("providers", "team-a"), fetch("p"))

	c.Invalidate("runtimes/")
	if c.Len() != 1 {
		t.Errorf("entries after invalidate = %d, want 1", c.Len())
	}

	c.Invalidate("")
	if c.Len() != 0 {
		t.Errorf("entries after full invalidate = %d, want 0", c.Len())
	}
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}
