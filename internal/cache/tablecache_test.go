package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"KabisaBizSuite/internal/recordstore"
)

type fakeStore struct {
	mu    sync.Mutex
	rows  map[string][]recordstore.Record
	calls int64
	err   error
	delay time.Duration
}

func (f *fakeStore) List(ctx context.Context, table string) ([]recordstore.Record, error) {
	atomic.AddInt64(&f.calls, 1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.rows[table], nil
}

func (f *fakeStore) Create(ctx context.Context, table string, data recordstore.Record) (recordstore.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.rows == nil {
		f.rows = make(map[string][]recordstore.Record)
	}
	f.rows[table] = append(f.rows[table], data)
	return data, nil
}

func (f *fakeStore) Update(ctx context.Context, table, id string, data recordstore.Record) (recordstore.Record, error) {
	return data, nil
}

func (f *fakeStore) Delete(ctx context.Context, table, id string) error {
	return nil
}

func TestGetCachesWithinTTL(t *testing.T) {
	fs := &fakeStore{rows: map[string][]recordstore.Record{
		"Sales": {{"id": "1"}},
	}}
	tc := New(fs, time.Minute)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		rows, err := tc.Get(ctx, "Sales")
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("got %d rows", len(rows))
		}
	}
	if n := atomic.LoadInt64(&fs.calls); n != 1 {
		t.Fatalf("store hit %d times, want 1", n)
	}
}

func TestGetRefetchesAfterTTL(t *testing.T) {
	fs := &fakeStore{rows: map[string][]recordstore.Record{"Sales": {}}}
	tc := New(fs, time.Millisecond)
	ctx := context.Background()

	tc.Get(ctx, "Sales")
	time.Sleep(5 * time.Millisecond)
	tc.Get(ctx, "Sales")

	if n := atomic.LoadInt64(&fs.calls); n != 2 {
		t.Fatalf("store hit %d times, want 2", n)
	}
}

func TestInvalidateForcesRefetch(t *testing.T) {
	fs := &fakeStore{rows: map[string][]recordstore.Record{"Sales": {{"id": "1"}}}}
	tc := New(fs, time.Minute)
	ctx := context.Background()

	tc.Get(ctx, "Sales")
	fs.mu.Lock()
	fs.rows["Sales"] = append(fs.rows["Sales"], recordstore.Record{"id": "2"})
	fs.mu.Unlock()

	rows, _ := tc.Get(ctx, "Sales")
	if len(rows) != 1 {
		t.Fatalf("stale read returned %d rows, want cached 1", len(rows))
	}

	tc.Invalidate("Sales")
	rows, _ = tc.Get(ctx, "Sales")
	if len(rows) != 2 {
		t.Fatalf("after invalidate got %d rows, want 2", len(rows))
	}
}

func TestConcurrentGetsCollapse(t *testing.T) {
	fs := &fakeStore{
		rows:  map[string][]recordstore.Record{"Sales": {{"id": "1"}}},
		delay: 20 * time.Millisecond,
	}
	tc := New(fs, time.Minute)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tc.Get(ctx, "Sales")
		}()
	}
	wg.Wait()

	if n := atomic.LoadInt64(&fs.calls); n != 1 {
		t.Fatalf("store hit %d times, want 1", n)
	}
}

func TestGetErrorPropagatesAndRetries(t *testing.T) {
	fs := &fakeStore{err: errors.New("store down")}
	tc := New(fs, time.Minute)
	ctx := context.Background()

	if _, err := tc.Get(ctx, "Sales"); err == nil {
		t.Fatal("expected error")
	}

	// errored entries are not served from cache
	fs.err = nil
	fs.mu.Lock()
	fs.rows = map[string][]recordstore.Record{"Sales": {{"id": "1"}}}
	fs.mu.Unlock()
	rows, err := tc.Get(ctx, "Sales")
	if err != nil || len(rows) != 1 {
		t.Fatalf("recovery read: rows=%d err=%v", len(rows), err)
	}
}

func TestStatusReportsStates(t *testing.T) {
	fs := &fakeStore{rows: map[string][]recordstore.Record{"Sales": {{"id": "1"}, {"id": "2"}}}}
	tc := New(fs, time.Minute)
	tc.Get(context.Background(), "Sales")

	states := tc.Status()
	if len(states) != 1 {
		t.Fatalf("got %d states", len(states))
	}
	st := states[0]
	if st.Table != "Sales" || st.Status != "ready" || st.Count != 2 {
		t.Fatalf("state = %+v", st)
	}
	if st.FetchedAt == "" {
		t.Fatal("missing fetched_at")
	}
}

func TestRefreshAllRefetchesKnownTables(t *testing.T) {
	fs := &fakeStore{rows: map[string][]recordstore.Record{"Sales": {}, "Expenses": {}}}
	tc := New(fs, time.Minute)
	ctx := context.Background()

	tc.Get(ctx, "Sales")
	tc.Get(ctx, "Expenses")
	before := atomic.LoadInt64(&fs.calls)

	tc.RefreshAll(ctx)
	if n := atomic.LoadInt64(&fs.calls); n != before+2 {
		t.Fatalf("refresh hit store %d times, want %d", n-before, 2)
	}
}
