package cache

import (
	"context"
	"sort"
	"sync"
	"time"

	"KabisaBizSuite/internal/recordstore"

	"golang.org/x/sync/singleflight"
)

// TableState describes one cached logical table for status reporting.
type TableState struct {
	Table     string `json:"table"`
	Status    string `json:"status"` // ready | loading | error
	Count     int    `json:"count"`
	FetchedAt string `json:"fetched_at,omitempty"`
	Error     string `json:"error,omitempty"`
}

type entry struct {
	rows      []recordstore.Record
	err       error
	fetchedAt time.Time
}

// TableCache fronts the record store with a per-table snapshot cache.
// Concurrent identical fetches collapse into one store call; entries stay
// fresh for the TTL and are dropped eagerly on mutation (invalidate then
// refetch, never an optimistic merge).
type TableCache struct {
	store recordstore.Store
	ttl   time.Duration

	mu       sync.RWMutex
	entries  map[string]*entry
	inflight map[string]bool
	group    singleflight.Group
}

func New(store recordstore.Store, ttl time.Duration) *TableCache {
	return &TableCache{
		store:    store,
		ttl:      ttl,
		entries:  make(map[string]*entry),
		inflight: make(map[string]bool),
	}
}

// Get returns the cached rows for a table, fetching through the store when
// the entry is missing, stale, or errored.
func (c *TableCache) Get(ctx context.Context, table string) ([]recordstore.Record, error) {
	c.mu.RLock()
	e, ok := c.entries[table]
	c.mu.RUnlock()
	if ok && e.err == nil && time.Since(e.fetchedAt) < c.ttl {
		return e.rows, nil
	}
	return c.fetch(ctx, table)
}

// Invalidate drops a table's entry so the next read refetches.
func (c *TableCache) Invalidate(table string) {
	c.mu.Lock()
	delete(c.entries, table)
	c.mu.Unlock()
}

// Tables lists every table that has been requested at least once.
func (c *TableCache) Tables() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Status reports per-table cache state for the data-management summary.
func (c *TableCache) Status() []TableState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]TableState, 0, len(names))
	for _, name := range names {
		e := c.entries[name]
		st := TableState{Table: name, Count: len(e.rows)}
		switch {
		case c.inflight[name]:
			st.Status = "loading"
		case e.err != nil:
			st.Status = "error"
			st.Error = e.err.Error()
		default:
			st.Status = "ready"
		}
		if !e.fetchedAt.IsZero() {
			st.FetchedAt = e.fetchedAt.Format(time.RFC3339)
		}
		out = append(out, st)
	}
	return out
}

// RefreshAll refetches every known table; used by the background refresh
// job. Individual failures are recorded per table, not propagated.
func (c *TableCache) RefreshAll(ctx context.Context) {
	for _, table := range c.Tables() {
		_, _ = c.fetch(ctx, table)
	}
}

func (c *TableCache) fetch(ctx context.Context, table string) ([]recordstore.Record, error) {
	v, err, _ := c.group.Do(table, func() (interface{}, error) {
		c.mu.Lock()
		c.inflight[table] = true
		c.mu.Unlock()

		rows, err := c.store.List(ctx, table)

		c.mu.Lock()
		delete(c.inflight, table)
		c.entries[table] = &entry{rows: rows, err: err, fetchedAt: time.Now()}
		c.mu.Unlock()
		return rows, err
	})
	if err != nil {
		return nil, err
	}
	rows, _ := v.([]recordstore.Record)
	return rows, nil
}
