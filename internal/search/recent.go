package search

import (
	"encoding/json"
	"strings"
	"sync"
	"time"
)

const (
	recentKey = "ora_recent_searches"

	// MaxRecent caps the history; the oldest entry is evicted first.
	MaxRecent = 5
	// RetentionWindow is how long an entry survives without being
	// searched again.
	RetentionWindow = 7 * 24 * time.Hour
	// CleanupInterval is how often expired entries are swept even when
	// the history is not touched.
	CleanupInterval = 24 * time.Hour
)

// Storage is the key-value store recents persist in. It mirrors browser
// localStorage: shared between sessions of the same origin, with change
// notification for the other browsing contexts.
type Storage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
	// Subscribe registers a listener for changes made through this
	// storage, keyed by storage key.
	Subscribe(fn func(key string))
}

// MemoryStorage is the in-process Storage used by tests and by anything
// that does not sit in front of a real persistence layer.
type MemoryStorage struct {
	mu        sync.Mutex
	values    map[string]string
	listeners []func(key string)
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{values: map[string]string{}}
}

func (m *MemoryStorage) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok
}

func (m *MemoryStorage) Set(key, value string) {
	m.mu.Lock()
	old, had := m.values[key]
	m.values[key] = value
	listeners := append([]func(string){}, m.listeners...)
	m.mu.Unlock()

	if !had || old != value {
		// Asynchronous, like browser storage events: the writing
		// context never observes its own event mid-write.
		for _, fn := range listeners {
			go fn(key)
		}
	}
}

func (m *MemoryStorage) Remove(key string) {
	m.mu.Lock()
	_, had := m.values[key]
	delete(m.values, key)
	listeners := append([]func(string){}, m.listeners...)
	m.mu.Unlock()

	if had {
		for _, fn := range listeners {
			go fn(key)
		}
	}
}

func (m *MemoryStorage) Subscribe(fn func(key string)) {
	m.mu.Lock()
	m.listeners = append(m.listeners, fn)
	m.mu.Unlock()
}

type recentEntry struct {
	Term      string `json:"term"`
	Timestamp int64  `json:"timestamp"`
}

// Recent is the recent-searches history: most recent first, deduplicated,
// capped at MaxRecent, entries expiring after RetentionWindow. Expired
// entries are pruned lazily on every read and write.
type Recent struct {
	mu       sync.Mutex
	store    Storage
	now      func() time.Time
	onChange func([]string)
}

func NewRecent(store Storage) *Recent {
	r := &Recent{store: store, now: time.Now}
	store.Subscribe(func(key string) {
		if key != recentKey {
			return
		}
		r.mu.Lock()
		fn := r.onChange
		r.mu.Unlock()
		if fn != nil {
			fn(r.List())
		}
	})
	return r
}

// OnChange registers the re-render hook, fired when the history changes in
// this or any other browsing context sharing the storage.
func (r *Recent) OnChange(fn func([]string)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Save records a submitted query at the head of the history.
func (r *Recent) Save(term string) {
	term = strings.TrimSpace(term)
	if term == "" {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.pruneLocked()

	kept := entries[:0]
	for _, e := range entries {
		if e.Term != term {
			kept = append(kept, e)
		}
	}
	entries = append([]recentEntry{{Term: term, Timestamp: r.now().UnixMilli()}}, kept...)
	if len(entries) > MaxRecent {
		entries = entries[:MaxRecent]
	}
	r.writeLocked(entries)
}

// List returns the current history, newest first.
func (r *Recent) List() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.pruneLocked()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Term
	}
	return out
}

// Clear wipes the history.
func (r *Recent) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store.Remove(recentKey)
}

// StartCleanup sweeps expired entries every interval until the returned
// stop function is called.
func (r *Recent) StartCleanup(interval time.Duration) (stop func()) {
	if interval <= 0 {
		interval = CleanupInterval
	}
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				r.List() // List prunes as a side effect
			case <-done:
				return
			}
		}
	}()
	var once sync.Once
	return func() { once.Do(func() { close(done) }) }
}

func (r *Recent) pruneLocked() []recentEntry {
	raw, ok := r.store.Get(recentKey)
	if !ok || raw == "" {
		return nil
	}
	var entries []recentEntry
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// Corrupt history is not worth recovering.
		r.store.Remove(recentKey)
		return nil
	}

	cutoff := r.now().Add(-RetentionWindow).UnixMilli()
	valid := entries[:0]
	for _, e := range entries {
		if e.Timestamp > cutoff {
			valid = append(valid, e)
		}
	}
	if len(valid) != len(entries) {
		r.writeLocked(valid)
	}
	return valid
}

func (r *Recent) writeLocked(entries []recentEntry) {
	if len(entries) == 0 {
		r.store.Remove(recentKey)
		return
	}
	raw, err := json.Marshal(entries)
	if err != nil {
		return
	}
	r.store.Set(recentKey, string(raw))
}
