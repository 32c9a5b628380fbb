// ABOUTME: In-memory session mirroring the store, wiring edits and search
// ABOUTME: Debounces autosave so keystroke-level edits do not storm the backend

package session

import (
	"sync"
	"time"

	"github.com/harper/murmure/internal/models"
	"github.com/harper/murmure/internal/search"
	"github.com/harper/murmure/internal/store"
)

// DefaultSaveDelay is the autosave debounce interval.
const DefaultSaveDelay = 800 * time.Millisecond

// Session holds the in-memory state a UI edits against. The store stays
// the single authority; the session is a convenience mirror with no
// durability of its own. Last writer wins across concurrent sessions.
type Session struct {
	store     *store.Store
	searchCfg search.Config
	saveDelay time.Duration

	mu      sync.Mutex
	entries []*models.Entry
	current *models.Entry
	query   string
	results []search.Result
	stats   search.Stats
	timer   *time.Timer
	dirty   bool
}

// Option configures a Session.
type Option func(*Session)

// WithSaveDelay overrides the autosave debounce interval.
func WithSaveDelay(d time.Duration) Option {
	return func(s *Session) { s.saveDelay = d }
}

// WithSearchConfig overrides the search configuration.
func WithSearchConfig(cfg search.Config) Option {
	return func(s *Session) { s.searchCfg = cfg }
}

// New creates a session over the given store.
func New(st *store.Store, opts ...Option) *Session {
	s := &Session{
		store:     st,
		searchCfg: search.DefaultConfig(),
		saveDelay: DefaultSaveDelay,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load refreshes the in-memory mirror from the store and re-runs any
// active search.
func (s *Session) Load() error {
	entries, err := s.store.LoadEntries()
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = entries
	s.runSearchLocked()
	return nil
}

// OpenToday opens (or creates) today's entry, records it as the current
// entry pointer, and returns it.
func (s *Session) OpenToday() (*models.Entry, error) {
	entry, err := s.store.TodayEntryOrCreate()
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveCurrentEntryID(entry.ID); err != nil {
		return nil, err
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.current = entry
	s.mu.Unlock()
	return entry, nil
}

// Open makes the entry with the given id current.
func (s *Session) Open(id string) (*models.Entry, error) {
	if err := s.Load(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == id {
			s.current = e
			return e, nil
		}
	}
	return nil, &store.Error{Code: store.CodeEntryNotFound, Op: "open"}
}

// Current returns the entry being edited, or nil.
func (s *Session) Current() *models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetContent updates the current entry's text and schedules a debounced
// save. Rapid successive calls collapse into one write.
func (s *Session) SetContent(content string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return
	}
	s.current.Content = content
	s.current.RecomputeDerived()
	s.dirty = true

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.saveDelay, func() {
		_ = s.Flush()
	})
}

// Flush persists any pending edit immediately. Safe to call when nothing
// is pending.
func (s *Session) Flush() error {
	s.mu.Lock()
	if !s.dirty || s.current == nil {
		s.mu.Unlock()
		return nil
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	entry := s.current
	s.dirty = false
	s.mu.Unlock()

	if err := s.store.SaveEntry(entry); err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
		return err
	}
	return s.Load()
}

// UpdateSearchQuery recomputes results for the new query. Every call is
// a full recomputation over the in-memory list; with the collection
// capped at a thousand small entries this stays well under a frame.
func (s *Session) UpdateSearchQuery(query string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = query
	s.runSearchLocked()
}

// ClearSearch resets the query and results.
func (s *Session) ClearSearch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.query = ""
	s.results = nil
	s.stats = search.Stats{}
}

// Results returns the current ranked search results.
func (s *Session) Results() []search.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.results
}

// Stats returns the current search stats projection.
func (s *Session) Stats() search.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats
}

// ActiveEntries returns the non-trashed entries in the mirror.
func (s *Session) ActiveEntries() []*models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	active := make([]*models.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.InTrash {
			active = append(active, e)
		}
	}
	return active
}

// runSearchLocked recomputes results against active entries. Callers
// must hold the mutex.
func (s *Session) runSearchLocked() {
	if s.query == "" {
		s.results = nil
		s.stats = search.Stats{}
		return
	}
	active := make([]*models.Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if !e.InTrash {
			active = append(active, e)
		}
	}
	s.results, s.stats = search.Search(active, s.query, s.searchCfg)
}
