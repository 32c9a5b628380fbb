// ABOUTME: Tests for the session mirror, debounced autosave, and search wiring
// ABOUTME: Uses the in-memory backend and a short debounce interval

package session

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/harper/murmure/internal/backend"
	"github.com/harper/murmure/internal/store"
)

func newTestSession(t *testing.T, opts ...Option) (*Session, *store.Store) {
	t.Helper()
	st := store.New(backend.NewMemory(), store.WithLogger(log.New(io.Discard)))
	opts = append([]Option{WithSaveDelay(20 * time.Millisecond)}, opts...)
	return New(st, opts...), st
}

func TestOpenTodaySetsCurrentPointer(t *testing.T) {
	s, st := newTestSession(t)

	entry, err := s.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}
	if s.Current() == nil {
		t.Fatal("Current() is nil after OpenToday")
	}

	id, err := st.LoadCurrentEntryID()
	if err != nil {
		t.Fatalf("LoadCurrentEntryID failed: %v", err)
	}
	if id != entry.ID {
		t.Errorf("current pointer = %q, expected %q", id, entry.ID)
	}
}

func TestDebouncedAutosave(t *testing.T) {
	s, st := newTestSession(t)
	if _, err := s.OpenToday(); err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}

	// Rapid edits within the debounce window collapse into one save.
	s.SetContent("first")
	s.SetContent("first second")
	s.SetContent("first second third")

	deadline := time.Now().Add(2 * time.Second)
	for {
		entries, err := st.LoadActiveEntries()
		if err != nil {
			t.Fatalf("LoadActiveEntries failed: %v", err)
		}
		saved := false
		for _, e := range entries {
			if e.Content == "first second third" {
				saved = true
			}
		}
		if saved {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("debounced save did not land in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestFlushPersistsImmediately(t *testing.T) {
	s, st := newTestSession(t, WithSaveDelay(time.Hour))
	entry, err := s.OpenToday()
	if err != nil {
		t.Fatalf("OpenToday failed: %v", err)
	}

	s.SetContent("no waiting")
	if err := s.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	entries, err := st.LoadEntries()
	if err != nil {
		t.Fatalf("LoadEntries failed: %v", err)
	}
	found := false
	for _, e := range entries {
		if e.ID == entry.ID && e.Content == "no waiting" {
			found = true
		}
	}
	if !found {
		t.Error("flushed content not persisted")
	}

	// Flush with nothing pending is a no-op.
	if err := s.Flush(); err != nil {
		t.Errorf("idle Flush failed: %v", err)
	}
}

func TestSearchReadModels(t *testing.T) {
	s, st := newTestSession(t)

	a := st.NewDraft()
	a.Content = "walking in the rain"
	if err := st.SaveEntry(a); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	b := st.NewDraft()
	b.Content = "sunny afternoon"
	if err := st.SaveEntry(b); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s.UpdateSearchQuery("rain")
	results := s.Results()
	if len(results) != 1 {
		t.Fatalf("got %d results, expected 1", len(results))
	}
	if results[0].Entry.ID != a.ID {
		t.Errorf("result ID = %s, expected %s", results[0].Entry.ID, a.ID)
	}
	stats := s.Stats()
	if !stats.IsActive || !stats.IsValidQuery || stats.TotalResults != 1 {
		t.Errorf("stats = %+v, expected active valid single result", stats)
	}

	s.ClearSearch()
	if len(s.Results()) != 0 {
		t.Error("results should be empty after ClearSearch")
	}
	if s.Stats().IsActive {
		t.Error("stats should be inactive after ClearSearch")
	}
}

func TestSearchExcludesTrashed(t *testing.T) {
	s, st := newTestSession(t)

	e := st.NewDraft()
	e.Content = "secret gardening notes"
	if err := st.SaveEntry(e); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	if err := st.MoveToTrash(e.ID); err != nil {
		t.Fatalf("MoveToTrash failed: %v", err)
	}
	if err := s.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	s.UpdateSearchQuery("gardening")
	if len(s.Results()) != 0 {
		t.Error("trashed entries must not appear in search results")
	}
}
