// ABOUTME: Entry collection CRUD with validation, self-healing, and quota checks
// ABOUTME: The whole collection lives as one JSON array under a single key

package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/harper/murmure/internal/backend"
	"github.com/harper/murmure/internal/models"
)

// NewDraft returns a fresh empty entry stamped with the store's clock.
// Pure factory: performs no I/O and does not persist the entry.
func (s *Store) NewDraft() *models.Entry {
	return models.NewEntry(s.now())
}

// LoadEntries reads the whole collection from the backend.
//
// A missing key yields an empty list. Individual items that fail
// validation are dropped and logged, never fatal; if any were dropped
// the cleaned list is re-persisted to repair the corruption. A malformed
// root payload wipes the key and returns an empty list: availability is
// favored over strict preservation.
func (s *Store) LoadEntries() ([]*models.Entry, error) {
	const op = "load entries"
	if err := s.checkAvailability(op); err != nil {
		return nil, err
	}
	s.ensureVersion()

	raw, err := s.backend.GetItem(EntriesKey)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return []*models.Entry{}, nil
		}
		e := opError(op, err)
		s.report(e)
		return nil, e
	}

	var items []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.logger.Warn("entries payload is malformed, wiping", "err", err)
		if remErr := s.backend.RemoveItem(EntriesKey); remErr != nil {
			e := opError(op, remErr)
			s.report(e)
			return nil, e
		}
		return []*models.Entry{}, nil
	}

	entries := make([]*models.Entry, 0, len(items))
	dropped := 0
	for i, item := range items {
		var entry models.Entry
		if err := json.Unmarshal(item, &entry); err != nil {
			s.logger.Warn("dropping corrupted entry", "index", i, "err", err)
			dropped++
			continue
		}
		if err := s.normalize(&entry); err != nil {
			s.logger.Warn("dropping invalid entry", "index", i, "err", err)
			dropped++
			continue
		}
		entries = append(entries, &entry)
	}

	if dropped > 0 {
		s.logger.Info("repairing collection", "dropped", dropped, "kept", len(entries))
		if err := s.writeEntries(op, entries); err != nil {
			// The cleaned list is still good; repair failure only means
			// the corruption stays on disk until the next save.
			s.logger.Warn("could not re-persist repaired collection", "err", err)
		}
	}

	return entries, nil
}

// LoadActiveEntries returns non-trashed entries.
func (s *Store) LoadActiveEntries() ([]*models.Entry, error) {
	return s.loadFiltered(false)
}

// LoadTrashEntries returns trashed entries.
func (s *Store) LoadTrashEntries() ([]*models.Entry, error) {
	return s.loadFiltered(true)
}

func (s *Store) loadFiltered(inTrash bool) ([]*models.Entry, error) {
	entries, err := s.LoadEntries()
	if err != nil {
		return nil, err
	}
	filtered := make([]*models.Entry, 0, len(entries))
	for _, e := range entries {
		if e.InTrash == inTrash {
			filtered = append(filtered, e)
		}
	}
	return filtered, nil
}

// SaveEntries validates, caps, and persists the whole collection.
// Entries are ordered newest-first by creation time before the cap is
// applied, so truncation always evicts the oldest.
func (s *Store) SaveEntries(entries []*models.Entry) error {
	const op = "save entries"
	if err := s.checkAvailability(op); err != nil {
		return err
	}
	s.ensureVersion()
	return s.writeEntries(op, entries)
}

// writeEntries is the persist path shared by SaveEntries and the load
// self-repair. The availability probe is the caller's responsibility.
func (s *Store) writeEntries(op string, entries []*models.Entry) error {
	valid := make([]*models.Entry, 0, len(entries))
	for i, e := range entries {
		if e == nil {
			s.logger.Warn("dropping nil entry", "index", i)
			continue
		}
		if err := s.normalize(e); err != nil {
			s.logger.Warn("dropping invalid entry on save", "index", i, "err", err)
			continue
		}
		valid = append(valid, e)
	}

	sort.SliceStable(valid, func(i, j int) bool {
		return valid[i].CreatedAt.After(valid[j].CreatedAt)
	})
	if len(valid) > MaxEntries {
		s.logger.Warn("collection over cap, evicting oldest", "count", len(valid), "cap", MaxEntries)
		valid = valid[:MaxEntries]
	}

	data, err := json.Marshal(valid)
	if err != nil {
		e := &Error{Code: CodeSerialization, Op: op, Err: err}
		s.report(e)
		return e
	}
	if len(data) > MaxPayloadBytes {
		e := &Error{Code: CodeQuotaExceeded, Op: op,
			Err: fmt.Errorf("payload %d bytes exceeds %d", len(data), MaxPayloadBytes)}
		s.report(e)
		return e
	}

	if err := s.backend.SetItem(EntriesKey, string(data)); err != nil {
		e := opError(op, err)
		s.report(e)
		return e
	}
	return nil
}

// SaveEntry persists a single entry: update-in-place when the ID already
// exists, prepend otherwise. Derived fields and UpdatedAt are recomputed
// here, on every save.
func (s *Store) SaveEntry(entry *models.Entry) error {
	const op = "save entry"
	if entry == nil || entry.ID == "" {
		e := &Error{Code: CodeInvalidData, Op: op, Err: errors.New("entry has no id")}
		s.report(e)
		return e
	}

	entries, err := s.LoadEntries()
	if err != nil {
		return err
	}

	entry.RecomputeDerived()
	entry.UpdatedAt = s.now()

	found := false
	for i, existing := range entries {
		if existing.ID == entry.ID {
			entries[i] = entry
			found = true
			break
		}
	}
	if !found {
		entries = append([]*models.Entry{entry}, entries...)
	}

	return s.writeEntries(op, entries)
}

// TodayEntryOrCreate finds today's still-empty active entry, or creates
// one. The very first entry of an empty journal is seeded with a welcome
// message.
func (s *Store) TodayEntryOrCreate() (*models.Entry, error) {
	entries, err := s.LoadEntries()
	if err != nil {
		return nil, err
	}

	today := models.DateLabel(s.now())
	for _, e := range entries {
		if !e.InTrash && e.Date == today && e.Content == "" {
			return e, nil
		}
	}

	entry := s.NewDraft()
	if len(entries) == 0 {
		entry.Content = WelcomeMessage
	}
	if err := s.SaveEntry(entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// findEntry locates an entry by ID within a loaded collection.
func findEntry(entries []*models.Entry, id string) (*models.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return nil, false
}

// normalize validates required fields and fills defaults so the
// soft-delete invariant (InTrash iff DeletedAt set) always holds.
// A set DeletedAt wins over a stale flag in either direction.
func (s *Store) normalize(e *models.Entry) error {
	if e.ID == "" {
		return errors.New("missing id")
	}

	now := s.now()
	if e.CreatedAt.IsZero() {
		if !e.UpdatedAt.IsZero() {
			e.CreatedAt = e.UpdatedAt
		} else {
			e.CreatedAt = now
		}
	}
	if e.UpdatedAt.IsZero() {
		e.UpdatedAt = e.CreatedAt
	}
	if e.Date == "" {
		e.Date = models.DateLabel(e.CreatedAt)
	}
	if e.Filename == "" {
		e.Filename = e.ID + "-" + e.CreatedAt.Format("2006-01-02T15-04-05") + ".md"
	}
	if e.DeletedAt != nil && e.DeletedAt.IsZero() {
		e.DeletedAt = nil
	}
	e.InTrash = e.DeletedAt != nil
	e.RecomputeDerived()
	return nil
}
