// ABOUTME: Trash lifecycle: soft delete, restore, permanent delete, auto-expiry
// ABOUTME: Trashed entries stay in the collection until emptied or expired

package store

import (
	"fmt"
	"time"

	"github.com/harper/murmure/internal/models"
	"github.com/harper/murmure/internal/timeutil"
)

// MoveToTrash soft-deletes an entry: it stays in the collection with
// InTrash set and DeletedAt stamped.
func (s *Store) MoveToTrash(id string) error {
	const op = "move to trash"
	entries, err := s.LoadEntries()
	if err != nil {
		return err
	}

	entry, ok := findEntry(entries, id)
	if !ok {
		e := &Error{Code: CodeEntryNotFound, Op: op, Err: fmt.Errorf("entry %s", id)}
		s.report(e)
		return e
	}

	entry.MoveToTrash(s.now())
	return s.writeEntries(op, entries)
}

// RestoreFromTrash clears an entry's trash state.
func (s *Store) RestoreFromTrash(id string) error {
	const op = "restore from trash"
	entries, err := s.LoadEntries()
	if err != nil {
		return err
	}

	entry, ok := findEntry(entries, id)
	if !ok {
		e := &Error{Code: CodeEntryNotFound, Op: op, Err: fmt.Errorf("entry %s", id)}
		s.report(e)
		return e
	}

	entry.RestoreFromTrash()
	return s.writeEntries(op, entries)
}

// DeleteEntryPermanently removes an entry from the collection entirely.
func (s *Store) DeleteEntryPermanently(id string) error {
	const op = "delete entry"
	entries, err := s.LoadEntries()
	if err != nil {
		return err
	}

	kept := entries[:0]
	found := false
	for _, e := range entries {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		e := &Error{Code: CodeEntryNotFound, Op: op, Err: fmt.Errorf("entry %s", id)}
		s.report(e)
		return e
	}

	return s.writeEntries(op, kept)
}

// EmptyTrash permanently removes every trashed entry.
// Returns the number of entries removed.
func (s *Store) EmptyTrash() (int, error) {
	const op = "empty trash"
	entries, err := s.LoadEntries()
	if err != nil {
		return 0, err
	}

	kept := entries[:0]
	removed := 0
	for _, e := range entries {
		if e.InTrash {
			removed++
			continue
		}
		kept = append(kept, e)
	}
	if removed == 0 {
		return 0, nil
	}

	if err := s.writeEntries(op, kept); err != nil {
		return 0, err
	}
	return removed, nil
}

// CleanupExpiredTrashEntries removes trashed entries past the retention
// window. Intended to run once per store initialization. Returns the
// number of entries expired.
func (s *Store) CleanupExpiredTrashEntries() (int, error) {
	const op = "cleanup trash"
	entries, err := s.LoadEntries()
	if err != nil {
		return 0, err
	}

	retention := time.Duration(s.retentionDays) * 24 * time.Hour
	now := s.now()

	kept := entries[:0]
	expired := 0
	for _, e := range entries {
		if e.InTrash && e.DeletedAt != nil && now.Sub(*e.DeletedAt) > retention {
			s.logger.Debug("expiring trashed entry", "id", e.ID, "deleted_at", e.DeletedAt)
			expired++
			continue
		}
		kept = append(kept, e)
	}
	if expired == 0 {
		return 0, nil
	}

	s.logger.Info("expired trashed entries", "count", expired)
	if err := s.writeEntries(op, kept); err != nil {
		return 0, err
	}
	return expired, nil
}

// DaysUntilDeletion reports how many days a trashed entry has left before
// auto-expiry. The second return is false for entries not in the trash.
func (s *Store) DaysUntilDeletion(e *models.Entry) (int, bool) {
	if e == nil || !e.InTrash || e.DeletedAt == nil {
		return 0, false
	}
	days := s.retentionDays - timeutil.DaysSince(*e.DeletedAt, s.now())
	if days < 0 {
		days = 0
	}
	return days, true
}
