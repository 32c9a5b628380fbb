// ABOUTME: Tests for the trash lifecycle and retention-based expiry
// ABOUTME: Verifies soft-delete consistency, restore, and the expiry boundary

package store

import (
	"testing"
	"time"

	"github.com/harper/murmure/internal/models"
)

func seedEntry(t *testing.T, s *Store, content string) *models.Entry {
	t.Helper()
	e := s.NewDraft()
	e.Content = content
	if err := s.SaveEntry(e); err != nil {
		t.Fatalf("SaveEntry failed: %v", err)
	}
	return e
}

func TestMoveToTrashAndRestore(t *testing.T) {
	s, _ := newTestStore(t)
	e := seedEntry(t, s, "about to be trashed")

	if err := s.MoveToTrash(e.ID); err != nil {
		t.Fatalf("MoveToTrash failed: %v", err)
	}

	trash, err := s.LoadTrashEntries()
	if err != nil {
		t.Fatalf("LoadTrashEntries failed: %v", err)
	}
	if len(trash) != 1 {
		t.Fatalf("trash has %d entries, expected 1", len(trash))
	}
	if !trash[0].InTrash || trash[0].DeletedAt == nil {
		t.Error("trashed entry violates InTrash/DeletedAt invariant")
	}

	active, err := s.LoadActiveEntries()
	if err != nil {
		t.Fatalf("LoadActiveEntries failed: %v", err)
	}
	if len(active) != 0 {
		t.Errorf("active has %d entries, expected 0", len(active))
	}

	if err := s.RestoreFromTrash(e.ID); err != nil {
		t.Fatalf("RestoreFromTrash failed: %v", err)
	}
	active, err = s.LoadActiveEntries()
	if err != nil {
		t.Fatalf("LoadActiveEntries failed: %v", err)
	}
	if len(active) != 1 {
		t.Fatalf("active has %d entries after restore, expected 1", len(active))
	}
	if active[0].InTrash || active[0].DeletedAt != nil {
		t.Error("restored entry violates InTrash/DeletedAt invariant")
	}
}

func TestTrashOpsOnMissingEntry(t *testing.T) {
	s, _ := newTestStore(t)
	seedEntry(t, s, "present")

	if err := s.MoveToTrash("nope"); Code(err) != CodeEntryNotFound {
		t.Errorf("MoveToTrash Code = %q, expected %q", Code(err), CodeEntryNotFound)
	}
	if err := s.RestoreFromTrash("nope"); Code(err) != CodeEntryNotFound {
		t.Errorf("RestoreFromTrash Code = %q, expected %q", Code(err), CodeEntryNotFound)
	}
	if err := s.DeleteEntryPermanently("nope"); Code(err) != CodeEntryNotFound {
		t.Errorf("DeleteEntryPermanently Code = %q, expected %q", Code(err), CodeEntryNotFound)
	}
}

func TestDeleteEntryPermanently(t *testing.T) {
	s, _ := newTestStore(t)
	a := seedEntry(t, s, "keep me")
	b := seedEntry(t, s, "delete me")

	if err := s.DeleteEntryPermanently(b.ID); err != nil {
		t.Fatalf("DeleteEntryPermanently failed: %v", err)
	}

	entries, err := s.LoadEntries()
	if err != nil {
		t.Fatalf("LoadEntries failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, expected 1", len(entries))
	}
	if entries[0].ID != a.ID {
		t.Errorf("surviving ID = %s, expected %s", entries[0].ID, a.ID)
	}
}

func TestEmptyTrash(t *testing.T) {
	s, _ := newTestStore(t)
	keep := seedEntry(t, s, "active")
	t1 := seedEntry(t, s, "trash one")
	t2 := seedEntry(t, s, "trash two")

	for _, id := range []string{t1.ID, t2.ID} {
		if err := s.MoveToTrash(id); err != nil {
			t.Fatalf("MoveToTrash failed: %v", err)
		}
	}

	removed, err := s.EmptyTrash()
	if err != nil {
		t.Fatalf("EmptyTrash failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("removed = %d, expected 2", removed)
	}

	entries, err := s.LoadEntries()
	if err != nil {
		t.Fatalf("LoadEntries failed: %v", err)
	}
	if len(entries) != 1 || entries[0].ID != keep.ID {
		t.Errorf("expected only the active entry to survive, got %d entries", len(entries))
	}

	// Emptying an already-empty trash is a no-op.
	removed, err = s.EmptyTrash()
	if err != nil {
		t.Fatalf("EmptyTrash failed: %v", err)
	}
	if removed != 0 {
		t.Errorf("removed = %d, expected 0", removed)
	}
}

func TestCleanupExpiredTrashEntries(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, WithClock(fixedClock(now)))

	expired := s.NewDraft()
	expired.Content = "expired"
	d31 := now.Add(-31 * 24 * time.Hour)
	expired.DeletedAt = &d31
	expired.InTrash = true

	recent := s.NewDraft()
	recent.Content = "recent"
	d29 := now.Add(-29 * 24 * time.Hour)
	recent.DeletedAt = &d29
	recent.InTrash = true

	active := s.NewDraft()
	active.Content = "active"

	if err := s.SaveEntries([]*models.Entry{expired, recent, active}); err != nil {
		t.Fatalf("SaveEntries failed: %v", err)
	}

	count, err := s.CleanupExpiredTrashEntries()
	if err != nil {
		t.Fatalf("CleanupExpiredTrashEntries failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expired count = %d, expected 1", count)
	}

	entries, err := s.LoadEntries()
	if err != nil {
		t.Fatalf("LoadEntries failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("got %d entries, expected 2", len(entries))
	}
	for _, e := range entries {
		if e.ID == expired.ID {
			t.Error("31-day-old trashed entry should have been expired")
		}
	}
}

func TestDaysUntilDeletion(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, WithClock(fixedClock(now)))

	active := s.NewDraft()
	if _, ok := s.DaysUntilDeletion(active); ok {
		t.Error("active entry should have no deletion countdown")
	}
	if _, ok := s.DaysUntilDeletion(nil); ok {
		t.Error("nil entry should have no deletion countdown")
	}

	tests := []struct {
		name     string
		age      time.Duration
		expected int
	}{
		{"same day", 0, 30},
		{"ten days", 10 * 24 * time.Hour, 20},
		{"on the boundary", 30 * 24 * time.Hour, 0},
		{"past the boundary", 45 * 24 * time.Hour, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := s.NewDraft()
			e.MoveToTrash(now.Add(-tc.age))
			days, ok := s.DaysUntilDeletion(e)
			if !ok {
				t.Fatal("trashed entry should have a countdown")
			}
			if days != tc.expected {
				t.Errorf("days = %d, expected %d", days, tc.expected)
			}
		})
	}
}

func TestCustomRetention(t *testing.T) {
	now := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, WithClock(fixedClock(now)), WithRetentionDays(7))

	e := s.NewDraft()
	d8 := now.Add(-8 * 24 * time.Hour)
	e.DeletedAt = &d8
	e.InTrash = true
	if err := s.SaveEntries([]*models.Entry{e}); err != nil {
		t.Fatalf("SaveEntries failed: %v", err)
	}

	count, err := s.CleanupExpiredTrashEntries()
	if err != nil {
		t.Fatalf("CleanupExpiredTrashEntries failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expired count = %d, expected 1 with 7-day retention", count)
	}
}
