// ABOUTME: Entry model representing a single free-writing session with trash state
// ABOUTME: Provides a factory plus derived-field recomputation and trash transitions

package models

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

const (
	// PreviewLength is the maximum rune length of the derived preview text.
	PreviewLength = 50

	// dateLabelFormat renders the short creation label, e.g. "Jan 5".
	dateLabelFormat = "Jan 2"
)

// Entry represents a single journaling session.
// ID, Date, Filename and CreatedAt are immutable after creation.
type Entry struct {
	ID          string     `json:"id"`
	Date        string     `json:"date"`
	Filename    string     `json:"filename"`
	Content     string     `json:"content"`
	PreviewText string     `json:"preview_text"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	WordCount   int        `json:"word_count"`
	DeletedAt   *time.Time `json:"deleted_at,omitempty"`
	InTrash     bool       `json:"in_trash"`
}

// NewEntry creates an empty entry stamped at the given time.
// The ID is a ULID (millisecond timestamp plus random suffix), and the
// filename combines the ID with a full timestamp for export purposes.
func NewEntry(now time.Time) *Entry {
	id := ulid.Make().String()
	return &Entry{
		ID:        id,
		Date:      DateLabel(now),
		Filename:  id + "-" + now.Format("2006-01-02T15-04-05") + ".md",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// DateLabel formats the short human-readable creation label for a day.
func DateLabel(t time.Time) string {
	return t.Format(dateLabelFormat)
}

// RecomputeDerived refreshes PreviewText and WordCount from Content.
// Called on every save so the derived fields are never stale.
func (e *Entry) RecomputeDerived() {
	e.PreviewText = Preview(e.Content)
	e.WordCount = len(strings.Fields(e.Content))
}

// Preview renders a single-line, truncated preview of content.
func Preview(content string) string {
	line := strings.Join(strings.Fields(content), " ")
	runes := []rune(line)
	if len(runes) <= PreviewLength {
		return line
	}
	return strings.TrimRight(string(runes[:PreviewLength]), " ") + "…"
}

// MoveToTrash marks the entry as trashed at the given time.
func (e *Entry) MoveToTrash(now time.Time) {
	t := now
	e.InTrash = true
	e.DeletedAt = &t
}

// RestoreFromTrash clears the trash flag and deletion timestamp.
func (e *Entry) RestoreFromTrash() {
	e.InTrash = false
	e.DeletedAt = nil
}
