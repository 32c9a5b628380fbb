// ABOUTME: Entry store owning the persisted journal collection
// ABOUTME: Availability probe, version marker, and current-entry pointer live here

package store

import (
	"errors"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/harper/murmure/internal/backend"
)

// Storage keys. All durable state lives under these names in the backend.
const (
	EntriesKey      = "murmure_entries"
	CurrentEntryKey = "murmure_current_entry"
	VersionKey      = "murmure_storage_version"

	probePrefix = "murmure_probe_"
)

const (
	// StorageVersion gates future migrations of the persisted layout.
	StorageVersion = "1"

	// MaxEntries caps the collection; the oldest entries beyond the cap
	// are dropped on save.
	MaxEntries = 1000

	// MaxPayloadBytes is the serialized-collection ceiling (5 MiB).
	MaxPayloadBytes = 5 * 1024 * 1024

	// DefaultRetentionDays is how long trashed entries survive before
	// auto-expiry.
	DefaultRetentionDays = 30
)

// WelcomeMessage seeds the very first entry of an empty journal.
const WelcomeMessage = "Welcome to murmure.\n\nThis is your space to write freely. " +
	"Nothing here leaves your device. Start typing, and come back tomorrow."

// Notifier receives user-facing notifications for critical failures
// (quota exceeded, storage unavailable). Non-critical failures are only
// logged.
type Notifier interface {
	Notify(title, message string)
}

// Store is the sole authority over the persisted entry collection.
// It holds no entry state of its own; everything durable lives in the
// backend under the keys above.
type Store struct {
	backend       backend.Backend
	logger        *log.Logger
	notifier      Notifier
	retentionDays int
	now           func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithLogger replaces the default logger.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithNotifier installs a sink for critical-failure notifications.
func WithNotifier(n Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

// WithRetentionDays overrides the trash retention window.
func WithRetentionDays(days int) Option {
	return func(s *Store) { s.retentionDays = days }
}

// WithClock injects a time source. Tests use this to control expiry.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// New creates a Store over the given backend.
func New(b backend.Backend, opts ...Option) *Store {
	s := &Store{
		backend:       b,
		logger:        log.NewWithOptions(os.Stderr, log.Options{Prefix: "murmure"}),
		retentionDays: DefaultRetentionDays,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RetentionDays returns the configured trash retention window.
func (s *Store) RetentionDays() int {
	return s.retentionDays
}

// checkAvailability verifies the backend with a write/read/delete
// round-trip before any real operation touches data. A failing probe
// short-circuits the caller with CodeStorageUnavailable.
func (s *Store) checkAvailability(op string) error {
	key := probePrefix + uuid.NewString()
	token := uuid.NewString()

	if err := s.backend.SetItem(key, token); err != nil {
		return s.unavailable(op, err)
	}
	got, err := s.backend.GetItem(key)
	if err != nil {
		return s.unavailable(op, err)
	}
	if got != token {
		return s.unavailable(op, errors.New("probe value mismatch"))
	}
	if err := s.backend.RemoveItem(key); err != nil {
		return s.unavailable(op, err)
	}
	return nil
}

func (s *Store) unavailable(op string, cause error) *Error {
	err := &Error{Code: CodeStorageUnavailable, Op: op, Err: cause}
	s.report(err)
	return err
}

// report logs a store error and forwards critical codes to the notifier.
func (s *Store) report(err *Error) {
	s.logger.Warn("operation failed", "op", err.Op, "code", err.Code, "err", err.Err)
	if s.notifier != nil && IsCritical(err.Code) {
		switch err.Code {
		case CodeQuotaExceeded:
			s.notifier.Notify("Storage full", "Your journal has hit its storage limit. Delete some entries to keep writing.")
		case CodeStorageUnavailable:
			s.notifier.Notify("Storage unavailable", "Your journal storage could not be reached. Recent changes may not be saved.")
		}
	}
}

// ensureVersion checks the storage version marker, initializing it on
// first run. Unknown versions run a migration path; version 1 is current
// so migration is a no-op.
func (s *Store) ensureVersion() {
	v, err := s.backend.GetItem(VersionKey)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			if setErr := s.backend.SetItem(VersionKey, StorageVersion); setErr != nil {
				s.logger.Warn("could not initialize storage version", "err", setErr)
			}
			return
		}
		s.logger.Warn("could not read storage version", "err", err)
		return
	}
	if v != StorageVersion {
		s.logger.Info("migrating storage", "from", v, "to", StorageVersion)
		// No layout changes between known versions yet; stamp and move on.
		if setErr := s.backend.SetItem(VersionKey, StorageVersion); setErr != nil {
			s.logger.Warn("could not update storage version", "err", setErr)
		}
	}
}

// SaveCurrentEntryID persists the last-open entry pointer.
func (s *Store) SaveCurrentEntryID(id string) error {
	const op = "save current entry"
	if err := s.checkAvailability(op); err != nil {
		return err
	}
	if err := s.backend.SetItem(CurrentEntryKey, id); err != nil {
		e := opError(op, err)
		s.report(e)
		return e
	}
	return nil
}

// LoadCurrentEntryID retrieves the last-open entry pointer.
// A missing pointer is not an error; it returns the empty string.
func (s *Store) LoadCurrentEntryID() (string, error) {
	const op = "load current entry"
	if err := s.checkAvailability(op); err != nil {
		return "", err
	}
	id, err := s.backend.GetItem(CurrentEntryKey)
	if err != nil {
		if errors.Is(err, backend.ErrNotFound) {
			return "", nil
		}
		e := opError(op, err)
		s.report(e)
		return "", e
	}
	return id, nil
}
