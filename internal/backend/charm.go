// ABOUTME: Charm KV backend using the transactional Do API
// ABOUTME: Short-lived connections per operation to avoid lock contention

package backend

import (
	"os"

	"github.com/charmbracelet/charm/kv"
)

const (
	// DefaultCharmHost is used when CHARM_HOST is unset.
	DefaultCharmHost = "charm.2389.dev"

	// DBName is the name of the charm kv database for murmure.
	DBName = "murmure"
)

// CharmBackend stores keys in a Charm Cloud KV database.
// It does not hold a persistent connection: each operation opens the
// database, performs the operation, and closes it.
type CharmBackend struct {
	dbName   string
	autoSync bool
}

// Compile-time check that CharmBackend implements Backend.
var _ Backend = (*CharmBackend)(nil)

// NewCharmBackend creates a charm-backed store.
func NewCharmBackend() *CharmBackend {
	if os.Getenv("CHARM_HOST") == "" {
		os.Setenv("CHARM_HOST", DefaultCharmHost)
	}
	return &CharmBackend{dbName: DBName, autoSync: true}
}

// NewCharmBackendWithDBName creates a charm backend with a custom database
// name. Use this for isolated test databases.
func NewCharmBackendWithDBName(dbName string, autoSync bool) *CharmBackend {
	return &CharmBackend{dbName: dbName, autoSync: autoSync}
}

// SetAutoSync enables or disables automatic sync after writes.
func (b *CharmBackend) SetAutoSync(enabled bool) {
	b.autoSync = enabled
}

// GetItem reads a key from the charm database.
func (b *CharmBackend) GetItem(key string) (string, error) {
	var value []byte
	err := kv.DoReadOnly(b.dbName, func(k *kv.KV) error {
		data, err := k.Get([]byte(key))
		if err != nil {
			return err
		}
		value = data
		return nil
	})
	if err != nil {
		return "", &Error{Kind: KindNetwork, Op: "get", Err: err}
	}
	if value == nil {
		return "", ErrNotFound
	}
	return string(value), nil
}

// SetItem writes a key to the charm database and syncs when enabled.
func (b *CharmBackend) SetItem(key, value string) error {
	err := kv.Do(b.dbName, func(k *kv.KV) error {
		if err := k.Set([]byte(key), []byte(value)); err != nil {
			return err
		}
		if b.autoSync {
			return k.Sync()
		}
		return nil
	})
	if err != nil {
		return &Error{Kind: KindNetwork, Op: "set", Err: err}
	}
	return nil
}

// RemoveItem deletes a key from the charm database.
func (b *CharmBackend) RemoveItem(key string) error {
	err := kv.Do(b.dbName, func(k *kv.KV) error {
		if err := k.Delete([]byte(key)); err != nil {
			return err
		}
		if b.autoSync {
			return k.Sync()
		}
		return nil
	})
	if err != nil {
		return &Error{Kind: KindNetwork, Op: "remove", Err: err}
	}
	return nil
}

// Reset wipes all local data in the charm database.
func (b *CharmBackend) Reset() error {
	return kv.Do(b.dbName, func(k *kv.KV) error {
		return k.Reset()
	})
}
