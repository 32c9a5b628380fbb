// ABOUTME: File-based backend storing each key as a file in the data directory
// ABOUTME: Atomic writes via temp file plus rename; ENOSPC maps to quota errors

package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// FileBackend persists each key as a file under a data directory.
type FileBackend struct {
	dataDir string
}

// Compile-time check that FileBackend implements Backend.
var _ Backend = (*FileBackend)(nil)

// NewFileBackend creates a file backend rooted at dataDir, creating the
// directory if needed.
func NewFileBackend(dataDir string) (*FileBackend, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, &Error{Kind: KindUnavailable, Op: "init", Err: err}
	}
	return &FileBackend{dataDir: dataDir}, nil
}

// keyPath maps a key to its file path within the data directory.
func (b *FileBackend) keyPath(key string) string {
	return filepath.Join(b.dataDir, key)
}

// GetItem reads the file for key.
func (b *FileBackend) GetItem(key string) (string, error) {
	data, err := os.ReadFile(b.keyPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNotFound
		}
		return "", &Error{Kind: KindIO, Op: "get", Err: err}
	}
	return string(data), nil
}

// SetItem writes the file for key atomically (temp file + rename).
func (b *FileBackend) SetItem(key, value string) error {
	path := b.keyPath(key)
	tmp, err := os.CreateTemp(b.dataDir, "."+key+".tmp-*")
	if err != nil {
		return classifyWrite("set", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return classifyWrite("set", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return classifyWrite("set", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return classifyWrite("set", err)
	}
	return nil
}

// RemoveItem deletes the file for key. Missing files are ignored.
func (b *FileBackend) RemoveItem(key string) error {
	if err := os.Remove(b.keyPath(key)); err != nil && !os.IsNotExist(err) {
		return &Error{Kind: KindIO, Op: "remove", Err: err}
	}
	return nil
}

// classifyWrite maps filesystem write failures to backend error kinds.
func classifyWrite(op string, err error) error {
	if errors.Is(err, syscall.ENOSPC) || errors.Is(err, syscall.EDQUOT) {
		return &Error{Kind: KindQuota, Op: op, Err: fmt.Errorf("disk full: %w", err)}
	}
	return &Error{Kind: KindIO, Op: op, Err: err}
}
