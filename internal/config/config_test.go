// ABOUTME: Tests for configuration defaults and backend selection
// ABOUTME: Covers path expansion, search setting merges, and the backend factory

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harper/murmure/internal/search"
	"github.com/harper/murmure/internal/store"
)

func TestGetBackendDefault(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetBackend(); got != "file" {
		t.Errorf("GetBackend() = %q, want %q", got, "file")
	}

	cfg.Backend = "sqlite"
	if got := cfg.GetBackend(); got != "sqlite" {
		t.Errorf("GetBackend() = %q, want %q", got, "sqlite")
	}
}

func TestGetRetentionDays(t *testing.T) {
	cfg := &Config{}
	if got := cfg.GetRetentionDays(); got != store.DefaultRetentionDays {
		t.Errorf("GetRetentionDays() = %d, want %d", got, store.DefaultRetentionDays)
	}

	cfg.RetentionDays = 7
	if got := cfg.GetRetentionDays(); got != 7 {
		t.Errorf("GetRetentionDays() = %d, want 7", got)
	}

	cfg.RetentionDays = -1
	if got := cfg.GetRetentionDays(); got != store.DefaultRetentionDays {
		t.Errorf("GetRetentionDays() with negative value = %d, want default", got)
	}
}

func TestSearchSettings(t *testing.T) {
	t.Run("no overrides", func(t *testing.T) {
		cfg := &Config{}
		got := cfg.SearchSettings()
		want := search.DefaultConfig()
		if got != want {
			t.Errorf("SearchSettings() = %+v, want defaults %+v", got, want)
		}
	})

	t.Run("partial overrides", func(t *testing.T) {
		minScore := 0.5
		cfg := &Config{Search: &SearchConfig{
			WholeWordsOnly: true,
			MinScore:       &minScore,
		}}
		got := cfg.SearchSettings()
		if !got.WholeWordsOnly {
			t.Error("expected WholeWordsOnly to be overridden")
		}
		if got.MinScore != 0.5 {
			t.Errorf("MinScore = %v, want 0.5", got.MinScore)
		}
		if got.MinQueryLength != search.DefaultConfig().MinQueryLength {
			t.Error("expected MinQueryLength to keep its default")
		}
	})
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"tilde only", "~", home},
		{"tilde prefix", "~/journal", filepath.Join(home, "journal")},
		{"absolute path untouched", "/var/data", "/var/data"},
		{"relative path untouched", "journal", "journal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandPath(tt.in); got != tt.want {
				t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestOpenBackend(t *testing.T) {
	t.Run("file", func(t *testing.T) {
		cfg := &Config{Backend: "file", DataDir: t.TempDir()}
		b, err := cfg.OpenBackend()
		if err != nil {
			t.Fatalf("OpenBackend() error: %v", err)
		}
		if b == nil {
			t.Fatal("expected a backend")
		}
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := &Config{Backend: "sqlite", DataDir: t.TempDir()}
		b, err := cfg.OpenBackend()
		if err != nil {
			t.Fatalf("OpenBackend() error: %v", err)
		}
		if b == nil {
			t.Fatal("expected a backend")
		}
	})

	t.Run("unknown", func(t *testing.T) {
		cfg := &Config{Backend: "carrier-pigeon"}
		if _, err := cfg.OpenBackend(); err == nil {
			t.Error("expected error for unknown backend")
		} else if !strings.Contains(err.Error(), "carrier-pigeon") {
			t.Errorf("expected error to name the backend, got %v", err)
		}
	})
}

func TestGetDataDirExpansion(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}

	cfg := &Config{DataDir: "~/notes"}
	if got := cfg.GetDataDir(); got != filepath.Join(home, "notes") {
		t.Errorf("GetDataDir() = %q", got)
	}

	cfg = &Config{}
	if got := cfg.GetDataDir(); !strings.HasSuffix(got, "murmure") {
		t.Errorf("default GetDataDir() = %q, want murmure suffix", got)
	}
}
