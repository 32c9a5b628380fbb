// ABOUTME: Root Cobra command and global flags
// ABOUTME: Opens the configured backend and runs trash expiry once per start

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/config"
	"github.com/harper/murmure/internal/notify"
	"github.com/harper/murmure/internal/store"
)

var (
	dataDirFlag string
	backendFlag string

	cfg     *config.Config
	journal *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "murmure",
	Short: "Local journaling with trash and full-text search",
	Long: `A quiet place for free-writing sessions.

Everything stays on your device: entries, the trash, and search all
operate on a local store. Trashed entries expire after a retention
window (30 days by default).`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if dataDirFlag != "" {
			cfg.DataDir = dataDirFlag
		}
		if backendFlag != "" {
			cfg.Backend = backendFlag
		}

		b, err := cfg.OpenBackend()
		if err != nil {
			return fmt.Errorf("failed to open storage backend: %w", err)
		}

		journal = store.New(b,
			store.WithNotifier(notify.NewConsole()),
			store.WithRetentionDays(cfg.GetRetentionDays()),
		)

		// Expire old trash once per invocation, matching app startup.
		if _, err := journal.CleanupExpiredTrashEntries(); err != nil {
			// Expiry is housekeeping; a failing backend will surface on
			// the real operation with a proper error code.
			fmt.Fprintln(cmd.ErrOrStderr(), "warning: trash cleanup skipped:", err)
		}

		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDirFlag, "data-dir", "", "data directory (default: ~/.local/share/murmure)")
	rootCmd.PersistentFlags().StringVar(&backendFlag, "backend", "", `storage backend: "file" or "charm" (default from config)`)
}
