// ABOUTME: Export command for writing entry content out of the journal
// ABOUTME: Writes a single entry to a file or every active entry to a directory

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/config"
)

var exportCmd = &cobra.Command{
	Use:   "export [entry-id]",
	Short: "Export entries as Markdown",
	Long: `Export journal entries as Markdown files.

With an entry ID, writes that entry to stdout (or to --out).
Without arguments, writes every active entry into --out, which
must be a directory in that case.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		if len(args) == 1 {
			entry, err := findByID(args[0])
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Print(entry.Content)
				if entry.Content != "" && entry.Content[len(entry.Content)-1] != '\n' {
					fmt.Println()
				}
				return nil
			}
			if err := os.WriteFile(out, []byte(entry.Content), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", out, err)
			}
			fmt.Printf("Exported %s to %s\n", shortID(entry.ID), out)
			return nil
		}

		if out == "" {
			return fmt.Errorf("exporting all entries requires --out <directory>")
		}
		if err := os.MkdirAll(out, config.DefaultDirPerms); err != nil {
			return fmt.Errorf("failed to create %s: %w", out, err)
		}

		entries, err := journal.LoadActiveEntries()
		if err != nil {
			return fmt.Errorf("failed to load entries: %w", err)
		}

		for _, entry := range entries {
			path := filepath.Join(out, entry.Filename)
			if err := os.WriteFile(path, []byte(entry.Content), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", path, err)
			}
		}
		fmt.Printf("Exported %d entries to %s\n", len(entries), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("out", "o", "", "output file (single entry) or directory (all entries)")
}
