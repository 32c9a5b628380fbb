// ABOUTME: Write command for setting entry content from a flag or stdin
// ABOUTME: Targets an explicit entry ID or falls back to today's entry

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/models"
)

var writeCmd = &cobra.Command{
	Use:     "write [entry-id]",
	Aliases: []string{"w"},
	Short:   "Write to an entry",
	Long: `Write content to an entry. Reads from --message or stdin.

Without an entry ID the content goes to today's entry. Use --append to
add to the existing text instead of replacing it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message, _ := cmd.Flags().GetString("message")
		appendMode, _ := cmd.Flags().GetBool("append")

		if message == "" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("failed to read stdin: %w", err)
			}
			message = string(data)
		}
		if message == "" {
			return fmt.Errorf("nothing to write: pass --message or pipe content on stdin")
		}

		var entry *models.Entry
		if len(args) == 1 {
			found, err := findByID(args[0])
			if err != nil {
				return err
			}
			entry = found
		} else {
			today, err := journal.TodayEntryOrCreate()
			if err != nil {
				return fmt.Errorf("failed to open today's entry: %w", err)
			}
			entry = today
		}

		if appendMode && entry.Content != "" {
			entry.Content = entry.Content + "\n" + message
		} else {
			entry.Content = message
		}

		if err := journal.SaveEntry(entry); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		fmt.Printf("Saved %s (%d words)\n", shortID(entry.ID), entry.WordCount)
		return nil
	},
}

// findByID locates an entry by full ID or unambiguous prefix.
func findByID(ref string) (*models.Entry, error) {
	entries, err := journal.LoadEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load entries: %w", err)
	}

	var matches []*models.Entry
	for _, e := range entries {
		if e.ID == ref {
			return e, nil
		}
		if len(ref) >= 4 && len(e.ID) >= len(ref) && e.ID[:len(ref)] == ref {
			matches = append(matches, e)
		}
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("entry not found: %s", ref)
	}
	if len(matches) > 1 {
		return nil, fmt.Errorf("ambiguous prefix %s matches %d entries", ref, len(matches))
	}
	return matches[0], nil
}

func init() {
	rootCmd.AddCommand(writeCmd)

	writeCmd.Flags().StringP("message", "m", "", "content to write")
	writeCmd.Flags().BoolP("append", "a", false, "append to existing content")
}
