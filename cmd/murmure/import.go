// ABOUTME: Import command for bringing external text or HTML into the journal
// ABOUTME: Each imported file becomes a new entry, converted to Markdown

package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/content"
)

var importCmd = &cobra.Command{
	Use:   "import <file>...",
	Short: "Import files as journal entries",
	Long: `Import text or HTML files into the journal.

Each file becomes its own entry. HTML is converted to Markdown;
plain text and Markdown are stored as-is.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		faint := color.New(color.Faint).SprintFunc()

		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}

			body := content.ToMarkdown(string(data))
			if body == "" {
				fmt.Printf("Skipped %s (empty after conversion)\n", path)
				continue
			}

			entry := journal.NewDraft()
			entry.Content = body
			if err := journal.SaveEntry(entry); err != nil {
				return fmt.Errorf("failed to save entry for %s: %w", path, err)
			}

			fmt.Printf("Imported %s as %s (%d words)\n", path, faint(shortID(entry.ID)), entry.WordCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
