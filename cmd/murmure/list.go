// ABOUTME: List command for viewing journal entries with filtering options
// ABOUTME: Displays entries with date, word count, and preview using color formatting

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/config"
	"github.com/harper/murmure/internal/models"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List journal entries",
	Long:    "List journal entries, newest first. Use --trash for trashed entries.",
	RunE: func(cmd *cobra.Command, args []string) error {
		trashOnly, _ := cmd.Flags().GetBool("trash")
		all, _ := cmd.Flags().GetBool("all")
		limit, _ := cmd.Flags().GetInt("limit")

		var entries []*models.Entry
		var err error
		switch {
		case all:
			entries, err = journal.LoadEntries()
		case trashOnly:
			entries, err = journal.LoadTrashEntries()
		default:
			entries, err = journal.LoadActiveEntries()
		}
		if err != nil {
			return fmt.Errorf("failed to list entries: %w", err)
		}

		if len(entries) == 0 {
			fmt.Println("No entries found")
			return nil
		}
		if limit > 0 && len(entries) > limit {
			entries = entries[:limit]
		}

		faint := color.New(color.Faint).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()

		for _, entry := range entries {
			fmt.Print(faint(shortID(entry.ID)))
			fmt.Print(" ")
			fmt.Printf("%-6s", entry.Date)
			fmt.Print(" ")
			fmt.Print(faint(fmt.Sprintf("%4dw", entry.WordCount)))
			fmt.Print(" ")
			fmt.Print(entry.PreviewText)

			if entry.InTrash {
				if days, ok := journal.DaysUntilDeletion(entry); ok {
					fmt.Print(" ")
					fmt.Print(red(fmt.Sprintf("(gone in %dd)", days)))
				}
			}
			fmt.Println()
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().Bool("trash", false, "show trashed entries only")
	listCmd.Flags().BoolP("all", "a", false, "show active and trashed entries")
	listCmd.Flags().IntP("limit", "n", config.DefaultListLimit, "max entries to show")

	listCmd.MarkFlagsMutuallyExclusive("trash", "all")
}
