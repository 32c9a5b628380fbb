// ABOUTME: Today command for opening or creating today's entry
// ABOUTME: Reuses an empty entry for the day, seeds a welcome on first run

package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/config"
)

var todayCmd = &cobra.Command{
	Use:     "today",
	Aliases: []string{"t"},
	Short:   "Open today's entry",
	Long:    "Open today's entry, creating it if needed, and make it the current entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := journal.TodayEntryOrCreate()
		if err != nil {
			return fmt.Errorf("failed to open today's entry: %w", err)
		}
		if err := journal.SaveCurrentEntryID(entry.ID); err != nil {
			return fmt.Errorf("failed to record current entry: %w", err)
		}

		faint := color.New(color.Faint).SprintFunc()
		fmt.Printf("%s %s", faint(shortID(entry.ID)), entry.Date)
		if entry.WordCount > 0 {
			fmt.Printf(" %s", faint(fmt.Sprintf("(%d words)", entry.WordCount)))
		}
		fmt.Println()
		if entry.PreviewText != "" {
			fmt.Println(entry.PreviewText)
		}
		return nil
	},
}

// shortID truncates an entry ID for display.
func shortID(id string) string {
	if len(id) > config.DisplayIDLength {
		return id[:config.DisplayIDLength]
	}
	return id
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
