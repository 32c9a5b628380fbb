// ABOUTME: Show command for viewing entry content
// ABOUTME: Displays full entry details with markdown rendering

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/config"
)

var showCmd = &cobra.Command{
	Use:   "show [entry-id]",
	Short: "Show an entry",
	Long:  "Display the full content of an entry. Without an ID, shows the last open entry.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")

		ref := ""
		if len(args) == 1 {
			ref = args[0]
		} else {
			current, err := journal.LoadCurrentEntryID()
			if err != nil {
				return fmt.Errorf("failed to load current entry pointer: %w", err)
			}
			if current == "" {
				return fmt.Errorf("no entry open: pass an entry ID or run 'murmure today' first")
			}
			ref = current
		}

		entry, err := findByID(ref)
		if err != nil {
			return err
		}

		bold := color.New(color.Bold).SprintFunc()
		faint := color.New(color.Faint).SprintFunc()

		fmt.Println(strings.Repeat("─", config.SeparatorWidth))
		fmt.Printf("%s %s\n", bold(entry.Date), faint(shortID(entry.ID)))
		fmt.Printf("%s\n", faint(fmt.Sprintf("%d words · updated %s", entry.WordCount, entry.UpdatedAt.Format(config.DateFormatShort))))
		if days, ok := journal.DaysUntilDeletion(entry); ok {
			fmt.Printf("%s\n", faint(fmt.Sprintf("in trash, auto-deletes in %d days", days)))
		}
		fmt.Println(strings.Repeat("─", config.SeparatorWidth))

		if entry.Content == "" {
			fmt.Println(faint("(empty)"))
			return nil
		}

		if plain {
			fmt.Println(entry.Content)
			return nil
		}

		renderer, err := glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(config.SeparatorWidth+20),
		)
		if err != nil {
			fmt.Println(entry.Content)
			return nil
		}
		out, err := renderer.Render(entry.Content)
		if err != nil {
			fmt.Println(entry.Content)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().Bool("plain", false, "print raw content without markdown rendering")
}
