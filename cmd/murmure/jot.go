// ABOUTME: Jot command for an interactive free-writing session
// ABOUTME: Opens today's entry in a fullscreen editor with autosave

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/session"
	"github.com/harper/murmure/internal/tui"
)

var jotCmd = &cobra.Command{
	Use:     "jot [entry-id]",
	Aliases: []string{"j"},
	Short:   "Write interactively",
	Long: `Open an entry in a fullscreen editor. Edits autosave as you type;
esc saves and quits.

Without an entry ID the editor opens today's entry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess := session.New(journal, session.WithSearchConfig(cfg.SearchSettings()))

		if len(args) == 1 {
			entry, err := findByID(args[0])
			if err != nil {
				return err
			}
			if _, err := sess.Open(entry.ID); err != nil {
				return fmt.Errorf("failed to open entry: %w", err)
			}
		} else {
			if _, err := sess.OpenToday(); err != nil {
				return fmt.Errorf("failed to open today's entry: %w", err)
			}
		}

		model := tui.NewEditorModel(sess)
		p := tea.NewProgram(model, tea.WithAltScreen())
		result, err := p.Run()
		if err != nil {
			return fmt.Errorf("TUI error: %w", err)
		}

		final := result.(tui.EditorModel)
		if err := final.SaveErr(); err != nil {
			return fmt.Errorf("failed to save entry: %w", err)
		}

		if entry := sess.Current(); entry != nil {
			fmt.Printf("Saved %s (%d words)\n", shortID(entry.ID), entry.WordCount)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(jotCmd)
}
