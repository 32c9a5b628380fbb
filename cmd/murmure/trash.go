// ABOUTME: Trash commands: soft delete, restore, and emptying the trash
// ABOUTME: Trashed entries stay recoverable until the retention window lapses

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var trashCmd = &cobra.Command{
	Use:   "trash <entry-id>",
	Short: "Move an entry to the trash",
	Long:  "Soft-delete an entry. It stays recoverable until the retention window lapses.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := findByID(args[0])
		if err != nil {
			return err
		}
		if err := journal.MoveToTrash(entry.ID); err != nil {
			return fmt.Errorf("failed to move entry to trash: %w", err)
		}

		days := journal.RetentionDays()
		fmt.Printf("Moved %s to trash (auto-deletes in %d days)\n", shortID(entry.ID), days)
		return nil
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore <entry-id>",
	Short: "Restore an entry from the trash",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := findByID(args[0])
		if err != nil {
			return err
		}
		if err := journal.RestoreFromTrash(entry.ID); err != nil {
			return fmt.Errorf("failed to restore entry: %w", err)
		}
		fmt.Printf("Restored %s\n", shortID(entry.ID))
		return nil
	},
}

var emptyTrashCmd = &cobra.Command{
	Use:   "empty-trash",
	Short: "Permanently delete everything in the trash",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			trash, err := journal.LoadTrashEntries()
			if err != nil {
				return fmt.Errorf("failed to load trash: %w", err)
			}
			if len(trash) == 0 {
				fmt.Println("Trash is already empty")
				return nil
			}
			fmt.Printf("This permanently deletes %d entries. Re-run with --force to confirm.\n", len(trash))
			return nil
		}

		removed, err := journal.EmptyTrash()
		if err != nil {
			return fmt.Errorf("failed to empty trash: %w", err)
		}
		fmt.Printf("Permanently deleted %d entries\n", removed)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(trashCmd)
	rootCmd.AddCommand(restoreCmd)
	rootCmd.AddCommand(emptyTrashCmd)

	emptyTrashCmd.Flags().Bool("force", false, "skip confirmation")
}
