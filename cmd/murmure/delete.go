// ABOUTME: Permanent delete command bypassing the trash
// ABOUTME: Requires --force; this action cannot be undone

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "rm <entry-id>",
	Aliases: []string{"delete"},
	Short:   "Permanently delete an entry",
	Long:    "Remove an entry from the collection entirely, skipping the trash. Cannot be undone.",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		entry, err := findByID(args[0])
		if err != nil {
			return err
		}

		if !force {
			fmt.Printf("This permanently deletes %s (%s). Re-run with --force to confirm.\n",
				shortID(entry.ID), entry.PreviewText)
			return nil
		}

		if err := journal.DeleteEntryPermanently(entry.ID); err != nil {
			return fmt.Errorf("failed to delete entry: %w", err)
		}
		fmt.Printf("Permanently deleted %s\n", shortID(entry.ID))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().Bool("force", false, "skip confirmation")
}
