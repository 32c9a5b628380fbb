// ABOUTME: Cobra command for interactive murmure storage configuration.
// ABOUTME: Launches a bubbletea TUI wizard to select backend and data directory.
package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/harper/murmure/internal/config"
	"github.com/harper/murmure/internal/tui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Configure murmure storage backend",
	Long:  "Interactive wizard to configure storage backend and data directory.",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	model := tui.NewSetupModel(cfg.Backend, cfg.DataDir)

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	final := result.(tui.SetupModel)
	if !final.ShouldSave() {
		fmt.Println("Setup canceled.")
		return nil
	}

	storageBackend, dataDir := final.Result()
	cfg.Backend = storageBackend
	cfg.DataDir = dataDir

	if err := cfg.Save(); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("Config saved to %s\n", config.GetConfigPath())
	return nil
}
