package cli

import (
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/skosmap/internal/adapters/driving/tui"
)

// runProgram runs the bubbletea program; tests replace it.
var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive mapping editor",
	Long: `Launch the interactive terminal editor for mappings.

Type editor commands into the command line at the bottom. The working
mapping is shown above it with one panel per side.

Controls:
  Enter   - Run command / load selected mapping
  Ctrl+S  - Save the mapping
  Ctrl+L  - Look up stored mappings of the current concept
  Ctrl+X  - Switch sides
  Tab     - Toggle between command line and stored mappings
  F1      - Toggle command reference
  Ctrl+C  - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("panic in TUI: %v", r)
		}
	}()

	if err := loadSettings(); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	app, err := tui.NewApp(&tui.Ports{
		Editor:        mappingEditor,
		Commands:      commandRunner,
		Settings:      settingsService,
		WatchSettings: watchSettings,
	})
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := runProgram(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
