package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/display"
)

var editRegistry string

// stdinIsTerminal decides whether the editor prints a prompt.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

var editCmd = &cobra.Command{
	Use:   "edit [mapping-uri]",
	Short: "Edit a mapping interactively",
	Long: `Start a line based mapping editor. Commands are read from standard
input, one per line; the mapping is shown after each command.

With a mapping URI the stored mapping is loaded first.

Commands:
  help          show this list
  quit, exit    leave the editor`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editRegistry, "registry", "", "registry to load from and save to")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if mappingEditor == nil || commandRunner == nil {
		return errNotConfigured
	}
	if settingsService != nil {
		if err := loadSettings(); err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}
	}

	if len(args) == 1 {
		if _, err := mappingEditor.LoadMapping(cmd.Context(), args[0], editRegistry); err != nil {
			return fmt.Errorf("failed to load mapping: %w", err)
		}
	}

	lang := currentLanguage()
	out := cmd.OutOrStdout()
	prompt := stdinIsTerminal()
	scanner := bufio.NewScanner(cmd.InOrStdin())

	fmt.Fprintln(out, display.MappingSummary(mappingEditor.Mapping(), lang))
	for {
		if prompt {
			fmt.Fprint(out, "> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "" || strings.HasPrefix(line, "#"):
			continue
		case line == "quit" || line == "exit":
			return nil
		case line == "help":
			fmt.Fprintln(out, commandRunner.Usage())
			continue
		}

		if err := runEditorLine(cmd, line); err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(out, display.MappingSummary(mappingEditor.Mapping(), lang))
	}
	return scanner.Err()
}

// runEditorLine runs one command. Saving attaches the configured creator
// when the mapping has none and honours the clear-on-save setting.
func runEditorLine(cmd *cobra.Command, line string) error {
	fields := strings.Fields(line)
	isSave := strings.EqualFold(fields[0], "save")
	if !isSave {
		return commandRunner.Run(cmd.Context(), line)
	}
	if editRegistry != "" && len(fields) == 1 {
		line += " " + editRegistry
	}

	if settingsService != nil && len(mappingEditor.Mapping().Creator) == 0 {
		if creator := settingsService.Creator(); !creator.IsEmpty() {
			mappingEditor.SetCreator([]domain.Agent{creator})
		}
	}

	if err := commandRunner.Run(cmd.Context(), line); err != nil {
		return err
	}
	saved := mappingEditor.Mapping()
	if saved.URI == "" {
		return fmt.Errorf("mapping was not saved")
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", saved.URI)

	if settingsService != nil && settingsService.Get().MappingEditorClearOnSave {
		mappingEditor.Empty()
	}
	return nil
}
