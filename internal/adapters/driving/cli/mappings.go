package cli

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
	"github.com/custodia-labs/skosmap/internal/display"
)

var (
	mappingsQuery    domain.MappingQuery
	mappingsDir      string
	mappingsMode     string
	mappingsRegistry string
	mappingsAll      bool
	mappingsJSON     bool
)

var mappingsCmd = &cobra.Command{
	Use:   "mappings",
	Short: "Query and remove mappings",
}

var mappingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List mappings from the configured registries",
	Long: `List mappings matching the filters from every registry that serves
mappings, or from a single registry with --registry.

Examples:
  skosmap mappings list --from http://dewey.info/class/612/e23/
  skosmap mappings list --to-scheme http://bartoc.org/en/node/533 --limit 20`,
	Args: cobra.NoArgs,
	RunE: runMappingsList,
}

var mappingsRemoveCmd = &cobra.Command{
	Use:   "remove [mapping-uri...]",
	Short: "Remove mappings from a registry",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runMappingsRemove,
}

func init() {
	flags := mappingsListCmd.Flags()
	flags.StringVar(&mappingsQuery.From, "from", "", "concept URI on the from side")
	flags.StringVar(&mappingsQuery.To, "to", "", "concept URI on the to side")
	flags.StringVar(&mappingsQuery.FromScheme, "from-scheme", "", "scheme URI of the from side")
	flags.StringVar(&mappingsQuery.ToScheme, "to-scheme", "", "scheme URI of the to side")
	flags.StringVar(&mappingsQuery.Identifier, "identifier", "", "mapping identifiers separated by |")
	flags.IntVarP(&mappingsQuery.Limit, "limit", "n", 0, "maximum number of results per registry")
	flags.StringVar(&mappingsDir, "direction", "", "forward, backward or both")
	flags.StringVar(&mappingsMode, "mode", "", "and or or")
	flags.StringVar(&mappingsRegistry, "registry", "", "only query this registry URI")
	flags.BoolVar(&mappingsAll, "all", false, "include occurrence based suggestions")
	flags.BoolVar(&mappingsJSON, "json", false, "output mappings as JSON")

	mappingsRemoveCmd.Flags().StringVar(&mappingsRegistry, "registry", "", "registry URI (default: first registry that can remove)")

	mappingsCmd.AddCommand(mappingsListCmd)
	mappingsCmd.AddCommand(mappingsRemoveCmd)
	rootCmd.AddCommand(mappingsCmd)
}

func runMappingsList(cmd *cobra.Command, _ []string) error {
	if mappingEditor == nil {
		return errNotConfigured
	}

	query := mappingsQuery
	query.Direction = domain.Direction(mappingsDir)
	query.Mode = domain.QueryMode(mappingsMode)
	if !query.Direction.IsValid() {
		return fmt.Errorf("%w: direction %q", domain.ErrInvalidInput, mappingsDir)
	}
	if !query.Mode.IsValid() {
		return fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, mappingsMode)
	}
	if mappingsAll && selectionService != nil {
		selected := selectionService.Snapshot()
		query.Selected = &selected
	}

	mappings, err := mappingEditor.GetMappings(cmd.Context(), driving.GetMappingsOptions{
		Query:    query,
		Registry: mappingsRegistry,
		All:      mappingsAll,
	})
	if err != nil {
		return fmt.Errorf("failed to get mappings: %w", err)
	}

	if mappingsJSON {
		data, err := json.MarshalIndent(mappings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode mappings: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	if len(mappings) == 0 {
		cmd.Println("No mappings found.")
		return nil
	}
	slices.SortStableFunc(mappings, func(a, b domain.Mapping) int {
		return display.CompareMappingsByConcepts(a, b, true)
	})
	lang := currentLanguage()
	for _, m := range mappings {
		cmd.Println(display.MappingSummary(m, lang))
		if m.URI != "" {
			cmd.Printf("    %s\n", m.URI)
		}
	}
	cmd.Printf("\n%d mapping(s)\n", len(mappings))
	return nil
}

func runMappingsRemove(cmd *cobra.Command, args []string) error {
	if mappingEditor == nil {
		return errNotConfigured
	}

	targets := make([]domain.Mapping, len(args))
	for i, uri := range args {
		targets[i] = domain.Mapping{URI: uri}
	}

	removed, err := mappingEditor.RemoveMappings(cmd.Context(), targets, mappingsRegistry)
	if err != nil {
		return fmt.Errorf("failed to remove mappings: %w", err)
	}
	for _, m := range removed {
		cmd.Printf("Removed %s\n", m.URI)
	}
	if missing := len(args) - len(removed); missing > 0 {
		cmd.Printf("%d mapping(s) not removed\n", missing)
	}
	return nil
}

// currentLanguage returns the settings locale, or the fallback language
// when settings are unavailable.
func currentLanguage() string {
	if settingsService == nil {
		return display.FallbackLanguage
	}
	if !settingsService.Loaded() {
		if err := settingsService.Load(); err != nil {
			return display.FallbackLanguage
		}
	}
	return settingsService.Get().Language()
}
