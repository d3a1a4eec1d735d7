package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skosmap/internal/display"
)

var registriesCmd = &cobra.Command{
	Use:   "registries",
	Short: "Inspect configured mapping registries",
}

var registriesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registries in configuration order",
	Args:  cobra.NoArgs,
	RunE:  runRegistriesList,
}

func init() {
	registriesCmd.AddCommand(registriesListCmd)
	rootCmd.AddCommand(registriesCmd)
}

func runRegistriesList(cmd *cobra.Command, _ []string) error {
	if mappingEditor == nil {
		return errNotConfigured
	}

	registries := mappingEditor.Registries()
	if len(registries) == 0 {
		cmd.Println("No registries configured.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "URI\tNAME\tCAPABILITIES")
	for _, r := range registries {
		name, _ := display.LanguageContent(r.PrefLabel, display.FallbackLanguage)
		fmt.Fprintf(w, "%s\t%s\t%s\n", r.URI, name, r.Capabilities)
	}
	return w.Flush()
}
