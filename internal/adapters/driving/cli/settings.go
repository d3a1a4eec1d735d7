package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skosmap/internal/core/domain"
)

var settingsJSON bool

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage editor settings",
	Long: `View and change the persisted editor settings.

Settings are stored under [editor] in the configuration file.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Change one setting and persist it.

Booleans accept true/false, maps are JSON objects and favorite_schemes is a
comma separated list of scheme URIs.`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsCreatorCmd = &cobra.Command{
	Use:   "creator",
	Short: "Show the creator attached to new mappings",
	Args:  cobra.NoArgs,
	RunE:  runSettingsCreator,
}

func init() {
	settingsShowCmd.Flags().BoolVar(&settingsJSON, "json", false, "output settings as JSON")
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsCreatorCmd)
	rootCmd.AddCommand(settingsCmd)
}

func loadSettings() error {
	if settingsService == nil {
		return errNotConfigured
	}
	if settingsService.Loaded() {
		return nil
	}
	return settingsService.Load()
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if err := loadSettings(); err != nil {
		return err
	}
	settings := settingsService.Get()

	if settingsJSON {
		data, err := json.MarshalIndent(settings, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	values, err := settingValues(settings)
	if err != nil {
		return err
	}
	for _, key := range domain.AllSettingKeys() {
		cmd.Printf("%-38s %s\n", key, values[key])
	}
	return nil
}

// settingValues renders each setting as the text accepted by "settings set".
func settingValues(settings domain.EditorSettings) (map[domain.SettingKey]string, error) {
	data, err := json.Marshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to encode settings: %w", err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	values := make(map[domain.SettingKey]string, len(fields))
	for _, key := range domain.AllSettingKeys() {
		raw := fields[jsonFieldName(key)]
		var text string
		switch {
		case key == domain.SettingFavoriteSchemes:
			if settings.FavoriteSchemes == nil {
				text = "(unset)"
			} else {
				text = strings.Join(settings.FavoriteSchemes, ",")
			}
		case json.Unmarshal(raw, &text) == nil:
		default:
			text = string(raw)
		}
		values[key] = text
	}
	return values, nil
}

// jsonFieldName converts a snake_case setting key into the camelCase JSON
// field of domain.EditorSettings.
func jsonFieldName(key domain.SettingKey) string {
	if key == domain.SettingCreatorURL {
		return "creatorUrl"
	}
	if key == domain.SettingConceptDetailDoNotTruncate {
		return "conceptDetailDoNotTruncateNotes"
	}
	parts := strings.Split(string(key), "_")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if err := loadSettings(); err != nil {
		return err
	}
	key := domain.SettingKey(args[0])
	if err := settingsService.Set(key, args[1]); err != nil {
		return fmt.Errorf("failed to change %s: %w", key, err)
	}
	cmd.Printf("Set %s\n", key)
	return nil
}

func runSettingsCreator(cmd *cobra.Command, _ []string) error {
	if err := loadSettings(); err != nil {
		return err
	}
	settings := settingsService.Get()
	creator := settingsService.Creator()

	name := creator.PrefLabel[settings.Language()]
	if name == "" {
		name = "(not set)"
	}
	cmd.Printf("Name: %s\n", name)
	if creator.URL != "" {
		cmd.Printf("URL:  %s\n", creator.URL)
	}
	return nil
}
