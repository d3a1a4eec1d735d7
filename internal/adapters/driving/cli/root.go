// Package cli implements the skosmap command line.
//
// Commands are package level cobra commands registered on rootCmd in init.
// Services are injected by main through a Bootstrap function that runs
// after flags are parsed, or directly with SetServices in tests.
package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
	"github.com/custodia-labs/skosmap/internal/logger"
)

// version is set at build time with -ldflags.
var version = "dev"

// Options are the global flags passed to Bootstrap.
type Options struct {
	ConfigDir string
	DataDir   string
}

// Services are the driving ports the commands call.
type Services struct {
	Editor    driving.MappingEditor
	Commands  driving.CommandRunner
	Selection driving.SelectionService
	Settings  driving.SettingsService

	// Watch reports changes to the settings file; nil disables reloads.
	Watch func(ctx context.Context) (<-chan struct{}, error)
}

// Bootstrap builds the services. The returned close function is called
// once the command has finished, even when it failed.
type Bootstrap func(opts Options) (*Services, func() error, error)

var (
	verbose   bool
	configDir string
	dataDir   string
)

var (
	mappingEditor    driving.MappingEditor
	commandRunner    driving.CommandRunner
	selectionService driving.SelectionService
	settingsService  driving.SettingsService
	watchSettings    func(ctx context.Context) (<-chan struct{}, error)

	bootstrap    Bootstrap
	closeService func() error
)

var errNotConfigured = errors.New("services not configured")

var rootCmd = &cobra.Command{
	Use:   "skosmap",
	Short: "Edit and manage mappings between knowledge organization systems",
	Long: `skosmap creates, edits and stores mappings between concepts of two
concept schemes, such as classifications or thesauri.

Mappings are read from and saved to the configured registries: a local
SQLite registry and any number of remote JSKOS API servers.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.skosmap)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "data directory (default ~/.skosmap/data)")
}

// SetServices injects the driving ports.
func SetServices(s *Services) {
	if s == nil {
		s = &Services{}
	}
	mappingEditor = s.Editor
	commandRunner = s.Commands
	selectionService = s.Selection
	settingsService = s.Settings
	watchSettings = s.Watch
}

// Execute runs the root command. boot may be nil when services were set
// with SetServices.
func Execute(ctx context.Context, boot Bootstrap) error {
	bootstrap = boot
	err := rootCmd.ExecuteContext(ctx)
	if closeErr := teardown(); err == nil {
		err = closeErr
	}
	return err
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	if bootstrap == nil || cmd == versionCmd {
		return nil
	}

	services, closeFn, err := bootstrap(Options{ConfigDir: configDir, DataDir: dataDir})
	if err != nil {
		return err
	}
	SetServices(services)
	closeService = closeFn
	return nil
}

func teardown() error {
	if closeService == nil {
		return nil
	}
	err := closeService()
	closeService = nil
	return err
}
