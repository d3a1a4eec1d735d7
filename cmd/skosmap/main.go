// Command skosmap edits and stores mappings between concept schemes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/skosmap/internal/adapters/driven/config/file"
	"github.com/custodia-labs/skosmap/internal/adapters/driven/provider"
	"github.com/custodia-labs/skosmap/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/skosmap/internal/adapters/driving/cli"
	"github.com/custodia-labs/skosmap/internal/core/services"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx, bootstrap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

// bootstrap wires the configuration file, the SQLite store and the
// registries into the services used by the commands.
func bootstrap(opts cli.Options) (*cli.Services, func() error, error) {
	configStore, err := file.NewConfigStore(opts.ConfigDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open config: %w", err)
	}
	if err := configStore.Load(); err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	store, err := sqlite.NewStore(opts.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open mapping store: %w", err)
	}

	registries, err := provider.Build(configStore.Registries(), store.MappingStore())
	if err != nil {
		_ = store.Close()
		return nil, nil, fmt.Errorf("failed to configure registries: %w", err)
	}

	settings := services.NewSettingsService(configStore)
	editor := services.NewMappingService(services.NewRegistryDirectory(registries...))
	editor.SetLanguage(func() string { return settings.Get().Language() })
	return &cli.Services{
		Editor:    editor,
		Commands:  editor,
		Selection: services.NewSelectionService(),
		Settings:  settings,
		Watch:     configStore.Watch,
	}, store.Close, nil
}
