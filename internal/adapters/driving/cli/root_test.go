package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Flags(t *testing.T) {
	for _, name := range []string{"verbose", "config-dir", "data-dir"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"version", "settings", "registries", "mappings", "edit", "tui", "mcp"} {
		assert.True(t, names[want], "missing command %s", want)
	}
}

func TestCommands_NotConfigured(t *testing.T) {
	SetServices(nil)
	t.Cleanup(resetFlags)

	for _, args := range [][]string{
		{"registries", "list"},
		{"mappings", "list"},
		{"settings", "show"},
		{"edit"},
	} {
		_, err := execute(t, "", args...)
		assert.ErrorIs(t, err, errNotConfigured, "%v", args)
	}
}

func TestExecute_Bootstrap(t *testing.T) {
	ts := setupServices(t)
	SetServices(nil)

	var gotOpts Options
	closed := false
	boot := func(opts Options) (*Services, func() error, error) {
		gotOpts = opts
		return &Services{Editor: ts.editor, Commands: ts.editor, Settings: ts.settings}, func() error {
			closed = true
			return nil
		}, nil
	}

	rootCmd.SetArgs([]string{"--config-dir", "/tmp/conf", "registries", "list"})
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		configDir = ""
		bootstrap = nil
	})

	require.NoError(t, Execute(context.Background(), boot))
	assert.Equal(t, "/tmp/conf", gotOpts.ConfigDir)
	assert.True(t, closed)
}

func TestExecute_BootstrapError(t *testing.T) {
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		SetServices(nil)
		bootstrap = nil
	})
	boom := errors.New("boom")
	rootCmd.SetArgs([]string{"registries", "list"})

	err := Execute(context.Background(), func(Options) (*Services, func() error, error) {
		return nil, nil, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestExecute_VersionSkipsBootstrap(t *testing.T) {
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		bootstrap = nil
	})
	rootCmd.SetArgs([]string{"version"})

	err := Execute(context.Background(), func(Options) (*Services, func() error, error) {
		t.Fatal("bootstrap must not run for version")
		return nil, nil, nil
	})

	assert.NoError(t, err)
}
