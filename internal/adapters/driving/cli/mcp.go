package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/skosmap/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search
registries and edit mappings.

By default, the server communicates over stdio using JSON-RPC.
Use --http to serve the streamable HTTP transport instead.

Examples:
  # Stdio mode
  skosmap mcp serve

  # HTTP mode
  skosmap mcp serve --http :8080

Client configuration:
  {
    "mcpServers": {
      "skosmap": {
        "command": "/path/to/skosmap",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().String("http", "", "HTTP listen address (empty = use stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("http")
	if err != nil {
		return fmt.Errorf("getting http flag: %w", err)
	}

	if err := loadSettings(); err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Editor:   mappingEditor,
		Commands: commandRunner,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	if addr != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}
	return server.Run(cmd.Context())
}
