package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/skosmap/internal/core/domain"
	"github.com/custodia-labs/skosmap/internal/core/ports/driving"
	"github.com/custodia-labs/skosmap/internal/display"
)

// GetMappingInput is the input schema for the get_mapping tool.
type GetMappingInput struct{}

// MappingOutput describes one mapping.
type MappingOutput struct {
	Summary string         `json:"summary"`
	Mapping domain.Mapping `json:"mapping"`
}

// EditMappingInput is the input schema for the edit_mapping tool.
type EditMappingInput struct {
	Commands []string `json:"commands" jsonschema:"editor commands applied in order, e.g. 'add left <concept-uri> <scheme-uri>'"`
}

// LoadMappingInput is the input schema for the load_mapping tool.
type LoadMappingInput struct {
	URI      string `json:"uri" jsonschema:"URI of the mapping to load"`
	Registry string `json:"registry,omitempty" jsonschema:"registry URI to load from (default: all registries in order)"`
}

// SearchMappingsInput is the input schema for the search_mappings tool.
type SearchMappingsInput struct {
	From       string `json:"from,omitempty" jsonschema:"concept URI on the from side"`
	To         string `json:"to,omitempty" jsonschema:"concept URI on the to side"`
	FromScheme string `json:"from_scheme,omitempty" jsonschema:"scheme URI of the from side"`
	ToScheme   string `json:"to_scheme,omitempty" jsonschema:"scheme URI of the to side"`
	Direction  string `json:"direction,omitempty" jsonschema:"forward, backward or both"`
	Mode       string `json:"mode,omitempty" jsonschema:"and or or"`
	Identifier string `json:"identifier,omitempty" jsonschema:"mapping identifiers separated by |"`
	Registry   string `json:"registry,omitempty" jsonschema:"only query this registry URI"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum number of results per registry (default 20)"`
}

// SearchMappingsOutput is the output schema for the search_mappings tool.
type SearchMappingsOutput struct {
	Mappings []MappingOutput `json:"mappings"`
	Count    int             `json:"count"`
}

// SaveMappingInput is the input schema for the save_mapping tool.
type SaveMappingInput struct {
	Registry string `json:"registry,omitempty" jsonschema:"registry URI to save to (default: the mapping's registry)"`
}

// RemoveMappingsInput is the input schema for the remove_mappings tool.
type RemoveMappingsInput struct {
	URIs     []string `json:"uris" jsonschema:"URIs of the mappings to remove"`
	Registry string   `json:"registry,omitempty" jsonschema:"registry URI (default: first registry that can remove)"`
}

// RemoveMappingsOutput is the output schema for the remove_mappings tool.
type RemoveMappingsOutput struct {
	Removed []string `json:"removed"`
}

const defaultSearchLimit = 20

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_mapping",
		Description: "Show the mapping currently being edited",
	}, s.handleGetMapping)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "edit_mapping",
		Description: "Apply editor commands to the working mapping. Commands:\n" + s.ports.Commands.Usage(),
	}, s.handleEditMapping)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_mapping",
		Description: "Load a stored mapping by URI into the editor",
	}, s.handleLoadMapping)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "search_mappings",
		Description: "Search mappings in the configured registries",
	}, s.handleSearchMappings)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_mapping",
		Description: "Save the working mapping to a registry",
	}, s.handleSaveMapping)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "remove_mappings",
		Description: "Remove mappings from a registry",
	}, s.handleRemoveMappings)
}

func (s *Server) language() string {
	if s.ports.Settings == nil || !s.ports.Settings.Loaded() {
		return display.FallbackLanguage
	}
	return s.ports.Settings.Get().Language()
}

func (s *Server) describe(m domain.Mapping) MappingOutput {
	return MappingOutput{Summary: display.MappingSummary(m, s.language()), Mapping: m}
}

func (s *Server) handleGetMapping(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ GetMappingInput,
) (*mcp.CallToolResult, MappingOutput, error) {
	return nil, s.describe(s.ports.Editor.Mapping()), nil
}

func (s *Server) handleEditMapping(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input EditMappingInput,
) (*mcp.CallToolResult, MappingOutput, error) {
	for i, line := range input.Commands {
		if err := s.ports.Commands.Run(ctx, line); err != nil {
			return nil, MappingOutput{}, fmt.Errorf("command %d %q: %w", i+1, line, err)
		}
	}
	return nil, s.describe(s.ports.Editor.Mapping()), nil
}

func (s *Server) handleLoadMapping(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input LoadMappingInput,
) (*mcp.CallToolResult, MappingOutput, error) {
	loaded, err := s.ports.Editor.LoadMapping(ctx, input.URI, input.Registry)
	if err != nil {
		return nil, MappingOutput{}, err
	}
	return nil, s.describe(*loaded), nil
}

func (s *Server) handleSearchMappings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SearchMappingsInput,
) (*mcp.CallToolResult, SearchMappingsOutput, error) {
	query := domain.MappingQuery{
		From:       input.From,
		To:         input.To,
		FromScheme: input.FromScheme,
		ToScheme:   input.ToScheme,
		Direction:  domain.Direction(input.Direction),
		Mode:       domain.QueryMode(input.Mode),
		Identifier: input.Identifier,
		Limit:      input.Limit,
	}
	if !query.Direction.IsValid() {
		return nil, SearchMappingsOutput{}, fmt.Errorf("%w: direction %q", domain.ErrInvalidInput, input.Direction)
	}
	if !query.Mode.IsValid() {
		return nil, SearchMappingsOutput{}, fmt.Errorf("%w: mode %q", domain.ErrInvalidInput, input.Mode)
	}
	if query.Limit <= 0 {
		query.Limit = defaultSearchLimit
	}

	mappings, err := s.ports.Editor.GetMappings(ctx, driving.GetMappingsOptions{
		Query:    query,
		Registry: input.Registry,
	})
	if err != nil {
		return nil, SearchMappingsOutput{}, err
	}

	output := SearchMappingsOutput{
		Mappings: make([]MappingOutput, len(mappings)),
		Count:    len(mappings),
	}
	for i, m := range mappings {
		output.Mappings[i] = s.describe(m)
	}
	return nil, output, nil
}

func (s *Server) handleSaveMapping(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input SaveMappingInput,
) (*mcp.CallToolResult, MappingOutput, error) {
	if s.ports.Settings != nil && len(s.ports.Editor.Mapping().Creator) == 0 {
		if creator := s.ports.Settings.Creator(); !creator.IsEmpty() {
			s.ports.Editor.SetCreator([]domain.Agent{creator})
		}
	}

	saved, err := s.ports.Editor.SaveCurrent(ctx, input.Registry)
	if err != nil {
		return nil, MappingOutput{}, err
	}
	if saved == nil {
		return nil, MappingOutput{}, fmt.Errorf("%w: no registry can save mappings", domain.ErrRegistryUnavailable)
	}
	return nil, s.describe(*saved), nil
}

func (s *Server) handleRemoveMappings(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RemoveMappingsInput,
) (*mcp.CallToolResult, RemoveMappingsOutput, error) {
	targets := make([]domain.Mapping, len(input.URIs))
	for i, uri := range input.URIs {
		targets[i] = domain.Mapping{URI: uri}
	}

	removed, err := s.ports.Editor.RemoveMappings(ctx, targets, input.Registry)
	if err != nil {
		return nil, RemoveMappingsOutput{}, err
	}

	output := RemoveMappingsOutput{Removed: make([]string, len(removed))}
	for i, m := range removed {
		output.Removed[i] = m.URI
	}
	return nil, output, nil
}
