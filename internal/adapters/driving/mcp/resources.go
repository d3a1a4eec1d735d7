package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const uriScheme = "skosmap://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "registries",
		Name:        "registries",
		Description: "Configured mapping registries and their capabilities",
		MIMEType:    "application/json",
	}, s.handleRegistriesResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "mapping",
		Name:        "mapping",
		Description: "The mapping currently being edited",
		MIMEType:    "application/json",
	}, s.handleMappingResource)
}

func (s *Server) handleRegistriesResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type registryInfo struct {
		URI          string            `json:"uri"`
		PrefLabel    map[string]string `json:"prefLabel,omitempty"`
		Capabilities string            `json:"capabilities"`
	}

	registries := s.ports.Editor.Registries()
	infos := make([]registryInfo, len(registries))
	for i, r := range registries {
		infos[i] = registryInfo{URI: r.URI, PrefLabel: r.PrefLabel, Capabilities: r.Capabilities.String()}
	}
	return jsonResource(req.Params.URI, infos)
}

func (s *Server) handleMappingResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	return jsonResource(req.Params.URI, s.ports.Editor.Mapping())
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", uri, err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
