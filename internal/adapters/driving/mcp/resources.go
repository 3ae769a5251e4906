package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for leetgen resources.
	uriScheme = "leetgen://"

	databasesURI = uriScheme + "databases"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         databasesURI,
		Name:        "databases",
		Description: "Summaries of all loaded question databases",
		MIMEType:    "application/json",
	}, s.handleDatabasesResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: databasesURI + "/{name}",
		Name:        "database",
		Description: "Summary of one question database",
		MIMEType:    "application/json",
	}, s.handleDatabaseResource)
}

// handleDatabasesResource returns a summary of every loaded database.
func (s *Server) handleDatabasesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names, err := s.ports.Generator.ListDatabases(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing databases: %w", err)
	}

	infos := make([]domain.DatabaseInfo, 0, len(names))
	for _, name := range names {
		info, err := s.ports.Generator.Describe(ctx, name)
		if err != nil {
			return nil, fmt.Errorf("describing %s: %w", name, err)
		}
		infos = append(infos, *info)
	}

	return jsonResource(req.Params.URI, infos)
}

// handleDatabaseResource returns the summary of the database named in the URI.
func (s *Server) handleDatabaseResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	name := extractDatabaseName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	info, err := s.ports.Generator.Describe(ctx, name)
	if errors.Is(err, domain.ErrDatabaseNotFound) {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	if err != nil {
		return nil, fmt.Errorf("describing %s: %w", name, err)
	}

	return jsonResource(req.Params.URI, info)
}

func jsonResource(uri string, v any) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling resource: %w", err)
	}
	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// extractDatabaseName extracts the name from leetgen://databases/{name}.
func extractDatabaseName(uri string) string {
	const prefix = databasesURI + "/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}
	name := strings.TrimPrefix(uri, prefix)
	if strings.Contains(name, "/") {
		return ""
	}
	return name
}
