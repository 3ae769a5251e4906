package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/exponent-labs/leetgen/internal/core/domain"
)

// makeReadResourceRequest creates a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: uri},
	}
}

func TestExtractDatabaseName(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{"valid database URI", "leetgen://databases/main.json", "main.json"},
		{"invalid prefix", "file://databases/main.json", ""},
		{"collection URI", "leetgen://databases", ""},
		{"nested path", "leetgen://databases/a/b", ""},
		{"empty URI", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDatabaseName(tt.uri))
		})
	}
}

func TestServer_handleDatabasesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists every database summary", func(t *testing.T) {
		server := newTestServer(t, &mockGenerator{
			names: []string{"main.json", "extra.json"},
			infos: testInfos(),
		}, nil)

		result, err := server.handleDatabasesResource(ctx, makeReadResourceRequest(databasesURI))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "application/json", result.Contents[0].MIMEType)

		var infos []domain.DatabaseInfo
		require.NoError(t, json.Unmarshal([]byte(result.Contents[0].Text), &infos))
		require.Len(t, infos, 2)
		assert.Equal(t, "Main", infos[0].Name)
		assert.Equal(t, "extra.json", infos[1].Name)
	})

	t.Run("empty catalog", func(t *testing.T) {
		server := newTestServer(t, &mockGenerator{}, nil)

		result, err := server.handleDatabasesResource(ctx, makeReadResourceRequest(databasesURI))
		require.NoError(t, err)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("list error", func(t *testing.T) {
		server := newTestServer(t, &mockGenerator{err: errors.New("store down")}, nil)

		_, err := server.handleDatabasesResource(ctx, makeReadResourceRequest(databasesURI))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "store down")
	})
}

func TestServer_handleDatabaseResource(t *testing.T) {
	ctx := context.Background()
	server := newTestServer(t, &mockGenerator{infos: testInfos()}, nil)

	t.Run("returns one summary", func(t *testing.T) {
		result, err := server.handleDatabaseResource(ctx, makeReadResourceRequest(databasesURI+"/main.json"))
		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, `"total_questions": 3`)
	})

	t.Run("unknown database is not found", func(t *testing.T) {
		_, err := server.handleDatabaseResource(ctx, makeReadResourceRequest(databasesURI+"/nope.json"))
		require.Error(t, err)
	})

	t.Run("malformed URI is not found", func(t *testing.T) {
		_, err := server.handleDatabaseResource(ctx, makeReadResourceRequest("leetgen://other"))
		require.Error(t, err)
	})
}
