package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kuali/docs-mcp/internal/server"
)

// RegisterDocumentResources registers Drive folder resources.
// These resources expose the contents of the configured root folder.
func RegisterDocumentResources(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Register document listing resource
	documentsResource := mcp.NewResource(
		"drive://documents",
		"Drive Documents",
		mcp.WithResourceDescription("Google Docs in the configured Drive folder, most recently modified first"),
		mcp.WithMIMEType("application/json"),
	)

	s.AddResource(documentsResource, func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		return handleDocumentList(ctx, request, sc)
	})

	return nil
}

// handleDocumentList returns the documents in the configured root folder
func handleDocumentList(ctx context.Context, request mcp.ReadResourceRequest, sc *server.ServerContext) ([]mcp.ResourceContents, error) {
	client, err := sc.DocsClient()
	if err != nil {
		return nil, fmt.Errorf("no Docs client available: %w", err)
	}

	documents, err := client.ListDocuments(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	listData := map[string]interface{}{
		"folder":    sc.RootFolderID(),
		"count":     len(documents),
		"documents": documents,
	}

	jsonData, err := json.MarshalIndent(listData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document list: %w", err)
	}

	return []mcp.ResourceContents{
		&mcp.TextResourceContents{
			URI:      request.Params.URI,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}
