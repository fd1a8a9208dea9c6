package docs_tools

import (
	"fmt"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kuali/docs-mcp/internal/docs"
	"github.com/kuali/docs-mcp/internal/server"
)

// RegisterDocsTools registers all Google Docs document tools with the MCP server
func RegisterDocsTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Register read tools (always available)
	if err := registerReadTools(s, sc); err != nil {
		return fmt.Errorf("failed to register read tools: %w", err)
	}

	// Register write tools (only available with !readOnly)
	if !readOnly {
		if err := registerWriteTools(s, sc); err != nil {
			return fmt.Errorf("failed to register write tools: %w", err)
		}
	}

	return nil
}

// getDocsClient retrieves the lazily created Docs client from the server context
func getDocsClient(sc *server.ServerContext) (*docs.Client, error) {
	client, err := sc.DocsClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Docs client: %w", err)
	}
	return client, nil
}
