package docs_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kuali/docs-mcp/internal/server"
	"github.com/kuali/docs-mcp/internal/tools/common"
)

// registerReadTools registers document read tools
func registerReadTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Read document tool
	readDocTool := mcp.NewTool("docs_read_doc",
		mcp.WithDescription("Read a Google Doc and return its content as Markdown"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The document ID or full Google Docs URL"),
		),
	)

	s.AddTool(readDocTool, common.InstrumentedToolHandlerWithService(
		"docs_read_doc", "drive", "export", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleReadDoc(ctx, request, sc)
		}))

	// List documents tool
	listDocsTool := mcp.NewTool("docs_list_docs",
		mcp.WithDescription("List Google Docs in the configured Drive folder, most recently modified first"),
		mcp.WithString("subfolder",
			mcp.Description("Optional subfolder name to list documents from instead of the root folder"),
		),
	)

	s.AddTool(listDocsTool, common.InstrumentedToolHandlerWithService(
		"docs_list_docs", "drive", "list", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleListDocs(ctx, request, sc)
		}))

	// Get document metadata tool
	getMetadataTool := mcp.NewTool("docs_get_document_metadata",
		mcp.WithDescription("Get Drive metadata for a Google Doc (name, timestamps, owners)"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The document ID or full Google Docs URL"),
		),
	)

	s.AddTool(getMetadataTool, common.InstrumentedToolHandlerWithService(
		"docs_get_document_metadata", "drive", "get", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetMetadata(ctx, request, sc)
		}))

	return nil
}

func handleReadDoc(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["document_id"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	client, err := getDocsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	content, err := client.ReadDocument(ctx, documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to read document: %v", err)), nil
	}

	return mcp.NewToolResultText(content), nil
}

func handleListDocs(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	subfolder := common.GetFolderFromArgs(args)

	client, err := getDocsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	documents, err := client.ListDocuments(ctx, subfolder)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list documents: %v", err)), nil
	}

	jsonBytes, err := json.MarshalIndent(documents, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize documents: %v", err)), nil
	}

	result := fmt.Sprintf("Found %d document(s):\n%s", len(documents), string(jsonBytes))
	return mcp.NewToolResultText(result), nil
}

func handleGetMetadata(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["document_id"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	client, err := getDocsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	metadata, err := client.GetDocumentMetadata(ctx, documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get metadata: %v", err)), nil
	}

	jsonBytes, err := json.MarshalIndent(metadata, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize metadata: %v", err)), nil
	}

	result := fmt.Sprintf("Document metadata:\n%s", string(jsonBytes))
	return mcp.NewToolResultText(result), nil
}
