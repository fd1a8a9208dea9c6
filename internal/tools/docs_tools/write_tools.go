package docs_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kuali/docs-mcp/internal/docs"
	"github.com/kuali/docs-mcp/internal/server"
	"github.com/kuali/docs-mcp/internal/tools/common"
)

// registerWriteTools registers document write tools
func registerWriteTools(s *mcpserver.MCPServer, sc *server.ServerContext) error {
	// Create document tool
	createDocTool := mcp.NewTool("docs_create_doc",
		mcp.WithDescription("Create a new Google Doc from Markdown content in the configured Drive folder"),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("The title of the new document"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Markdown content for the document. Supports headings (#, ##, ###), bullets (- or *), bold (**), italic (*) and code spans (`)"),
		),
		mcp.WithString("subfolder",
			mcp.Description("Optional subfolder name under the root folder. Created if it does not exist"),
		),
	)

	s.AddTool(createDocTool, common.InstrumentedToolHandlerWithService(
		"docs_create_doc", "docs", "create", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleCreateDoc(ctx, request, sc)
		}))

	// Update document tool
	updateDocTool := mcp.NewTool("docs_update_doc",
		mcp.WithDescription("Replace the content of an existing Google Doc with new Markdown content"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The document ID or full Google Docs URL"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Markdown content that replaces the current document body"),
		),
	)

	s.AddTool(updateDocTool, common.InstrumentedToolHandlerWithService(
		"docs_update_doc", "docs", "update", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleUpdateDoc(ctx, request, sc)
		}))

	return nil
}

// recordCompile records compiler metrics for a Markdown payload.
func recordCompile(ctx context.Context, sc *server.ServerContext, content string) {
	if metrics := sc.Metrics(); metrics != nil {
		metrics.RecordMarkdownCompile(ctx, len(docs.MarkdownToRequests(content)))
	}
}

func handleCreateDoc(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	title, ok := args["title"].(string)
	if !ok || title == "" {
		return mcp.NewToolResultError("title is required"), nil
	}

	content, ok := args["content"].(string)
	if !ok {
		return mcp.NewToolResultError("content is required"), nil
	}

	subfolder := common.GetFolderFromArgs(args)

	client, err := getDocsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	info, err := client.CreateDocument(ctx, title, content, subfolder)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to create document: %v", err)), nil
	}
	recordCompile(ctx, sc, content)

	jsonBytes, _ := json.MarshalIndent(info, "", "  ")
	result := fmt.Sprintf("Document created successfully:\n%s", string(jsonBytes))
	return mcp.NewToolResultText(result), nil
}

func handleUpdateDoc(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["document_id"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	content, ok := args["content"].(string)
	if !ok {
		return mcp.NewToolResultError("content is required"), nil
	}

	client, err := getDocsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.UpdateDocument(ctx, documentID, content); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to update document: %v", err)), nil
	}
	recordCompile(ctx, sc, content)

	result := fmt.Sprintf("Document %s updated successfully", docs.ParseDocumentID(documentID))
	return mcp.NewToolResultText(result), nil
}
