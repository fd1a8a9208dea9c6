package comment_tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kuali/docs-mcp/internal/docs"
	"github.com/kuali/docs-mcp/internal/server"
	"github.com/kuali/docs-mcp/internal/tools/batch"
	"github.com/kuali/docs-mcp/internal/tools/common"
)

// RegisterCommentTools registers all document comment tools with the MCP server
func RegisterCommentTools(s *mcpserver.MCPServer, sc *server.ServerContext, readOnly bool) error {
	// Get comments tool
	getCommentsTool := mcp.NewTool("docs_get_comments",
		mcp.WithDescription("List all active comment threads on a Google Doc, including replies and quoted text"),
		mcp.WithString("document_id",
			mcp.Required(),
			mcp.Description("The document ID or full Google Docs URL"),
		),
	)

	s.AddTool(getCommentsTool, common.InstrumentedToolHandlerWithService(
		"docs_get_comments", "drive", "comment", sc,
		func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return handleGetComments(ctx, request, sc)
		}))

	// Write tools (only available with !readOnly)
	if !readOnly {
		// Reply to comment tool
		replyTool := mcp.NewTool("docs_reply_to_comment",
			mcp.WithDescription("Reply to a comment thread on a Google Doc"),
			mcp.WithString("document_id",
				mcp.Required(),
				mcp.Description("The document ID or full Google Docs URL"),
			),
			mcp.WithString("comment_id",
				mcp.Required(),
				mcp.Description("The ID of the comment thread to reply to"),
			),
			mcp.WithString("reply",
				mcp.Required(),
				mcp.Description("The reply text"),
			),
		)

		s.AddTool(replyTool, common.InstrumentedToolHandlerWithService(
			"docs_reply_to_comment", "drive", "comment", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleReplyToComment(ctx, request, sc)
			}))

		// Resolve comment tool (single ID or array of IDs)
		resolveTool := mcp.NewTool("docs_resolve_comment",
			mcp.WithDescription("Mark one or more comment threads on a Google Doc as resolved. Accepts a single comment ID or an array of IDs"),
			mcp.WithString("document_id",
				mcp.Required(),
				mcp.Description("The document ID or full Google Docs URL"),
			),
			mcp.WithString("comment_id",
				mcp.Required(),
				mcp.Description("Comment ID or array of comment IDs to resolve"),
			),
		)

		s.AddTool(resolveTool, common.InstrumentedToolHandlerWithService(
			"docs_resolve_comment", "drive", "comment", sc,
			func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return handleResolveComment(ctx, request, sc)
			}))
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

func handleGetComments(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["document_id"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	client, err := getDocsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	comments, err := client.ListComments(ctx, documentID)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to get comments: %v", err)), nil
	}

	jsonBytes, err := json.MarshalIndent(comments, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize comments: %v", err)), nil
	}

	result := fmt.Sprintf("Found %d comment thread(s):\n%s", len(comments), string(jsonBytes))
	return mcp.NewToolResultText(result), nil
}

func handleReplyToComment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["document_id"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	commentID, ok := args["comment_id"].(string)
	if !ok || commentID == "" {
		return mcp.NewToolResultError("comment_id is required"), nil
	}

	reply, ok := args["reply"].(string)
	if !ok || reply == "" {
		return mcp.NewToolResultError("reply is required"), nil
	}

	client, err := getDocsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if err := client.ReplyToComment(ctx, documentID, commentID, reply); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to reply to comment: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Reply added to comment %s", commentID)), nil
}

func handleResolveComment(ctx context.Context, request mcp.CallToolRequest, sc *server.ServerContext) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	documentID, ok := args["document_id"].(string)
	if !ok || documentID == "" {
		return mcp.NewToolResultError("document_id is required"), nil
	}

	commentIDs, err := batch.ParseStringOrArray(args["comment_id"], "comment_id")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	client, err := getDocsClient(sc)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	results := batch.ProcessBatch(commentIDs, func(commentID string) (string, error) {
		if err := client.ResolveComment(ctx, documentID, commentID); err != nil {
			return "", err
		}
		return "resolved", nil
	})

	return mcp.NewToolResultText(batch.FormatResults(results)), nil
}
