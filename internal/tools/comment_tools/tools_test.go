package comment_tools

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/kuali/docs-mcp/internal/docs"
	"github.com/kuali/docs-mcp/internal/google"
	"github.com/kuali/docs-mcp/internal/server"
)

func newTestServerContext(t *testing.T) *server.ServerContext {
	t.Helper()

	t.Setenv(google.EnvServiceAccountKey, "")
	t.Setenv(google.EnvServiceAccountKeyFile, "")

	sc, err := server.NewServerContext(context.Background(), google.NewEnvCredentialsProvider(), docs.Config{
		RootFolderID: "test-folder",
	})
	if err != nil {
		t.Fatalf("Failed to create server context: %v", err)
	}
	t.Cleanup(func() { _ = sc.Shutdown() })

	return sc
}

func newToolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestRegisterCommentTools(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name     string
		readOnly bool
		wantErr  bool
	}{
		{
			name:     "register in read-write mode",
			readOnly: false,
			wantErr:  false,
		},
		{
			name:     "register in read-only mode",
			readOnly: true,
			wantErr:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
				mcpserver.WithToolCapabilities(true),
			)

			err := RegisterCommentTools(mcpSrv, sc, tt.readOnly)
			if (err != nil) != tt.wantErr {
				t.Errorf("RegisterCommentTools() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterCommentTools_ReadOnlyExcludesWriteTools(t *testing.T) {
	sc := newTestServerContext(t)

	mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
		mcpserver.WithToolCapabilities(true),
	)
	if err := RegisterCommentTools(mcpSrv, sc, true); err != nil {
		t.Fatalf("RegisterCommentTools() error = %v", err)
	}

	registered := map[string]bool{}
	for _, tool := range mcpSrv.ListTools() {
		registered[tool.Tool.Name] = true
	}

	if !registered["docs_get_comments"] {
		t.Error("expected docs_get_comments to be registered")
	}
	for _, name := range []string{"docs_reply_to_comment", "docs_resolve_comment"} {
		if registered[name] {
			t.Errorf("expected write tool %s to be excluded in read-only mode", name)
		}
	}
}

func TestHandleGetComments_MissingDocumentID(t *testing.T) {
	sc := newTestServerContext(t)

	request := newToolRequest("docs_get_comments", map[string]interface{}{})

	result, err := handleGetComments(context.Background(), request, sc)
	if err != nil {
		t.Errorf("handleGetComments() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleGetComments() returned nil result")
	}
	if !result.IsError {
		t.Error("expected error result for missing document_id")
	}
}

func TestHandleReplyToComment_MissingArguments(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{
			name: "missing document_id",
			args: map[string]interface{}{
				"comment_id": "c1",
				"reply":      "done",
			},
		},
		{
			name: "missing comment_id",
			args: map[string]interface{}{
				"document_id": "1ABC123xyz",
				"reply":       "done",
			},
		},
		{
			name: "missing reply",
			args: map[string]interface{}{
				"document_id": "1ABC123xyz",
				"comment_id":  "c1",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := newToolRequest("docs_reply_to_comment", tt.args)

			result, err := handleReplyToComment(context.Background(), request, sc)
			if err != nil {
				t.Errorf("handleReplyToComment() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleReplyToComment() returned nil result")
			}
			if !result.IsError {
				t.Error("expected error result for invalid arguments")
			}
		})
	}
}

func TestHandleResolveComment_InvalidCommentID(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{
			name: "missing comment_id",
			args: map[string]interface{}{
				"document_id": "1ABC123xyz",
			},
		},
		{
			name: "empty comment_id",
			args: map[string]interface{}{
				"document_id": "1ABC123xyz",
				"comment_id":  "",
			},
		},
		{
			name: "empty array",
			args: map[string]interface{}{
				"document_id": "1ABC123xyz",
				"comment_id":  []interface{}{},
			},
		},
		{
			name: "array with non-string element",
			args: map[string]interface{}{
				"document_id": "1ABC123xyz",
				"comment_id":  []interface{}{"c1", 42},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := newToolRequest("docs_resolve_comment", tt.args)

			result, err := handleResolveComment(context.Background(), request, sc)
			if err != nil {
				t.Errorf("handleResolveComment() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleResolveComment() returned nil result")
			}
			if !result.IsError {
				t.Error("expected error result for invalid comment_id")
			}
		})
	}
}

func TestHandleGetComments_NoCredentials(t *testing.T) {
	sc := newTestServerContext(t)

	request := newToolRequest("docs_get_comments", map[string]interface{}{
		"document_id": "1ABC123xyz",
	})

	result, err := handleGetComments(context.Background(), request, sc)
	if err != nil {
		t.Errorf("handleGetComments() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleGetComments() returned nil result")
	}
	if !result.IsError {
		t.Error("expected error result when credentials are missing")
	}
	var text strings.Builder
	for _, content := range result.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			text.WriteString(tc.Text)
		}
	}
	if !strings.Contains(text.String(), "Docs client") {
		t.Errorf("expected client error message, got %q", text.String())
	}
}
