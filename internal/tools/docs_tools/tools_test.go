package docs_tools

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

	// No credentials in the environment, so client creation fails on use
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

func TestRegisterDocsTools(t *testing.T) {
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

			err := RegisterDocsTools(mcpSrv, sc, tt.readOnly)
			if (err != nil) != tt.wantErr {
				t.Errorf("RegisterDocsTools() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegisterDocsTools_ReadOnlyExcludesWriteTools(t *testing.T) {
	sc := newTestServerContext(t)

	mcpSrv := mcpserver.NewMCPServer("test-server", "1.0.0",
		mcpserver.WithToolCapabilities(true),
	)
	if err := RegisterDocsTools(mcpSrv, sc, true); err != nil {
		t.Fatalf("RegisterDocsTools() error = %v", err)
	}

	registered := map[string]bool{}
	for _, tool := range mcpSrv.ListTools() {
		registered[tool.Tool.Name] = true
	}

	for _, name := range []string{"docs_read_doc", "docs_list_docs", "docs_get_document_metadata"} {
		if !registered[name] {
			t.Errorf("expected read tool %s to be registered", name)
		}
	}
	for _, name := range []string{"docs_create_doc", "docs_update_doc"} {
		if registered[name] {
			t.Errorf("expected write tool %s to be excluded in read-only mode", name)
		}
	}
}

func TestHandleReadDoc_MissingDocumentID(t *testing.T) {
	sc := newTestServerContext(t)

	request := newToolRequest("docs_read_doc", map[string]interface{}{})

	result, err := handleReadDoc(context.Background(), request, sc)
	if err != nil {
		t.Errorf("handleReadDoc() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleReadDoc() returned nil result")
	}
	if !result.IsError {
		t.Error("expected error result for missing document_id")
	}
}

func TestHandleReadDoc_NoCredentials(t *testing.T) {
	sc := newTestServerContext(t)

	request := newToolRequest("docs_read_doc", map[string]interface{}{
		"document_id": "1ABC123xyz",
	})

	result, err := handleReadDoc(context.Background(), request, sc)
	if err != nil {
		t.Errorf("handleReadDoc() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleReadDoc() returned nil result")
	}
	if !result.IsError {
		t.Error("expected error result when credentials are missing")
	}
}

func TestHandleCreateDoc_MissingArguments(t *testing.T) {
	sc := newTestServerContext(t)

	tests := []struct {
		name string
		args map[string]interface{}
	}{
		{
			name: "missing title",
			args: map[string]interface{}{
				"content": "# Title",
			},
		},
		{
			name: "empty title",
			args: map[string]interface{}{
				"title":   "",
				"content": "# Title",
			},
		},
		{
			name: "missing content",
			args: map[string]interface{}{
				"title": "Weekly report",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := newToolRequest("docs_create_doc", tt.args)

			result, err := handleCreateDoc(context.Background(), request, sc)
			if err != nil {
				t.Errorf("handleCreateDoc() unexpected error = %v", err)
			}
			if result == nil {
				t.Fatal("handleCreateDoc() returned nil result")
			}
			if !result.IsError {
				t.Error("expected error result for invalid arguments")
			}
		})
	}
}

func TestHandleUpdateDoc_MissingArguments(t *testing.T) {
	sc := newTestServerContext(t)

	request := newToolRequest("docs_update_doc", map[string]interface{}{
		"content": "updated",
	})

	result, err := handleUpdateDoc(context.Background(), request, sc)
	if err != nil {
		t.Errorf("handleUpdateDoc() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleUpdateDoc() returned nil result")
	}
	if !result.IsError {
		t.Error("expected error result for missing document_id")
	}
}

func TestHandleListDocs_NoCredentials(t *testing.T) {
	sc := newTestServerContext(t)

	request := newToolRequest("docs_list_docs", map[string]interface{}{
		"subfolder": "reports",
	})

	result, err := handleListDocs(context.Background(), request, sc)
	if err != nil {
		t.Errorf("handleListDocs() unexpected error = %v", err)
	}
	if result == nil {
		t.Fatal("handleListDocs() returned nil result")
	}
	if !result.IsError {
		t.Error("expected error result when credentials are missing")
	}
	if text := resultText(result); !strings.Contains(text, "Docs client") {
		t.Errorf("expected client error message, got %q", text)
	}
}

func resultText(result *mcp.CallToolResult) string {
	var sb strings.Builder
	for _, content := range result.Content {
		if tc, ok := content.(mcp.TextContent); ok {
			sb.WriteString(tc.Text)
		}
	}
	return sb.String()
}
