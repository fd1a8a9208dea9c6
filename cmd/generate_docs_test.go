package cmd

import (
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestGetCategoryFromToolName(t *testing.T) {
	tests := []struct {
		name     string
		toolName string
		expected string
	}{
		{
			name:     "document tool",
			toolName: "docs_create_doc",
			expected: "Document Tools",
		},
		{
			name:     "read tool",
			toolName: "docs_read_doc",
			expected: "Document Tools",
		},
		{
			name:     "comment tool",
			toolName: "docs_get_comments",
			expected: "Comment Tools",
		},
		{
			name:     "resolve comment tool",
			toolName: "docs_resolve_comment",
			expected: "Comment Tools",
		},
		{
			name:     "unknown prefix",
			toolName: "other_tool",
			expected: "Other",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := getCategoryFromToolName(tt.toolName)
			if result != tt.expected {
				t.Errorf("getCategoryFromToolName(%q) = %q, want %q", tt.toolName, result, tt.expected)
			}
		})
	}
}

func TestGenerateToolsMarkdown(t *testing.T) {
	tools := []mcp.Tool{
		mcp.NewTool("docs_read_doc",
			mcp.WithDescription("Read a document"),
			mcp.WithString("document_id",
				mcp.Required(),
				mcp.Description("The document ID"),
			),
		),
		mcp.NewTool("docs_get_comments",
			mcp.WithDescription("List comments"),
			mcp.WithString("document_id",
				mcp.Required(),
				mcp.Description("The document ID"),
			),
		),
	}

	markdown := generateToolsMarkdown(tools)

	for _, want := range []string{
		"# MCP Tools Reference",
		"## Document Tools",
		"## Comment Tools",
		"### docs_read_doc",
		"### docs_get_comments",
		"`document_id` (required)",
	} {
		if !strings.Contains(markdown, want) {
			t.Errorf("generated markdown missing %q", want)
		}
	}
}

func TestGenerateToolMarkdown_OptionalArgument(t *testing.T) {
	tool := mcp.NewTool("docs_list_docs",
		mcp.WithDescription("List documents"),
		mcp.WithString("subfolder",
			mcp.Description("Optional subfolder name"),
		),
	)

	markdown := generateToolMarkdown(tool)

	if !strings.Contains(markdown, "`subfolder` (optional)") {
		t.Errorf("expected optional argument in markdown, got:\n%s", markdown)
	}
}

func TestContains(t *testing.T) {
	slice := []string{"title", "content"}

	if !contains(slice, "title") {
		t.Error("expected contains to find title")
	}
	if contains(slice, "subfolder") {
		t.Error("did not expect contains to find subfolder")
	}
}
