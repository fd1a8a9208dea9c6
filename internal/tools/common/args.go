package common

import (
	"github.com/kuali/docs-mcp/internal/docs"
)

// GetFolderFromArgs extracts the subfolder name from request arguments.
// Returns "" when no subfolder was provided, which means the configured
// root folder is used.
func GetFolderFromArgs(args map[string]interface{}) string {
	if folderVal, ok := args["subfolder"].(string); ok {
		return folderVal
	}
	return ""
}

// GetDocumentFromArgs extracts the document ID from request arguments.
// Accepts either a bare document ID or a full Google Docs URL.
// Returns "" when no document argument was provided.
func GetDocumentFromArgs(args map[string]interface{}) string {
	docVal, ok := args["document_id"].(string)
	if !ok || docVal == "" {
		return ""
	}
	return docs.ParseDocumentID(docVal)
}
