// Package docs_tools provides MCP tools for Google Docs document operations.
//
// Read tools are always registered. Write tools (docs_create_doc,
// docs_update_doc) are only registered when the server runs with writes
// enabled. Documents are created from Markdown, which is compiled to Docs
// API batchUpdate requests, and read back as Markdown via HTML export.
package docs_tools
