// Package comment_tools provides MCP tools for Google Docs comment
// operations: listing comment threads, replying, and resolving.
//
// docs_resolve_comment accepts either a single comment ID or an array of
// IDs, processed as a batch with per-comment success and failure results.
// Write tools are only registered when the server runs with writes enabled.
package comment_tools
