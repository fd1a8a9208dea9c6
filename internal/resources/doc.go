// Package resources provides MCP resources for exposing workspace data.
// Resources are read-only data sources that MCP clients can fetch, such as
// the document listing of the configured Drive folder.
package resources
