package instrumentation

import (
	"crypto/sha256"
	"encoding/hex"
)

// Cardinality management helpers for metrics.
// These functions reduce high-cardinality label values to prevent metrics explosion.
//
// # Warning
//
// High cardinality in metrics can cause:
// - Increased memory usage in Prometheus/metrics backends
// - Slower query performance
// - Higher storage costs
//
// Always use these helpers when recording metrics or logs with document identifiers.

// AnonymizeDocumentID hashes a document ID to a short stable token. This keeps
// log entries correlatable without recording which documents were touched.
//
// Example:
//
//	AnonymizeDocumentID("1ABC123xyz")  // "doc:3f5a..."
//	AnonymizeDocumentID("")            // "unknown"
func AnonymizeDocumentID(id string) string {
	if id == "" {
		return "unknown"
	}

	hash := sha256.Sum256([]byte(id))
	return "doc:" + hex.EncodeToString(hash[:8])
}

// Common operation types for Google API metrics.
// Status and Service constants are defined in config.go.
const (
	OperationList    = "list"
	OperationGet     = "get"
	OperationCreate  = "create"
	OperationUpdate  = "update"
	OperationExport  = "export"
	OperationComment = "comment"
)
