// Package logging provides structured logging utilities for the docs-mcp server.
//
// This package centralizes logging patterns to ensure consistent, structured logging
// throughout the codebase using the standard library's slog package.
//
// # Key Features
//
//   - Structured logging with slog
//   - Document ID anonymization
//   - Consistent attribute naming across the codebase
//   - Credential sanitization for safe debug output
//
// # Usage Patterns
//
// Create a logger with standard attributes:
//
//	logger := logging.WithOperation(slog.Default(), "docs.create")
//	logger.Info("document created",
//	    logging.Status("success"))
//
// Anonymize document identifiers before logging:
//
//	logger.Info("document updated",
//	    logging.Document(docID))
//
// # Security Considerations
//
// Document IDs are hashed to allow correlation without recording which
// documents a deployment touches, and credentials are never logged directly.
package logging
