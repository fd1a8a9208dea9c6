// Package batch provides common utilities for batch tool operations,
// such as resolving or replying to several document comments in one call.
//
// This package includes helpers for:
//   - Parsing parameters that accept both single values and arrays
//   - Formatting batch results in a consistent structure
//   - Handling partial failures in batch operations
package batch
