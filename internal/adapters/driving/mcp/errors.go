// Package mcp provides an MCP (Model Context Protocol) server adapter for datelens.
// It lets AI assistants resolve dates in sentences and documents.
package mcp

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("mcp: extraction service is required")
