package tui

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("tui: extraction service is required")

// ErrNoSegments is returned when the browser is started without segments.
var ErrNoSegments = errors.New("tui: at least one segment is required")
