package mcp

import (
	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driving"
)

// SegmentLister provides the configured document segments.
type SegmentLister interface {
	Segments() ([]domain.Segment, error)
}

// Ports aggregates the dependencies required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extraction annotates sentences and documents.
	Extraction driving.ExtractionService

	// Segments lists configured segments. Optional; without it the
	// segment resources are empty.
	Segments SegmentLister
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	return nil
}
