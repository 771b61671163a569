// Package tui provides an interactive terminal browser for datelens.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driving"
)

// Ports aggregates what the browser needs: the extraction service and the
// segments it runs over.
type Ports struct {
	// Extraction produces the sentence reports.
	Extraction driving.ExtractionService

	// Segments are extracted on start and on every reload.
	Segments []domain.Segment
}

// NewPorts creates a new Ports aggregate.
func NewPorts(extraction driving.ExtractionService, segments []domain.Segment) *Ports {
	return &Ports{
		Extraction: extraction,
		Segments:   segments,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	if len(p.Segments) == 0 {
		return ErrNoSegments
	}
	return nil
}
