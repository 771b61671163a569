package driven

import (
	"context"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// Normaliser transforms raw source files into plain-text documents.
// Each normaliser handles specific MIME types (e.g., HTML, plain text).
type Normaliser interface {
	// SupportedMIMETypes returns the MIME types this normaliser handles.
	SupportedMIMETypes() []string

	// Priority returns the selection priority (higher = preferred).
	// Format-specific normalisers should return 50-89.
	// Fallback normalisers should return 1-9.
	Priority() int

	// Normalise transforms a raw document into a document.
	Normalise(ctx context.Context, raw *domain.RawDocument) (*NormaliseResult, error)
}

// NormaliseResult contains the output of normalisation.
// Note: Normalisation only extracts text. Cleaning is handled by the
// TextPipeline and sentence splitting by the SentenceSplitter.
type NormaliseResult struct {
	// Document is the normalised document with Content field populated.
	Document domain.Document
}
