// Package report renders extraction results as text or JSON.
package report

import (
	"fmt"
	"io"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// Formats accepted by New.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Renderer writes sentence reports to a writer.
type Renderer interface {
	Render(w io.Writer, reports []domain.SentenceReport) error
}

// Options configures rendering.
type Options struct {
	// Width is the divider width for text output.
	Width int

	// Styled enables terminal colours for text output.
	Styled bool
}

// New returns the renderer for format.
func New(format string, opts Options) (Renderer, error) {
	switch format {
	case FormatText, "":
		return NewTextRenderer(opts), nil
	case FormatJSON:
		return JSONRenderer{}, nil
	default:
		return nil, fmt.Errorf("%w: unknown format %q (want %s or %s)", domain.ErrInvalidInput, format, FormatText, FormatJSON)
	}
}
