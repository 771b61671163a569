// Package plaintext normalises plain text files.
//
// Hard-wrapped lines inside a paragraph are joined with single spaces so a
// date broken across a line end ("September\n3, 1783") stays contiguous.
// Blank lines remain paragraph breaks. Files that are not valid UTF-8 are
// decoded as Windows-1252, the usual encoding of older transcriptions.
package plaintext

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

const (
	encodingUTF8        = "utf-8"
	encodingWindows1252 = "windows-1252"
)

var (
	utf8BOM        = []byte{0xEF, 0xBB, 0xBF}
	paragraphBreak = regexp.MustCompile(`\n[ \t]*\n`)
)

// Normaliser handles plain text and is the fallback for the other text types.
type Normaliser struct{}

// New creates a new plain text normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedMIMETypes returns the MIME types this normaliser handles.
func (n *Normaliser) SupportedMIMETypes() []string {
	return []string{"text/plain", "text/markdown", "text/html"}
}

// Priority returns the selection priority.
func (n *Normaliser) Priority() int {
	return 5 // below the markdown and html normalisers
}

// Normalise decodes raw and joins its wrapped lines into paragraphs.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	text, encoding, err := decode(raw.Content)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", raw.URI, err)
	}

	metadata := maps.Clone(raw.Metadata)
	if metadata == nil {
		metadata = make(map[string]any)
	}
	metadata["mime_type"] = raw.MIMEType
	metadata["format"] = "text"
	metadata["encoding"] = encoding

	return &driven.NormaliseResult{
		Document: domain.Document{
			ID:        uuid.New().String(),
			URI:       raw.URI,
			Title:     title(raw),
			Content:   unwrap(text),
			Metadata:  metadata,
			CreatedAt: time.Now(),
		},
	}, nil
}

// decode returns content as UTF-8 text and names the encoding it came in.
func decode(content []byte) (string, string, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	if utf8.Valid(content) {
		return string(content), encodingUTF8, nil
	}
	decoded, err := charmap.Windows1252.NewDecoder().Bytes(content)
	if err != nil {
		return "", "", err
	}
	return string(decoded), encodingWindows1252, nil
}

// unwrap joins the lines of each paragraph with single spaces and separates
// paragraphs with one blank line. Empty paragraphs are dropped.
func unwrap(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	var paragraphs []string
	for _, p := range paragraphBreak.Split(text, -1) {
		if joined := strings.Join(strings.Fields(p), " "); joined != "" {
			paragraphs = append(paragraphs, joined)
		}
	}
	return strings.Join(paragraphs, "\n\n")
}

// title prefers a metadata title, then the file name with separators
// turned into spaces.
func title(raw *domain.RawDocument) string {
	if t, ok := raw.Metadata["title"].(string); ok && t != "" {
		return t
	}
	name := filepath.Base(raw.URI)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}
