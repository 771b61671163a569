package domain

import "time"

// Document is the plain-text form of a source file after normalisation.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// URI is the original location (file path).
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the running text, ready for cleaning and sentence splitting.
	Content string

	// Citations holds standalone reference texts. Each one is treated
	// as a single sentence after the content sentences.
	Citations []string

	// Metadata contains arbitrary key-value pairs.
	Metadata map[string]any

	// CreatedAt is when the document was normalised.
	CreatedAt time.Time
}
