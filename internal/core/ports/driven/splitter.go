package driven

// SentenceSplitter finds sentence boundaries in running text.
type SentenceSplitter interface {
	// Split returns the sentences of text in order, trimmed and non-empty.
	Split(text string) []string
}
