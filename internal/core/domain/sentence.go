package domain

import "fmt"

// DateTag is the reserved part-of-speech label for date tokens.
// It overrides whatever a general tagger assigns.
const DateTag = "DATE"

// DateIDPrefix prefixes every generated date identifier.
const DateIDPrefix = "DATE_"

// DateID formats the identifier for the n-th resolved date of a sentence.
// n starts at 1.
func DateID(n int) string {
	return fmt.Sprintf("%s%06d", DateIDPrefix, n)
}

// DateEntry binds a generated identifier to its resolved date.
type DateEntry struct {
	ID   string
	Date ResolvedDate
}

// SentenceDateTable is the ordered table of resolved dates in one sentence.
// Order is order of first appearance; unresolved matches have no entry.
type SentenceDateTable struct {
	entries []DateEntry
}

// Add records a resolved date under the next sequential identifier
// and returns that identifier.
func (t *SentenceDateTable) Add(d ResolvedDate) string {
	id := DateID(len(t.entries) + 1)
	t.entries = append(t.entries, DateEntry{ID: id, Date: d})
	return id
}

// Lookup returns the resolved date stored under id.
func (t *SentenceDateTable) Lookup(id string) (ResolvedDate, bool) {
	for _, e := range t.entries {
		if e.ID == id {
			return e.Date, true
		}
	}
	return ResolvedDate{}, false
}

// Entries returns a copy of the table entries in identifier order.
func (t *SentenceDateTable) Entries() []DateEntry {
	out := make([]DateEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Len returns the number of resolved dates.
func (t *SentenceDateTable) Len() int {
	return len(t.entries)
}

// TaggedToken is one token of an annotated sentence.
type TaggedToken struct {
	Text string
	Tag  string
}

// SentenceResult is the annotation of one sentence.
type SentenceResult struct {
	// Sentence is the input text.
	Sentence string

	// Epoch is the reference epoch offsets were computed against.
	Epoch CalendarDate

	// Dates holds every resolved date in order of appearance.
	Dates SentenceDateTable

	// Tokens is the tagged token sequence.
	Tokens []TaggedToken
}

// HasDates reports whether at least one date resolved.
func (r *SentenceResult) HasDates() bool {
	return r.Dates.Len() > 0
}
