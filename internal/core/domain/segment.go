package domain

// Segment is a group of source files that share one reference epoch.
type Segment struct {
	// Name labels the segment in reports.
	Name string

	// Epoch is the reference date for every offset in the segment.
	Epoch CalendarDate

	// Files lists the source file paths in processing order.
	Files []string
}

// SentenceReport is one date-bearing sentence in an extraction run.
type SentenceReport struct {
	// Index numbers date-bearing sentences from 1 across the run.
	Index int

	// Segment is the name of the segment the sentence came from.
	Segment string

	// DocumentURI is the file the sentence came from.
	DocumentURI string

	// Result is the sentence annotation.
	Result SentenceResult
}
