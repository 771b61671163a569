// Package domain defines the core entities for datelens.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - DateMatch: A date-like substring found in a sentence
//   - CalendarDate: A valid Gregorian date
//   - ResolvedDate: A matched date with its offset from a reference epoch
//   - SentenceDateTable: The ordered, per-sentence table of resolved dates
//   - TaggedToken: A token paired with its part-of-speech tag
//   - Segment: A group of documents sharing one reference epoch
//   - RawDocument / Document: Loader input and output
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
