// Package dates recognises, normalises and tags dates in free text.
//
// The package is organised as four stages:
//
//   - Matches scans text for date-like substrings in four surface syntaxes
//     and labels each with its Dialect.
//   - Normalize turns one match into a CalendarDate, rejecting unknown month
//     names and impossible dates.
//   - Annotator.Substitute resolves every match of a sentence, numbers the
//     resolved ones and tokenizes the sentence so each resolved date is one token.
//   - Annotator.Overlay tags the tokens and forces the DATE tag onto every
//     token that is itself a date.
//
// Normalisation failures are values, never panics, and only ever cost the
// sentence that one date.
package dates
