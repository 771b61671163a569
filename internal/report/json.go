package report

import (
	"encoding/json"
	"io"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// DateJSON is the wire form of one resolved date.
type DateJSON struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Date      string `json:"date"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	DayOffset int    `json:"day_offset"`
}

// TokenJSON is the wire form of one tagged token.
type TokenJSON struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

// SentenceJSON is the wire form of one sentence report.
type SentenceJSON struct {
	Index    int         `json:"index"`
	Segment  string      `json:"segment,omitempty"`
	Document string      `json:"document,omitempty"`
	Sentence string      `json:"sentence"`
	Epoch    string      `json:"epoch"`
	Dates    []DateJSON  `json:"dates"`
	Tokens   []TokenJSON `json:"tokens"`
}

// JSONRenderer writes all reports as one indented JSON array.
type JSONRenderer struct{}

// Render writes reports as JSON.
func (JSONRenderer) Render(w io.Writer, reports []domain.SentenceReport) error {
	out := make([]SentenceJSON, len(reports))
	for i, rep := range reports {
		out[i] = ToJSON(rep)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// ToJSON converts a report to its wire form.
func ToJSON(rep domain.SentenceReport) SentenceJSON {
	return SentenceJSON{
		Index:    rep.Index,
		Segment:  rep.Segment,
		Document: rep.DocumentURI,
		Sentence: rep.Result.Sentence,
		Epoch:    rep.Result.Epoch.String(),
		Dates:    Dates(rep.Result),
		Tokens:   Tokens(rep.Result),
	}
}

// Dates converts the date table of a result.
func Dates(result domain.SentenceResult) []DateJSON {
	entries := result.Dates.Entries()
	out := make([]DateJSON, len(entries))
	for i, e := range entries {
		out[i] = DateJSON{
			ID:        e.ID,
			Text:      e.Date.Text,
			Date:      e.Date.Date.String(),
			Start:     e.Date.Span.Start,
			End:       e.Date.Span.End,
			DayOffset: e.Date.DayOffset,
		}
	}
	return out
}

// Tokens converts the tagged tokens of a result.
func Tokens(result domain.SentenceResult) []TokenJSON {
	out := make([]TokenJSON, len(result.Tokens))
	for i, tok := range result.Tokens {
		out[i] = TokenJSON{Text: tok.Text, Tag: tok.Tag}
	}
	return out
}
