package mcp

import (
	"context"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// mockExtractionService is a mock implementation of driving.ExtractionService.
type mockExtractionService struct {
	result   domain.SentenceResult
	reports  []domain.SentenceReport
	err      error
	segments []domain.Segment
}

func (m *mockExtractionService) AnnotateSentence(sentence string, epoch domain.CalendarDate) domain.SentenceResult {
	r := m.result
	r.Sentence = sentence
	r.Epoch = epoch
	return r
}

func (m *mockExtractionService) ExtractSegments(_ context.Context, segments []domain.Segment) ([]domain.SentenceReport, error) {
	m.segments = segments
	return m.reports, m.err
}

// mockSegmentLister is a mock implementation of SegmentLister.
type mockSegmentLister struct {
	segments []domain.Segment
	err      error
}

func (m *mockSegmentLister) Segments() ([]domain.Segment, error) {
	return m.segments, m.err
}

func sampleResult() domain.SentenceResult {
	var result domain.SentenceResult
	result.Dates.Add(domain.ResolvedDate{
		Text:      "September 3, 1783",
		Span:      domain.Span{Start: 21, End: 38},
		Date:      domain.CalendarDate{Year: 1783, Month: 9, Day: 3},
		DayOffset: 0,
	})
	result.Tokens = []domain.TaggedToken{
		{Text: "signed", Tag: "VBD"},
		{Text: "on", Tag: "IN"},
		{Text: "September 3, 1783", Tag: domain.DateTag},
	}
	return result
}
