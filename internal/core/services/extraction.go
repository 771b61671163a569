package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/datelens/internal/core/dates"
	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driven"
	"github.com/custodia-labs/datelens/internal/core/ports/driving"
	"github.com/custodia-labs/datelens/internal/logger"
)

// Ensure ExtractionService implements the interface.
var _ driving.ExtractionService = (*ExtractionService)(nil)

// ExtractionService runs documents through normalisation, cleaning and
// sentence splitting, and annotates every sentence with its resolved dates.
type ExtractionService struct {
	source    driven.DocumentSource
	registry  driven.NormaliserRegistry
	pipeline  driven.TextPipeline
	splitter  driven.SentenceSplitter
	annotator *dates.Annotator
}

// NewExtractionService creates a new extraction service.
func NewExtractionService(
	source driven.DocumentSource,
	registry driven.NormaliserRegistry,
	pipeline driven.TextPipeline,
	splitter driven.SentenceSplitter,
	tokenizer driven.Tokenizer,
	tagger driven.Tagger,
) *ExtractionService {
	return &ExtractionService{
		source:    source,
		registry:  registry,
		pipeline:  pipeline,
		splitter:  splitter,
		annotator: dates.NewAnnotator(tokenizer, tagger, dates.WithDropFunc(logDrop)),
	}
}

// AnnotateSentence resolves and tags the dates of a single sentence.
func (s *ExtractionService) AnnotateSentence(sentence string, epoch domain.CalendarDate) domain.SentenceResult {
	return s.annotator.Annotate(sentence, epoch)
}

// ExtractSegments processes every file of every segment in order.
// Files of an unsupported type are skipped with a warning. Any other
// failure aborts the run with an error naming the file.
func (s *ExtractionService) ExtractSegments(ctx context.Context, segments []domain.Segment) ([]domain.SentenceReport, error) {
	var reports []domain.SentenceReport

	for _, segment := range segments {
		if segment.Epoch.IsZero() {
			return nil, fmt.Errorf("segment %q: %w", segment.Name, domain.ErrInvalidEpoch)
		}

		logger.Section("Segment " + segment.Name)
		logger.Info("Epoch %s, %d file(s)", segment.Epoch, len(segment.Files))

		for _, path := range segment.Files {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			uri, sentences, err := s.documentSentences(ctx, path)
			if errors.Is(err, domain.ErrUnsupportedType) {
				logger.Warn("Skipping %s: %v", path, err)
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("segment %q: %w", segment.Name, err)
			}

			before := len(reports)
			for _, sentence := range sentences {
				result := s.annotator.Annotate(sentence, segment.Epoch)
				if !result.HasDates() {
					continue
				}
				reports = append(reports, domain.SentenceReport{
					Index:       len(reports) + 1,
					Segment:     segment.Name,
					DocumentURI: uri,
					Result:      result,
				})
			}
			logger.Debug("%s: %d sentences, %d with dates", uri, len(sentences), len(reports)-before)
		}
	}

	return reports, nil
}

// documentSentences loads one file and returns its URI and sentences:
// the content sentences first, then one sentence per citation.
func (s *ExtractionService) documentSentences(ctx context.Context, path string) (string, []string, error) {
	raw, err := s.source.Read(ctx, path)
	if err != nil {
		return "", nil, err
	}

	result, err := s.registry.Normalise(ctx, raw)
	if err != nil {
		return "", nil, fmt.Errorf("normalise %s: %w", raw.URI, err)
	}
	doc := result.Document

	text, err := s.pipeline.Process(ctx, doc.Content)
	if err != nil {
		return "", nil, fmt.Errorf("clean %s: %w", doc.URI, err)
	}
	sentences := s.splitter.Split(text)

	for _, citation := range doc.Citations {
		cleaned, err := s.pipeline.Process(ctx, citation)
		if err != nil {
			return "", nil, fmt.Errorf("clean citation in %s: %w", doc.URI, err)
		}
		if cleaned != "" {
			sentences = append(sentences, cleaned)
		}
	}

	return doc.URI, sentences, nil
}

func logDrop(m domain.DateMatch, err error) {
	logger.Debug("Dropped date %q at [%d:%d]: %v", m.Text, m.Span.Start, m.Span.End, err)
}
