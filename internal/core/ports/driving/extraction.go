package driving

import (
	"context"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// ExtractionService finds, resolves and tags dates in sentences and documents.
type ExtractionService interface {
	// AnnotateSentence resolves every date in a single sentence against epoch
	// and returns the tagged tokens. It never fails: malformed dates are dropped.
	AnnotateSentence(sentence string, epoch domain.CalendarDate) domain.SentenceResult

	// ExtractSegments processes every file of every segment in order and
	// returns the sentences that contain at least one resolved date.
	ExtractSegments(ctx context.Context, segments []domain.Segment) ([]domain.SentenceReport, error)
}
