package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driven"
	"github.com/custodia-labs/datelens/internal/logger"
	"github.com/custodia-labs/datelens/internal/taggers"
	"github.com/custodia-labs/datelens/internal/tokenizers/treebank"
)

// --- Fakes ---

// fakeSource serves documents from memory.
type fakeSource struct {
	docs  map[string]string
	errs  map[string]error
	reads []string
}

func (f *fakeSource) Read(_ context.Context, path string) (*domain.RawDocument, error) {
	f.reads = append(f.reads, path)
	if err, ok := f.errs[path]; ok {
		return nil, err
	}
	content, ok := f.docs[path]
	if !ok {
		return nil, fmt.Errorf("read %s: %w", path, os.ErrNotExist)
	}
	return &domain.RawDocument{URI: path, MIMEType: "text/plain", Content: []byte(content)}, nil
}

// fakeRegistry copies content through and attaches preset citations.
type fakeRegistry struct {
	citations map[string][]string
	err       error
}

func (r *fakeRegistry) Register(_ driven.Normaliser) {}

func (r *fakeRegistry) SupportedMIMETypes() []string { return []string{"text/plain"} }

func (r *fakeRegistry) Normalise(_ context.Context, raw *domain.RawDocument) (*driven.NormaliseResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &driven.NormaliseResult{Document: domain.Document{
		URI:       raw.URI,
		Content:   string(raw.Content),
		Citations: r.citations[raw.URI],
	}}, nil
}

// fakePipeline trims text, or fails.
type fakePipeline struct {
	err error
}

func (p *fakePipeline) Process(_ context.Context, text string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return strings.TrimSpace(text), nil
}

// lineSplitter treats every non-empty line as a sentence.
type lineSplitter struct{}

func (lineSplitter) Split(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func newTestService(source *fakeSource, registry *fakeRegistry, pipeline *fakePipeline) *ExtractionService {
	return NewExtractionService(source, registry, pipeline, lineSplitter{}, treebank.New(), taggers.NewEnglish(taggers.DefaultTag))
}

func mustEpoch(t *testing.T, s string) domain.CalendarDate {
	t.Helper()
	d, err := domain.ParseEpoch(s)
	require.NoError(t, err)
	return d
}

// --- Tests ---

func TestExtractionService_AnnotateSentence(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeRegistry{}, &fakePipeline{})

	result := svc.AnnotateSentence("On September 3, 1783 the treaty was signed.", mustEpoch(t, "1783-09-03"))

	require.Equal(t, 1, result.Dates.Len())
	entry := result.Dates.Entries()[0]
	assert.Equal(t, "DATE_000001", entry.ID)
	assert.Equal(t, 0, entry.Date.DayOffset)

	var dateTokens []string
	for _, tok := range result.Tokens {
		if tok.Tag == domain.DateTag {
			dateTokens = append(dateTokens, tok.Text)
		}
	}
	assert.Equal(t, []string{"September 3, 1783"}, dateTokens)
}

func TestExtractionService_ExtractSegments(t *testing.T) {
	source := &fakeSource{docs: map[string]string{
		"war.txt":  "signed on september 3, 1783\nno dates here\nsurrendered 10/19/1781",
		"vote.txt": "held on 9/30/23",
	}}
	svc := newTestService(source, &fakeRegistry{}, &fakePipeline{})

	segments := []domain.Segment{
		{Name: "war", Epoch: mustEpoch(t, "1783-09-03"), Files: []string{"war.txt"}},
		{Name: "election", Epoch: mustEpoch(t, "2023-10-04"), Files: []string{"vote.txt"}},
	}

	reports, err := svc.ExtractSegments(context.Background(), segments)
	require.NoError(t, err)
	require.Len(t, reports, 3)

	for i, r := range reports {
		assert.Equal(t, i+1, r.Index)
	}

	assert.Equal(t, "war", reports[0].Segment)
	assert.Equal(t, "war.txt", reports[0].DocumentURI)
	assert.Equal(t, "signed on september 3, 1783", reports[0].Result.Sentence)
	assert.Equal(t, 0, reports[0].Result.Dates.Entries()[0].Date.DayOffset)

	assert.Equal(t, -684, reports[1].Result.Dates.Entries()[0].Date.DayOffset)

	assert.Equal(t, "election", reports[2].Segment)
	last := reports[2].Result.Dates.Entries()[0].Date
	assert.Equal(t, "2023-09-30", last.Date.String())
	assert.Equal(t, -4, last.DayOffset)
	assert.Equal(t, mustEpoch(t, "2023-10-04"), reports[2].Result.Epoch)
}

func TestExtractionService_CitationsFollowContent(t *testing.T) {
	source := &fakeSource{docs: map[string]string{"a.html": "first on 2020-01-01"}}
	registry := &fakeRegistry{citations: map[string][]string{
		"a.html": {"  ", "retrieved 2020-01-05"},
	}}
	svc := newTestService(source, registry, &fakePipeline{})

	reports, err := svc.ExtractSegments(context.Background(), []domain.Segment{
		{Name: "s", Epoch: mustEpoch(t, "2020-01-01"), Files: []string{"a.html"}},
	})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "first on 2020-01-01", reports[0].Result.Sentence)
	assert.Equal(t, "retrieved 2020-01-05", reports[1].Result.Sentence)
	assert.Equal(t, 4, reports[1].Result.Dates.Entries()[0].Date.DayOffset)
}

func TestExtractionService_SkipsUnsupportedFiles(t *testing.T) {
	source := &fakeSource{
		docs: map[string]string{"b.txt": "on 2020-01-02"},
		errs: map[string]error{"a.pdf": fmt.Errorf("%w: a.pdf", domain.ErrUnsupportedType)},
	}
	svc := newTestService(source, &fakeRegistry{}, &fakePipeline{})

	reports, err := svc.ExtractSegments(context.Background(), []domain.Segment{
		{Name: "s", Epoch: mustEpoch(t, "2020-01-01"), Files: []string{"a.pdf", "b.txt"}},
	})
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, 1, reports[0].Index)
	assert.Equal(t, []string{"a.pdf", "b.txt"}, source.reads)
}

func TestExtractionService_Errors(t *testing.T) {
	epoch := mustEpoch(t, "2020-01-01")

	t.Run("read failure aborts", func(t *testing.T) {
		source := &fakeSource{docs: map[string]string{"b.txt": "x"}}
		svc := newTestService(source, &fakeRegistry{}, &fakePipeline{})

		_, err := svc.ExtractSegments(context.Background(), []domain.Segment{
			{Name: "s", Epoch: epoch, Files: []string{"missing.txt", "b.txt"}},
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.Contains(t, err.Error(), "missing.txt")
		assert.Equal(t, []string{"missing.txt"}, source.reads)
	})

	t.Run("normalise failure aborts", func(t *testing.T) {
		source := &fakeSource{docs: map[string]string{"a.txt": "x"}}
		svc := newTestService(source, &fakeRegistry{err: domain.ErrInvalidInput}, &fakePipeline{})

		_, err := svc.ExtractSegments(context.Background(), []domain.Segment{
			{Name: "s", Epoch: epoch, Files: []string{"a.txt"}},
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("pipeline failure aborts", func(t *testing.T) {
		boom := errors.New("boom")
		source := &fakeSource{docs: map[string]string{"a.txt": "x"}}
		svc := newTestService(source, &fakeRegistry{}, &fakePipeline{err: boom})

		_, err := svc.ExtractSegments(context.Background(), []domain.Segment{
			{Name: "s", Epoch: epoch, Files: []string{"a.txt"}},
		})
		assert.ErrorIs(t, err, boom)
	})

	t.Run("zero epoch", func(t *testing.T) {
		svc := newTestService(&fakeSource{}, &fakeRegistry{}, &fakePipeline{})

		_, err := svc.ExtractSegments(context.Background(), []domain.Segment{{Name: "s", Files: []string{"a.txt"}}})
		assert.ErrorIs(t, err, domain.ErrInvalidEpoch)
	})

	t.Run("cancelled context", func(t *testing.T) {
		source := &fakeSource{docs: map[string]string{"a.txt": "on 2020-01-02"}}
		svc := newTestService(source, &fakeRegistry{}, &fakePipeline{})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := svc.ExtractSegments(ctx, []domain.Segment{{Name: "s", Epoch: epoch, Files: []string{"a.txt"}}})
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, source.reads)
	})
}

func TestExtractionService_NoSegments(t *testing.T) {
	svc := newTestService(&fakeSource{}, &fakeRegistry{}, &fakePipeline{})

	reports, err := svc.ExtractSegments(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestExtractionService_LogsDroppedDates(t *testing.T) {
	defer func() {
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	}()

	var buf bytes.Buffer
	logger.SetOutput(&buf)
	logger.SetVerbose(true)

	svc := newTestService(&fakeSource{}, &fakeRegistry{}, &fakePipeline{})
	result := svc.AnnotateSentence("due Smarch 3, 2020 or 2/30/2020", mustEpoch(t, "2020-01-01"))

	assert.False(t, result.HasDates())
	assert.Contains(t, buf.String(), `Dropped date "Smarch 3, 2020"`)
	assert.Contains(t, buf.String(), `Dropped date "2/30/2020"`)
}
