package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/report"
)

// AnnotateInput is the input schema for the annotate_sentence tool.
type AnnotateInput struct {
	Sentence string `json:"sentence" jsonschema:"the sentence to scan for dates"`
	Epoch    string `json:"epoch" jsonschema:"reference date as YYYY-MM-DD"`
}

// AnnotateOutput is the output schema for the annotate_sentence tool.
type AnnotateOutput struct {
	Dates  []report.DateJSON  `json:"dates"`
	Tokens []report.TokenJSON `json:"tokens"`
}

// ExtractInput is the input schema for the extract_documents tool.
type ExtractInput struct {
	Files []string `json:"files,omitempty" jsonschema:"source files to scan; empty uses the configured segments"`
	Epoch string   `json:"epoch,omitempty" jsonschema:"reference date as YYYY-MM-DD, required with files"`
}

// ExtractOutput is the output schema for the extract_documents tool.
type ExtractOutput struct {
	Sentences []report.SentenceJSON `json:"sentences"`
	Count     int                   `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "annotate_sentence",
		Description: "Find the dates in a sentence and report each one's day offset from an epoch",
	}, s.handleAnnotate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_documents",
		Description: "Extract every date-bearing sentence from source files or the configured segments",
	}, s.handleExtract)
}

// handleAnnotate handles the annotate_sentence tool invocation.
func (s *Server) handleAnnotate(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input AnnotateInput,
) (*mcp.CallToolResult, AnnotateOutput, error) {
	epoch, err := domain.ParseEpoch(input.Epoch)
	if err != nil {
		return nil, AnnotateOutput{}, err
	}

	result := s.ports.Extraction.AnnotateSentence(input.Sentence, epoch)
	return nil, AnnotateOutput{
		Dates:  report.Dates(result),
		Tokens: report.Tokens(result),
	}, nil
}

// handleExtract handles the extract_documents tool invocation.
func (s *Server) handleExtract(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractInput,
) (*mcp.CallToolResult, ExtractOutput, error) {
	segments, err := s.segmentsFor(input)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	reports, err := s.ports.Extraction.ExtractSegments(ctx, segments)
	if err != nil {
		return nil, ExtractOutput{}, err
	}

	output := ExtractOutput{
		Sentences: make([]report.SentenceJSON, len(reports)),
		Count:     len(reports),
	}
	for i, rep := range reports {
		output.Sentences[i] = report.ToJSON(rep)
	}

	return nil, output, nil
}

func (s *Server) segmentsFor(input ExtractInput) ([]domain.Segment, error) {
	if len(input.Files) > 0 {
		epoch, err := domain.ParseEpoch(input.Epoch)
		if err != nil {
			return nil, err
		}
		return []domain.Segment{{Name: "request", Epoch: epoch, Files: input.Files}}, nil
	}

	if s.ports.Segments == nil {
		return nil, fmt.Errorf("%w: no files given and no segments configured", domain.ErrInvalidInput)
	}
	return s.ports.Segments.Segments()
}
