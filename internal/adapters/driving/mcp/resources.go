package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/report"
)

const (
	// uriScheme is the custom URI scheme for datelens resources.
	uriScheme = "datelens://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "segments",
		Name:        "segments",
		Description: "Configured document segments and their reference epochs",
		MIMEType:    "application/json",
	}, s.handleSegmentsResource)

	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "segments/{name}/report",
		Name:        "segment-report",
		Description: "Text report of the date-bearing sentences in one segment",
		MIMEType:    "text/plain",
	}, s.handleSegmentReportResource)
}

// handleSegmentsResource returns the configured segments.
func (s *Server) handleSegmentsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type segmentInfo struct {
		Name  string   `json:"name"`
		Epoch string   `json:"epoch"`
		Files []string `json:"files"`
	}

	infos := []segmentInfo{}
	if s.ports.Segments != nil {
		segments, err := s.ports.Segments.Segments()
		if err != nil {
			return nil, fmt.Errorf("listing segments: %w", err)
		}
		for _, seg := range segments {
			infos = append(infos, segmentInfo{
				Name:  seg.Name,
				Epoch: seg.Epoch.String(),
				Files: seg.Files,
			})
		}
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling segments: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// handleSegmentReportResource runs extraction over one named segment.
func (s *Server) handleSegmentReportResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	if s.ports.Segments == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	name := extractSegmentName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	segments, err := s.ports.Segments.Segments()
	if err != nil {
		return nil, fmt.Errorf("listing segments: %w", err)
	}

	segment, ok := findSegment(segments, name)
	if !ok {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	reports, err := s.ports.Extraction.ExtractSegments(ctx, []domain.Segment{segment})
	if err != nil {
		return nil, fmt.Errorf("extracting segment %q: %w", name, err)
	}

	var buf bytes.Buffer
	if err := report.NewTextRenderer(report.Options{}).Render(&buf, reports); err != nil {
		return nil, fmt.Errorf("rendering report: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     buf.String(),
		}},
	}, nil
}

func findSegment(segments []domain.Segment, name string) (domain.Segment, bool) {
	for _, seg := range segments {
		if seg.Name == name {
			return seg, true
		}
	}
	return domain.Segment{}, false
}

// extractSegmentName extracts the segment name from a URI like
// datelens://segments/{name}/report. Names may be percent-encoded.
func extractSegmentName(uri string) string {
	const prefix = uriScheme + "segments/"
	const suffix = "/report"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	uri = strings.TrimPrefix(uri, prefix)
	if !strings.HasSuffix(uri, suffix) {
		return ""
	}

	name, err := url.PathUnescape(strings.TrimSuffix(uri, suffix))
	if err != nil {
		return ""
	}
	return name
}
