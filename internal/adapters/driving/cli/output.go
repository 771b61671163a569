package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/report"
)

// resolveSegments returns the segments a command runs over. Files on the
// command line form one segment and need an epoch; without files the
// configured segments are used, with epoch overriding theirs when set.
func resolveSegments(files []string, epoch string) ([]domain.Segment, error) {
	if len(files) > 0 {
		if epoch == "" {
			return nil, fmt.Errorf("%w: --epoch is required when files are given", domain.ErrInvalidEpoch)
		}
		date, err := domain.ParseEpoch(epoch)
		if err != nil {
			return nil, err
		}
		return []domain.Segment{{Name: "command line", Epoch: date, Files: files}}, nil
	}

	if configStore == nil {
		return nil, fmt.Errorf("%w: no files given and no configuration loaded", domain.ErrInvalidInput)
	}

	segments, err := configStore.Segments()
	if err != nil {
		return nil, fmt.Errorf("loading segments: %w", err)
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: no files given and no segments in %s", domain.ErrInvalidInput, configStore.Path())
	}

	if epoch != "" {
		date, err := domain.ParseEpoch(epoch)
		if err != nil {
			return nil, err
		}
		for i := range segments {
			segments[i].Epoch = date
		}
	}
	return segments, nil
}

// segmentFiles lists every file of segments in order.
func segmentFiles(segments []domain.Segment) []string {
	var files []string
	for _, seg := range segments {
		files = append(files, seg.Files...)
	}
	return files
}

// newRenderer builds the renderer for format, falling back to the
// configured format and width.
func newRenderer(cmd *cobra.Command, format string) (report.Renderer, error) {
	width := domain.DefaultReportWidth
	if configStore != nil {
		if format == "" {
			format = configStore.GetString(domain.ConfigKeyFormat)
		}
		if w := configStore.GetInt(domain.ConfigKeyWidth); w > 0 {
			width = w
		}
	}
	if format == "" {
		format = domain.DefaultReportFormat
	}

	return report.New(format, report.Options{
		Width:  width,
		Styled: colorEnabled(cmd.OutOrStdout()),
	})
}

// colorEnabled reports whether w is a terminal and colour was not disabled.
func colorEnabled(w io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
