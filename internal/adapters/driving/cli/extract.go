package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/logger"
	"github.com/custodia-labs/datelens/internal/report"
)

// watchInterval is the minimum spacing between watch-triggered runs.
const watchInterval = 500 * time.Millisecond

var (
	extractEpoch  string
	extractFormat string
	extractWatch  bool
)

var extractCmd = &cobra.Command{
	Use:   "extract [files...]",
	Short: "Report the date-bearing sentences of documents",
	Long: `Reads each document, splits it into sentences and reports every sentence
that contains at least one resolvable date, with the day offset of each date
from the reference epoch.

With files, all of them share the epoch given by --epoch. Without files, the
segments configured in config.toml are processed in order.

Use --watch to re-run whenever one of the files changes.`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVarP(&extractEpoch, "epoch", "e", "", "reference date (YYYY-MM-DD)")
	extractCmd.Flags().StringVarP(&extractFormat, "format", "f", "", "output format: text or json")
	extractCmd.Flags().BoolVarP(&extractWatch, "watch", "w", false, "re-run when a source file changes")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	segments, err := resolveSegments(args, extractEpoch)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd, extractFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := extract(ctx, cmd, segments, renderer); err != nil {
		return err
	}

	if !extractWatch {
		return nil
	}
	return watchAndExtract(ctx, cmd, segments, renderer)
}

// extract runs one extraction and renders its reports.
func extract(ctx context.Context, cmd *cobra.Command, segments []domain.Segment, renderer report.Renderer) error {
	start := time.Now()
	reports, err := extractionService.ExtractSegments(ctx, segments)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}
	logger.Elapsed("Extraction", start)

	if _, isJSON := renderer.(report.JSONRenderer); len(reports) == 0 && !isJSON {
		fmt.Fprintln(cmd.OutOrStdout(), "No date-bearing sentences found.")
		return nil
	}
	return renderer.Render(cmd.OutOrStdout(), reports)
}

// watchAndExtract re-runs the extraction on every change until ctx is done
// or the watcher stops. Bursts of changes are coalesced into one run.
func watchAndExtract(ctx context.Context, cmd *cobra.Command, segments []domain.Segment, renderer report.Renderer) error {
	if changeWatcher == nil {
		return errors.New("change watcher not configured")
	}

	files := segmentFiles(segments)
	changes, err := changeWatcher.Watch(ctx, files)
	if err != nil {
		return fmt.Errorf("watching files: %w", err)
	}
	logger.Info("Watching %d files for changes", len(files))

	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)
	for {
		select {
		case <-ctx.Done():
			return nil
		case path, ok := <-changes:
			if !ok {
				return nil
			}
			logger.Info("Changed: %s", path)
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			drain(changes)
			if err := extract(ctx, cmd, segments, renderer); err != nil {
				logger.Warn("%v", err)
			}
		}
	}
}

// drain discards changes that are already queued.
func drain(changes <-chan string) {
	for {
		select {
		case _, ok := <-changes:
			if !ok {
				return
			}
		default:
			return
		}
	}
}
