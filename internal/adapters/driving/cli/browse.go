package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/datelens/internal/adapters/driving/tui"
)

var browseEpoch string

var browseCmd = &cobra.Command{
	Use:   "browse [files...]",
	Short: "Browse date-bearing sentences interactively",
	Long: `Opens a terminal browser over the extraction results. Files and --epoch
work as for extract.

Controls:
  ↑/k, ↓/j - Navigate sentences
  Enter    - Show tokens and offsets
  Esc      - Back
  r        - Re-run extraction
  ?        - Toggle help
  q        - Quit`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVarP(&browseEpoch, "epoch", "e", "", "reference date (YYYY-MM-DD)")
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in browser: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	segments, err := resolveSegments(args, browseEpoch)
	if err != nil {
		return err
	}

	app, err := tui.NewApp(tui.NewPorts(extractionService, segments))
	if err != nil {
		return fmt.Errorf("failed to create browser: %w", err)
	}

	if err := app.WithContext(cmd.Context()).Run(); err != nil {
		return fmt.Errorf("browser error: %w", err)
	}
	return nil
}
