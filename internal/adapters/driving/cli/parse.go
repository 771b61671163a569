package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

var (
	parseEpoch  string
	parseFormat string
)

var parseCmd = &cobra.Command{
	Use:   "parse <sentence>",
	Short: "Annotate the dates of a single sentence",
	Long: `Finds the dates in one sentence, resolves them against --epoch and prints
the tagged tokens and day offsets. The sentence is used as given, without
cleaning.`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().StringVarP(&parseEpoch, "epoch", "e", "", "reference date (YYYY-MM-DD)")
	parseCmd.Flags().StringVarP(&parseFormat, "format", "f", "", "output format: text or json")
	_ = parseCmd.MarkFlagRequired("epoch")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	epoch, err := domain.ParseEpoch(parseEpoch)
	if err != nil {
		return err
	}

	renderer, err := newRenderer(cmd, parseFormat)
	if err != nil {
		return err
	}

	result := extractionService.AnnotateSentence(args[0], epoch)
	return renderer.Render(cmd.OutOrStdout(), []domain.SentenceReport{{Index: 1, Result: result}})
}
