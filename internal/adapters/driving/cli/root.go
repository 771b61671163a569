// Package cli provides the datelens command tree.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/datelens/internal/core/ports/driven"
	"github.com/custodia-labs/datelens/internal/core/ports/driving"
	"github.com/custodia-labs/datelens/internal/logger"
)

// version is set at build time via SetVersion.
var version = "dev"

// skipServicesAnnotation marks commands that run without services.
const skipServicesAnnotation = "datelens/skip-services"

// Services holds the ports the commands run against.
type Services struct {
	Extraction driving.ExtractionService
	Config     driven.ConfigStore
	Watcher    driven.ChangeWatcher
}

// ServiceFactory builds the services once the global flags are parsed.
type ServiceFactory func(configDir string) (*Services, error)

var (
	extractionService driving.ExtractionService
	configStore       driven.ConfigStore
	changeWatcher     driven.ChangeWatcher
	serviceFactory    ServiceFactory
)

// Global flags.
var (
	configDir string
	verbose   bool
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "datelens",
	Short: "Find dates in documents and measure them against an epoch",
	Long: `datelens scans HTML, Markdown and plain-text documents for calendar dates,
resolves each one to a real date and reports how many days it lies before or
after a reference epoch, together with a part-of-speech tagging of the
sentence in which the date was found.

Segments of files sharing one epoch are configured in config.toml:

  [[segments]]
  name  = "letters"
  epoch = 1781-10-19
  files = ["letters.html", "notes.md"]`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "configuration directory (default ~/.datelens)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable coloured output")
}

// initServices applies the global flags and builds the services.
func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[skipServicesAnnotation] == "true" || serviceFactory == nil {
		return nil
	}

	services, err := serviceFactory(configDir)
	if err != nil {
		return fmt.Errorf("initialising services: %w", err)
	}
	SetServices(services)
	return nil
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServiceFactory registers the function that builds the services.
func SetServiceFactory(factory ServiceFactory) {
	serviceFactory = factory
}

// SetServices installs the services directly.
func SetServices(services *Services) {
	extractionService = services.Extraction
	configStore = services.Config
	changeWatcher = services.Watcher
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// ExecuteContext runs the root command with ctx available to every command.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
