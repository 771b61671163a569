package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/datelens/internal/cleaners"
	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/report"
	"github.com/custodia-labs/datelens/internal/taggers"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change configuration",
	Long: `Reads and writes config.toml in the configuration directory.

Keys:
  tagger.default_tag    tag for words no rule recognises (default NN)
  report.format         text or json
  report.width          divider width of text reports (default 80)
  pipeline.processors   comma-separated cleaning steps

Segments are edited in the file itself.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE:  runConfigPath,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configSegmentsCmd = &cobra.Command{
	Use:   "segments",
	Short: "List the configured segments",
	Args:  cobra.NoArgs,
	RunE:  runConfigSegments,
}

func init() {
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configSegmentsCmd)
	rootCmd.AddCommand(configCmd)
}

func requireConfig() error {
	if configStore == nil {
		return errors.New("configuration not loaded")
	}
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	if err := requireConfig(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), configStore.Path())
	return nil
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	val, ok := configStore.Get(args[0])
	if !ok {
		return fmt.Errorf("config key %q: %w", args[0], domain.ErrNotFound)
	}
	fmt.Fprintln(cmd.OutOrStdout(), formatConfigValue(val))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	key := args[0]
	val, err := parseConfigValue(key, args[1])
	if err != nil {
		return err
	}

	if err := configStore.Set(key, val); err != nil {
		return fmt.Errorf("setting %s: %w", key, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, formatConfigValue(val))
	return nil
}

func runConfigSegments(cmd *cobra.Command, _ []string) error {
	if err := requireConfig(); err != nil {
		return err
	}

	segments, err := configStore.Segments()
	if err != nil {
		return err
	}
	if len(segments) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No segments configured.")
		return nil
	}

	for _, seg := range segments {
		fmt.Fprintf(cmd.OutOrStdout(), "%s (epoch %s)\n", seg.Name, seg.Epoch)
		for _, f := range seg.Files {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
		}
	}
	return nil
}

// parseConfigValue converts a command-line value to the type stored for
// key and rejects values later commands could not run with. Keys without a
// known type are stored as strings.
func parseConfigValue(key, raw string) (any, error) {
	switch key {
	case domain.ConfigKeyProcessors:
		var names []string
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		if _, err := cleaners.NewDefaultRegistry().BuildPipeline(names); err != nil {
			return nil, err
		}
		return names, nil
	case domain.ConfigKeyWidth:
		width, err := strconv.Atoi(raw)
		if err != nil || width <= 0 {
			return nil, fmt.Errorf("%w: %s must be a positive integer, got %q", domain.ErrInvalidInput, key, raw)
		}
		return width, nil
	case domain.ConfigKeyFormat:
		if _, err := report.New(raw, report.Options{}); err != nil {
			return nil, err
		}
		return raw, nil
	case domain.ConfigKeyDefaultTag:
		if err := taggers.ValidateDefaultTag(raw); err != nil {
			return nil, err
		}
		return raw, nil
	default:
		return raw, nil
	}
}

// formatConfigValue renders a stored value, joining lists with commas.
func formatConfigValue(val any) string {
	switch v := val.(type) {
	case []string:
		return strings.Join(v, ", ")
	case []any:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = fmt.Sprint(item)
		}
		return strings.Join(parts, ", ")
	default:
		return fmt.Sprint(v)
	}
}
