package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/datelens/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/datelens/internal/cleaners"
	"github.com/custodia-labs/datelens/internal/connectors/filesystem"
	"github.com/custodia-labs/datelens/internal/core/services"
	"github.com/custodia-labs/datelens/internal/logger"
	"github.com/custodia-labs/datelens/internal/normalisers"
	"github.com/custodia-labs/datelens/internal/splitters/punkt"
	"github.com/custodia-labs/datelens/internal/taggers"
	"github.com/custodia-labs/datelens/internal/tokenizers/treebank"
)

// fakeWatcher reports the queued paths once and then stops.
type fakeWatcher struct {
	paths   []string
	watched []string
	err     error
}

func (f *fakeWatcher) Watch(_ context.Context, paths []string) (<-chan string, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.watched = paths
	ch := make(chan string, len(f.paths))
	for _, p := range f.paths {
		ch <- p
	}
	close(ch)
	return ch, nil
}

// testEnv holds the services installed by setupTestServices.
type testEnv struct {
	config  *memory.ConfigStore
	watcher *fakeWatcher
	log     *bytes.Buffer
}

// setupTestServices installs a real extraction service over the local
// filesystem, an in-memory config store and a fake watcher. Everything is
// restored when the test ends.
func setupTestServices(t *testing.T) *testEnv {
	t.Helper()

	splitter, err := punkt.New()
	require.NoError(t, err)

	source := filesystem.New()
	extraction := services.NewExtractionService(
		source,
		normalisers.NewDefaultRegistry(),
		cleaners.NewDefaultPipeline(),
		splitter,
		treebank.New(),
		taggers.NewEnglish(""),
	)

	env := &testEnv{
		config:  memory.NewConfigStore(),
		watcher: &fakeWatcher{},
		log:     new(bytes.Buffer),
	}

	oldExtraction, oldConfig, oldWatcher, oldFactory := extractionService, configStore, changeWatcher, serviceFactory
	SetServiceFactory(nil)
	SetServices(&Services{Extraction: extraction, Config: env.config, Watcher: env.watcher})
	logger.SetOutput(env.log)

	t.Cleanup(func() {
		extractionService, configStore, changeWatcher, serviceFactory = oldExtraction, oldConfig, oldWatcher, oldFactory
		logger.SetOutput(os.Stderr)
		logger.SetVerbose(false)
		resetFlags(rootCmd)
	})

	return env
}

// resetFlags restores every flag to its default; cobra keeps flag state
// between executions of the same command tree.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

// writeFile creates a file under dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "datelens", rootCmd.Use)
	assert.Contains(t, rootCmd.Long, "[[segments]]")
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	for _, name := range []string{"config", "verbose", "no-color"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, "v", rootCmd.PersistentFlags().Lookup("verbose").Shorthand)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"extract", "parse", "browse", "config", "mcp", "version"} {
		assert.True(t, names[want], "missing %s command", want)
	}
}

func TestRootCmd_FactoryReceivesConfigDir(t *testing.T) {
	env := setupTestServices(t)
	dir := t.TempDir()

	var gotDir string
	SetServiceFactory(func(configDir string) (*Services, error) {
		gotDir = configDir
		return &Services{Extraction: extractionService, Config: env.config, Watcher: env.watcher}, nil
	})

	out, err := execute(t, "--config", dir, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, dir, gotDir)
	assert.Contains(t, out, ":memory:")
}

func TestRootCmd_FactoryError(t *testing.T) {
	setupTestServices(t)
	SetServiceFactory(func(string) (*Services, error) {
		return nil, errors.New("config.toml: bad table")
	})

	_, err := execute(t, "config", "path")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "initialising services")
	assert.Contains(t, err.Error(), "bad table")
}

func TestRootCmd_VersionSkipsFactory(t *testing.T) {
	setupTestServices(t)
	SetServiceFactory(func(string) (*Services, error) {
		return nil, errors.New("must not be called")
	})

	out, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "datelens version")
}

func TestRootCmd_VerboseEnablesLogging(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}
