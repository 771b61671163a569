package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

func TestConfigCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range configCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"path", "get", "set", "segments"} {
		assert.True(t, names[want], "missing config %s", want)
	}
}

func TestConfigCmd_Path(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "config", "path")

	require.NoError(t, err)
	assert.Equal(t, ":memory:\n", out)
}

func TestConfigCmd_GetMissingKey(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "config", "get", "report.width")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestConfigCmd_SetAndGet(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "config", "set", "report.width", "100")
	require.NoError(t, err)
	assert.Contains(t, out, "report.width = 100")
	assert.Equal(t, 100, env.config.GetInt(domain.ConfigKeyWidth))

	out, err = execute(t, "config", "get", "report.width")
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)
}

func TestConfigCmd_SetProcessors(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "config", "set", "pipeline.processors", "nfkc, whitespace,lowercase")

	require.NoError(t, err)
	assert.Contains(t, out, "nfkc, whitespace, lowercase")
	assert.Equal(t, []string{"nfkc", "whitespace", "lowercase"}, env.config.GetStringSlice(domain.ConfigKeyProcessors))
}

func TestConfigCmd_SetRejectsUnknownFormat(t *testing.T) {
	env := setupTestServices(t)

	_, err := execute(t, "config", "set", "report.format", "xml")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, ok := env.config.Get(domain.ConfigKeyFormat)
	assert.False(t, ok)
}

func TestConfigCmd_Segments(t *testing.T) {
	env := setupTestServices(t)

	out, err := execute(t, "config", "segments")
	require.NoError(t, err)
	assert.Contains(t, out, "No segments configured.")

	env.config.SetSegments([]domain.Segment{{
		Name:  "letters",
		Epoch: domain.CalendarDate{Year: 1781, Month: 10, Day: 19},
		Files: []string{"letters.html", "notes.md"},
	}})

	out, err = execute(t, "config", "segments")
	require.NoError(t, err)
	assert.Contains(t, out, "letters (epoch 1781-10-19)")
	assert.Contains(t, out, "  notes.md")
}

func TestConfigCmd_NotLoaded(t *testing.T) {
	setupTestServices(t)
	configStore = nil

	_, err := execute(t, "config", "path")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "configuration not loaded")
}

func TestConfigCmd_SetRejectsUnknownProcessor(t *testing.T) {
	env := setupTestServices(t)

	_, err := execute(t, "config", "set", "pipeline.processors", "nfkc,bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, ok := env.config.Get(domain.ConfigKeyProcessors)
	assert.False(t, ok)

	_, err = execute(t, "config", "set", "pipeline.processors", "nfkc")
	require.NoError(t, err)
	assert.Equal(t, []string{"nfkc"}, env.config.GetStringSlice(domain.ConfigKeyProcessors))
}

func TestConfigCmd_SetRejectsReservedDefaultTag(t *testing.T) {
	env := setupTestServices(t)

	_, err := execute(t, "config", "set", "tagger.default_tag", "DATE")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, ok := env.config.Get(domain.ConfigKeyDefaultTag)
	assert.False(t, ok)
}

func TestConfigCmd_SetNumericTagStaysString(t *testing.T) {
	env := setupTestServices(t)

	_, err := execute(t, "config", "set", "tagger.default_tag", "1")

	require.NoError(t, err)
	val, ok := env.config.Get(domain.ConfigKeyDefaultTag)
	require.True(t, ok)
	assert.Equal(t, "1", val)
	assert.Equal(t, "1", env.config.GetString(domain.ConfigKeyDefaultTag))
}

func TestParseConfigValue(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		raw      string
		expected any
	}{
		{"width", "report.width", "72", 72},
		{"format", "report.format", "json", "json"},
		{"default tag", "tagger.default_tag", "NN", "NN"},
		{"numeric default tag", "tagger.default_tag", "1", "1"},
		{"unknown key keeps string", "report.color", "false", "false"},
		{"processor list", "pipeline.processors", "nfkc,,dots ", []string{"nfkc", "dots"}},
		{"empty processor list", "pipeline.processors", "", []string(nil)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseConfigValue(tt.key, tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseConfigValue_Invalid(t *testing.T) {
	tests := []struct {
		name string
		key  string
		raw  string
	}{
		{"width not a number", "report.width", "wide"},
		{"width zero", "report.width", "0"},
		{"width negative", "report.width", "-5"},
		{"unknown format", "report.format", "xml"},
		{"reserved tag", "tagger.default_tag", "DATE"},
		{"unknown processor", "pipeline.processors", "nfkc,stemmer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseConfigValue(tt.key, tt.raw)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestFormatConfigValue(t *testing.T) {
	assert.Equal(t, "a, b", formatConfigValue([]string{"a", "b"}))
	assert.Equal(t, "a, 1", formatConfigValue([]any{"a", int64(1)}))
	assert.Equal(t, "80", formatConfigValue(int64(80)))
	assert.Equal(t, "text", formatConfigValue("text"))
}
