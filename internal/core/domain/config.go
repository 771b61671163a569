package domain

// Configuration keys in dot notation, as stored in config.toml.
const (
	ConfigKeyDefaultTag = "tagger.default_tag"
	ConfigKeyFormat     = "report.format"
	ConfigKeyWidth      = "report.width"
	ConfigKeyProcessors = "pipeline.processors"
)

// Defaults applied when a key is absent.
const (
	DefaultReportFormat = "text"
	DefaultReportWidth  = 80
)
