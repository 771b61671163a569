package driven

import "context"

// TextProcessor rewrites document text before sentence splitting.
// TextProcessors are chained in a pipeline (e.g., reference stripping, lower-casing).
type TextProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process returns the rewritten text.
	Process(ctx context.Context, text string) (string, error)
}

// TextPipeline chains multiple TextProcessors.
type TextPipeline interface {
	// Process runs the text through all processors in order.
	Process(ctx context.Context, text string) (string, error)
}
