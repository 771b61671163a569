package driven

import "github.com/custodia-labs/datelens/internal/core/domain"

// Tagger assigns a part-of-speech tag to each token.
type Tagger interface {
	// Tag returns one TaggedToken per input token, in order.
	// Unknown words receive a deterministic default tag.
	Tag(tokens []string) []domain.TaggedToken
}
