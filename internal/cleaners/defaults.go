package cleaners

import "github.com/custodia-labs/datelens/internal/core/ports/driven"

// DefaultOrder is the processor order used when none is configured.
var DefaultOrder = []string{
	NameNFKC,
	NameBrackets,
	NameMarkup,
	NameWhitespace,
	NameDots,
	NameLowercase,
}

// RegisterDefaults registers all built-in processors with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(NameNFKC, func() driven.TextProcessor { return NFKC{} })
	r.Register(NameBrackets, func() driven.TextProcessor { return Brackets{} })
	r.Register(NameMarkup, func() driven.TextProcessor { return Markup{} })
	r.Register(NameDots, func() driven.TextProcessor { return Dots{} })
	r.Register(NameWhitespace, func() driven.TextProcessor { return Whitespace{} })
	r.Register(NameLowercase, func() driven.TextProcessor { return Lowercase{} })
}

// NewDefaultRegistry returns a registry holding the built-in processors.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

// NewDefaultPipeline builds the standard pipeline in DefaultOrder.
func NewDefaultPipeline() *Pipeline {
	p, err := NewDefaultRegistry().BuildPipeline(DefaultOrder)
	if err != nil {
		panic(err) // DefaultOrder only names registered processors
	}
	return p
}
