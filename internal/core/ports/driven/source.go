package driven

import (
	"context"

	"github.com/custodia-labs/datelens/internal/core/domain"
)

// DocumentSource loads raw documents by path.
type DocumentSource interface {
	// Read loads one document. The MIME type is derived from the path;
	// unknown types fail with domain.ErrUnsupportedType.
	Read(ctx context.Context, path string) (*domain.RawDocument, error)
}

// ChangeWatcher reports modifications to a fixed set of files.
type ChangeWatcher interface {
	// Watch emits the path of every watched file that is written, created
	// or replaced. The channel closes when ctx is cancelled.
	Watch(ctx context.Context, paths []string) (<-chan string, error)
}
