// Package filesystem reads source documents from local disk and watches
// them for modification with fsnotify.
package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driven"
	"github.com/custodia-labs/datelens/internal/logger"
	"github.com/custodia-labs/datelens/internal/normalisers"
)

// Ensure Connector implements the interfaces.
var (
	_ driven.DocumentSource = (*Connector)(nil)
	_ driven.ChangeWatcher  = (*Connector)(nil)
)

// Connector loads documents from the local filesystem.
type Connector struct{}

// New creates a filesystem connector.
func New() *Connector {
	return &Connector{}
}

// Read loads a file. Paths may be bare or carry a file:// prefix.
func (c *Connector) Read(ctx context.Context, path string) (*domain.RawDocument, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	local := ResolvePath(path)
	mimeType, err := normalisers.MIMETypeForPath(local)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(local)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", local, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("read %s: %w: is a directory", local, domain.ErrInvalidInput)
	}

	content, err := os.ReadFile(local)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", local, err)
	}

	logger.Debug("Read %s (%d bytes, %s)", local, len(content), mimeType)

	return &domain.RawDocument{
		URI:      local,
		MIMEType: mimeType,
		Content:  content,
		Metadata: map[string]any{
			"size":     info.Size(),
			"modified": info.ModTime(),
		},
	}, nil
}

// Watch watches the parent directory of every path so that files replaced
// by rename (as most editors save) keep being reported.
func (c *Connector) Watch(ctx context.Context, paths []string) (<-chan string, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no files to watch", domain.ErrInvalidInput)
	}

	targets := make(map[string]string, len(paths))
	dirs := make(map[string]struct{})
	for _, p := range paths {
		abs, err := filepath.Abs(ResolvePath(p))
		if err != nil {
			return nil, fmt.Errorf("resolve %s: %w", p, err)
		}
		targets[abs] = p
		dirs[filepath.Dir(abs)] = struct{}{}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	for dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	changes := make(chan string)
	go func() {
		defer close(changes)
		defer watcher.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				path, changed := handleFsEvent(event, targets)
				if !changed {
					continue
				}
				select {
				case changes <- path:
				case <-ctx.Done():
					return
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("Watcher error: %v", err)
			}
		}
	}()

	return changes, nil
}

// handleFsEvent maps a filesystem event to the watched path it concerns.
// Only writes and creations count; removals are followed by a create when
// a file is replaced.
func handleFsEvent(event fsnotify.Event, targets map[string]string) (string, bool) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return "", false
	}
	path, ok := targets[filepath.Clean(event.Name)]
	return path, ok
}

// ResolvePath converts a file:// URI to a local path.
// Bare paths pass through unchanged.
func ResolvePath(uri string) string {
	return strings.TrimPrefix(uri, "file://")
}
