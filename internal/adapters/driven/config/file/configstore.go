package file

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/datelens/internal/core/domain"
	"github.com/custodia-labs/datelens/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// DefaultDirName is the configuration directory created under the user's home.
const DefaultDirName = ".datelens"

// segmentsKey is the top-level array of tables holding document segments.
const segmentsKey = "segments"

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
// Scalar settings are exposed with dot-notation keys; segments are decoded
// into typed values on demand.
type ConfigStore struct {
	mu        sync.RWMutex
	configDir string
	filePath  string
	data      map[string]any
	segments  []segmentEntry
}

// segmentEntry mirrors one [[segments]] table. Epoch accepts either a
// quoted string or a bare TOML local date.
type segmentEntry struct {
	Name  string   `toml:"name"`
	Epoch any      `toml:"epoch"`
	Files []string `toml:"files"`
}

type fileLayout struct {
	Segments []segmentEntry `toml:"segments"`
}

// NewConfigStore creates a new TOML-based config store.
// If configDir is empty, defaults to ~/.datelens/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		configDir = filepath.Join(home, DefaultDirName)
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		configDir: configDir,
		filePath:  filepath.Join(configDir, "config.toml"),
		data:      make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string {
	val, ok := s.Get(key)
	if !ok {
		return ""
	}

	str, ok := val.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt retrieves an integer configuration value.
func (s *ConfigStore) GetInt(key string) int {
	val, ok := s.Get(key)
	if !ok {
		return 0
	}

	// TOML integers are parsed as int64
	switch v := val.(type) {
	case int64:
		return int(v)
	case int:
		return v
	default:
		return 0
	}
}

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool {
	val, ok := s.Get(key)
	if !ok {
		return false
	}

	b, ok := val.(bool)
	if !ok {
		return false
	}
	return b
}

// GetStringSlice retrieves a string slice configuration value.
func (s *ConfigStore) GetStringSlice(key string) []string {
	val, ok := s.Get(key)
	if !ok {
		return nil
	}

	// TOML arrays are parsed as []any
	switch v := val.(type) {
	case []string:
		return v
	case []any:
		result := make([]string, 0, len(v))
		for _, item := range v {
			if str, ok := item.(string); ok {
				result = append(result, str)
			}
		}
		return result
	default:
		return nil
	}
}

// Set stores a configuration value and persists immediately.
// The segments table can only be edited in the file itself.
func (s *ConfigStore) Set(key string, value any) error {
	if key == segmentsKey || strings.HasPrefix(key, segmentsKey+".") {
		return fmt.Errorf("%w: %s is edited in %s", domain.ErrInvalidInput, key, s.filePath)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes configuration to the TOML file (caller must hold lock).
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(unflattenMap(s.data))
	if err != nil {
		return err
	}

	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file.
// A missing file yields an empty configuration.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			s.data = make(map[string]any)
			s.segments = nil
			return nil
		}
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parse %s: %w", s.filePath, err)
	}
	var layout fileLayout
	if err := toml.Unmarshal(data, &layout); err != nil {
		return fmt.Errorf("parse segments in %s: %w", s.filePath, err)
	}

	if loaded == nil {
		loaded = make(map[string]any)
	}

	s.data = flattenMap(loaded, "")
	s.segments = layout.Segments
	return nil
}

// Segments returns the configured segments in file order.
// Relative file paths resolve against the configuration directory.
func (s *ConfigStore) Segments() ([]domain.Segment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	segments := make([]domain.Segment, 0, len(s.segments))
	for i, entry := range s.segments {
		name := entry.Name
		if name == "" {
			name = fmt.Sprintf("segment %d", i+1)
		}

		if entry.Epoch == nil {
			return nil, fmt.Errorf("%s: %w: missing epoch", name, domain.ErrInvalidEpoch)
		}
		epoch, err := domain.ParseEpoch(fmt.Sprint(entry.Epoch))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		if len(entry.Files) == 0 {
			return nil, fmt.Errorf("%s: %w: no files", name, domain.ErrInvalidInput)
		}
		files := make([]string, len(entry.Files))
		for j, f := range entry.Files {
			files[j] = s.resolve(f)
		}

		segments = append(segments, domain.Segment{Name: name, Epoch: epoch, Files: files})
	}
	return segments, nil
}

func (s *ConfigStore) resolve(path string) string {
	if filepath.IsAbs(path) || strings.HasPrefix(path, "file://") {
		return path
	}
	return filepath.Join(s.configDir, path)
}

// flattenMap converts nested maps to dot-notation keys.
// E.g., {"a": {"b": 1}} becomes {"a.b": 1}.
func flattenMap(m map[string]any, prefix string) map[string]any {
	result := make(map[string]any)

	for key, value := range m {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		if nested, ok := value.(map[string]any); ok {
			for k, v := range flattenMap(nested, fullKey) {
				result[k] = v
			}
		} else {
			result[fullKey] = value
		}
	}

	return result
}

// unflattenMap is the inverse of flattenMap, so saved files keep their tables.
func unflattenMap(flat map[string]any) map[string]any {
	root := make(map[string]any)

	for key, value := range flat {
		parts := strings.Split(key, ".")
		node := root
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]any)
			if !ok {
				child = make(map[string]any)
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = value
	}

	return root
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}
