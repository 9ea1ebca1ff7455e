package manifest

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	"github.com/alnah/go-webpack-assets/internal/hints"
)

// Loader reads a manifest file once and memoizes the result.
// Safe for concurrent use.
type Loader struct {
	path     string
	logger   *slog.Logger
	readFile func(string) ([]byte, error)

	mu     sync.Mutex // serializes first population
	cached atomic.Pointer[Manifest]
}

// NewLoader creates a Loader for {projectDir}/{manifestPath}.
// A nil logger discards output.
func NewLoader(projectDir, manifestPath string, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Loader{
		path:     filepath.Join(projectDir, manifestPath),
		logger:   logger,
		readFile: os.ReadFile,
	}
}

// Path returns the full filesystem path of the manifest.
func (l *Loader) Path() string {
	return l.path
}

// Load returns the cached manifest, reading and parsing the file on first use.
// Returns ErrNotFound, ErrRead, ErrParse or ErrSectionMissing on failure;
// failures leave the cache empty so a later call reads the file again.
func (l *Loader) Load() (*Manifest, error) {
	if m := l.cached.Load(); m != nil {
		return m, nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	// Another caller may have finished while we waited.
	if m := l.cached.Load(); m != nil {
		return m, nil
	}

	data, err := l.readFile(l.path) // #nosec G304 -- path comes from configuration
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s%s", ErrNotFound, l.path, hints.ForManifestNotFound())
		}
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	m, err := Parse(data, l.path)
	if err != nil {
		return nil, err
	}

	l.cached.Store(m)
	l.logger.Debug("manifest loaded", "path", l.path, "entrypoints", m.Len(), "bytes", len(data))
	return m, nil
}
