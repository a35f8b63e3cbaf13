// Package static maps static paths to URLs and locates static files across
// the project's static directories.
package static

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.StaticFiles        = (*Files)(nil)
	_ ports.StaticFilesFactory = (*Factory)(nil)
)

// Factory creates Files for a project layout.
type Factory struct{}

// NewFactory creates a new Factory.
func NewFactory() *Factory {
	return &Factory{}
}

// NewStaticFiles returns the static files of project.
func (f *Factory) NewStaticFiles(project domain.Project) ports.StaticFiles {
	return New(project.StaticURL, project.SearchDirs())
}

// Files resolves static paths against an ordered list of directories.
type Files struct {
	url  string
	dirs []string
}

// New creates Files serving under url and searching dirs in order.
func New(url string, dirs []string) *Files {
	return &Files{url: url, dirs: dirs}
}

// URL returns the URL of a static path. Absolute URLs and rooted paths are
// returned unchanged.
func (f *Files) URL(p string) string {
	if isExternal(p) {
		return p
	}
	return strings.TrimSuffix(f.url, "/") + "/" + p
}

// File returns the absolute path of the first directory entry matching p.
func (f *Files) File(p string) (string, error) {
	if !isExternal(p) {
		rel := filepath.FromSlash(path.Clean(p))
		for _, dir := range f.dirs {
			candidate := filepath.Join(dir, rel)
			if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
				return candidate, nil
			}
		}
	}

	return "", zerr.With(domain.ErrStaticFileNotFound, "path", p)
}

// Expand returns the static paths matching pattern in any directory, sorted
// and de-duplicated. Paths use forward slashes.
func (f *Files) Expand(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, zerr.With(domain.ErrInvalidPattern, "pattern", pattern)
	}

	var matches []string
	for _, dir := range f.dirs {
		found, err := doublestar.Glob(os.DirFS(dir), pattern, doublestar.WithFilesOnly())
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, zerr.With(zerr.Wrap(err, "failed to expand static pattern"), "dir", dir)
		}
		matches = append(matches, found...)
	}

	slices.Sort(matches)
	return slices.Compact(matches), nil
}

func isExternal(p string) bool {
	return strings.HasPrefix(p, "/") || strings.Contains(p, "://")
}
