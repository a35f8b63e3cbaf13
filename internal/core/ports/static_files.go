package ports

import "go.trai.ch/weld/internal/core/domain"

// StaticFiles maps static paths to URLs and to files on disk.
//
//go:generate go run go.uber.org/mock/mockgen -source=static_files.go -destination=mocks/mock_static_files.go -package=mocks
type StaticFiles interface {
	// URL returns the URL the static path is served under.
	URL(path string) string

	// File returns the absolute path of the first static directory entry matching path.
	File(path string) (string, error)

	// Expand returns the static paths matching a glob pattern, sorted and de-duplicated.
	Expand(pattern string) ([]string, error)
}

// StaticFilesFactory builds StaticFiles for a project layout.
type StaticFilesFactory interface {
	NewStaticFiles(project domain.Project) StaticFiles
}
