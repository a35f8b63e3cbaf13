package ports

// Hasher defines the interface for computing hashes.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ComputeFilesHash returns one hex digest over the contents of the
	// ordered file list.
	ComputeFilesHash(paths []string) (string, error)

	// BundleKey returns the content-hash bundle key for an ordered file list.
	BundleKey(files []string) string
}
