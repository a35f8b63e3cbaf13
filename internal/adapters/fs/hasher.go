// Package fs implements file hashing for build fingerprints and combine keys.
package fs

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ComputeFileHash returns the XXHash of a file's content as 16 hex digits.
func (h *Hasher) ComputeFileHash(p string) (string, error) {
	f, err := os.Open(p) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileOpenFailed.Error()), "path", p)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", p)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeFilesHash returns the XXHash over each path and its content hash,
// in order. Changing, renaming or reordering any file changes the result.
func (h *Hasher) ComputeFilesHash(paths []string) (string, error) {
	hasher := xxhash.New()
	for _, p := range paths {
		sum, err := h.ComputeFileHash(p)
		if err != nil {
			return "", err
		}
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(sum)
		_, _ = hasher.Write([]byte{0})
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// BundleKey returns "_cmb_" followed by the XXHash of the ordered file list
// and the extension of the first file. The same list always yields the same key.
func (h *Hasher) BundleKey(files []string) string {
	hasher := xxhash.New()
	for _, file := range files {
		_, _ = hasher.WriteString(file)
		_, _ = hasher.Write([]byte{0}) // Separator
	}

	var ext string
	if len(files) > 0 {
		ext = path.Ext(files[0])
	}

	return fmt.Sprintf("%s%016x%s", domain.CombineKeyPrefix, hasher.Sum64(), ext)
}
