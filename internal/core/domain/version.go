package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// MigrateShimPath is the compatibility shim loaded for library versions newer than 1.9.
const MigrateShimPath = "modules/jquery/jquery-migrate-1.2.1.min.js"

// shimThreshold is the version a library must exceed for the shim to be loaded.
var shimThreshold = []int{1, 9}

// LibraryRequest names a library and the version whose scripts should be loaded.
type LibraryRequest struct {
	Name    string
	Version string
}

// LoadLibrary returns the ordered script paths for the requested library version.
//
// The minified base script always comes first. The compatibility shim is appended
// when the parsed version compares greater than 1.9, so "1.9.1" loads the shim
// while "1.9" and "1.8.0" do not.
func LoadLibrary(req LibraryRequest) ([]string, error) {
	parsed, err := ParseVersion(req.Version)
	if err != nil {
		return nil, zerr.With(err, "library", req.Name)
	}

	scripts := []string{fmt.Sprintf("modules/%s/%s/%s.min.js", req.Name, req.Version, req.Name)}
	if slices.Compare(parsed, shimThreshold) > 0 {
		scripts = append(scripts, MigrateShimPath)
	}
	return scripts, nil
}

// ParseVersion splits a dotted version string into its integer components.
// Every component must be a non-empty run of ASCII digits.
func ParseVersion(version string) ([]int, error) {
	if version == "" {
		return nil, zerr.With(ErrInvalidVersion, "version", version)
	}

	parts := strings.Split(version, ".")
	parsed := make([]int, 0, len(parts))
	for _, part := range parts {
		if part == "" || strings.TrimLeft(part, "0123456789") != "" {
			return nil, zerr.With(ErrInvalidVersion, "version", version)
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, ErrInvalidVersion.Error()), "version", version)
		}
		parsed = append(parsed, n)
	}
	return parsed, nil
}
