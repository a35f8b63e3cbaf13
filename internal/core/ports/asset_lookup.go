package ports

import "go.trai.ch/weld/internal/core/domain"

// AssetLookup resolves asset references to the links a template would include.
//
//go:generate go run go.uber.org/mock/mockgen -source=asset_lookup.go -destination=mocks/mock_asset_lookup.go -package=mocks
type AssetLookup interface {
	// Find returns the head and body entries of the named asset reference.
	// It returns an error if the reference cannot be resolved.
	Find(ref string) (domain.Links, error)
}

// AssetLookupFactory builds an AssetLookup over a loaded configuration.
type AssetLookupFactory interface {
	// NewLookup returns a lookup over the template-use table of settings.
	// Glob links are expanded through files.
	NewLookup(settings *domain.Settings, files StaticFiles) AssetLookup
}
