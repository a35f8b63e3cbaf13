// Package resolver turns bundle configurations into bundle outputs and gulp sections.
package resolver

import (
	"slices"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

// Resolver resolves bundle configurations through an AssetLookup.
//
// Resolution is sequential: bundles in configuration order, references in
// declared order, then head entries before body entries. The first lookup
// failure aborts the whole resolution and no partial result is returned.
type Resolver struct{}

// New creates a new Resolver.
func New() *Resolver {
	return &Resolver{}
}

// Bundles resolves every bundle of cfg into script and stylesheet buckets keyed
// "<name>.js" and "<name>.css". Inline markup is always dropped and scripts are
// dropped unless includeScripts is set. Empty buckets are omitted.
func (r *Resolver) Bundles(
	cfg domain.BundleConfig,
	lookup ports.AssetLookup,
	includeScripts bool,
) (*domain.BundleOutput, error) {
	out := domain.NewBundleOutput()

	for _, spec := range cfg {
		var scripts, stylesheets []string

		for _, ref := range spec.Refs {
			entries, err := r.find(lookup, spec.Name, ref, includeScripts)
			if err != nil {
				return nil, err
			}

			for _, entry := range entries {
				if domain.ClassifyAsset(entry) == domain.AssetScript {
					scripts = append(scripts, entry)
				} else {
					stylesheets = append(stylesheets, entry)
				}
			}
		}

		out.Add(spec.Name+domain.AssetScript.Extension(), scripts...)
		out.Add(spec.Name+domain.AssetStylesheet.Extension(), stylesheets...)
	}

	return out, nil
}

// Sections resolves cfg into one gulp section per asset reference that is part
// of the active-use set. References outside the set are skipped.
func (r *Resolver) Sections(
	cfg domain.BundleConfig,
	active []string,
	lookup ports.AssetLookup,
	includeScripts bool,
) ([]domain.GulpSection, error) {
	var sections []domain.GulpSection

	for _, spec := range cfg {
		for _, ref := range spec.Refs {
			if !slices.Contains(active, ref) {
				continue
			}

			entries, err := r.find(lookup, spec.Name, ref, includeScripts)
			if err != nil {
				return nil, err
			}

			sections = append(sections, domain.GulpSection{
				Name:     ref,
				Dist:     spec.Name,
				TopLinks: entries,
			})
		}
	}

	return sections, nil
}

func (r *Resolver) find(lookup ports.AssetLookup, bundle, ref string, includeScripts bool) ([]string, error) {
	links, err := lookup.Find(ref)
	if err != nil {
		err = zerr.Wrap(err, domain.ErrAssetResolution.Error())
		err = zerr.With(err, "bundle", bundle)
		return nil, zerr.With(err, "asset", ref)
	}
	return domain.FilterBundleable(links.All(), includeScripts), nil
}
