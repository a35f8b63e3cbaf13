// Package plugins resolves template-use entries and built-in plugins to the
// links a template includes.
package plugins

import (
	"slices"
	"strings"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.AssetLookup        = (*Lookup)(nil)
	_ ports.AssetLookupFactory = (*Factory)(nil)
)

// Plugin produces links from the loaded settings.
type Plugin func(settings *domain.Settings) (domain.Links, error)

// Factory creates lookups sharing one plugin registry.
type Factory struct {
	plugins map[string]Plugin
}

// NewFactory creates a Factory with the built-in plugins registered.
func NewFactory() *Factory {
	return &Factory{plugins: Builtins()}
}

// NewLookup returns a lookup over the template-use table of settings.
func (f *Factory) NewLookup(settings *domain.Settings, files ports.StaticFiles) ports.AssetLookup {
	return NewLookup(settings, files, f.plugins)
}

// Lookup implements ports.AssetLookup over a template-use table.
type Lookup struct {
	settings *domain.Settings
	files    ports.StaticFiles
	plugins  map[string]Plugin
}

// NewLookup creates a Lookup. Glob links are expanded through files.
func NewLookup(settings *domain.Settings, files ports.StaticFiles, plugins map[string]Plugin) *Lookup {
	return &Lookup{
		settings: settings,
		files:    files,
		plugins:  plugins,
	}
}

// Find resolves ref and its dependencies. Dependencies come first, depth-first
// in declared order, and each entry contributes its links at most once.
func (l *Lookup) Find(ref string) (domain.Links, error) {
	var links domain.Links
	visited := make(map[string]bool)

	if err := l.collect(ref, nil, visited, &links); err != nil {
		return domain.Links{}, err
	}
	return links, nil
}

func (l *Lookup) collect(name string, stack []string, visited map[string]bool, links *domain.Links) error {
	if slices.Contains(stack, name) {
		cycle := strings.Join(append(stack, name), " -> ")
		return zerr.With(domain.ErrAssetCycle, "cycle", cycle)
	}
	if visited[name] {
		return nil
	}
	visited[name] = true

	entry, ok := l.settings.Use(name)
	if !ok {
		return zerr.With(domain.ErrUnknownAsset, "asset", name)
	}

	stack = append(stack, name)
	for _, dep := range entry.Depends {
		if err := l.collect(dep, stack, visited, links); err != nil {
			return err
		}
	}

	if err := l.applyPlugin(entry, links); err != nil {
		return err
	}

	head, err := l.expand(entry.TopLinks)
	if err != nil {
		return zerr.With(err, "asset", name)
	}
	body, err := l.expand(entry.BottomLinks)
	if err != nil {
		return zerr.With(err, "asset", name)
	}
	links.Append(domain.Links{Head: head, Body: body})

	return nil
}

func (l *Lookup) applyPlugin(entry domain.UseEntry, links *domain.Links) error {
	name := entry.Plugin
	if name == "" {
		if len(entry.TopLinks) > 0 || len(entry.BottomLinks) > 0 {
			return nil
		}
		if _, ok := l.plugins[entry.Name]; !ok {
			return nil
		}
		name = entry.Name
	}

	plugin, ok := l.plugins[name]
	if !ok {
		err := zerr.With(domain.ErrUnknownPlugin, "plugin", name)
		return zerr.With(err, "asset", entry.Name)
	}

	pluginLinks, err := plugin(l.settings)
	if err != nil {
		err = zerr.With(err, "plugin", name)
		return zerr.With(err, "asset", entry.Name)
	}
	links.Append(pluginLinks)
	return nil
}

func (l *Lookup) expand(links []string) ([]string, error) {
	expanded := make([]string, 0, len(links))
	for _, link := range links {
		if !domain.IsPattern(link) {
			expanded = append(expanded, link)
			continue
		}

		matches, err := l.files.Expand(link)
		if err != nil {
			return nil, err
		}
		expanded = append(expanded, matches...)
	}
	return expanded, nil
}
