package config

import (
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Weldfile represents the structure of weld.yaml and of app settings.yaml files.
// Layout keys (apps_dir, installed_apps, static_url, static_dirs) are only
// honored in weld.yaml.
type Weldfile struct {
	AppsDir       string              `yaml:"apps_dir"`
	InstalledApps []string            `yaml:"installed_apps"`
	StaticURL     string              `yaml:"static_url"`
	StaticDirs    []string            `yaml:"static_dirs"`
	UIVersion     map[string]string   `yaml:"ui_version"`
	UIConfig      UIConfigDTO         `yaml:"ui_config"`
	TemplateUse   Ordered[UseDTO]     `yaml:"template_use"`
	TemplateGulp  Ordered[BundleRefs] `yaml:"template_gulp"`
	StaticCombine StaticCombineDTO    `yaml:"static_combine"`
	Gulp          GulpDTO             `yaml:"gulp"`
}

// UseDTO represents a template_use entry.
type UseDTO struct {
	Plugin      string   `yaml:"plugin"`
	TopLinks    []string `yaml:"toplinks"`
	BottomLinks []string `yaml:"bottomlinks"`
	Depends     []string `yaml:"depends"`
}

// UIConfigDTO represents the ui_config section.
type UIConfigDTO struct {
	JQueryBootstrap string `yaml:"jquery_bootstrap"`
}

// StaticCombineDTO represents the static_combine section.
// Pointers distinguish an unset flag from an explicit false when merging.
type StaticCombineDTO struct {
	Enable    *bool      `yaml:"enable"`
	IncludeJS *bool      `yaml:"include_js"`
	Files     [][]string `yaml:"files"`
}

// GulpDTO represents the gulp section.
type GulpDTO struct {
	Command []string `yaml:"command"`
	Dir     string   `yaml:"dir"`
}

// Entry is one key/value pair of an Ordered mapping.
type Entry[T any] struct {
	Name  string
	Value T
}

// Ordered is a YAML mapping decoded with its key order preserved.
type Ordered[T any] []Entry[T]

// UnmarshalYAML decodes a mapping node pair by pair.
func (o *Ordered[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return zerr.With(zerr.With(domain.ErrInvalidConfig, "reason", "expected a mapping"), "line", node.Line)
	}

	entries := make(Ordered[T], 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, value := node.Content[i], node.Content[i+1]

		var entry Entry[T]
		if err := key.Decode(&entry.Name); err != nil {
			return err
		}
		if err := value.Decode(&entry.Value); err != nil {
			return zerr.With(err, "key", entry.Name)
		}
		entries = append(entries, entry)
	}

	*o = entries
	return nil
}

// Set replaces the value stored under name or appends a new entry.
func (o *Ordered[T]) Set(name string, value T) {
	for i := range *o {
		if (*o)[i].Name == name {
			(*o)[i].Value = value
			return
		}
	}
	*o = append(*o, Entry[T]{Name: name, Value: value})
}

// BundleRefs is the list of asset references of a template_gulp bundle.
// Every item must be a plain scalar.
type BundleRefs []string

// UnmarshalYAML decodes a sequence of scalar references.
func (b *BundleRefs) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode {
		return zerr.With(zerr.With(domain.ErrInvalidConfig, "reason", "expected a list of asset references"), "line", node.Line)
	}

	refs := make(BundleRefs, 0, len(node.Content))
	for _, item := range node.Content {
		if item.Kind != yaml.ScalarNode {
			err := zerr.With(domain.ErrInvalidConfig, "reason", "asset reference must be a string")
			return zerr.With(err, "line", item.Line)
		}
		refs = append(refs, item.Value)
	}

	*b = refs
	return nil
}
