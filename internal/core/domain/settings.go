package domain

import "path/filepath"

// Project locates the project's apps and static directories on disk.
type Project struct {
	// Root is the absolute directory holding weld.yaml.
	Root string
	// AppsDir is the absolute directory holding one directory per app.
	AppsDir string
	// Apps lists the installed apps in load order.
	Apps []string
	// StaticURL is the URL prefix static files are served under.
	StaticURL string
	// StaticDirs are extra static directories, absolute, searched before app statics.
	StaticDirs []string
}

// AppDir returns the directory of the named app.
func (p Project) AppDir(app string) string {
	return filepath.Join(p.AppsDir, app)
}

// AppStaticDir returns the static directory of the named app.
func (p Project) AppStaticDir(app string) string {
	return filepath.Join(p.AppDir(app), StaticDirName)
}

// SearchDirs returns the static directories in lookup priority order:
// configured static dirs first, then installed apps with later apps first.
func (p Project) SearchDirs() []string {
	dirs := make([]string, 0, len(p.StaticDirs)+len(p.Apps))
	dirs = append(dirs, p.StaticDirs...)
	for i := len(p.Apps) - 1; i >= 0; i-- {
		dirs = append(dirs, p.AppStaticDir(p.Apps[i]))
	}
	return dirs
}

// UseEntry is one template-use definition: the links a template pulls in when
// it uses the entry by name.
type UseEntry struct {
	Name        string
	Plugin      string
	TopLinks    []string
	BottomLinks []string
	Depends     []string
}

// UIConfig holds the ui_config settings consumed by built-in plugins.
type UIConfig struct {
	JQueryBootstrap string
}

// StaticCombine holds the static_combine settings.
type StaticCombine struct {
	Enable    bool
	IncludeJS bool
	// Files are explicit file lists combined under a content-hash key.
	Files [][]string
}

// GulpConfig describes how the external build tool is invoked.
type GulpConfig struct {
	Command []string
	// Dir is the absolute working directory of the build tool.
	Dir string
}

// Settings is the loaded configuration of a project or app.
type Settings struct {
	Project       Project
	TemplateUse   []UseEntry
	TemplateGulp  BundleConfig
	UIVersion     map[string]string
	UIConfig      UIConfig
	StaticCombine StaticCombine
	Gulp          GulpConfig
}

// Use returns the template-use entry with the given name.
func (s *Settings) Use(name string) (UseEntry, bool) {
	for _, entry := range s.TemplateUse {
		if entry.Name == name {
			return entry, true
		}
	}
	return UseEntry{}, false
}

// UseNames returns the template-use names in configuration order.
// This is the active-use set gating gulp sections.
func (s *Settings) UseNames() []string {
	names := make([]string, len(s.TemplateUse))
	for i, entry := range s.TemplateUse {
		names[i] = entry.Name
	}
	return names
}

// UseBundles returns one bundle per template-use entry, each combining only itself.
func (s *Settings) UseBundles() BundleConfig {
	cfg := make(BundleConfig, len(s.TemplateUse))
	for i, entry := range s.TemplateUse {
		cfg[i] = BundleSpec{Name: entry.Name, Refs: []string{entry.Name}}
	}
	return cfg
}
