// Package config provides the configuration loader for weld.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using YAML files.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load finds weld.yaml starting at cwd and merges the settings of every
// installed app, in installed order, under the project file.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	project, weldfile, err := l.loadProject(cwd)
	if err != nil {
		return nil, err
	}

	merged := &Weldfile{}
	for _, app := range project.Apps {
		appfile, err := l.loadAppfile(project, app)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, err
		}
		merge(merged, appfile)
	}
	merge(merged, weldfile)

	return buildSettings(project, merged)
}

// LoadApp returns the settings declared in the app's own settings.yaml.
// The project layout and the gulp section still come from weld.yaml.
func (l *Loader) LoadApp(cwd, app string) (*domain.Settings, error) {
	project, weldfile, err := l.loadProject(cwd)
	if err != nil {
		return nil, err
	}

	appfile, err := l.loadAppfile(project, app)
	if errors.Is(err, fs.ErrNotExist) {
		err = zerr.With(domain.ErrAppSettingsNotFound, "app", app)
		return nil, zerr.With(err, "path", filepath.Join(project.AppDir(app), domain.AppSettingsFileName))
	}
	if err != nil {
		return nil, err
	}

	if len(appfile.Gulp.Command) == 0 && appfile.Gulp.Dir == "" {
		appfile.Gulp = weldfile.Gulp
	}

	return buildSettings(project, appfile)
}

func (l *Loader) loadProject(cwd string) (domain.Project, *Weldfile, error) {
	configPath, err := findConfiguration(cwd)
	if err != nil {
		return domain.Project{}, nil, err
	}

	var weldfile Weldfile
	if err := readAndUnmarshalYAML(configPath, &weldfile); err != nil {
		return domain.Project{}, nil, err
	}

	project, err := buildProject(filepath.Dir(configPath), &weldfile)
	if err != nil {
		return domain.Project{}, nil, zerr.With(err, "path", configPath)
	}
	return project, &weldfile, nil
}

// loadAppfile reads the settings.yaml of an installed app.
// A missing file is reported as fs.ErrNotExist.
func (l *Loader) loadAppfile(project domain.Project, app string) (*Weldfile, error) {
	path := filepath.Join(project.AppDir(app), domain.AppSettingsFileName)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fs.ErrNotExist
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var appfile Weldfile
	if err := readAndUnmarshalYAML(path, &appfile); err != nil {
		return nil, zerr.With(err, "app", app)
	}

	if appfile.AppsDir != "" || len(appfile.InstalledApps) > 0 ||
		appfile.StaticURL != "" || len(appfile.StaticDirs) > 0 {
		l.Logger.Warn(fmt.Sprintf("project layout keys in %s of app %s are ignored", domain.AppSettingsFileName, app))
	}

	return &appfile, nil
}

func findConfiguration(cwd string) (string, error) {
	abs, err := filepath.Abs(cwd)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrConfigNotFound.Error()), "cwd", cwd)
	}

	currentDir := abs
	for {
		configPath := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(configPath); err == nil {
			return configPath, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(domain.ErrConfigNotFound, "cwd", cwd)
}

func buildProject(root string, weldfile *Weldfile) (domain.Project, error) {
	appsDir := weldfile.AppsDir
	if appsDir == "" {
		appsDir = domain.DefaultAppsDir
	}

	staticURL := weldfile.StaticURL
	if staticURL == "" {
		staticURL = domain.DefaultStaticURL
	}

	for _, app := range weldfile.InstalledApps {
		if app == "" {
			return domain.Project{}, zerr.With(domain.ErrInvalidConfig, "reason", "installed app name is empty")
		}
	}

	staticDirs := make([]string, len(weldfile.StaticDirs))
	for i, dir := range weldfile.StaticDirs {
		staticDirs[i] = resolvePath(root, dir)
	}

	return domain.Project{
		Root:       root,
		AppsDir:    resolvePath(root, appsDir),
		Apps:       weldfile.InstalledApps,
		StaticURL:  staticURL,
		StaticDirs: staticDirs,
	}, nil
}

// merge layers src over dst. Mapping entries override by name and new names
// append in order; scalars and lists override when set.
func merge(dst, src *Weldfile) {
	if len(src.UIVersion) > 0 {
		if dst.UIVersion == nil {
			dst.UIVersion = make(map[string]string, len(src.UIVersion))
		}
		maps.Copy(dst.UIVersion, src.UIVersion)
	}

	if src.UIConfig.JQueryBootstrap != "" {
		dst.UIConfig.JQueryBootstrap = src.UIConfig.JQueryBootstrap
	}

	for _, entry := range src.TemplateUse {
		dst.TemplateUse.Set(entry.Name, entry.Value)
	}
	for _, entry := range src.TemplateGulp {
		dst.TemplateGulp.Set(entry.Name, entry.Value)
	}

	if src.StaticCombine.Enable != nil {
		dst.StaticCombine.Enable = src.StaticCombine.Enable
	}
	if src.StaticCombine.IncludeJS != nil {
		dst.StaticCombine.IncludeJS = src.StaticCombine.IncludeJS
	}
	if src.StaticCombine.Files != nil {
		dst.StaticCombine.Files = src.StaticCombine.Files
	}

	if len(src.Gulp.Command) > 0 {
		dst.Gulp.Command = src.Gulp.Command
	}
	if src.Gulp.Dir != "" {
		dst.Gulp.Dir = src.Gulp.Dir
	}
}

func buildSettings(project domain.Project, weldfile *Weldfile) (*domain.Settings, error) {
	if err := validate(weldfile); err != nil {
		return nil, err
	}

	uses := make([]domain.UseEntry, len(weldfile.TemplateUse))
	for i, entry := range weldfile.TemplateUse {
		uses[i] = domain.UseEntry{
			Name:        entry.Name,
			Plugin:      entry.Value.Plugin,
			TopLinks:    entry.Value.TopLinks,
			BottomLinks: entry.Value.BottomLinks,
			Depends:     entry.Value.Depends,
		}
	}

	bundles := make(domain.BundleConfig, len(weldfile.TemplateGulp))
	for i, entry := range weldfile.TemplateGulp {
		bundles[i] = domain.BundleSpec{Name: entry.Name, Refs: entry.Value}
	}

	command := weldfile.Gulp.Command
	if len(command) == 0 {
		command = []string{domain.DefaultBuildCommand}
	}

	uiVersion := weldfile.UIVersion
	if uiVersion == nil {
		uiVersion = map[string]string{}
	}

	return &domain.Settings{
		Project:      project,
		TemplateUse:  uses,
		TemplateGulp: bundles,
		UIVersion:    uiVersion,
		UIConfig: domain.UIConfig{
			JQueryBootstrap: weldfile.UIConfig.JQueryBootstrap,
		},
		StaticCombine: domain.StaticCombine{
			Enable:    deref(weldfile.StaticCombine.Enable),
			IncludeJS: deref(weldfile.StaticCombine.IncludeJS),
			Files:     weldfile.StaticCombine.Files,
		},
		Gulp: domain.GulpConfig{
			Command: command,
			Dir:     resolvePath(project.Root, weldfile.Gulp.Dir),
		},
	}, nil
}

func validate(weldfile *Weldfile) error {
	for _, entry := range weldfile.TemplateUse {
		if entry.Name == "" {
			return zerr.With(domain.ErrInvalidConfig, "reason", "template_use name is empty")
		}
	}

	for _, entry := range weldfile.TemplateGulp {
		if entry.Name == "" {
			return zerr.With(domain.ErrInvalidConfig, "reason", "template_gulp bundle name is empty")
		}
		for _, ref := range entry.Value {
			if ref == "" {
				err := zerr.With(domain.ErrInvalidConfig, "reason", "asset reference is empty")
				return zerr.With(err, "bundle", entry.Name)
			}
		}
	}

	for i, files := range weldfile.StaticCombine.Files {
		if len(files) == 0 {
			err := zerr.With(domain.ErrInvalidConfig, "reason", "static_combine file list is empty")
			return zerr.With(err, "index", i)
		}
	}

	for _, arg := range weldfile.Gulp.Command {
		if arg == "" {
			return zerr.With(domain.ErrInvalidConfig, "reason", "gulp command contains an empty argument")
		}
	}

	return nil
}

// resolvePath returns p joined to root unless it is absolute.
// An empty p resolves to root.
func resolvePath(root, p string) string {
	if p == "" {
		return filepath.Clean(root)
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Clean(filepath.Join(root, p))
}

func deref(b *bool) bool {
	return b != nil && *b
}

// readAndUnmarshalYAML reads a YAML file and unmarshals it into the target struct.
func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is discovered or built from the project layout
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", configPath)
	}

	if parseErr := yaml.Unmarshal(configFile, target); parseErr != nil {
		return zerr.With(zerr.Wrap(parseErr, domain.ErrConfigParseFailed.Error()), "path", configPath)
	}

	return nil
}
