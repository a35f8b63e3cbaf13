// Package app implements the application layer for weld.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/weld/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	lookups      ports.AssetLookupFactory
	statics      ports.StaticFilesFactory
	writer       ports.ArtifactWriter
	executor     ports.Executor
	store        ports.BuildInfoStore
	hasher       ports.Hasher
	telemetry    ports.Telemetry
	logger       ports.Logger
	resolver     *resolver.Resolver
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	lookups ports.AssetLookupFactory,
	statics ports.StaticFilesFactory,
	writer ports.ArtifactWriter,
	executor ports.Executor,
	store ports.BuildInfoStore,
	hasher ports.Hasher,
	telemetry ports.Telemetry,
	log ports.Logger,
	res *resolver.Resolver,
) *App {
	return &App{
		configLoader: loader,
		lookups:      lookups,
		statics:      statics,
		writer:       writer,
		executor:     executor,
		store:        store,
		hasher:       hasher,
		telemetry:    telemetry,
		logger:       log,
		resolver:     res,
	}
}

// Target selects the project and the app a command reads from and writes to.
type Target struct {
	// Root is the directory configuration discovery starts from.
	Root string
	// App is the app whose settings are read.
	App string
	// Dest is the app the output is written to. It defaults to App.
	Dest string
}

// OutputApp returns the app receiving the generated files.
func (t Target) OutputApp() string {
	if t.Dest != "" {
		return t.Dest
	}
	return t.App
}

func (t Target) root() string {
	if t.Root == "" {
		return "."
	}
	return t.Root
}

func (t Target) validate() error {
	if t.App == "" && t.Dest == "" {
		return domain.ErrMissingOption
	}
	return nil
}

// GulpOptions configures the GulpPlugins method.
type GulpOptions struct {
	// NoJS leaves scripts out of the generated sections.
	NoJS bool
	// SkipUnchanged skips the build tool when the settings file and every
	// file it lists are unchanged since its last successful run.
	SkipUnchanged bool
}

// JSModule writes the JavaScript module map to
// <apps_dir>/<dest or app>/static/jsmodules.js. With an app, the keys are the
// template-use entries of the app's own settings; otherwise every merged
// entry is written. Entries always resolve against the merged settings.
func (a *App) JSModule(ctx context.Context, target Target) error {
	if err := target.validate(); err != nil {
		return err
	}

	settings, err := a.load(ctx, target)
	if err != nil {
		return err
	}

	keys := settings.UseBundles()
	if target.App != "" {
		appSettings, loadErr := a.loadApp(ctx, target)
		if loadErr != nil {
			return loadErr
		}
		keys = appSettings.UseBundles()
	}

	files := a.statics.NewStaticFiles(settings.Project)
	lookup := a.lookups.NewLookup(settings, files)

	var out *domain.BundleOutput
	err = a.step(ctx, "resolve template uses", func(context.Context) error {
		resolved, err := a.resolver.Bundles(keys, lookup, true)
		if err != nil {
			return err
		}
		out = resolved.Map(files.URL)
		return nil
	})
	if err != nil {
		return err
	}

	path := filepath.Join(settings.Project.AppStaticDir(target.OutputApp()), domain.JSModulesFileName)
	err = a.step(ctx, "write "+domain.JSModulesFileName, func(context.Context) error {
		return a.writer.WriteJSModules(path, out)
	})
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%s is saved in %s", domain.JSModulesFileName, path))
	return nil
}

// GulpPlugins writes the gulp settings of the merged project settings to
// <apps_dir>/<dest or app>/gulp_settings.ini and runs the build tool on it.
// It returns the exit status of the build tool.
func (a *App) GulpPlugins(ctx context.Context, target Target, opts GulpOptions) (int, error) {
	if err := target.validate(); err != nil {
		return 1, err
	}

	settings, err := a.load(ctx, target)
	if err != nil {
		return 1, err
	}

	files := a.statics.NewStaticFiles(settings.Project)
	lookup := a.lookups.NewLookup(settings, files)

	var sections []domain.GulpSection
	err = a.step(ctx, "resolve gulp sections", func(context.Context) error {
		sections, err = a.resolver.Sections(settings.TemplateGulp, settings.UseNames(), lookup, !opts.NoJS)
		if err != nil {
			return err
		}
		return locateSections(sections, files)
	})
	if err != nil {
		return 1, err
	}

	output := target.OutputApp()
	settingsPath := filepath.Join(settings.Project.AppDir(output), domain.GulpSettingsFileName)
	dist := settings.Project.AppStaticDir(output)

	err = a.step(ctx, "write "+domain.GulpSettingsFileName, func(context.Context) error {
		return a.writer.WriteGulpSettings(settingsPath, sections)
	})
	if err != nil {
		return 1, err
	}

	inputHash, err := a.hasher.ComputeFilesHash(buildInputs(settingsPath, sections))
	if err != nil {
		return 1, err
	}

	root := settings.Project.Root
	if opts.SkipUnchanged && a.unchanged(root, settingsPath, inputHash, dist) {
		_, vertex := a.telemetry.Record(ctx, "run gulp")
		vertex.Log(domain.LogLevelInfo, "inputs unchanged since the last successful run")
		vertex.Cached()
		vertex.Complete(nil)
		a.logger.Info(fmt.Sprintf("%s is unchanged, skipping gulp", settingsPath))
		return 0, nil
	}

	command := domain.Command{
		Args: append(slices.Clone(settings.Gulp.Command), "--dist", dist, "--settings", settingsPath),
		Dir:  settings.Gulp.Dir,
	}
	a.logger.Info(">>> " + command.String())

	var code int
	var runErr error
	stepErr := a.step(ctx, "run gulp", func(ctx context.Context) error {
		code, runErr = a.executor.Run(ctx, command)
		if runErr == nil && code != 0 {
			return zerr.With(domain.ErrBuildToolFailed, "exit_code", code)
		}
		return runErr
	})
	if stepErr != nil {
		// A non-zero exit is reported through the code alone.
		return code, runErr
	}

	info := domain.BuildInfo{
		Key:       settingsPath,
		InputHash: inputHash,
		Dist:      dist,
		ExitCode:  code,
		Timestamp: time.Now(),
	}
	if err := a.store.Put(root, info); err != nil {
		a.logger.Warn(fmt.Sprintf("failed to record build info: %v", err))
	}

	return code, nil
}

// Combine writes the static combine manifest to
// <apps_dir>/<dest or app>/static_combine.json. A disabled static combine
// writes an empty manifest.
func (a *App) Combine(ctx context.Context, target Target) error {
	if err := target.validate(); err != nil {
		return err
	}

	settings, err := a.load(ctx, target)
	if err != nil {
		return err
	}

	out := domain.NewBundleOutput()
	if settings.StaticCombine.Enable {
		files := a.statics.NewStaticFiles(settings.Project)
		lookup := a.lookups.NewLookup(settings, files)

		err = a.step(ctx, "resolve static combine", func(context.Context) error {
			out, err = a.resolver.Bundles(settings.TemplateGulp, lookup, settings.StaticCombine.IncludeJS)
			if err != nil {
				return err
			}
			for _, list := range settings.StaticCombine.Files {
				out.Add(a.hasher.BundleKey(list), list...)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	path := filepath.Join(settings.Project.AppDir(target.OutputApp()), domain.CombineManifestFileName)
	err = a.step(ctx, "write "+domain.CombineManifestFileName, func(context.Context) error {
		return a.writer.WriteManifest(path, out)
	})
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("%s is saved in %s", domain.CombineManifestFileName, path))
	return nil
}

// load reads the merged project settings.
func (a *App) load(ctx context.Context, target Target) (*domain.Settings, error) {
	return a.loadWith(ctx, "load settings", func() (*domain.Settings, error) {
		return a.configLoader.Load(target.root())
	})
}

// loadApp reads the settings declared by the target app alone.
func (a *App) loadApp(ctx context.Context, target Target) (*domain.Settings, error) {
	return a.loadWith(ctx, "load "+target.App+" settings", func() (*domain.Settings, error) {
		return a.configLoader.LoadApp(target.root(), target.App)
	})
}

func (a *App) loadWith(
	ctx context.Context,
	name string,
	fn func() (*domain.Settings, error),
) (*domain.Settings, error) {
	var settings *domain.Settings
	err := a.step(ctx, name, func(context.Context) error {
		var err error
		settings, err = fn()
		return err
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return settings, nil
}

// step records fn as a telemetry vertex.
func (a *App) step(ctx context.Context, name string, fn func(context.Context) error) error {
	ctx, vertex := a.telemetry.Record(ctx, name)
	err := fn(ctx)
	vertex.Complete(err)
	return err
}

// unchanged reports whether the last successful run used the same inputs and
// output directory.
func (a *App) unchanged(root, key, inputHash, dist string) bool {
	info, err := a.store.Get(root, key)
	if err != nil {
		a.logger.Warn(fmt.Sprintf("ignoring unreadable build info: %v", err))
		return false
	}
	return info != nil && info.InputHash == inputHash && info.Dist == dist
}

// buildInputs lists the files the build tool reads: the settings file
// followed by every located toplink.
func buildInputs(settingsPath string, sections []domain.GulpSection) []string {
	inputs := []string{settingsPath}
	for _, section := range sections {
		inputs = append(inputs, section.TopLinks...)
	}
	return inputs
}

// locateSections replaces every toplink with the file it names on disk.
func locateSections(sections []domain.GulpSection, files ports.StaticFiles) error {
	for i := range sections {
		for j, link := range sections[i].TopLinks {
			path, err := files.File(link)
			if err != nil {
				return zerr.With(err, "asset", sections[i].Name)
			}
			sections[i].TopLinks[j] = path
		}
	}
	return nil
}
