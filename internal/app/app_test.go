package app_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/weld/internal/app"
	"go.trai.ch/weld/internal/core/domain"
	"go.trai.ch/weld/internal/core/ports"
	"go.trai.ch/weld/internal/core/ports/mocks"
	"go.trai.ch/weld/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

const projectRoot = "/project"

type fixture struct {
	app       *app.App
	telemetry *mocks.MockTelemetry
	loader    *mocks.MockConfigLoader
	files     *mocks.MockStaticFiles
	lookup    *mocks.MockAssetLookup
	writer    *mocks.MockArtifactWriter
	executor  *mocks.MockExecutor
	store     *mocks.MockBuildInfoStore
	hasher    *mocks.MockHasher
	vertex    *mocks.MockVertex
	logger    *mocks.MockLogger

	// lookupSettings holds the settings the last asset lookup was built from.
	lookupSettings *domain.Settings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		loader:   mocks.NewMockConfigLoader(ctrl),
		files:    mocks.NewMockStaticFiles(ctrl),
		lookup:   mocks.NewMockAssetLookup(ctrl),
		writer:   mocks.NewMockArtifactWriter(ctrl),
		executor: mocks.NewMockExecutor(ctrl),
		store:    mocks.NewMockBuildInfoStore(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		vertex:   mocks.NewMockVertex(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	lookups := mocks.NewMockAssetLookupFactory(ctrl)
	lookups.EXPECT().NewLookup(gomock.Any(), f.files).DoAndReturn(
		func(settings *domain.Settings, _ ports.StaticFiles) ports.AssetLookup {
			f.lookupSettings = settings
			return f.lookup
		},
	).AnyTimes()

	statics := mocks.NewMockStaticFilesFactory(ctrl)
	statics.EXPECT().NewStaticFiles(gomock.Any()).Return(f.files).AnyTimes()

	f.telemetry = mocks.NewMockTelemetry(ctrl)
	f.telemetry.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string) (context.Context, ports.Vertex) {
			return ports.ContextWithVertex(ctx, f.vertex), f.vertex
		},
	).AnyTimes()
	f.vertex.EXPECT().Complete(gomock.Any()).AnyTimes()
	f.vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()

	f.logger.EXPECT().Info(gomock.Any()).AnyTimes()

	f.app = app.New(
		f.loader,
		lookups,
		statics,
		f.writer,
		f.executor,
		f.store,
		f.hasher,
		f.telemetry,
		f.logger,
		resolver.New(),
	)
	return f
}

func testSettings() *domain.Settings {
	return &domain.Settings{
		Project: domain.Project{
			Root:      projectRoot,
			AppsDir:   filepath.Join(projectRoot, "apps"),
			Apps:      []string{"ui", "site"},
			StaticURL: "/static/",
		},
		TemplateUse: []domain.UseEntry{
			{Name: "jquery", Plugin: "jquery"},
			{Name: "bootstrap"},
		},
		TemplateGulp: domain.BundleConfig{
			{Name: "common", Refs: []string{"jquery", "bootstrap", "unused"}},
		},
		UIVersion: map[string]string{"jquery": "1.9.1"},
		Gulp: domain.GulpConfig{
			Command: []string{"gulp"},
			Dir:     filepath.Join(projectRoot, "tools"),
		},
	}
}

func (f *fixture) expectLookups() {
	f.lookup.EXPECT().Find("jquery").Return(domain.Links{
		Head: []string{"modules/jquery/1.9.1/jquery.min.js", "modules/jquery/jquery-migrate-1.2.1.min.js"},
	}, nil).AnyTimes()
	f.lookup.EXPECT().Find("bootstrap").Return(domain.Links{
		Head: []string{"bootstrap.css", "<!--[if lt IE 9]><script src=\"respond.js\"></script><![endif]-->"},
		Body: []string{"bootstrap.js"},
	}, nil).AnyTimes()
}

func TestApp_MissingOption(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	err := f.app.JSModule(ctx, app.Target{Root: projectRoot})
	require.ErrorIs(t, err, domain.ErrMissingOption)

	code, err := f.app.GulpPlugins(ctx, app.Target{Root: projectRoot}, app.GulpOptions{})
	require.ErrorIs(t, err, domain.ErrMissingOption)
	assert.Equal(t, 1, code)

	err = f.app.Combine(ctx, app.Target{Root: projectRoot})
	require.ErrorIs(t, err, domain.ErrMissingOption)
}

func TestTarget_OutputApp(t *testing.T) {
	assert.Equal(t, "ui", app.Target{App: "ui"}.OutputApp())
	assert.Equal(t, "site", app.Target{App: "ui", Dest: "site"}.OutputApp())
	assert.Equal(t, "site", app.Target{Dest: "site"}.OutputApp())
}

func TestApp_JSModule_AppKeysResolveAgainstProject(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	merged := testSettings()
	f.loader.EXPECT().Load(projectRoot).Return(merged, nil)
	f.loader.EXPECT().LoadApp(projectRoot, "ui").Return(&domain.Settings{
		Project:     merged.Project,
		TemplateUse: []domain.UseEntry{{Name: "bootstrap", Depends: []string{"jquery"}}},
	}, nil)
	f.files.EXPECT().URL(gomock.Any()).DoAndReturn(func(p string) string {
		return "/static/" + p
	}).AnyTimes()

	want := filepath.Join(projectRoot, "apps", "ui", "static", domain.JSModulesFileName)
	f.writer.EXPECT().WriteJSModules(want, gomock.Any()).DoAndReturn(
		func(_ string, out *domain.BundleOutput) error {
			assert.Equal(t, []string{"bootstrap.js", "bootstrap.css"}, out.Keys())
			assert.Equal(t, []string{"/static/bootstrap.js"}, out.Files("bootstrap.js"))
			assert.Equal(t, []string{"/static/bootstrap.css"}, out.Files("bootstrap.css"))
			return nil
		},
	)

	err := f.app.JSModule(context.Background(), app.Target{Root: projectRoot, App: "ui"})
	require.NoError(t, err)
	assert.Same(t, merged, f.lookupSettings, "lookup must use the merged project settings")
}

func TestApp_JSModule_DestUsesProjectSettings(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.files.EXPECT().URL(gomock.Any()).DoAndReturn(func(p string) string {
		return "/static/" + p
	}).AnyTimes()

	want := filepath.Join(projectRoot, "apps", "site", "static", domain.JSModulesFileName)
	f.writer.EXPECT().WriteJSModules(want, gomock.Any()).DoAndReturn(
		func(_ string, out *domain.BundleOutput) error {
			assert.Equal(t, []string{"jquery.js", "bootstrap.js", "bootstrap.css"}, out.Keys())
			assert.Equal(t, []string{
				"/static/modules/jquery/1.9.1/jquery.min.js",
				"/static/modules/jquery/jquery-migrate-1.2.1.min.js",
			}, out.Files("jquery.js"))
			assert.Equal(t, []string{"/static/bootstrap.js"}, out.Files("bootstrap.js"))
			assert.Equal(t, []string{"/static/bootstrap.css"}, out.Files("bootstrap.css"))
			return nil
		},
	)

	err := f.app.JSModule(context.Background(), app.Target{Root: projectRoot, Dest: "site"})
	require.NoError(t, err)
}

func TestApp_JSModule_ResolutionFailureWritesNothing(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.loader.EXPECT().LoadApp(projectRoot, "ui").Return(testSettings(), nil)
	f.lookup.EXPECT().Find("jquery").Return(domain.Links{}, domain.ErrUnknownPlugin)

	err := f.app.JSModule(context.Background(), app.Target{Root: projectRoot, App: "ui"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrAssetResolution.Error())
}

func TestApp_JSModule_LoadFailure(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(".").Return(nil, domain.ErrConfigNotFound)

	err := f.app.JSModule(context.Background(), app.Target{App: "ui"})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load configuration")
	assert.ErrorIs(t, err, domain.ErrConfigNotFound)
}

func TestApp_JSModule_AppSettingsMissing(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.loader.EXPECT().LoadApp(projectRoot, "ui").Return(nil, domain.ErrAppSettingsNotFound)

	err := f.app.JSModule(context.Background(), app.Target{Root: projectRoot, App: "ui"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAppSettingsNotFound)
}

func TestApp_GulpPlugins(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.files.EXPECT().File(gomock.Any()).DoAndReturn(func(p string) (string, error) {
		return filepath.Join(projectRoot, "apps", "ui", "static", p), nil
	}).AnyTimes()

	iniPath := filepath.Join(projectRoot, "apps", "ui", domain.GulpSettingsFileName)
	dist := filepath.Join(projectRoot, "apps", "ui", "static")
	staticFile := func(p string) string { return filepath.Join(dist, p) }

	f.writer.EXPECT().WriteGulpSettings(iniPath, []domain.GulpSection{
		{
			Name: "jquery",
			Dist: "common",
			TopLinks: []string{
				staticFile("modules/jquery/1.9.1/jquery.min.js"),
				staticFile("modules/jquery/jquery-migrate-1.2.1.min.js"),
			},
		},
		{
			Name:     "bootstrap",
			Dist:     "common",
			TopLinks: []string{staticFile("bootstrap.css"), staticFile("bootstrap.js")},
		},
	}).Return(nil)
	f.hasher.EXPECT().ComputeFilesHash([]string{
		iniPath,
		staticFile("modules/jquery/1.9.1/jquery.min.js"),
		staticFile("modules/jquery/jquery-migrate-1.2.1.min.js"),
		staticFile("bootstrap.css"),
		staticFile("bootstrap.js"),
	}).Return("abc123", nil)

	f.executor.EXPECT().Run(gomock.Any(), domain.Command{
		Args: []string{"gulp", "--dist", dist, "--settings", iniPath},
		Dir:  filepath.Join(projectRoot, "tools"),
	}).DoAndReturn(func(ctx context.Context, _ domain.Command) (int, error) {
		_, ok := ports.VertexFromContext(ctx)
		assert.True(t, ok)
		return 0, nil
	})

	f.store.EXPECT().Put(projectRoot, gomock.Any()).DoAndReturn(func(_ string, info domain.BuildInfo) error {
		assert.Equal(t, iniPath, info.Key)
		assert.Equal(t, "abc123", info.InputHash)
		assert.Equal(t, dist, info.Dist)
		assert.Equal(t, 0, info.ExitCode)
		assert.False(t, info.Timestamp.IsZero())
		return nil
	})

	code, err := f.app.GulpPlugins(context.Background(), app.Target{Root: projectRoot, App: "ui"}, app.GulpOptions{})
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_GulpPlugins_NoJS(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.files.EXPECT().File(gomock.Any()).DoAndReturn(func(p string) (string, error) {
		return "/abs/" + p, nil
	}).AnyTimes()

	f.writer.EXPECT().WriteGulpSettings(gomock.Any(), []domain.GulpSection{
		{Name: "jquery", Dist: "common", TopLinks: []string{}},
		{Name: "bootstrap", Dist: "common", TopLinks: []string{"/abs/bootstrap.css"}},
	}).Return(nil)
	f.hasher.EXPECT().ComputeFilesHash(gomock.Any()).Return("abc123", nil)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(0, nil)
	f.store.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	code, err := f.app.GulpPlugins(
		context.Background(),
		app.Target{Root: projectRoot, Dest: "site"},
		app.GulpOptions{NoJS: true},
	)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_GulpPlugins_NonZeroExit(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.files.EXPECT().File(gomock.Any()).Return("/abs/file", nil).AnyTimes()
	f.writer.EXPECT().WriteGulpSettings(gomock.Any(), gomock.Any()).Return(nil)
	f.hasher.EXPECT().ComputeFilesHash(gomock.Any()).Return("abc123", nil)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(3, nil)

	code, err := f.app.GulpPlugins(context.Background(), app.Target{Root: projectRoot, App: "ui"}, app.GulpOptions{})
	require.NoError(t, err)
	assert.Equal(t, 3, code)
}

func TestApp_GulpPlugins_StartFailure(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.files.EXPECT().File(gomock.Any()).Return("/abs/file", nil).AnyTimes()
	f.writer.EXPECT().WriteGulpSettings(gomock.Any(), gomock.Any()).Return(nil)
	f.hasher.EXPECT().ComputeFilesHash(gomock.Any()).Return("abc123", nil)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(-1, domain.ErrCommandStartFailed)

	code, err := f.app.GulpPlugins(context.Background(), app.Target{Root: projectRoot, App: "ui"}, app.GulpOptions{})
	require.ErrorIs(t, err, domain.ErrCommandStartFailed)
	assert.Equal(t, -1, code)
}

func TestApp_GulpPlugins_SkipUnchanged(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	iniPath := filepath.Join(projectRoot, "apps", "ui", domain.GulpSettingsFileName)
	dist := filepath.Join(projectRoot, "apps", "ui", "static")

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.files.EXPECT().File(gomock.Any()).Return("/abs/file", nil).AnyTimes()
	f.writer.EXPECT().WriteGulpSettings(iniPath, gomock.Any()).Return(nil)
	f.hasher.EXPECT().ComputeFilesHash([]string{iniPath, "/abs/file", "/abs/file", "/abs/file", "/abs/file"}).
		Return("abc123", nil)
	f.store.EXPECT().Get(projectRoot, iniPath).Return(&domain.BuildInfo{
		Key:       iniPath,
		InputHash: "abc123",
		Dist:      dist,
	}, nil)
	f.vertex.EXPECT().Cached()

	code, err := f.app.GulpPlugins(
		context.Background(),
		app.Target{Root: projectRoot, App: "ui"},
		app.GulpOptions{SkipUnchanged: true},
	)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_GulpPlugins_SkipUnchangedRunsOnChange(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.files.EXPECT().File(gomock.Any()).Return("/abs/file", nil).AnyTimes()
	f.writer.EXPECT().WriteGulpSettings(gomock.Any(), gomock.Any()).Return(nil)
	f.hasher.EXPECT().ComputeFilesHash(gomock.Any()).Return("new-hash", nil)
	f.store.EXPECT().Get(projectRoot, gomock.Any()).Return(&domain.BuildInfo{InputHash: "old-hash"}, nil)
	f.executor.EXPECT().Run(gomock.Any(), gomock.Any()).Return(0, nil)
	f.store.EXPECT().Put(projectRoot, gomock.Any()).Return(errors.New("read-only"))
	f.logger.EXPECT().Warn(gomock.Any())

	code, err := f.app.GulpPlugins(
		context.Background(),
		app.Target{Root: projectRoot, App: "ui"},
		app.GulpOptions{SkipUnchanged: true},
	)
	require.NoError(t, err)
	assert.Equal(t, 0, code)
}

func TestApp_GulpPlugins_MissingStaticFile(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)
	f.files.EXPECT().File(gomock.Any()).Return("", domain.ErrStaticFileNotFound)

	code, err := f.app.GulpPlugins(context.Background(), app.Target{Root: projectRoot, App: "ui"}, app.GulpOptions{})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStaticFileNotFound.Error())
	assert.Equal(t, 1, code)
}

func TestApp_Combine_Disabled(t *testing.T) {
	f := newFixture(t)

	f.loader.EXPECT().Load(projectRoot).Return(testSettings(), nil)

	want := filepath.Join(projectRoot, "apps", "ui", domain.CombineManifestFileName)
	f.writer.EXPECT().WriteManifest(want, gomock.Any()).DoAndReturn(
		func(_ string, out *domain.BundleOutput) error {
			assert.Equal(t, 0, out.Len())
			return nil
		},
	)

	err := f.app.Combine(context.Background(), app.Target{Root: projectRoot, App: "ui"})
	require.NoError(t, err)
}

func TestApp_Combine_Enabled(t *testing.T) {
	f := newFixture(t)
	f.expectLookups()

	settings := testSettings()
	settings.StaticCombine = domain.StaticCombine{
		Enable: true,
		Files:  [][]string{{"js/a.js", "js/b.js"}},
	}
	f.loader.EXPECT().Load(projectRoot).Return(settings, nil)
	f.hasher.EXPECT().BundleKey([]string{"js/a.js", "js/b.js"}).Return("_cmb_0123456789abcdef.js")

	f.writer.EXPECT().WriteManifest(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ string, out *domain.BundleOutput) error {
			assert.Equal(t, []string{"common.css", "_cmb_0123456789abcdef.js"}, out.Keys())
			assert.Equal(t, []string{"bootstrap.css"}, out.Files("common.css"))
			assert.Equal(t, []string{"js/a.js", "js/b.js"}, out.Files("_cmb_0123456789abcdef.js"))
			return nil
		},
	)

	err := f.app.Combine(context.Background(), app.Target{Root: projectRoot, Dest: "ui"})
	require.NoError(t, err)
}
