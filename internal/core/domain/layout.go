package domain

import "path/filepath"

const (
	// WeldDirName is the name of the internal project directory.
	WeldDirName = ".weld"

	// StoreDirName is the name of the build info store directory.
	StoreDirName = "store"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "weld.yaml"

	// AppSettingsFileName is the name of an app's own settings file.
	AppSettingsFileName = "settings.yaml"

	// StaticDirName is the name of an app's static directory.
	StaticDirName = "static"

	// JSModulesFileName is the name of the generated JavaScript module map.
	JSModulesFileName = "jsmodules.js"

	// GulpSettingsFileName is the name of the generated gulp settings file.
	GulpSettingsFileName = "gulp_settings.ini"

	// CombineManifestFileName is the name of the generated static combine manifest.
	CombineManifestFileName = "static_combine.json"

	// DefaultAppsDir is the apps directory used when the config does not set one.
	DefaultAppsDir = "apps"

	// DefaultStaticURL is the static URL prefix used when the config does not set one.
	DefaultStaticURL = "/static/"

	// DefaultBuildCommand is the external build tool used when the config does not set one.
	DefaultBuildCommand = "gulp"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStorePath returns the default path for the build info store.
// It joins .weld and store.
func DefaultStorePath() string {
	return filepath.Join(WeldDirName, StoreDirName)
}
