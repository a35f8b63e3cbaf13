package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidVersion is returned when a library version is empty or not a dotted list of integers.
	ErrInvalidVersion = zerr.New("invalid version")

	// ErrAssetResolution is returned when an asset reference cannot be resolved to concrete assets.
	ErrAssetResolution = zerr.New("failed to resolve asset reference")

	// ErrUnknownAsset is returned when an asset reference names no template-use entry.
	ErrUnknownAsset = zerr.New("unknown template use")

	// ErrAssetCycle is returned when template-use dependencies form a cycle.
	ErrAssetCycle = zerr.New("template use dependency cycle detected")

	// ErrUnknownPlugin is returned when a template-use entry names a plugin that does not exist.
	ErrUnknownPlugin = zerr.New("unknown template plugin")

	// ErrStaticFileNotFound is returned when a static path is not present in any static directory.
	ErrStaticFileNotFound = zerr.New("static file not found")

	// ErrInvalidPattern is returned when a static glob pattern is malformed.
	ErrInvalidPattern = zerr.New("invalid glob pattern")

	// ErrOutputWrite is returned when an output artifact cannot be written.
	ErrOutputWrite = zerr.New("failed to write output file")

	// ErrMissingOption is returned when neither an app nor a destination was given.
	ErrMissingOption = zerr.New("missing required option, use -a to specify the app or -d to specify the output app")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find weld.yaml")

	// ErrAppSettingsNotFound is returned when an app has no settings file.
	ErrAppSettingsNotFound = zerr.New("could not find app settings")

	// ErrInvalidConfig is returned when the configuration is structurally invalid.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrCommandStartFailed is returned when an external command cannot be started.
	ErrCommandStartFailed = zerr.New("failed to start command")

	// ErrCommandSignaled is logged when an external command is killed by a signal.
	ErrCommandSignaled = zerr.New("command terminated by signal")

	// ErrBuildToolFailed is recorded when the build tool exits with a non-zero status.
	ErrBuildToolFailed = zerr.New("build tool exited with a non-zero status")

	// ErrEmptyCommand is returned when the configured build command has no executable.
	ErrEmptyCommand = zerr.New("build command is empty")

	// ErrStoreCreateFailed is returned when the build info store directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create build info store directory")

	// ErrStoreReadFailed is returned when the build info cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read build info")

	// ErrStoreUnmarshalFailed is returned when the build info cannot be unmarshaled.
	ErrStoreUnmarshalFailed = zerr.New("failed to unmarshal build info")

	// ErrStoreMarshalFailed is returned when the build info cannot be marshaled.
	ErrStoreMarshalFailed = zerr.New("failed to marshal build info")

	// ErrStoreWriteFailed is returned when the build info cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write build info")

	// ErrFileOpenFailed is returned when a file cannot be opened.
	ErrFileOpenFailed = zerr.New("failed to open file")

	// ErrFileHashFailed is returned when hashing a file fails.
	ErrFileHashFailed = zerr.New("failed to hash file content")
)
