package ports

import "go.trai.ch/weld/internal/core/domain"

// ArtifactWriter writes the generated output artifacts.
//
// Every method either writes the complete file or leaves the target untouched.
//
//go:generate go run go.uber.org/mock/mockgen -source=artifact_writer.go -destination=mocks/mock_artifact_writer.go -package=mocks
type ArtifactWriter interface {
	// WriteJSModules writes the JavaScript module map assigned to the jsmodules variable.
	WriteJSModules(path string, out *domain.BundleOutput) error

	// WriteGulpSettings writes the INI settings file consumed by the build tool.
	WriteGulpSettings(path string, sections []domain.GulpSection) error

	// WriteManifest writes the static combine manifest as a JSON object.
	WriteManifest(path string, out *domain.BundleOutput) error
}
