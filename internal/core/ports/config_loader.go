// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/weld/internal/core/domain"

// ConfigLoader defines the interface for loading the project configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load finds weld.yaml starting at cwd and returns the merged project settings.
	Load(cwd string) (*domain.Settings, error)

	// LoadApp returns the settings declared by the named app alone.
	// The project layout is still taken from the project configuration.
	LoadApp(cwd, app string) (*domain.Settings, error)
}
