package ports

import "github.com/nannou-org/hotglsl/internal/core/domain"

// ConfigLoader defines the interface for loading the tool configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load walks up from cwd looking for a config file and returns the
	// parsed configuration, or the defaults when no file exists. Only a
	// file that exists but cannot be read or parsed is an error.
	Load(cwd string) (*domain.Config, error)
}
