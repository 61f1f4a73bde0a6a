package ports

import "go.trai.ch/strata/internal/core/domain"

// ConfigLoader loads the strata configuration for a build session.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration starting from the given working directory.
	Load(cwd string) (*domain.BuildConfig, error)
}
