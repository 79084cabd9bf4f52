package ports

import "go.trai.ch/tabu/internal/core/domain"

// ConfigLoader defines the interface for loading a run file.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the run file at path and returns the validated problem and solver settings.
	Load(path string) (*domain.RunConfig, error)
}
