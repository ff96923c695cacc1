package ports

import "github.com/AntonioJCosta/dwimsh/internal/core/domain/config"

// ConfigProvider loads shell settings from a persistent source.
type ConfigProvider interface {
	Load() (config.Config, error)
}
