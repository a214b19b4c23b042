package types

import (
	"github.com/noteleap/noteleap/internal/recency"
	"github.com/noteleap/noteleap/models"
)

// AppConfig represents the complete application configuration.
type AppConfig struct {
	Verbose bool `mapstructure:"verbose"`
	Quiet   bool `mapstructure:"quiet"`
	JSON    bool `mapstructure:"json"`

	Vault     VaultConfig             `mapstructure:"vault" validate:"required"`
	Ranking   models.RankingPolicy    `mapstructure:"ranking"`
	Filters   []models.PropertyFilter `mapstructure:"filters" validate:"omitempty,dive"`
	Recency   RecencyConfig           `mapstructure:"recency"`
	Telemetry TelemetryConfig         `mapstructure:"telemetry"`
}

// VaultConfig locates the document vault and its exclusions.
type VaultConfig struct {
	// Path is the vault root directory.
	Path string `mapstructure:"path" validate:"required"`
	// ExcludedPaths are folder prefixes hidden from every result list.
	ExcludedPaths []string `mapstructure:"excludedPaths"`
	// IndexFile, when set, enables the sqlite index provider at the
	// given path instead of re-walking the vault on every query.
	IndexFile string `mapstructure:"indexFile"`
}

// RecencyConfig sizes the recently-opened cache.
type RecencyConfig struct {
	Capacity int `mapstructure:"capacity" validate:"min=0"`
}

// TelemetryConfig controls the opt-in anonymous usage telemetry.
type TelemetryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	APIKey  string `mapstructure:"apiKey"`
}

// DefaultAppConfig returns the configuration used before any file,
// environment, or flag overrides apply.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		Vault: VaultConfig{
			Path: ".",
		},
		Ranking: models.DefaultRankingPolicy(),
		Recency: RecencyConfig{
			Capacity: recency.DefaultCapacity,
		},
	}
}
