package analytics

import (
	"time"

	"github.com/joefazee/fairway/models"
)

// Config represents the configuration for the analytics module
type Config struct {
	WrappedCacheTTL time.Duration `env:"WRAPPED_CACHE_TTL"`
	StatsCacheTTL   time.Duration `env:"STATS_CACHE_TTL"`
}

func (c *Config) Validate() error {
	if c.WrappedCacheTTL < 0 || c.StatsCacheTTL < 0 {
		return models.ErrInvalidCacheTTL
	}
	return nil
}

// GetDefaultConfig returns the default analytics configuration. Wrapped
// summaries only change when a match completes, so they cache aggressively.
func GetDefaultConfig() *Config {
	return &Config{
		WrappedCacheTTL: time.Hour,
		StatsCacheTTL:   5 * time.Minute,
	}
}
