package sidebet

import (
	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// Config represents the configuration for the side bet module
type Config struct {
	MaxSideBetAmount  decimal.Decimal `env:"MAX_SIDE_BET_AMOUNT"`
	DefaultUnitAmount decimal.Decimal `env:"DEFAULT_SIDE_BET_UNIT_AMOUNT"`
}

func (c *Config) Validate() error {
	if c.DefaultUnitAmount.LessThanOrEqual(decimal.Zero) {
		return models.ErrInvalidAmountLimits
	}
	if c.MaxSideBetAmount.LessThan(c.DefaultUnitAmount) {
		return models.ErrInvalidAmountLimits
	}
	return nil
}

// GetDefaultConfig returns the default side bet configuration
func GetDefaultConfig() *Config {
	return &Config{
		MaxSideBetAmount:  decimal.NewFromInt(100),
		DefaultUnitAmount: decimal.NewFromInt(1),
	}
}

// DefaultSideBetConfigs returns one disabled config per side bet type at the
// given per-unit amount.
func DefaultSideBetConfigs(matchID uuid.UUID, amount decimal.Decimal) []models.SideBetConfig {
	types := []models.BetType{models.BetTypeGreenie, models.BetTypeSandy, models.BetTypeBBB}
	configs := make([]models.SideBetConfig, len(types))
	for i, t := range types {
		configs[i] = models.SideBetConfig{
			MatchID: matchID,
			Type:    t,
			Amount:  amount,
			Enabled: false,
		}
	}
	return configs
}

// HasSideBetsEnabled reports whether any config in the list is enabled
func HasSideBetsEnabled(configs []models.SideBetConfig) bool {
	for i := range configs {
		if configs[i].Enabled {
			return true
		}
	}
	return false
}

// EnabledSideBets projects the enabled configs out of the list
func EnabledSideBets(configs []models.SideBetConfig) []models.SideBetConfig {
	var enabled []models.SideBetConfig
	for i := range configs {
		if configs[i].Enabled {
			enabled = append(enabled, configs[i])
		}
	}
	return enabled
}
