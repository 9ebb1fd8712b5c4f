package wager

import (
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// Config represents the configuration for the wager module
type Config struct {
	MaxBetAmount decimal.Decimal `env:"MAX_WAGER_AMOUNT"`
	MinBetAmount decimal.Decimal `env:"MIN_WAGER_AMOUNT"`
}

func (c *Config) Validate() error {
	if c.MinBetAmount.LessThanOrEqual(decimal.Zero) {
		return models.ErrInvalidAmountLimits
	}
	if c.MaxBetAmount.LessThanOrEqual(c.MinBetAmount) {
		return models.ErrInvalidAmountLimits
	}
	return nil
}

// GetDefaultConfig returns the default wager configuration
func GetDefaultConfig() *Config {
	return &Config{
		MaxBetAmount: decimal.NewFromInt(500),
		MinBetAmount: decimal.NewFromFloat(0.25),
	}
}

// ValidateNassau checks a Nassau configuration against the module caps
func (c *Config) ValidateNassau(cfg *models.NassauConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	for _, amount := range []decimal.Decimal{cfg.FrontAmount, cfg.BackAmount, cfg.OverallAmount} {
		if amount.GreaterThan(c.MaxBetAmount) {
			return models.ErrBetAmountTooLarge
		}
	}
	return nil
}

// ValidateSkins checks a skins configuration against the module caps
func (c *Config) ValidateSkins(cfg *models.SkinsConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.SkinValue.GreaterThan(c.MaxBetAmount) {
		return models.ErrBetAmountTooLarge
	}
	return nil
}
