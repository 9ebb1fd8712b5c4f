package wager

import (
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// Default press behavior for Nassau wagers: presses start automatically
// once a player falls two holes down, capped at three.
const (
	defaultPressTrigger = 2
	defaultMaxPresses   = 3
)

// NassauOverrides adjusts individual fields of a Nassau configuration.
// Nil fields keep the defaults; overrides apply field by field, never as a
// wholesale replacement.
type NassauOverrides struct {
	FrontAmount   *decimal.Decimal
	BackAmount    *decimal.Decimal
	OverallAmount *decimal.Decimal
	AutoPress     *bool
	PressTrigger  *int
	MaxPresses    *int
}

// SkinsOverrides adjusts individual fields of a skins configuration
type SkinsOverrides struct {
	SkinValue  *decimal.Decimal
	Carryover  *bool
	Validation *bool
}

// NewNassauConfig builds a Nassau configuration with the given base amount
// on all three legs and the default press behavior, then applies overrides.
func NewNassauConfig(amount decimal.Decimal, overrides *NassauOverrides) models.NassauConfig {
	cfg := models.NassauConfig{
		FrontAmount:   amount,
		BackAmount:    amount,
		OverallAmount: amount,
		AutoPress:     true,
		PressTrigger:  defaultPressTrigger,
		MaxPresses:    defaultMaxPresses,
	}
	if overrides == nil {
		return cfg
	}
	if overrides.FrontAmount != nil {
		cfg.FrontAmount = *overrides.FrontAmount
	}
	if overrides.BackAmount != nil {
		cfg.BackAmount = *overrides.BackAmount
	}
	if overrides.OverallAmount != nil {
		cfg.OverallAmount = *overrides.OverallAmount
	}
	if overrides.AutoPress != nil {
		cfg.AutoPress = *overrides.AutoPress
	}
	if overrides.PressTrigger != nil {
		cfg.PressTrigger = *overrides.PressTrigger
	}
	if overrides.MaxPresses != nil {
		cfg.MaxPresses = *overrides.MaxPresses
	}
	return cfg
}

// NewSkinsConfig builds a skins configuration with carryover and hole
// validation on, then applies overrides.
func NewSkinsConfig(amount decimal.Decimal, overrides *SkinsOverrides) models.SkinsConfig {
	cfg := models.SkinsConfig{
		SkinValue:  amount,
		Carryover:  true,
		Validation: true,
	}
	if overrides == nil {
		return cfg
	}
	if overrides.SkinValue != nil {
		cfg.SkinValue = *overrides.SkinValue
	}
	if overrides.Carryover != nil {
		cfg.Carryover = *overrides.Carryover
	}
	if overrides.Validation != nil {
		cfg.Validation = *overrides.Validation
	}
	return cfg
}

// Named stake presets shared by Nassau and skins
const (
	PresetQuarter    = "quarter"
	PresetHalf       = "half"
	PresetDollar     = "dollar"
	PresetFiveDollar = "fiveDollar"
	PresetTenDollar  = "tenDollar"
)

// PresetAmounts maps preset names to their per-unit stakes
var PresetAmounts = map[string]decimal.Decimal{
	PresetQuarter:    decimal.NewFromFloat(0.25),
	PresetHalf:       decimal.NewFromFloat(0.5),
	PresetDollar:     decimal.NewFromInt(1),
	PresetFiveDollar: decimal.NewFromInt(5),
	PresetTenDollar:  decimal.NewFromInt(10),
}

// NassauPreset builds a Nassau configuration from a named preset
func NassauPreset(name string, overrides *NassauOverrides) (models.NassauConfig, error) {
	amount, ok := PresetAmounts[name]
	if !ok {
		return models.NassauConfig{}, models.ErrUnknownPreset
	}
	return NewNassauConfig(amount, overrides), nil
}

// SkinsPreset builds a skins configuration from a named preset
func SkinsPreset(name string, overrides *SkinsOverrides) (models.SkinsConfig, error) {
	amount, ok := PresetAmounts[name]
	if !ok {
		return models.SkinsConfig{}, models.ErrUnknownPreset
	}
	return NewSkinsConfig(amount, overrides), nil
}
