package wager

import (
	"testing"

	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decPtr(v float64) *decimal.Decimal {
	d := decimal.NewFromFloat(v)
	return &d
}

func boolPtr(v bool) *bool {
	return &v
}

func intPtr(v int) *int {
	return &v
}

func TestNewNassauConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewNassauConfig(decimal.NewFromInt(5), nil)

		assert.True(t, cfg.FrontAmount.Equal(decimal.NewFromInt(5)))
		assert.True(t, cfg.BackAmount.Equal(decimal.NewFromInt(5)))
		assert.True(t, cfg.OverallAmount.Equal(decimal.NewFromInt(5)))
		assert.True(t, cfg.AutoPress)
		assert.Equal(t, 2, cfg.PressTrigger)
		assert.Equal(t, 3, cfg.MaxPresses)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("overrides apply field by field", func(t *testing.T) {
		cfg := NewNassauConfig(decimal.NewFromInt(5), &NassauOverrides{
			BackAmount: decPtr(10),
			AutoPress:  boolPtr(false),
			MaxPresses: intPtr(0),
		})

		assert.True(t, cfg.FrontAmount.Equal(decimal.NewFromInt(5)))
		assert.True(t, cfg.BackAmount.Equal(decimal.NewFromInt(10)))
		assert.True(t, cfg.OverallAmount.Equal(decimal.NewFromInt(5)))
		assert.False(t, cfg.AutoPress)
		assert.Equal(t, 2, cfg.PressTrigger)
		assert.Equal(t, 0, cfg.MaxPresses)
	})
}

func TestNewSkinsConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := NewSkinsConfig(decimal.NewFromInt(1), nil)

		assert.True(t, cfg.SkinValue.Equal(decimal.NewFromInt(1)))
		assert.True(t, cfg.Carryover)
		assert.True(t, cfg.Validation)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("overrides apply field by field", func(t *testing.T) {
		cfg := NewSkinsConfig(decimal.NewFromInt(1), &SkinsOverrides{
			Carryover: boolPtr(false),
		})

		assert.True(t, cfg.SkinValue.Equal(decimal.NewFromInt(1)))
		assert.False(t, cfg.Carryover)
		assert.True(t, cfg.Validation)
	})
}

func TestPresets(t *testing.T) {
	expected := map[string]decimal.Decimal{
		PresetQuarter:    decimal.NewFromFloat(0.25),
		PresetHalf:       decimal.NewFromFloat(0.5),
		PresetDollar:     decimal.NewFromInt(1),
		PresetFiveDollar: decimal.NewFromInt(5),
		PresetTenDollar:  decimal.NewFromInt(10),
	}

	for name, amount := range expected {
		t.Run(name, func(t *testing.T) {
			nassau, err := NassauPreset(name, nil)
			require.NoError(t, err)
			assert.True(t, nassau.FrontAmount.Equal(amount))

			skins, err := SkinsPreset(name, nil)
			require.NoError(t, err)
			assert.True(t, skins.SkinValue.Equal(amount))
		})
	}

	t.Run("unknown preset", func(t *testing.T) {
		_, err := NassauPreset("grand", nil)
		assert.ErrorIs(t, err, models.ErrUnknownPreset)

		_, err = SkinsPreset("grand", nil)
		assert.ErrorIs(t, err, models.ErrUnknownPreset)
	})

	t.Run("preset with overrides", func(t *testing.T) {
		cfg, err := NassauPreset(PresetQuarter, &NassauOverrides{
			PressTrigger: intPtr(3),
		})
		require.NoError(t, err)
		assert.True(t, cfg.FrontAmount.Equal(decimal.NewFromFloat(0.25)))
		assert.Equal(t, 3, cfg.PressTrigger)
	})
}

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, GetDefaultConfig().Validate())

	c := GetDefaultConfig()
	c.MinBetAmount = decimal.Zero
	assert.ErrorIs(t, c.Validate(), models.ErrInvalidAmountLimits)

	c = GetDefaultConfig()
	c.MaxBetAmount = decimal.NewFromFloat(0.1)
	assert.ErrorIs(t, c.Validate(), models.ErrInvalidAmountLimits)
}

func TestConfig_ValidateNassau(t *testing.T) {
	cfg := GetDefaultConfig()

	t.Run("within cap", func(t *testing.T) {
		nassau := NewNassauConfig(decimal.NewFromInt(5), nil)
		assert.NoError(t, cfg.ValidateNassau(&nassau))
	})

	t.Run("any leg over the cap is rejected", func(t *testing.T) {
		nassau := NewNassauConfig(decimal.NewFromInt(5), &NassauOverrides{
			OverallAmount: decPtr(1000),
		})
		assert.ErrorIs(t, cfg.ValidateNassau(&nassau), models.ErrBetAmountTooLarge)
	})

	t.Run("invalid press trigger surfaces first", func(t *testing.T) {
		nassau := NewNassauConfig(decimal.NewFromInt(5), &NassauOverrides{
			PressTrigger: intPtr(10),
		})
		assert.ErrorIs(t, cfg.ValidateNassau(&nassau), models.ErrInvalidPressTrigger)
	})
}

func TestConfig_ValidateSkins(t *testing.T) {
	cfg := GetDefaultConfig()

	skins := NewSkinsConfig(decimal.NewFromInt(1), nil)
	assert.NoError(t, cfg.ValidateSkins(&skins))

	skins.SkinValue = decimal.NewFromInt(1000)
	assert.ErrorIs(t, cfg.ValidateSkins(&skins), models.ErrBetAmountTooLarge)
}
