package wager

import (
	"testing"

	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestEstimateNassauTotal(t *testing.T) {
	t.Run("four players at five per leg", func(t *testing.T) {
		cfg := NewNassauConfig(decimal.NewFromInt(5), nil)

		total := EstimateNassauTotal(&cfg, 4)

		// 15 per pairing across 3 opponents.
		assert.True(t, total.Equal(decimal.NewFromInt(45)), "got %s", total)
	})

	t.Run("uneven legs", func(t *testing.T) {
		cfg := NewNassauConfig(decimal.NewFromInt(2), &NassauOverrides{
			OverallAmount: decPtr(5),
		})

		total := EstimateNassauTotal(&cfg, 2)
		assert.True(t, total.Equal(decimal.NewFromInt(9)), "got %s", total)
	})

	t.Run("a lone participant has no exposure", func(t *testing.T) {
		cfg := NewNassauConfig(decimal.NewFromInt(5), nil)

		assert.True(t, EstimateNassauTotal(&cfg, 1).IsZero())
		assert.True(t, EstimateNassauTotal(&cfg, 0).IsZero())
	})
}

func TestEstimateSkinsTotal(t *testing.T) {
	t.Run("skin value times holes times opponents", func(t *testing.T) {
		cfg := NewSkinsConfig(decimal.NewFromInt(1), nil)

		total := EstimateSkinsTotal(&cfg, 4, 18)
		assert.True(t, total.Equal(decimal.NewFromInt(54)), "got %s", total)
	})

	t.Run("nine hole round", func(t *testing.T) {
		cfg := NewSkinsConfig(decimal.NewFromFloat(0.5), nil)

		total := EstimateSkinsTotal(&cfg, 3, 9)
		assert.True(t, total.Equal(decimal.NewFromInt(9)), "got %s", total)
	})

	t.Run("a lone participant has no exposure", func(t *testing.T) {
		cfg := NewSkinsConfig(decimal.NewFromInt(1), nil)
		assert.True(t, EstimateSkinsTotal(&cfg, 1, 18).IsZero())
	})
}

func TestEstimateBetTotal(t *testing.T) {
	nassau := NewNassauConfig(decimal.NewFromInt(5), nil)
	skins := NewSkinsConfig(decimal.NewFromInt(1), nil)

	t.Run("routes by type", func(t *testing.T) {
		bet := &models.Bet{Type: models.BetTypeNassau, NassauConfig: &nassau}
		assert.True(t, EstimateBetTotal(bet, 4, 18).Equal(decimal.NewFromInt(45)))

		bet = &models.Bet{Type: models.BetTypeSkins, SkinsConfig: &skins}
		assert.True(t, EstimateBetTotal(bet, 4, 18).Equal(decimal.NewFromInt(54)))
	})

	t.Run("configless wagers estimate zero", func(t *testing.T) {
		bet := &models.Bet{Type: models.BetTypeMatchPlay}
		assert.True(t, EstimateBetTotal(bet, 4, 18).IsZero())

		bet = &models.Bet{Type: models.BetTypeStrokePlay}
		assert.True(t, EstimateBetTotal(bet, 4, 18).IsZero())
	})
}
