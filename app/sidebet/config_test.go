package sidebet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	assert.NoError(t, GetDefaultConfig().Validate())

	c := GetDefaultConfig()
	c.DefaultUnitAmount = decimal.Zero
	assert.ErrorIs(t, c.Validate(), models.ErrInvalidAmountLimits)

	c = GetDefaultConfig()
	c.MaxSideBetAmount = decimal.NewFromFloat(0.5)
	assert.ErrorIs(t, c.Validate(), models.ErrInvalidAmountLimits)
}

func TestDefaultSideBetConfigs(t *testing.T) {
	matchID := uuid.New()
	configs := DefaultSideBetConfigs(matchID, decimal.NewFromInt(1))

	require.Len(t, configs, 3)
	types := make(map[models.BetType]bool)
	for _, cfg := range configs {
		assert.Equal(t, matchID, cfg.MatchID)
		assert.False(t, cfg.Enabled)
		assert.True(t, cfg.Amount.Equal(decimal.NewFromInt(1)))
		types[cfg.Type] = true
	}
	assert.True(t, types[models.BetTypeGreenie])
	assert.True(t, types[models.BetTypeSandy])
	assert.True(t, types[models.BetTypeBBB])
}

func TestEnabledSideBets(t *testing.T) {
	configs := DefaultSideBetConfigs(uuid.New(), decimal.NewFromInt(1))

	assert.False(t, HasSideBetsEnabled(configs))
	assert.Empty(t, EnabledSideBets(configs))

	configs[1].Enabled = true
	assert.True(t, HasSideBetsEnabled(configs))

	enabled := EnabledSideBets(configs)
	require.Len(t, enabled, 1)
	assert.Equal(t, models.BetTypeSandy, enabled[0].Type)
}
