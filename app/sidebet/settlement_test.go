package sidebet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngines() (PointEngine, SettlementEngine) {
	points := NewPointEngine()
	return points, NewSettlementEngine(points)
}

func enabledConfig(betType models.BetType, amount float64) models.SideBetConfig {
	return models.SideBetConfig{
		MatchID: uuid.New(),
		Type:    betType,
		Amount:  decimal.NewFromFloat(amount),
		Enabled: true,
	}
}

func TestSettlementEngine_SettleGreenies(t *testing.T) {
	_, engine := newTestEngines()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	participants := []uuid.UUID{a, b, c}
	unit := decimal.NewFromInt(2)

	t.Run("winner is paid by every other participant", func(t *testing.T) {
		holes := []models.HoleSideBets{
			{HoleNumber: 3, Greenie: ptr(a)},
		}

		payouts := engine.SettleGreenies(holes, participants, unit)

		assert.True(t, payouts[a].Equal(decimal.NewFromInt(4)))
		assert.True(t, payouts[b].Equal(decimal.NewFromInt(-2)))
		assert.True(t, payouts[c].Equal(decimal.NewFromInt(-2)))
	})

	t.Run("multiple holes accumulate", func(t *testing.T) {
		holes := []models.HoleSideBets{
			{HoleNumber: 3, Greenie: ptr(a)},
			{HoleNumber: 7, Greenie: ptr(b)},
			{HoleNumber: 12, Greenie: ptr(a)},
		}

		payouts := engine.SettleGreenies(holes, participants, unit)

		assert.True(t, payouts[a].Equal(decimal.NewFromInt(6)), "got %s", payouts[a])
		assert.True(t, payouts[b].Equal(decimal.NewFromInt(0)), "got %s", payouts[b])
		assert.True(t, payouts[c].Equal(decimal.NewFromInt(-6)), "got %s", payouts[c])
	})

	t.Run("non-participant winner is ignored", func(t *testing.T) {
		holes := []models.HoleSideBets{
			{HoleNumber: 3, Greenie: ptr(uuid.New())},
		}

		payouts := engine.SettleGreenies(holes, participants, unit)
		for _, id := range participants {
			assert.True(t, payouts[id].IsZero())
		}
	})

	t.Run("holes without a greenie contribute nothing", func(t *testing.T) {
		holes := []models.HoleSideBets{{HoleNumber: 3}}
		payouts := engine.SettleGreenies(holes, participants, unit)
		for _, id := range participants {
			assert.True(t, payouts[id].IsZero())
		}
	})
}

func TestSettlementEngine_SettleSandies(t *testing.T) {
	_, engine := newTestEngines()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	participants := []uuid.UUID{a, b, c}
	unit := decimal.NewFromInt(1)

	t.Run("each sandy pays from the whole field", func(t *testing.T) {
		holes := []models.HoleSideBets{
			{HoleNumber: 5, Sandies: models.SandyMap{a: true, b: true}},
		}

		payouts := engine.SettleSandies(holes, participants, unit)

		// A and B each collect 2 and pay 1 to the other; C pays both.
		assert.True(t, payouts[a].Equal(decimal.NewFromInt(1)), "got %s", payouts[a])
		assert.True(t, payouts[b].Equal(decimal.NewFromInt(1)), "got %s", payouts[b])
		assert.True(t, payouts[c].Equal(decimal.NewFromInt(-2)), "got %s", payouts[c])
	})

	t.Run("false flags pay nothing", func(t *testing.T) {
		holes := []models.HoleSideBets{
			{HoleNumber: 5, Sandies: models.SandyMap{a: false}},
		}
		payouts := engine.SettleSandies(holes, participants, unit)
		for _, id := range participants {
			assert.True(t, payouts[id].IsZero())
		}
	})
}

func TestSettlementEngine_SettleAll(t *testing.T) {
	points, engine := newTestEngines()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	participants := []uuid.UUID{a, b, c}

	holes := []models.HoleSideBets{
		{HoleNumber: 1, Bingo: ptr(a), Bango: ptr(a), Bongo: ptr(a)},
		{HoleNumber: 2, Bingo: ptr(b), Bango: ptr(b), Bongo: ptr(c)},
		{HoleNumber: 3, Greenie: ptr(c), Sandies: models.SandyMap{b: true}},
	}

	t.Run("combines enabled types into one map", func(t *testing.T) {
		configs := []models.SideBetConfig{
			enabledConfig(models.BetTypeGreenie, 2),
			enabledConfig(models.BetTypeSandy, 1),
			enabledConfig(models.BetTypeBBB, 1),
		}

		payouts := engine.SettleAll(holes, configs, participants)

		// BBB: A +3, B 0, C -3. Greenie: C +4, A -2, B -2. Sandy: B +2, A -1, C -1.
		assert.True(t, payouts[a].Equal(decimal.NewFromInt(0)), "A got %s", payouts[a])
		assert.True(t, payouts[b].Equal(decimal.NewFromInt(0)), "B got %s", payouts[b])
		assert.True(t, payouts[c].Equal(decimal.NewFromInt(0)), "C got %s", payouts[c])
		assert.True(t, engine.ValidateZeroSum(payouts))
	})

	t.Run("disabled configs contribute nothing", func(t *testing.T) {
		configs := []models.SideBetConfig{
			{Type: models.BetTypeGreenie, Amount: decimal.NewFromInt(2), Enabled: false},
			enabledConfig(models.BetTypeBBB, 1),
		}

		payouts := engine.SettleAll(holes, configs, participants)
		bbbOnly := points.SettleBBB(BBBResultsFromHoles(holes), participants, decimal.NewFromInt(1))

		for _, id := range participants {
			assert.True(t, payouts[id].Equal(bbbOnly[id]))
		}
	})

	t.Run("no configs yields zero map", func(t *testing.T) {
		payouts := engine.SettleAll(holes, nil, participants)
		for _, id := range participants {
			assert.True(t, payouts[id].IsZero())
		}
		assert.True(t, engine.ValidateZeroSum(payouts))
	})

	t.Run("zero sum holds for any combination", func(t *testing.T) {
		combos := [][]models.SideBetConfig{
			{enabledConfig(models.BetTypeGreenie, 0.25)},
			{enabledConfig(models.BetTypeSandy, 0.5)},
			{enabledConfig(models.BetTypeBBB, 0.1)},
			{enabledConfig(models.BetTypeGreenie, 0.25), enabledConfig(models.BetTypeSandy, 0.5)},
			{enabledConfig(models.BetTypeGreenie, 1), enabledConfig(models.BetTypeSandy, 1), enabledConfig(models.BetTypeBBB, 1)},
		}
		for _, configs := range combos {
			payouts := engine.SettleAll(holes, configs, participants)
			assert.True(t, engine.ValidateZeroSum(payouts))
		}
	})
}

func TestSettlementEngine_AllTransfers(t *testing.T) {
	_, engine := newTestEngines()
	a, b := uuid.New(), uuid.New()
	participants := []uuid.UUID{a, b}

	holes := []models.HoleSideBets{
		{HoleNumber: 3, Greenie: ptr(a)},
		{HoleNumber: 7, Greenie: ptr(a)},
	}
	configs := []models.SideBetConfig{enabledConfig(models.BetTypeGreenie, 2)}

	transfers := engine.AllTransfers(holes, configs, participants)

	// Two winning holes aggregate into a single pairwise transfer.
	require.Len(t, transfers, 1)
	assert.Equal(t, b, transfers[0].From)
	assert.Equal(t, a, transfers[0].To)
	assert.Equal(t, models.BetTypeGreenie, transfers[0].BetType)
	assert.True(t, transfers[0].Amount.Equal(decimal.NewFromInt(4)))
}

func TestSettlementEngine_DetailedSettlement(t *testing.T) {
	_, engine := newTestEngines()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	participants := []uuid.UUID{a, b, c}

	holes := []models.HoleSideBets{
		{HoleNumber: 1, Bingo: ptr(a), Bango: ptr(a), Bongo: ptr(a)},
		{HoleNumber: 2, Bingo: ptr(b), Bango: ptr(b), Bongo: ptr(c)},
		{HoleNumber: 3, Greenie: ptr(a)},
	}
	configs := []models.SideBetConfig{
		enabledConfig(models.BetTypeGreenie, 2),
		enabledConfig(models.BetTypeBBB, 1),
	}

	breakdowns := engine.DetailedSettlement(holes, configs, participants)
	require.Len(t, breakdowns, 2)

	greenie := breakdowns[0]
	assert.Equal(t, models.BetTypeGreenie, greenie.Type)
	require.Len(t, greenie.Lines, 1)
	assert.Equal(t, a, greenie.Lines[0].PlayerID)
	assert.Equal(t, 1, greenie.Lines[0].Wins)
	// Gross receipts, not the net zero-sum contribution.
	assert.True(t, greenie.Lines[0].Amount.Equal(decimal.NewFromInt(4)))

	bbb := breakdowns[1]
	assert.Equal(t, models.BetTypeBBB, bbb.Type)
	require.Len(t, bbb.Lines, 3)
	assert.Equal(t, 3, bbb.Lines[0].Wins)
	assert.True(t, bbb.Lines[0].Amount.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, 2, bbb.Lines[1].Wins)
	assert.True(t, bbb.Lines[1].Amount.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, 1, bbb.Lines[2].Wins)
	assert.True(t, bbb.Lines[2].Amount.IsZero())
}

func TestSettlementEngine_ValidateZeroSum(t *testing.T) {
	_, engine := newTestEngines()
	a, b := uuid.New(), uuid.New()

	t.Run("exact zero", func(t *testing.T) {
		assert.True(t, engine.ValidateZeroSum(PayoutMap{
			a: decimal.NewFromInt(5),
			b: decimal.NewFromInt(-5),
		}))
	})

	t.Run("floating error within tolerance", func(t *testing.T) {
		assert.True(t, engine.ValidateZeroSum(PayoutMap{
			a: decimal.NewFromFloat(0.1 + 0.2),
			b: decimal.NewFromFloat(-0.3),
		}))
	})

	t.Run("real imbalance fails", func(t *testing.T) {
		assert.False(t, engine.ValidateZeroSum(PayoutMap{
			a: decimal.NewFromInt(5),
			b: decimal.NewFromInt(-4),
		}))
	})

	t.Run("empty map is zero sum", func(t *testing.T) {
		assert.True(t, engine.ValidateZeroSum(PayoutMap{}))
	})
}
