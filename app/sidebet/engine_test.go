package sidebet

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(id uuid.UUID) *uuid.UUID {
	return &id
}

func TestPointEngine_CalculateBBBPoints(t *testing.T) {
	engine := NewPointEngine()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	participants := []uuid.UUID{a, b, c}

	t.Run("tallies slots per participant", func(t *testing.T) {
		results := []BBBHoleResult{
			{HoleNumber: 1, Bingo: ptr(a), Bango: ptr(a), Bongo: ptr(a)},
			{HoleNumber: 2, Bingo: ptr(b), Bango: ptr(b), Bongo: ptr(c)},
		}

		points := engine.CalculateBBBPoints(results, participants)
		require.Len(t, points, 3)

		assert.Equal(t, 3, points[0].TotalPoints)
		assert.Equal(t, 1, points[0].BingoCount)
		assert.Equal(t, 1, points[0].BangoCount)
		assert.Equal(t, 1, points[0].BongoCount)

		assert.Equal(t, 2, points[1].TotalPoints)
		assert.Equal(t, 1, points[2].TotalPoints)
		assert.Equal(t, 0, points[2].BingoCount)
		assert.Equal(t, 1, points[2].BongoCount)
	})

	t.Run("unclaimed slots count for nobody", func(t *testing.T) {
		results := []BBBHoleResult{
			{HoleNumber: 1, Bingo: ptr(a)},
		}

		points := engine.CalculateBBBPoints(results, participants)
		assert.Equal(t, 1, points[0].TotalPoints)
		assert.Equal(t, 0, points[1].TotalPoints)
		assert.Equal(t, 0, points[2].TotalPoints)
	})

	t.Run("non-participant slot values are silently dropped", func(t *testing.T) {
		outsider := uuid.New()
		results := []BBBHoleResult{
			{HoleNumber: 1, Bingo: ptr(outsider), Bango: ptr(a), Bongo: ptr(outsider)},
		}

		points := engine.CalculateBBBPoints(results, participants)
		assert.Equal(t, 1, points[0].TotalPoints)
		assert.Equal(t, 0, points[1].TotalPoints)
		assert.Equal(t, 0, points[2].TotalPoints)

		// The raw award count still sees all three claimed slots.
		assert.Equal(t, 3, engine.TotalPointsAwarded(results))
	})

	t.Run("empty inputs", func(t *testing.T) {
		assert.Empty(t, engine.CalculateBBBPoints(nil, nil))
		assert.Equal(t, 0, engine.TotalPointsAwarded(nil))
	})
}

func TestPointEngine_PlayerBBBPoints(t *testing.T) {
	engine := NewPointEngine()
	a, b := uuid.New(), uuid.New()

	results := []BBBHoleResult{
		{HoleNumber: 1, Bingo: ptr(a), Bango: ptr(b), Bongo: ptr(a)},
		{HoleNumber: 2, Bingo: ptr(a)},
	}

	p := engine.PlayerBBBPoints(results, a)
	assert.Equal(t, 2, p.BingoCount)
	assert.Equal(t, 0, p.BangoCount)
	assert.Equal(t, 1, p.BongoCount)
	assert.Equal(t, 3, p.TotalPoints)
}

func TestPointEngine_Projections(t *testing.T) {
	engine := NewPointEngine()

	assert.Equal(t, 54, engine.MaxPossiblePoints(18))
	assert.Equal(t, 27, engine.MaxPossiblePoints(9))
	assert.Equal(t, 12, engine.RemainingPoints(14, 18))
	assert.Equal(t, 0, engine.RemainingPoints(18, 18))
}

func TestPointEngine_CanStillWin(t *testing.T) {
	engine := NewPointEngine()

	t.Run("comfortably alive", func(t *testing.T) {
		assert.True(t, engine.CanStillWin(10, 12, 4))
	})

	t.Run("exact tie counts as still alive", func(t *testing.T) {
		assert.True(t, engine.CanStillWin(9, 12, 1))
	})

	t.Run("mathematically eliminated", func(t *testing.T) {
		assert.False(t, engine.CanStillWin(8, 12, 1))
		assert.False(t, engine.CanStillWin(0, 1, 0))
	})
}

func TestPointEngine_BBBLeader(t *testing.T) {
	engine := NewPointEngine()
	a, b := uuid.New(), uuid.New()

	t.Run("clear leader", func(t *testing.T) {
		points := []BBBPlayerPoints{
			{PlayerID: a, TotalPoints: 5},
			{PlayerID: b, TotalPoints: 3},
		}
		leader := engine.BBBLeader(points)
		require.NotNil(t, leader)
		assert.Equal(t, a, leader.PlayerID)
	})

	t.Run("no points awarded", func(t *testing.T) {
		points := []BBBPlayerPoints{
			{PlayerID: a},
			{PlayerID: b},
		}
		assert.Nil(t, engine.BBBLeader(points))
	})

	t.Run("empty list", func(t *testing.T) {
		assert.Nil(t, engine.BBBLeader(nil))
	})

	t.Run("shared lead has no strict leader", func(t *testing.T) {
		points := []BBBPlayerPoints{
			{PlayerID: a, TotalPoints: 4},
			{PlayerID: b, TotalPoints: 4},
		}
		assert.Nil(t, engine.BBBLeader(points))
	})
}

func TestPointEngine_SettleBBB(t *testing.T) {
	engine := NewPointEngine()
	a, b, c := uuid.New(), uuid.New(), uuid.New()
	participants := []uuid.UUID{a, b, c}
	unit := decimal.NewFromInt(1)

	t.Run("three player pairwise differentials", func(t *testing.T) {
		// A sweeps hole 1 (3 points), B takes bingo+bango on hole 2,
		// C takes its bongo. A=3, B=2, C=1.
		results := []BBBHoleResult{
			{HoleNumber: 1, Bingo: ptr(a), Bango: ptr(a), Bongo: ptr(a)},
			{HoleNumber: 2, Bingo: ptr(b), Bango: ptr(b), Bongo: ptr(c)},
		}

		payouts := engine.SettleBBB(results, participants, unit)

		// A beats B by 1 and C by 2; B beats C by 1, so B nets zero.
		assert.True(t, payouts[a].Equal(decimal.NewFromInt(3)), "A expected +3, got %s", payouts[a])
		assert.True(t, payouts[b].IsZero(), "B expected 0, got %s", payouts[b])
		assert.True(t, payouts[c].Equal(decimal.NewFromInt(-3)), "C expected -3, got %s", payouts[c])
	})

	t.Run("two player point diff times amount", func(t *testing.T) {
		results := []BBBHoleResult{
			{HoleNumber: 1, Bingo: ptr(a), Bango: ptr(a), Bongo: ptr(b)},
		}
		payouts := engine.SettleBBB(results, []uuid.UUID{a, b}, decimal.NewFromFloat(0.5))

		assert.True(t, payouts[a].Equal(decimal.NewFromFloat(0.5)))
		assert.True(t, payouts[b].Equal(decimal.NewFromFloat(-0.5)))
	})

	t.Run("tied players exchange nothing", func(t *testing.T) {
		results := []BBBHoleResult{
			{HoleNumber: 1, Bingo: ptr(a), Bango: ptr(b)},
		}
		payouts := engine.SettleBBB(results, []uuid.UUID{a, b}, unit)

		assert.True(t, payouts[a].IsZero())
		assert.True(t, payouts[b].IsZero())
	})

	t.Run("dominant player is paid by the whole field", func(t *testing.T) {
		results := []BBBHoleResult{
			{HoleNumber: 1, Bingo: ptr(a), Bango: ptr(a), Bongo: ptr(a)},
		}
		payouts := engine.SettleBBB(results, participants, unit)

		assert.True(t, payouts[a].Equal(decimal.NewFromInt(6)))
		assert.True(t, payouts[b].Equal(decimal.NewFromInt(-3)))
		assert.True(t, payouts[c].Equal(decimal.NewFromInt(-3)))
	})

	t.Run("empty results yield zero payouts", func(t *testing.T) {
		payouts := engine.SettleBBB(nil, participants, unit)
		for _, id := range participants {
			assert.True(t, payouts[id].IsZero())
		}
	})
}
