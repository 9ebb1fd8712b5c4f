package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsFixture struct {
	user     uuid.UUID
	opponent uuid.UUID
	matches  []models.Match
	entries  map[uuid.UUID][]models.LedgerEntry
	bets     map[uuid.UUID][]models.Bet
}

func newStatsFixture() *statsFixture {
	return &statsFixture{
		user:     uuid.New(),
		opponent: uuid.New(),
		entries:  make(map[uuid.UUID][]models.LedgerEntry),
		bets:     make(map[uuid.UUID][]models.Bet),
	}
}

// addMatch records a completed match where the user nets the given amount
// against the fixture opponent
func (f *statsFixture) addMatch(teeTime time.Time, net int64, games ...models.BetType) uuid.UUID {
	match := models.Match{
		ID:             uuid.New(),
		CourseName:     "Pebble Creek",
		TeeTime:        teeTime,
		HoleCount:      18,
		Status:         models.MatchStatusCompleted,
		ParticipantIDs: models.UUIDList{f.user, f.opponent},
	}
	f.matches = append(f.matches, match)

	if net != 0 {
		entry := models.LedgerEntry{
			MatchID: match.ID,
			Amount:  decimal.NewFromInt(net).Abs(),
			BetType: models.BetTypeNassau,
		}
		if net > 0 {
			entry.FromUserID, entry.ToUserID = f.opponent, f.user
		} else {
			entry.FromUserID, entry.ToUserID = f.user, f.opponent
		}
		f.entries[match.ID] = []models.LedgerEntry{entry}
	}

	for _, game := range games {
		f.bets[match.ID] = append(f.bets[match.ID], models.Bet{MatchID: match.ID, Type: game})
	}
	return match.ID
}

func day(n int) time.Time {
	return time.Date(2025, time.March, n, 8, 0, 0, 0, time.UTC)
}

func TestMatchResultOf(t *testing.T) {
	f := newStatsFixture()
	matchID := f.addMatch(day(1), 10, models.BetTypeNassau, models.BetTypeSkins)
	match := &f.matches[0]

	result := MatchResultOf(match, f.entries[matchID], f.bets[matchID], f.user)

	assert.Equal(t, matchID, result.MatchID)
	assert.True(t, result.Net.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, []models.BetType{models.BetTypeNassau, models.BetTypeSkins}, result.Games)
	assert.Equal(t, []uuid.UUID{f.opponent}, []uuid.UUID(result.OpponentIDs))
	assert.Equal(t, ResultWin, result.Outcome())
}

func TestMatchStatsOf(t *testing.T) {
	user, a, b := uuid.New(), uuid.New(), uuid.New()

	t.Run("offsetting entries push with gross sums intact", func(t *testing.T) {
		entries := []models.LedgerEntry{
			{FromUserID: a, ToUserID: user, Amount: decimal.NewFromInt(5)},
			{FromUserID: user, ToUserID: b, Amount: decimal.NewFromInt(5)},
		}

		stats := MatchStatsOf(entries, user)

		assert.Equal(t, ResultPush, stats.Result)
		assert.True(t, stats.Net.IsZero())
		assert.True(t, stats.TotalWon.Equal(decimal.NewFromInt(5)))
		assert.True(t, stats.TotalLost.Equal(decimal.NewFromInt(5)))
	})

	t.Run("no entries is a push", func(t *testing.T) {
		stats := MatchStatsOf(nil, user)
		assert.Equal(t, ResultPush, stats.Result)
		assert.True(t, stats.Net.IsZero())
	})
}

func TestComputeUserStats(t *testing.T) {
	t.Run("single winning match", func(t *testing.T) {
		f := newStatsFixture()
		f.addMatch(day(1), 10, models.BetTypeNassau)

		stats := ComputeUserStats(f.matches, f.entries, f.bets, f.user)

		assert.Equal(t, 1, stats.Wins)
		assert.Equal(t, 0, stats.Losses)
		assert.Equal(t, 1.0, stats.WinRate)
		assert.True(t, stats.NetLifetime.Equal(decimal.NewFromInt(10)), "got %s", stats.NetLifetime)
	})

	t.Run("pushes never enter the win rate denominator", func(t *testing.T) {
		f := newStatsFixture()
		f.addMatch(day(1), 10)
		f.addMatch(day(2), -10)
		f.addMatch(day(3), 0)

		stats := ComputeUserStats(f.matches, f.entries, f.bets, f.user)

		assert.Equal(t, 1, stats.Wins)
		assert.Equal(t, 1, stats.Losses)
		assert.Equal(t, 1, stats.Pushes)
		assert.Equal(t, 0.5, stats.WinRate)
		assert.Equal(t, 3, stats.TotalMatches)
	})

	t.Run("biggest swings and average payout", func(t *testing.T) {
		f := newStatsFixture()
		f.addMatch(day(1), 10)
		f.addMatch(day(2), 30)
		f.addMatch(day(3), -25)

		stats := ComputeUserStats(f.matches, f.entries, f.bets, f.user)

		assert.True(t, stats.BiggestWin.Equal(decimal.NewFromInt(30)))
		assert.True(t, stats.BiggestLoss.Equal(decimal.NewFromInt(25)))
		assert.True(t, stats.NetLifetime.Equal(decimal.NewFromInt(15)))
		assert.True(t, stats.AvgPayout.Equal(decimal.NewFromInt(5)), "got %s", stats.AvgPayout)
	})

	t.Run("matches by game and favorite", func(t *testing.T) {
		f := newStatsFixture()
		f.addMatch(day(1), 10, models.BetTypeNassau, models.BetTypeSkins)
		f.addMatch(day(2), -5, models.BetTypeNassau)

		stats := ComputeUserStats(f.matches, f.entries, f.bets, f.user)

		assert.Equal(t, 2, stats.MatchesByGame[models.BetTypeNassau])
		assert.Equal(t, 1, stats.MatchesByGame[models.BetTypeSkins])
		require.NotNil(t, stats.FavoriteGame)
		assert.Equal(t, models.BetTypeNassau, *stats.FavoriteGame)
	})

	t.Run("same day matches count one active day", func(t *testing.T) {
		f := newStatsFixture()
		f.addMatch(day(1).Add(7*time.Hour), 10)
		f.addMatch(day(1).Add(12*time.Hour), 5)
		f.addMatch(day(2), -5)

		stats := ComputeUserStats(f.matches, f.entries, f.bets, f.user)
		assert.Equal(t, 2, stats.ActiveDays)
	})

	t.Run("non-completed matches are ignored", func(t *testing.T) {
		f := newStatsFixture()
		f.addMatch(day(1), 10)
		f.matches[0].Status = models.MatchStatusActive

		stats := ComputeUserStats(f.matches, f.entries, f.bets, f.user)
		assert.Equal(t, 0, stats.TotalMatches)
		assert.Equal(t, 0.0, stats.WinRate)
		assert.Nil(t, stats.FavoriteGame)
	})

	t.Run("empty input", func(t *testing.T) {
		stats := ComputeUserStats(nil, nil, nil, uuid.New())

		assert.Equal(t, 0, stats.TotalMatches)
		assert.Equal(t, 0.0, stats.WinRate)
		assert.True(t, stats.NetLifetime.IsZero())
		assert.True(t, stats.AvgPayout.IsZero())
		assert.Equal(t, StreakNone, stats.Streaks.Current.Type)
	})
}
