package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// MatchResultOf nets one user's ledger entries for a single match into the
// per-match primitive every aggregate builds on.
func MatchResultOf(match *models.Match, entries []models.LedgerEntry, bets []models.Bet, userID uuid.UUID) MatchResult {
	net := decimal.Zero
	for i := range entries {
		net = net.Add(entries[i].NetFor(userID))
	}

	games := make([]models.BetType, len(bets))
	for i := range bets {
		games[i] = bets[i].Type
	}

	return MatchResult{
		MatchID:     match.ID,
		Date:        match.TeeTime,
		Net:         net,
		Games:       games,
		OpponentIDs: match.OpponentsOf(userID),
	}
}

// MatchStatsOf returns one user's view of a single match. The gross sums are
// kept separate from the net so offsetting entries still show the money that
// moved.
func MatchStatsOf(entries []models.LedgerEntry, userID uuid.UUID) MatchStats {
	won, lost := decimal.Zero, decimal.Zero
	for i := range entries {
		n := entries[i].NetFor(userID)
		switch {
		case n.IsPositive():
			won = won.Add(n)
		case n.IsNegative():
			lost = lost.Add(n.Abs())
		}
	}

	net := won.Sub(lost)
	stats := MatchStats{
		Net:       net,
		TotalWon:  won,
		TotalLost: lost,
	}
	switch {
	case net.IsPositive():
		stats.Result = ResultWin
	case net.IsNegative():
		stats.Result = ResultLoss
	default:
		stats.Result = ResultPush
	}
	return stats
}

// ComputeUserStats aggregates a user's completed matches into lifetime
// figures. Pushes count as matches played but never enter the win rate
// denominator. BiggestWin and BiggestLoss are magnitudes, both positive.
func ComputeUserStats(matches []models.Match, entriesByMatch map[uuid.UUID][]models.LedgerEntry, betsByMatch map[uuid.UUID][]models.Bet, userID uuid.UUID) UserStats {
	stats := UserStats{
		UserID:        userID,
		TotalWon:      decimal.Zero,
		TotalLost:     decimal.Zero,
		NetLifetime:   decimal.Zero,
		BiggestWin:    decimal.Zero,
		BiggestLoss:   decimal.Zero,
		AvgPayout:     decimal.Zero,
		MatchesByGame: make(map[models.BetType]int),
		Streaks:       StreakSummary{Current: Streak{Type: StreakNone}},
	}

	completed := completedByDate(matches)
	activeDays := make(map[string]struct{})
	results := make([]MatchResult, 0, len(completed))

	for i := range completed {
		match := &completed[i]
		result := MatchResultOf(match, entriesByMatch[match.ID], betsByMatch[match.ID], userID)
		results = append(results, result)

		switch result.Outcome() {
		case ResultWin:
			stats.Wins++
			stats.TotalWon = stats.TotalWon.Add(result.Net)
			if result.Net.GreaterThan(stats.BiggestWin) {
				stats.BiggestWin = result.Net
			}
		case ResultLoss:
			stats.Losses++
			magnitude := result.Net.Abs()
			stats.TotalLost = stats.TotalLost.Add(magnitude)
			if magnitude.GreaterThan(stats.BiggestLoss) {
				stats.BiggestLoss = magnitude
			}
		default:
			stats.Pushes++
		}

		seen := make(map[models.BetType]struct{}, len(result.Games))
		for _, game := range result.Games {
			if _, ok := seen[game]; ok {
				continue
			}
			seen[game] = struct{}{}
			stats.MatchesByGame[game]++
		}

		activeDays[match.TeeTime.Format("2006-01-02")] = struct{}{}
	}

	stats.TotalMatches = len(completed)
	stats.NetLifetime = stats.TotalWon.Sub(stats.TotalLost)
	stats.ActiveDays = len(activeDays)
	stats.WinRate = winRate(stats.Wins, stats.Losses)
	stats.FavoriteGame = favoriteGame(stats.MatchesByGame)
	stats.Streaks = ComputeStreaks(results)

	if stats.TotalMatches > 0 {
		stats.AvgPayout = stats.NetLifetime.Div(decimal.NewFromInt(int64(stats.TotalMatches)))
	}

	return stats
}

// completedByDate filters to completed matches sorted oldest first
func completedByDate(matches []models.Match) []models.Match {
	completed := make([]models.Match, 0, len(matches))
	for i := range matches {
		if matches[i].IsCompleted() {
			completed = append(completed, matches[i])
		}
	}
	sort.SliceStable(completed, func(i, j int) bool {
		return completed[i].TeeTime.Before(completed[j].TeeTime)
	})
	return completed
}

func winRate(wins, losses int) float64 {
	decided := wins + losses
	if decided == 0 {
		return 0
	}
	return float64(wins) / float64(decided)
}

// favoriteGame returns the most-played bet type, ties broken by name so the
// answer is stable
func favoriteGame(matchesByGame map[models.BetType]int) *models.BetType {
	var favorite *models.BetType
	best := 0
	for game, count := range matchesByGame {
		g := game
		if count > best || (count == best && favorite != nil && g < *favorite) {
			favorite = &g
			best = count
		}
	}
	return favorite
}
