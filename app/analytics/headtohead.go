package analytics

import (
	"sort"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// ComputeHeadToHead groups a user's completed matches by opponent and ranks
// the resulting records by matches played. A match against three opponents
// contributes to three records.
func ComputeHeadToHead(matches []models.Match, entriesByMatch map[uuid.UUID][]models.LedgerEntry, betsByMatch map[uuid.UUID][]models.Bet, users map[uuid.UUID]models.User, userID uuid.UUID) HeadToHeadSummary {
	byOpponent := make(map[uuid.UUID][]models.Match)
	order := make([]uuid.UUID, 0)

	for i := range matches {
		match := matches[i]
		if !match.IsCompleted() || !match.HasParticipant(userID) {
			continue
		}
		for _, opponentID := range match.OpponentsOf(userID) {
			if _, ok := byOpponent[opponentID]; !ok {
				order = append(order, opponentID)
			}
			byOpponent[opponentID] = append(byOpponent[opponentID], match)
		}
	}

	records := make([]HeadToHeadRecord, 0, len(order))
	for _, opponentID := range order {
		user := users[opponentID]
		records = append(records, ComputeOpponentRecord(
			byOpponent[opponentID], entriesByMatch, betsByMatch,
			userID, opponentID, user.DisplayName, user.AvatarURL,
		))
	}

	// Most-played rival first; ties keep grouping order.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].TotalMatches > records[j].TotalMatches
	})

	summary := HeadToHeadSummary{Records: records}
	if len(records) > 0 {
		summary.TopRival = &records[0]
	}

	for i := range records {
		record := &records[i]
		if record.NetAmount.IsPositive() &&
			(summary.BiggestDebtor == nil || record.NetAmount.GreaterThan(summary.BiggestDebtor.NetAmount)) {
			summary.BiggestDebtor = record
		}
		if record.NetAmount.IsNegative() &&
			(summary.BiggestCreditor == nil || record.NetAmount.LessThan(summary.BiggestCreditor.NetAmount)) {
			summary.BiggestCreditor = record
		}
	}

	return summary
}

// ComputeOpponentRecord builds one user's record against a single opponent.
// Only ledger entries strictly between the pair count; transfers touching
// other players in a multi-player match are excluded.
func ComputeOpponentRecord(matches []models.Match, entriesByMatch map[uuid.UUID][]models.LedgerEntry, betsByMatch map[uuid.UUID][]models.Bet, userID, opponentID uuid.UUID, displayName, avatarURL string) HeadToHeadRecord {
	record := HeadToHeadRecord{
		OpponentID:    opponentID,
		DisplayName:   displayName,
		AvatarURL:     avatarURL,
		TotalWon:      decimal.Zero,
		TotalLost:     decimal.Zero,
		NetAmount:     decimal.Zero,
		ResultsByGame: make(map[models.BetType]*GameRecord),
		CurrentStreak: Streak{Type: StreakNone},
	}

	completed := completedByDate(matches)
	pairResults := make([]MatchResult, 0, len(completed))

	for i := range completed {
		match := &completed[i]

		net := decimal.Zero
		for _, entry := range entriesByMatch[match.ID] {
			if entry.IsBetween(userID, opponentID) {
				net = net.Add(entry.NetFor(userID))
			}
		}
		pairResults = append(pairResults, MatchResult{
			MatchID: match.ID,
			Date:    match.TeeTime,
			Net:     net,
		})

		var result Result
		switch {
		case net.IsPositive():
			result = ResultWin
			record.Wins++
			record.TotalWon = record.TotalWon.Add(net)
		case net.IsNegative():
			result = ResultLoss
			record.TotalLost = record.TotalLost.Add(net.Abs())
			record.Losses++
		default:
			result = ResultPush
			record.Pushes++
		}

		seen := make(map[models.BetType]struct{})
		for _, bet := range betsByMatch[match.ID] {
			if _, ok := seen[bet.Type]; ok {
				continue
			}
			seen[bet.Type] = struct{}{}

			game := record.ResultsByGame[bet.Type]
			if game == nil {
				game = &GameRecord{}
				record.ResultsByGame[bet.Type] = game
			}
			switch result {
			case ResultWin:
				game.Wins++
			case ResultLoss:
				game.Losses++
			default:
				game.Pushes++
			}
		}

		record.LastResult = result
		lastPlayed := match.TeeTime
		record.LastPlayed = &lastPlayed
	}

	record.TotalMatches = len(completed)
	record.NetAmount = record.TotalWon.Sub(record.TotalLost)
	record.CurrentStreak = CurrentStreak(pairResults)

	return record
}
