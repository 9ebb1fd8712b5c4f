package sidebet

import (
	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// pointsPerHole is the number of bingo-bango-bongo points a single hole
// can award: first on the green, closest once all are on, first in the hole.
const pointsPerHole = 3

// pointEngine implements the PointEngine interface
type pointEngine struct{}

// NewPointEngine creates a new bingo-bango-bongo point engine
func NewPointEngine() PointEngine {
	return &pointEngine{}
}

// CalculateBBBPoints tallies per-participant slot counts across all holes.
// A slot value that is not in participantIDs is silently dropped: it does
// not error and it does not count for anyone.
func (pe *pointEngine) CalculateBBBPoints(results []BBBHoleResult, participantIDs []uuid.UUID) []BBBPlayerPoints {
	index := make(map[uuid.UUID]int, len(participantIDs))
	points := make([]BBBPlayerPoints, len(participantIDs))
	for i, id := range participantIDs {
		index[id] = i
		points[i] = BBBPlayerPoints{PlayerID: id}
	}

	for _, hole := range results {
		if hole.Bingo != nil {
			if i, ok := index[*hole.Bingo]; ok {
				points[i].BingoCount++
			}
		}
		if hole.Bango != nil {
			if i, ok := index[*hole.Bango]; ok {
				points[i].BangoCount++
			}
		}
		if hole.Bongo != nil {
			if i, ok := index[*hole.Bongo]; ok {
				points[i].BongoCount++
			}
		}
	}

	for i := range points {
		points[i].TotalPoints = points[i].BingoCount + points[i].BangoCount + points[i].BongoCount
	}
	return points
}

// PlayerBBBPoints returns the slot breakdown for a single player
func (pe *pointEngine) PlayerBBBPoints(results []BBBHoleResult, playerID uuid.UUID) BBBPlayerPoints {
	p := BBBPlayerPoints{PlayerID: playerID}
	for _, hole := range results {
		if hole.Bingo != nil && *hole.Bingo == playerID {
			p.BingoCount++
		}
		if hole.Bango != nil && *hole.Bango == playerID {
			p.BangoCount++
		}
		if hole.Bongo != nil && *hole.Bongo == playerID {
			p.BongoCount++
		}
	}
	p.TotalPoints = p.BingoCount + p.BangoCount + p.BongoCount
	return p
}

// TotalPointsAwarded counts every claimed slot across all holes. This is an
// integrity check on the raw observations and deliberately ignores the
// participant filter.
func (pe *pointEngine) TotalPointsAwarded(results []BBBHoleResult) int {
	total := 0
	for _, hole := range results {
		if hole.Bingo != nil {
			total++
		}
		if hole.Bango != nil {
			total++
		}
		if hole.Bongo != nil {
			total++
		}
	}
	return total
}

// MaxPossiblePoints returns the point ceiling for a round of the given length
func (pe *pointEngine) MaxPossiblePoints(holes int) int {
	return holes * pointsPerHole
}

// RemainingPoints returns how many points are still up for grabs
func (pe *pointEngine) RemainingPoints(holesPlayed, totalHoles int) int {
	return (totalHoles - holesPlayed) * pointsPerHole
}

// CanStillWin is the mathematical-elimination test: true iff the player can
// at least tie the leader by sweeping every remaining hole.
func (pe *pointEngine) CanStillWin(playerPoints, leaderPoints, holesRemaining int) bool {
	return playerPoints+holesRemaining*pointsPerHole >= leaderPoints
}

// BBBLeader returns the participant with strictly the most points. It
// returns nil when no points were awarded, when the list is empty, or when
// the lead is shared.
func (pe *pointEngine) BBBLeader(points []BBBPlayerPoints) *BBBPlayerPoints {
	var leader *BBBPlayerPoints
	tied := false
	for i := range points {
		p := &points[i]
		if p.TotalPoints == 0 {
			continue
		}
		switch {
		case leader == nil || p.TotalPoints > leader.TotalPoints:
			leader = p
			tied = false
		case p.TotalPoints == leader.TotalPoints:
			tied = true
		}
	}
	if leader == nil || tied {
		return nil
	}
	out := *leader
	return &out
}

// BBBTransfers produces the pairwise settlement: for every unordered pair of
// participants the lower scorer pays the higher scorer the point
// differential times the per-point amount. A player who dominates the field
// is paid by every other player, not just the runner-up.
func (pe *pointEngine) BBBTransfers(results []BBBHoleResult, participantIDs []uuid.UUID, pointAmount decimal.Decimal) []Transfer {
	points := pe.CalculateBBBPoints(results, participantIDs)

	var transfers []Transfer
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			diff := points[i].TotalPoints - points[j].TotalPoints
			if diff == 0 {
				continue
			}
			winner, loser := points[i].PlayerID, points[j].PlayerID
			if diff < 0 {
				winner, loser = loser, winner
				diff = -diff
			}
			transfers = append(transfers, Transfer{
				From:    loser,
				To:      winner,
				BetType: models.BetTypeBBB,
				Amount:  pointAmount.Mul(decimal.NewFromInt(int64(diff))),
			})
		}
	}
	return transfers
}

// SettleBBB folds the pairwise transfers into a net payout map over all
// participants. The map always carries every participant, zero included.
func (pe *pointEngine) SettleBBB(results []BBBHoleResult, participantIDs []uuid.UUID, pointAmount decimal.Decimal) PayoutMap {
	payouts := newPayoutMap(participantIDs)
	applyTransfers(payouts, pe.BBBTransfers(results, participantIDs, pointAmount))
	return payouts
}
