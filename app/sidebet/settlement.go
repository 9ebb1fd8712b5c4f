package sidebet

import (
	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// zeroSumEpsilon absorbs floating error when amounts originate from
// fractional per-unit stakes.
var zeroSumEpsilon = decimal.NewFromFloat(1e-6)

// settlementEngine implements the SettlementEngine interface
type settlementEngine struct {
	points PointEngine
}

// NewSettlementEngine creates a new side bet settlement engine
func NewSettlementEngine(points PointEngine) SettlementEngine {
	return &settlementEngine{points: points}
}

func newPayoutMap(participantIDs []uuid.UUID) PayoutMap {
	payouts := make(PayoutMap, len(participantIDs))
	for _, id := range participantIDs {
		payouts[id] = decimal.Zero
	}
	return payouts
}

func applyTransfers(payouts PayoutMap, transfers []Transfer) {
	for _, t := range transfers {
		payouts[t.To] = payouts[t.To].Add(t.Amount)
		payouts[t.From] = payouts[t.From].Sub(t.Amount)
	}
}

// winnerTakesFromField produces one transfer per opponent for a single
// winning award: every other participant pays the winner the unit amount.
// This is the explicit pairwise form of the "pay every other player" rule;
// a pot shortcut is only equivalent for two players.
func winnerTakesFromField(winner uuid.UUID, participantIDs []uuid.UUID, betType models.BetType, amount decimal.Decimal) []Transfer {
	transfers := make([]Transfer, 0, len(participantIDs)-1)
	for _, id := range participantIDs {
		if id == winner {
			continue
		}
		transfers = append(transfers, Transfer{From: id, To: winner, BetType: betType, Amount: amount})
	}
	return transfers
}

func contains(ids []uuid.UUID, id uuid.UUID) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// greenieTransfers pays the declared closest-to-pin winner of each hole the
// per-hole amount from every other participant. Winners outside the
// participant list are ignored entirely. Restricting greenies to par threes
// is the recorder's job, not settlement's.
func (se *settlementEngine) greenieTransfers(holes []models.HoleSideBets, participantIDs []uuid.UUID, amount decimal.Decimal) []Transfer {
	var transfers []Transfer
	for i := range holes {
		winner := holes[i].Greenie
		if winner == nil || !contains(participantIDs, *winner) {
			continue
		}
		transfers = append(transfers, winnerTakesFromField(*winner, participantIDs, models.BetTypeGreenie, amount)...)
	}
	return transfers
}

// sandyTransfers pays each player flagged with a sandy on a hole the
// per-hole amount from every other participant.
func (se *settlementEngine) sandyTransfers(holes []models.HoleSideBets, participantIDs []uuid.UUID, amount decimal.Decimal) []Transfer {
	var transfers []Transfer
	for i := range holes {
		for _, id := range participantIDs {
			if !holes[i].Sandies[id] {
				continue
			}
			transfers = append(transfers, winnerTakesFromField(id, participantIDs, models.BetTypeSandy, amount)...)
		}
	}
	return transfers
}

// SettleGreenies nets the greenie transfers into a payout map
func (se *settlementEngine) SettleGreenies(holes []models.HoleSideBets, participantIDs []uuid.UUID, amount decimal.Decimal) PayoutMap {
	payouts := newPayoutMap(participantIDs)
	applyTransfers(payouts, se.greenieTransfers(holes, participantIDs, amount))
	return payouts
}

// SettleSandies nets the sandy transfers into a payout map
func (se *settlementEngine) SettleSandies(holes []models.HoleSideBets, participantIDs []uuid.UUID, amount decimal.Decimal) PayoutMap {
	payouts := newPayoutMap(participantIDs)
	applyTransfers(payouts, se.sandyTransfers(holes, participantIDs, amount))
	return payouts
}

// BBBResultsFromHoles projects the bingo-bango-bongo slots out of the raw
// per-hole observation records.
func BBBResultsFromHoles(holes []models.HoleSideBets) []BBBHoleResult {
	results := make([]BBBHoleResult, len(holes))
	for i := range holes {
		results[i] = BBBHoleResult{
			HoleNumber: holes[i].HoleNumber,
			Bingo:      holes[i].Bingo,
			Bango:      holes[i].Bango,
			Bongo:      holes[i].Bongo,
		}
	}
	return results
}

func (se *settlementEngine) transfersForConfig(holes []models.HoleSideBets, cfg models.SideBetConfig, participantIDs []uuid.UUID) []Transfer {
	switch cfg.Type {
	case models.BetTypeGreenie:
		return se.greenieTransfers(holes, participantIDs, cfg.Amount)
	case models.BetTypeSandy:
		return se.sandyTransfers(holes, participantIDs, cfg.Amount)
	case models.BetTypeBBB:
		return se.points.BBBTransfers(BBBResultsFromHoles(holes), participantIDs, cfg.Amount)
	default:
		// Unknown types are rejected at the configuration boundary;
		// settlement never invents a payout for them.
		return nil
	}
}

// AllTransfers routes every enabled config to its settlement routine and
// aggregates the resulting transfers per payer/payee/type triple.
func (se *settlementEngine) AllTransfers(holes []models.HoleSideBets, configs []models.SideBetConfig, participantIDs []uuid.UUID) []Transfer {
	type pairKey struct {
		from, to uuid.UUID
		betType  models.BetType
	}
	totals := make(map[pairKey]decimal.Decimal)
	var order []pairKey

	for _, cfg := range configs {
		if !cfg.Enabled {
			continue
		}
		for _, t := range se.transfersForConfig(holes, cfg, participantIDs) {
			key := pairKey{from: t.From, to: t.To, betType: t.BetType}
			if _, ok := totals[key]; !ok {
				order = append(order, key)
			}
			totals[key] = totals[key].Add(t.Amount)
		}
	}

	transfers := make([]Transfer, 0, len(order))
	for _, key := range order {
		transfers = append(transfers, Transfer{
			From:    key.from,
			To:      key.to,
			BetType: key.betType,
			Amount:  totals[key],
		})
	}
	return transfers
}

// SettleAll combines every enabled side bet type into one payout map.
// Disabled configs contribute nothing.
func (se *settlementEngine) SettleAll(holes []models.HoleSideBets, configs []models.SideBetConfig, participantIDs []uuid.UUID) PayoutMap {
	payouts := newPayoutMap(participantIDs)
	applyTransfers(payouts, se.AllTransfers(holes, configs, participantIDs))
	return payouts
}

// DetailedSettlement returns the per-type breakdown: for each enabled side
// bet type, each winning player's hole/point count and gross receipts from
// that type alone.
func (se *settlementEngine) DetailedSettlement(holes []models.HoleSideBets, configs []models.SideBetConfig, participantIDs []uuid.UUID) []TypeBreakdown {
	var breakdowns []TypeBreakdown
	for _, cfg := range configs {
		if !cfg.Enabled {
			continue
		}

		gross := make(map[uuid.UUID]decimal.Decimal, len(participantIDs))
		for _, t := range se.transfersForConfig(holes, cfg, participantIDs) {
			gross[t.To] = gross[t.To].Add(t.Amount)
		}

		wins := se.winCounts(holes, cfg, participantIDs)

		lines := make([]BreakdownLine, 0, len(participantIDs))
		for _, id := range participantIDs {
			if wins[id] == 0 && gross[id].IsZero() {
				continue
			}
			lines = append(lines, BreakdownLine{PlayerID: id, Wins: wins[id], Amount: gross[id]})
		}
		breakdowns = append(breakdowns, TypeBreakdown{Type: cfg.Type, Lines: lines})
	}
	return breakdowns
}

// winCounts counts holes won for greenie/sandy and points scored for BBB
func (se *settlementEngine) winCounts(holes []models.HoleSideBets, cfg models.SideBetConfig, participantIDs []uuid.UUID) map[uuid.UUID]int {
	wins := make(map[uuid.UUID]int, len(participantIDs))
	switch cfg.Type {
	case models.BetTypeGreenie:
		for i := range holes {
			if w := holes[i].Greenie; w != nil && contains(participantIDs, *w) {
				wins[*w]++
			}
		}
	case models.BetTypeSandy:
		for i := range holes {
			for _, id := range participantIDs {
				if holes[i].Sandies[id] {
					wins[id]++
				}
			}
		}
	case models.BetTypeBBB:
		for _, p := range se.points.CalculateBBBPoints(BBBResultsFromHoles(holes), participantIDs) {
			wins[p.PlayerID] = p.TotalPoints
		}
	}
	return wins
}

// ValidateZeroSum checks that the payouts cancel out within tolerance.
// Every payout map produced by this package must satisfy it.
func (se *settlementEngine) ValidateZeroSum(payouts PayoutMap) bool {
	sum := decimal.Zero
	for _, v := range payouts {
		sum = sum.Add(v)
	}
	return sum.Abs().LessThan(zeroSumEpsilon)
}
