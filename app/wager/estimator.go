package wager

import (
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

func opponentCount(participantCount int) decimal.Decimal {
	if participantCount < 1 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(participantCount - 1))
}

// EstimateNassauTotal returns the total cash at risk for one player if every
// pairing plays out: the sum of the three legs times the number of opponents.
// An upper bound for display, not a settlement.
func EstimateNassauTotal(cfg *models.NassauConfig, participantCount int) decimal.Decimal {
	perOpponent := cfg.FrontAmount.Add(cfg.BackAmount).Add(cfg.OverallAmount)
	return perOpponent.Mul(opponentCount(participantCount))
}

// EstimateSkinsTotal returns the total cash at risk in a skins game where
// every hole's skin is claimed by an opponent.
func EstimateSkinsTotal(cfg *models.SkinsConfig, participantCount, holes int) decimal.Decimal {
	perOpponent := cfg.SkinValue.Mul(decimal.NewFromInt(int64(holes)))
	return perOpponent.Mul(opponentCount(participantCount))
}

// EstimateBetTotal routes a bet to its estimator. Wager types without a
// configuration carry no estimable exposure.
func EstimateBetTotal(bet *models.Bet, participantCount, holes int) decimal.Decimal {
	switch bet.Type {
	case models.BetTypeNassau:
		if bet.NassauConfig != nil {
			return EstimateNassauTotal(bet.NassauConfig, participantCount)
		}
	case models.BetTypeSkins:
		if bet.SkinsConfig != nil {
			return EstimateSkinsTotal(bet.SkinsConfig, participantCount, holes)
		}
	}
	return decimal.Zero
}
