package sidebet

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PlayerPayout is one participant's net settlement result
type PlayerPayout struct {
	PlayerID uuid.UUID       `json:"player_id"`
	Amount   decimal.Decimal `json:"amount"`
}

// TransferResponse represents one directed payment in API responses
type TransferResponse struct {
	FromUserID uuid.UUID       `json:"from_user_id"`
	ToUserID   uuid.UUID       `json:"to_user_id"`
	BetType    string          `json:"bet_type"`
	Amount     decimal.Decimal `json:"amount"`
}

// SettlementResponse is the full settlement result for a match
type SettlementResponse struct {
	MatchID   uuid.UUID          `json:"match_id"`
	Committed bool               `json:"committed"`
	Payouts   []PlayerPayout     `json:"payouts"`
	Transfers []TransferResponse `json:"transfers"`
	Breakdown []TypeBreakdown    `json:"breakdown"`
	ZeroSum   bool               `json:"zero_sum"`
	CreatedAt time.Time          `json:"created_at"`
}

// BBBStandingResponse is one player's live bingo-bango-bongo standing
type BBBStandingResponse struct {
	BBBPlayerPoints
	CanStillWin bool `json:"can_still_win"`
}

// BBBStandingsResponse is the live bingo-bango-bongo scoreboard for a match
type BBBStandingsResponse struct {
	MatchID            uuid.UUID             `json:"match_id"`
	Standings          []BBBStandingResponse `json:"standings"`
	Leader             *BBBPlayerPoints      `json:"leader"`
	TotalPointsAwarded int                   `json:"total_points_awarded"`
	MaxPossiblePoints  int                   `json:"max_possible_points"`
	RemainingPoints    int                   `json:"remaining_points"`
}

func toPlayerPayouts(payouts PayoutMap, order []uuid.UUID) []PlayerPayout {
	out := make([]PlayerPayout, 0, len(payouts))
	for _, id := range order {
		amount, ok := payouts[id]
		if !ok {
			continue
		}
		out = append(out, PlayerPayout{PlayerID: id, Amount: amount})
	}
	return out
}

func toTransferResponses(transfers []Transfer) []TransferResponse {
	out := make([]TransferResponse, len(transfers))
	for i, t := range transfers {
		out[i] = TransferResponse{
			FromUserID: t.From,
			ToUserID:   t.To,
			BetType:    string(t.BetType),
			Amount:     t.Amount,
		}
	}
	return out
}
