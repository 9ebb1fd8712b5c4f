package wager

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// CreateBetRequest represents a request to attach a wager to a match.
// Either a preset name or an explicit amount selects the base stake;
// overrides then adjust individual configuration fields.
type CreateBetRequest struct {
	Type        models.BetType     `json:"type" binding:"required"`
	ScoringMode models.ScoringMode `json:"scoring_mode"`
	Preset      string             `json:"preset,omitempty"`
	Amount      *decimal.Decimal   `json:"amount,omitempty"`
	Nassau      *NassauOverrides   `json:"nassau,omitempty"`
	Skins       *SkinsOverrides    `json:"skins,omitempty"`
}

// BetResponse represents a wager in API responses
type BetResponse struct {
	ID           uuid.UUID            `json:"id"`
	MatchID      uuid.UUID            `json:"match_id"`
	Type         models.BetType       `json:"type"`
	ScoringMode  models.ScoringMode   `json:"scoring_mode"`
	NassauConfig *models.NassauConfig `json:"nassau_config,omitempty"`
	SkinsConfig  *models.SkinsConfig  `json:"skins_config,omitempty"`
	CreatedAt    time.Time            `json:"created_at"`
}

// BetExposure pairs a bet with its estimated total cash at risk
type BetExposure struct {
	BetID          uuid.UUID       `json:"bet_id"`
	Type           models.BetType  `json:"type"`
	EstimatedTotal decimal.Decimal `json:"estimated_total"`
}

// ExposureResponse represents the estimated exposure across a match's wagers
type ExposureResponse struct {
	MatchID          uuid.UUID       `json:"match_id"`
	ParticipantCount int             `json:"participant_count"`
	HoleCount        int             `json:"hole_count"`
	Bets             []BetExposure   `json:"bets"`
	Total            decimal.Decimal `json:"total"`
}

func toBetResponse(bet *models.Bet) BetResponse {
	return BetResponse{
		ID:           bet.ID,
		MatchID:      bet.MatchID,
		Type:         bet.Type,
		ScoringMode:  bet.ScoringMode,
		NassauConfig: bet.NassauConfig,
		SkinsConfig:  bet.SkinsConfig,
		CreatedAt:    bet.CreatedAt,
	}
}
