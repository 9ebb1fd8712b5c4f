package wager

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"gorm.io/gorm"
)

// Repository defines the interface for wager data operations
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetBets(ctx context.Context, matchID uuid.UUID) ([]models.Bet, error)
	HasBetOfType(ctx context.Context, matchID uuid.UUID, betType models.BetType) (bool, error)
	CreateBet(ctx context.Context, bet *models.Bet) error
}

// Service defines the interface for wager business logic
type Service interface {
	CreateBet(ctx context.Context, matchID uuid.UUID, req *CreateBetRequest) (*BetResponse, error)
	ListBets(ctx context.Context, matchID uuid.UUID) ([]BetResponse, error)
	EstimateExposure(ctx context.Context, matchID uuid.UUID) (*ExposureResponse, error)
}
