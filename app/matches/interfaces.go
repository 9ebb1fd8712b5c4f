package matches

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"gorm.io/gorm"
)

// Repository defines the interface for match data operations
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, match *models.Match) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListByParticipant(ctx context.Context, userID uuid.UUID) ([]models.Match, error)
	Save(ctx context.Context, match *models.Match, expectedVersion int) error
	CreateSideBetConfigs(ctx context.Context, configs []models.SideBetConfig) error
	GetSideBetConfigs(ctx context.Context, matchID uuid.UUID) ([]models.SideBetConfig, error)
	SaveSideBetConfig(ctx context.Context, config *models.SideBetConfig) error
	GetHoleSideBets(ctx context.Context, matchID uuid.UUID, holeNumber int) (*models.HoleSideBets, error)
	SaveHoleSideBets(ctx context.Context, hole *models.HoleSideBets) error
}

// Service defines the interface for match business logic
type Service interface {
	CreateMatch(ctx context.Context, req *CreateMatchRequest) (*MatchResponse, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error)
	ListMatches(ctx context.Context, userID uuid.UUID) ([]MatchResponse, error)
	StartMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error)
	CompleteMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error)
	CancelMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error)
	RecordHoleSideBets(ctx context.Context, matchID uuid.UUID, req *HoleSideBetsRequest) (*models.HoleSideBets, error)
	ConfigureSideBet(ctx context.Context, matchID uuid.UUID, req *ConfigureSideBetRequest) (*models.SideBetConfig, error)
	GetSideBetConfigs(ctx context.Context, matchID uuid.UUID) ([]models.SideBetConfig, error)
}
