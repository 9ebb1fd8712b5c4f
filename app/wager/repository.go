package wager

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	return &repository{db: tx}
}

func (r *repository) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *repository) GetBets(ctx context.Context, matchID uuid.UUID) ([]models.Bet, error) {
	var bets []models.Bet
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&bets).Error
	return bets, err
}

func (r *repository) HasBetOfType(ctx context.Context, matchID uuid.UUID, betType models.BetType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Bet{}).
		Where("match_id = ? AND type = ?", matchID, betType).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateBet(ctx context.Context, bet *models.Bet) error {
	if err := bet.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(bet).Error
}
