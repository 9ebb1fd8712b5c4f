package sidebet

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

func (r *repository) GetSideBetConfigs(ctx context.Context, matchID uuid.UUID) ([]models.SideBetConfig, error) {
	var configs []models.SideBetConfig
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("type ASC").
		Find(&configs).Error
	return configs, err
}

func (r *repository) GetHoleSideBets(ctx context.Context, matchID uuid.UUID) ([]models.HoleSideBets, error) {
	var holes []models.HoleSideBets
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("hole_number ASC").
		Find(&holes).Error
	return holes, err
}

func (r *repository) HasLedgerEntries(ctx context.Context, matchID uuid.UUID, types []models.BetType) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.LedgerEntry{}).
		Where("match_id = ? AND bet_type IN ?", matchID, types).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateLedgerEntries(ctx context.Context, entries []models.LedgerEntry) error {
	for i := range entries {
		if err := entries[i].Validate(); err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Create(&entries).Error
}
