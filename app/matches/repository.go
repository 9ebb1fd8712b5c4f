package matches

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

func (r *repository) Create(ctx context.Context, match *models.Match) error {
	if err := match.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(match).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	var match models.Match
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&match).Error
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *repository) ListByParticipant(ctx context.Context, userID uuid.UUID) ([]models.Match, error) {
	var matches []models.Match
	err := r.db.WithContext(ctx).
		Where("participant_ids @> ?", uuidContainment(userID)).
		Order("tee_time DESC").
		Find(&matches).Error
	return matches, err
}

// Save persists a match guarded by its version. A stale version means a
// concurrent writer got there first.
func (r *repository) Save(ctx context.Context, match *models.Match, expectedVersion int) error {
	result := r.db.WithContext(ctx).
		Model(&models.Match{}).
		Where("id = ? AND version = ?", match.ID, expectedVersion).
		Updates(map[string]interface{}{
			"status":       match.Status,
			"started_at":   match.StartedAt,
			"completed_at": match.CompletedAt,
			"version":      match.Version,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) CreateSideBetConfigs(ctx context.Context, configs []models.SideBetConfig) error {
	for i := range configs {
		if err := configs[i].Validate(); err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Create(&configs).Error
}

func (r *repository) GetSideBetConfigs(ctx context.Context, matchID uuid.UUID) ([]models.SideBetConfig, error) {
	var configs []models.SideBetConfig
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("type ASC").
		Find(&configs).Error
	return configs, err
}

func (r *repository) SaveSideBetConfig(ctx context.Context, config *models.SideBetConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(config).Error
}

func (r *repository) GetHoleSideBets(ctx context.Context, matchID uuid.UUID, holeNumber int) (*models.HoleSideBets, error) {
	var hole models.HoleSideBets
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND hole_number = ?", matchID, holeNumber).
		First(&hole).Error
	if err != nil {
		return nil, err
	}
	return &hole, nil
}

func (r *repository) SaveHoleSideBets(ctx context.Context, hole *models.HoleSideBets) error {
	if err := hole.Validate(); err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(hole).Error
}

func uuidContainment(id uuid.UUID) string {
	return `["` + id.String() + `"]`
}
