package analytics

import (
	"context"
	"fmt"

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

// GetUserDataset loads every match the user participates in along with the
// ledger entries and bets scoped to those matches.
func (r *repository) GetUserDataset(ctx context.Context, userID uuid.UUID) (*Dataset, error) {
	return r.loadDataset(ctx, userID, 0)
}

// GetUserDatasetForYear restricts the dataset to matches teed off in one
// calendar year.
func (r *repository) GetUserDatasetForYear(ctx context.Context, userID uuid.UUID, year int) (*Dataset, error) {
	return r.loadDataset(ctx, userID, year)
}

func (r *repository) loadDataset(ctx context.Context, userID uuid.UUID, year int) (*Dataset, error) {
	query := r.db.WithContext(ctx).
		Where("participant_ids @> ?", fmt.Sprintf(`["%s"]`, userID)).
		Order("tee_time ASC")
	if year > 0 {
		query = query.Where("EXTRACT(YEAR FROM tee_time) = ?", year)
	}

	var matches []models.Match
	if err := query.Find(&matches).Error; err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	dataset := &Dataset{
		Matches:        matches,
		EntriesByMatch: make(map[uuid.UUID][]models.LedgerEntry),
		BetsByMatch:    make(map[uuid.UUID][]models.Bet),
		Users:          make(map[uuid.UUID]models.User),
	}
	if len(matches) == 0 {
		return dataset, nil
	}

	matchIDs := make([]uuid.UUID, len(matches))
	participants := make(map[uuid.UUID]struct{})
	for i := range matches {
		matchIDs[i] = matches[i].ID
		for _, id := range matches[i].ParticipantIDs {
			participants[id] = struct{}{}
		}
	}

	var entries []models.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("match_id IN ?", matchIDs).
		Order("created_at ASC").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get ledger entries: %w", err)
	}
	for i := range entries {
		dataset.EntriesByMatch[entries[i].MatchID] = append(dataset.EntriesByMatch[entries[i].MatchID], entries[i])
	}

	var bets []models.Bet
	err = r.db.WithContext(ctx).
		Where("match_id IN ?", matchIDs).
		Order("created_at ASC").
		Find(&bets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}
	for i := range bets {
		dataset.BetsByMatch[bets[i].MatchID] = append(dataset.BetsByMatch[bets[i].MatchID], bets[i])
	}

	userIDs := make([]uuid.UUID, 0, len(participants))
	for id := range participants {
		userIDs = append(userIDs, id)
	}
	var users []models.User
	if err := r.db.WithContext(ctx).Where("id IN ?", userIDs).Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	for i := range users {
		dataset.Users[users[i].ID] = users[i]
	}

	return dataset, nil
}
