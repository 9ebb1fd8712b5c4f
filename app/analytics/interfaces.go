package analytics

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
)

// Dataset is one user's raw analytics input: their matches plus the ledger
// entries and bets for each, scoped by match id at the repository so a
// multi-tenant store cannot leak unrelated transfers in.
type Dataset struct {
	Matches        []models.Match
	EntriesByMatch map[uuid.UUID][]models.LedgerEntry
	BetsByMatch    map[uuid.UUID][]models.Bet
	Users          map[uuid.UUID]models.User
}

// Repository defines the interface for analytics data access
type Repository interface {
	GetUserDataset(ctx context.Context, userID uuid.UUID) (*Dataset, error)
	GetUserDatasetForYear(ctx context.Context, userID uuid.UUID, year int) (*Dataset, error)
}

// Service defines the interface for analytics business logic
type Service interface {
	GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error)
	GetHeadToHead(ctx context.Context, userID uuid.UUID) (*HeadToHeadSummary, error)
	GetStreaks(ctx context.Context, userID uuid.UUID) (*StreakResponse, error)
	GetWrapped(ctx context.Context, userID uuid.UUID, year int) (*GolfWrapped, error)
}
