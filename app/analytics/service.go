package analytics

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/internal/cache"
	"github.com/joefazee/fairway/internal/logger"
)

type service struct {
	repo         Repository
	config       *Config
	wrappedCache cache.Cache[GolfWrapped]
	statsCache   cache.Cache[UserStats]
	log          logger.Logger
}

func NewService(repo Repository, config *Config, wrappedCache cache.Cache[GolfWrapped], statsCache cache.Cache[UserStats], log logger.Logger) Service {
	if log == nil {
		log = logger.NewNullLogger()
	}
	return &service{
		repo:         repo,
		config:       config,
		wrappedCache: wrappedCache,
		statsCache:   statsCache,
		log:          log,
	}
}

func statsCacheKey(userID uuid.UUID) string {
	return "analytics:stats:" + userID.String()
}

func wrappedCacheKey(userID uuid.UUID, year int) string {
	return fmt.Sprintf("analytics:wrapped:%s:%d", userID, year)
}

// GetUserStats returns a user's lifetime aggregates, served from cache when
// fresh enough
func (s *service) GetUserStats(ctx context.Context, userID uuid.UUID) (*UserStats, error) {
	if s.statsCache != nil {
		if cached, err := s.statsCache.Get(ctx, statsCacheKey(userID)); err == nil {
			return &cached, nil
		}
	}

	dataset, err := s.repo.GetUserDataset(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := ComputeUserStats(dataset.Matches, dataset.EntriesByMatch, dataset.BetsByMatch, userID)

	if s.statsCache != nil {
		if err := s.statsCache.Set(ctx, statsCacheKey(userID), stats, s.config.StatsCacheTTL); err != nil {
			s.log.Error(err, logger.Fields{"op": "cache user stats", "user_id": userID})
		}
	}

	return &stats, nil
}

// GetHeadToHead returns the user's ranked rivalry records
func (s *service) GetHeadToHead(ctx context.Context, userID uuid.UUID) (*HeadToHeadSummary, error) {
	dataset, err := s.repo.GetUserDataset(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := ComputeHeadToHead(dataset.Matches, dataset.EntriesByMatch, dataset.BetsByMatch, dataset.Users, userID)
	return &summary, nil
}

// GetStreaks returns the user's current and longest streaks
func (s *service) GetStreaks(ctx context.Context, userID uuid.UUID) (*StreakResponse, error) {
	dataset, err := s.repo.GetUserDataset(ctx, userID)
	if err != nil {
		return nil, err
	}

	completed := completedByDate(dataset.Matches)
	results := make([]MatchResult, len(completed))
	for i := range completed {
		results[i] = MatchResultOf(&completed[i], dataset.EntriesByMatch[completed[i].ID], dataset.BetsByMatch[completed[i].ID], userID)
	}

	return toStreakResponse(ComputeStreaks(results)), nil
}

// GetWrapped returns the shareable year-end summary
func (s *service) GetWrapped(ctx context.Context, userID uuid.UUID, year int) (*GolfWrapped, error) {
	key := wrappedCacheKey(userID, year)
	if s.wrappedCache != nil {
		if cached, err := s.wrappedCache.Get(ctx, key); err == nil {
			return &cached, nil
		}
	}

	dataset, err := s.repo.GetUserDatasetForYear(ctx, userID, year)
	if err != nil {
		return nil, err
	}

	wrapped := GenerateGolfWrapped(dataset.Matches, dataset.EntriesByMatch, dataset.BetsByMatch, dataset.Users, userID, year)

	if s.wrappedCache != nil {
		if err := s.wrappedCache.Set(ctx, key, wrapped, s.config.WrappedCacheTTL); err != nil {
			s.log.Error(err, logger.Fields{"op": "cache wrapped summary", "user_id": userID})
		}
	}

	return &wrapped, nil
}
