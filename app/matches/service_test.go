package matches

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/internal/sanitizer"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeRepository is an in-memory Repository for service tests that do not
// need a database transaction.
type fakeRepository struct {
	matches map[uuid.UUID]*models.Match
	configs map[uuid.UUID][]models.SideBetConfig
	holes   map[uuid.UUID]map[int]*models.HoleSideBets
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		matches: make(map[uuid.UUID]*models.Match),
		configs: make(map[uuid.UUID][]models.SideBetConfig),
		holes:   make(map[uuid.UUID]map[int]*models.HoleSideBets),
	}
}

func (f *fakeRepository) WithTx(_ *gorm.DB) Repository { return f }

func (f *fakeRepository) Create(_ context.Context, match *models.Match) error {
	if match.ID == uuid.Nil {
		match.ID = uuid.New()
	}
	f.matches[match.ID] = match
	return nil
}

func (f *fakeRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Match, error) {
	match, ok := f.matches[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *match
	return &copied, nil
}

func (f *fakeRepository) ListByParticipant(_ context.Context, userID uuid.UUID) ([]models.Match, error) {
	var out []models.Match
	for _, match := range f.matches {
		if match.HasParticipant(userID) {
			out = append(out, *match)
		}
	}
	return out, nil
}

func (f *fakeRepository) Save(_ context.Context, match *models.Match, expectedVersion int) error {
	existing, ok := f.matches[match.ID]
	if !ok || existing.Version != expectedVersion {
		return gorm.ErrRecordNotFound
	}
	copied := *match
	f.matches[match.ID] = &copied
	return nil
}

func (f *fakeRepository) CreateSideBetConfigs(_ context.Context, configs []models.SideBetConfig) error {
	for _, cfg := range configs {
		f.configs[cfg.MatchID] = append(f.configs[cfg.MatchID], cfg)
	}
	return nil
}

func (f *fakeRepository) GetSideBetConfigs(_ context.Context, matchID uuid.UUID) ([]models.SideBetConfig, error) {
	return f.configs[matchID], nil
}

func (f *fakeRepository) SaveSideBetConfig(_ context.Context, config *models.SideBetConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	configs := f.configs[config.MatchID]
	for i := range configs {
		if configs[i].Type == config.Type {
			configs[i] = *config
			return nil
		}
	}
	f.configs[config.MatchID] = append(configs, *config)
	return nil
}

func (f *fakeRepository) GetHoleSideBets(_ context.Context, matchID uuid.UUID, holeNumber int) (*models.HoleSideBets, error) {
	hole, ok := f.holes[matchID][holeNumber]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *hole
	return &copied, nil
}

func (f *fakeRepository) SaveHoleSideBets(_ context.Context, hole *models.HoleSideBets) error {
	if err := hole.Validate(); err != nil {
		return err
	}
	if f.holes[hole.MatchID] == nil {
		f.holes[hole.MatchID] = make(map[int]*models.HoleSideBets)
	}
	copied := *hole
	f.holes[hole.MatchID][hole.HoleNumber] = &copied
	return nil
}

func newTestService(repo Repository) Service {
	return NewService(nil, repo, GetDefaultConfig(), sanitizer.NewHTMLStripper())
}

func seedMatch(repo *fakeRepository, status models.MatchStatus) (*models.Match, []uuid.UUID) {
	a, b := uuid.New(), uuid.New()
	match := &models.Match{
		ID:             uuid.New(),
		CourseName:     "Pebble Creek",
		TeeTime:        time.Now(),
		HoleCount:      18,
		Status:         status,
		ParticipantIDs: models.UUIDList{a, b},
		CreatorID:      a,
		Version:        1,
	}
	repo.matches[match.ID] = match
	return match, []uuid.UUID{a, b}
}

func TestService_RecordHoleSideBets(t *testing.T) {
	ctx := context.Background()

	t.Run("creates then updates a hole record", func(t *testing.T) {
		repo := newFakeRepository()
		match, players := seedMatch(repo, models.MatchStatusActive)
		svc := newTestService(repo)

		hole, err := svc.RecordHoleSideBets(ctx, match.ID, &HoleSideBetsRequest{
			HoleNumber: 3,
			Greenie:    &players[0],
		})
		require.NoError(t, err)
		require.NotNil(t, hole.Greenie)
		assert.Equal(t, players[0], *hole.Greenie)

		// A second write for the same hole replaces the observations.
		hole, err = svc.RecordHoleSideBets(ctx, match.ID, &HoleSideBetsRequest{
			HoleNumber: 3,
			Bingo:      &players[1],
		})
		require.NoError(t, err)
		assert.Nil(t, hole.Greenie)
		require.NotNil(t, hole.Bingo)
		assert.Equal(t, players[1], *hole.Bingo)
	})

	t.Run("rejects non participant winners", func(t *testing.T) {
		repo := newFakeRepository()
		match, _ := seedMatch(repo, models.MatchStatusActive)
		svc := newTestService(repo)

		outsider := uuid.New()
		_, err := svc.RecordHoleSideBets(ctx, match.ID, &HoleSideBetsRequest{
			HoleNumber: 3,
			Greenie:    &outsider,
		})
		assert.ErrorIs(t, err, models.ErrInvalidUserID)

		_, err = svc.RecordHoleSideBets(ctx, match.ID, &HoleSideBetsRequest{
			HoleNumber: 3,
			Sandies:    models.SandyMap{outsider: true},
		})
		assert.ErrorIs(t, err, models.ErrInvalidUserID)
	})

	t.Run("rejects holes beyond the round", func(t *testing.T) {
		repo := newFakeRepository()
		match, players := seedMatch(repo, models.MatchStatusActive)
		repo.matches[match.ID].HoleCount = 9
		svc := newTestService(repo)

		_, err := svc.RecordHoleSideBets(ctx, match.ID, &HoleSideBetsRequest{
			HoleNumber: 12,
			Greenie:    &players[0],
		})
		assert.ErrorIs(t, err, models.ErrInvalidHoleNumber)
	})

	t.Run("completed matches take no observations", func(t *testing.T) {
		repo := newFakeRepository()
		match, players := seedMatch(repo, models.MatchStatusCompleted)
		svc := newTestService(repo)

		_, err := svc.RecordHoleSideBets(ctx, match.ID, &HoleSideBetsRequest{
			HoleNumber: 1,
			Greenie:    &players[0],
		})
		assert.ErrorIs(t, err, models.ErrMatchImmutable)
	})

	t.Run("missing match", func(t *testing.T) {
		svc := newTestService(newFakeRepository())
		_, err := svc.RecordHoleSideBets(ctx, uuid.New(), &HoleSideBetsRequest{HoleNumber: 1})
		assert.ErrorIs(t, err, models.ErrRecordNotFound)
	})
}

func TestService_ConfigureSideBet(t *testing.T) {
	ctx := context.Background()

	t.Run("enables a side game", func(t *testing.T) {
		repo := newFakeRepository()
		match, _ := seedMatch(repo, models.MatchStatusPending)
		svc := newTestService(repo)

		config, err := svc.ConfigureSideBet(ctx, match.ID, &ConfigureSideBetRequest{
			Type:    models.BetTypeGreenie,
			Amount:  decimal.NewFromInt(2),
			Enabled: true,
		})
		require.NoError(t, err)
		assert.True(t, config.Enabled)
		assert.True(t, config.Amount.Equal(decimal.NewFromInt(2)))

		configs, err := svc.GetSideBetConfigs(ctx, match.ID)
		require.NoError(t, err)
		require.Len(t, configs, 1)
		assert.Equal(t, models.BetTypeGreenie, configs[0].Type)
	})

	t.Run("rejects wager types", func(t *testing.T) {
		repo := newFakeRepository()
		match, _ := seedMatch(repo, models.MatchStatusPending)
		svc := newTestService(repo)

		_, err := svc.ConfigureSideBet(ctx, match.ID, &ConfigureSideBetRequest{
			Type:   models.BetTypeNassau,
			Amount: decimal.NewFromInt(2),
		})
		assert.ErrorIs(t, err, models.ErrInvalidSideBetType)
	})

	t.Run("completed matches are immutable", func(t *testing.T) {
		repo := newFakeRepository()
		match, _ := seedMatch(repo, models.MatchStatusCompleted)
		svc := newTestService(repo)

		_, err := svc.ConfigureSideBet(ctx, match.ID, &ConfigureSideBetRequest{
			Type:   models.BetTypeSandy,
			Amount: decimal.NewFromInt(1),
		})
		assert.ErrorIs(t, err, models.ErrMatchImmutable)
	})
}

func TestService_CleanCourseName(t *testing.T) {
	svc := newTestService(newFakeRepository()).(*service)

	assert.Equal(t, "Pebble Creek", svc.cleanCourseName("  Pebble Creek  "))
	assert.Equal(t, "Pebble Creek", svc.cleanCourseName("<b>Pebble</b> Creek"))
	assert.NotContains(t, svc.cleanCourseName("<script>alert(1)</script>Pines"), "<")

	long := make([]byte, 0, 200)
	for i := 0; i < 200; i++ {
		long = append(long, 'a')
	}
	assert.Len(t, svc.cleanCourseName(string(long)), GetDefaultConfig().MaxCourseNameLen)
}
