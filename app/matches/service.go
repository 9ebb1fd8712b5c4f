package matches

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/app/sidebet"
	"github.com/joefazee/fairway/internal/sanitizer"
	"github.com/joefazee/fairway/models"
	"gorm.io/gorm"
)

type service struct {
	db        *gorm.DB
	repo      Repository
	config    *Config
	sanitizer sanitizer.HTMLStripperer
}

func NewService(db *gorm.DB, repo Repository, config *Config, stripper sanitizer.HTMLStripperer) Service {
	return &service{
		db:        db,
		repo:      repo,
		config:    config,
		sanitizer: stripper,
	}
}

func (s *service) cleanCourseName(name string) string {
	cleaned := name
	if s.sanitizer != nil {
		cleaned = s.sanitizer.StripHTML(cleaned)
	}
	cleaned = strings.TrimSpace(cleaned)
	if len(cleaned) > s.config.MaxCourseNameLen {
		cleaned = cleaned[:s.config.MaxCourseNameLen]
	}
	return cleaned
}

// CreateMatch creates a pending match together with its three disabled
// side-bet configs so side games only need a toggle later.
func (s *service) CreateMatch(ctx context.Context, req *CreateMatchRequest) (*MatchResponse, error) {
	if len(req.ParticipantIDs) > s.config.MaxParticipants {
		return nil, models.ErrInvalidParticipantLimit
	}

	match := &models.Match{
		CourseName:     s.cleanCourseName(req.CourseName),
		TeeTime:        req.TeeTime,
		HoleCount:      req.HoleCount,
		Status:         models.MatchStatusPending,
		ParticipantIDs: req.ParticipantIDs,
		CreatorID:      req.CreatorID,
		Version:        1,
	}
	if err := match.Validate(); err != nil {
		return nil, err
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Create(ctx, match); err != nil {
			return fmt.Errorf("failed to create match: %w", err)
		}

		configs := sidebet.DefaultSideBetConfigs(match.ID, sidebet.GetDefaultConfig().DefaultUnitAmount)
		if err := txRepo.CreateSideBetConfigs(ctx, configs); err != nil {
			return fmt.Errorf("failed to create side bet configs: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	response := toMatchResponse(match)
	return &response, nil
}

func (s *service) GetMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error) {
	match, err := s.getMatch(ctx, id)
	if err != nil {
		return nil, err
	}
	response := toMatchResponse(match)
	return &response, nil
}

func (s *service) ListMatches(ctx context.Context, userID uuid.UUID) ([]MatchResponse, error) {
	matches, err := s.repo.ListByParticipant(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	responses := make([]MatchResponse, len(matches))
	for i := range matches {
		responses[i] = toMatchResponse(&matches[i])
	}
	return responses, nil
}

// StartMatch moves a pending match into play
func (s *service) StartMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error) {
	return s.transition(ctx, id, (*models.Match).Start)
}

// CompleteMatch finishes an active match; from here the match is immutable
// and settlement can run
func (s *service) CompleteMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error) {
	return s.transition(ctx, id, (*models.Match).Complete)
}

// CancelMatch abandons a match that never finished
func (s *service) CancelMatch(ctx context.Context, id uuid.UUID) (*MatchResponse, error) {
	return s.transition(ctx, id, (*models.Match).Cancel)
}

func (s *service) transition(ctx context.Context, id uuid.UUID, apply func(*models.Match) error) (*MatchResponse, error) {
	var response *MatchResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		match, err := txRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrRecordNotFound
			}
			return fmt.Errorf("failed to get match: %w", err)
		}

		expectedVersion := match.Version
		if err := apply(match); err != nil {
			return err
		}

		if err := txRepo.Save(ctx, match, expectedVersion); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.ErrMatchImmutable
			}
			return fmt.Errorf("failed to save match: %w", err)
		}

		resp := toMatchResponse(match)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// RecordHoleSideBets upserts the observation record for one hole. Winner
// slots referencing non-participants are rejected up front rather than
// silently dropped at settlement.
func (s *service) RecordHoleSideBets(ctx context.Context, matchID uuid.UUID, req *HoleSideBetsRequest) (*models.HoleSideBets, error) {
	match, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.IsCompleted() {
		return nil, models.ErrMatchImmutable
	}
	if req.HoleNumber < 1 || req.HoleNumber > match.HoleCount {
		return nil, models.ErrInvalidHoleNumber
	}
	if err := s.checkWinners(match, req); err != nil {
		return nil, err
	}

	hole, err := s.repo.GetHoleSideBets(ctx, matchID, req.HoleNumber)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to get hole record: %w", err)
		}
		hole = &models.HoleSideBets{
			MatchID:    matchID,
			HoleNumber: req.HoleNumber,
		}
	}

	hole.Greenie = req.Greenie
	hole.Sandies = req.Sandies
	hole.Bingo = req.Bingo
	hole.Bango = req.Bango
	hole.Bongo = req.Bongo

	if err := s.repo.SaveHoleSideBets(ctx, hole); err != nil {
		return nil, fmt.Errorf("failed to save hole record: %w", err)
	}
	return hole, nil
}

func (s *service) checkWinners(match *models.Match, req *HoleSideBetsRequest) error {
	for _, winner := range []*uuid.UUID{req.Greenie, req.Bingo, req.Bango, req.Bongo} {
		if winner != nil && !match.HasParticipant(*winner) {
			return models.ErrInvalidUserID
		}
	}
	for id := range req.Sandies {
		if !match.HasParticipant(id) {
			return models.ErrInvalidUserID
		}
	}
	return nil
}

// ConfigureSideBet enables or adjusts one side game on a match
func (s *service) ConfigureSideBet(ctx context.Context, matchID uuid.UUID, req *ConfigureSideBetRequest) (*models.SideBetConfig, error) {
	match, err := s.getMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.IsCompleted() {
		return nil, models.ErrMatchImmutable
	}
	if !req.Type.IsSideBet() {
		return nil, models.ErrInvalidSideBetType
	}

	configs, err := s.repo.GetSideBetConfigs(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get side bet configs: %w", err)
	}

	var config *models.SideBetConfig
	for i := range configs {
		if configs[i].Type == req.Type {
			config = &configs[i]
			break
		}
	}
	if config == nil {
		config = &models.SideBetConfig{
			MatchID: matchID,
			Type:    req.Type,
		}
	}

	config.Amount = req.Amount
	config.Enabled = req.Enabled

	if err := s.repo.SaveSideBetConfig(ctx, config); err != nil {
		return nil, fmt.Errorf("failed to save side bet config: %w", err)
	}
	return config, nil
}

func (s *service) GetSideBetConfigs(ctx context.Context, matchID uuid.UUID) ([]models.SideBetConfig, error) {
	if _, err := s.getMatch(ctx, matchID); err != nil {
		return nil, err
	}
	configs, err := s.repo.GetSideBetConfigs(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get side bet configs: %w", err)
	}
	return configs, nil
}

func (s *service) getMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	match, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}
