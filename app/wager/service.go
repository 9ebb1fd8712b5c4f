package wager

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type service struct {
	db     *gorm.DB
	repo   Repository
	config *Config
}

func NewService(db *gorm.DB, repo Repository, config *Config) Service {
	return &service{
		db:     db,
		repo:   repo,
		config: config,
	}
}

func (s *service) getMatch(ctx context.Context, repo Repository, matchID uuid.UUID) (*models.Match, error) {
	match, err := repo.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}
	return match, nil
}

// baseAmount resolves the stake a request selects, preset name first.
func (s *service) baseAmount(req *CreateBetRequest) (decimal.Decimal, error) {
	if req.Preset != "" {
		amount, ok := PresetAmounts[req.Preset]
		if !ok {
			return decimal.Zero, models.ErrUnknownPreset
		}
		return amount, nil
	}
	if req.Amount == nil || req.Amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, models.ErrInvalidBetAmount
	}
	if req.Amount.LessThan(s.config.MinBetAmount) {
		return decimal.Zero, models.ErrInvalidBetAmount
	}
	return *req.Amount, nil
}

func (s *service) buildBet(matchID uuid.UUID, req *CreateBetRequest) (*models.Bet, error) {
	bet := &models.Bet{
		MatchID:     matchID,
		Type:        req.Type,
		ScoringMode: req.ScoringMode,
	}
	if bet.ScoringMode == "" {
		bet.ScoringMode = models.ScoringModeGross
	}

	switch req.Type {
	case models.BetTypeNassau:
		amount, err := s.baseAmount(req)
		if err != nil {
			return nil, err
		}
		cfg := NewNassauConfig(amount, req.Nassau)
		if err := s.config.ValidateNassau(&cfg); err != nil {
			return nil, err
		}
		bet.NassauConfig = &cfg
	case models.BetTypeSkins:
		amount, err := s.baseAmount(req)
		if err != nil {
			return nil, err
		}
		cfg := NewSkinsConfig(amount, req.Skins)
		if err := s.config.ValidateSkins(&cfg); err != nil {
			return nil, err
		}
		bet.SkinsConfig = &cfg
	case models.BetTypeMatchPlay, models.BetTypeStrokePlay:
		// Straight match-play and stroke-play wagers carry no configuration.
	default:
		return nil, models.ErrInvalidBetType
	}

	return bet, nil
}

// CreateBet attaches a wager to a match. Completed and cancelled matches
// take no new bets, and a match carries at most one bet per wager type.
func (s *service) CreateBet(ctx context.Context, matchID uuid.UUID, req *CreateBetRequest) (*BetResponse, error) {
	var response *BetResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		match, err := s.getMatch(ctx, txRepo, matchID)
		if err != nil {
			return err
		}
		if match.IsCompleted() {
			return models.ErrMatchCompleted
		}
		if match.Status == models.MatchStatusCancelled {
			return models.ErrInvalidMatchStatus
		}

		bet, err := s.buildBet(matchID, req)
		if err != nil {
			return err
		}

		exists, err := txRepo.HasBetOfType(ctx, matchID, bet.Type)
		if err != nil {
			return fmt.Errorf("failed to check existing bets: %w", err)
		}
		if exists {
			return models.ErrDuplicateBet
		}

		if err := txRepo.CreateBet(ctx, bet); err != nil {
			return fmt.Errorf("failed to create bet: %w", err)
		}

		resp := toBetResponse(bet)
		response = &resp
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// ListBets returns every wager attached to a match
func (s *service) ListBets(ctx context.Context, matchID uuid.UUID) ([]BetResponse, error) {
	if _, err := s.getMatch(ctx, s.repo, matchID); err != nil {
		return nil, err
	}

	bets, err := s.repo.GetBets(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}

	responses := make([]BetResponse, len(bets))
	for i := range bets {
		responses[i] = toBetResponse(&bets[i])
	}
	return responses, nil
}

// EstimateExposure sums the upper-bound cash at risk across a match's wagers
func (s *service) EstimateExposure(ctx context.Context, matchID uuid.UUID) (*ExposureResponse, error) {
	match, err := s.getMatch(ctx, s.repo, matchID)
	if err != nil {
		return nil, err
	}

	bets, err := s.repo.GetBets(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bets: %w", err)
	}

	participants := len(match.ParticipantIDs)
	response := &ExposureResponse{
		MatchID:          matchID,
		ParticipantCount: participants,
		HoleCount:        match.HoleCount,
		Bets:             make([]BetExposure, len(bets)),
		Total:            decimal.Zero,
	}

	for i := range bets {
		estimated := EstimateBetTotal(&bets[i], participants, match.HoleCount)
		response.Bets[i] = BetExposure{
			BetID:          bets[i].ID,
			Type:           bets[i].Type,
			EstimatedTotal: estimated,
		}
		response.Total = response.Total.Add(estimated)
	}

	return response, nil
}
