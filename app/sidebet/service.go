package sidebet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"gorm.io/gorm"
)

type service struct {
	db         *gorm.DB
	repo       Repository
	config     *Config
	points     PointEngine
	settlement SettlementEngine
}

func NewService(db *gorm.DB, repo Repository, config *Config, points PointEngine, settlement SettlementEngine) Service {
	return &service{
		db:         db,
		repo:       repo,
		config:     config,
		points:     points,
		settlement: settlement,
	}
}

func (s *service) loadMatchState(ctx context.Context, repo Repository, matchID uuid.UUID) (*models.Match, []models.SideBetConfig, []models.HoleSideBets, error) {
	match, err := repo.GetMatch(ctx, matchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, models.ErrRecordNotFound
		}
		return nil, nil, nil, fmt.Errorf("failed to get match: %w", err)
	}

	configs, err := repo.GetSideBetConfigs(ctx, matchID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get side bet configs: %w", err)
	}

	holes, err := repo.GetHoleSideBets(ctx, matchID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to get hole side bets: %w", err)
	}

	return match, configs, holes, nil
}

func (s *service) buildSettlement(match *models.Match, configs []models.SideBetConfig, holes []models.HoleSideBets) *SettlementResponse {
	participants := []uuid.UUID(match.ParticipantIDs)

	payouts := s.settlement.SettleAll(holes, configs, participants)
	transfers := s.settlement.AllTransfers(holes, configs, participants)
	breakdown := s.settlement.DetailedSettlement(holes, configs, participants)

	return &SettlementResponse{
		MatchID:   match.ID,
		Payouts:   toPlayerPayouts(payouts, participants),
		Transfers: toTransferResponses(transfers),
		Breakdown: breakdown,
		ZeroSum:   s.settlement.ValidateZeroSum(payouts),
		CreatedAt: time.Now(),
	}
}

// PreviewSettlement computes the settlement without writing anything
func (s *service) PreviewSettlement(ctx context.Context, matchID uuid.UUID) (*SettlementResponse, error) {
	match, configs, holes, err := s.loadMatchState(ctx, s.repo, matchID)
	if err != nil {
		return nil, err
	}
	return s.buildSettlement(match, configs, holes), nil
}

// CommitSettlement computes the settlement for a completed match and writes
// the resulting ledger entries atomically. A match settles its side bets at
// most once.
func (s *service) CommitSettlement(ctx context.Context, matchID uuid.UUID) (*SettlementResponse, error) {
	var response *SettlementResponse

	err := s.db.Transaction(func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)

		match, configs, holes, err := s.loadMatchState(ctx, txRepo, matchID)
		if err != nil {
			return err
		}

		if !match.IsCompleted() {
			return models.ErrMatchNotCompleted
		}

		enabled := EnabledSideBets(configs)
		if len(enabled) == 0 {
			return models.ErrNoSideBetsEnabled
		}

		sideBetTypes := make([]models.BetType, len(enabled))
		for i := range enabled {
			sideBetTypes[i] = enabled[i].Type
		}
		settled, err := txRepo.HasLedgerEntries(ctx, matchID, sideBetTypes)
		if err != nil {
			return fmt.Errorf("failed to check existing entries: %w", err)
		}
		if settled {
			return models.ErrMatchAlreadySettled
		}

		response = s.buildSettlement(match, configs, holes)
		if !response.ZeroSum {
			return models.ErrSettlementNotZeroSum
		}

		transfers := s.settlement.AllTransfers(holes, configs, []uuid.UUID(match.ParticipantIDs))
		if len(transfers) == 0 {
			response.Committed = true
			return nil
		}

		entries := make([]models.LedgerEntry, len(transfers))
		for i, t := range transfers {
			entries[i] = models.LedgerEntry{
				MatchID:    matchID,
				FromUserID: t.From,
				ToUserID:   t.To,
				Amount:     t.Amount,
				BetType:    t.BetType,
			}
		}
		if err := txRepo.CreateLedgerEntries(ctx, entries); err != nil {
			return fmt.Errorf("failed to create ledger entries: %w", err)
		}

		response.Committed = true
		return nil
	})
	if err != nil {
		return nil, err
	}

	return response, nil
}

// GetBBBStandings returns the live bingo-bango-bongo scoreboard
func (s *service) GetBBBStandings(ctx context.Context, matchID uuid.UUID) (*BBBStandingsResponse, error) {
	match, _, holes, err := s.loadMatchState(ctx, s.repo, matchID)
	if err != nil {
		return nil, err
	}

	results := BBBResultsFromHoles(holes)
	points := s.points.CalculateBBBPoints(results, match.ParticipantIDs)
	leader := s.points.BBBLeader(points)

	holesPlayed := len(holes)
	remaining := s.points.RemainingPoints(holesPlayed, match.HoleCount)

	leaderPoints := 0
	for _, p := range points {
		if p.TotalPoints > leaderPoints {
			leaderPoints = p.TotalPoints
		}
	}

	holesRemaining := match.HoleCount - holesPlayed
	standings := make([]BBBStandingResponse, len(points))
	for i, p := range points {
		standings[i] = BBBStandingResponse{
			BBBPlayerPoints: p,
			CanStillWin:     s.points.CanStillWin(p.TotalPoints, leaderPoints, holesRemaining),
		}
	}

	return &BBBStandingsResponse{
		MatchID:            matchID,
		Standings:          standings,
		Leader:             leader,
		TotalPointsAwarded: s.points.TotalPointsAwarded(results),
		MaxPossiblePoints:  s.points.MaxPossiblePoints(match.HoleCount),
		RemainingPoints:    remaining,
	}, nil
}
