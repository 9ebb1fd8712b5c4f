package sidebet

import (
	"context"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PayoutMap is the net cash effect of a settlement keyed by participant id.
// Positive means the participant is owed money, negative means they owe.
type PayoutMap map[uuid.UUID]decimal.Decimal

// Transfer is one directed pairwise payment produced by a settlement
type Transfer struct {
	From    uuid.UUID
	To      uuid.UUID
	BetType models.BetType
	Amount  decimal.Decimal
}

// BBBHoleResult is the per-hole bingo-bango-bongo observation. Each slot is
// a participant id or nil when unclaimed.
type BBBHoleResult struct {
	HoleNumber int        `json:"hole_number"`
	Bingo      *uuid.UUID `json:"bingo"`
	Bango      *uuid.UUID `json:"bango"`
	Bongo      *uuid.UUID `json:"bongo"`
}

// BBBPlayerPoints is the derived per-player point breakdown
type BBBPlayerPoints struct {
	PlayerID    uuid.UUID `json:"player_id"`
	BingoCount  int       `json:"bingo_count"`
	BangoCount  int       `json:"bango_count"`
	BongoCount  int       `json:"bongo_count"`
	TotalPoints int       `json:"total_points"`
}

// BreakdownLine is one player's gross result for a single side bet type:
// wins counts holes or points won, amount is the gross payout received from
// that type alone, not the net zero-sum contribution.
type BreakdownLine struct {
	PlayerID uuid.UUID       `json:"player_id"`
	Wins     int             `json:"wins"`
	Amount   decimal.Decimal `json:"amount"`
}

// TypeBreakdown groups breakdown lines per enabled side bet type
type TypeBreakdown struct {
	Type  models.BetType  `json:"type"`
	Lines []BreakdownLine `json:"lines"`
}

// PointEngine turns recorded bingo-bango-bongo observations into point
// totals and pairwise settlements.
type PointEngine interface {
	CalculateBBBPoints(results []BBBHoleResult, participantIDs []uuid.UUID) []BBBPlayerPoints
	PlayerBBBPoints(results []BBBHoleResult, playerID uuid.UUID) BBBPlayerPoints
	TotalPointsAwarded(results []BBBHoleResult) int
	MaxPossiblePoints(holes int) int
	RemainingPoints(holesPlayed, totalHoles int) int
	CanStillWin(playerPoints, leaderPoints, holesRemaining int) bool
	BBBLeader(points []BBBPlayerPoints) *BBBPlayerPoints
	SettleBBB(results []BBBHoleResult, participantIDs []uuid.UUID, pointAmount decimal.Decimal) PayoutMap
	BBBTransfers(results []BBBHoleResult, participantIDs []uuid.UUID, pointAmount decimal.Decimal) []Transfer
}

// SettlementEngine turns per-hole side bet observations into zero-sum cash
// transfers and combines every enabled side bet type into one payout map.
type SettlementEngine interface {
	SettleGreenies(holes []models.HoleSideBets, participantIDs []uuid.UUID, amount decimal.Decimal) PayoutMap
	SettleSandies(holes []models.HoleSideBets, participantIDs []uuid.UUID, amount decimal.Decimal) PayoutMap
	SettleAll(holes []models.HoleSideBets, configs []models.SideBetConfig, participantIDs []uuid.UUID) PayoutMap
	AllTransfers(holes []models.HoleSideBets, configs []models.SideBetConfig, participantIDs []uuid.UUID) []Transfer
	DetailedSettlement(holes []models.HoleSideBets, configs []models.SideBetConfig, participantIDs []uuid.UUID) []TypeBreakdown
	ValidateZeroSum(payouts PayoutMap) bool
}

// Repository defines the data access the settlement service needs
type Repository interface {
	WithTx(tx *gorm.DB) Repository

	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	GetSideBetConfigs(ctx context.Context, matchID uuid.UUID) ([]models.SideBetConfig, error)
	GetHoleSideBets(ctx context.Context, matchID uuid.UUID) ([]models.HoleSideBets, error)
	HasLedgerEntries(ctx context.Context, matchID uuid.UUID, types []models.BetType) (bool, error)
	CreateLedgerEntries(ctx context.Context, entries []models.LedgerEntry) error
}

// Service defines the settlement business logic
type Service interface {
	PreviewSettlement(ctx context.Context, matchID uuid.UUID) (*SettlementResponse, error)
	CommitSettlement(ctx context.Context, matchID uuid.UUID) (*SettlementResponse, error)
	GetBBBStandings(ctx context.Context, matchID uuid.UUID) (*BBBStandingsResponse, error)
}
