package models

import "errors"

var (
	ErrInvalidMatchID       = errors.New("invalid match ID")
	ErrInvalidCourseName    = errors.New("invalid course name")
	ErrInvalidHoleCount     = errors.New("hole count must be 9 or 18")
	ErrInvalidMatchStatus   = errors.New("invalid match status")
	ErrInvalidParticipants  = errors.New("match requires at least two participants")
	ErrDuplicateParticipant = errors.New("duplicate participant")
	ErrMatchNotPending      = errors.New("match is not pending")
	ErrMatchNotActive       = errors.New("match is not active")
	ErrMatchCompleted       = errors.New("match is already completed")
	ErrMatchNotCompleted    = errors.New("match is not completed")
	ErrMatchImmutable       = errors.New("completed match cannot be modified")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidDisplayName = errors.New("invalid display name")

	ErrInvalidBetType       = errors.New("invalid bet type")
	ErrInvalidScoringMode   = errors.New("invalid scoring mode")
	ErrInvalidBetAmount     = errors.New("invalid bet amount")
	ErrBetAmountTooLarge    = errors.New("bet amount exceeds maximum")
	ErrInvalidPressTrigger  = errors.New("press trigger must be between 1 and 9 holes")
	ErrInvalidMaxPresses    = errors.New("max presses cannot be negative")
	ErrMissingBetConfig     = errors.New("bet type requires a matching configuration")
	ErrDuplicateBet         = errors.New("match already has a bet of this type")
	ErrConflictingBetConfig = errors.New("bet carries a configuration for a different type")

	ErrInvalidSideBetType   = errors.New("invalid side bet type")
	ErrInvalidSideBetAmount = errors.New("side bet amount must be positive")
	ErrInvalidHoleNumber    = errors.New("invalid hole number")

	ErrInvalidLedgerAmount  = errors.New("ledger amount must be positive")
	ErrSelfTransfer         = errors.New("ledger entry cannot pay a user to themselves")
	ErrEntryAlreadySettled  = errors.New("ledger entry is already settled")
	ErrUnknownPreset        = errors.New("unknown wager preset")
	ErrSettlementNotZeroSum = errors.New("settlement payouts do not sum to zero")
	ErrMatchAlreadySettled  = errors.New("match side bets already settled")
	ErrNoSideBetsEnabled    = errors.New("no side bets enabled for match")

	ErrDatabaseCredentialNotConfigured = errors.New("database credentials not configured")
	ErrInvalidCacheTTL                 = errors.New("cache TTL cannot be negative")
	ErrInvalidAmountLimits             = errors.New("invalid amount limits")
	ErrInvalidParticipantLimit         = errors.New("invalid participant limit")

	ErrInvalidUUID    = errors.New("invalid UUID")
	ErrRecordNotFound = errors.New("record not found")
)
