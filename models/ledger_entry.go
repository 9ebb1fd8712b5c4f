package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// LedgerEntry represents a directed cash transfer between two participants
// of a match. Entries are immutable once created; only the settlement flag
// may change afterwards.
type LedgerEntry struct {
	ID         uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MatchID    uuid.UUID       `gorm:"type:uuid;not null;index:idx_ledger_match" json:"match_id"`
	BetID      *uuid.UUID      `gorm:"type:uuid" json:"bet_id"`
	FromUserID uuid.UUID       `gorm:"type:uuid;not null;index:idx_ledger_from" json:"from_user_id"`
	ToUserID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_ledger_to" json:"to_user_id"`
	Amount     decimal.Decimal `gorm:"type:decimal(20,2);not null;check:amount > 0" json:"amount"`
	BetType    BetType         `gorm:"type:varchar(30);not null" json:"bet_type"`
	Settled    bool            `gorm:"not null;default:false" json:"settled"`
	SettledAt  *time.Time      `gorm:"type:timestamptz" json:"settled_at"`
	CreatedAt  time.Time       `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Match *Match `gorm:"foreignKey:MatchID" json:"match,omitempty"`
}

// TableName specifies the table name for LedgerEntry model
func (*LedgerEntry) TableName() string {
	return "ledger_entries"
}

// BeforeCreate sets up the model before creation
func (e *LedgerEntry) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// NetFor returns the signed effect of this entry on userID: positive if the
// user is paid, negative if the user pays, zero if the entry does not touch
// the user at all.
func (e *LedgerEntry) NetFor(userID uuid.UUID) decimal.Decimal {
	switch userID {
	case e.ToUserID:
		return e.Amount
	case e.FromUserID:
		return e.Amount.Neg()
	default:
		return decimal.Zero
	}
}

// IsBetween reports whether the entry is strictly between the two users,
// in either direction.
func (e *LedgerEntry) IsBetween(a, b uuid.UUID) bool {
	return (e.FromUserID == a && e.ToUserID == b) ||
		(e.FromUserID == b && e.ToUserID == a)
}

// MarkSettled flags the entry as settled up offline
func (e *LedgerEntry) MarkSettled() error {
	if e.Settled {
		return ErrEntryAlreadySettled
	}
	now := time.Now()
	e.Settled = true
	e.SettledAt = &now
	return nil
}

// Validate performs validation on the ledger entry model
func (e *LedgerEntry) Validate() error {
	if e.MatchID == uuid.Nil {
		return ErrInvalidMatchID
	}
	if e.FromUserID == uuid.Nil || e.ToUserID == uuid.Nil {
		return ErrInvalidUserID
	}
	if e.FromUserID == e.ToUserID {
		return ErrSelfTransfer
	}
	if e.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidLedgerAmount
	}
	if !e.BetType.Valid() {
		return ErrInvalidBetType
	}
	return nil
}
