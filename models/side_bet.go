package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// SideBetConfig enables one per-hole side game on a match. For
// bingo-bango-bongo the amount is per point; for greenie and sandy it is
// per hole won.
type SideBetConfig struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MatchID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_side_bet_configs_match;uniqueIndex:idx_side_bet_configs_match_type,priority:1" json:"match_id"`
	Type      BetType         `gorm:"type:varchar(30);not null;uniqueIndex:idx_side_bet_configs_match_type,priority:2" json:"type"`
	Amount    decimal.Decimal `gorm:"type:decimal(20,2);not null;check:amount > 0" json:"amount"`
	Enabled   bool            `gorm:"not null;default:false" json:"enabled"`
	CreatedAt time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for SideBetConfig model
func (*SideBetConfig) TableName() string {
	return "side_bet_configs"
}

// BeforeCreate sets up the model before creation
func (c *SideBetConfig) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the side bet configuration
func (c *SideBetConfig) Validate() error {
	if c.MatchID == uuid.Nil {
		return ErrInvalidMatchID
	}
	if !c.Type.IsSideBet() {
		return ErrInvalidSideBetType
	}
	if c.Amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidSideBetAmount
	}
	return nil
}

// SandyMap records which players made a sandy on a hole
type SandyMap map[uuid.UUID]bool

// Value implements driver.Valuer interface
func (m SandyMap) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface
func (m *SandyMap) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	}
	return nil
}

// HoleSideBets is the per-hole observation record tapped in during play.
// Each winner slot is either a participant id or nil when unclaimed.
type HoleSideBets struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MatchID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_hole_side_bets_match;uniqueIndex:idx_hole_side_bets_match_hole,priority:1" json:"match_id"`
	HoleNumber int        `gorm:"not null;uniqueIndex:idx_hole_side_bets_match_hole,priority:2" json:"hole_number"`
	Greenie    *uuid.UUID `gorm:"type:uuid" json:"greenie"`
	Sandies    SandyMap   `gorm:"type:jsonb" json:"sandies"`
	Bingo      *uuid.UUID `gorm:"type:uuid" json:"bingo"`
	Bango      *uuid.UUID `gorm:"type:uuid" json:"bango"`
	Bongo      *uuid.UUID `gorm:"type:uuid" json:"bongo"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for HoleSideBets model
func (*HoleSideBets) TableName() string {
	return "hole_side_bets"
}

// BeforeCreate sets up the model before creation
func (h *HoleSideBets) BeforeCreate(_ *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the hole observation record
func (h *HoleSideBets) Validate() error {
	if h.MatchID == uuid.Nil {
		return ErrInvalidMatchID
	}
	if h.HoleNumber < 1 || h.HoleNumber > 18 {
		return ErrInvalidHoleNumber
	}
	return nil
}
