package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BetType discriminates every game that can put money on a match,
// wagers and side bets alike. Ledger entries carry the type of the
// game that produced them.
type BetType string

const (
	BetTypeNassau     BetType = "nassau"
	BetTypeSkins      BetType = "skins"
	BetTypeMatchPlay  BetType = "match_play"
	BetTypeStrokePlay BetType = "stroke_play"

	BetTypeGreenie BetType = "greenie"
	BetTypeSandy   BetType = "sandy"
	BetTypeBBB     BetType = "bingo_bango_bongo"
)

// Valid reports whether the type is one of the known bet types
func (t BetType) Valid() bool {
	switch t {
	case BetTypeNassau, BetTypeSkins, BetTypeMatchPlay, BetTypeStrokePlay,
		BetTypeGreenie, BetTypeSandy, BetTypeBBB:
		return true
	}
	return false
}

// IsWager reports whether the type is a match-level wager
func (t BetType) IsWager() bool {
	switch t {
	case BetTypeNassau, BetTypeSkins, BetTypeMatchPlay, BetTypeStrokePlay:
		return true
	}
	return false
}

// IsSideBet reports whether the type is a per-hole side bet
func (t BetType) IsSideBet() bool {
	switch t {
	case BetTypeGreenie, BetTypeSandy, BetTypeBBB:
		return true
	}
	return false
}

// ScoringMode selects gross or net scoring for a wager
type ScoringMode string

const (
	ScoringModeGross ScoringMode = "gross"
	ScoringModeNet   ScoringMode = "net"
)

// NassauConfig configures a three-part Nassau wager
type NassauConfig struct {
	FrontAmount   decimal.Decimal `json:"front_amount"`
	BackAmount    decimal.Decimal `json:"back_amount"`
	OverallAmount decimal.Decimal `json:"overall_amount"`
	AutoPress     bool            `json:"auto_press"`
	PressTrigger  int             `json:"press_trigger"`
	MaxPresses    int             `json:"max_presses"`
}

// Value implements driver.Valuer interface
func (c *NassauConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner interface
func (c *NassauConfig) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return nil
}

// Validate performs validation on the Nassau configuration
func (c *NassauConfig) Validate() error {
	if c.FrontAmount.LessThanOrEqual(decimal.Zero) ||
		c.BackAmount.LessThanOrEqual(decimal.Zero) ||
		c.OverallAmount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBetAmount
	}
	if c.PressTrigger < 1 || c.PressTrigger > 9 {
		return ErrInvalidPressTrigger
	}
	if c.MaxPresses < 0 {
		return ErrInvalidMaxPresses
	}
	return nil
}

// SkinsConfig configures a per-hole skins wager
type SkinsConfig struct {
	SkinValue  decimal.Decimal `json:"skin_value"`
	Carryover  bool            `json:"carryover"`
	Validation bool            `json:"validation"`
}

// Value implements driver.Valuer interface
func (c *SkinsConfig) Value() (driver.Value, error) {
	return json.Marshal(c)
}

// Scan implements sql.Scanner interface
func (c *SkinsConfig) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, c)
	case string:
		return json.Unmarshal([]byte(v), c)
	}
	return nil
}

// Validate performs validation on the skins configuration
func (c *SkinsConfig) Validate() error {
	if c.SkinValue.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidBetAmount
	}
	return nil
}

// Bet represents a wager configuration attached to a match. Exactly one of
// NassauConfig/SkinsConfig is populated depending on the type.
type Bet struct {
	ID           uuid.UUID     `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	MatchID      uuid.UUID     `gorm:"type:uuid;not null;index:idx_bets_match" json:"match_id"`
	Type         BetType       `gorm:"type:varchar(30);not null" json:"type"`
	ScoringMode  ScoringMode   `gorm:"type:varchar(10);default:'gross'" json:"scoring_mode"`
	NassauConfig *NassauConfig `gorm:"type:jsonb" json:"nassau_config,omitempty"`
	SkinsConfig  *SkinsConfig  `gorm:"type:jsonb" json:"skins_config,omitempty"`
	CreatedAt    time.Time     `gorm:"autoCreateTime" json:"created_at"`

	// Associations
	Match *Match `gorm:"foreignKey:MatchID" json:"match,omitempty"`
}

// TableName specifies the table name for Bet model
func (*Bet) TableName() string {
	return "bets"
}

// BeforeCreate sets up the model before creation
func (b *Bet) BeforeCreate(_ *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// Validate performs validation on the bet model
func (b *Bet) Validate() error {
	if b.MatchID == uuid.Nil {
		return ErrInvalidMatchID
	}
	if !b.Type.IsWager() {
		return ErrInvalidBetType
	}
	if b.ScoringMode != ScoringModeGross && b.ScoringMode != ScoringModeNet {
		return ErrInvalidScoringMode
	}
	switch b.Type {
	case BetTypeNassau:
		if b.NassauConfig == nil {
			return ErrMissingBetConfig
		}
		if b.SkinsConfig != nil {
			return ErrConflictingBetConfig
		}
		return b.NassauConfig.Validate()
	case BetTypeSkins:
		if b.SkinsConfig == nil {
			return ErrMissingBetConfig
		}
		if b.NassauConfig != nil {
			return ErrConflictingBetConfig
		}
		return b.SkinsConfig.Validate()
	default:
		if b.NassauConfig != nil || b.SkinsConfig != nil {
			return ErrConflictingBetConfig
		}
	}
	return nil
}
