package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MatchStatus represents the lifecycle status of a match
type MatchStatus string

const (
	MatchStatusPending   MatchStatus = "pending"
	MatchStatusActive    MatchStatus = "active"
	MatchStatusCompleted MatchStatus = "completed"
	MatchStatusCancelled MatchStatus = "cancelled"
)

// UUIDList is an ordered list of user IDs stored as jsonb
type UUIDList []uuid.UUID

// Value implements driver.Valuer interface
func (l UUIDList) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface
func (l *UUIDList) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return nil
}

// Contains reports whether id is in the list
func (l UUIDList) Contains(id uuid.UUID) bool {
	for _, v := range l {
		if v == id {
			return true
		}
	}
	return false
}

// Without returns a copy of the list with id removed
func (l UUIDList) Without(id uuid.UUID) UUIDList {
	out := make(UUIDList, 0, len(l))
	for _, v := range l {
		if v != id {
			out = append(out, v)
		}
	}
	return out
}

// Match represents one round of golf played by a group of participants.
// A completed match is immutable; only the status/completed-at transition
// moves it there.
type Match struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	CourseName     string      `gorm:"type:varchar(120);not null" json:"course_name"`
	TeeTime        time.Time   `gorm:"type:timestamptz;not null" json:"tee_time"`
	HoleCount      int         `gorm:"not null" json:"hole_count"`
	Status         MatchStatus `gorm:"type:varchar(20);default:'pending';index" json:"status"`
	ParticipantIDs UUIDList    `gorm:"type:jsonb;not null" json:"participant_ids"`
	CreatorID      uuid.UUID   `gorm:"type:uuid;not null;index:idx_matches_creator" json:"creator_id"`
	Version        int         `gorm:"not null;default:1" json:"version"`
	CreatedAt      time.Time   `gorm:"autoCreateTime" json:"created_at"`
	StartedAt      *time.Time  `gorm:"type:timestamptz" json:"started_at"`
	CompletedAt    *time.Time  `gorm:"type:timestamptz" json:"completed_at"`

	// Associations
	Bets           []Bet           `gorm:"foreignKey:MatchID" json:"bets,omitempty"`
	SideBetConfigs []SideBetConfig `gorm:"foreignKey:MatchID" json:"side_bet_configs,omitempty"`
	HoleSideBets   []HoleSideBets  `gorm:"foreignKey:MatchID" json:"hole_side_bets,omitempty"`
	LedgerEntries  []LedgerEntry   `gorm:"foreignKey:MatchID" json:"-"`
}

// TableName specifies the table name for Match model
func (*Match) TableName() string {
	return "matches"
}

// BeforeCreate sets up the model before creation
func (m *Match) BeforeCreate(_ *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}

// IsCompleted reports whether the match has been completed.
// Only completed matches contribute to analytics.
func (m *Match) IsCompleted() bool {
	return m.Status == MatchStatusCompleted
}

// IsActive reports whether the match is in play
func (m *Match) IsActive() bool {
	return m.Status == MatchStatusActive
}

// HasParticipant reports whether userID is in the participant list
func (m *Match) HasParticipant(userID uuid.UUID) bool {
	return m.ParticipantIDs.Contains(userID)
}

// OpponentsOf returns every participant except userID
func (m *Match) OpponentsOf(userID uuid.UUID) UUIDList {
	return m.ParticipantIDs.Without(userID)
}

// Start transitions a pending match into play
func (m *Match) Start() error {
	if m.Status != MatchStatusPending {
		return ErrMatchNotPending
	}
	now := time.Now()
	m.Status = MatchStatusActive
	m.StartedAt = &now
	m.Version++
	return nil
}

// Complete transitions an active match to completed
func (m *Match) Complete() error {
	if m.IsCompleted() {
		return ErrMatchCompleted
	}
	if m.Status != MatchStatusActive {
		return ErrMatchNotActive
	}
	now := time.Now()
	m.Status = MatchStatusCompleted
	m.CompletedAt = &now
	m.Version++
	return nil
}

// Cancel cancels a match that never finished
func (m *Match) Cancel() error {
	if m.IsCompleted() {
		return ErrMatchImmutable
	}
	m.Status = MatchStatusCancelled
	m.Version++
	return nil
}

// Validate performs validation on the match model
func (m *Match) Validate() error {
	if m.CourseName == "" {
		return ErrInvalidCourseName
	}
	if m.HoleCount != 9 && m.HoleCount != 18 {
		return ErrInvalidHoleCount
	}
	switch m.Status {
	case MatchStatusPending, MatchStatusActive, MatchStatusCompleted, MatchStatusCancelled:
	default:
		return ErrInvalidMatchStatus
	}
	if m.CreatorID == uuid.Nil {
		return ErrInvalidUserID
	}
	if len(m.ParticipantIDs) < 2 {
		return ErrInvalidParticipants
	}
	seen := make(map[uuid.UUID]struct{}, len(m.ParticipantIDs))
	for _, id := range m.ParticipantIDs {
		if id == uuid.Nil {
			return ErrInvalidUserID
		}
		if _, ok := seen[id]; ok {
			return ErrDuplicateParticipant
		}
		seen[id] = struct{}{}
	}
	return nil
}
