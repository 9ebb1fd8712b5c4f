package matches

import (
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/internal/validator"
	"github.com/joefazee/fairway/models"
	"github.com/shopspring/decimal"
)

// CreateMatchRequest represents a request to create a match
type CreateMatchRequest struct {
	CourseName     string      `json:"course_name" binding:"required"`
	TeeTime        time.Time   `json:"tee_time" binding:"required"`
	HoleCount      int         `json:"hole_count" binding:"required"`
	CreatorID      uuid.UUID   `json:"creator_id" binding:"required"`
	ParticipantIDs []uuid.UUID `json:"participant_ids" binding:"required"`
}

func (r *CreateMatchRequest) Validate(v *validator.Validator, config *Config) bool {
	v.Check(validator.NotBlank(r.CourseName), "course_name", "course name is required")
	v.Check(validator.MaxRunes(r.CourseName, config.MaxCourseNameLen), "course_name", "course name is too long")
	v.Check(r.HoleCount == 9 || r.HoleCount == 18, "hole_count", "hole count must be 9 or 18")
	v.Check(len(r.ParticipantIDs) >= 2, "participant_ids", "at least two participants are required")
	v.Check(len(r.ParticipantIDs) <= config.MaxParticipants, "participant_ids", "too many participants")
	v.Check(r.CreatorID != uuid.Nil, "creator_id", "creator is required")
	return v.Valid()
}

// HoleSideBetsRequest records the side-bet observations for one hole.
// Winner slots are participant ids or null when unclaimed.
type HoleSideBetsRequest struct {
	HoleNumber int             `json:"hole_number" binding:"required"`
	Greenie    *uuid.UUID      `json:"greenie,omitempty"`
	Sandies    models.SandyMap `json:"sandies,omitempty"`
	Bingo      *uuid.UUID      `json:"bingo,omitempty"`
	Bango      *uuid.UUID      `json:"bango,omitempty"`
	Bongo      *uuid.UUID      `json:"bongo,omitempty"`
}

// ConfigureSideBetRequest enables or adjusts one side game on a match
type ConfigureSideBetRequest struct {
	Type    models.BetType  `json:"type" binding:"required"`
	Amount  decimal.Decimal `json:"amount" binding:"required"`
	Enabled bool            `json:"enabled"`
}

// MatchResponse represents a match in API responses
type MatchResponse struct {
	ID             uuid.UUID          `json:"id"`
	CourseName     string             `json:"course_name"`
	TeeTime        time.Time          `json:"tee_time"`
	HoleCount      int                `json:"hole_count"`
	Status         models.MatchStatus `json:"status"`
	ParticipantIDs []uuid.UUID        `json:"participant_ids"`
	CreatorID      uuid.UUID          `json:"creator_id"`
	Version        int                `json:"version"`
	CreatedAt      time.Time          `json:"created_at"`
	StartedAt      *time.Time         `json:"started_at,omitempty"`
	CompletedAt    *time.Time         `json:"completed_at,omitempty"`
}

func toMatchResponse(match *models.Match) MatchResponse {
	return MatchResponse{
		ID:             match.ID,
		CourseName:     match.CourseName,
		TeeTime:        match.TeeTime,
		HoleCount:      match.HoleCount,
		Status:         match.Status,
		ParticipantIDs: match.ParticipantIDs,
		CreatorID:      match.CreatorID,
		Version:        match.Version,
		CreatedAt:      match.CreatedAt,
		StartedAt:      match.StartedAt,
		CompletedAt:    match.CompletedAt,
	}
}
