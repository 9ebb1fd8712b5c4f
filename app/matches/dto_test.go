package matches

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/joefazee/fairway/internal/validator"
	"github.com/stretchr/testify/assert"
)

func validCreateRequest() *CreateMatchRequest {
	return &CreateMatchRequest{
		CourseName:     "Bandon Dunes",
		TeeTime:        time.Now().UTC(),
		HoleCount:      18,
		CreatorID:      uuid.New(),
		ParticipantIDs: []uuid.UUID{uuid.New(), uuid.New()},
	}
}

func TestCreateMatchRequest_Validate(t *testing.T) {
	config := GetDefaultConfig()

	t.Run("valid request", func(t *testing.T) {
		v := validator.New()
		assert.True(t, validCreateRequest().Validate(v, config))
		assert.Empty(t, v.Errors)
	})

	t.Run("blank course name", func(t *testing.T) {
		req := validCreateRequest()
		req.CourseName = "   "
		v := validator.New()
		assert.False(t, req.Validate(v, config))
		assert.Contains(t, v.Errors, "course_name")
	})

	t.Run("bad hole count", func(t *testing.T) {
		req := validCreateRequest()
		req.HoleCount = 12
		v := validator.New()
		assert.False(t, req.Validate(v, config))
		assert.Contains(t, v.Errors, "hole_count")
	})

	t.Run("too few participants", func(t *testing.T) {
		req := validCreateRequest()
		req.ParticipantIDs = req.ParticipantIDs[:1]
		v := validator.New()
		assert.False(t, req.Validate(v, config))
		assert.Contains(t, v.Errors, "participant_ids")
	})

	t.Run("too many participants", func(t *testing.T) {
		req := validCreateRequest()
		for i := 0; i < config.MaxParticipants; i++ {
			req.ParticipantIDs = append(req.ParticipantIDs, uuid.New())
		}
		v := validator.New()
		assert.False(t, req.Validate(v, config))
		assert.Contains(t, v.Errors, "participant_ids")
	})

	t.Run("missing creator", func(t *testing.T) {
		req := validCreateRequest()
		req.CreatorID = uuid.Nil
		v := validator.New()
		assert.False(t, req.Validate(v, config))
		assert.Contains(t, v.Errors, "creator_id")
	})
}
