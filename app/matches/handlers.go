package matches

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joefazee/fairway/app/api"
	"github.com/joefazee/fairway/internal/validator"
	"github.com/joefazee/fairway/models"
)

type Handler struct {
	service Service
	config  *Config
}

func NewHandler(service Service, config *Config) *Handler {
	return &Handler{service: service, config: config}
}

func (h *Handler) matchID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid match ID format")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) respondMatchError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, models.ErrRecordNotFound):
		api.NotFoundResponse(c, "Match")
	case errors.Is(err, models.ErrMatchNotPending),
		errors.Is(err, models.ErrMatchNotActive),
		errors.Is(err, models.ErrInvalidHoleNumber),
		errors.Is(err, models.ErrInvalidSideBetType),
		errors.Is(err, models.ErrInvalidSideBetAmount),
		errors.Is(err, models.ErrInvalidUserID):
		api.BadRequestResponse(c, err.Error())
	case errors.Is(err, models.ErrMatchCompleted),
		errors.Is(err, models.ErrMatchImmutable):
		api.ConflictResponse(c, err.Error())
	default:
		api.InternalErrorResponse(c, fallback)
	}
}

// CreateMatch godoc
// @Summary Create a match
// @Description Create a pending match with its participants and default side bet configs
// @Tags matches
// @Accept json
// @Produce json
// @Param request body CreateMatchRequest true "Match details"
// @Success 201 {object} api.Response{data=MatchResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches [post]
func (h *Handler) CreateMatch(c *gin.Context) {
	var req CreateMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, "Invalid request payload")
		return
	}

	v := validator.New()
	if !req.Validate(v, h.config) {
		api.ValidationErrorResponse(c, validator.NewValidationError("Validation failed", v.Errors))
		return
	}

	match, err := h.service.CreateMatch(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidCourseName),
			errors.Is(err, models.ErrInvalidHoleCount),
			errors.Is(err, models.ErrInvalidParticipants),
			errors.Is(err, models.ErrDuplicateParticipant),
			errors.Is(err, models.ErrInvalidParticipantLimit),
			errors.Is(err, models.ErrInvalidUserID):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to create match")
		}
		return
	}

	api.CreatedResponse(c, "Match created", match)
}

// GetMatch godoc
// @Summary Get a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=MatchResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id} [get]
func (h *Handler) GetMatch(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	match, err := h.service.GetMatch(c.Request.Context(), matchID)
	if err != nil {
		h.respondMatchError(c, err, "Failed to get match")
		return
	}

	api.SuccessResponse(c, 200, "Match retrieved", match)
}

// ListMatches godoc
// @Summary List a user's matches
// @Tags matches
// @Produce json
// @Param user_id query string true "User ID"
// @Success 200 {object} api.Response{data=[]MatchResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches [get]
func (h *Handler) ListMatches(c *gin.Context) {
	userID, err := uuid.Parse(c.Query("user_id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid user ID format")
		return
	}

	matches, err := h.service.ListMatches(c.Request.Context(), userID)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list matches")
		return
	}

	api.ListResponse(c, "Matches retrieved", matches, len(matches))
}

// StartMatch godoc
// @Summary Start a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=MatchResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/start [post]
func (h *Handler) StartMatch(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	match, err := h.service.StartMatch(c.Request.Context(), matchID)
	if err != nil {
		h.respondMatchError(c, err, "Failed to start match")
		return
	}

	api.UpdatedResponse(c, "Match started", match)
}

// CompleteMatch godoc
// @Summary Complete a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=MatchResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/complete [post]
func (h *Handler) CompleteMatch(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	match, err := h.service.CompleteMatch(c.Request.Context(), matchID)
	if err != nil {
		h.respondMatchError(c, err, "Failed to complete match")
		return
	}

	api.UpdatedResponse(c, "Match completed", match)
}

// CancelMatch godoc
// @Summary Cancel a match
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=MatchResponse}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/cancel [post]
func (h *Handler) CancelMatch(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	match, err := h.service.CancelMatch(c.Request.Context(), matchID)
	if err != nil {
		h.respondMatchError(c, err, "Failed to cancel match")
		return
	}

	api.UpdatedResponse(c, "Match cancelled", match)
}

// RecordHoleSideBets godoc
// @Summary Record hole side bets
// @Description Upsert the side-bet observation record for one hole
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body HoleSideBetsRequest true "Hole observations"
// @Success 200 {object} api.Response{data=models.HoleSideBets}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/holes [put]
func (h *Handler) RecordHoleSideBets(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	var req HoleSideBetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, "Invalid request payload")
		return
	}

	hole, err := h.service.RecordHoleSideBets(c.Request.Context(), matchID, &req)
	if err != nil {
		h.respondMatchError(c, err, "Failed to record hole side bets")
		return
	}

	api.UpdatedResponse(c, "Hole side bets recorded", hole)
}

// ConfigureSideBet godoc
// @Summary Configure a side bet
// @Description Enable or adjust one side game on a match
// @Tags matches
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body ConfigureSideBetRequest true "Side bet config"
// @Success 200 {object} api.Response{data=models.SideBetConfig}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/sidebet-configs [put]
func (h *Handler) ConfigureSideBet(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	var req ConfigureSideBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, "Invalid request payload")
		return
	}

	config, err := h.service.ConfigureSideBet(c.Request.Context(), matchID, &req)
	if err != nil {
		h.respondMatchError(c, err, "Failed to configure side bet")
		return
	}

	api.UpdatedResponse(c, "Side bet configured", config)
}

// GetSideBetConfigs godoc
// @Summary List side bet configs
// @Tags matches
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=[]models.SideBetConfig}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/sidebet-configs [get]
func (h *Handler) GetSideBetConfigs(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	configs, err := h.service.GetSideBetConfigs(c.Request.Context(), matchID)
	if err != nil {
		h.respondMatchError(c, err, "Failed to get side bet configs")
		return
	}

	api.ListResponse(c, "Side bet configs retrieved", configs, len(configs))
}
