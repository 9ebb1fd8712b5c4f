package wager

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joefazee/fairway/app/api"
	"github.com/joefazee/fairway/models"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) matchID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid match ID format")
		return uuid.Nil, false
	}
	return id, true
}

// CreateBet godoc
// @Summary Attach a wager to a match
// @Description Create a Nassau, skins, match play, or stroke play wager on a match
// @Tags wagers
// @Accept json
// @Produce json
// @Param id path string true "Match ID"
// @Param request body CreateBetRequest true "Bet details"
// @Success 201 {object} api.Response{data=BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/bets [post]
func (h *Handler) CreateBet(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	var req CreateBetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.BadRequestResponse(c, "Invalid request payload")
		return
	}

	bet, err := h.service.CreateBet(c.Request.Context(), matchID, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Match")
		case errors.Is(err, models.ErrDuplicateBet):
			api.ConflictResponse(c, err.Error())
		case errors.Is(err, models.ErrUnknownPreset),
			errors.Is(err, models.ErrInvalidBetAmount),
			errors.Is(err, models.ErrBetAmountTooLarge),
			errors.Is(err, models.ErrInvalidBetType),
			errors.Is(err, models.ErrInvalidPressTrigger),
			errors.Is(err, models.ErrInvalidMaxPresses),
			errors.Is(err, models.ErrInvalidScoringMode),
			errors.Is(err, models.ErrMatchCompleted),
			errors.Is(err, models.ErrInvalidMatchStatus):
			api.BadRequestResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to create bet")
		}
		return
	}

	api.CreatedResponse(c, "Bet created", bet)
}

// ListBets godoc
// @Summary List match wagers
// @Description List every wager attached to a match
// @Tags wagers
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=[]BetResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/bets [get]
func (h *Handler) ListBets(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	bets, err := h.service.ListBets(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Match")
			return
		}
		api.InternalErrorResponse(c, "Failed to list bets")
		return
	}

	api.SuccessResponse(c, 200, "Bets retrieved", bets)
}

// EstimateExposure godoc
// @Summary Estimate wager exposure
// @Description Upper-bound cash at risk across all of a match's wagers
// @Tags wagers
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=ExposureResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/bets/exposure [get]
func (h *Handler) EstimateExposure(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	exposure, err := h.service.EstimateExposure(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Match")
			return
		}
		api.InternalErrorResponse(c, "Failed to estimate exposure")
		return
	}

	api.SuccessResponse(c, 200, "Exposure estimated", exposure)
}
