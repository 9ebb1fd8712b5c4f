package sidebet

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

// PreviewSettlement godoc
// @Summary Preview side bet settlement
// @Description Compute the side bet settlement for a match without writing ledger entries
// @Tags sidebets
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=SettlementResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/sidebets/settlement [get]
func (h *Handler) PreviewSettlement(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	settlement, err := h.service.PreviewSettlement(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Match")
			return
		}
		api.InternalErrorResponse(c, "Failed to compute settlement")
		return
	}

	api.SuccessResponse(c, 200, "Settlement computed", settlement)
}

// CommitSettlement godoc
// @Summary Settle side bets
// @Description Compute the side bet settlement for a completed match and write the ledger entries
// @Tags sidebets
// @Produce json
// @Param id path string true "Match ID"
// @Success 201 {object} api.Response{data=SettlementResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Failure 409 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/sidebets/settlement [post]
func (h *Handler) CommitSettlement(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	settlement, err := h.service.CommitSettlement(c.Request.Context(), matchID)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrRecordNotFound):
			api.NotFoundResponse(c, "Match")
		case errors.Is(err, models.ErrMatchNotCompleted),
			errors.Is(err, models.ErrNoSideBetsEnabled):
			api.BadRequestResponse(c, err.Error())
		case errors.Is(err, models.ErrMatchAlreadySettled):
			api.ConflictResponse(c, err.Error())
		default:
			api.InternalErrorResponse(c, "Failed to settle side bets")
		}
		return
	}

	api.CreatedResponse(c, "Side bets settled", settlement)
}

// GetBBBStandings godoc
// @Summary Bingo-bango-bongo standings
// @Description Live point standings, leader, and elimination status for a match
// @Tags sidebets
// @Produce json
// @Param id path string true "Match ID"
// @Success 200 {object} api.Response{data=BBBStandingsResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Failure 404 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/matches/{id}/sidebets/bbb [get]
func (h *Handler) GetBBBStandings(c *gin.Context) {
	matchID, ok := h.matchID(c)
	if !ok {
		return
	}

	standings, err := h.service.GetBBBStandings(c.Request.Context(), matchID)
	if err != nil {
		if errors.Is(err, models.ErrRecordNotFound) {
			api.NotFoundResponse(c, "Match")
			return
		}
		api.InternalErrorResponse(c, "Failed to get standings")
		return
	}

	api.SuccessResponse(c, 200, "Standings retrieved", standings)
}
