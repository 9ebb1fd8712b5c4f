package analytics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/joefazee/fairway/app/api"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) userID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		api.BadRequestResponse(c, "Invalid user ID format")
		return uuid.Nil, false
	}
	return id, true
}

// GetUserStats godoc
// @Summary Lifetime stats
// @Description Win rate, net lifetime, biggest swings, favorite game, and streaks for a user
// @Tags analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} api.Response{data=UserStats}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users/{user_id}/stats [get]
func (h *Handler) GetUserStats(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	stats, err := h.service.GetUserStats(c.Request.Context(), userID)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to compute stats")
		return
	}

	api.SuccessResponse(c, 200, "Stats retrieved", stats)
}

// GetHeadToHead godoc
// @Summary Head-to-head records
// @Description Per-opponent win/loss/push records ranked by matches played
// @Tags analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} api.Response{data=HeadToHeadSummary}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users/{user_id}/head-to-head [get]
func (h *Handler) GetHeadToHead(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	summary, err := h.service.GetHeadToHead(c.Request.Context(), userID)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to compute head-to-head records")
		return
	}

	api.SuccessResponse(c, 200, "Head-to-head retrieved", summary)
}

// GetStreaks godoc
// @Summary Win and loss streaks
// @Description Current and longest streaks with a display label
// @Tags analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Success 200 {object} api.Response{data=StreakResponse}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users/{user_id}/streaks [get]
func (h *Handler) GetStreaks(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	streaks, err := h.service.GetStreaks(c.Request.Context(), userID)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to compute streaks")
		return
	}

	api.SuccessResponse(c, 200, "Streaks retrieved", streaks)
}

// GetWrapped godoc
// @Summary Year-end wrapped summary
// @Description Shareable year-end summary; year defaults to the current year
// @Tags analytics
// @Produce json
// @Param user_id path string true "User ID"
// @Param year query int false "Calendar year"
// @Success 200 {object} api.Response{data=GolfWrapped}
// @Failure 400 {object} api.Response{error=api.ErrorInfo}
// @Router /api/v1/users/{user_id}/wrapped [get]
func (h *Handler) GetWrapped(c *gin.Context) {
	userID, ok := h.userID(c)
	if !ok {
		return
	}

	year := time.Now().Year()
	if raw := c.Query("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1900 || parsed > time.Now().Year() {
			api.BadRequestResponse(c, "Invalid year")
			return
		}
		year = parsed
	}

	wrapped, err := h.service.GetWrapped(c.Request.Context(), userID, year)
	if err != nil {
		api.InternalErrorResponse(c, "Failed to generate wrapped summary")
		return
	}

	api.SuccessResponse(c, 200, "Wrapped generated", wrapped)
}
