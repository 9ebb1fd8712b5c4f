package wager

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies represent the dependencies needed for the wager module
type Dependencies struct {
	DB     *gorm.DB
	Config *Config
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}

	repo := NewRepository(deps.DB)
	srvs := NewService(deps.DB, repo, deps.Config)
	handler := NewHandler(srvs)

	group := r.Group("/matches/:id/bets")
	group.POST("", handler.CreateBet)
	group.GET("", handler.ListBets)
	group.GET("/exposure", handler.EstimateExposure)
}
