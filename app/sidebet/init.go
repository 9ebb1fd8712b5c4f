package sidebet

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Dependencies represent the dependencies needed for the side bet module
type Dependencies struct {
	DB     *gorm.DB
	Config *Config
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}

	repo := NewRepository(deps.DB)
	points := NewPointEngine()
	settlement := NewSettlementEngine(points)

	srvs := NewService(deps.DB, repo, deps.Config, points, settlement)
	handler := NewHandler(srvs)

	group := r.Group("/matches/:id/sidebets")
	group.GET("/settlement", handler.PreviewSettlement)
	group.POST("/settlement", handler.CommitSettlement)
	group.GET("/bbb", handler.GetBBBStandings)
}
