package matches

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/fairway/internal/sanitizer"
	"gorm.io/gorm"
)

// Dependencies represent the dependencies needed for the matches module
type Dependencies struct {
	DB        *gorm.DB
	Config    *Config
	Sanitizer sanitizer.HTMLStripperer
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}
	if deps.Sanitizer == nil {
		deps.Sanitizer = sanitizer.NewHTMLStripper()
	}

	repo := NewRepository(deps.DB)
	srvs := NewService(deps.DB, repo, deps.Config, deps.Sanitizer)
	handler := NewHandler(srvs, deps.Config)

	r.POST("/matches", handler.CreateMatch)
	r.GET("/matches", handler.ListMatches)

	group := r.Group("/matches/:id")
	group.GET("", handler.GetMatch)
	group.POST("/start", handler.StartMatch)
	group.POST("/complete", handler.CompleteMatch)
	group.POST("/cancel", handler.CancelMatch)
	group.PUT("/holes", handler.RecordHoleSideBets)
	group.PUT("/sidebet-configs", handler.ConfigureSideBet)
	group.GET("/sidebet-configs", handler.GetSideBetConfigs)
}
