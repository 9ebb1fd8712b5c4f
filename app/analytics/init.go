package analytics

import (
	"github.com/gin-gonic/gin"
	"github.com/joefazee/fairway/internal/cache"
	"github.com/joefazee/fairway/internal/logger"
	"gorm.io/gorm"
)

// Dependencies represent the dependencies needed for the analytics module
type Dependencies struct {
	DB           *gorm.DB
	Config       *Config
	WrappedCache cache.Cache[GolfWrapped]
	StatsCache   cache.Cache[UserStats]
	Logger       logger.Logger
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}
	if deps.WrappedCache == nil {
		deps.WrappedCache = cache.NewMemoryCache[GolfWrapped]()
	}
	if deps.StatsCache == nil {
		deps.StatsCache = cache.NewMemoryCache[UserStats]()
	}

	repo := NewRepository(deps.DB)
	srvs := NewService(repo, deps.Config, deps.WrappedCache, deps.StatsCache, deps.Logger)
	handler := NewHandler(srvs)

	group := r.Group("/users/:user_id")
	group.GET("/stats", handler.GetUserStats)
	group.GET("/head-to-head", handler.GetHeadToHead)
	group.GET("/streaks", handler.GetStreaks)
	group.GET("/wrapped", handler.GetWrapped)
}
