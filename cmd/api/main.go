package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/joefazee/fairway/app"
	"github.com/joefazee/fairway/app/analytics"
	"github.com/joefazee/fairway/app/api"
	"github.com/joefazee/fairway/app/database"
	"github.com/joefazee/fairway/app/matches"
	"github.com/joefazee/fairway/app/sidebet"
	"github.com/joefazee/fairway/app/wager"
	"github.com/joefazee/fairway/internal/cache"
	"github.com/joefazee/fairway/internal/deps"
	"github.com/joefazee/fairway/internal/logger"
	"github.com/joefazee/fairway/internal/router"
	"github.com/joefazee/fairway/internal/sanitizer"
)

// @title Fairway API
// @version 1.0
// @description Golf match wagering, side bet settlement, and player analytics.

// @host localhost:8080
// @BasePath /
// @schemes http https
func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	zeroLogger := logger.NewZeroLogger(os.Stdout, logger.LevelInfo, logger.Fields{
		"service":     "fairway",
		"environment": cfg.Env,
	})

	wrappedCache := newCache[analytics.GolfWrapped](cfg)
	statsCache := newCache[analytics.UserStats](cfg)
	stripper := sanitizer.NewHTMLStripper()
	container := deps.NewContainer(db, stripper, zeroLogger)

	r := gin.Default()
	r.Use(api.CorsMiddleware())
	r.GET("/api/v1/healthz", api.HealthCheck)

	mounter := router.NewMounter(container)
	mounter.Public(r).
		Mount(func(g *gin.RouterGroup, c *deps.Container) {
			matches.Init(g, matches.Dependencies{DB: c.DB, Sanitizer: c.Sanitizer})
		}).
		Mount(func(g *gin.RouterGroup, c *deps.Container) {
			wager.Init(g, wager.Dependencies{DB: c.DB})
		}).
		Mount(func(g *gin.RouterGroup, c *deps.Container) {
			sidebet.Init(g, sidebet.Dependencies{DB: c.DB})
		}).
		Mount(func(g *gin.RouterGroup, c *deps.Container) {
			analytics.Init(g, analytics.Dependencies{
				DB:           c.DB,
				Logger:       c.Logger,
				WrappedCache: wrappedCache,
				StatsCache:   statsCache,
			})
		})

	zeroLogger.Info("starting fairway API server", logger.Fields{
		"host": cfg.AppHost,
		"port": cfg.AppPort,
	})
	if err := r.Run(fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort)); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// newCache picks the cache backend from config, memory unless redis is asked for.
func newCache[V any](cfg *app.Config) cache.Cache[V] {
	if cfg.CacheBackend == cache.RedisBackend {
		return cache.NewCache[V](cache.RedisBackend, &cache.RedisOptions{Addr: cfg.RedisAddr})
	}
	return cache.NewCache[V](cache.MemoryBackend)
}
