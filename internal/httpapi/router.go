// Package httpapi exposes the calculator engines over a JSON HTTP API.
// Every request maps to one pure engine invocation; the handlers hold no
// mutable state beyond the read-only rule tables.
package httpapi

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kaichu/lineage-calc/internal/config"
	"github.com/kaichu/lineage-calc/internal/game/jobchange"
	"github.com/kaichu/lineage-calc/internal/game/pet"
)

// NewRouter builds the gin engine with all API routes registered.
//
// Precondition: registry, engine, and logger must be non-nil.
func NewRouter(cfg config.HTTPConfig, registry *pet.Registry, engine *jobchange.Engine, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))

	if len(cfg.AllowedOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowOrigins = cfg.AllowedOrigins
		router.Use(cors.New(corsCfg))
	}

	pets := &PetHandler{Registry: registry, Logger: logger}
	jobs := &JobChangeHandler{Engine: engine, Logger: logger}

	api := router.Group("/api")
	{
		petRoutes := api.Group("/pets")
		{
			petRoutes.GET("", pets.List)
			petRoutes.GET("/skills", pets.ListSkills)
			petRoutes.GET("/:id", pets.Get)
			petRoutes.POST("/evaluate", pets.Evaluate)
		}

		jobRoutes := api.Group("/jobchange")
		{
			jobRoutes.GET("/schedule", jobs.Schedule)
			jobRoutes.POST("/cost", jobs.Cost)
			jobRoutes.POST("/items/price", jobs.PriceItem)
		}
	}

	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}

// requestLogger logs one structured line per request.
func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}
