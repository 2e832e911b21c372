package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"skygrouper/tripapi/internal/config"
	"skygrouper/tripapi/internal/handler/middleware"
)

func SetupRouter(cfg *config.Config, logger *zap.Logger, tripHandler *TripHandler) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORS))

	// Health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/group-trip", tripHandler.CreateGroup)

		group := api.Group("/group-trip/:code")
		{
			group.GET("", tripHandler.GetGroup)
			group.POST("/preferences", tripHandler.SubmitPreferences)
			group.GET("/status", tripHandler.GetStatus)
			group.GET("/suggestions", tripHandler.ListSuggestions)
			group.POST("/votes", tripHandler.SubmitVotes)
			group.GET("/results", tripHandler.GetResults)
		}
	}

	return r
}
