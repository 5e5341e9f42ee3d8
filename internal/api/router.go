// Package api wires the HTTP surface of the timeline backend.
package api

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Josh-Abbott/timeline-schedule-go/internal/config"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/handler"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/middleware"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/repository"
	"github.com/Josh-Abbott/timeline-schedule-go/internal/service"
)

// SetupRouter builds the gin engine with all routes and middleware.
func SetupRouter(cfg *config.Config, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.RateLimit(300, time.Minute))

	// CORS
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Timeline Schedule API is running",
		})
	})

	segmentRepo := repository.NewSegmentRepository(db)
	visitRepo := repository.NewVisitRepository(db)

	segmentHandler := handler.NewSegmentHandler(segmentRepo)
	visitHandler := handler.NewVisitHandler(visitRepo, cfg.VisitConfidence)
	scheduleHandler := handler.NewScheduleHandler(service.NewScheduleService(visitRepo))
	ingestHandler := handler.NewIngestHandler(service.NewIngestService(db, segmentRepo, visitRepo), cfg)

	api := r.Group("/api/v1")
	{
		api.GET("/segments", segmentHandler.List)

		visits := api.Group("/visits")
		{
			visits.GET("", visitHandler.List)
			visits.GET("/places", visitHandler.Places)
		}

		api.GET("/schedule/weekly", scheduleHandler.Weekly)
		api.POST("/ingest", ingestHandler.Run)
	}

	return r
}
