package main

import (
	"github.com/edulearn/platform/internal/ai"
	"github.com/edulearn/platform/internal/auth"
	"github.com/edulearn/platform/internal/health"
	httpHandler "github.com/edulearn/platform/internal/http"
	"github.com/edulearn/platform/internal/speech"
	"github.com/edulearn/platform/internal/video"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for our application
func SetupRoutes(router *gin.Engine, app *App) {
	router.Use(httpHandler.CORSMiddleware())
	router.Use(httpHandler.RequestIDMiddleware())
	router.Use(httpHandler.RequestLoggerMiddleware(app.logger))
	router.Use(httpHandler.RecoveryMiddleware(app.responseHandler, app.logger))

	healthHandler := health.NewHandler(app.db, app.cache, app.responseHandler)
	router.GET("/health", healthHandler.HandleHealthCheck)

	videoHandler := video.NewVideoHandler(app.videoApp)
	aiHandler := ai.NewHandler(app.aiOptimizer, app.aiClient, app.responseHandler, app.logger)
	speechHandler := speech.NewHandler(app.speechClient, app.objectStore, app.responseHandler, app.logger)

	requireAuth := auth.Middleware(app.tokenService, app.responseHandler, app.logger)
	requireUploader := auth.RequireUploadCapability(app.responseHandler)

	v1 := router.Group("/api/v1")
	{
		videos := v1.Group("/videos")
		{
			videos.GET("", videoHandler.HandleList)
			videos.GET("/:id", videoHandler.HandleGet)
			videos.POST("/:id/view", videoHandler.HandleView)
			videos.POST("", requireAuth, requireUploader, videoHandler.HandleUpload)
			videos.PATCH("/:id", requireAuth, videoHandler.HandleUpdate)
			videos.GET("/progress/:attemptId", requireAuth, videoHandler.HandleProgress)
			videos.POST("/optimize", requireAuth, requireUploader, aiHandler.HandleOptimize)
		}

		aiGroup := v1.Group("/ai", requireAuth)
		{
			aiGroup.POST("/chat", aiHandler.HandleChat)
		}

		speechGroup := v1.Group("/speech", requireAuth)
		{
			speechGroup.GET("/voices", speechHandler.HandleVoices)
			speechGroup.POST("/synthesize", speechHandler.HandleSynthesize)
		}
	}
}
