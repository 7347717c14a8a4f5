package main

import (
	"context"
	"fmt"
	"time"

	"github.com/edulearn/platform/internal/ai"
	"github.com/edulearn/platform/internal/auth"
	"github.com/edulearn/platform/internal/cache"
	"github.com/edulearn/platform/internal/config"
	"github.com/edulearn/platform/internal/database"
	httpHandler "github.com/edulearn/platform/internal/http"
	"github.com/edulearn/platform/internal/logger"
	"github.com/edulearn/platform/internal/media"
	"github.com/edulearn/platform/internal/speech"
	"github.com/edulearn/platform/internal/storage"
	"github.com/edulearn/platform/internal/storage/s3"
	"github.com/edulearn/platform/internal/video"
	"github.com/edulearn/platform/migrations"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// App holds all application dependencies
type App struct {
	ctx             context.Context
	Config          *config.Config
	db              *gorm.DB
	cache           cache.Service
	objectStore     storage.ObjectStore
	router          *gin.Engine
	logger          logger.Logger
	responseHandler httpHandler.ResponseHandler
	tokenService    auth.TokenService
	videoService    video.VideoService
	videoApp        *video.App
	aiClient        *ai.Client
	aiOptimizer     *ai.Optimizer
	speechClient    *speech.Client
	tempFiles       *media.TempManager
}

// NewApp creates a new application instance with all dependencies
func NewApp(ctx context.Context, cfg *config.Config, loggerService logger.Logger) (*App, error) {
	// Initialize database
	dbService := database.NewDatabaseService(&cfg.Database, loggerService)
	db, err := dbService.Connect()
	if err != nil {
		return nil, fmt.Errorf("failed to setup database: %v", err)
	}

	if err := migrations.RunMigrations(db, loggerService, "up"); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Initialize cache
	cacheService, err := cache.NewRedisService(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Redis: %v", err)
	}

	// Initialize object storage
	objectStore, err := s3.NewService(&storage.S3Config{
		Endpoint:        cfg.Storage.S3.Endpoint,
		AccessKeyID:     cfg.Storage.S3.AccessKeyID,
		SecretAccessKey: cfg.Storage.S3.SecretAccessKey,
		UseSSL:          cfg.Storage.S3.UseSSL,
		Region:          cfg.Storage.S3.Region,
		Bucket:          cfg.Storage.S3.Bucket,
	}, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize object storage: %v", err)
	}

	responseHandler := httpHandler.NewResponseHandler(loggerService)
	authConfig := &auth.Config{}
	authConfig.JWT.Secret = cfg.Auth.JWT.Secret
	authConfig.JWT.AccessTokenTTL = cfg.Auth.JWT.AccessTokenTTL
	tokenService := auth.NewJWTService(authConfig)

	// Media pipeline collaborators
	tempFiles, err := media.NewTempManager(cfg.Storage.TempDir, loggerService)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize temp storage: %v", err)
	}
	validator := media.NewValidator(cfg.Upload.AllowedFormats, cfg.Upload.MaxSize)
	prober := media.NewProber(cfg.Ffmpeg.ProbePath, cfg.Upload.ProbeTimeout, loggerService)
	thumbnailer := media.NewGenerator(cfg.Ffmpeg.Path, cfg.Storage.TempDir, cfg.Storage.Fallback.ThumbnailURL, loggerService)

	// Persistence gateway, with the configured fallback policy
	fallback := storage.FallbackConfig{
		Enabled:      cfg.Storage.Fallback.Enabled,
		MediaURL:     cfg.Storage.Fallback.MediaURL,
		ThumbnailURL: cfg.Storage.Fallback.ThumbnailURL,
	}
	var mediaStore video.MediaStore
	if fallback.Enabled {
		mediaStore = storage.NewFallbackStore(objectStore, fallback, loggerService)
	} else {
		mediaStore = storage.NewDirectStore(objectStore)
	}

	videoConfig := &video.Config{
		MaxSize:        cfg.Upload.MaxSize,
		AllowedFormats: cfg.Upload.AllowedFormats,
		MinTitleLength: cfg.Upload.MinTitleLength,
		MaxTitleLength: cfg.Upload.MaxTitleLength,
		MaxDescLength:  cfg.Upload.MaxDescLength,
		ProbeTimeout:   cfg.Upload.ProbeTimeout,
	}
	progressCache := video.NewRedisProgressCache(cacheService)
	videoService := video.NewService(db, mediaStore, validator, prober, thumbnailer, tempFiles, progressCache, videoConfig, loggerService)

	// AI assist collaborators
	aiClient := ai.NewClient(ai.Config{
		BaseURL: cfg.AI.BaseURL,
		APIKey:  cfg.AI.APIKey,
		Model:   cfg.AI.Model,
		Referer: cfg.AI.Referer,
	}, cfg.AI.Timeout, loggerService)
	aiOptimizer := ai.NewOptimizer(aiClient, loggerService)

	speechClient := speech.NewClient(speech.Config{
		BaseURL:        cfg.Speech.BaseURL,
		APIKey:         cfg.Speech.APIKey,
		ModelID:        cfg.Speech.ModelID,
		DefaultVoiceID: cfg.Speech.DefaultVoiceID,
	}, cfg.Speech.Timeout)

	router := gin.New()
	router.Use(gin.Logger())

	app := &App{
		ctx:             ctx,
		Config:          cfg,
		db:              db,
		cache:           cacheService,
		objectStore:     objectStore,
		router:          router,
		logger:          loggerService,
		responseHandler: responseHandler,
		tokenService:    tokenService,
		videoService:    videoService,
		videoApp: &video.App{
			Config:          videoConfig,
			Logger:          loggerService,
			Video:           videoService,
			ResponseHandler: responseHandler,
		},
		aiClient:     aiClient,
		aiOptimizer:  aiOptimizer,
		speechClient: speechClient,
		tempFiles:    tempFiles,
	}

	SetupRoutes(router, app)

	return app, nil
}

// Run starts the application
func (a *App) Run() error {
	port := a.Config.Server.Port
	a.logger.LogInfo(fmt.Sprintf("Starting server on port %d", port), nil)
	if err := a.router.Run(fmt.Sprintf(":%d", port)); err != nil {
		return a.logger.LogError(err, "server failed to start")
	}
	return nil
}

// Shutdown gracefully shuts down the application
func (a *App) Shutdown() error {
	a.logger.LogInfo("Initiating graceful shutdown", nil)

	_, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if a.tempFiles != nil {
		a.tempFiles.Cleanup()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.LogWarn("Error closing cache connections", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.objectStore != nil {
		if err := a.objectStore.Close(); err != nil {
			a.logger.LogWarn("Error closing object storage", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	if a.db != nil {
		sqlDB, err := a.db.DB()
		if err != nil {
			a.logger.LogWarn("Error getting underlying database instance", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			if err := sqlDB.Close(); err != nil {
				a.logger.LogWarn("Error closing database connections", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	a.logger.LogInfo("Graceful shutdown completed", nil)
	return nil
}
