package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/edulearn/platform/internal/config"
	"github.com/edulearn/platform/internal/logger"
)

func main() {
	ctx := context.Background()

	// Initialize logger for bootstrapping
	loggerService, err := logger.NewService(&logger.Config{Level: "debug"})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Load configuration
	configService := config.NewConfigService(loggerService)
	cfg, err := configService.Load(".")
	if err != nil {
		loggerService.LogFatal(err, "Failed to load configuration")
	}

	// Reinitialize the logger with the configured settings
	loggerConfig := &logger.Config{
		Level:       logger.Level(cfg.Logging.Level),
		Format:      cfg.Logging.Format,
		Output:      cfg.Logging.Output,
		Development: cfg.Logging.Development,
	}
	loggerConfig.File.Enabled = cfg.Logging.File.Enabled
	loggerConfig.File.Path = cfg.Logging.File.Path
	loggerService, err = logger.NewService(loggerConfig)
	if err != nil {
		log.Fatalf("Failed to initialize configured logger: %v", err)
	}

	// Create a context that will be canceled on interrupt
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Set up signal handling
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Received shutdown signal")
		cancel()
	}()

	// Create and run application
	app, err := NewApp(ctx, cfg, loggerService)
	if err != nil {
		loggerService.LogFatal(err, "Failed to initialize application")
	}

	go func() {
		if err := app.Run(); err != nil {
			log.Printf("Application error: %v", err)
			cancel()
		}
	}()

	// Wait for context cancellation
	<-ctx.Done()

	// Perform graceful shutdown
	if err := app.Shutdown(); err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}
}
