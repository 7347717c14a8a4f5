package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// ConfigService implements the Service interface
type ConfigService struct {
	logger Logger
}

// NewConfigService creates a new configuration service
func NewConfigService(logger Logger) *ConfigService {
	return &ConfigService{
		logger: logger,
	}
}

// Load loads the configuration from the specified path
func (s *ConfigService) Load(path string) (*Config, error) {
	viper.AddConfigPath(path)
	// Use test configuration file if ENV is set to test
	if os.Getenv("ENV") == "test" {
		viper.SetConfigName("config_test")
	} else {
		viper.SetConfigName("config")
	}
	viper.SetConfigType("yaml")

	s.setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	if err := s.validate(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %v", err)
	}

	if err := s.resolveStoragePaths(&config, path); err != nil {
		return nil, fmt.Errorf("failed to resolve storage paths: %v", err)
	}

	s.logger.LogInfo("Configuration loaded successfully", nil)
	return &config, nil
}

// setDefaults sets default values for configuration
func (s *ConfigService) setDefaults() {
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("database.sslmode", "disable")
	viper.SetDefault("database.timezone", "UTC")
	viper.SetDefault("database.pool.maxOpen", 100)
	viper.SetDefault("database.pool.maxIdle", 10)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("storage.tempDir", "temp")
	viper.SetDefault("storage.fallback.enabled", false)
	viper.SetDefault("storage.fallback.mediaUrl", "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4")
	viper.SetDefault("storage.fallback.thumbnailUrl", "https://images.pexels.com/photos/3401403/pexels-photo-3401403.jpeg?auto=compress&cs=tinysrgb&w=600&h=400&dpr=1")
	viper.SetDefault("upload.maxSize", 500*1024*1024) // 500MB
	viper.SetDefault("upload.allowedFormats", []string{".mp4", ".mov", ".avi", ".wmv"})
	viper.SetDefault("upload.minTitleLength", 1)
	viper.SetDefault("upload.maxTitleLength", 100)
	viper.SetDefault("upload.maxDescLength", 5000)
	viper.SetDefault("upload.probeTimeout", "15s")
	viper.SetDefault("ffmpeg.path", "ffmpeg")
	viper.SetDefault("ffmpeg.probePath", "ffprobe")
	viper.SetDefault("ai.baseUrl", "https://openrouter.ai/api/v1")
	viper.SetDefault("ai.model", "deepseek/deepseek-chat-v3-0324:free")
	viper.SetDefault("ai.timeout", "30s")
	viper.SetDefault("speech.baseUrl", "https://api.elevenlabs.io/v1")
	viper.SetDefault("speech.modelId", "eleven_monolingual_v1")
	viper.SetDefault("speech.timeout", "30s")
	viper.SetDefault("auth.jwt.accessTokenTTL", "1h")
	viper.SetDefault("logging.level", "info")
}

// validate performs validation on the configuration
func (s *ConfigService) validate(config *Config) error {
	if config.Server.Port <= 0 {
		return fmt.Errorf("invalid server port")
	}

	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if config.Database.Dbname == "" {
		return fmt.Errorf("database name is required")
	}

	if config.Database.Port <= 0 {
		return fmt.Errorf("invalid database port")
	}

	if config.Upload.MaxSize <= 0 {
		return fmt.Errorf("invalid upload max size")
	}

	if len(config.Upload.AllowedFormats) == 0 {
		return fmt.Errorf("at least one allowed upload format is required")
	}

	if config.Storage.Fallback.Enabled {
		if config.Storage.Fallback.MediaURL == "" || config.Storage.Fallback.ThumbnailURL == "" {
			return fmt.Errorf("fallback URLs are required when fallback is enabled")
		}
	}

	return nil
}

// resolveStoragePaths converts relative paths to absolute paths
func (s *ConfigService) resolveStoragePaths(config *Config, basePath string) error {
	tempDir := config.Storage.TempDir
	if !filepath.IsAbs(tempDir) {
		absPath, err := filepath.Abs(filepath.Join(basePath, tempDir))
		if err != nil {
			return fmt.Errorf("failed to resolve temp directory path: %v", err)
		}
		config.Storage.TempDir = absPath
	}

	return nil
}
