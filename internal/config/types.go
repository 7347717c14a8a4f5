package config

import "time"

// Config represents the application configuration
type Config struct {
	Environment string         `mapstructure:"environment" yaml:"environment"`
	Server      ServerConfig   `yaml:"server"`
	Database    DatabaseConfig `yaml:"database"`
	Redis       RedisConfig    `yaml:"redis"`
	Storage     StorageConfig  `yaml:"storage"`
	Upload      UploadConfig   `yaml:"upload"`
	Ffmpeg      FfmpegConfig   `yaml:"ffmpeg"`
	AI          AIConfig       `yaml:"ai"`
	Speech      SpeechConfig   `yaml:"speech"`
	Auth        AuthConfig     `yaml:"auth"`
	Logging     LoggingConfig  `yaml:"logging"`
}

// ServerConfig represents server configuration settings
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DatabaseConfig represents database configuration settings
type DatabaseConfig struct {
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Dbname   string `mapstructure:"dbname"`
	Port     int    `mapstructure:"port"`
	Sslmode  string `mapstructure:"sslmode"`
	Timezone string `mapstructure:"timezone"`
	Pool     struct {
		MaxOpen int `mapstructure:"maxOpen"`
		MaxIdle int `mapstructure:"maxIdle"`
	} `mapstructure:"pool"`
}

// RedisConfig represents Redis configuration settings
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// StorageConfig represents object storage configuration settings
type StorageConfig struct {
	TempDir  string         `mapstructure:"tempDir"`
	S3       S3Config       `mapstructure:"s3"`
	Fallback FallbackConfig `mapstructure:"fallback"`
}

// S3Config represents S3-compatible object storage settings
type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	AccessKeyID     string `mapstructure:"accessKeyId"`
	SecretAccessKey string `mapstructure:"secretAccessKey"`
	UseSSL          bool   `mapstructure:"useSSL"`
	Region          string `mapstructure:"region"`
	Bucket          string `mapstructure:"bucket"`
}

// FallbackConfig controls the placeholder-asset substitution applied when the
// storage backend is unreachable. Disabled outside development setups.
type FallbackConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	MediaURL     string `mapstructure:"mediaUrl"`
	ThumbnailURL string `mapstructure:"thumbnailUrl"`
}

// UploadConfig represents upload pipeline configuration settings
type UploadConfig struct {
	MaxSize        int64         `mapstructure:"maxSize"`
	AllowedFormats []string      `mapstructure:"allowedFormats"`
	MinTitleLength int           `mapstructure:"minTitleLength"`
	MaxTitleLength int           `mapstructure:"maxTitleLength"`
	MaxDescLength  int           `mapstructure:"maxDescLength"`
	ProbeTimeout   time.Duration `mapstructure:"probeTimeout"`
}

// FfmpegConfig represents FFmpeg configuration settings
type FfmpegConfig struct {
	Path      string `mapstructure:"path"`
	ProbePath string `mapstructure:"probePath"`
}

// AIConfig represents chat-completion collaborator settings
type AIConfig struct {
	BaseURL string        `mapstructure:"baseUrl"`
	APIKey  string        `mapstructure:"apiKey"`
	Model   string        `mapstructure:"model"`
	Referer string        `mapstructure:"referer"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// SpeechConfig represents text-to-speech collaborator settings
type SpeechConfig struct {
	BaseURL        string        `mapstructure:"baseUrl"`
	APIKey         string        `mapstructure:"apiKey"`
	ModelID        string        `mapstructure:"modelId"`
	DefaultVoiceID string        `mapstructure:"defaultVoiceId"`
	Timeout        time.Duration `mapstructure:"timeout"`
}

// AuthConfig represents authentication configuration settings
type AuthConfig struct {
	JWT struct {
		Secret         string        `mapstructure:"secret"`
		AccessTokenTTL time.Duration `mapstructure:"accessTokenTTL"`
	} `mapstructure:"jwt"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level       string `mapstructure:"level" yaml:"level"`
	Format      string `mapstructure:"format" yaml:"format"`
	Output      string `mapstructure:"output" yaml:"output"`
	Development bool   `mapstructure:"development" yaml:"development"`

	File struct {
		Enabled bool   `mapstructure:"enabled" yaml:"enabled"`
		Path    string `mapstructure:"path" yaml:"path"`
	} `mapstructure:"file" yaml:"file"`
}
