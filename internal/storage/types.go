package storage

// Config represents storage configuration
type Config struct {
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

// FallbackConfig holds the fixed placeholder URLs substituted when the
// storage backend is unreachable
type FallbackConfig struct {
	Enabled      bool   `mapstructure:"enabled"`
	MediaURL     string `mapstructure:"mediaUrl"`
	ThumbnailURL string `mapstructure:"thumbnailUrl"`
}
