package video

import (
	"io"
	"time"

	"github.com/google/uuid"
)

// Config represents the configuration for the upload pipeline
type Config struct {
	MaxSize        int64         `mapstructure:"maxSize"`
	AllowedFormats []string      `mapstructure:"allowedFormats"`
	MinTitleLength int           `mapstructure:"minTitleLength"`
	MaxTitleLength int           `mapstructure:"maxTitleLength"`
	MaxDescLength  int           `mapstructure:"maxDescLength"`
	ProbeTimeout   time.Duration `mapstructure:"probeTimeout"`
}

// App represents the application context needed by video handlers
type App struct {
	Config          *Config
	Logger          Logger
	Video           VideoService
	ResponseHandler ResponseHandler
}

// UploadInput carries one upload attempt through the pipeline
type UploadInput struct {
	Reader       io.Reader
	Filename     string
	Size         int64
	Title        string
	Description  string
	Subject      string
	GradeLevel   string
	Tags         string
	IsPremium    bool
	PremiumPrice *float64
	UploaderID   uuid.UUID

	// OnProgress, when set, observes every progress update of the attempt
	OnProgress func(ProgressUpdate)
}

// UploadResult is the outcome of a completed upload attempt
type UploadResult struct {
	Video        *Video
	UsedFallback bool
	AttemptID    string
}

// PutResult is the outcome of a single object-store write, possibly satisfied
// by a placeholder URL
type PutResult struct {
	URL          string
	UsedFallback bool
}

// UploadResponse represents the API response for a completed upload
type UploadResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Duration     int    `json:"duration"`
	ViewCount    int64  `json:"viewCount"`
	UsedFallback bool   `json:"usedFallback"`
}

// VideoResponse represents detailed video information
type VideoResponse struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Subject      string    `json:"subject"`
	GradeLevel   string    `json:"gradeLevel"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Duration     int       `json:"duration"`
	Tags         string    `json:"tags"`
	UploaderID   string    `json:"uploaderId"`
	ViewCount    int64     `json:"viewCount"`
	IsPremium    bool      `json:"isPremium"`
	PremiumPrice *float64  `json:"premiumPrice"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// VideoListResponse represents the response for listing videos
type VideoListResponse struct {
	Videos []VideoResponse `json:"videos"`
	Total  int64           `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

// VideoUpdateRequest represents the request for updating video metadata
type VideoUpdateRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	Subject      *string  `json:"subject,omitempty"`
	GradeLevel   *string  `json:"gradeLevel,omitempty"`
	Tags         *string  `json:"tags,omitempty"`
	IsPremium    *bool    `json:"isPremium,omitempty"`
	PremiumPrice *float64 `json:"premiumPrice,omitempty"`
}

// toVideoResponse converts a model into its API representation
func toVideoResponse(v *Video) VideoResponse {
	return VideoResponse{
		ID:           v.ID.String(),
		Title:        v.Title,
		Description:  v.Description,
		Subject:      v.Subject,
		GradeLevel:   v.GradeLevel,
		VideoURL:     v.VideoURL,
		ThumbnailURL: v.ThumbnailURL,
		Duration:     v.Duration,
		Tags:         v.Tags,
		UploaderID:   v.UploaderID.String(),
		ViewCount:    v.ViewCount,
		IsPremium:    v.IsPremium,
		PremiumPrice: v.PremiumPrice,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}
