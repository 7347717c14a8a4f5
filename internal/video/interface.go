package video

import (
	"context"
	"io"

	"github.com/edulearn/platform/internal/media"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VideoService interface for video operations
type VideoService interface {
	Upload(ctx context.Context, input UploadInput) (*UploadResult, error)
	GetVideo(ctx context.Context, id uuid.UUID) (*Video, error)
	ListVideos(ctx context.Context, page, limit int) ([]Video, int64, error)
	IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error)
	UpdateVideo(ctx context.Context, id uuid.UUID, callerID uuid.UUID, req VideoUpdateRequest) (*Video, error)
	Progress(ctx context.Context, attemptID string) (*ProgressUpdate, error)
}

// MediaStore abstracts the object-storage side of the persistence gateway.
// Implementations may satisfy a failed write with a placeholder URL, which is
// reported through PutResult.UsedFallback.
type MediaStore interface {
	PutMedia(ctx context.Context, key string, reader io.Reader, size int64, contentType string, onProgress func(bytesRead, totalBytes int64)) (PutResult, error)
	PutThumbnail(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (PutResult, error)
}

// MediaValidator checks a candidate file against the upload policy
type MediaValidator interface {
	Validate(filename string, size int64) error
}

// MetadataProber derives duration and resolution from a media file
type MetadataProber interface {
	Probe(ctx context.Context, path string) (*media.Metadata, error)
}

// Thumbnailer captures a preview frame, degrading to a stock URL on failure
type Thumbnailer interface {
	Generate(ctx context.Context, videoPath string, durationSeconds int) (string, error)
	FallbackURL() string
}

// TempFiles spools uploads to disk and releases them when the attempt ends
type TempFiles interface {
	Spool(reader io.Reader, ext string) (string, error)
	Remove(path string) error
}

// ProgressCache persists progress snapshots so they can be polled
type ProgressCache interface {
	SetProgress(ctx context.Context, update ProgressUpdate) error
	GetProgress(ctx context.Context, attemptID string) (*ProgressUpdate, error)
}

// ResponseHandler interface for HTTP responses
type ResponseHandler interface {
	SuccessResponse(c *gin.Context, data interface{}, message string)
	ErrorResponse(c *gin.Context, status int, code, message string, err error)
	NotFoundResponse(c *gin.Context, message string)
	ForbiddenResponse(c *gin.Context, message string)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
	LogWarn(message string, fields map[string]interface{})
	LogDebug(message string, fields map[string]interface{})
}
