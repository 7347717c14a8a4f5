package video

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/edulearn/platform/internal/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Service implements the VideoService interface
type Service struct {
	db        *gorm.DB
	store     MediaStore
	validator MediaValidator
	prober    MetadataProber
	thumbs    Thumbnailer
	temp      TempFiles
	progress  ProgressCache
	config    *Config
	logger    Logger
}

// NewService creates a new video service instance
func NewService(db *gorm.DB, store MediaStore, validator MediaValidator, prober MetadataProber, thumbs Thumbnailer, temp TempFiles, progress ProgressCache, config *Config, logger Logger) *Service {
	return &Service{
		db:        db,
		store:     store,
		validator: validator,
		prober:    prober,
		thumbs:    thumbs,
		temp:      temp,
		progress:  progress,
		config:    config,
		logger:    logger,
	}
}

type thumbnailResult struct {
	path string
	err  error
}

// Upload runs one upload attempt through the pipeline: validate, probe,
// upload media, thumbnail, insert record, finalize. Phases execute strictly
// in order; only thumbnail generation overlaps the media transfer, since both
// depend only on the spooled file.
func (s *Service) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	attemptID := uuid.New().String()
	reporter := NewProgressReporter(attemptID, func(update ProgressUpdate) {
		if input.OnProgress != nil {
			input.OnProgress(update)
		}
		if s.progress != nil {
			if err := s.progress.SetProgress(ctx, update); err != nil {
				s.logger.LogDebug("Failed to cache progress snapshot", map[string]interface{}{
					"attempt_id": attemptID,
					"error":      err.Error(),
				})
			}
		}
	})
	reporter.Advance(PhaseValidating)

	if err := s.validateUploadInput(&input); err != nil {
		return nil, err
	}
	if input.UploaderID == uuid.Nil {
		return nil, errors.NewPersistenceError(errors.PersistenceIdentityMismatch,
			"upload attempted without an authenticated uploader", nil)
	}

	ext := strings.ToLower(filepath.Ext(input.Filename))
	tempPath, err := s.temp.Spool(input.Reader, ext)
	if err != nil {
		return nil, fmt.Errorf("failed to spool upload: %w", err)
	}
	defer s.temp.Remove(tempPath)

	meta, err := s.prober.Probe(ctx, tempPath)
	if err != nil {
		return nil, err
	}

	// Thumbnail capture only needs the spooled file, so it runs while the
	// media transfer is in flight.
	thumbCh := make(chan thumbnailResult, 1)
	go func() {
		path, err := s.thumbs.Generate(ctx, tempPath, meta.DurationSeconds)
		thumbCh <- thumbnailResult{path: path, err: err}
	}()

	reporter.Advance(PhaseUploadingMedia)
	mediaKey := storageKey(ext)
	mediaRes, err := s.uploadMedia(ctx, mediaKey, tempPath, input.Size, ext, reporter)
	if err != nil {
		// The capture goroutine may have written a frame that will never be
		// uploaded now; wait for it and delete the file.
		s.discardThumbnail(<-thumbCh)
		return nil, err
	}
	usedFallback := mediaRes.UsedFallback

	reporter.Advance(PhaseGeneratingThumbnail)
	thumbURL, thumbFellBack := s.resolveThumbnail(ctx, mediaKey, <-thumbCh)
	usedFallback = usedFallback || thumbFellBack

	reporter.Advance(PhasePersistingRecord)
	record := &Video{
		Title:        input.Title,
		Description:  input.Description,
		Subject:      input.Subject,
		GradeLevel:   input.GradeLevel,
		VideoURL:     mediaRes.URL,
		ThumbnailURL: thumbURL,
		Duration:     meta.DurationSeconds,
		Tags:         input.Tags,
		UploaderID:   input.UploaderID,
		IsPremium:    input.IsPremium,
		PremiumPrice: input.PremiumPrice,
	}
	if err := s.insertRecord(ctx, record); err != nil {
		return nil, err
	}

	reporter.Advance(PhaseFinalizing)
	s.logger.LogInfo("Video published", map[string]interface{}{
		"video_id":      record.ID.String(),
		"uploader_id":   record.UploaderID.String(),
		"duration_s":    record.Duration,
		"resolution":    meta.Resolution(),
		"used_fallback": usedFallback,
	})
	reporter.Finish()

	return &UploadResult{
		Video:        record,
		UsedFallback: usedFallback,
		AttemptID:    attemptID,
	}, nil
}

// uploadMedia streams the spooled file into the object store, mapping byte
// progress onto the uploading-media span of the reporter
func (s *Service) uploadMedia(ctx context.Context, key, path string, size int64, ext string, reporter *ProgressReporter) (PutResult, error) {
	file, err := os.Open(path)
	if err != nil {
		return PutResult{}, fmt.Errorf("failed to open spooled upload: %w", err)
	}
	defer file.Close()

	floor := phaseFloors[PhaseUploadingMedia]
	span := phaseFloors[PhaseGeneratingThumbnail] - floor

	return s.store.PutMedia(ctx, key, file, size, contentTypeForExt(ext), func(bytesRead, totalBytes int64) {
		if totalBytes > 0 {
			reporter.Report(floor + int(bytesRead*int64(span)/totalBytes))
		}
	})
}

// discardThumbnail deletes a captured frame that will not be uploaded.
func (s *Service) discardThumbnail(thumb thumbnailResult) {
	if thumb.err == nil && thumb.path != "" {
		os.Remove(thumb.path)
	}
}

// resolveThumbnail uploads the captured frame, degrading to the stock image
// URL on any failure. A thumbnail problem never fails the attempt.
func (s *Service) resolveThumbnail(ctx context.Context, mediaKey string, thumb thumbnailResult) (string, bool) {
	if thumb.err != nil {
		s.logger.LogWarn("Thumbnail capture failed, using stock image", map[string]interface{}{
			"error": thumb.err.Error(),
		})
		return s.thumbs.FallbackURL(), false
	}
	defer os.Remove(thumb.path)

	file, err := os.Open(thumb.path)
	if err != nil {
		s.logger.LogWarn("Failed to open captured thumbnail", map[string]interface{}{
			"error": err.Error(),
		})
		return s.thumbs.FallbackURL(), false
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return s.thumbs.FallbackURL(), false
	}

	key := thumbnailKey(mediaKey)
	result, err := s.store.PutThumbnail(ctx, key, file, info.Size(), "image/jpeg")
	if err != nil {
		s.logger.LogWarn("Thumbnail upload failed, using stock image", map[string]interface{}{
			"key":   key,
			"error": err.Error(),
		})
		return s.thumbs.FallbackURL(), false
	}

	return result.URL, result.UsedFallback
}

// insertRecord writes the video row, classifying failures so callers can tell
// an authorization rejection from a transient fault
func (s *Service) insertRecord(ctx context.Context, record *Video) error {
	if err := s.db.WithContext(ctx).Create(record).Error; err != nil {
		return classifyPersistenceError("failed to insert video record", err)
	}
	return nil
}

// GetVideo returns a single video by id
func (s *Service) GetVideo(ctx context.Context, id uuid.UUID) (*Video, error) {
	var record Video
	if err := s.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, classifyPersistenceError("failed to load video record", err)
	}
	return &record, nil
}

// ListVideos returns a page of videos, newest first
func (s *Service) ListVideos(ctx context.Context, page, limit int) ([]Video, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&Video{}).Count(&total).Error; err != nil {
		return nil, 0, classifyPersistenceError("failed to count video records", err)
	}

	var records []Video
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, 0, classifyPersistenceError("failed to list video records", err)
	}

	return records, total, nil
}

// IncrementViewCount atomically bumps the view counter and returns the new
// value. View counts only ever grow.
func (s *Service) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&Video{}).
		Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1))
	if result.Error != nil {
		return 0, classifyPersistenceError("failed to increment view count", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}

	var record Video
	if err := s.db.WithContext(ctx).Select("view_count").First(&record, "id = ?", id).Error; err != nil {
		return 0, classifyPersistenceError("failed to read view count", err)
	}
	return record.ViewCount, nil
}

// UpdateVideo applies owner edits. Edits by anyone but the uploader are
// rejected as an identity mismatch, distinctly from authorization failures.
func (s *Service) UpdateVideo(ctx context.Context, id uuid.UUID, callerID uuid.UUID, req VideoUpdateRequest) (*Video, error) {
	record, err := s.GetVideo(ctx, id)
	if err != nil {
		return nil, err
	}

	if record.UploaderID != callerID {
		return nil, errors.NewPersistenceError(errors.PersistenceIdentityMismatch,
			"video belongs to a different uploader", nil)
	}

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return nil, errors.NewValidationError(errors.CodeTitleRequired, "title", errors.ErrMsgTitleRequired)
		}
		record.Title = title
	}
	if req.Description != nil {
		record.Description = *req.Description
	}
	if req.Subject != nil {
		record.Subject = *req.Subject
	}
	if req.GradeLevel != nil {
		record.GradeLevel = *req.GradeLevel
	}
	if req.Tags != nil {
		record.Tags = *req.Tags
	}
	if req.IsPremium != nil {
		record.IsPremium = *req.IsPremium
	}
	if req.PremiumPrice != nil {
		record.PremiumPrice = req.PremiumPrice
	}

	if record.IsPremium && (record.PremiumPrice == nil || *record.PremiumPrice <= 0) {
		return nil, errors.NewValidationError(errors.CodePremiumPriceRequired, "premiumPrice", errors.ErrMsgPremiumPrice)
	}
	if !record.IsPremium {
		record.PremiumPrice = nil
	}

	if err := s.db.WithContext(ctx).Save(record).Error; err != nil {
		return nil, classifyPersistenceError("failed to update video record", err)
	}
	return record, nil
}

// Progress returns the cached progress snapshot for an upload attempt
func (s *Service) Progress(ctx context.Context, attemptID string) (*ProgressUpdate, error) {
	if s.progress == nil {
		return nil, fmt.Errorf("progress tracking is not configured")
	}
	return s.progress.GetProgress(ctx, attemptID)
}

// classifyPersistenceError maps database failures to the persistence
// taxonomy. Row-level authorization rejections indicate a caller-identity
// problem and must not look like transient faults.
func classifyPersistenceError(message string, err error) error {
	var pgErr *pgconn.PgError
	if stderrors.As(err, &pgErr) {
		switch pgErr.Code {
		case "42501", "28000": // insufficient_privilege, invalid_authorization_specification
			return errors.NewPersistenceError(errors.PersistenceAuthorization, message, err)
		}
	}
	return errors.NewPersistenceError(errors.PersistenceGeneric, message, err)
}

// storageKey builds a collision-resistant object key: millisecond timestamp
// plus a random suffix, keeping the original extension
func storageKey(ext string) string {
	suffix := strings.SplitN(uuid.New().String(), "-", 2)[0]
	return fmt.Sprintf("videos/%d-%s%s", time.Now().UnixMilli(), suffix, ext)
}

// thumbnailKey derives the thumbnail key from the media key stem
func thumbnailKey(mediaKey string) string {
	stem := strings.TrimSuffix(filepath.Base(mediaKey), filepath.Ext(mediaKey))
	return fmt.Sprintf("thumbnails/%s.jpg", stem)
}

func contentTypeForExt(ext string) string {
	switch ext {
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	case ".avi":
		return "video/x-msvideo"
	case ".wmv":
		return "video/x-ms-wmv"
	default:
		return "application/octet-stream"
	}
}
