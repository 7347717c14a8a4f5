package video_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/edulearn/platform/internal/errors"
	"github.com/edulearn/platform/internal/media"
	"github.com/edulearn/platform/internal/storage"
	"github.com/edulearn/platform/internal/video"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// pipelineLogger is a no-op logger satisfying both the video and storage
// logger interfaces
type pipelineLogger struct{}

func (l *pipelineLogger) LogInfo(msg string, fields map[string]interface{})  {}
func (l *pipelineLogger) LogError(err error, msg string) error               { return err }
func (l *pipelineLogger) LogWarn(msg string, fields map[string]interface{})  {}
func (l *pipelineLogger) LogDebug(msg string, fields map[string]interface{}) {}

// stubObjectStore is an in-memory ObjectStore. With err set every write
// fails, otherwise writes succeed and report full-transfer progress.
type stubObjectStore struct {
	baseURL string
	err     error
}

func (s *stubObjectStore) Put(ctx context.Context, key string, reader io.Reader, size int64, opts storage.PutOptions) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if _, err := io.Copy(io.Discard, reader); err != nil {
		return "", err
	}
	if opts.OnProgress != nil {
		opts.OnProgress(size, size)
	}
	return s.baseURL + "/" + key, nil
}

func (s *stubObjectStore) PublicURL(key string) string { return s.baseURL + "/" + key }

func (s *stubObjectStore) Close() error { return nil }

type stubProber struct {
	meta media.Metadata
}

func (p *stubProber) Probe(ctx context.Context, path string) (*media.Metadata, error) {
	m := p.meta
	return &m, nil
}

// frameThumbnailer writes a real frame file the way the ffmpeg capture does
type frameThumbnailer struct {
	dir string
}

func (f *frameThumbnailer) Generate(ctx context.Context, videoPath string, durationSeconds int) (string, error) {
	path := filepath.Join(f.dir, "frame.jpg")
	return path, os.WriteFile(path, []byte("jpeg"), 0o644)
}

func (f *frameThumbnailer) FallbackURL() string { return "https://cdn.test/stock-thumbnail.jpg" }

// spoolDir spools uploads into a real directory so the pipeline can reopen them
type spoolDir struct {
	dir string
}

func (s *spoolDir) Spool(reader io.Reader, ext string) (string, error) {
	file, err := os.CreateTemp(s.dir, "spool-*"+ext)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if _, err := io.Copy(file, reader); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (s *spoolDir) Remove(path string) error { return os.Remove(path) }

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "videos.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&video.Video{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func pipelineConfig() *video.Config {
	return &video.Config{
		MaxSize:        500 * 1024 * 1024,
		AllowedFormats: []string{".mp4", ".mov"},
		MinTitleLength: 3,
		MaxTitleLength: 100,
		MaxDescLength:  5000,
	}
}

func newPipeline(t *testing.T, store video.MediaStore, db *gorm.DB) *video.Service {
	t.Helper()
	validator := media.NewValidator([]string{".mp4", ".mov"}, 500*1024*1024)
	prober := &stubProber{meta: media.Metadata{DurationSeconds: 90, Width: 1280, Height: 720}}
	return video.NewService(db, store, validator, prober,
		&frameThumbnailer{dir: t.TempDir()}, &spoolDir{dir: t.TempDir()},
		nil, pipelineConfig(), &pipelineLogger{})
}

func TestUpload_FullPipelineSuccess(t *testing.T) {
	db := openTestDB(t)
	svc := newPipeline(t, storage.NewDirectStore(&stubObjectStore{baseURL: "https://cdn.test"}), db)

	var updates []video.ProgressUpdate
	uploader := uuid.New()
	result, err := svc.Upload(context.Background(), video.UploadInput{
		Reader:     strings.NewReader("mp4 payload"),
		Filename:   "fractions-intro.mp4",
		Size:       11,
		Title:      "Introduction to Fractions",
		Subject:    "math",
		GradeLevel: "5",
		Tags:       "math, fractions",
		UploaderID: uploader,
		OnProgress: func(u video.ProgressUpdate) { updates = append(updates, u) },
	})

	assert.NoError(t, err)
	assert.False(t, result.UsedFallback)
	assert.True(t, strings.HasPrefix(result.Video.VideoURL, "https://cdn.test/videos/"))
	assert.True(t, strings.HasPrefix(result.Video.ThumbnailURL, "https://cdn.test/thumbnails/"))
	assert.Equal(t, 90, result.Video.Duration)
	assert.Equal(t, int64(0), result.Video.ViewCount)

	var persisted video.Video
	assert.NoError(t, db.First(&persisted, "id = ?", result.Video.ID).Error)
	assert.Equal(t, result.Video.VideoURL, persisted.VideoURL)
	assert.Equal(t, uploader, persisted.UploaderID)

	last := -1
	finishes := 0
	for _, u := range updates {
		assert.GreaterOrEqual(t, u.Percent, last)
		last = u.Percent
		if u.Percent == 100 {
			finishes++
		}
	}
	assert.Equal(t, 100, updates[len(updates)-1].Percent)
	assert.Equal(t, 1, finishes)
}

func TestUpload_StorageOutageFallsBackAndPersists(t *testing.T) {
	db := openTestDB(t)
	objects := &stubObjectStore{err: errors.NewStorageError("put", "bucket unreachable", nil)}
	store := storage.NewFallbackStore(objects, storage.FallbackConfig{
		Enabled:      true,
		MediaURL:     "https://cdn.test/placeholder-video.mp4",
		ThumbnailURL: "https://cdn.test/placeholder-thumbnail.jpg",
	}, &pipelineLogger{})
	svc := newPipeline(t, store, db)

	var updates []video.ProgressUpdate
	result, err := svc.Upload(context.Background(), video.UploadInput{
		Reader:     strings.NewReader("mp4 payload"),
		Filename:   "fractions-intro.mp4",
		Size:       11,
		Title:      "Introduction to Fractions",
		UploaderID: uuid.New(),
		OnProgress: func(u video.ProgressUpdate) { updates = append(updates, u) },
	})

	assert.NoError(t, err)
	assert.True(t, result.UsedFallback)
	assert.Equal(t, "https://cdn.test/placeholder-video.mp4", result.Video.VideoURL)
	assert.Equal(t, "https://cdn.test/placeholder-thumbnail.jpg", result.Video.ThumbnailURL)
	assert.Equal(t, int64(0), result.Video.ViewCount)

	var persisted video.Video
	assert.NoError(t, db.First(&persisted, "id = ?", result.Video.ID).Error)
	assert.Equal(t, "https://cdn.test/placeholder-video.mp4", persisted.VideoURL)
	assert.Equal(t, "https://cdn.test/placeholder-thumbnail.jpg", persisted.ThumbnailURL)

	assert.NotEmpty(t, updates)
	assert.Equal(t, 100, updates[len(updates)-1].Percent)
}
