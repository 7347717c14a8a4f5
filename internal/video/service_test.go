package video

import (
	"context"
	stderrors "errors"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/edulearn/platform/internal/errors"
	"github.com/edulearn/platform/internal/media"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// testLogger is a no-op Logger for tests
type testLogger struct{}

func (l *testLogger) LogInfo(msg string, fields map[string]interface{})  {}
func (l *testLogger) LogError(err error, msg string) error               { return err }
func (l *testLogger) LogWarn(msg string, fields map[string]interface{})  {}
func (l *testLogger) LogDebug(msg string, fields map[string]interface{}) {}

// MockMediaStore is a mock implementation of MediaStore
type MockMediaStore struct {
	mock.Mock
}

func (m *MockMediaStore) PutMedia(ctx context.Context, key string, reader io.Reader, size int64, contentType string, onProgress func(bytesRead, totalBytes int64)) (PutResult, error) {
	args := m.Called(ctx, key, reader, size, contentType, onProgress)
	if onProgress != nil {
		onProgress(size, size)
	}
	return args.Get(0).(PutResult), args.Error(1)
}

func (m *MockMediaStore) PutThumbnail(ctx context.Context, key string, reader io.Reader, size int64, contentType string) (PutResult, error) {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Get(0).(PutResult), args.Error(1)
}

// MockProber is a mock implementation of MetadataProber
type MockProber struct {
	mock.Mock
}

func (m *MockProber) Probe(ctx context.Context, path string) (*media.Metadata, error) {
	args := m.Called(ctx, path)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*media.Metadata), args.Error(1)
}

// MockThumbnailer is a mock implementation of Thumbnailer
type MockThumbnailer struct {
	mock.Mock
}

func (m *MockThumbnailer) Generate(ctx context.Context, videoPath string, durationSeconds int) (string, error) {
	args := m.Called(ctx, videoPath, durationSeconds)
	return args.String(0), args.Error(1)
}

func (m *MockThumbnailer) FallbackURL() string {
	args := m.Called()
	return args.String(0)
}

// fakeTempFiles spools into a real directory so the pipeline can reopen the file
type fakeTempFiles struct {
	dir string
}

func (f *fakeTempFiles) Spool(reader io.Reader, ext string) (string, error) {
	file, err := os.CreateTemp(f.dir, "spool-*"+ext)
	if err != nil {
		return "", err
	}
	defer file.Close()
	if _, err := io.Copy(file, reader); err != nil {
		return "", err
	}
	return file.Name(), nil
}

func (f *fakeTempFiles) Remove(path string) error {
	return os.Remove(path)
}

func testConfig() *Config {
	return &Config{
		MaxSize:        500 * 1024 * 1024,
		AllowedFormats: []string{".mp4", ".mov"},
		MinTitleLength: 3,
		MaxTitleLength: 100,
		MaxDescLength:  5000,
	}
}

func TestUpload_ValidationFailureSkipsAllRemoteCalls(t *testing.T) {
	store := new(MockMediaStore)
	prober := new(MockProber)
	thumbs := new(MockThumbnailer)
	validator := media.NewValidator([]string{".mp4"}, 100)

	s := NewService(nil, store, validator, prober, thumbs, &fakeTempFiles{dir: t.TempDir()}, nil, testConfig(), &testLogger{})

	_, err := s.Upload(context.Background(), UploadInput{
		Reader:     strings.NewReader("data"),
		Filename:   "lesson.mkv",
		Size:       10,
		Title:      "Valid Title",
		UploaderID: uuid.New(),
	})

	var validationErr *errors.ValidationError
	assert.True(t, stderrors.As(err, &validationErr))
	store.AssertNotCalled(t, "PutMedia")
	store.AssertNotCalled(t, "PutThumbnail")
	prober.AssertNotCalled(t, "Probe")
}

func TestUpload_MissingUploaderIsIdentityMismatch(t *testing.T) {
	store := new(MockMediaStore)
	validator := media.NewValidator([]string{".mp4"}, 1024)

	s := NewService(nil, store, validator, new(MockProber), new(MockThumbnailer), &fakeTempFiles{dir: t.TempDir()}, nil, testConfig(), &testLogger{})

	_, err := s.Upload(context.Background(), UploadInput{
		Reader:   strings.NewReader("data"),
		Filename: "lesson.mp4",
		Size:     10,
		Title:    "Valid Title",
	})

	var persistenceErr *errors.PersistenceError
	assert.True(t, stderrors.As(err, &persistenceErr))
	assert.Equal(t, errors.PersistenceIdentityMismatch, persistenceErr.Category)
	store.AssertNotCalled(t, "PutMedia")
}

func TestUpload_StorageFailureSurfaces(t *testing.T) {
	store := new(MockMediaStore)
	prober := new(MockProber)
	thumbs := new(MockThumbnailer)
	validator := media.NewValidator([]string{".mp4"}, 1024)

	prober.On("Probe", mock.Anything, mock.Anything).Return(&media.Metadata{DurationSeconds: 30, Width: 640, Height: 480}, nil)
	thumbs.On("Generate", mock.Anything, mock.Anything, 30).Return("", stderrors.New("no frame"))
	store.On("PutMedia", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(PutResult{}, errors.NewStorageError("put", "bucket unreachable", nil))

	s := NewService(nil, store, validator, prober, thumbs, &fakeTempFiles{dir: t.TempDir()}, nil, testConfig(), &testLogger{})

	_, err := s.Upload(context.Background(), UploadInput{
		Reader:     strings.NewReader("data"),
		Filename:   "lesson.mp4",
		Size:       4,
		Title:      "Valid Title",
		UploaderID: uuid.New(),
	})

	var storageErr *errors.StorageError
	assert.True(t, stderrors.As(err, &storageErr))
	store.AssertNotCalled(t, "PutThumbnail")
}

func TestUpload_StorageFailureRemovesCapturedFrame(t *testing.T) {
	store := new(MockMediaStore)
	prober := new(MockProber)
	thumbs := new(MockThumbnailer)
	validator := media.NewValidator([]string{".mp4"}, 1024)

	framePath := filepath.Join(t.TempDir(), "frame.jpg")
	assert.NoError(t, os.WriteFile(framePath, []byte("jpeg"), 0o644))

	prober.On("Probe", mock.Anything, mock.Anything).Return(&media.Metadata{DurationSeconds: 30, Width: 640, Height: 480}, nil)
	thumbs.On("Generate", mock.Anything, mock.Anything, 30).Return(framePath, nil)
	store.On("PutMedia", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(PutResult{}, errors.NewStorageError("put", "bucket unreachable", nil))

	s := NewService(nil, store, validator, prober, thumbs, &fakeTempFiles{dir: t.TempDir()}, nil, testConfig(), &testLogger{})

	_, err := s.Upload(context.Background(), UploadInput{
		Reader:     strings.NewReader("data"),
		Filename:   "lesson.mp4",
		Size:       4,
		Title:      "Valid Title",
		UploaderID: uuid.New(),
	})

	assert.Error(t, err)
	assert.NoFileExists(t, framePath)
}

func TestUpload_ProgressSequenceUntilStorageFailure(t *testing.T) {
	store := new(MockMediaStore)
	prober := new(MockProber)
	thumbs := new(MockThumbnailer)
	validator := media.NewValidator([]string{".mp4"}, 1024)

	prober.On("Probe", mock.Anything, mock.Anything).Return(&media.Metadata{DurationSeconds: 30, Width: 640, Height: 480}, nil)
	thumbs.On("Generate", mock.Anything, mock.Anything, 30).Return("", stderrors.New("no frame"))
	store.On("PutMedia", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(PutResult{}, errors.NewStorageError("put", "bucket unreachable", nil))

	s := NewService(nil, store, validator, prober, thumbs, &fakeTempFiles{dir: t.TempDir()}, nil, testConfig(), &testLogger{})

	var updates []ProgressUpdate
	_, err := s.Upload(context.Background(), UploadInput{
		Reader:     strings.NewReader("data"),
		Filename:   "lesson.mp4",
		Size:       4,
		Title:      "Valid Title",
		UploaderID: uuid.New(),
		OnProgress: func(u ProgressUpdate) { updates = append(updates, u) },
	})
	assert.Error(t, err)

	assert.NotEmpty(t, updates)
	assert.Equal(t, PhaseValidating, updates[0].Phase)
	last := -1
	sawUploading := false
	for _, u := range updates {
		assert.GreaterOrEqual(t, u.Percent, last)
		last = u.Percent
		if u.Phase == PhaseUploadingMedia {
			sawUploading = true
		}
		assert.NotEqual(t, 100, u.Percent)
	}
	assert.True(t, sawUploading)
}

func TestResolveThumbnail_GenerationFailureUsesStockImage(t *testing.T) {
	store := new(MockMediaStore)
	thumbs := new(MockThumbnailer)
	thumbs.On("FallbackURL").Return("https://images.example.com/stock.jpeg")

	s := NewService(nil, store, nil, nil, thumbs, nil, nil, testConfig(), &testLogger{})

	url, usedFallback := s.resolveThumbnail(context.Background(), "videos/abc.mp4", thumbnailResult{err: stderrors.New("capture failed")})
	assert.Equal(t, "https://images.example.com/stock.jpeg", url)
	assert.False(t, usedFallback)
	store.AssertNotCalled(t, "PutThumbnail")
}

func TestResolveThumbnail_UploadFailureUsesStockImage(t *testing.T) {
	store := new(MockMediaStore)
	thumbs := new(MockThumbnailer)
	thumbs.On("FallbackURL").Return("https://images.example.com/stock.jpeg")
	store.On("PutThumbnail", mock.Anything, "thumbnails/abc.jpg", mock.Anything, mock.Anything, "image/jpeg").
		Return(PutResult{}, errors.NewStorageError("put", "bucket unreachable", nil))

	framePath := filepath.Join(t.TempDir(), "frame.jpg")
	assert.NoError(t, os.WriteFile(framePath, []byte("jpegdata"), 0o644))

	s := NewService(nil, store, nil, nil, thumbs, nil, nil, testConfig(), &testLogger{})

	url, usedFallback := s.resolveThumbnail(context.Background(), "videos/abc.mp4", thumbnailResult{path: framePath})
	assert.Equal(t, "https://images.example.com/stock.jpeg", url)
	assert.False(t, usedFallback)
}

func TestResolveThumbnail_SuccessfulUpload(t *testing.T) {
	store := new(MockMediaStore)
	thumbs := new(MockThumbnailer)
	store.On("PutThumbnail", mock.Anything, "thumbnails/abc.jpg", mock.Anything, mock.Anything, "image/jpeg").
		Return(PutResult{URL: "https://cdn.example.com/thumbnails/abc.jpg"}, nil)

	framePath := filepath.Join(t.TempDir(), "frame.jpg")
	assert.NoError(t, os.WriteFile(framePath, []byte("jpegdata"), 0o644))

	s := NewService(nil, store, nil, nil, thumbs, nil, nil, testConfig(), &testLogger{})

	url, usedFallback := s.resolveThumbnail(context.Background(), "videos/abc.mp4", thumbnailResult{path: framePath})
	assert.Equal(t, "https://cdn.example.com/thumbnails/abc.jpg", url)
	assert.False(t, usedFallback)
	assert.NoFileExists(t, framePath)
}

func TestClassifyPersistenceError(t *testing.T) {
	authErr := classifyPersistenceError("insert failed", &pgconn.PgError{Code: "42501"})
	var persistenceErr *errors.PersistenceError
	assert.True(t, stderrors.As(authErr, &persistenceErr))
	assert.Equal(t, errors.PersistenceAuthorization, persistenceErr.Category)

	authErr = classifyPersistenceError("insert failed", &pgconn.PgError{Code: "28000"})
	assert.True(t, stderrors.As(authErr, &persistenceErr))
	assert.Equal(t, errors.PersistenceAuthorization, persistenceErr.Category)

	genericErr := classifyPersistenceError("insert failed", stderrors.New("connection reset"))
	assert.True(t, stderrors.As(genericErr, &persistenceErr))
	assert.Equal(t, errors.PersistenceGeneric, persistenceErr.Category)
}

func TestStorageKey_Shape(t *testing.T) {
	key := storageKey(".mp4")
	assert.Regexp(t, regexp.MustCompile(`^videos/\d+-[0-9a-f]{8}\.mp4$`), key)

	// Two keys generated back to back must not collide
	assert.NotEqual(t, key, storageKey(".mp4"))
}

func TestThumbnailKey_DerivedFromMediaKey(t *testing.T) {
	assert.Equal(t, "thumbnails/1700000000000-abcd1234.jpg", thumbnailKey("videos/1700000000000-abcd1234.mp4"))
}

func TestContentTypeForExt(t *testing.T) {
	assert.Equal(t, "video/mp4", contentTypeForExt(".mp4"))
	assert.Equal(t, "video/quicktime", contentTypeForExt(".mov"))
	assert.Equal(t, "application/octet-stream", contentTypeForExt(".xyz"))
}
