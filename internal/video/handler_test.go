package video

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/edulearn/platform/internal/auth"
	"github.com/edulearn/platform/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockVideoService is a mock implementation of VideoService
type MockVideoService struct {
	mock.Mock
}

func (m *MockVideoService) Upload(ctx context.Context, input UploadInput) (*UploadResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*UploadResult), args.Error(1)
}

func (m *MockVideoService) GetVideo(ctx context.Context, id uuid.UUID) (*Video, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Video), args.Error(1)
}

func (m *MockVideoService) ListVideos(ctx context.Context, page, limit int) ([]Video, int64, error) {
	args := m.Called(ctx, page, limit)
	return args.Get(0).([]Video), args.Get(1).(int64), args.Error(2)
}

func (m *MockVideoService) IncrementViewCount(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVideoService) UpdateVideo(ctx context.Context, id uuid.UUID, callerID uuid.UUID, req VideoUpdateRequest) (*Video, error) {
	args := m.Called(ctx, id, callerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Video), args.Error(1)
}

func (m *MockVideoService) Progress(ctx context.Context, attemptID string) (*ProgressUpdate, error) {
	args := m.Called(ctx, attemptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ProgressUpdate), args.Error(1)
}

// jsonResponseHandler writes plain JSON so tests can inspect status and body
type jsonResponseHandler struct{}

func (h *jsonResponseHandler) SuccessResponse(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, gin.H{"data": data, "message": message})
}

func (h *jsonResponseHandler) ErrorResponse(c *gin.Context, status int, code, message string, err error) {
	c.JSON(status, gin.H{"code": code, "message": message})
}

func (h *jsonResponseHandler) NotFoundResponse(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, gin.H{"code": "NOT_FOUND", "message": message})
}

func (h *jsonResponseHandler) ForbiddenResponse(c *gin.Context, message string) {
	c.JSON(http.StatusForbidden, gin.H{"code": "FORBIDDEN", "message": message})
}

func setupHandlerTest(service VideoService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	app := &App{
		Config:          testConfig(),
		Logger:          &testLogger{},
		Video:           service,
		ResponseHandler: &jsonResponseHandler{},
	}
	handler := NewVideoHandler(app)

	router := gin.New()
	identity := auth.Identity{UserID: uuid.New(), Email: "teacher@example.com", Role: auth.RoleTeacher}
	withIdentity := func(c *gin.Context) {
		c.Set("identity", identity)
		c.Next()
	}

	router.POST("/videos", withIdentity, handler.HandleUpload)
	router.POST("/videos/anon", handler.HandleUpload)
	router.GET("/videos", handler.HandleList)
	router.GET("/videos/:id", handler.HandleGet)
	router.POST("/videos/:id/view", handler.HandleView)
	router.GET("/videos/progress/:attemptId", handler.HandleProgress)
	return router
}

func multipartUpload(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := new(bytes.Buffer)
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("video", "lesson.mp4")
	assert.NoError(t, err)
	_, err = part.Write([]byte("fake video data"))
	assert.NoError(t, err)
	for k, v := range fields {
		assert.NoError(t, writer.WriteField(k, v))
	}
	assert.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestHandleUpload_Success(t *testing.T) {
	service := new(MockVideoService)
	published := &Video{
		ID:           uuid.New(),
		Title:        "Introduction to Fractions",
		VideoURL:     "https://cdn.example.com/videos/abc.mp4",
		ThumbnailURL: "https://cdn.example.com/thumbnails/abc.jpg",
		Duration:     125,
		ViewCount:    0,
	}
	service.On("Upload", mock.Anything, mock.MatchedBy(func(input UploadInput) bool {
		return input.Title == "Introduction to Fractions" && input.Filename == "lesson.mp4"
	})).Return(&UploadResult{Video: published, AttemptID: "attempt-1"}, nil)

	router := setupHandlerTest(service)
	body, contentType := multipartUpload(t, map[string]string{"title": "Introduction to Fractions"})

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data UploadResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, published.ID.String(), resp.Data.ID)
	assert.NotEmpty(t, resp.Data.VideoURL)
	assert.NotEmpty(t, resp.Data.ThumbnailURL)
	assert.Equal(t, int64(0), resp.Data.ViewCount)
	assert.False(t, resp.Data.UsedFallback)
	service.AssertExpectations(t)
}

func TestHandleUpload_SurfacesFallbackFlag(t *testing.T) {
	service := new(MockVideoService)
	published := &Video{
		ID:           uuid.New(),
		Title:        "Offline Lesson",
		VideoURL:     "https://videos.example.com/sample.mp4",
		ThumbnailURL: "https://images.example.com/stock.jpeg",
	}
	service.On("Upload", mock.Anything, mock.Anything).
		Return(&UploadResult{Video: published, UsedFallback: true, AttemptID: "attempt-2"}, nil)

	router := setupHandlerTest(service)
	body, contentType := multipartUpload(t, map[string]string{"title": "Offline Lesson"})

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data UploadResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.UsedFallback)
}

func TestHandleUpload_RequiresIdentity(t *testing.T) {
	service := new(MockVideoService)
	router := setupHandlerTest(service)
	body, contentType := multipartUpload(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/videos/anon", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	service.AssertNotCalled(t, "Upload")
}

func TestHandleUpload_ValidationErrorMapsTo400(t *testing.T) {
	service := new(MockVideoService)
	service.On("Upload", mock.Anything, mock.Anything).
		Return(nil, errors.NewValidationError(errors.CodeUnsupportedFormat, "file", "unsupported format"))

	router := setupHandlerTest(service)
	body, contentType := multipartUpload(t, map[string]string{"title": "Bad Format"})

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_VALIDATION")
}

func TestHandleUpload_AuthorizationPersistenceMapsTo403(t *testing.T) {
	service := new(MockVideoService)
	service.On("Upload", mock.Anything, mock.Anything).
		Return(nil, errors.NewPersistenceError(errors.PersistenceAuthorization, "row rejected", nil))

	router := setupHandlerTest(service)
	body, contentType := multipartUpload(t, map[string]string{"title": "Denied"})

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_PERSISTENCE_AUTH")
}

func TestHandleUpload_MetadataErrorMapsTo422(t *testing.T) {
	service := new(MockVideoService)
	service.On("Upload", mock.Anything, mock.Anything).
		Return(nil, errors.NewMetadataError("Timed out waiting for media metadata", nil))

	router := setupHandlerTest(service)
	body, contentType := multipartUpload(t, map[string]string{"title": "Slow Probe"})

	req := httptest.NewRequest(http.MethodPost, "/videos", body)
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "ERR_METADATA")
}

func TestHandleView_ReturnsNewCount(t *testing.T) {
	service := new(MockVideoService)
	id := uuid.New()
	service.On("IncrementViewCount", mock.Anything, id).Return(int64(7), nil)

	router := setupHandlerTest(service)
	req := httptest.NewRequest(http.MethodPost, "/videos/"+id.String()+"/view", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"viewCount":7`)
}

func TestHandleGet_InvalidID(t *testing.T) {
	service := new(MockVideoService)
	router := setupHandlerTest(service)

	req := httptest.NewRequest(http.MethodGet, "/videos/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "GetVideo")
}

func TestHandleProgress_ReturnsSnapshot(t *testing.T) {
	service := new(MockVideoService)
	service.On("Progress", mock.Anything, "attempt-1").
		Return(&ProgressUpdate{AttemptID: "attempt-1", Phase: PhaseUploadingMedia, Percent: 33}, nil)

	router := setupHandlerTest(service)
	req := httptest.NewRequest(http.MethodGet, "/videos/progress/attempt-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "uploading-media")
	assert.Contains(t, w.Body.String(), `"percent":33`)
}
