package video

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/edulearn/platform/internal/auth"
	"github.com/edulearn/platform/internal/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VideoHandler handles HTTP requests for video operations
type VideoHandler struct {
	app *App
}

// NewVideoHandler creates a new VideoHandler instance
func NewVideoHandler(app *App) *VideoHandler {
	return &VideoHandler{app: app}
}

// HandleUpload accepts a multipart upload and runs it through the pipeline
func (h *VideoHandler) HandleUpload(c *gin.Context) {
	requestID := c.GetString("request_id")

	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		h.app.ResponseHandler.ErrorResponse(c, http.StatusUnauthorized, errors.CodeUnauthorized, "Authentication required", nil)
		return
	}

	file, fileHeader, err := c.Request.FormFile("video")
	if err != nil {
		h.app.Logger.LogInfo("No video file received", map[string]interface{}{
			"request_id": requestID,
			"error":      err.Error(),
		})
		h.app.ResponseHandler.ErrorResponse(c, http.StatusBadRequest, errors.CodeNoFile, "No video file received", err)
		return
	}
	defer file.Close()

	input := UploadInput{
		Reader:      file,
		Filename:    fileHeader.Filename,
		Size:        fileHeader.Size,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Subject:     c.PostForm("subject"),
		GradeLevel:  c.PostForm("grade_level"),
		Tags:        c.PostForm("tags"),
		UploaderID:  identity.UserID,
	}

	if premium := c.PostForm("is_premium"); premium == "true" {
		input.IsPremium = true
		if priceStr := c.PostForm("premium_price"); priceStr != "" {
			price, err := strconv.ParseFloat(priceStr, 64)
			if err != nil {
				h.app.ResponseHandler.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Invalid premium price", err)
				return
			}
			input.PremiumPrice = &price
		}
	}

	result, err := h.app.Video.Upload(c.Request.Context(), input)
	if err != nil {
		h.respondUploadError(c, requestID, fileHeader.Filename, err)
		return
	}

	response := UploadResponse{
		ID:           result.Video.ID.String(),
		Title:        result.Video.Title,
		VideoURL:     result.Video.VideoURL,
		ThumbnailURL: result.Video.ThumbnailURL,
		Duration:     result.Video.Duration,
		ViewCount:    result.Video.ViewCount,
		UsedFallback: result.UsedFallback,
	}
	h.app.ResponseHandler.SuccessResponse(c, response, "Video uploaded successfully")
}

// respondUploadError maps pipeline errors onto stable API error codes
func (h *VideoHandler) respondUploadError(c *gin.Context, requestID, filename string, err error) {
	fields := map[string]interface{}{
		"request_id": requestID,
		"filename":   filename,
		"error":      err.Error(),
	}

	var validationErr *errors.ValidationError
	var metadataErr *errors.MetadataError
	var storageErr *errors.StorageError
	var persistenceErr *errors.PersistenceError

	switch {
	case stderrors.As(err, &validationErr):
		h.app.Logger.LogInfo("Video upload validation failed", fields)
		h.app.ResponseHandler.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, validationErr.Message, err)
	case stderrors.As(err, &metadataErr):
		h.app.Logger.LogInfo("Media metadata unavailable", fields)
		h.app.ResponseHandler.ErrorResponse(c, http.StatusUnprocessableEntity, errors.CodeMetadata, metadataErr.Message, err)
	case stderrors.As(err, &storageErr):
		h.app.Logger.LogInfo("Media upload failed", fields)
		h.app.ResponseHandler.ErrorResponse(c, http.StatusBadGateway, errors.CodeStorage, "Failed to store the media file", err)
	case stderrors.As(err, &persistenceErr):
		h.app.Logger.LogInfo("Video record persistence failed", fields)
		switch persistenceErr.Category {
		case errors.PersistenceAuthorization:
			h.app.ResponseHandler.ErrorResponse(c, http.StatusForbidden, errors.CodePersistenceAuth, "The database rejected this write for your identity", err)
		case errors.PersistenceIdentityMismatch:
			h.app.ResponseHandler.ErrorResponse(c, http.StatusForbidden, errors.CodeIdentityMismatch, "This record belongs to a different account", err)
		default:
			h.app.ResponseHandler.ErrorResponse(c, http.StatusInternalServerError, errors.CodePersistence, "Failed to save the video record", err)
		}
	default:
		h.app.Logger.LogInfo("Video upload failed", fields)
		h.app.ResponseHandler.ErrorResponse(c, http.StatusInternalServerError, errors.CodeUploadFailed, "Video upload failed", err)
	}
}

// HandleList returns a page of the video catalog
func (h *VideoHandler) HandleList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	records, total, err := h.app.Video.ListVideos(c.Request.Context(), page, limit)
	if err != nil {
		h.app.ResponseHandler.ErrorResponse(c, http.StatusInternalServerError, errors.CodePersistence, "Failed to list videos", err)
		return
	}

	response := VideoListResponse{
		Videos: make([]VideoResponse, 0, len(records)),
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
	for i := range records {
		response.Videos = append(response.Videos, toVideoResponse(&records[i]))
	}

	h.app.ResponseHandler.SuccessResponse(c, response, "")
}

// HandleGet returns a single video
func (h *VideoHandler) HandleGet(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.app.ResponseHandler.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Invalid video id", err)
		return
	}

	record, err := h.app.Video.GetVideo(c.Request.Context(), id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			h.app.ResponseHandler.NotFoundResponse(c, "Video not found")
			return
		}
		h.app.ResponseHandler.ErrorResponse(c, http.StatusInternalServerError, errors.CodePersistence, "Failed to load video", err)
		return
	}

	h.app.ResponseHandler.SuccessResponse(c, toVideoResponse(record), "")
}

// HandleView bumps the view counter for a video
func (h *VideoHandler) HandleView(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.app.ResponseHandler.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Invalid video id", err)
		return
	}

	count, err := h.app.Video.IncrementViewCount(c.Request.Context(), id)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			h.app.ResponseHandler.NotFoundResponse(c, "Video not found")
			return
		}
		h.app.ResponseHandler.ErrorResponse(c, http.StatusInternalServerError, errors.CodePersistence, "Failed to record view", err)
		return
	}

	h.app.ResponseHandler.SuccessResponse(c, gin.H{"viewCount": count}, "")
}

// HandleUpdate applies owner edits to a video
func (h *VideoHandler) HandleUpdate(c *gin.Context) {
	identity, ok := auth.IdentityFromContext(c)
	if !ok {
		h.app.ResponseHandler.ErrorResponse(c, http.StatusUnauthorized, errors.CodeUnauthorized, "Authentication required", nil)
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.app.ResponseHandler.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Invalid video id", err)
		return
	}

	var req VideoUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.app.ResponseHandler.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Invalid request body", err)
		return
	}

	record, err := h.app.Video.UpdateVideo(c.Request.Context(), id, identity.UserID, req)
	if err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			h.app.ResponseHandler.NotFoundResponse(c, "Video not found")
			return
		}
		h.respondUploadError(c, c.GetString("request_id"), "", err)
		return
	}

	h.app.ResponseHandler.SuccessResponse(c, toVideoResponse(record), "Video updated")
}

// HandleProgress returns the cached progress snapshot for an upload attempt
func (h *VideoHandler) HandleProgress(c *gin.Context) {
	attemptID := c.Param("attemptId")
	if attemptID == "" {
		h.app.ResponseHandler.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Missing attempt id", nil)
		return
	}

	update, err := h.app.Video.Progress(c.Request.Context(), attemptID)
	if err != nil {
		h.app.ResponseHandler.NotFoundResponse(c, "No progress recorded for this attempt")
		return
	}

	h.app.ResponseHandler.SuccessResponse(c, update, "")
}
