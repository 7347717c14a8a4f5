package speech

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/edulearn/platform/internal/errors"
	"github.com/edulearn/platform/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ResponseHandler interface for HTTP responses
type ResponseHandler interface {
	SuccessResponse(c *gin.Context, data interface{}, message string)
	ErrorResponse(c *gin.Context, status int, code, message string, err error)
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
}

// Handler handles HTTP requests for narration synthesis
type Handler struct {
	client    *Client
	store     storage.ObjectStore
	responses ResponseHandler
	logger    Logger
}

// NewHandler creates a new speech handler
func NewHandler(client *Client, store storage.ObjectStore, responses ResponseHandler, logger Logger) *Handler {
	return &Handler{
		client:    client,
		store:     store,
		responses: responses,
		logger:    logger,
	}
}

// HandleVoices lists available narration voices
func (h *Handler) HandleVoices(c *gin.Context) {
	voices, err := h.client.Voices(c.Request.Context())
	if err != nil {
		h.responses.ErrorResponse(c, http.StatusBadGateway, errors.CodeSpeechUnavailable, "Failed to list narration voices", err)
		return
	}
	h.responses.SuccessResponse(c, gin.H{"voices": voices}, "")
}

// HandleSynthesize converts text to audio, stores it, and returns its URL
func (h *Handler) HandleSynthesize(c *gin.Context) {
	var req SynthesizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responses.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Invalid request body", err)
		return
	}

	audio, err := h.client.Synthesize(c.Request.Context(), req.Text, req.VoiceID)
	if err != nil {
		h.responses.ErrorResponse(c, http.StatusBadGateway, errors.CodeSpeechUnavailable, "Narration synthesis failed", err)
		return
	}

	key := fmt.Sprintf("narration/%d-%s.mp3", time.Now().UnixMilli(), uuid.NewString()[:8])
	url, err := h.store.Put(c.Request.Context(), key, bytes.NewReader(audio), int64(len(audio)), storage.PutOptions{
		ContentType: "audio/mpeg",
	})
	if err != nil {
		h.responses.ErrorResponse(c, http.StatusBadGateway, errors.CodeStorage, "Failed to store narration audio", err)
		return
	}

	h.logger.LogInfo("Narration synthesized", map[string]interface{}{
		"key":   key,
		"bytes": len(audio),
	})
	h.responses.SuccessResponse(c, SynthesizeResponse{AudioURL: url}, "")
}
