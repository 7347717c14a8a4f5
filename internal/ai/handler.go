package ai

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/edulearn/platform/internal/errors"
	"github.com/gin-gonic/gin"
)

// ResponseHandler interface for HTTP responses
type ResponseHandler interface {
	SuccessResponse(c *gin.Context, data interface{}, message string)
	ErrorResponse(c *gin.Context, status int, code, message string, err error)
}

// Handler handles HTTP requests for the AI assist endpoints
type Handler struct {
	optimizer *Optimizer
	client    *Client
	responses ResponseHandler
	logger    Logger
}

// NewHandler creates a new AI handler
func NewHandler(optimizer *Optimizer, client *Client, responses ResponseHandler, logger Logger) *Handler {
	return &Handler{
		optimizer: optimizer,
		client:    client,
		responses: responses,
		logger:    logger,
	}
}

// HandleOptimize refines video metadata. The response always carries usable
// metadata; when the assistant is unavailable the originals come back with
// optimized=false.
func (h *Handler) HandleOptimize(c *gin.Context) {
	var input OptimizationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.responses.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Invalid request body", err)
		return
	}

	result, err := h.optimizer.Optimize(c.Request.Context(), input)
	if err != nil {
		var optErr *errors.OptimizationError
		if stderrors.As(err, &optErr) {
			h.responses.SuccessResponse(c, gin.H{
				"metadata":  result,
				"optimized": false,
			}, "Optimization unavailable, returning original metadata")
			return
		}
		h.responses.ErrorResponse(c, http.StatusInternalServerError, errors.CodeOptimization, "Metadata optimization failed", err)
		return
	}

	h.responses.SuccessResponse(c, gin.H{
		"metadata":  result,
		"optimized": true,
	}, "")
}

// HandleChat answers a tutoring conversation
func (h *Handler) HandleChat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.responses.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "Invalid request body", err)
		return
	}
	if len(req.Messages) == 0 {
		h.responses.ErrorResponse(c, http.StatusBadRequest, errors.CodeValidation, "At least one message is required", nil)
		return
	}

	messages := make([]ChatMessage, 0, len(req.Messages)+1)
	messages = append(messages, ChatMessage{Role: "system", Content: tutorSystemPrompt(req.Subject)})
	messages = append(messages, req.Messages...)

	reply, err := h.client.Complete(c.Request.Context(), messages)
	if err != nil {
		h.responses.ErrorResponse(c, http.StatusBadGateway, errors.CodeAIUnavailable, "The tutoring assistant is unavailable", err)
		return
	}

	h.responses.SuccessResponse(c, ChatResponse{Reply: reply}, "")
}

func tutorSystemPrompt(subject string) string {
	base := "You are a patient, encouraging tutor on an educational video platform. " +
		"Explain concepts step by step and check for understanding."
	if subject == "" {
		return base
	}
	return fmt.Sprintf("%s The student is currently studying %s.", base, subject)
}
