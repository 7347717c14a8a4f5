package http

import (
	"net/http"

	"github.com/edulearn/platform/internal/errors"
	"github.com/gin-gonic/gin"
)

// responseHandler implements the ResponseHandler interface
type responseHandler struct {
	logger Logger
}

// NewResponseHandler creates a new instance of ResponseHandler
func NewResponseHandler(logger Logger) ResponseHandler {
	return &responseHandler{
		logger: logger,
	}
}

// SuccessResponse sends a success response with optional data and message
func (h *responseHandler) SuccessResponse(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse sends an error response with status code, error code, and message
func (h *responseHandler) ErrorResponse(c *gin.Context, status int, code, message string, err error) {
	if err != nil {
		h.logger.LogError(err, message)
	}
	h.fail(c, status, code, message)
}

// NotFoundResponse sends a not found error response
func (h *responseHandler) NotFoundResponse(c *gin.Context, message string) {
	h.fail(c, http.StatusNotFound, errors.CodeNotFound, message)
}

// UnauthorizedResponse sends an unauthorized error response
func (h *responseHandler) UnauthorizedResponse(c *gin.Context, message string) {
	h.fail(c, http.StatusUnauthorized, errors.CodeUnauthorized, message)
}

// ForbiddenResponse sends a forbidden error response
func (h *responseHandler) ForbiddenResponse(c *gin.Context, message string) {
	h.fail(c, http.StatusForbidden, errors.CodeForbidden, message)
}

// InternalErrorResponse sends an internal server error response
func (h *responseHandler) InternalErrorResponse(c *gin.Context, message string, err error) {
	if err != nil {
		h.logger.LogError(err, message)
	}
	h.fail(c, http.StatusInternalServerError, errors.CodeInternal, message)
}

// fail writes the error envelope, echoing the request id when middleware set one
func (h *responseHandler) fail(c *gin.Context, status int, code, message string) {
	c.JSON(status, Response{
		Success: false,
		Error: &Error{
			Code:      code,
			Message:   message,
			RequestID: c.GetString("request_id"),
		},
	})
}
