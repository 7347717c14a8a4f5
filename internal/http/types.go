package http

// Response is the envelope every API endpoint returns
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

// Error carries a stable machine-readable code alongside the message. The
// request id set by RequestIDMiddleware is echoed so a client-reported
// failure can be matched to server logs.
type Error struct {
	Code      string `json:"code,omitempty"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}
