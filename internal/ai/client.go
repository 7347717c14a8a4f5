package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/edulearn/platform/internal/errors"
)

// Client talks to an OpenAI-compatible chat-completions endpoint
type Client struct {
	config     Config
	httpClient *http.Client
	logger     Logger
}

// NewClient creates a chat-completion client
func NewClient(config Config, timeout time.Duration, logger Logger) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Complete sends a conversation and returns the assistant's reply
func (c *Client) Complete(ctx context.Context, messages []ChatMessage) (string, error) {
	reqBody := completionRequest{
		Model:            c.config.Model,
		Messages:         messages,
		MaxTokens:        1000,
		Temperature:      0.7,
		TopP:             0.9,
		FrequencyPenalty: 0.1,
		PresencePenalty:  0.1,
		Stream:           false,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", errors.NewOptimizationError("failed to encode completion request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.config.BaseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", errors.NewOptimizationError("failed to build completion request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	if c.config.Referer != "" {
		req.Header.Set("HTTP-Referer", c.config.Referer)
	}
	req.Header.Set("X-Title", "EduLearn Platform")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.NewOptimizationError("completion request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewOptimizationError("failed to read completion response", err)
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.LogWarn("Chat completion returned non-200 status", map[string]interface{}{
			"status": resp.StatusCode,
		})
		return "", errors.NewOptimizationError(
			fmt.Sprintf("completion endpoint returned status %d", resp.StatusCode), nil)
	}

	var parsed completionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", errors.NewOptimizationError("failed to decode completion response", err)
	}
	if parsed.Error != nil {
		return "", errors.NewOptimizationError(parsed.Error.Message, nil)
	}
	if len(parsed.Choices) == 0 {
		return "", errors.NewOptimizationError("completion response contained no choices", nil)
	}

	return parsed.Choices[0].Message.Content, nil
}

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogWarn(message string, fields map[string]interface{})
	LogError(err error, msg string) error
}
