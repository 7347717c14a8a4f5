package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to an ElevenLabs-compatible text-to-speech endpoint
type Client struct {
	config     Config
	httpClient *http.Client
}

// NewClient creates a text-to-speech client
func NewClient(config Config, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		config:     config,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Voices lists the synthesis voices available to the configured key
func (c *Client) Voices(ctx context.Context) ([]Voice, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.config.BaseURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build voices request: %w", err)
	}
	req.Header.Set("xi-api-key", c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("voices request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("voices endpoint returned status %d", resp.StatusCode)
	}

	var parsed voicesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode voices response: %w", err)
	}
	return parsed.Voices, nil
}

// Synthesize converts text to MPEG audio using the given voice. An empty
// voiceID falls back to the configured default.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if voiceID == "" {
		voiceID = c.config.DefaultVoiceID
	}

	payload, err := json.Marshal(synthesisRequest{
		Text:    text,
		ModelID: c.config.ModelID,
		VoiceSettings: voiceSettings{
			Stability:       0.5,
			SimilarityBoost: 0.5,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode synthesis request: %w", err)
	}

	url := fmt.Sprintf("%s/text-to-speech/%s", c.config.BaseURL, voiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build synthesis request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", c.config.APIKey)
	req.Header.Set("Accept", "audio/mpeg")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesis request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesis endpoint returned status %d", resp.StatusCode)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read synthesized audio: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("synthesis returned empty audio")
	}
	return audio, nil
}
