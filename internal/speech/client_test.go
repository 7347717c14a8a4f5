package speech

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestClient(baseURL string) *Client {
	return NewClient(Config{
		BaseURL:        baseURL,
		APIKey:         "test-key",
		ModelID:        "test-model",
		DefaultVoiceID: "default-voice",
	}, 5*time.Second)
}

func TestVoices_ListsAvailableVoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/voices", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		assert.NoError(t, json.NewEncoder(w).Encode(map[string]interface{}{
			"voices": []map[string]string{
				{"voice_id": "v1", "name": "Clara", "category": "narration"},
				{"voice_id": "v2", "name": "Sam", "category": "conversational"},
			},
		}))
	}))
	defer server.Close()

	voices, err := newTestClient(server.URL).Voices(context.Background())
	assert.NoError(t, err)
	assert.Len(t, voices, 2)
	assert.Equal(t, "v1", voices[0].VoiceID)
	assert.Equal(t, "Clara", voices[0].Name)
}

func TestSynthesize_SendsVoiceSettings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text-to-speech/custom-voice", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))

		var req synthesisRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "hello class", req.Text)
		assert.Equal(t, "test-model", req.ModelID)
		assert.Equal(t, 0.5, req.VoiceSettings.Stability)
		assert.Equal(t, 0.5, req.VoiceSettings.SimilarityBoost)

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	audio, err := newTestClient(server.URL).Synthesize(context.Background(), "hello class", "custom-voice")
	assert.NoError(t, err)
	assert.Equal(t, []byte("mp3-bytes"), audio)
}

func TestSynthesize_EmptyVoiceUsesDefault(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text-to-speech/default-voice", r.URL.Path)
		_, _ = w.Write([]byte("mp3-bytes"))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Synthesize(context.Background(), "hello", "")
	assert.NoError(t, err)
}

func TestSynthesize_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).Synthesize(context.Background(), "hello", "v1")
	assert.Error(t, err)
}

func TestSynthesize_EmptyAudio(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer server.Close()

	_, err := newTestClient(server.URL).Synthesize(context.Background(), "hello", "v1")
	assert.Error(t, err)
}
