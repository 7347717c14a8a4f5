package speech

// Config represents text-to-speech client settings
type Config struct {
	BaseURL        string
	APIKey         string
	ModelID        string
	DefaultVoiceID string
}

// Voice describes an available synthesis voice
type Voice struct {
	VoiceID  string `json:"voice_id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// voicesResponse is the voice-listing wire response
type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

// synthesisRequest is the text-to-speech wire request
type synthesisRequest struct {
	Text          string        `json:"text"`
	ModelID       string        `json:"model_id"`
	VoiceSettings voiceSettings `json:"voice_settings"`
}

type voiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

// SynthesizeRequest is the narration endpoint request body
type SynthesizeRequest struct {
	Text    string `json:"text" binding:"required"`
	VoiceID string `json:"voiceId"`
}

// SynthesizeResponse is the narration endpoint response body
type SynthesizeResponse struct {
	AudioURL string `json:"audioUrl"`
}
