package ai

// ChatMessage is a single turn in a chat-completion conversation
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Config represents chat-completion client settings
type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Referer string
}

// completionRequest is the chat-completions wire request
type completionRequest struct {
	Model            string        `json:"model"`
	Messages         []ChatMessage `json:"messages"`
	MaxTokens        int           `json:"max_tokens"`
	Temperature      float64       `json:"temperature"`
	TopP             float64       `json:"top_p"`
	FrequencyPenalty float64       `json:"frequency_penalty"`
	PresencePenalty  float64       `json:"presence_penalty"`
	Stream           bool          `json:"stream"`
}

// completionResponse is the chat-completions wire response
type completionResponse struct {
	Choices []struct {
		Message ChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// OptimizationInput carries the metadata the assistant refines
type OptimizationInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	GradeLevel  string `json:"gradeLevel"`
	Tags        string `json:"tags"`
}

// OptimizationResult is the refined metadata. Fields the assistant did not
// produce keep the caller's original values.
type OptimizationResult struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Tags        string `json:"tags"`
}

// ChatRequest is the tutoring chat request body
type ChatRequest struct {
	Messages []ChatMessage `json:"messages" binding:"required"`
	Subject  string        `json:"subject"`
}

// ChatResponse is the tutoring chat response body
type ChatResponse struct {
	Reply string `json:"reply"`
}
