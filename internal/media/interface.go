package media

// Logger interface for logging operations
type Logger interface {
	LogInfo(msg string, fields map[string]interface{})
	LogError(err error, msg string) error
	LogWarn(message string, fields map[string]interface{})
}
