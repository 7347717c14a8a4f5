package errors

// Stable machine-readable codes carried in API error envelopes. Clients key
// off these rather than the human-readable message.
const (
	CodeValidation        = "ERR_VALIDATION"
	CodeNoFile            = "ERR_NO_FILE"
	CodeMetadata          = "ERR_METADATA"
	CodeStorage           = "ERR_STORAGE"
	CodePersistence       = "ERR_PERSISTENCE"
	CodePersistenceAuth   = "ERR_PERSISTENCE_AUTH"
	CodeIdentityMismatch  = "ERR_IDENTITY_MISMATCH"
	CodeOptimization      = "ERR_OPTIMIZATION"
	CodeAIUnavailable     = "ERR_AI_UNAVAILABLE"
	CodeSpeechUnavailable = "ERR_SPEECH_UNAVAILABLE"
	CodeUploadFailed      = "UPLOAD_FAILED"
	CodeNotReady          = "NOT_READY"
	CodeNotFound          = "NOT_FOUND"
	CodeUnauthorized      = "UNAUTHORIZED"
	CodeForbidden         = "FORBIDDEN"
	CodeInternal          = "INTERNAL_ERROR"
)
