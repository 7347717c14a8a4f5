package errors

// ValidationCode identifies the specific pre-flight rejection reason
type ValidationCode string

const (
	CodeUnsupportedFormat    ValidationCode = "UNSUPPORTED_FORMAT"
	CodeFileTooLarge         ValidationCode = "FILE_TOO_LARGE"
	CodeTitleRequired        ValidationCode = "TITLE_REQUIRED"
	CodeTitleLength          ValidationCode = "TITLE_LENGTH"
	CodeDescriptionLength    ValidationCode = "DESCRIPTION_LENGTH"
	CodePremiumPriceRequired ValidationCode = "PREMIUM_PRICE_REQUIRED"
)

// PersistenceCategory classifies database insert/update failures so callers
// can distinguish a caller-identity problem from a transient fault
type PersistenceCategory string

const (
	PersistenceAuthorization    PersistenceCategory = "authorization"
	PersistenceIdentityMismatch PersistenceCategory = "identity_mismatch"
	PersistenceGeneric          PersistenceCategory = "generic"
)

// ValidationError represents a local, pre-flight rejection. It never follows
// a network call.
type ValidationError struct {
	Code    ValidationCode
	Field   string
	Message string
}

// StorageError represents a failure uploading a blob to object storage
type StorageError struct {
	Op      string
	Message string
	Cause   error
}

// PersistenceError represents a failure writing to the relational store
type PersistenceError struct {
	Category PersistenceCategory
	Message  string
	Cause    error
}

// MetadataError represents a failure (or timeout) probing media metadata
type MetadataError struct {
	Message string
	Cause   error
}

// OptimizationError signals that the AI assist was unavailable or returned a
// malformed response. It is soft: callers keep their original field values.
type OptimizationError struct {
	Message string
	Cause   error
}
