package errors

// Error message constants
const (
	ErrMsgFileSize      = "File size exceeds maximum allowed size"
	ErrMsgFileType      = "File type not allowed"
	ErrMsgTitleRequired = "Title is required"
	ErrMsgPremiumPrice  = "Premium content requires a positive price"
	ErrMsgMetadataWait  = "Timed out waiting for media metadata"
)
