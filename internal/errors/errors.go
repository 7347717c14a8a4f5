package errors

import "fmt"

// Error method implementation for ValidationError
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Error method implementation for StorageError
func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("storage %s: %s: %v", e.Op, e.Message, e.Cause)
	}
	return fmt.Sprintf("storage %s: %s", e.Op, e.Message)
}

func (e *StorageError) Unwrap() error { return e.Cause }

// Error method implementation for PersistenceError
func (e *PersistenceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s (%s): %v", e.Message, e.Category, e.Cause)
	}
	return fmt.Sprintf("%s (%s)", e.Message, e.Category)
}

func (e *PersistenceError) Unwrap() error { return e.Cause }

// Error method implementation for MetadataError
func (e *MetadataError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *MetadataError) Unwrap() error { return e.Cause }

// Error method implementation for OptimizationError
func (e *OptimizationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *OptimizationError) Unwrap() error { return e.Cause }

// NewValidationError creates a new ValidationError
func NewValidationError(code ValidationCode, field, message string) *ValidationError {
	return &ValidationError{
		Code:    code,
		Field:   field,
		Message: message,
	}
}

// NewStorageError creates a new StorageError
func NewStorageError(op, message string, cause error) *StorageError {
	return &StorageError{
		Op:      op,
		Message: message,
		Cause:   cause,
	}
}

// NewPersistenceError creates a new PersistenceError
func NewPersistenceError(category PersistenceCategory, message string, cause error) *PersistenceError {
	return &PersistenceError{
		Category: category,
		Message:  message,
		Cause:    cause,
	}
}

// NewMetadataError creates a new MetadataError
func NewMetadataError(message string, cause error) *MetadataError {
	return &MetadataError{
		Message: message,
		Cause:   cause,
	}
}

// NewOptimizationError creates a new OptimizationError
func NewOptimizationError(message string, cause error) *OptimizationError {
	return &OptimizationError{
		Message: message,
		Cause:   cause,
	}
}
