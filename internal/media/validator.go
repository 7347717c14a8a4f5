package media

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/edulearn/platform/internal/errors"
)

// Validator checks candidate files against the upload policy before any
// network call is made. It is pure and synchronous.
type Validator struct {
	allowed map[string]struct{}
	maxSize int64
}

// NewValidator creates a validator for the given extension set and size cap.
// Extensions are normalized to lowercase with a leading dot.
func NewValidator(allowedFormats []string, maxSize int64) *Validator {
	allowed := make(map[string]struct{}, len(allowedFormats))
	for _, format := range allowedFormats {
		ext := strings.ToLower(format)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		allowed[ext] = struct{}{}
	}
	return &Validator{
		allowed: allowed,
		maxSize: maxSize,
	}
}

// Validate returns nil for an acceptable file, or a typed ValidationError.
// A file with no extension is rejected as an unsupported format.
func (v *Validator) Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return errors.NewValidationError(errors.CodeUnsupportedFormat, "file",
			fmt.Sprintf("unsupported format: file %q has no extension", filename))
	}
	if _, ok := v.allowed[ext]; !ok {
		return errors.NewValidationError(errors.CodeUnsupportedFormat, "file",
			fmt.Sprintf("unsupported format %s, allowed: %s", ext, strings.Join(v.AllowedFormats(), ", ")))
	}

	if size > v.maxSize {
		return errors.NewValidationError(errors.CodeFileTooLarge, "file",
			fmt.Sprintf("file too large: maximum size is %dMB", v.maxSize/(1024*1024)))
	}

	return nil
}

// AllowedFormats returns the configured extension set, sorted
func (v *Validator) AllowedFormats() []string {
	formats := make([]string, 0, len(v.allowed))
	for ext := range v.allowed {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}
