package video

import (
	"fmt"
	"strings"

	"github.com/edulearn/platform/internal/errors"
)

// validateUploadInput enforces the pre-flight rules that must reject an
// attempt before any network call: title presence and bounds, description
// bounds, the premium-price invariant, and the file policy.
func (s *Service) validateUploadInput(input *UploadInput) error {
	input.Title = strings.TrimSpace(input.Title)

	// Auto-fill the title from the filename when the form left it empty
	if input.Title == "" {
		base := input.Filename
		if idx := strings.LastIndex(base, "."); idx > 0 {
			base = base[:idx]
		}
		input.Title = strings.TrimSpace(base)
	}

	if input.Title == "" {
		return errors.NewValidationError(errors.CodeTitleRequired, "title", errors.ErrMsgTitleRequired)
	}
	if len(input.Title) < s.config.MinTitleLength {
		return errors.NewValidationError(errors.CodeTitleLength, "title",
			fmt.Sprintf("title must be at least %d characters", s.config.MinTitleLength))
	}
	if len(input.Title) > s.config.MaxTitleLength {
		return errors.NewValidationError(errors.CodeTitleLength, "title",
			fmt.Sprintf("title must not exceed %d characters", s.config.MaxTitleLength))
	}

	if len(input.Description) > s.config.MaxDescLength {
		return errors.NewValidationError(errors.CodeDescriptionLength, "description",
			fmt.Sprintf("description must not exceed %d characters", s.config.MaxDescLength))
	}

	if input.IsPremium && (input.PremiumPrice == nil || *input.PremiumPrice <= 0) {
		return errors.NewValidationError(errors.CodePremiumPriceRequired, "premiumPrice", errors.ErrMsgPremiumPrice)
	}

	return s.validator.Validate(input.Filename, input.Size)
}
