package handler

import (
	"errors"

	"github.com/duetmatch/duet/api/internal/model"
	"github.com/duetmatch/duet/api/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// Services that validate request bodies return ProblemDetails directly.
	var pd *model.ProblemDetails
	if errors.As(err, &pd) {
		return pd
	}

	switch {
	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrProfileNotFound):
		return model.NewNotFoundError("profile")
	case errors.Is(err, service.ErrQuestionNotFound):
		return model.NewNotFoundError("question")

	// ===== Validation Errors → 422 =====
	case errors.Is(err, service.ErrInvalidGender):
		return model.NewValidationError([]model.FieldError{{Field: "gender", Message: err.Error()}})
	case errors.Is(err, service.ErrInvalidCategory):
		return model.NewValidationError([]model.FieldError{{Field: "category", Message: err.Error()}})
	case errors.Is(err, service.ErrMandatoryUnanswered):
		return model.NewValidationError([]model.FieldError{{Field: "answers", Message: err.Error()}})

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails response
// with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
