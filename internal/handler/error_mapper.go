package handler

import (
	"errors"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/service"
)

// MapServiceError converts a service error to a ProblemDetails response.
// This centralizes error handling logic for all handlers, ensuring consistent
// HTTP status codes and error messages across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	switch {
	// ===== Authentication Errors → 401 =====
	case errors.Is(err, service.ErrInvalidCredentials):
		return model.NewUnauthorizedError(err.Error()).WithCode(model.ErrCodeLoginFailed)

	// ===== Authorization Errors → 403 =====
	case errors.Is(err, service.ErrForbidden):
		return model.NewForbiddenError(err.Error())

	// ===== Not Found Errors → 404 =====
	case errors.Is(err, service.ErrUserNotFound):
		return model.NewNotFoundError("user")
	case errors.Is(err, service.ErrPlaceNotFound):
		return model.NewNotFoundError("place")
	case errors.Is(err, service.ErrReviewNotFound):
		return model.NewNotFoundError("review")
	case errors.Is(err, service.ErrAmenityNotFound):
		return model.NewNotFoundError("amenity")

	// ===== Conflict Errors → 409, one code per kind =====
	case errors.Is(err, service.ErrEmailTaken):
		return model.NewConflictError(err.Error(), model.ErrCodeEmailTaken)
	case errors.Is(err, service.ErrAmenityNameTaken):
		return model.NewConflictError(err.Error(), model.ErrCodeNameTaken)
	case errors.Is(err, service.ErrDuplicateReview):
		return model.NewConflictError(err.Error(), model.ErrCodeDuplicateReview)

	// ===== Validation Errors → 422, one code per kind =====
	case errors.Is(err, service.ErrSelfReview):
		return model.NewValidationError([]model.FieldError{{Field: "place_id", Message: err.Error()}}).
			WithCode(model.ErrCodeSelfReview)
	case errors.Is(err, service.ErrRatingOutOfRange):
		return model.NewValidationError([]model.FieldError{{Field: "rating", Message: err.Error()}}).
			WithCode(model.ErrCodeRatingRange)
	case errors.Is(err, service.ErrRestrictedField):
		return model.NewValidationError([]model.FieldError{{Field: "email", Message: err.Error()}}).
			WithCode(model.ErrCodeRestrictedField)
	case errors.Is(err, service.ErrInvalidEmail):
		return model.NewValidationError([]model.FieldError{{Field: "email", Message: err.Error()}}).
			WithCode(model.ErrCodeInvalidEmail)
	case errors.Is(err, service.ErrPasswordRequired),
		errors.Is(err, service.ErrPasswordTooShort),
		errors.Is(err, service.ErrPasswordTooLong):
		return model.NewValidationError([]model.FieldError{{Field: "password", Message: err.Error()}}).
			WithCode(model.ErrCodePasswordPolicy)

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// MapServiceErrorWithContext converts a service error to a ProblemDetails
// response with additional context about the operation that failed.
func MapServiceErrorWithContext(err error, operation string) *model.ProblemDetails {
	pd := MapServiceError(err)
	if pd != nil && pd.Status == 500 {
		pd.Detail = operation + ": an unexpected error occurred"
	}
	return pd
}
