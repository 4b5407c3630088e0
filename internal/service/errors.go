package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Authentication Errors =====
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidEmail       = errors.New("invalid email format")
	ErrPasswordRequired   = errors.New("password is required")
	ErrPasswordTooShort   = errors.New("password must be at least 8 characters")
	ErrPasswordTooLong    = errors.New("password must be at most 128 characters")
)

// ===== Authorization Errors =====
var (
	ErrForbidden       = errors.New("not authorized to perform this action")
	ErrRestrictedField = errors.New("email and password cannot be changed through this operation")
)

// ===== User Errors =====
var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
)

// ===== Place Errors =====
var (
	ErrPlaceNotFound = errors.New("place not found")
)

// ===== Review Errors =====
var (
	ErrReviewNotFound   = errors.New("review not found")
	ErrSelfReview       = errors.New("cannot review your own place")
	ErrDuplicateReview  = errors.New("place already reviewed by this user")
	ErrRatingOutOfRange = errors.New("rating must be between 1 and 5")
)

// ===== Amenity Errors =====
var (
	ErrAmenityNotFound  = errors.New("amenity not found")
	ErrAmenityNameTaken = errors.New("an amenity with this name already exists")
)
