package model

import "time"

// User represents a registered account. Admins bypass ownership checks on
// places and reviews but are still subject to the review business rules.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Hash      *string   `json:"-"` // Never expose password hash
	IsAdmin   bool      `json:"is_admin"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// TokenClaims represents extracted JWT claims
type TokenClaims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Admin  bool   `json:"admin"`
}

// User field constraints
const (
	MaxNameLength  = 50
	MaxEmailLength = 254
)

// CreateUserRequest represents an admin request to create an account
type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

// Validate checks field-level constraints and returns any violations
func (r *CreateUserRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "email is required"})
	} else if len(r.Email) > MaxEmailLength {
		errs = append(errs, FieldError{Field: "email", Message: "email too long"})
	}
	if r.FirstName == "" {
		errs = append(errs, FieldError{Field: "first_name", Message: "first_name is required"})
	} else if len(r.FirstName) > MaxNameLength {
		errs = append(errs, FieldError{Field: "first_name", Message: "first_name too long"})
	}
	if r.LastName == "" {
		errs = append(errs, FieldError{Field: "last_name", Message: "last_name is required"})
	} else if len(r.LastName) > MaxNameLength {
		errs = append(errs, FieldError{Field: "last_name", Message: "last_name too long"})
	}
	return errs
}

// UpdateUserRequest represents a partial account update. Email and Password
// may only be changed by an admin caller; the authorization gate rejects
// them on a non-admin self-update.
type UpdateUserRequest struct {
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
}

// Validate checks field-level constraints on the provided fields
func (r *UpdateUserRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Email != nil && (*r.Email == "" || len(*r.Email) > MaxEmailLength) {
		errs = append(errs, FieldError{Field: "email", Message: "invalid email"})
	}
	if r.FirstName != nil {
		if *r.FirstName == "" {
			errs = append(errs, FieldError{Field: "first_name", Message: "first_name cannot be empty"})
		} else if len(*r.FirstName) > MaxNameLength {
			errs = append(errs, FieldError{Field: "first_name", Message: "first_name too long"})
		}
	}
	if r.LastName != nil {
		if *r.LastName == "" {
			errs = append(errs, FieldError{Field: "last_name", Message: "last_name cannot be empty"})
		} else if len(*r.LastName) > MaxNameLength {
			errs = append(errs, FieldError{Field: "last_name", Message: "last_name too long"})
		}
	}
	return errs
}

// TouchesRestrictedFields reports whether the update attempts to change
// credentials or email, which self-service updates may not do.
func (r *UpdateUserRequest) TouchesRestrictedFields() bool {
	return r.Email != nil || r.Password != nil
}
