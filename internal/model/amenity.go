package model

import "time"

// Amenity represents a named feature attachable to many places.
// Names are globally unique.
type Amenity struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

const MaxAmenityNameLength = 50

// CreateAmenityRequest represents an admin request to create an amenity
type CreateAmenityRequest struct {
	Name string `json:"name"`
}

// Validate checks field-level constraints and returns any violations
func (r *CreateAmenityRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxAmenityNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name too long"})
	}
	return errs
}

// UpdateAmenityRequest represents an admin request to rename an amenity
type UpdateAmenityRequest struct {
	Name string `json:"name"`
}

// Validate checks field-level constraints and returns any violations
func (r *UpdateAmenityRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "name is required"})
	} else if len(r.Name) > MaxAmenityNameLength {
		errs = append(errs, FieldError{Field: "name", Message: "name too long"})
	}
	return errs
}
