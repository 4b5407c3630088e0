package model

import "time"

// Place represents a rentable listing owned by exactly one user
type Place struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	OwnerID     string    `json:"owner_id"`
	AmenityIDs  []string  `json:"amenity_ids,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	UpdatedOn   time.Time `json:"updated_on"`
}

// Place field constraints
const (
	MaxTitleLength       = 100
	MaxDescriptionLength = 2000
	MinLatitude          = -90.0
	MaxLatitude          = 90.0
	MinLongitude         = -180.0
	MaxLongitude         = 180.0
)

// CreatePlaceRequest represents a request to create a place.
// The authenticated caller becomes the owner.
type CreatePlaceRequest struct {
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	AmenityIDs  []string `json:"amenity_ids,omitempty"`
}

// Validate checks field-level constraints and returns any violations
func (r *CreatePlaceRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Title == "" {
		errs = append(errs, FieldError{Field: "title", Message: "title is required"})
	} else if len(r.Title) > MaxTitleLength {
		errs = append(errs, FieldError{Field: "title", Message: "title too long"})
	}
	if r.Description != nil && len(*r.Description) > MaxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "description too long"})
	}
	errs = append(errs, validatePlaceRanges(r.Price, r.Latitude, r.Longitude)...)
	return errs
}

// UpdatePlaceRequest represents a partial place update. Ownership cannot
// be transferred; the owner field is not part of the request.
type UpdatePlaceRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// Validate checks field-level constraints on the provided fields
func (r *UpdatePlaceRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Title != nil {
		if *r.Title == "" {
			errs = append(errs, FieldError{Field: "title", Message: "title cannot be empty"})
		} else if len(*r.Title) > MaxTitleLength {
			errs = append(errs, FieldError{Field: "title", Message: "title too long"})
		}
	}
	if r.Description != nil && len(*r.Description) > MaxDescriptionLength {
		errs = append(errs, FieldError{Field: "description", Message: "description too long"})
	}
	if r.Price != nil && *r.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "price must not be negative"})
	}
	if r.Latitude != nil && (*r.Latitude < MinLatitude || *r.Latitude > MaxLatitude) {
		errs = append(errs, FieldError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if r.Longitude != nil && (*r.Longitude < MinLongitude || *r.Longitude > MaxLongitude) {
		errs = append(errs, FieldError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	return errs
}

func validatePlaceRanges(price, lat, long float64) []FieldError {
	var errs []FieldError
	if price < 0 {
		errs = append(errs, FieldError{Field: "price", Message: "price must not be negative"})
	}
	if lat < MinLatitude || lat > MaxLatitude {
		errs = append(errs, FieldError{Field: "latitude", Message: "latitude must be between -90 and 90"})
	}
	if long < MinLongitude || long > MaxLongitude {
		errs = append(errs, FieldError{Field: "longitude", Message: "longitude must be between -180 and 180"})
	}
	return errs
}
