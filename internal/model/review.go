package model

import "time"

// Review represents a rated piece of feedback about a place. A user may
// review a given place at most once and never their own place.
type Review struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	PlaceID   string    `json:"place_id"`
	AuthorID  string    `json:"author_id"`
	CreatedOn time.Time `json:"created_on"`
	UpdatedOn time.Time `json:"updated_on"`
}

// Review constraints
const (
	MinRating       = 1
	MaxRating       = 5
	MaxReviewLength = 2000
)

// CreateReviewRequest represents a request to review a place.
// The authenticated caller becomes the author.
type CreateReviewRequest struct {
	PlaceID string `json:"place_id"`
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
}

// Validate checks field-level constraints and returns any violations.
// Rating range is deliberately not checked here: the business rule
// validator reports it with its own error so reference and conflict
// problems surface first.
func (r *CreateReviewRequest) Validate() []FieldError {
	var errs []FieldError
	if r.PlaceID == "" {
		errs = append(errs, FieldError{Field: "place_id", Message: "place_id is required"})
	}
	if r.Text == "" {
		errs = append(errs, FieldError{Field: "text", Message: "text is required"})
	} else if len(r.Text) > MaxReviewLength {
		errs = append(errs, FieldError{Field: "text", Message: "text too long"})
	}
	return errs
}

// UpdateReviewRequest represents a partial review update. The place and
// author references are immutable.
type UpdateReviewRequest struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty"`
}

// Validate checks field-level constraints on the provided fields
func (r *UpdateReviewRequest) Validate() []FieldError {
	var errs []FieldError
	if r.Text != nil {
		if *r.Text == "" {
			errs = append(errs, FieldError{Field: "text", Message: "text cannot be empty"})
		} else if len(*r.Text) > MaxReviewLength {
			errs = append(errs, FieldError{Field: "text", Message: "text too long"})
		}
	}
	return errs
}
