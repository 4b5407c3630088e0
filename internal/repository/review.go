package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

// ReviewRepository handles review data access
type ReviewRepository struct {
	db database.Database
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(db database.Database) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// Create creates a new review. The (author, place) unique index makes the
// loser of a concurrent duplicate submission fail with database.ErrDuplicate.
func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		CREATE review CONTENT {
			text: $text,
			rating: $rating,
			place: type::record($place),
			author: type::record($author),
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"text":   review.Text,
		"rating": review.Rating,
		"place":  review.PlaceID,
		"author": review.AuthorID,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: review already exists for this author and place", database.ErrDuplicate)
		}
		return err
	}

	created, err := unwrapOne(result)
	if err != nil {
		return err
	}

	review.ID = convertSurrealID(created["id"])
	review.CreatedOn = parseTime(created["created_on"])
	review.UpdatedOn = parseTime(created["updated_on"])
	return nil
}

// GetByID retrieves a review by record id. Returns (nil, nil) when absent.
func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	query := `SELECT * FROM type::record($id)`
	vars := map[string]interface{}{"id": id}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapOne(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseReview(data), nil
}

// GetByAuthorAndPlace retrieves the review a user wrote for a place, if any.
// Returns (nil, nil) when the pair has no review.
func (r *ReviewRepository) GetByAuthorAndPlace(ctx context.Context, authorID, placeID string) (*model.Review, error) {
	query := `SELECT * FROM review WHERE author = type::record($author) AND place = type::record($place) LIMIT 1`
	vars := map[string]interface{}{
		"author": authorID,
		"place":  placeID,
	}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	data, err := unwrapOne(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parseReview(data), nil
}

// ListByPlace returns all reviews for a place
func (r *ReviewRepository) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	query := `SELECT * FROM review WHERE place = type::record($place) ORDER BY created_on ASC`
	vars := map[string]interface{}{"place": placeID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(results)
	reviews := make([]*model.Review, 0, len(records))
	for _, data := range records {
		reviews = append(reviews, parseReview(data))
	}
	return reviews, nil
}

// Update persists text and rating. Author and place links are immutable.
func (r *ReviewRepository) Update(ctx context.Context, review *model.Review) error {
	query := `
		UPDATE type::record($id) SET
			text = $text,
			rating = $rating,
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":     review.ID,
		"text":   review.Text,
		"rating": review.Rating,
	}

	return r.db.Execute(ctx, query, vars)
}

// Delete removes a review
func (r *ReviewRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE type::record($id)`
	vars := map[string]interface{}{"id": id}

	return r.db.Execute(ctx, query, vars)
}

func parseReview(data map[string]interface{}) *model.Review {
	return &model.Review{
		ID:        convertSurrealID(data["id"]),
		Text:      getString(data, "text"),
		Rating:    getInt(data, "rating"),
		PlaceID:   convertSurrealID(data["place"]),
		AuthorID:  convertSurrealID(data["author"]),
		CreatedOn: parseTime(data["created_on"]),
		UpdatedOn: parseTime(data["updated_on"]),
	}
}
