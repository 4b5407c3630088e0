package service

import (
	"context"
	"errors"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

// ReviewRepository defines the interface for review storage
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	GetByID(ctx context.Context, id string) (*model.Review, error)
	GetByAuthorAndPlace(ctx context.Context, authorID, placeID string) (*model.Review, error)
	ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error)
	Update(ctx context.Context, review *model.Review) error
	Delete(ctx context.Context, id string) error
}

// ReviewService handles review business logic
type ReviewService struct {
	reviewRepo ReviewRepository
	placeRepo  PlaceRepository
	userRepo   UserRepository
}

// ReviewServiceConfig holds configuration for the review service
type ReviewServiceConfig struct {
	Repo      ReviewRepository
	PlaceRepo PlaceRepository
	UserRepo  UserRepository
}

// NewReviewService creates a new review service
func NewReviewService(cfg ReviewServiceConfig) *ReviewService {
	return &ReviewService{
		reviewRepo: cfg.Repo,
		placeRepo:  cfg.PlaceRepo,
		userRepo:   cfg.UserRepo,
	}
}

// CreateReview creates a review by the actor for a place. The checks run
// in a fixed order so clients see stable error precedence: missing place,
// then missing author, then self-review, then duplicate, then rating range.
// The self-review rule has no admin exemption; owners never review their
// own places.
func (s *ReviewService) CreateReview(ctx context.Context, actor Actor, req *model.CreateReviewRequest) (*model.Review, error) {
	place, err := s.placeRepo.GetByID(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	author, err := s.userRepo.GetByID(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	if place.OwnerID == author.ID {
		return nil, ErrSelfReview
	}

	existing, err := s.reviewRepo.GetByAuthorAndPlace(ctx, author.ID, place.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateReview
	}

	if req.Rating < model.MinRating || req.Rating > model.MaxRating {
		return nil, ErrRatingOutOfRange
	}

	review := &model.Review{
		Text:     req.Text,
		Rating:   req.Rating,
		PlaceID:  place.ID,
		AuthorID: author.ID,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		// Concurrent duplicate submissions lose at the unique index
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	return review, nil
}

// GetReview retrieves a review by ID
func (s *ReviewService) GetReview(ctx context.Context, id string) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

// ListReviewsByPlace returns all reviews for a place
func (s *ReviewService) ListReviewsByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}
	return s.reviewRepo.ListByPlace(ctx, placeID)
}

// UpdateReview applies a partial update to a review. The actor must be the
// author or an admin. Rating changes are range checked again.
func (s *ReviewService) UpdateReview(ctx context.Context, actor Actor, reviewID string, req *model.UpdateReviewRequest) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}

	if !CanActOn(actor, ReviewResource(review.ID, review.AuthorID), ActionUpdate) {
		return nil, ErrForbidden
	}

	if req.Rating != nil {
		if *req.Rating < model.MinRating || *req.Rating > model.MaxRating {
			return nil, ErrRatingOutOfRange
		}
		review.Rating = *req.Rating
	}
	if req.Text != nil {
		review.Text = *req.Text
	}

	if err := s.reviewRepo.Update(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

// DeleteReview removes a review. The actor must be the author or an admin.
func (s *ReviewService) DeleteReview(ctx context.Context, actor Actor, reviewID string) error {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review == nil {
		return ErrReviewNotFound
	}

	if !CanActOn(actor, ReviewResource(review.ID, review.AuthorID), ActionDelete) {
		return ErrForbidden
	}

	return s.reviewRepo.Delete(ctx, review.ID)
}
