package service

import (
	"context"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

// PlaceRepository defines the interface for place storage
type PlaceRepository interface {
	Create(ctx context.Context, place *model.Place) error
	GetByID(ctx context.Context, id string) (*model.Place, error)
	List(ctx context.Context, limit int) ([]*model.Place, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*model.Place, error)
	Update(ctx context.Context, place *model.Place) error
	AttachAmenity(ctx context.Context, placeID, amenityID string) error
	DetachAmenity(ctx context.Context, placeID, amenityID string) error
	DeleteCascade(ctx context.Context, id string) error
}

// PlaceService handles place business logic
type PlaceService struct {
	placeRepo   PlaceRepository
	userRepo    UserRepository
	amenityRepo AmenityRepository
}

// PlaceServiceConfig holds configuration for the place service
type PlaceServiceConfig struct {
	Repo        PlaceRepository
	UserRepo    UserRepository
	AmenityRepo AmenityRepository
}

// NewPlaceService creates a new place service
func NewPlaceService(cfg PlaceServiceConfig) *PlaceService {
	return &PlaceService{
		placeRepo:   cfg.Repo,
		userRepo:    cfg.UserRepo,
		amenityRepo: cfg.AmenityRepo,
	}
}

// CreatePlace creates a new place owned by the actor. Every referenced
// amenity must exist.
func (s *PlaceService) CreatePlace(ctx context.Context, actor Actor, req *model.CreatePlaceRequest) (*model.Place, error) {
	for _, amenityID := range req.AmenityIDs {
		amenity, err := s.amenityRepo.GetByID(ctx, amenityID)
		if err != nil {
			return nil, err
		}
		if amenity == nil {
			return nil, ErrAmenityNotFound
		}
	}

	place := &model.Place{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     actor.UserID,
		AmenityIDs:  req.AmenityIDs,
	}

	if err := s.placeRepo.Create(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

// GetPlace retrieves a place by ID
func (s *PlaceService) GetPlace(ctx context.Context, id string) (*model.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}
	return place, nil
}

// ListPlaces returns all places
func (s *PlaceService) ListPlaces(ctx context.Context, limit int) ([]*model.Place, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.placeRepo.List(ctx, limit)
}

// ListPlacesByOwner returns all places owned by a user
func (s *PlaceService) ListPlacesByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	owner, err := s.userRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, ErrUserNotFound
	}
	return s.placeRepo.ListByOwner(ctx, ownerID)
}

// UpdatePlace applies a partial update to a place. The actor must be the
// owner or an admin. Ownership never transfers.
func (s *PlaceService) UpdatePlace(ctx context.Context, actor Actor, placeID string, req *model.UpdatePlaceRequest) (*model.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	if !CanActOn(actor, PlaceResource(place.ID, place.OwnerID), ActionUpdate) {
		return nil, ErrForbidden
	}

	if req.Title != nil {
		place.Title = *req.Title
	}
	if req.Description != nil {
		place.Description = req.Description
	}
	if req.Price != nil {
		place.Price = *req.Price
	}
	if req.Latitude != nil {
		place.Latitude = *req.Latitude
	}
	if req.Longitude != nil {
		place.Longitude = *req.Longitude
	}

	if err := s.placeRepo.Update(ctx, place); err != nil {
		return nil, err
	}

	return place, nil
}

// DeletePlace removes a place and all reviews written about it. The actor
// must be the owner or an admin.
func (s *PlaceService) DeletePlace(ctx context.Context, actor Actor, placeID string) error {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return err
	}
	if place == nil {
		return ErrPlaceNotFound
	}

	if !CanActOn(actor, PlaceResource(place.ID, place.OwnerID), ActionDelete) {
		return ErrForbidden
	}

	return s.placeRepo.DeleteCascade(ctx, place.ID)
}

// AttachAmenity adds an existing amenity to a place. The actor must be the
// owner or an admin. Attaching an already-attached amenity is a no-op.
func (s *PlaceService) AttachAmenity(ctx context.Context, actor Actor, placeID, amenityID string) (*model.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	if !CanActOn(actor, PlaceResource(place.ID, place.OwnerID), ActionUpdate) {
		return nil, ErrForbidden
	}

	amenity, err := s.amenityRepo.GetByID(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	if amenity == nil {
		return nil, ErrAmenityNotFound
	}

	if err := s.placeRepo.AttachAmenity(ctx, place.ID, amenity.ID); err != nil {
		return nil, err
	}

	return s.GetPlace(ctx, place.ID)
}

// DetachAmenity removes an amenity from a place. The actor must be the
// owner or an admin.
func (s *PlaceService) DetachAmenity(ctx context.Context, actor Actor, placeID, amenityID string) (*model.Place, error) {
	place, err := s.placeRepo.GetByID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, ErrPlaceNotFound
	}

	if !CanActOn(actor, PlaceResource(place.ID, place.OwnerID), ActionUpdate) {
		return nil, ErrForbidden
	}

	amenity, err := s.amenityRepo.GetByID(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	if amenity == nil {
		return nil, ErrAmenityNotFound
	}

	if err := s.placeRepo.DetachAmenity(ctx, place.ID, amenity.ID); err != nil {
		return nil, err
	}

	return s.GetPlace(ctx, place.ID)
}
