package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

// AmenityRepository defines the interface for amenity storage
type AmenityRepository interface {
	Create(ctx context.Context, amenity *model.Amenity) error
	GetByID(ctx context.Context, id string) (*model.Amenity, error)
	GetByName(ctx context.Context, name string) (*model.Amenity, error)
	List(ctx context.Context, limit int) ([]*model.Amenity, error)
	Update(ctx context.Context, amenity *model.Amenity) error
	DeleteCascade(ctx context.Context, id string) error
}

// AmenityService handles amenity business logic. The amenity catalog is
// admin-managed; everyone can read it.
type AmenityService struct {
	amenityRepo AmenityRepository
}

// AmenityServiceConfig holds configuration for the amenity service
type AmenityServiceConfig struct {
	Repo AmenityRepository
}

// NewAmenityService creates a new amenity service
func NewAmenityService(cfg AmenityServiceConfig) *AmenityService {
	return &AmenityService{amenityRepo: cfg.Repo}
}

// CreateAmenity creates a new amenity. Admin only; names are unique.
func (s *AmenityService) CreateAmenity(ctx context.Context, actor Actor, req *model.CreateAmenityRequest) (*model.Amenity, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	name := strings.TrimSpace(req.Name)

	existing, err := s.amenityRepo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAmenityNameTaken
	}

	amenity := &model.Amenity{Name: name}
	if err := s.amenityRepo.Create(ctx, amenity); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAmenityNameTaken
		}
		return nil, err
	}

	return amenity, nil
}

// GetAmenity retrieves an amenity by ID
func (s *AmenityService) GetAmenity(ctx context.Context, id string) (*model.Amenity, error) {
	amenity, err := s.amenityRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if amenity == nil {
		return nil, ErrAmenityNotFound
	}
	return amenity, nil
}

// ListAmenities returns the amenity catalog
func (s *AmenityService) ListAmenities(ctx context.Context, limit int) ([]*model.Amenity, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.amenityRepo.List(ctx, limit)
}

// UpdateAmenity renames an amenity. Admin only; the new name must be free.
func (s *AmenityService) UpdateAmenity(ctx context.Context, actor Actor, amenityID string, req *model.UpdateAmenityRequest) (*model.Amenity, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	amenity, err := s.amenityRepo.GetByID(ctx, amenityID)
	if err != nil {
		return nil, err
	}
	if amenity == nil {
		return nil, ErrAmenityNotFound
	}

	name := strings.TrimSpace(req.Name)
	if name != amenity.Name {
		other, err := s.amenityRepo.GetByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != amenity.ID {
			return nil, ErrAmenityNameTaken
		}
	}

	amenity.Name = name
	if err := s.amenityRepo.Update(ctx, amenity); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrAmenityNameTaken
		}
		return nil, err
	}

	return amenity, nil
}

// DeleteAmenity removes an amenity from the catalog and from every place
// that lists it. Admin only.
func (s *AmenityService) DeleteAmenity(ctx context.Context, actor Actor, amenityID string) error {
	if !actor.IsAdmin {
		return ErrForbidden
	}

	amenity, err := s.amenityRepo.GetByID(ctx, amenityID)
	if err != nil {
		return err
	}
	if amenity == nil {
		return ErrAmenityNotFound
	}

	return s.amenityRepo.DeleteCascade(ctx, amenity.ID)
}
