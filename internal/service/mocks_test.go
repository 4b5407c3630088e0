package service

import (
	"context"
	"time"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

// Mock repositories shared by the service tests.

type mockUserRepo struct {
	users      map[string]*model.User
	emailIndex map[string]*model.User
	createErr  error
	getErr     error
	updateErr  error
	deleted    []string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:      make(map[string]*model.User),
		emailIndex: make(map[string]*model.User),
	}
}

func (m *mockUserRepo) add(user *model.User) *model.User {
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user
	return user
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = "user:" + user.Email
	user.CreatedOn = time.Now()
	user.UpdatedOn = time.Now()
	m.add(user)
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.users[id], nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.emailIndex[email], nil
}

func (m *mockUserRepo) List(ctx context.Context, limit int) ([]*model.User, error) {
	result := make([]*model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.users[user.ID] = user
	m.emailIndex[user.Email] = user
	return nil
}

func (m *mockUserRepo) DeleteCascade(ctx context.Context, id string) error {
	if user, ok := m.users[id]; ok {
		delete(m.emailIndex, user.Email)
		delete(m.users, id)
	}
	m.deleted = append(m.deleted, id)
	return nil
}

type mockPlaceRepo struct {
	places    map[string]*model.Place
	createErr error
	deleted   []string
	attached  [][2]string
	detached  [][2]string
}

func newMockPlaceRepo() *mockPlaceRepo {
	return &mockPlaceRepo{places: make(map[string]*model.Place)}
}

func (m *mockPlaceRepo) Create(ctx context.Context, place *model.Place) error {
	if m.createErr != nil {
		return m.createErr
	}
	place.ID = "place:" + place.Title
	place.CreatedOn = time.Now()
	place.UpdatedOn = time.Now()
	m.places[place.ID] = place
	return nil
}

func (m *mockPlaceRepo) GetByID(ctx context.Context, id string) (*model.Place, error) {
	return m.places[id], nil
}

func (m *mockPlaceRepo) List(ctx context.Context, limit int) ([]*model.Place, error) {
	result := make([]*model.Place, 0, len(m.places))
	for _, p := range m.places {
		result = append(result, p)
	}
	return result, nil
}

func (m *mockPlaceRepo) ListByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	var result []*model.Place
	for _, p := range m.places {
		if p.OwnerID == ownerID {
			result = append(result, p)
		}
	}
	return result, nil
}

func (m *mockPlaceRepo) Update(ctx context.Context, place *model.Place) error {
	m.places[place.ID] = place
	return nil
}

func (m *mockPlaceRepo) AttachAmenity(ctx context.Context, placeID, amenityID string) error {
	m.attached = append(m.attached, [2]string{placeID, amenityID})
	if p, ok := m.places[placeID]; ok {
		p.AmenityIDs = append(p.AmenityIDs, amenityID)
	}
	return nil
}

func (m *mockPlaceRepo) DetachAmenity(ctx context.Context, placeID, amenityID string) error {
	m.detached = append(m.detached, [2]string{placeID, amenityID})
	return nil
}

func (m *mockPlaceRepo) DeleteCascade(ctx context.Context, id string) error {
	delete(m.places, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockReviewRepo struct {
	reviews   map[string]*model.Review
	createErr error
	deleted   []string
}

func newMockReviewRepo() *mockReviewRepo {
	return &mockReviewRepo{reviews: make(map[string]*model.Review)}
}

func (m *mockReviewRepo) Create(ctx context.Context, review *model.Review) error {
	if m.createErr != nil {
		return m.createErr
	}
	review.ID = "review:" + review.AuthorID + ":" + review.PlaceID
	review.CreatedOn = time.Now()
	review.UpdatedOn = time.Now()
	m.reviews[review.ID] = review
	return nil
}

func (m *mockReviewRepo) GetByID(ctx context.Context, id string) (*model.Review, error) {
	return m.reviews[id], nil
}

func (m *mockReviewRepo) GetByAuthorAndPlace(ctx context.Context, authorID, placeID string) (*model.Review, error) {
	for _, r := range m.reviews {
		if r.AuthorID == authorID && r.PlaceID == placeID {
			return r, nil
		}
	}
	return nil, nil
}

func (m *mockReviewRepo) ListByPlace(ctx context.Context, placeID string) ([]*model.Review, error) {
	var result []*model.Review
	for _, r := range m.reviews {
		if r.PlaceID == placeID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReviewRepo) Update(ctx context.Context, review *model.Review) error {
	m.reviews[review.ID] = review
	return nil
}

func (m *mockReviewRepo) Delete(ctx context.Context, id string) error {
	delete(m.reviews, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockAmenityRepo struct {
	amenities map[string]*model.Amenity
	nameIndex map[string]*model.Amenity
	createErr error
	updateErr error
	deleted   []string
}

func newMockAmenityRepo() *mockAmenityRepo {
	return &mockAmenityRepo{
		amenities: make(map[string]*model.Amenity),
		nameIndex: make(map[string]*model.Amenity),
	}
}

func (m *mockAmenityRepo) add(a *model.Amenity) *model.Amenity {
	m.amenities[a.ID] = a
	m.nameIndex[a.Name] = a
	return a
}

func (m *mockAmenityRepo) Create(ctx context.Context, amenity *model.Amenity) error {
	if m.createErr != nil {
		return m.createErr
	}
	amenity.ID = "amenity:" + amenity.Name
	amenity.CreatedOn = time.Now()
	amenity.UpdatedOn = time.Now()
	m.add(amenity)
	return nil
}

func (m *mockAmenityRepo) GetByID(ctx context.Context, id string) (*model.Amenity, error) {
	return m.amenities[id], nil
}

func (m *mockAmenityRepo) GetByName(ctx context.Context, name string) (*model.Amenity, error) {
	return m.nameIndex[name], nil
}

func (m *mockAmenityRepo) List(ctx context.Context, limit int) ([]*model.Amenity, error) {
	result := make([]*model.Amenity, 0, len(m.amenities))
	for _, a := range m.amenities {
		result = append(result, a)
	}
	return result, nil
}

func (m *mockAmenityRepo) Update(ctx context.Context, amenity *model.Amenity) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.add(amenity)
	return nil
}

func (m *mockAmenityRepo) DeleteCascade(ctx context.Context, id string) error {
	if a, ok := m.amenities[id]; ok {
		delete(m.nameIndex, a.Name)
		delete(m.amenities, id)
	}
	m.deleted = append(m.deleted, id)
	return nil
}
