package service

import (
	"context"
	"errors"
	"testing"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

func newPlaceTestFixture() (*PlaceService, *mockUserRepo, *mockPlaceRepo, *mockAmenityRepo) {
	userRepo := newMockUserRepo()
	placeRepo := newMockPlaceRepo()
	amenityRepo := newMockAmenityRepo()
	svc := NewPlaceService(PlaceServiceConfig{
		Repo:        placeRepo,
		UserRepo:    userRepo,
		AmenityRepo: amenityRepo,
	})
	return svc, userRepo, placeRepo, amenityRepo
}

func TestCreatePlaceActorBecomesOwner(t *testing.T) {
	svc, _, _, _ := newPlaceTestFixture()

	place, err := svc.CreatePlace(context.Background(), Actor{UserID: "user:alice"}, &model.CreatePlaceRequest{
		Title:     "Loft",
		Price:     120,
		Latitude:  48.85,
		Longitude: 2.35,
	})
	if err != nil {
		t.Fatalf("CreatePlace failed: %v", err)
	}
	if place.OwnerID != "user:alice" {
		t.Errorf("expected owner user:alice, got %s", place.OwnerID)
	}
}

func TestCreatePlaceUnknownAmenityRejected(t *testing.T) {
	svc, _, placeRepo, amenityRepo := newPlaceTestFixture()
	wifi := amenityRepo.add(&model.Amenity{ID: "amenity:wifi", Name: "WiFi"})

	_, err := svc.CreatePlace(context.Background(), Actor{UserID: "user:alice"}, &model.CreatePlaceRequest{
		Title:      "Loft",
		Price:      120,
		AmenityIDs: []string{wifi.ID, "amenity:nope"},
	})
	if !errors.Is(err, ErrAmenityNotFound) {
		t.Errorf("expected ErrAmenityNotFound, got %v", err)
	}
	if len(placeRepo.places) != 0 {
		t.Error("place must not be created when an amenity reference is dangling")
	}
}

func TestUpdatePlaceOwnerOrAdmin(t *testing.T) {
	svc, _, placeRepo, _ := newPlaceTestFixture()
	placeRepo.places["place:loft"] = &model.Place{ID: "place:loft", Title: "Loft", OwnerID: "user:alice", Price: 120}

	newPrice := 150.0

	if _, err := svc.UpdatePlace(context.Background(), Actor{UserID: "user:bob"}, "place:loft", &model.UpdatePlaceRequest{Price: &newPrice}); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-owner update: expected ErrForbidden, got %v", err)
	}

	updated, err := svc.UpdatePlace(context.Background(), Actor{UserID: "user:alice"}, "place:loft", &model.UpdatePlaceRequest{Price: &newPrice})
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if updated.Price != 150 {
		t.Errorf("price not updated: %v", updated.Price)
	}

	adminPrice := 99.0
	if _, err := svc.UpdatePlace(context.Background(), Actor{UserID: "user:root", IsAdmin: true}, "place:loft", &model.UpdatePlaceRequest{Price: &adminPrice}); err != nil {
		t.Errorf("admin update failed: %v", err)
	}
}

func TestUpdatePlacePreservesUntouchedFields(t *testing.T) {
	svc, _, placeRepo, _ := newPlaceTestFixture()
	desc := "cosy"
	placeRepo.places["place:loft"] = &model.Place{
		ID: "place:loft", Title: "Loft", Description: &desc,
		OwnerID: "user:alice", Price: 120, Latitude: 48.85, Longitude: 2.35,
	}

	newTitle := "Sunny Loft"
	updated, err := svc.UpdatePlace(context.Background(), Actor{UserID: "user:alice"}, "place:loft", &model.UpdatePlaceRequest{Title: &newTitle})
	if err != nil {
		t.Fatalf("UpdatePlace failed: %v", err)
	}
	if updated.Title != "Sunny Loft" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.Price != 120 || updated.Latitude != 48.85 || updated.Description == nil {
		t.Errorf("untouched fields modified: %+v", updated)
	}
	if updated.OwnerID != "user:alice" {
		t.Error("ownership must never change on update")
	}
}

func TestDeletePlaceCascades(t *testing.T) {
	svc, _, placeRepo, _ := newPlaceTestFixture()
	placeRepo.places["place:loft"] = &model.Place{ID: "place:loft", OwnerID: "user:alice"}

	if err := svc.DeletePlace(context.Background(), Actor{UserID: "user:bob"}, "place:loft"); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-owner delete: expected ErrForbidden, got %v", err)
	}

	if err := svc.DeletePlace(context.Background(), Actor{UserID: "user:alice"}, "place:loft"); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
	if len(placeRepo.deleted) != 1 || placeRepo.deleted[0] != "place:loft" {
		t.Errorf("expected cascade delete of place:loft, got %v", placeRepo.deleted)
	}
}

func TestAttachAmenity(t *testing.T) {
	svc, _, placeRepo, amenityRepo := newPlaceTestFixture()
	placeRepo.places["place:loft"] = &model.Place{ID: "place:loft", OwnerID: "user:alice"}
	wifi := amenityRepo.add(&model.Amenity{ID: "amenity:wifi", Name: "WiFi"})

	if _, err := svc.AttachAmenity(context.Background(), Actor{UserID: "user:bob"}, "place:loft", wifi.ID); !errors.Is(err, ErrForbidden) {
		t.Errorf("non-owner attach: expected ErrForbidden, got %v", err)
	}

	if _, err := svc.AttachAmenity(context.Background(), Actor{UserID: "user:alice"}, "place:loft", "amenity:nope"); !errors.Is(err, ErrAmenityNotFound) {
		t.Errorf("unknown amenity: expected ErrAmenityNotFound, got %v", err)
	}

	place, err := svc.AttachAmenity(context.Background(), Actor{UserID: "user:alice"}, "place:loft", wifi.ID)
	if err != nil {
		t.Fatalf("attach failed: %v", err)
	}
	if len(place.AmenityIDs) != 1 || place.AmenityIDs[0] != wifi.ID {
		t.Errorf("amenity not attached: %v", place.AmenityIDs)
	}
}

func TestDetachAmenity(t *testing.T) {
	svc, _, placeRepo, amenityRepo := newPlaceTestFixture()
	wifi := amenityRepo.add(&model.Amenity{ID: "amenity:wifi", Name: "WiFi"})
	placeRepo.places["place:loft"] = &model.Place{ID: "place:loft", OwnerID: "user:alice", AmenityIDs: []string{wifi.ID}}

	if _, err := svc.DetachAmenity(context.Background(), Actor{UserID: "user:alice"}, "place:loft", wifi.ID); err != nil {
		t.Fatalf("detach failed: %v", err)
	}
	if len(placeRepo.detached) != 1 {
		t.Errorf("expected one detach call, got %d", len(placeRepo.detached))
	}
}

func TestListPlacesByOwnerRequiresOwner(t *testing.T) {
	svc, userRepo, placeRepo, _ := newPlaceTestFixture()
	alice := userRepo.add(&model.User{ID: "user:alice", Email: "alice@example.com"})
	placeRepo.places["place:loft"] = &model.Place{ID: "place:loft", OwnerID: alice.ID}
	placeRepo.places["place:other"] = &model.Place{ID: "place:other", OwnerID: "user:bob"}

	if _, err := svc.ListPlacesByOwner(context.Background(), "user:ghost"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}

	places, err := svc.ListPlacesByOwner(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("ListPlacesByOwner failed: %v", err)
	}
	if len(places) != 1 || places[0].ID != "place:loft" {
		t.Errorf("expected only alice's place, got %v", places)
	}
}

func TestGetPlaceNotFound(t *testing.T) {
	svc, _, _, _ := newPlaceTestFixture()

	if _, err := svc.GetPlace(context.Background(), "place:nowhere"); !errors.Is(err, ErrPlaceNotFound) {
		t.Errorf("expected ErrPlaceNotFound, got %v", err)
	}
}
