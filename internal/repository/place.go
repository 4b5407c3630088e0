package repository

import (
	"context"
	"errors"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

// PlaceRepository handles place data access
type PlaceRepository struct {
	db database.Database
}

// NewPlaceRepository creates a new place repository
func NewPlaceRepository(db database.Database) *PlaceRepository {
	return &PlaceRepository{db: db}
}

// Create creates a new place owned by place.OwnerID
func (r *PlaceRepository) Create(ctx context.Context, place *model.Place) error {
	query := `
		CREATE place CONTENT {
			title: $title,
			description: $description,
			price: $price,
			latitude: $latitude,
			longitude: $longitude,
			owner: type::record($owner),
			amenities: $amenities,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	amenities := place.AmenityIDs
	if amenities == nil {
		amenities = []string{}
	}
	amenityRecords := make([]interface{}, 0, len(amenities))
	for _, a := range amenities {
		amenityRecords = append(amenityRecords, a)
	}

	vars := map[string]interface{}{
		"title":       place.Title,
		"description": ptrOrNil(place.Description),
		"price":       place.Price,
		"latitude":    place.Latitude,
		"longitude":   place.Longitude,
		"owner":       place.OwnerID,
		"amenities":   amenityRecords,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return err
	}

	created, err := unwrapOne(result)
	if err != nil {
		return err
	}

	place.ID = convertSurrealID(created["id"])
	place.CreatedOn = parseTime(created["created_on"])
	place.UpdatedOn = parseTime(created["updated_on"])
	return nil
}

// GetByID retrieves a place by record id. Returns (nil, nil) when absent.
func (r *PlaceRepository) GetByID(ctx context.Context, id string) (*model.Place, error) {
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
	return parsePlace(data), nil
}

// List returns places ordered by creation time
func (r *PlaceRepository) List(ctx context.Context, limit int) ([]*model.Place, error) {
	query := `SELECT * FROM place ORDER BY created_on ASC LIMIT $limit`
	vars := map[string]interface{}{"limit": limit}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(results)
	places := make([]*model.Place, 0, len(records))
	for _, data := range records {
		places = append(places, parsePlace(data))
	}
	return places, nil
}

// ListByOwner returns all places owned by a user
func (r *PlaceRepository) ListByOwner(ctx context.Context, ownerID string) ([]*model.Place, error) {
	query := `SELECT * FROM place WHERE owner = type::record($owner) ORDER BY created_on ASC`
	vars := map[string]interface{}{"owner": ownerID}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(results)
	places := make([]*model.Place, 0, len(records))
	for _, data := range records {
		places = append(places, parsePlace(data))
	}
	return places, nil
}

// Update persists the place's mutable fields. Ownership is immutable so the
// owner link is never written here.
func (r *PlaceRepository) Update(ctx context.Context, place *model.Place) error {
	query := `
		UPDATE type::record($id) SET
			title = $title,
			description = $description,
			price = $price,
			latitude = $latitude,
			longitude = $longitude,
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":          place.ID,
		"title":       place.Title,
		"description": ptrOrNil(place.Description),
		"price":       place.Price,
		"latitude":    place.Latitude,
		"longitude":   place.Longitude,
	}

	return r.db.Execute(ctx, query, vars)
}

// AttachAmenity adds an amenity to the place's amenity set. Adding an
// amenity that is already attached is a no-op.
func (r *PlaceRepository) AttachAmenity(ctx context.Context, placeID, amenityID string) error {
	query := `UPDATE type::record($id) SET amenities += $amenity, amenities = array::distinct(amenities), updated_on = time::now()`
	vars := map[string]interface{}{
		"id":      placeID,
		"amenity": amenityID,
	}

	return r.db.Execute(ctx, query, vars)
}

// DetachAmenity removes an amenity from the place's amenity set
func (r *PlaceRepository) DetachAmenity(ctx context.Context, placeID, amenityID string) error {
	query := `UPDATE type::record($id) SET amenities -= $amenity, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":      placeID,
		"amenity": amenityID,
	}

	return r.db.Execute(ctx, query, vars)
}

// DeleteCascade removes a place and every review written about it in a
// single transaction
func (r *PlaceRepository) DeleteCascade(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`DELETE review WHERE place = type::record($place)`,
		map[string]interface{}{"place": id})
	batch.Add(`DELETE type::record($place)`,
		map[string]interface{}{"place": id})

	return batch.Execute(ctx, r.db)
}

func parsePlace(data map[string]interface{}) *model.Place {
	return &model.Place{
		ID:          convertSurrealID(data["id"]),
		Title:       getString(data, "title"),
		Description: getStringPtr(data, "description"),
		Price:       getFloat(data, "price"),
		Latitude:    getFloat(data, "latitude"),
		Longitude:   getFloat(data, "longitude"),
		OwnerID:     convertSurrealID(data["owner"]),
		AmenityIDs:  convertIDSlice(data["amenities"]),
		CreatedOn:   parseTime(data["created_on"]),
		UpdatedOn:   parseTime(data["updated_on"]),
	}
}
