package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

// AmenityRepository handles amenity data access
type AmenityRepository struct {
	db database.Database
}

// NewAmenityRepository creates a new amenity repository
func NewAmenityRepository(db database.Database) *AmenityRepository {
	return &AmenityRepository{db: db}
}

// Create creates a new amenity. Name collisions hit the unique index and
// surface as database.ErrDuplicate.
func (r *AmenityRepository) Create(ctx context.Context, amenity *model.Amenity) error {
	query := `
		CREATE amenity CONTENT {
			name: $name,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{"name": amenity.Name}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: amenity name already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := unwrapOne(result)
	if err != nil {
		return err
	}

	amenity.ID = convertSurrealID(created["id"])
	amenity.CreatedOn = parseTime(created["created_on"])
	amenity.UpdatedOn = parseTime(created["updated_on"])
	return nil
}

// GetByID retrieves an amenity by record id. Returns (nil, nil) when absent.
func (r *AmenityRepository) GetByID(ctx context.Context, id string) (*model.Amenity, error) {
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
	return parseAmenity(data), nil
}

// GetByName retrieves an amenity by its unique name. Returns (nil, nil) when absent.
func (r *AmenityRepository) GetByName(ctx context.Context, name string) (*model.Amenity, error) {
	query := `SELECT * FROM amenity WHERE name = $name LIMIT 1`
	vars := map[string]interface{}{"name": name}

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
	return parseAmenity(data), nil
}

// List returns amenities ordered by name
func (r *AmenityRepository) List(ctx context.Context, limit int) ([]*model.Amenity, error) {
	query := `SELECT * FROM amenity ORDER BY name ASC LIMIT $limit`
	vars := map[string]interface{}{"limit": limit}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(results)
	amenities := make([]*model.Amenity, 0, len(records))
	for _, data := range records {
		amenities = append(amenities, parseAmenity(data))
	}
	return amenities, nil
}

// Update renames an amenity. Renaming onto a taken name hits the unique
// index and surfaces as database.ErrDuplicate.
func (r *AmenityRepository) Update(ctx context.Context, amenity *model.Amenity) error {
	query := `UPDATE type::record($id) SET name = $name, updated_on = time::now()`
	vars := map[string]interface{}{
		"id":   amenity.ID,
		"name": amenity.Name,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: amenity name already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// DeleteCascade removes an amenity and strips it from every place that
// lists it, in a single transaction
func (r *AmenityRepository) DeleteCascade(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`UPDATE place SET amenities -= $amenity, updated_on = time::now() WHERE $amenity IN amenities`,
		map[string]interface{}{"amenity": id})
	batch.Add(`DELETE type::record($amenity)`,
		map[string]interface{}{"amenity": id})

	return batch.Execute(ctx, r.db)
}

func parseAmenity(data map[string]interface{}) *model.Amenity {
	return &model.Amenity{
		ID:        convertSurrealID(data["id"]),
		Name:      getString(data, "name"),
		CreatedOn: parseTime(data["created_on"]),
		UpdatedOn: parseTime(data["updated_on"]),
	}
}
