package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

// UserRepository handles user data access
type UserRepository struct {
	db database.Database
}

// NewUserRepository creates a new user repository
func NewUserRepository(db database.Database) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user. The email unique index makes concurrent
// duplicate signups lose here with database.ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `
		CREATE user CONTENT {
			email: $email,
			hash: $hash,
			first_name: $first_name,
			last_name: $last_name,
			is_admin: $is_admin,
			created_on: time::now(),
			updated_on: time::now()
		}
	`

	vars := map[string]interface{}{
		"email":      user.Email,
		"hash":       ptrOrNil(user.Hash),
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"is_admin":   user.IsAdmin,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}

	created, err := unwrapOne(result)
	if err != nil {
		return err
	}

	user.ID = convertSurrealID(created["id"])
	user.CreatedOn = parseTime(created["created_on"])
	user.UpdatedOn = parseTime(created["updated_on"])
	return nil
}

// GetByID retrieves a user by record id. Returns (nil, nil) when absent.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*model.User, error) {
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
	return parseUser(data), nil
}

// GetByEmail retrieves a user by email. Returns (nil, nil) when absent.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	query := `SELECT * FROM user WHERE email = $email LIMIT 1`
	vars := map[string]interface{}{"email": email}

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
	return parseUser(data), nil
}

// List returns users ordered by creation time
func (r *UserRepository) List(ctx context.Context, limit int) ([]*model.User, error) {
	query := `SELECT * FROM user ORDER BY created_on ASC LIMIT $limit`
	vars := map[string]interface{}{"limit": limit}

	results, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, err
	}

	records := unwrapMany(results)
	users := make([]*model.User, 0, len(records))
	for _, data := range records {
		users = append(users, parseUser(data))
	}
	return users, nil
}

// Update persists profile fields and the password hash in one statement,
// so a failed update never leaves the account half-changed. The email
// unique index fires here too when an admin moves a user onto an email
// that was claimed in between.
func (r *UserRepository) Update(ctx context.Context, user *model.User) error {
	query := `
		UPDATE type::record($id) SET
			email = $email,
			hash = $hash,
			first_name = $first_name,
			last_name = $last_name,
			is_admin = $is_admin,
			updated_on = time::now()
	`

	vars := map[string]interface{}{
		"id":         user.ID,
		"email":      user.Email,
		"hash":       ptrOrNil(user.Hash),
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"is_admin":   user.IsAdmin,
	}

	if err := r.db.Execute(ctx, query, vars); err != nil {
		if isUniqueConstraintError(err) {
			return fmt.Errorf("%w: email already exists", database.ErrDuplicate)
		}
		return err
	}
	return nil
}

// DeleteCascade removes a user together with every review they authored,
// every place they own, and every review on those places. One transaction,
// so no observer ever sees a place without its owner or a review without
// its author.
func (r *UserRepository) DeleteCascade(ctx context.Context, id string) error {
	batch := database.NewAtomicBatch()
	batch.Add(`LET $owned = (SELECT VALUE id FROM place WHERE owner = type::record($user))`,
		map[string]interface{}{"user": id})
	batch.Add(`DELETE review WHERE author = type::record($user) OR place IN $owned`,
		map[string]interface{}{"user": id})
	batch.Add(`DELETE place WHERE owner = type::record($user)`,
		map[string]interface{}{"user": id})
	batch.Add(`DELETE type::record($user)`,
		map[string]interface{}{"user": id})

	return batch.Execute(ctx, r.db)
}

func parseUser(data map[string]interface{}) *model.User {
	return &model.User{
		ID:        convertSurrealID(data["id"]),
		Email:     getString(data, "email"),
		Hash:      getStringPtr(data, "hash"),
		FirstName: getString(data, "first_name"),
		LastName:  getString(data, "last_name"),
		IsAdmin:   getBool(data, "is_admin"),
		CreatedOn: parseTime(data["created_on"]),
		UpdatedOn: parseTime(data["updated_on"]),
	}
}
