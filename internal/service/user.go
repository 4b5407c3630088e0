package service

import (
	"context"
	"errors"
	"strings"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
)

const defaultListLimit = 50

// UserService handles user account management
type UserService struct {
	userRepo UserRepository
}

// UserServiceConfig holds configuration for the user service
type UserServiceConfig struct {
	Repo UserRepository
}

// NewUserService creates a new user service
func NewUserService(cfg UserServiceConfig) *UserService {
	return &UserService{userRepo: cfg.Repo}
}

// CreateUser creates a new user account. Admin only; the bootstrap admin
// is seeded at startup, every other account is created here.
func (s *UserService) CreateUser(ctx context.Context, actor Actor, req *model.CreateUserRequest) (*model.User, error) {
	if !actor.IsAdmin {
		return nil, ErrForbidden
	}

	email := strings.TrimSpace(strings.ToLower(req.Email))
	if !isValidEmail(email) {
		return nil, ErrInvalidEmail
	}
	if err := validatePassword(req.Password); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:     email,
		Hash:      &hash,
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		IsAdmin:   req.IsAdmin,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// Concurrent signup with the same email loses at the unique index
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// GetUser retrieves a user by ID
func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	return user, nil
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context, limit int) ([]*model.User, error) {
	if limit <= 0 || limit > 100 {
		limit = defaultListLimit
	}
	return s.userRepo.List(ctx, limit)
}

// UpdateUser applies a partial update to a user account. The actor must be
// the account holder or an admin. Account holders cannot change their own
// email or password here; admins can, with the email re-checked for
// uniqueness before the write.
func (s *UserService) UpdateUser(ctx context.Context, actor Actor, userID string, req *model.UpdateUserRequest) (*model.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if !CanActOn(actor, UserResource(user.ID), ActionUpdate) {
		return nil, ErrForbidden
	}

	if !actor.IsAdmin && req.TouchesRestrictedFields() {
		return nil, ErrRestrictedField
	}

	// Every check runs before the single write below, so a rejected
	// request leaves the account untouched.
	if req.Password != nil {
		if err := validatePassword(*req.Password); err != nil {
			return nil, err
		}
		hash, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Hash = &hash
	}

	if req.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*req.Email))
		if !isValidEmail(email) {
			return nil, ErrInvalidEmail
		}
		if email != user.Email {
			other, err := s.userRepo.GetByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if other != nil && other.ID != user.ID {
				return nil, ErrEmailTaken
			}
			user.Email = email
		}
	}
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, database.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return user, nil
}

// DeleteUser removes a user account together with everything they own:
// their places, their reviews, and the reviews on their places. The actor
// must be the account holder or an admin.
func (s *UserService) DeleteUser(ctx context.Context, actor Actor, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !CanActOn(actor, UserResource(user.ID), ActionDelete) {
		return ErrForbidden
	}

	return s.userRepo.DeleteCascade(ctx, user.ID)
}
