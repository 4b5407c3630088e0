package handler

import (
	"bytes"
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/database"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/middleware"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/service"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

/*
FEATURE: HTTP API
DOMAIN: Transport

ACCEPTANCE CRITERIA:
===================

AC-API-001: Login
  GIVEN a registered user
  WHEN they POST valid credentials to /v1/auth/login
  THEN a bearer token is issued that authenticates later requests

AC-API-002: Admin Creates Account
  GIVEN an admin token
  WHEN they POST /v1/users
  THEN the account is created and can log in

AC-API-003: Account Creation Requires Admin
  GIVEN no token or a non-admin token
  WHEN they POST /v1/users
  THEN the request fails with 401 or 403

AC-API-004: Owner Lifecycle of a Place
  GIVEN an authenticated user
  WHEN they create, update, and attach amenities to a place
  THEN the place reflects the changes and ownership never moves

AC-API-005: Review Rules over HTTP
  GIVEN a place and a visitor
  WHEN the visitor reviews it
  THEN the review is created, the owner cannot self-review,
  AND a second review by the same visitor conflicts

AC-API-006: Cascade on Delete
  GIVEN a user who owns a place with reviews
  WHEN the user is deleted
  THEN the place and its reviews are gone too
*/

// ==============================
// In-memory store
// ==============================

// memStore backs the four repository interfaces with maps, enforcing the
// same unique indexes the database schema defines (user email, amenity
// name, one review per author and place).
type memStore struct {
	mu        sync.Mutex
	users     map[string]*model.User
	places    map[string]*model.Place
	reviews   map[string]*model.Review
	amenities map[string]*model.Amenity
}

func newMemStore() *memStore {
	return &memStore{
		users:     make(map[string]*model.User),
		places:    make(map[string]*model.Place),
		reviews:   make(map[string]*model.Review),
		amenities: make(map[string]*model.Amenity),
	}
}

type memUserRepo struct{ s *memStore }

func (r *memUserRepo) Create(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return database.ErrDuplicate
		}
	}
	user.ID = "user:" + uuid.NewString()
	user.CreatedOn = time.Now()
	user.UpdatedOn = user.CreatedOn
	r.s.users[user.ID] = user
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.users[id], nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) List(_ context.Context, limit int) ([]*model.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	users := make([]*model.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		if len(users) == limit {
			break
		}
		users = append(users, u)
	}
	return users, nil
}

func (r *memUserRepo) Update(_ context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.UpdatedOn = time.Now()
	r.s.users[user.ID] = user
	return nil
}

// DeleteCascade removes the user, their places, reviews on those places,
// and reviews the user authored elsewhere, mirroring the transactional
// cascade the real repository runs.
func (r *memUserRepo) DeleteCascade(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.users, id)
	for placeID, p := range r.s.places {
		if p.OwnerID != id {
			continue
		}
		for reviewID, rv := range r.s.reviews {
			if rv.PlaceID == placeID {
				delete(r.s.reviews, reviewID)
			}
		}
		delete(r.s.places, placeID)
	}
	for reviewID, rv := range r.s.reviews {
		if rv.AuthorID == id {
			delete(r.s.reviews, reviewID)
		}
	}
	return nil
}

type memPlaceRepo struct{ s *memStore }

func (r *memPlaceRepo) Create(_ context.Context, place *model.Place) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	place.ID = "place:" + uuid.NewString()
	place.CreatedOn = time.Now()
	place.UpdatedOn = place.CreatedOn
	r.s.places[place.ID] = place
	return nil
}

func (r *memPlaceRepo) GetByID(_ context.Context, id string) (*model.Place, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.places[id], nil
}

func (r *memPlaceRepo) List(_ context.Context, limit int) ([]*model.Place, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	places := make([]*model.Place, 0, len(r.s.places))
	for _, p := range r.s.places {
		if len(places) == limit {
			break
		}
		places = append(places, p)
	}
	return places, nil
}

func (r *memPlaceRepo) ListByOwner(_ context.Context, ownerID string) ([]*model.Place, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	places := make([]*model.Place, 0)
	for _, p := range r.s.places {
		if p.OwnerID == ownerID {
			places = append(places, p)
		}
	}
	return places, nil
}

func (r *memPlaceRepo) Update(_ context.Context, place *model.Place) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	place.UpdatedOn = time.Now()
	r.s.places[place.ID] = place
	return nil
}

func (r *memPlaceRepo) AttachAmenity(_ context.Context, placeID, amenityID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.places[placeID]
	if !ok {
		return nil
	}
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return nil
		}
	}
	p.AmenityIDs = append(p.AmenityIDs, amenityID)
	return nil
}

func (r *memPlaceRepo) DetachAmenity(_ context.Context, placeID, amenityID string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.places[placeID]
	if !ok {
		return nil
	}
	kept := p.AmenityIDs[:0]
	for _, id := range p.AmenityIDs {
		if id != amenityID {
			kept = append(kept, id)
		}
	}
	p.AmenityIDs = kept
	return nil
}

func (r *memPlaceRepo) DeleteCascade(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.places, id)
	for reviewID, rv := range r.s.reviews {
		if rv.PlaceID == id {
			delete(r.s.reviews, reviewID)
		}
	}
	return nil
}

type memReviewRepo struct{ s *memStore }

func (r *memReviewRepo) Create(_ context.Context, review *model.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rv := range r.s.reviews {
		if rv.AuthorID == review.AuthorID && rv.PlaceID == review.PlaceID {
			return database.ErrDuplicate
		}
	}
	review.ID = "review:" + uuid.NewString()
	review.CreatedOn = time.Now()
	review.UpdatedOn = review.CreatedOn
	r.s.reviews[review.ID] = review
	return nil
}

func (r *memReviewRepo) GetByID(_ context.Context, id string) (*model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.reviews[id], nil
}

func (r *memReviewRepo) GetByAuthorAndPlace(_ context.Context, authorID, placeID string) (*model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, rv := range r.s.reviews {
		if rv.AuthorID == authorID && rv.PlaceID == placeID {
			return rv, nil
		}
	}
	return nil, nil
}

func (r *memReviewRepo) ListByPlace(_ context.Context, placeID string) ([]*model.Review, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	reviews := make([]*model.Review, 0)
	for _, rv := range r.s.reviews {
		if rv.PlaceID == placeID {
			reviews = append(reviews, rv)
		}
	}
	return reviews, nil
}

func (r *memReviewRepo) Update(_ context.Context, review *model.Review) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	review.UpdatedOn = time.Now()
	r.s.reviews[review.ID] = review
	return nil
}

func (r *memReviewRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.reviews, id)
	return nil
}

type memAmenityRepo struct{ s *memStore }

func (r *memAmenityRepo) Create(_ context.Context, amenity *model.Amenity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.amenities {
		if a.Name == amenity.Name {
			return database.ErrDuplicate
		}
	}
	amenity.ID = "amenity:" + uuid.NewString()
	amenity.CreatedOn = time.Now()
	amenity.UpdatedOn = amenity.CreatedOn
	r.s.amenities[amenity.ID] = amenity
	return nil
}

func (r *memAmenityRepo) GetByID(_ context.Context, id string) (*model.Amenity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.amenities[id], nil
}

func (r *memAmenityRepo) GetByName(_ context.Context, name string) (*model.Amenity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, a := range r.s.amenities {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, nil
}

func (r *memAmenityRepo) List(_ context.Context, limit int) ([]*model.Amenity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	amenities := make([]*model.Amenity, 0, len(r.s.amenities))
	for _, a := range r.s.amenities {
		if len(amenities) == limit {
			break
		}
		amenities = append(amenities, a)
	}
	return amenities, nil
}

func (r *memAmenityRepo) Update(_ context.Context, amenity *model.Amenity) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	amenity.UpdatedOn = time.Now()
	r.s.amenities[amenity.ID] = amenity
	return nil
}

func (r *memAmenityRepo) DeleteCascade(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.amenities, id)
	for _, p := range r.s.places {
		kept := p.AmenityIDs[:0]
		for _, aid := range p.AmenityIDs {
			if aid != id {
				kept = append(kept, aid)
			}
		}
		p.AmenityIDs = kept
	}
	return nil
}

// ==============================
// Test server
// ==============================

type apiFixture struct {
	server *httptest.Server
	store  *memStore
}

// newAPIServer wires the full stack the way cmd/server does, with the
// in-memory store standing in for the database.
func newAPIServer(t *testing.T) *apiFixture {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	jwtService := jwt.NewTestService(key, "test-issuer", time.Hour)

	store := newMemStore()
	userRepo := &memUserRepo{s: store}
	placeRepo := &memPlaceRepo{s: store}
	reviewRepo := &memReviewRepo{s: store}
	amenityRepo := &memAmenityRepo{s: store}

	authService := service.NewAuthService(service.AuthServiceConfig{
		UserRepo:   userRepo,
		JWTService: jwtService,
	})
	userService := service.NewUserService(service.UserServiceConfig{Repo: userRepo})
	amenityService := service.NewAmenityService(service.AmenityServiceConfig{Repo: amenityRepo})
	placeService := service.NewPlaceService(service.PlaceServiceConfig{
		Repo:        placeRepo,
		UserRepo:    userRepo,
		AmenityRepo: amenityRepo,
	})
	reviewService := service.NewReviewService(service.ReviewServiceConfig{
		Repo:      reviewRepo,
		PlaceRepo: placeRepo,
		UserRepo:  userRepo,
	})

	authHandler := NewAuthHandler(authService)
	userHandler := NewUserHandler(userService, placeService)
	placeHandler := NewPlaceHandler(placeService, reviewService)
	reviewHandler := NewReviewHandler(reviewService)
	amenityHandler := NewAmenityHandler(amenityService)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", Health)

	authMiddleware := middleware.Auth(authService)
	adminOnly := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(middleware.AdminAuth(h))
	}
	mux.HandleFunc("POST /v1/auth/login", authHandler.Login)
	mux.Handle("GET /v1/auth/me", authMiddleware(http.HandlerFunc(authHandler.Me)))

	mux.HandleFunc("GET /v1/users", userHandler.ListUsers)
	mux.HandleFunc("GET /v1/users/{userId}", userHandler.GetUser)
	mux.HandleFunc("GET /v1/users/{userId}/places", userHandler.ListUserPlaces)
	mux.Handle("POST /v1/users", adminOnly(userHandler.CreateUser))
	mux.Handle("PATCH /v1/users/{userId}", authMiddleware(http.HandlerFunc(userHandler.UpdateUser)))
	mux.Handle("DELETE /v1/users/{userId}", authMiddleware(http.HandlerFunc(userHandler.DeleteUser)))

	mux.HandleFunc("GET /v1/places", placeHandler.ListPlaces)
	mux.HandleFunc("GET /v1/places/{placeId}", placeHandler.GetPlace)
	mux.HandleFunc("GET /v1/places/{placeId}/reviews", placeHandler.ListPlaceReviews)
	mux.Handle("POST /v1/places", authMiddleware(http.HandlerFunc(placeHandler.CreatePlace)))
	mux.Handle("PATCH /v1/places/{placeId}", authMiddleware(http.HandlerFunc(placeHandler.UpdatePlace)))
	mux.Handle("DELETE /v1/places/{placeId}", authMiddleware(http.HandlerFunc(placeHandler.DeletePlace)))
	mux.Handle("PUT /v1/places/{placeId}/amenities/{amenityId}", authMiddleware(http.HandlerFunc(placeHandler.AttachAmenity)))
	mux.Handle("DELETE /v1/places/{placeId}/amenities/{amenityId}", authMiddleware(http.HandlerFunc(placeHandler.DetachAmenity)))

	mux.HandleFunc("GET /v1/reviews/{reviewId}", reviewHandler.GetReview)
	mux.Handle("POST /v1/reviews", authMiddleware(http.HandlerFunc(reviewHandler.CreateReview)))
	mux.Handle("PATCH /v1/reviews/{reviewId}", authMiddleware(http.HandlerFunc(reviewHandler.UpdateReview)))
	mux.Handle("DELETE /v1/reviews/{reviewId}", authMiddleware(http.HandlerFunc(reviewHandler.DeleteReview)))

	mux.HandleFunc("GET /v1/amenities", amenityHandler.ListAmenities)
	mux.HandleFunc("GET /v1/amenities/{amenityId}", amenityHandler.GetAmenity)
	mux.Handle("POST /v1/amenities", adminOnly(amenityHandler.CreateAmenity))
	mux.Handle("PATCH /v1/amenities/{amenityId}", adminOnly(amenityHandler.UpdateAmenity))
	mux.Handle("DELETE /v1/amenities/{amenityId}", adminOnly(amenityHandler.DeleteAmenity))

	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Recovery,
	)

	server := httptest.NewServer(wrapped)
	t.Cleanup(server.Close)

	return &apiFixture{
		server: server,
		store:  store,
	}
}

// seedUser inserts a user directly into the store. Low bcrypt cost keeps
// the tests fast; production uses a higher factor.
func (f *apiFixture) seedUser(t *testing.T, email, password string, admin bool) *model.User {
	t.Helper()

	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	hash := string(hashBytes)

	user := &model.User{
		Email:     email,
		Hash:      &hash,
		FirstName: "Test",
		LastName:  "User",
		IsAdmin:   admin,
	}
	repo := &memUserRepo{s: f.store}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

// login exchanges credentials for a bearer token over the API.
func (f *apiFixture) login(t *testing.T, email, password string) string {
	t.Helper()

	status, body := f.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, status, "login failed: %s", body)

	var resp struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	require.NoError(t, json.Unmarshal(body, &resp))
	require.Equal(t, "Bearer", resp.TokenType)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

// do sends a request, returning the status code and raw body. An empty
// token sends the request unauthenticated.
func (f *apiFixture) do(t *testing.T, method, path, token string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequest(method, f.server.URL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decodeData[T any](t *testing.T, body []byte) T {
	t.Helper()
	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &envelope))
	return envelope.Data
}

// ==============================
// Acceptance tests
// ==============================

func TestAPI_LoginAndMe(t *testing.T) {
	f := newAPIServer(t)
	seeded := f.seedUser(t, "alice@example.com", "password-one", false)

	token := f.login(t, "alice@example.com", "password-one")

	status, body := f.do(t, http.MethodGet, "/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, status)
	me := decodeData[model.User](t, body)
	assert.Equal(t, seeded.ID, me.ID)
	assert.Equal(t, "alice@example.com", me.Email)
	assert.False(t, me.IsAdmin)

	// Hash never leaves the API
	assert.NotContains(t, string(body), "hash")
}

func TestAPI_LoginRejectsBadCredentials(t *testing.T) {
	f := newAPIServer(t)
	f.seedUser(t, "alice@example.com", "password-one", false)

	status, _ := f.do(t, http.MethodPost, "/v1/auth/login", "", map[string]string{
		"email":    "alice@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = f.do(t, http.MethodGet, "/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = f.do(t, http.MethodGet, "/v1/auth/me", "not-a-token", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestAPI_AdminCreatesAccount(t *testing.T) {
	f := newAPIServer(t)
	f.seedUser(t, "admin@example.com", "admin-password", true)
	adminToken := f.login(t, "admin@example.com", "admin-password")

	status, body := f.do(t, http.MethodPost, "/v1/users", adminToken, map[string]any{
		"email":      "Bob@Example.COM",
		"password":   "bobs-password",
		"first_name": "Bob",
		"last_name":  "Builder",
	})
	require.Equal(t, http.StatusCreated, status, "create user failed: %s", body)
	created := decodeData[model.User](t, body)
	assert.Equal(t, "bob@example.com", created.Email)
	assert.False(t, created.IsAdmin)

	// The fresh account can log in with the password the admin set
	f.login(t, "bob@example.com", "bobs-password")

	// Same email again conflicts
	status, _ = f.do(t, http.MethodPost, "/v1/users", adminToken, map[string]any{
		"email":      "bob@example.com",
		"password":   "another-password",
		"first_name": "Bob",
		"last_name":  "Duplicate",
	})
	assert.Equal(t, http.StatusConflict, status)
}

func TestAPI_AccountCreationRequiresAdmin(t *testing.T) {
	f := newAPIServer(t)
	f.seedUser(t, "alice@example.com", "password-one", false)
	userToken := f.login(t, "alice@example.com", "password-one")

	payload := map[string]any{
		"email":      "new@example.com",
		"password":   "some-password",
		"first_name": "New",
		"last_name":  "Person",
	}

	status, _ := f.do(t, http.MethodPost, "/v1/users", "", payload)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = f.do(t, http.MethodPost, "/v1/users", userToken, payload)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestAPI_PlaceLifecycle(t *testing.T) {
	f := newAPIServer(t)
	owner := f.seedUser(t, "owner@example.com", "owner-password", false)
	f.seedUser(t, "stranger@example.com", "stranger-password", false)
	f.seedUser(t, "admin@example.com", "admin-password", true)
	ownerToken := f.login(t, "owner@example.com", "owner-password")
	strangerToken := f.login(t, "stranger@example.com", "stranger-password")
	adminToken := f.login(t, "admin@example.com", "admin-password")

	// Creating a place requires authentication
	status, _ := f.do(t, http.MethodPost, "/v1/places", "", map[string]any{
		"title": "Nope", "price": 10.0, "latitude": 0.0, "longitude": 0.0,
	})
	require.Equal(t, http.StatusUnauthorized, status)

	status, body := f.do(t, http.MethodPost, "/v1/places", ownerToken, map[string]any{
		"title":     "Sea Cabin",
		"price":     120.0,
		"latitude":  43.3,
		"longitude": 5.4,
	})
	require.Equal(t, http.StatusCreated, status, "create place failed: %s", body)
	place := decodeData[model.Place](t, body)
	assert.Equal(t, owner.ID, place.OwnerID)

	// Reads are public
	status, body = f.do(t, http.MethodGet, "/v1/places/"+place.ID, "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Sea Cabin", decodeData[model.Place](t, body).Title)

	// A stranger cannot touch it, the owner and an admin can
	status, _ = f.do(t, http.MethodPatch, "/v1/places/"+place.ID, strangerToken, map[string]any{
		"title": "Hijacked",
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, body = f.do(t, http.MethodPatch, "/v1/places/"+place.ID, ownerToken, map[string]any{
		"price": 150.0,
	})
	require.Equal(t, http.StatusOK, status)
	updated := decodeData[model.Place](t, body)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "Sea Cabin", updated.Title)
	assert.Equal(t, owner.ID, updated.OwnerID)

	status, _ = f.do(t, http.MethodPatch, "/v1/places/"+place.ID, adminToken, map[string]any{
		"title": "Sea Cabin (verified)",
	})
	assert.Equal(t, http.StatusOK, status)

	// Amenity catalog is admin-managed, attachment is owner-managed
	status, body = f.do(t, http.MethodPost, "/v1/amenities", ownerToken, map[string]any{"name": "WiFi"})
	require.Equal(t, http.StatusForbidden, status)

	status, body = f.do(t, http.MethodPost, "/v1/amenities", adminToken, map[string]any{"name": "WiFi"})
	require.Equal(t, http.StatusCreated, status, "create amenity failed: %s", body)
	amenity := decodeData[model.Amenity](t, body)

	status, body = f.do(t, http.MethodPut, "/v1/places/"+place.ID+"/amenities/"+amenity.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Contains(t, decodeData[model.Place](t, body).AmenityIDs, amenity.ID)

	status, body = f.do(t, http.MethodDelete, "/v1/places/"+place.ID+"/amenities/"+amenity.ID, ownerToken, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, decodeData[model.Place](t, body).AmenityIDs)

	// Owner's listing shows the place
	status, body = f.do(t, http.MethodGet, "/v1/users/"+owner.ID+"/places", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeData[[]model.Place](t, body), 1)

	// Owner deletes, the place is gone
	status, _ = f.do(t, http.MethodDelete, "/v1/places/"+place.ID, ownerToken, nil)
	require.Equal(t, http.StatusNoContent, status)
	status, _ = f.do(t, http.MethodGet, "/v1/places/"+place.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_ReviewRules(t *testing.T) {
	f := newAPIServer(t)
	f.seedUser(t, "owner@example.com", "owner-password", false)
	f.seedUser(t, "visitor@example.com", "visitor-password", false)
	ownerToken := f.login(t, "owner@example.com", "owner-password")
	visitorToken := f.login(t, "visitor@example.com", "visitor-password")

	status, body := f.do(t, http.MethodPost, "/v1/places", ownerToken, map[string]any{
		"title": "City Loft", "price": 90.0, "latitude": 48.8, "longitude": 2.3,
	})
	require.Equal(t, http.StatusCreated, status)
	place := decodeData[model.Place](t, body)

	// Owners cannot review their own place
	status, body = f.do(t, http.MethodPost, "/v1/reviews", ownerToken, map[string]any{
		"place_id": place.ID, "text": "Five stars, would host again", "rating": 5,
	})
	require.Equal(t, http.StatusUnprocessableEntity, status)
	var pd model.ProblemDetails
	require.NoError(t, json.Unmarshal(body, &pd))
	require.NotEmpty(t, pd.Errors)
	assert.Equal(t, "place_id", pd.Errors[0].Field)

	// Rating is bounded
	status, _ = f.do(t, http.MethodPost, "/v1/reviews", visitorToken, map[string]any{
		"place_id": place.ID, "text": "Off the charts", "rating": 6,
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, body = f.do(t, http.MethodPost, "/v1/reviews", visitorToken, map[string]any{
		"place_id": place.ID, "text": "Lovely stay", "rating": 4,
	})
	require.Equal(t, http.StatusCreated, status, "create review failed: %s", body)
	review := decodeData[model.Review](t, body)
	assert.Equal(t, 4, review.Rating)

	// One review per visitor per place
	status, _ = f.do(t, http.MethodPost, "/v1/reviews", visitorToken, map[string]any{
		"place_id": place.ID, "text": "Second thoughts", "rating": 2,
	})
	assert.Equal(t, http.StatusConflict, status)

	// Missing place beats every other failure
	status, _ = f.do(t, http.MethodPost, "/v1/reviews", visitorToken, map[string]any{
		"place_id": "place:nope", "text": "Ghost", "rating": 99,
	})
	assert.Equal(t, http.StatusNotFound, status)

	// The author edits, the owner cannot
	status, _ = f.do(t, http.MethodPatch, "/v1/reviews/"+review.ID, ownerToken, map[string]any{
		"rating": 1,
	})
	assert.Equal(t, http.StatusForbidden, status)

	status, body = f.do(t, http.MethodPatch, "/v1/reviews/"+review.ID, visitorToken, map[string]any{
		"rating": 5,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, 5, decodeData[model.Review](t, body).Rating)

	status, body = f.do(t, http.MethodGet, "/v1/places/"+place.ID+"/reviews", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, decodeData[[]model.Review](t, body), 1)
}

func TestAPI_UserDeleteCascades(t *testing.T) {
	f := newAPIServer(t)
	owner := f.seedUser(t, "owner@example.com", "owner-password", false)
	f.seedUser(t, "visitor@example.com", "visitor-password", false)
	f.seedUser(t, "admin@example.com", "admin-password", true)
	ownerToken := f.login(t, "owner@example.com", "owner-password")
	visitorToken := f.login(t, "visitor@example.com", "visitor-password")
	adminToken := f.login(t, "admin@example.com", "admin-password")

	status, body := f.do(t, http.MethodPost, "/v1/places", ownerToken, map[string]any{
		"title": "Doomed Villa", "price": 300.0, "latitude": 36.5, "longitude": 28.2,
	})
	require.Equal(t, http.StatusCreated, status)
	place := decodeData[model.Place](t, body)

	status, body = f.do(t, http.MethodPost, "/v1/reviews", visitorToken, map[string]any{
		"place_id": place.ID, "text": "Great while it lasted", "rating": 5,
	})
	require.Equal(t, http.StatusCreated, status)
	review := decodeData[model.Review](t, body)

	// A stranger cannot delete the account
	status, _ = f.do(t, http.MethodDelete, "/v1/users/"+owner.ID, visitorToken, nil)
	assert.Equal(t, http.StatusForbidden, status)

	status, _ = f.do(t, http.MethodDelete, "/v1/users/"+owner.ID, adminToken, nil)
	require.Equal(t, http.StatusNoContent, status)

	// The user, their place, and the place's reviews are all gone
	status, _ = f.do(t, http.MethodGet, "/v1/users/"+owner.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = f.do(t, http.MethodGet, "/v1/places/"+place.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	status, _ = f.do(t, http.MethodGet, "/v1/reviews/"+review.ID, "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestAPI_SelfUpdateRestrictions(t *testing.T) {
	f := newAPIServer(t)
	alice := f.seedUser(t, "alice@example.com", "password-one", false)
	f.seedUser(t, "admin@example.com", "admin-password", true)
	aliceToken := f.login(t, "alice@example.com", "password-one")
	adminToken := f.login(t, "admin@example.com", "admin-password")

	// Profile fields are fine
	status, body := f.do(t, http.MethodPatch, "/v1/users/"+alice.ID, aliceToken, map[string]any{
		"first_name": "Alicia",
	})
	require.Equal(t, http.StatusOK, status, "self update failed: %s", body)
	assert.Equal(t, "Alicia", decodeData[model.User](t, body).FirstName)

	// Email and password are admin-only
	status, _ = f.do(t, http.MethodPatch, "/v1/users/"+alice.ID, aliceToken, map[string]any{
		"email": "alice2@example.com",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, status)

	status, body = f.do(t, http.MethodPatch, "/v1/users/"+alice.ID, adminToken, map[string]any{
		"email": "alice2@example.com",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice2@example.com", decodeData[model.User](t, body).Email)
}

func TestAPI_HealthAndUnknownRoutes(t *testing.T) {
	f := newAPIServer(t)

	status, body := f.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	status, _ = f.do(t, http.MethodGet, "/v1/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
}
