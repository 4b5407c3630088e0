package handler

import (
	"net/http"
	"strconv"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/service"
)

// UserHandler handles user account endpoints
type UserHandler struct {
	userService  *service.UserService
	placeService *service.PlaceService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, placeService *service.PlaceService) *UserHandler {
	return &UserHandler{
		userService:  userService,
		placeService: placeService,
	}
}

// CreateUser handles POST /v1/users - admin creates an account
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req model.CreateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	user, err := h.userService.CreateUser(r.Context(), actorFromContext(r), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, user, map[string]string{
		"self": "/v1/users/" + user.ID,
	})
}

// GetUser handles GET /v1/users/{userId}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, map[string]string{
		"self":   "/v1/users/" + user.ID,
		"places": "/v1/users/" + user.ID + "/places",
	})
}

// ListUsers handles GET /v1/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil {
			limit = l
		}
	}

	users, err := h.userService.ListUsers(r.Context(), limit)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list users"))
		return
	}

	WriteCollection(w, http.StatusOK, users, map[string]string{
		"self": "/v1/users",
	})
}

// ListUserPlaces handles GET /v1/users/{userId}/places
func (h *UserHandler) ListUserPlaces(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	places, err := h.placeService.ListPlacesByOwner(r.Context(), userID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, places, map[string]string{
		"self":  "/v1/users/" + userID + "/places",
		"owner": "/v1/users/" + userID,
	})
}

// UpdateUser handles PATCH /v1/users/{userId} - self or admin
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	var req model.UpdateUserRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	user, err := h.userService.UpdateUser(r.Context(), actorFromContext(r), userID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, user, map[string]string{
		"self": "/v1/users/" + user.ID,
	})
}

// DeleteUser handles DELETE /v1/users/{userId} - self or admin, cascades
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID := r.PathValue("userId")
	if userID == "" {
		WriteError(w, model.NewBadRequestError("user ID required"))
		return
	}

	if err := h.userService.DeleteUser(r.Context(), actorFromContext(r), userID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
