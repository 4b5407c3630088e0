package handler

import (
	"net/http"
	"strconv"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/service"
)

// PlaceHandler handles place endpoints
type PlaceHandler struct {
	placeService  *service.PlaceService
	reviewService *service.ReviewService
}

// NewPlaceHandler creates a new place handler
func NewPlaceHandler(placeService *service.PlaceService, reviewService *service.ReviewService) *PlaceHandler {
	return &PlaceHandler{
		placeService:  placeService,
		reviewService: reviewService,
	}
}

// CreatePlace handles POST /v1/places - the caller becomes the owner
func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePlaceRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	place, err := h.placeService.CreatePlace(r.Context(), actorFromContext(r), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, place, map[string]string{
		"self": "/v1/places/" + place.ID,
	})
}

// GetPlace handles GET /v1/places/{placeId}
func (h *PlaceHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("placeId")
	if placeID == "" {
		WriteError(w, model.NewBadRequestError("place ID required"))
		return
	}

	place, err := h.placeService.GetPlace(r.Context(), placeID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, place, map[string]string{
		"self":    "/v1/places/" + place.ID,
		"owner":   "/v1/users/" + place.OwnerID,
		"reviews": "/v1/places/" + place.ID + "/reviews",
	})
}

// ListPlaces handles GET /v1/places
func (h *PlaceHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil {
			limit = l
		}
	}

	places, err := h.placeService.ListPlaces(r.Context(), limit)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list places"))
		return
	}

	WriteCollection(w, http.StatusOK, places, map[string]string{
		"self": "/v1/places",
	})
}

// ListPlaceReviews handles GET /v1/places/{placeId}/reviews
func (h *PlaceHandler) ListPlaceReviews(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("placeId")
	if placeID == "" {
		WriteError(w, model.NewBadRequestError("place ID required"))
		return
	}

	reviews, err := h.reviewService.ListReviewsByPlace(r.Context(), placeID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteCollection(w, http.StatusOK, reviews, map[string]string{
		"self":  "/v1/places/" + placeID + "/reviews",
		"place": "/v1/places/" + placeID,
	})
}

// UpdatePlace handles PATCH /v1/places/{placeId} - owner or admin
func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("placeId")
	if placeID == "" {
		WriteError(w, model.NewBadRequestError("place ID required"))
		return
	}

	var req model.UpdatePlaceRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	place, err := h.placeService.UpdatePlace(r.Context(), actorFromContext(r), placeID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, place, map[string]string{
		"self": "/v1/places/" + place.ID,
	})
}

// DeletePlace handles DELETE /v1/places/{placeId} - owner or admin, cascades
func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("placeId")
	if placeID == "" {
		WriteError(w, model.NewBadRequestError("place ID required"))
		return
	}

	if err := h.placeService.DeletePlace(r.Context(), actorFromContext(r), placeID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}

// AttachAmenity handles PUT /v1/places/{placeId}/amenities/{amenityId}
func (h *PlaceHandler) AttachAmenity(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("placeId")
	amenityID := r.PathValue("amenityId")
	if placeID == "" || amenityID == "" {
		WriteError(w, model.NewBadRequestError("place ID and amenity ID required"))
		return
	}

	place, err := h.placeService.AttachAmenity(r.Context(), actorFromContext(r), placeID, amenityID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, place, map[string]string{
		"self": "/v1/places/" + place.ID,
	})
}

// DetachAmenity handles DELETE /v1/places/{placeId}/amenities/{amenityId}
func (h *PlaceHandler) DetachAmenity(w http.ResponseWriter, r *http.Request) {
	placeID := r.PathValue("placeId")
	amenityID := r.PathValue("amenityId")
	if placeID == "" || amenityID == "" {
		WriteError(w, model.NewBadRequestError("place ID and amenity ID required"))
		return
	}

	place, err := h.placeService.DetachAmenity(r.Context(), actorFromContext(r), placeID, amenityID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, place, map[string]string{
		"self": "/v1/places/" + place.ID,
	})
}
