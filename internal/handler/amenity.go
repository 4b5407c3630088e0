package handler

import (
	"net/http"
	"strconv"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/service"
)

// AmenityHandler handles amenity catalog endpoints
type AmenityHandler struct {
	amenityService *service.AmenityService
}

// NewAmenityHandler creates a new amenity handler
func NewAmenityHandler(amenityService *service.AmenityService) *AmenityHandler {
	return &AmenityHandler{
		amenityService: amenityService,
	}
}

// CreateAmenity handles POST /v1/amenities - admin only
func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	var req model.CreateAmenityRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	amenity, err := h.amenityService.CreateAmenity(r.Context(), actorFromContext(r), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, amenity, map[string]string{
		"self": "/v1/amenities/" + amenity.ID,
	})
}

// GetAmenity handles GET /v1/amenities/{amenityId}
func (h *AmenityHandler) GetAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := r.PathValue("amenityId")
	if amenityID == "" {
		WriteError(w, model.NewBadRequestError("amenity ID required"))
		return
	}

	amenity, err := h.amenityService.GetAmenity(r.Context(), amenityID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, amenity, map[string]string{
		"self": "/v1/amenities/" + amenity.ID,
	})
}

// ListAmenities handles GET /v1/amenities
func (h *AmenityHandler) ListAmenities(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if l, err := strconv.Atoi(v); err == nil {
			limit = l
		}
	}

	amenities, err := h.amenityService.ListAmenities(r.Context(), limit)
	if err != nil {
		WriteError(w, MapServiceErrorWithContext(err, "list amenities"))
		return
	}

	WriteCollection(w, http.StatusOK, amenities, map[string]string{
		"self": "/v1/amenities",
	})
}

// UpdateAmenity handles PATCH /v1/amenities/{amenityId} - admin only
func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := r.PathValue("amenityId")
	if amenityID == "" {
		WriteError(w, model.NewBadRequestError("amenity ID required"))
		return
	}

	var req model.UpdateAmenityRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	amenity, err := h.amenityService.UpdateAmenity(r.Context(), actorFromContext(r), amenityID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, amenity, map[string]string{
		"self": "/v1/amenities/" + amenity.ID,
	})
}

// DeleteAmenity handles DELETE /v1/amenities/{amenityId} - admin only,
// strips the amenity from every place
func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	amenityID := r.PathValue("amenityId")
	if amenityID == "" {
		WriteError(w, model.NewBadRequestError("amenity ID required"))
		return
	}

	if err := h.amenityService.DeleteAmenity(r.Context(), actorFromContext(r), amenityID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
