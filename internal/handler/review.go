package handler

import (
	"net/http"

	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/model"
	"github.com/Tomlena-tech/holbertonschool-hbnb-sub000/internal/service"
)

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewService *service.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// CreateReview handles POST /v1/reviews
func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req model.CreateReviewRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	review, err := h.reviewService.CreateReview(r.Context(), actorFromContext(r), &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusCreated, review, map[string]string{
		"self":  "/v1/reviews/" + review.ID,
		"place": "/v1/places/" + review.PlaceID,
	})
}

// GetReview handles GET /v1/reviews/{reviewId}
func (h *ReviewHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	reviewID := r.PathValue("reviewId")
	if reviewID == "" {
		WriteError(w, model.NewBadRequestError("review ID required"))
		return
	}

	review, err := h.reviewService.GetReview(r.Context(), reviewID)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, review, map[string]string{
		"self":   "/v1/reviews/" + review.ID,
		"place":  "/v1/places/" + review.PlaceID,
		"author": "/v1/users/" + review.AuthorID,
	})
}

// UpdateReview handles PATCH /v1/reviews/{reviewId} - author or admin
func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	reviewID := r.PathValue("reviewId")
	if reviewID == "" {
		WriteError(w, model.NewBadRequestError("review ID required"))
		return
	}

	var req model.UpdateReviewRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	if fieldErrors := req.Validate(); len(fieldErrors) > 0 {
		WriteError(w, model.NewValidationError(fieldErrors))
		return
	}

	review, err := h.reviewService.UpdateReview(r.Context(), actorFromContext(r), reviewID, &req)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteData(w, http.StatusOK, review, map[string]string{
		"self": "/v1/reviews/" + review.ID,
	})
}

// DeleteReview handles DELETE /v1/reviews/{reviewId} - author or admin
func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := r.PathValue("reviewId")
	if reviewID == "" {
		WriteError(w, model.NewBadRequestError("review ID required"))
		return
	}

	if err := h.reviewService.DeleteReview(r.Context(), actorFromContext(r), reviewID); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteNoContent(w)
}
