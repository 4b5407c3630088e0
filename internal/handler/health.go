package handler

import (
	"net/http"
)

// Health handles GET /health. Liveness only; it does not touch the database.
func Health(w http.ResponseWriter, r *http.Request) {
	WriteJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
	})
}
