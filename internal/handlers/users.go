package handlers

import (
	"net/http"

	"github.com/fightpulse/fightpulse-api/internal/request"
	"github.com/gorilla/mux"
)

// UserHandler exposes the synced user record.
type UserHandler struct{}

// NewUserHandler creates a new user handler
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// RegisterRoutes registers user routes on the given router
// The router should already have the /user prefix
func (h *UserHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/profile", h.Profile).Methods("POST")
	r.HandleFunc("/status", h.Status).Methods("GET")
}

// Profile returns the caller's user record. The auth middleware has already
// synced the verified claim into the database by the time this runs, so the
// handler only reads the result back out of the request context.
func (h *UserHandler) Profile(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// StatusResponse reports whether the caller's email is verified.
type StatusResponse struct {
	Verified bool `json:"verified"`
}

// Status returns the caller's verification status.
func (h *UserHandler) Status(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}

	respondJSON(w, http.StatusOK, StatusResponse{Verified: user.EmailVerified})
}
