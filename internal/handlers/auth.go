package handlers

import (
	"net/http"

	"github.com/fightpulse/fightpulse-api/internal/services/oidc"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// AuthHandler serves the login configuration the frontend needs to start the
// Auth0 authorization flow.
type AuthHandler struct {
	client *oidc.Client
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(client *oidc.Client) *AuthHandler {
	return &AuthHandler{client: client}
}

// RegisterRoutes registers auth routes on the given router
// The router should already have the /auth prefix
func (h *AuthHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/login", h.GetLogin).Methods("GET")
}

// GetLogin returns the OIDC login configuration. State is generated per call;
// the frontend echoes it back through the redirect.
func (h *AuthHandler) GetLogin(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.client.LoginConfig(uuid.NewString()))
}
