package handlers

import (
	"net/http"

	"github.com/fightpulse/fightpulse-api/internal/apperror"
	"github.com/fightpulse/fightpulse-api/internal/database"
	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/fightpulse/fightpulse-api/internal/request"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// FollowHandler manages the user-follows-fighter registry.
type FollowHandler struct {
	follows database.FollowRepositoryInterface
	logger  *zap.Logger
}

// NewFollowHandler creates a new follow handler
func NewFollowHandler(follows database.FollowRepositoryInterface, logger *zap.Logger) *FollowHandler {
	return &FollowHandler{follows: follows, logger: logger}
}

// RegisterRoutes registers follow routes on the given router
// The router should already have the /follows prefix
func (h *FollowHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/fighters/{id}/follow", h.Follow).Methods("POST")
	r.HandleFunc("/fighters/{id}/follow", h.Unfollow).Methods("DELETE")
	r.HandleFunc("/user/follows", h.List).Methods("GET")
}

// FollowResponse reports the result of a follow or unfollow call.
type FollowResponse struct {
	Following bool `json:"following"`
}

// Follow records that the caller follows a fighter. Following a fighter
// twice is a no-op, not an error.
func (h *FollowHandler) Follow(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}

	fighterID, ok := fighterIDFromPath(w, r)
	if !ok {
		return
	}

	follow := &models.Follow{
		ID:        uuid.New(),
		UserID:    user.ID,
		FighterID: fighterID,
	}

	if err := h.follows.Create(r.Context(), follow); err != nil {
		if apperror.IsKind(err, apperror.KindConflict) {
			respondJSON(w, http.StatusOK, FollowResponse{Following: true})
			return
		}
		if database.IsForeignKeyViolation(err) {
			respondJSONError(w, http.StatusNotFound, "Not Found", "Fighter not found")
			return
		}
		h.logger.Error("follow_create_failed",
			zap.String("fighter_id", fighterID.String()),
			zap.Error(err),
		)
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to follow fighter")
		return
	}

	respondJSON(w, http.StatusCreated, FollowResponse{Following: true})
}

// Unfollow removes a follow. Unfollowing a fighter the caller never followed
// succeeds quietly.
func (h *FollowHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}

	fighterID, ok := fighterIDFromPath(w, r)
	if !ok {
		return
	}

	if _, err := h.follows.DeleteByPair(r.Context(), user.ID, fighterID); err != nil {
		h.logger.Error("follow_delete_failed",
			zap.String("fighter_id", fighterID.String()),
			zap.Error(err),
		)
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to unfollow fighter")
		return
	}

	respondJSON(w, http.StatusOK, FollowResponse{Following: false})
}

// List returns the caller's followed fighters, most recent first.
func (h *FollowHandler) List(w http.ResponseWriter, r *http.Request) {
	user := request.UserFromContext(r)
	if user == nil {
		respondJSONError(w, http.StatusUnauthorized, "Unauthorized", "User not found in context")
		return
	}

	followed, err := h.follows.ListByUser(r.Context(), user.ID)
	if err != nil {
		h.logger.Error("follow_list_failed", zap.Error(err))
		respondJSONError(w, http.StatusInternalServerError, "Internal Server Error", "Failed to list follows")
		return
	}

	if followed == nil {
		followed = []*models.FollowedFighter{}
	}

	respondJSON(w, http.StatusOK, followed)
}

func fighterIDFromPath(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	vars := mux.Vars(r)
	fighterID, err := uuid.Parse(vars["id"])
	if err != nil {
		respondJSONError(w, http.StatusBadRequest, "Bad Request", "Invalid fighter ID")
		return uuid.Nil, false
	}
	return fighterID, true
}
