package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/apperror"
	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/fightpulse/fightpulse-api/internal/services/ingestion"
	"github.com/fightpulse/fightpulse-api/internal/validation"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// IngestionHandler receives scraped event batches.
type IngestionHandler struct {
	service *ingestion.Service
	logger  *zap.Logger
}

// NewIngestionHandler creates a new ingestion handler
func NewIngestionHandler(service *ingestion.Service, logger *zap.Logger) *IngestionHandler {
	return &IngestionHandler{service: service, logger: logger}
}

// RegisterRoutes registers ingestion routes on the given router
// The router should already have the /ingestion prefix
func (h *IngestionHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/events", h.IngestEvents).Methods("POST")
}

// IngestEvents processes a scraper batch. The endpoint always answers 200 so
// the scraper never retries a batch wholesale; failures ride in the body.
func (h *IngestionHandler) IngestEvents(w http.ResponseWriter, r *http.Request) {
	var payload models.IngestionPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondIngestionFailure(w, "invalid payload, expected { type: string, data: array }")
		return
	}

	if err := validation.Validate.Struct(&payload); err != nil {
		respondIngestionFailure(w, validationMessage(err))
		return
	}

	summary, err := h.service.Ingest(r.Context(), &payload)
	if err != nil {
		if apperror.IsKind(err, apperror.KindValidation) {
			respondIngestionFailure(w, err.Error())
			return
		}
		h.logger.Error("ingestion_failed", zap.Error(err))
		respondIngestionFailure(w, "internal error processing batch")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(summary); err != nil {
		h.logger.Error("failed_to_encode_ingestion_summary", zap.Error(err))
	}
}

// validationMessage maps struct validation failures onto the error strings
// the scraper already knows.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			if fe.Tag() == "ingestion_type" {
				return `invalid type, must be "completed_events" or "upcoming_events"`
			}
		}
	}
	return "invalid payload, expected { type: string, data: array }"
}

// respondIngestionFailure writes the in-body failure shape with HTTP 200.
func respondIngestionFailure(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	response := map[string]any{
		"success":   false,
		"error":     message,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}

	_ = json.NewEncoder(w).Encode(response)
}
