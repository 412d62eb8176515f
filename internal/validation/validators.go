package validation

import (
	"fmt"

	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/go-playground/validator/v10"
)

var (
	// Validate is a shared validator instance
	Validate *validator.Validate
)

func init() {
	Validate = validator.New()

	if err := Validate.RegisterValidation("ingestion_type", validateIngestionType); err != nil {
		panic(fmt.Sprintf("failed to register ingestion_type validator: %v", err))
	}
}

// validateIngestionType validates that a string is a known scraper feed type
func validateIngestionType(fl validator.FieldLevel) bool {
	switch models.IngestionType(fl.Field().String()) {
	case models.IngestionCompletedEvents, models.IngestionUpcomingEvents:
		return true
	default:
		return false
	}
}

// ValidateIngestionType validates a feed type outside of struct validation
func ValidateIngestionType(value string) error {
	switch models.IngestionType(value) {
	case models.IngestionCompletedEvents, models.IngestionUpcomingEvents:
		return nil
	default:
		return fmt.Errorf(`invalid type %q, must be "completed_events" or "upcoming_events"`, value)
	}
}
