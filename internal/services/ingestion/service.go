// Package ingestion turns loosely structured scraped payloads into canonical
// event, fighter and fight rows. Each event and each fight is its own failure
// domain: one bad record is recorded and skipped, the batch always runs to
// the end and reports what happened.
package ingestion

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/apperror"
	"github.com/fightpulse/fightpulse-api/internal/database"
	"github.com/fightpulse/fightpulse-api/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service coordinates normalization and idempotent upserts for one batch.
type Service struct {
	events   database.EventRepositoryInterface
	fighters database.FighterRepositoryInterface
	fights   database.FightRepositoryInterface
	logger   *zap.Logger
}

// NewService creates a new ingestion service
func NewService(
	events database.EventRepositoryInterface,
	fighters database.FighterRepositoryInterface,
	fights database.FightRepositoryInterface,
	logger *zap.Logger,
) *Service {
	return &Service{
		events:   events,
		fighters: fighters,
		fights:   fights,
		logger:   logger,
	}
}

// upsertOutcome reports what a single upsert did.
type upsertOutcome int

const (
	outcomeCreated upsertOutcome = iota
	outcomeUpdated
	outcomeUnchanged
)

// Ingest processes a scraped payload and returns a summary of the run. Only a
// malformed payload shape produces an error; everything downstream is partial
// success captured in the summary.
func (s *Service) Ingest(ctx context.Context, payload *models.IngestionPayload) (*models.IngestionSummary, error) {
	if payload == nil || payload.Type == "" || payload.Data == nil {
		return nil, apperror.Validation("invalid payload, expected { type: string, data: array }")
	}
	if payload.Type != models.IngestionCompletedEvents && payload.Type != models.IngestionUpcomingEvents {
		return nil, apperror.Validation(`invalid type, must be "completed_events" or "upcoming_events"`)
	}

	isCompleted := payload.Type == models.IngestionCompletedEvents
	summary := &models.IngestionSummary{
		Success: true,
		Type:    payload.Type,
		Total:   len(payload.Data),
		Errors:  []string{},
	}

	for i := range payload.Data {
		scraped := &payload.Data[i]

		date, ok := parseEventDate(scraped.Date)
		if !ok {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Invalid date for event: %s", scraped.Name))
			continue
		}

		event, outcome, err := s.upsertEvent(ctx, scraped, date, isCompleted)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Error processing %s: %v", scraped.Name, err))
			s.logger.Warn("event_ingest_failed",
				zap.String("event", scraped.Name),
				zap.Error(err),
			)
			continue
		}
		count(&summary.Events, outcome)

		for j := range scraped.Fights {
			s.ingestFight(ctx, event, &scraped.Fights[j], isCompleted, summary)
		}
	}

	summary.Timestamp = time.Now().UTC().Format(time.RFC3339)

	s.logger.Info("ingestion_batch_complete",
		zap.String("type", string(payload.Type)),
		zap.Int("total", summary.Total),
		zap.Int("events_created", summary.Events.Created),
		zap.Int("events_updated", summary.Events.Updated),
		zap.Int("error_count", len(summary.Errors)),
	)

	return summary, nil
}

// upsertEvent creates or updates one event, keyed by event_url when the
// scraper supplies it, otherwise by (name, date).
func (s *Service) upsertEvent(ctx context.Context, scraped *models.ScrapedEvent, date time.Time, isCompleted bool) (*models.Event, upsertOutcome, error) {
	loc := parseLocation(scraped.Location)

	var existing *models.Event
	var err error
	if scraped.EventURL != "" {
		existing, err = s.events.GetByURL(ctx, scraped.EventURL)
	} else {
		existing, err = s.events.GetByNameAndDate(ctx, scraped.Name, date)
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, outcomeUnchanged, err
	}

	if existing != nil {
		existing.Name = scraped.Name
		existing.Date = date
		existing.Location = loc.Raw
		existing.City = loc.City
		existing.Country = loc.Country
		existing.Venue = optional(scraped.Venue)
		existing.BannerURL = optional(scraped.BannerURL)
		existing.Promotion = models.DefaultPromotion
		existing.IsCompleted = isCompleted
		if err := s.events.Update(ctx, existing); err != nil {
			return nil, outcomeUnchanged, err
		}
		return existing, outcomeUpdated, nil
	}

	event := &models.Event{
		ID:          uuid.New(),
		Name:        scraped.Name,
		Date:        date,
		Location:    loc.Raw,
		City:        loc.City,
		Country:     loc.Country,
		Venue:       optional(scraped.Venue),
		BannerURL:   optional(scraped.BannerURL),
		Promotion:   models.DefaultPromotion,
		IsCompleted: isCompleted,
		EventURL:    optional(scraped.EventURL),
	}
	if err := s.events.Create(ctx, event); err != nil {
		// A concurrent batch can win the event_url insert race. The unique
		// constraint is the arbiter; fold the loss into an update.
		if database.IsUniqueViolation(err) && scraped.EventURL != "" {
			won, getErr := s.events.GetByURL(ctx, scraped.EventURL)
			if getErr != nil {
				return nil, outcomeUnchanged, getErr
			}
			return s.updateExistingEvent(ctx, won, scraped, date, loc, isCompleted)
		}
		return nil, outcomeUnchanged, err
	}

	return event, outcomeCreated, nil
}

func (s *Service) updateExistingEvent(ctx context.Context, event *models.Event, scraped *models.ScrapedEvent, date time.Time, loc parsedLocation, isCompleted bool) (*models.Event, upsertOutcome, error) {
	event.Name = scraped.Name
	event.Date = date
	event.Location = loc.Raw
	event.City = loc.City
	event.Country = loc.Country
	event.Venue = optional(scraped.Venue)
	event.BannerURL = optional(scraped.BannerURL)
	event.Promotion = models.DefaultPromotion
	event.IsCompleted = isCompleted
	if err := s.events.Update(ctx, event); err != nil {
		return nil, outcomeUnchanged, err
	}
	return event, outcomeUpdated, nil
}

// ingestFight resolves both corners, maps the result and upserts the fight.
// Failures are recorded on the summary and never bubble past the fight.
func (s *Service) ingestFight(ctx context.Context, event *models.Event, scraped *models.ScrapedFight, isCompleted bool, summary *models.IngestionSummary) {
	fighterA, outcomeA, err := s.findOrCreateFighter(ctx, &scraped.FighterA, scraped.WeightClass, isCompleted)
	if err != nil {
		s.recordFightError(summary, event, scraped, err)
		return
	}
	count(&summary.Fighters, outcomeA)

	fighterB, outcomeB, err := s.findOrCreateFighter(ctx, &scraped.FighterB, scraped.WeightClass, isCompleted)
	if err != nil {
		s.recordFightError(summary, event, scraped, err)
		return
	}
	count(&summary.Fighters, outcomeB)

	result := mapResult(scraped.Winner, scraped.Result, scraped.FighterA.Name, scraped.FighterB.Name)
	round := parseRound(scraped.Round)

	existing, err := s.fights.GetByParticipants(ctx, event.ID, fighterA.ID, fighterB.ID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		s.recordFightError(summary, event, scraped, err)
		return
	}

	if existing != nil {
		existing.WeightClass = optional(scraped.WeightClass)
		existing.IsMainEvent = scraped.IsMainEvent
		existing.IsTitleFight = scraped.IsTitleFight
		existing.Result = result
		existing.ResultRound = round
		existing.ResultMethod = optional(scraped.Method)
		if err := s.fights.Update(ctx, existing); err != nil {
			s.recordFightError(summary, event, scraped, err)
			return
		}
		summary.Fights.Updated++
		return
	}

	fight := &models.Fight{
		ID:           uuid.New(),
		EventID:      event.ID,
		FighterAID:   fighterA.ID,
		FighterBID:   fighterB.ID,
		WeightClass:  optional(scraped.WeightClass),
		IsMainEvent:  scraped.IsMainEvent,
		IsTitleFight: scraped.IsTitleFight,
		Result:       result,
		ResultRound:  round,
		ResultMethod: optional(scraped.Method),
	}
	if err := s.fights.Create(ctx, fight); err != nil {
		if database.IsUniqueViolation(err) {
			// Lost a race on the (event, A, B) key; the row exists, count it
			// as an update on the next run rather than failing the fight.
			summary.Fights.Updated++
			return
		}
		s.recordFightError(summary, event, scraped, err)
		return
	}
	summary.Fights.Created++
}

// findOrCreateFighter looks a fighter up by exact (firstName, lastName) and
// creates it on first appearance. Profile and stat counters are overwritten
// only when a completed-event payload carries a win count; upcoming cards
// leave existing rows untouched.
func (s *Service) findOrCreateFighter(ctx context.Context, scraped *models.ScrapedFighter, weightClass string, isCompleted bool) (*models.Fighter, upsertOutcome, error) {
	firstName, lastName, ok := parseFighterName(scraped.Name)
	if !ok {
		return nil, outcomeUnchanged, apperror.UnresolvedFighterName(scraped.Name)
	}

	existing, err := s.fighters.GetByName(ctx, firstName, lastName)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, outcomeUnchanged, err
	}

	if existing != nil {
		if !isCompleted || scraped.Wins == nil {
			return existing, outcomeUnchanged, nil
		}

		if scraped.Nickname != "" {
			existing.Nickname = &scraped.Nickname
		}
		existing.WeightClass = optional(weightClass)
		if scraped.Country != "" {
			existing.Country = &scraped.Country
		}
		if scraped.ImageURL != "" {
			existing.ImageURL = &scraped.ImageURL
		}
		existing.Wins = valueOr(scraped.Wins, 0)
		existing.Losses = valueOr(scraped.Losses, 0)
		existing.Draws = valueOr(scraped.Draws, 0)
		existing.NoContests = valueOr(scraped.NoContests, 0)

		if err := s.fighters.Update(ctx, existing); err != nil {
			return nil, outcomeUnchanged, err
		}
		return existing, outcomeUpdated, nil
	}

	fighter := &models.Fighter{
		ID:          uuid.New(),
		FirstName:   firstName,
		LastName:    lastName,
		Nickname:    optional(scraped.Nickname),
		WeightClass: optional(weightClass),
		Country:     optional(scraped.Country),
		ImageURL:    optional(scraped.ImageURL),
		Wins:        valueOr(scraped.Wins, 0),
		Losses:      valueOr(scraped.Losses, 0),
		Draws:       valueOr(scraped.Draws, 0),
		NoContests:  valueOr(scraped.NoContests, 0),
	}
	if err := s.fighters.Create(ctx, fighter); err != nil {
		return nil, outcomeUnchanged, err
	}

	return fighter, outcomeCreated, nil
}

func (s *Service) recordFightError(summary *models.IngestionSummary, event *models.Event, scraped *models.ScrapedFight, err error) {
	summary.Errors = append(summary.Errors, fmt.Sprintf(
		"Error processing fight %s vs %s on %s: %v",
		scraped.FighterA.Name, scraped.FighterB.Name, event.Name, err,
	))
	s.logger.Warn("fight_ingest_failed",
		zap.String("event", event.Name),
		zap.String("fighter_a", scraped.FighterA.Name),
		zap.String("fighter_b", scraped.FighterB.Name),
		zap.Error(err),
	)
}

func count(counts *models.EntityCounts, outcome upsertOutcome) {
	switch outcome {
	case outcomeCreated:
		counts.Created++
	case outcomeUpdated:
		counts.Updated++
	}
}

// optional returns nil for an empty scraped string so it stores as NULL.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func valueOr(p *int, fallback int) int {
	if p == nil {
		return fallback
	}
	return *p
}
