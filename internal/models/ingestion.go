package models

// IngestionType identifies which scraper feed a payload came from.
type IngestionType string

const (
	// IngestionCompletedEvents is the feed of events whose results are known
	IngestionCompletedEvents IngestionType = "completed_events"
	// IngestionUpcomingEvents is the feed of scheduled events
	IngestionUpcomingEvents IngestionType = "upcoming_events"
)

// IngestionPayload is the top-level body posted by the scraper.
type IngestionPayload struct {
	// Data may be an empty array; a missing field is rejected downstream.
	Type IngestionType  `json:"type" validate:"required,ingestion_type"`
	Data []ScrapedEvent `json:"data"`
}

// ScrapedEvent is one event as scraped, before normalization.
// Date and location are free text, e.g. "November 01, 2025" and
// "Las Vegas, Nevada, USA".
type ScrapedEvent struct {
	Name      string         `json:"name"`
	Date      string         `json:"date"`
	Location  string         `json:"location,omitempty"`
	Venue     string         `json:"venue,omitempty"`
	BannerURL string         `json:"bannerUrl,omitempty"`
	EventURL  string         `json:"eventUrl,omitempty"`
	Fights    []ScrapedFight `json:"fights,omitempty"`
}

// ScrapedFighter is a fighter reference inside a scraped fight. Name is
// free text ("Jose Aldo Junior"); the stat counters are only present on
// completed-event feeds and only trusted there.
type ScrapedFighter struct {
	Name       string `json:"name"`
	Nickname   string `json:"nickname,omitempty"`
	Country    string `json:"country,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
	Wins       *int   `json:"wins,omitempty"`
	Losses     *int   `json:"losses,omitempty"`
	Draws      *int   `json:"draws,omitempty"`
	NoContests *int   `json:"noContests,omitempty"`
}

// ScrapedFight is one bout on a scraped card. Winner, Result and Round are
// free text as delivered by the scraper.
type ScrapedFight struct {
	FighterA     ScrapedFighter `json:"fighterA"`
	FighterB     ScrapedFighter `json:"fighterB"`
	WeightClass  string         `json:"weightClass,omitempty"`
	IsMainEvent  bool           `json:"isMainEvent,omitempty"`
	IsTitleFight bool           `json:"isTitleFight,omitempty"`
	Winner       string         `json:"winner,omitempty"`
	Result       string         `json:"result,omitempty"`
	Round        string         `json:"round,omitempty"`
	Method       string         `json:"method,omitempty"`
}

// EntityCounts tracks created/updated tallies for one entity type in a batch.
type EntityCounts struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// IngestionSummary is the always-returned description of a batch run.
// Errors is ordered by occurrence; a non-empty list still means Success.
type IngestionSummary struct {
	Success   bool          `json:"success"`
	Type      IngestionType `json:"type"`
	Total     int           `json:"total"`
	Events    EntityCounts  `json:"events"`
	Fighters  EntityCounts  `json:"fighters"`
	Fights    EntityCounts  `json:"fights"`
	Errors    []string      `json:"errors"`
	Timestamp string        `json:"timestamp"`
}
