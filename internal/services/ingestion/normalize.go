package ingestion

import (
	"strconv"
	"strings"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
)

// eventDateLayouts are the date formats the scraper is known to emit.
// "November 01, 2025" is the primary one.
var eventDateLayouts = []string{
	"January 02, 2006",
	"January 2, 2006",
	"Jan 02, 2006",
	"Jan 2, 2006",
	"2006-01-02",
	"01/02/2006",
	time.RFC3339,
}

// parseEventDate parses a human-readable event date. An unparseable date
// rejects the owning event, so callers skip and record rather than abort.
func parseEventDate(raw string) (time.Time, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}

// parsedLocation is the derived location split; Raw is preserved verbatim.
type parsedLocation struct {
	Raw     *string
	City    *string
	Country *string
}

// parseLocation splits "Las Vegas, Nevada, USA" into city and country.
// The last component is the country; the first is the city only when there
// are at least two components. Empty input yields all nils.
func parseLocation(raw string) parsedLocation {
	if raw == "" {
		return parsedLocation{}
	}

	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	loc := parsedLocation{Raw: &raw}
	if country := parts[len(parts)-1]; country != "" {
		loc.Country = &country
	}
	if len(parts) > 1 && parts[0] != "" {
		city := parts[0]
		loc.City = &city
	}

	return loc
}

// parseFighterName splits a free-text fighter name into first and last name.
// A single token is treated entirely as a last name; extra tokens beyond the
// first join into the last name so multi-word surnames survive
// ("Jose Aldo Junior" → "Jose", "Aldo Junior"). No tokens means the fight
// cannot be resolved.
func parseFighterName(raw string) (firstName, lastName string, ok bool) {
	tokens := strings.Fields(raw)
	switch len(tokens) {
	case 0:
		return "", "", false
	case 1:
		return "", tokens[0], true
	default:
		return tokens[0], strings.Join(tokens[1:], " "), true
	}
}

// mapResult resolves a fight outcome in two stages. A supplied winner name is
// matched byte-exact against the trimmed corner names; diacritic or
// punctuation variants therefore miss and yield unknown rather than a guess.
// Without a winner, the free-text result is scanned for draw / no-contest
// wording. Unknown is a valid outcome, not an error.
func mapResult(winner, resultText, fighterA, fighterB string) models.FightResult {
	if w := strings.TrimSpace(winner); w != "" {
		switch w {
		case strings.TrimSpace(fighterA):
			return models.ResultFighterAWin
		case strings.TrimSpace(fighterB):
			return models.ResultFighterBWin
		}
		return models.ResultUnknown
	}

	text := strings.ToLower(resultText)
	if strings.Contains(text, "draw") || strings.Contains(text, "tie") {
		return models.ResultDraw
	}
	if strings.Contains(text, "no contest") || strings.Contains(text, "no-contest") || strings.Contains(text, "nc") {
		return models.ResultNoContest
	}

	return models.ResultUnknown
}

// parseRound parses the ending round. Empty or non-numeric text means no
// round was recorded, not a failure.
func parseRound(raw string) *int {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil
	}
	round, err := strconv.Atoi(trimmed)
	if err != nil {
		return nil
	}
	return &round
}
