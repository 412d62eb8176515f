package ingestion

import (
	"testing"
	"time"

	"github.com/fightpulse/fightpulse-api/internal/models"
)

func TestParseEventDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "scraper long form",
			input:  "November 01, 2025",
			want:   time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "long form without zero padding",
			input:  "March 8, 2025",
			want:   time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "iso date",
			input:  "2025-11-01",
			want:   time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{
			name:   "surrounding whitespace",
			input:  "  November 01, 2025  ",
			want:   time.Date(2025, time.November, 1, 0, 0, 0, 0, time.UTC),
			wantOK: true,
		},
		{name: "garbage", input: "not-a-date", wantOK: false},
		{name: "empty", input: "", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, ok := parseEventDate(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseEventDate(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("parseEventDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseLocation(t *testing.T) {
	t.Parallel()

	strPtr := func(s string) *string { return &s }

	tests := []struct {
		name        string
		input       string
		wantCity    *string
		wantCountry *string
		wantRaw     *string
	}{
		{
			name:        "city state country",
			input:       "Las Vegas, Nevada, USA",
			wantCity:    strPtr("Las Vegas"),
			wantCountry: strPtr("USA"),
			wantRaw:     strPtr("Las Vegas, Nevada, USA"),
		},
		{
			name:        "city country",
			input:       "Abu Dhabi, United Arab Emirates",
			wantCity:    strPtr("Abu Dhabi"),
			wantCountry: strPtr("United Arab Emirates"),
			wantRaw:     strPtr("Abu Dhabi, United Arab Emirates"),
		},
		{
			name:        "single component is country only",
			input:       "Brazil",
			wantCity:    nil,
			wantCountry: strPtr("Brazil"),
			wantRaw:     strPtr("Brazil"),
		},
		{
			name:  "empty input yields all nils",
			input: "",
		},
		{
			name:        "components get trimmed",
			input:       "  Paris ,  France ",
			wantCity:    strPtr("Paris"),
			wantCountry: strPtr("France"),
			wantRaw:     strPtr("  Paris ,  France "),
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseLocation(tt.input)
			comparePtr(t, "city", got.City, tt.wantCity)
			comparePtr(t, "country", got.Country, tt.wantCountry)
			comparePtr(t, "raw", got.Raw, tt.wantRaw)
		})
	}
}

func comparePtr(t *testing.T, field string, got, want *string) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", field, deref(got), deref(want))
	case *got != *want:
		t.Errorf("%s = %q, want %q", field, *got, *want)
	}
}

func deref(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

func TestParseFighterName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantFirst string
		wantLast  string
		wantOK    bool
	}{
		{name: "two tokens", input: "Dan Hooker", wantFirst: "Dan", wantLast: "Hooker", wantOK: true},
		{name: "multi-word surname", input: "Jose Aldo Junior", wantFirst: "Jose", wantLast: "Aldo Junior", wantOK: true},
		{name: "single token is last name", input: "Shogun", wantFirst: "", wantLast: "Shogun", wantOK: true},
		{name: "extra whitespace", input: "  Arman   Tsarukyan ", wantFirst: "Arman", wantLast: "Tsarukyan", wantOK: true},
		{name: "empty", input: "", wantOK: false},
		{name: "whitespace only", input: "   ", wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			first, last, ok := parseFighterName(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("parseFighterName(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if first != tt.wantFirst || last != tt.wantLast {
				t.Errorf("parseFighterName(%q) = (%q, %q), want (%q, %q)",
					tt.input, first, last, tt.wantFirst, tt.wantLast)
			}
		})
	}
}

func TestMapResult(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		winner     string
		resultText string
		fighterA   string
		fighterB   string
		want       models.FightResult
	}{
		{
			name:     "winner matches fighter A",
			winner:   "Dan Hooker",
			fighterA: "Dan Hooker",
			fighterB: "Arman Tsarukyan",
			want:     models.ResultFighterAWin,
		},
		{
			name:     "winner matches fighter B",
			winner:   "Arman Tsarukyan",
			fighterA: "Dan Hooker",
			fighterB: "Arman Tsarukyan",
			want:     models.ResultFighterBWin,
		},
		{
			name:     "whitespace around names is trimmed",
			winner:   " Dan Hooker ",
			fighterA: "Dan Hooker  ",
			fighterB: "Arman Tsarukyan",
			want:     models.ResultFighterAWin,
		},
		{
			name:     "case difference does not match",
			winner:   "dan hooker",
			fighterA: "Dan Hooker",
			fighterB: "Arman Tsarukyan",
			want:     models.ResultUnknown,
		},
		{
			name:     "diacritic variant does not match",
			winner:   "José Aldo",
			fighterA: "Jose Aldo",
			fighterB: "Max Holloway",
			want:     models.ResultUnknown,
		},
		{
			name:       "draw from result text",
			resultText: "Majority Draw",
			fighterA:   "A",
			fighterB:   "B",
			want:       models.ResultDraw,
		},
		{
			name:       "tie from result text",
			resultText: "scored a tie",
			fighterA:   "A",
			fighterB:   "B",
			want:       models.ResultDraw,
		},
		{
			name:       "no contest from result text",
			resultText: "No Contest (accidental eye poke)",
			fighterA:   "A",
			fighterB:   "B",
			want:       models.ResultNoContest,
		},
		{
			name:       "nc shorthand",
			resultText: "NC",
			fighterA:   "A",
			fighterB:   "B",
			want:       models.ResultNoContest,
		},
		{
			name:     "nothing resolves",
			fighterA: "A",
			fighterB: "B",
			want:     models.ResultUnknown,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := mapResult(tt.winner, tt.resultText, tt.fighterA, tt.fighterB)
			if got != tt.want {
				t.Errorf("mapResult() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRound(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  *int
	}{
		{name: "numeric", input: "3", want: intPtr(3)},
		{name: "padded", input: " 5 ", want: intPtr(5)},
		{name: "empty", input: "", want: nil},
		{name: "whitespace only", input: "   ", want: nil},
		{name: "non-numeric", input: "third", want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := parseRound(tt.input)
			switch {
			case got == nil && tt.want == nil:
			case got == nil || tt.want == nil:
				t.Errorf("parseRound(%q) = %v, want %v", tt.input, got, tt.want)
			case *got != *tt.want:
				t.Errorf("parseRound(%q) = %d, want %d", tt.input, *got, *tt.want)
			}
		})
	}
}

func intPtr(n int) *int { return &n }
