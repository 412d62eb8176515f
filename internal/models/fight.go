package models

import (
	"time"

	"github.com/google/uuid"
)

// FightResult is the outcome of a fight from fighter A's corner.
type FightResult string

const (
	// ResultFighterAWin means the fighter in the A slot won
	ResultFighterAWin FightResult = "fighter_a_win"
	// ResultFighterBWin means the fighter in the B slot won
	ResultFighterBWin FightResult = "fighter_b_win"
	// ResultDraw means the judges scored the fight a draw
	ResultDraw FightResult = "draw"
	// ResultNoContest means the fight was ruled a no contest
	ResultNoContest FightResult = "nc"
	// ResultUnknown means the outcome could not be determined from the payload
	ResultUnknown FightResult = "unknown"
)

// Fight represents a single bout on an event's card. The A/B ordering is
// positional, not symmetric: (EventID, FighterAID, FighterBID) is the natural
// key, so re-ingesting with the corners swapped creates a second row.
type Fight struct {
	ID           uuid.UUID   `json:"id"`
	EventID      uuid.UUID   `json:"event_id"`
	FighterAID   uuid.UUID   `json:"fighter_a_id"`
	FighterBID   uuid.UUID   `json:"fighter_b_id"`
	WeightClass  *string     `json:"weight_class,omitempty"`
	IsMainEvent  bool        `json:"is_main_event"`
	IsTitleFight bool        `json:"is_title_fight"`
	Result       FightResult `json:"result"`
	ResultRound  *int        `json:"result_round,omitempty"`
	ResultMethod *string     `json:"result_method,omitempty"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}
