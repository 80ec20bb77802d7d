package domain

import (
	"fmt"
	"strings"
)

// Position is a roster slot symbol. The three forward positions (C, L, R)
// share an overlapping eligibility pool; defense and goalie do not.
type Position string

const (
	PositionCenter    Position = "C"
	PositionLeftWing  Position = "L"
	PositionRightWing Position = "R"
	PositionDefense   Position = "D"
	PositionGoalie    Position = "G"
)

// SlotOrder is the order roster slots are committed and displayed in.
var SlotOrder = []Position{
	PositionCenter,
	PositionLeftWing,
	PositionRightWing,
	PositionDefense,
	PositionGoalie,
}

// NewPosition parses a position symbol from an ingested row. LW/RW are
// accepted as aliases for the single-letter wing symbols.
func NewPosition(s string) (Position, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C":
		return PositionCenter, nil
	case "L", "LW":
		return PositionLeftWing, nil
	case "R", "RW":
		return PositionRightWing, nil
	case "D":
		return PositionDefense, nil
	case "G":
		return PositionGoalie, nil
	}
	return "", fmt.Errorf("could not convert '%s' to known position symbol", s)
}

func (p Position) IsForward() bool {
	return p == PositionCenter || p == PositionLeftWing || p == PositionRightWing
}

// SlotRequirements returns how many starters each position takes.
func SlotRequirements() map[Position]int {
	return map[Position]int{
		PositionCenter:    2,
		PositionLeftWing:  2,
		PositionRightWing: 2,
		PositionDefense:   4,
		PositionGoalie:    2,
	}
}

// Window is one trailing slice of a player's scoring history: the most
// recent 7 days, the 7 days before that, or the 16 days before that. Point
// values are rounded to 2 decimal places when the window is derived, and
// downstream math consumes the rounded values.
type Window struct {
	Games  int
	Points float64
	// PointsPerGame is 0 when Games is 0; the zero-games case is a defined
	// value, not an error.
	PointsPerGame float64
	// WeeklyPoints is the 7-day-equivalent point total. The oldest window
	// spans 16 days, so its total is scaled by 7/16.
	WeeklyPoints float64
}

// Player is built once at ingestion and never mutated afterwards. Every
// derived metric, including ProjectedPoints, is computed at construction by
// the calculator.
type Player struct {
	Name            string
	Positions       []Position
	Windows         [3]Window
	TotalPoints     float64
	ScheduledGames  int
	ProjectedPoints float64
}

// Is reports whether two records refer to the same player. Identity is the
// name key; every component routes identity checks through here instead of
// comparing names ad hoc.
func (p *Player) Is(other *Player) bool {
	if other == nil {
		return false
	}
	return p.Name == other.Name
}

// Eligible reports whether the player can fill the given position slot.
func (p *Player) Eligible(pos Position) bool {
	for _, have := range p.Positions {
		if have == pos {
			return true
		}
	}
	return false
}

func (p *Player) IsForward() bool {
	for _, pos := range p.Positions {
		if pos.IsForward() {
			return true
		}
	}
	return false
}
