package calculator

import (
	"benchboss/internal/domain"

	"github.com/shopspring/decimal"
)

// PlayerInput is everything needed to construct a player record. Counters
// come straight from ingestion; all derived metrics are computed here.
type PlayerInput struct {
	Name           string
	Positions      []domain.Position
	Counters       Counters
	ScheduledGames int
}

// BuildPlayer derives the trailing windows and the projected point total for
// the upcoming period. The returned record is complete; nothing recomputes
// its metrics afterwards.
func BuildPlayer(input PlayerInput) *domain.Player {
	windows := DeriveWindows(input.Counters)

	return &domain.Player{
		Name:            input.Name,
		Positions:       input.Positions,
		Windows:         windows,
		TotalPoints:     round2(input.Counters.Points30),
		ScheduledGames:  input.ScheduledGames,
		ProjectedPoints: PredictPoints(windows, input.ScheduledGames),
	}
}

// PredictPoints projects a point total for the upcoming period: the mean of
// the three windows' points-per-game rates, times the number of scheduled
// games. The inputs are already rounded to 2 decimal places, so the
// projection can differ slightly from one computed on exact rates.
func PredictPoints(windows [3]domain.Window, scheduledGames int) float64 {
	meanRate := decimal.Avg(
		decimal.NewFromFloat(windows[0].PointsPerGame),
		decimal.NewFromFloat(windows[1].PointsPerGame),
		decimal.NewFromFloat(windows[2].PointsPerGame),
	)

	return meanRate.
		Mul(decimal.NewFromInt(int64(scheduledGames))).
		Round(2).
		InexactFloat64()
}
