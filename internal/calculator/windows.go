package calculator

import (
	"benchboss/internal/domain"

	"github.com/shopspring/decimal"
)

// oldestWindowDays is the span of the third trailing window. The source data
// reports cumulative counters at 7, 14 and 30 day cutoffs, so the last slice
// covers 16 days instead of 7 and its weekly total has to be scaled down.
const oldestWindowDays = 16

var weeklyNormalization = decimal.NewFromInt(7).Div(decimal.NewFromInt(oldestWindowDays))

// Counters are the raw cumulative stats a player arrives with: games played
// and points scored over the trailing 7, 14 and 30 days. Each counter
// includes everything the shorter ones cover.
type Counters struct {
	Games7   int
	Points7  float64
	Games14  int
	Points14 float64
	Games30  int
	Points30 float64
}

// DeriveWindows splits cumulative counters into three non-overlapping
// trailing windows: 0-7 days ago, 7-14 days ago, 14-30 days ago. Every
// derived value is rounded to 2 decimal places here, and downstream math
// consumes the rounded values rather than re-deriving exact ones.
func DeriveWindows(c Counters) [3]domain.Window {
	return [3]domain.Window{
		newWindow(c.Games7, c.Points7, decimal.NewFromInt(1)),
		newWindow(c.Games14-c.Games7, c.Points14-c.Points7, decimal.NewFromInt(1)),
		newWindow(c.Games30-c.Games14, c.Points30-c.Points14, weeklyNormalization),
	}
}

func newWindow(games int, points float64, weeklyScale decimal.Decimal) domain.Window {
	roundedPoints := decimal.NewFromFloat(points).Round(2)

	window := domain.Window{
		Games:  games,
		Points: roundedPoints.InexactFloat64(),
		WeeklyPoints: roundedPoints.
			Mul(weeklyScale).
			Round(2).
			InexactFloat64(),
	}

	// a window with no games is a defined zero-rate case, not an error
	if games != 0 {
		window.PointsPerGame = roundedPoints.
			Div(decimal.NewFromInt(int64(games))).
			Round(2).
			InexactFloat64()
	}

	return window
}

func round2(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}
