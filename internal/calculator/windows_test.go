package calculator

import (
	"benchboss/internal/domain"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDeriveWindows(t *testing.T) {
	t.Run("cumulative counters split into trailing windows", func(t *testing.T) {
		windows := DeriveWindows(Counters{
			Games7:   2,
			Points7:  10,
			Games14:  5,
			Points14: 16,
			Games30:  10,
			Points30: 26,
		})

		require.Equal(
			t,
			"",
			cmp.Diff(
				[3]domain.Window{
					{
						Games:         2,
						Points:        10,
						PointsPerGame: 5,
						WeeklyPoints:  10,
					},
					{
						Games:         3,
						Points:        6,
						PointsPerGame: 2,
						WeeklyPoints:  6,
					},
					{
						Games:         5,
						Points:        10,
						PointsPerGame: 2,
						// 16-day total scaled to a 7-day equivalent
						WeeklyPoints: 4.38,
					},
				},
				windows,
			),
		)
	})

	t.Run("window totals reconcile with the 30 day counter", func(t *testing.T) {
		counters := Counters{
			Games7:   3,
			Points7:  4.5,
			Games14:  7,
			Points14: 9.25,
			Games30:  15,
			Points30: 20.75,
		}

		windows := DeriveWindows(counters)

		total := windows[0].Points + windows[1].Points + windows[2].Points
		require.InDelta(t, counters.Points30, total, 0.01)
	})

	t.Run("zero games in a window yields zero rate, not an error", func(t *testing.T) {
		windows := DeriveWindows(Counters{
			Games7:   0,
			Points7:  0,
			Games14:  4,
			Points14: 6,
			Games30:  4,
			Points30: 6,
		})

		require.Equal(t, 0, windows[0].Games)
		require.Equal(t, float64(0), windows[0].PointsPerGame)
		require.Equal(t, float64(1.5), windows[1].PointsPerGame)
		require.Equal(t, 0, windows[2].Games)
		require.Equal(t, float64(0), windows[2].PointsPerGame)
	})

	t.Run("rates are rounded when derived", func(t *testing.T) {
		windows := DeriveWindows(Counters{
			Games7:   3,
			Points7:  10,
			Games14:  6,
			Points14: 20,
			Games30:  6,
			Points30: 20,
		})

		require.Equal(t, 3.33, windows[0].PointsPerGame)
		require.Equal(t, 3.33, windows[1].PointsPerGame)
	})
}

func TestPredictPoints(t *testing.T) {
	t.Run("mean rate times scheduled games", func(t *testing.T) {
		windows := [3]domain.Window{
			{PointsPerGame: 5},
			{PointsPerGame: 2},
			{PointsPerGame: 2},
		}

		require.Equal(t, float64(9), PredictPoints(windows, 3))
	})

	t.Run("projection consumes rounded rates", func(t *testing.T) {
		// two windows of 10 points over 3 games round to 3.33 each; the
		// projection over 3 games lands on 6.66, where exact rates would
		// have given 6.67
		windows := DeriveWindows(Counters{
			Games7:   3,
			Points7:  10,
			Games14:  6,
			Points14: 20,
			Games30:  6,
			Points30: 20,
		})

		require.Equal(t, 6.66, PredictPoints(windows, 3))
	})

	t.Run("no scheduled games projects zero", func(t *testing.T) {
		windows := [3]domain.Window{
			{PointsPerGame: 4},
			{PointsPerGame: 4},
			{PointsPerGame: 4},
		}

		require.Equal(t, float64(0), PredictPoints(windows, 0))
	})

	t.Run("identical inputs give identical projections", func(t *testing.T) {
		windows := [3]domain.Window{
			{PointsPerGame: 2.17},
			{PointsPerGame: 0},
			{PointsPerGame: 1.94},
		}

		require.Equal(t, PredictPoints(windows, 4), PredictPoints(windows, 4))
	})
}

func TestBuildPlayer(t *testing.T) {
	player := BuildPlayer(PlayerInput{
		Name:      "Auston Matthews",
		Positions: []domain.Position{domain.PositionCenter},
		Counters: Counters{
			Games7:   2,
			Points7:  10,
			Games14:  5,
			Points14: 16,
			Games30:  10,
			Points30: 26,
		},
		ScheduledGames: 3,
	})

	require.Equal(
		t,
		"",
		cmp.Diff(
			&domain.Player{
				Name:      "Auston Matthews",
				Positions: []domain.Position{domain.PositionCenter},
				Windows: [3]domain.Window{
					{Games: 2, Points: 10, PointsPerGame: 5, WeeklyPoints: 10},
					{Games: 3, Points: 6, PointsPerGame: 2, WeeklyPoints: 6},
					{Games: 5, Points: 10, PointsPerGame: 2, WeeklyPoints: 4.38},
				},
				TotalPoints:     26,
				ScheduledGames:  3,
				ProjectedPoints: 9,
			},
			player,
		),
	)
}
