package filter

import (
	"benchboss/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func filterPool() []*domain.Player {
	return []*domain.Player{
		{
			Name:      "Nathan MacKinnon",
			Positions: []domain.Position{domain.PositionCenter},
			Windows: [3]domain.Window{
				{Games: 4, Points: 8, PointsPerGame: 2, WeeklyPoints: 8},
				{Games: 3, Points: 3, PointsPerGame: 1, WeeklyPoints: 3},
				{Games: 7, Points: 7, PointsPerGame: 1, WeeklyPoints: 3.06},
			},
			TotalPoints:     18,
			ScheduledGames:  4,
			ProjectedPoints: 5.32,
		},
		{
			Name:            "Brad Marchand",
			Positions:       []domain.Position{domain.PositionLeftWing, domain.PositionCenter},
			TotalPoints:     12,
			ScheduledGames:  3,
			ProjectedPoints: 3.21,
		},
		{
			Name:            "Igor Shesterkin",
			Positions:       []domain.Position{domain.PositionGoalie},
			TotalPoints:     9,
			ScheduledGames:  2,
			ProjectedPoints: 2.5,
		},
	}
}

func names(players []*domain.Player) []string {
	out := []string{}
	for _, p := range players {
		out = append(out, p.Name)
	}
	return out
}

func TestSelect(t *testing.T) {
	t.Run("numeric comparison", func(t *testing.T) {
		matched, err := Select(filterPool(), "projected > 3")
		require.NoError(t, err)
		require.Equal(t, []string{"Nathan MacKinnon", "Brad Marchand"}, names(matched))
	})

	t.Run("window variables", func(t *testing.T) {
		matched, err := Select(filterPool(), "ppg_wk1 >= 2 && games_wk2 > 0")
		require.NoError(t, err)
		require.Equal(t, []string{"Nathan MacKinnon"}, names(matched))
	})

	t.Run("eligible matches either position slot", func(t *testing.T) {
		matched, err := Select(filterPool(), `eligible("C")`)
		require.NoError(t, err)
		require.Equal(t, []string{"Nathan MacKinnon", "Brad Marchand"}, names(matched))
	})

	t.Run("missing second position is the empty string", func(t *testing.T) {
		matched, err := Select(filterPool(), `position_2 == ""`)
		require.NoError(t, err)
		require.Equal(t, []string{"Nathan MacKinnon", "Igor Shesterkin"}, names(matched))
	})

	t.Run("no matches is empty, not an error", func(t *testing.T) {
		matched, err := Select(filterPool(), "projected > 100")
		require.NoError(t, err)
		require.Empty(t, matched)
	})

	t.Run("non boolean expression", func(t *testing.T) {
		_, err := Select(filterPool(), "projected + 1")
		require.ErrorContains(t, err, "must evaluate to a boolean")
	})

	t.Run("malformed expression", func(t *testing.T) {
		_, err := Select(filterPool(), "projected >")
		require.Error(t, err)
	})

	t.Run("unknown position in eligible", func(t *testing.T) {
		_, err := Select(filterPool(), `eligible("X")`)
		require.Error(t, err)
	})
}
