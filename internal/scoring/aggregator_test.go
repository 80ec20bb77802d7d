package scoring

import (
	"benchboss/internal/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProjectedTotal(t *testing.T) {
	t.Run("sums projections exactly", func(t *testing.T) {
		// 1.10 + 2.20 + 3.30 drifts off 6.60 in float64 arithmetic
		total := ProjectedTotal([]*domain.Player{
			{Name: "Sidney Crosby", ProjectedPoints: 1.10},
			{Name: "Evgeni Malkin", ProjectedPoints: 2.20},
			{Name: "Kris Letang", ProjectedPoints: 3.30},
		})

		require.Equal(t, 6.6, total)
	})

	t.Run("empty sequence totals zero", func(t *testing.T) {
		require.Equal(t, float64(0), ProjectedTotal(nil))
		require.Equal(t, float64(0), ProjectedTotal([]*domain.Player{}))
	})

	t.Run("order does not change the total", func(t *testing.T) {
		a := &domain.Player{Name: "Mitch Marner", ProjectedPoints: 4.44}
		b := &domain.Player{Name: "William Nylander", ProjectedPoints: 5.55}

		require.Equal(
			t,
			ProjectedTotal([]*domain.Player{a, b}),
			ProjectedTotal([]*domain.Player{b, a}),
		)
	})
}
