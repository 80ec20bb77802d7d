// Package scoring totals projected points over player sequences. The
// optimizer calls it on every candidate combination and again on the
// committed roster, so it has to stay pure and allocation-light.
package scoring

import (
	"benchboss/internal/domain"

	"github.com/shopspring/decimal"
)

// ProjectedTotal sums each player's projected points, rounded to 2 decimal
// places. Accumulation happens in decimal space so repeated float addition
// cannot drift the total.
func ProjectedTotal(players []*domain.Player) float64 {
	total := decimal.Zero
	for _, p := range players {
		total = total.Add(decimal.NewFromFloat(p.ProjectedPoints))
	}
	return total.Round(2).InexactFloat64()
}
