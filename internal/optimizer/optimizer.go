// Package optimizer selects the starting roster from per-position player
// pools. Forwards go through an exhaustive pair-combination search; defense
// and goalie are a straight top-N by projection.
package optimizer

import (
	"benchboss/internal/domain"
	"benchboss/internal/scoring"
	"fmt"
	"sort"
	"time"
)

// PoolSource provides position pools in ingestion order. The player
// registry satisfies this.
type PoolSource interface {
	ByPosition(pos domain.Position) []*domain.Player
}

type Meta struct {
	Mode                  Mode
	EvaluatedCombinations int
	ValidCombinations     int
	ExecutionTime         time.Duration
}

type Result struct {
	Roster domain.Roster
	// ProjectedTotal is the aggregate projection over every committed slot,
	// defense and goalies included.
	ProjectedTotal float64
	Meta           Meta
}

// BuildRoster runs one full optimization and returns a fresh roster
// snapshot. Thin pools degrade to partial slots rather than failing; the
// degenerate no-valid-forwards case leaves the forward slots empty.
func BuildRoster(pools PoolSource, mode Mode) (*Result, error) {
	if mode != Mode_Optimal && mode != Mode_Fast {
		return nil, fmt.Errorf("unknown optimizer mode '%s'", mode)
	}

	start := time.Now()

	forwards, found, meta := selectForwards(
		pools.ByPosition(domain.PositionCenter),
		pools.ByPosition(domain.PositionLeftWing),
		pools.ByPosition(domain.PositionRightWing),
		mode,
	)

	roster := domain.NewRoster()
	if found {
		roster.Slots[domain.PositionCenter] = forwards.Centers
		roster.Slots[domain.PositionLeftWing] = forwards.LeftWings
		roster.Slots[domain.PositionRightWing] = forwards.RightWing
	}

	requirements := domain.SlotRequirements()
	roster.Slots[domain.PositionDefense] = topByProjection(
		pools.ByPosition(domain.PositionDefense),
		requirements[domain.PositionDefense],
	)
	roster.Slots[domain.PositionGoalie] = topByProjection(
		pools.ByPosition(domain.PositionGoalie),
		requirements[domain.PositionGoalie],
	)

	meta.ExecutionTime = time.Since(start)

	return &Result{
		Roster:         roster,
		ProjectedTotal: scoring.ProjectedTotal(roster.Players()),
		Meta:           meta,
	}, nil
}

// topByProjection takes the n highest-projected players from the pool. The
// sort is stable so ingestion order breaks ties.
func topByProjection(pool []*domain.Player, n int) []*domain.Player {
	sorted := make([]*domain.Player, len(pool))
	copy(sorted, pool)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ProjectedPoints > sorted[j].ProjectedPoints
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
