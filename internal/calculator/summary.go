package calculator

import (
	"benchboss/internal/domain"
	"fmt"

	"github.com/montanaflynn/stats"
)

type PoolSummaryResult struct {
	Players         int
	PositionCounts  map[domain.Position]int
	MeanProjected   float64
	MedianProjected float64
	StdevProjected  float64
	MinProjected    float64
	MaxProjected    float64
}

// SummarizePool computes distribution stats over the pool's projected point
// totals. It assumes projections were already derived at ingestion.
func SummarizePool(players []*domain.Player) (*PoolSummaryResult, error) {
	if len(players) == 0 {
		return nil, fmt.Errorf("cannot summarize empty player pool")
	}

	projections := make([]float64, 0, len(players))
	positionCounts := map[domain.Position]int{}
	for _, p := range players {
		projections = append(projections, p.ProjectedPoints)
		for _, pos := range p.Positions {
			positionCounts[pos]++
		}
	}

	mean, err := stats.Mean(projections)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate mean projection: %w", err)
	}

	median, err := stats.Median(projections)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate median projection: %w", err)
	}

	// sample stdev needs at least two observations
	stdev := 0.0
	if len(projections) >= 2 {
		stdev, err = stats.StandardDeviationSample(projections)
		if err != nil {
			return nil, err
		}
	}

	min, err := stats.Min(projections)
	if err != nil {
		return nil, err
	}

	max, err := stats.Max(projections)
	if err != nil {
		return nil, err
	}

	return &PoolSummaryResult{
		Players:         len(players),
		PositionCounts:  positionCounts,
		MeanProjected:   round2(mean),
		MedianProjected: round2(median),
		StdevProjected:  round2(stdev),
		MinProjected:    round2(min),
		MaxProjected:    round2(max),
	}, nil
}
