package api

import (
	"benchboss/internal/calculator"

	"github.com/gin-gonic/gin"
)

type SummaryResponse struct {
	Players         int            `json:"players"`
	PositionCounts  map[string]int `json:"positionCounts"`
	MeanProjected   float64        `json:"meanProjected"`
	MedianProjected float64        `json:"medianProjected"`
	StdevProjected  float64        `json:"stdevProjected"`
	MinProjected    float64        `json:"minProjected"`
	MaxProjected    float64        `json:"maxProjected"`
}

func (m ApiHandler) poolSummary(c *gin.Context) {
	summary, err := calculator.SummarizePool(m.PlayerRegistry.Players())
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	positionCounts := map[string]int{}
	for pos, count := range summary.PositionCounts {
		positionCounts[string(pos)] = count
	}

	c.JSON(200, SummaryResponse{
		Players:         summary.Players,
		PositionCounts:  positionCounts,
		MeanProjected:   summary.MeanProjected,
		MedianProjected: summary.MedianProjected,
		StdevProjected:  summary.StdevProjected,
		MinProjected:    summary.MinProjected,
		MaxProjected:    summary.MaxProjected,
	})
}
