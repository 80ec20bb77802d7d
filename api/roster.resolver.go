package api

import (
	"benchboss/internal/domain"
	"benchboss/internal/optimizer"
	"fmt"

	"github.com/gin-gonic/gin"
)

type BuildRosterRequest struct {
	// Mode is OPTIMAL or FAST; empty defaults to OPTIMAL
	Mode string `json:"mode"`
}

type RosterMetaResponse struct {
	Mode                  string `json:"mode"`
	EvaluatedCombinations int    `json:"evaluatedCombinations"`
	ValidCombinations     int    `json:"validCombinations"`
	ExecutionTimeMs       int64  `json:"executionTimeMs"`
}

type BuildRosterResponse struct {
	RosterID       string                      `json:"rosterId"`
	Slots          map[string][]PlayerResponse `json:"slots"`
	ProjectedTotal float64                     `json:"projectedTotal"`
	Meta           RosterMetaResponse          `json:"meta"`
}

func (m ApiHandler) buildRoster(c *gin.Context) {
	var requestBody BuildRosterRequest

	if err := c.ShouldBindJSON(&requestBody); err != nil {
		returnErrorJson(err, c)
		return
	}

	if requestBody.Mode == "" {
		requestBody.Mode = string(optimizer.Mode_Optimal)
	}

	mode, err := optimizer.NewMode(requestBody.Mode)
	if err != nil {
		returnErrorJsonCode(fmt.Errorf("could not parse optimizer mode: %w", err), c, 400)
		return
	}

	result, err := optimizer.BuildRoster(m.PlayerRegistry, *mode)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to build roster: %w", err), c)
		return
	}

	slots := map[string][]PlayerResponse{}
	for _, pos := range domain.SlotOrder {
		players := []PlayerResponse{}
		for _, p := range result.Roster.Slots[pos] {
			players = append(players, newPlayerResponse(p))
		}
		slots[string(pos)] = players
	}

	c.JSON(200, BuildRosterResponse{
		RosterID:       result.Roster.ID.String(),
		Slots:          slots,
		ProjectedTotal: result.ProjectedTotal,
		Meta: RosterMetaResponse{
			Mode:                  string(result.Meta.Mode),
			EvaluatedCombinations: result.Meta.EvaluatedCombinations,
			ValidCombinations:     result.Meta.ValidCombinations,
			ExecutionTimeMs:       result.Meta.ExecutionTime.Milliseconds(),
		},
	})
}
