package api

import (
	"benchboss/internal/domain"
	"benchboss/internal/filter"
	"benchboss/internal/scoring"
	"fmt"

	"github.com/gin-gonic/gin"
)

type WindowResponse struct {
	Games         int     `json:"games"`
	Points        float64 `json:"points"`
	PointsPerGame float64 `json:"pointsPerGame"`
	WeeklyPoints  float64 `json:"weeklyPoints"`
}

type PlayerResponse struct {
	Name            string           `json:"name"`
	Positions       []string         `json:"positions"`
	Windows         []WindowResponse `json:"windows"`
	TotalPoints     float64          `json:"totalPoints"`
	ScheduledGames  int              `json:"scheduledGames"`
	ProjectedPoints float64          `json:"projectedPoints"`
}

type ListPlayersResponse struct {
	Players        []PlayerResponse `json:"players"`
	ProjectedTotal float64          `json:"projectedTotal"`
}

func newPlayerResponse(p *domain.Player) PlayerResponse {
	positions := []string{}
	for _, pos := range p.Positions {
		positions = append(positions, string(pos))
	}

	windows := []WindowResponse{}
	for _, w := range p.Windows {
		windows = append(windows, WindowResponse{
			Games:         w.Games,
			Points:        w.Points,
			PointsPerGame: w.PointsPerGame,
			WeeklyPoints:  w.WeeklyPoints,
		})
	}

	return PlayerResponse{
		Name:            p.Name,
		Positions:       positions,
		Windows:         windows,
		TotalPoints:     p.TotalPoints,
		ScheduledGames:  p.ScheduledGames,
		ProjectedPoints: p.ProjectedPoints,
	}
}

func (m ApiHandler) listPlayers(c *gin.Context) {
	pool := m.PlayerRegistry.Players()

	if symbol := c.Query("position"); symbol != "" {
		pos, err := domain.NewPosition(symbol)
		if err != nil {
			returnErrorJsonCode(err, c, 400)
			return
		}
		pool = m.PlayerRegistry.ByPosition(pos)
	}

	if expression := c.Query("filter"); expression != "" {
		filtered, err := filter.Select(pool, expression)
		if err != nil {
			returnErrorJsonCode(fmt.Errorf("failed to apply filter: %w", err), c, 400)
			return
		}
		pool = filtered
	}

	players := []PlayerResponse{}
	for _, p := range pool {
		players = append(players, newPlayerResponse(p))
	}

	c.JSON(200, ListPlayersResponse{
		Players:        players,
		ProjectedTotal: scoring.ProjectedTotal(pool),
	})
}
