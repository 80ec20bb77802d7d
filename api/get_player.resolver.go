package api

import (
	"github.com/gin-gonic/gin"
)

type GetPlayerResponse struct {
	Player PlayerResponse `json:"player"`
}

func (m ApiHandler) getPlayer(c *gin.Context) {
	name := c.Param("name")

	player, ok := m.PlayerRegistry.ByName(name)
	if !ok {
		// an unknown name is usually a typo; offer the closest matches
		suggestions := []string{}
		for _, match := range m.PlayerRegistry.Search(name) {
			suggestions = append(suggestions, match.Name)
			if len(suggestions) == 3 {
				break
			}
		}

		c.AbortWithStatusJSON(404, gin.H{
			"error":       "player not found",
			"suggestions": suggestions,
		})
		return
	}

	c.JSON(200, GetPlayerResponse{
		Player: newPlayerResponse(player),
	})
}
