// Package filter selects player subsets with boolean expressions, e.g.
// `eligible("C") && ppg_wk1 >= 1.5`. Expressions see one player at a time;
// matching preserves input order.
package filter

import (
	"benchboss/internal/domain"
	"fmt"

	"github.com/maja42/goval"
)

// Select returns the players the expression matches. The expression must
// evaluate to a boolean for every player.
func Select(players []*domain.Player, expression string) ([]*domain.Player, error) {
	eval := goval.NewEvaluator()

	out := []*domain.Player{}
	for _, p := range players {
		result, err := eval.Evaluate(expression, playerVariables(p), playerFunctions(p))
		if err != nil {
			return nil, fmt.Errorf("failed to evaluate filter expression: %w", err)
		}

		matched, ok := result.(bool)
		if !ok {
			return nil, fmt.Errorf("filter expression must evaluate to a boolean, got %T", result)
		}
		if matched {
			out = append(out, p)
		}
	}

	return out, nil
}

func playerVariables(p *domain.Player) map[string]interface{} {
	position1, position2 := "", ""
	if len(p.Positions) > 0 {
		position1 = string(p.Positions[0])
	}
	if len(p.Positions) > 1 {
		position2 = string(p.Positions[1])
	}

	variables := map[string]interface{}{
		"name":         p.Name,
		"position_1":   position1,
		"position_2":   position2,
		"total_points": p.TotalPoints,
		"games_next":   p.ScheduledGames,
		"projected":    p.ProjectedPoints,
	}

	for i, window := range p.Windows {
		suffix := fmt.Sprintf("wk%d", i+1)
		variables["games_"+suffix] = window.Games
		variables["points_"+suffix] = window.Points
		variables["ppg_"+suffix] = window.PointsPerGame
		variables["weekly_"+suffix] = window.WeeklyPoints
	}

	return variables
}

func playerFunctions(p *domain.Player) map[string]goval.ExpressionFunction {
	return map[string]goval.ExpressionFunction{
		// eligible("C") checks both position slots so expressions don't
		// have to compare position_1 and position_2 separately
		"eligible": func(args ...interface{}) (interface{}, error) {
			if len(args) != 1 {
				return nil, fmt.Errorf("eligible() takes exactly one argument")
			}
			symbol, ok := args[0].(string)
			if !ok {
				return nil, fmt.Errorf("eligible() takes a position symbol string")
			}

			pos, err := domain.NewPosition(symbol)
			if err != nil {
				return nil, err
			}
			return p.Eligible(pos), nil
		},
	}
}
