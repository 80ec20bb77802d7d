// Package ingest loads the weekly player export. Rows carry cumulative
// counters at the 7/14/30 day cutoffs; all derived metrics are computed by
// the calculator during the load, so the rest of the system never sees raw
// counters.
package ingest

import (
	"benchboss/internal/calculator"
	"benchboss/internal/domain"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// playerRow keeps every cell as a string so required-field validation can
// distinguish a blank cell from a legitimate zero.
type playerRow struct {
	Name      string `csv:"name"`
	Position1 string `csv:"position_1"`
	Position2 string `csv:"position_2"`
	Games7    string `csv:"games_7"`
	Points7   string `csv:"points_7"`
	Games14   string `csv:"games_14"`
	Points14  string `csv:"points_14"`
	Games30   string `csv:"games_30"`
	Points30  string `csv:"points_30"`
	GamesNext string `csv:"games_next"`
}

func LoadPlayers(path string) ([]*domain.Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open player file: %w", err)
	}
	defer f.Close()

	players, err := ReadPlayers(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load players from %s: %w", path, err)
	}
	return players, nil
}

// ReadPlayers parses the CSV export and builds complete player records.
// Any missing required field aborts the load with a MissingFieldError.
func ReadPlayers(r io.Reader) ([]*domain.Player, error) {
	rows := []playerRow{}
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse player csv: %w", err)
	}

	players := make([]*domain.Player, 0, len(rows))
	for i, row := range rows {
		// header occupies line 1
		player, err := buildPlayer(row, i+2)
		if err != nil {
			return nil, err
		}
		players = append(players, player)
	}

	return players, nil
}

func buildPlayer(row playerRow, line int) (*domain.Player, error) {
	name, err := requireField(line, "name", row.Name)
	if err != nil {
		return nil, err
	}

	positions, err := parsePositions(row, line)
	if err != nil {
		return nil, err
	}

	games7, err := requireInt(line, "games_7", row.Games7)
	if err != nil {
		return nil, err
	}
	points7, err := requireFloat(line, "points_7", row.Points7)
	if err != nil {
		return nil, err
	}
	games14, err := requireInt(line, "games_14", row.Games14)
	if err != nil {
		return nil, err
	}
	points14, err := requireFloat(line, "points_14", row.Points14)
	if err != nil {
		return nil, err
	}
	games30, err := requireInt(line, "games_30", row.Games30)
	if err != nil {
		return nil, err
	}
	points30, err := requireFloat(line, "points_30", row.Points30)
	if err != nil {
		return nil, err
	}
	gamesNext, err := requireInt(line, "games_next", row.GamesNext)
	if err != nil {
		return nil, err
	}

	return calculator.BuildPlayer(calculator.PlayerInput{
		Name:      name,
		Positions: positions,
		Counters: calculator.Counters{
			Games7:   games7,
			Points7:  points7,
			Games14:  games14,
			Points14: points14,
			Games30:  games30,
			Points30: points30,
		},
		ScheduledGames: gamesNext,
	}), nil
}

func parsePositions(row playerRow, line int) ([]domain.Position, error) {
	primary, err := requireField(line, "position_1", row.Position1)
	if err != nil {
		return nil, err
	}

	first, err := domain.NewPosition(primary)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	positions := []domain.Position{first}

	// a blank second position means no second eligibility
	if strings.TrimSpace(row.Position2) == "" {
		return positions, nil
	}

	second, err := domain.NewPosition(row.Position2)
	if err != nil {
		return nil, fmt.Errorf("line %d: %w", line, err)
	}
	if second == first {
		return nil, fmt.Errorf("line %d: position '%s' listed twice", line, first)
	}
	if !first.IsForward() || !second.IsForward() {
		return nil, fmt.Errorf("line %d: only forwards may hold two positions, got %s/%s", line, first, second)
	}

	return append(positions, second), nil
}

func requireField(line int, field, value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", MissingFieldError{Line: line, Field: field}
	}
	return trimmed, nil
}

func requireInt(line int, field, value string) (int, error) {
	trimmed, err := requireField(line, field, value)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, fmt.Errorf("line %d: field '%s': %w", line, field, err)
	}
	return n, nil
}

func requireFloat(line int, field, value string) (float64, error) {
	trimmed, err := requireField(line, field, value)
	if err != nil {
		return 0, err
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("line %d: field '%s': %w", line, field, err)
	}
	return f, nil
}
