package main

import (
	"benchboss/cmd"
	"benchboss/internal/calculator"
	"benchboss/internal/config"
	"benchboss/internal/domain"
	"benchboss/internal/filter"
	"benchboss/internal/optimizer"
	"benchboss/internal/registry"
	"benchboss/internal/scoring"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var dataFile string

	root := &cobra.Command{
		Use:          "benchboss",
		Short:        "weekly fantasy hockey projections and lineup optimization",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&dataFile, "data", "", "player export csv (defaults to BENCHBOSS_DATA_FILE)")

	root.AddCommand(newPlayersCommand(&dataFile))
	root.AddCommand(newPlayerCommand(&dataFile))
	root.AddCommand(newLineupCommand(&dataFile))
	root.AddCommand(newSummaryCommand(&dataFile))

	return root
}

func loadRegistry(dataFile string) (registry.PlayerRegistry, error) {
	_ = godotenv.Load()

	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if dataFile == "" {
		dataFile = cfg.DataFile
	}

	return cmd.InitializePool(dataFile)
}

func newPlayersCommand(dataFile *string) *cobra.Command {
	var position string
	var filterExpression string

	command := &cobra.Command{
		Use:   "players",
		Short: "list the player pool with per-window metrics",
		RunE: func(c *cobra.Command, args []string) error {
			playerRegistry, err := loadRegistry(*dataFile)
			if err != nil {
				return err
			}

			pool := playerRegistry.Players()
			if position != "" {
				pos, err := domain.NewPosition(position)
				if err != nil {
					return err
				}
				pool = playerRegistry.ByPosition(pos)
			}
			if filterExpression != "" {
				pool, err = filter.Select(pool, filterExpression)
				if err != nil {
					return err
				}
			}

			renderPlayerTable(c.OutOrStdout(), pool)
			fmt.Fprintf(c.OutOrStdout(), "\n%d players, projected total %.2f\n", len(pool), scoring.ProjectedTotal(pool))
			return nil
		},
	}
	command.Flags().StringVar(&position, "position", "", "only players eligible for this position (C/L/R/D/G)")
	command.Flags().StringVar(&filterExpression, "filter", "", `boolean filter, e.g. 'eligible("C") && projected > 3'`)

	return command
}

func newPlayerCommand(dataFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "player <name>",
		Short: "show one player's windows and projection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			playerRegistry, err := loadRegistry(*dataFile)
			if err != nil {
				return err
			}

			name := strings.Join(args, " ")
			player, ok := playerRegistry.ByName(name)
			if !ok {
				suggestions := []string{}
				for _, match := range playerRegistry.Search(name) {
					suggestions = append(suggestions, match.Name)
					if len(suggestions) == 3 {
						break
					}
				}
				if len(suggestions) > 0 {
					return fmt.Errorf("no player named '%s', closest matches: %s", name, strings.Join(suggestions, ", "))
				}
				return fmt.Errorf("no player named '%s'", name)
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n", player.Name, positionLabel(player))
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "WINDOW\tGAMES\tPOINTS\tPPG\tWEEKLY")
			labels := []string{"last 7d", "prior 7d", "prior 16d"}
			for i, window := range player.Windows {
				fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\n", labels[i], window.Games, window.Points, window.PointsPerGame, window.WeeklyPoints)
			}
			w.Flush()
			fmt.Fprintf(out, "total %.2f, %d scheduled, projected %.2f\n", player.TotalPoints, player.ScheduledGames, player.ProjectedPoints)
			return nil
		},
	}
}

func newLineupCommand(dataFile *string) *cobra.Command {
	var modeName string

	command := &cobra.Command{
		Use:   "lineup",
		Short: "select the starting roster for the next period",
		RunE: func(c *cobra.Command, args []string) error {
			playerRegistry, err := loadRegistry(*dataFile)
			if err != nil {
				return err
			}

			mode, err := optimizer.NewMode(modeName)
			if err != nil {
				return err
			}

			result, err := optimizer.BuildRoster(playerRegistry, *mode)
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			for _, pos := range domain.SlotOrder {
				for _, player := range result.Roster.Slots[pos] {
					fmt.Fprintf(w, "%s\t%s\t%.2f\n", pos, player.Name, player.ProjectedPoints)
				}
			}
			w.Flush()

			fmt.Fprintf(out, "\nprojected total %.2f\n", result.ProjectedTotal)
			fmt.Fprintf(out, "%s mode, %d combinations evaluated (%d valid) in %s\n",
				result.Meta.Mode, result.Meta.EvaluatedCombinations, result.Meta.ValidCombinations, result.Meta.ExecutionTime)
			return nil
		},
	}
	command.Flags().StringVar(&modeName, "mode", string(optimizer.Mode_Optimal), "OPTIMAL scores every combination, FAST takes the first legal one")

	return command
}

func newSummaryCommand(dataFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "distribution stats over the pool's projections",
		RunE: func(c *cobra.Command, args []string) error {
			playerRegistry, err := loadRegistry(*dataFile)
			if err != nil {
				return err
			}

			summary, err := calculator.SummarizePool(playerRegistry.Players())
			if err != nil {
				return err
			}

			out := c.OutOrStdout()
			fmt.Fprintf(out, "%d players", summary.Players)
			counts := []string{}
			for _, pos := range domain.SlotOrder {
				if n := summary.PositionCounts[pos]; n > 0 {
					counts = append(counts, fmt.Sprintf("%d %s", n, pos))
				}
			}
			if len(counts) > 0 {
				fmt.Fprintf(out, " (%s)", strings.Join(counts, ", "))
			}
			fmt.Fprintln(out)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "mean\t%.2f\n", summary.MeanProjected)
			fmt.Fprintf(w, "median\t%.2f\n", summary.MedianProjected)
			fmt.Fprintf(w, "stdev\t%.2f\n", summary.StdevProjected)
			fmt.Fprintf(w, "min\t%.2f\n", summary.MinProjected)
			fmt.Fprintf(w, "max\t%.2f\n", summary.MaxProjected)
			w.Flush()
			return nil
		},
	}
}

func renderPlayerTable(out io.Writer, pool []*domain.Player) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPOS\tPPG W1\tPPG W2\tPPG W3\tTOTAL\tNEXT\tPROJ")
	for _, p := range pool {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%d\t%.2f\n",
			p.Name,
			positionLabel(p),
			p.Windows[0].PointsPerGame,
			p.Windows[1].PointsPerGame,
			p.Windows[2].PointsPerGame,
			p.TotalPoints,
			p.ScheduledGames,
			p.ProjectedPoints,
		)
	}
	w.Flush()
}

func positionLabel(p *domain.Player) string {
	symbols := []string{}
	for _, pos := range p.Positions {
		symbols = append(symbols, string(pos))
	}
	return strings.Join(symbols, "/")
}
