package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"halorun-backend/internal/scrapers/waypoint"
	"halorun-backend/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
)

var statsMode *string

func init() {
	statsMode = statsCmd.Flags().String("mode", "Solo", "The campaign mode to request (Solo or Coop).")
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(parseCmd)
}

func formatDuration(d *time.Duration) string {
	if d == nil {
		return "--"
	}
	total := int(*d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

func formatScore(score *int) string {
	if score == nil {
		return "--"
	}
	return fmt.Sprint(*score)
}

func renderStats(res waypoint.StatsResponse) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle(fmt.Sprintf("%s (%s)", res.Game.String(), res.CampaignMode.String()))
	t.AppendHeader(table.Row{"Mission", "Difficulty", "Fastest Time", "Highest Score"})
	for _, row := range res.Missions {
		t.AppendRow(table.Row{
			row.Id,
			row.Difficulty.String(),
			formatDuration(row.FastestTime),
			formatScore(row.HighestScore),
		})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

var statsCmd = &cobra.Command{
	Use:   "stats <player> <game code> [--mode Solo|Coop]",
	Short: "Fetches and prints the raw statistics page of a player.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		game, ok := waypoint.ParseGame(args[1])
		if !ok {
			serviceutil.Fatal("unknown game", fmt.Errorf("%q is not a game code", args[1]))
		}
		mode, ok := waypoint.ParseCampaignMode(*statsMode)
		if !ok {
			serviceutil.Fatal("unknown campaign mode", fmt.Errorf("%q is not a campaign mode", *statsMode))
		}

		cfg := loadConfig()
		client := createClient(cfg)

		token, err := client.GetAuth(cmd.Context(), cfg.Credentials())
		if err != nil {
			serviceutil.Fatal("failed to login", err)
		}
		res, err := client.GetStatsResponse(cmd.Context(), token, waypoint.StatsRequest{
			Player:       args[0],
			Game:         game,
			CampaignMode: mode,
		})
		if err != nil {
			serviceutil.Fatal("failed to get statistics", err)
		}
		renderStats(res)
	},
}

var parseCmd = &cobra.Command{
	Use:   "parse <path/to/fragment.html>",
	Short: "Parses a saved statistics page and lists every field that could not be extracted.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		contents, err := os.ReadFile(args[0])
		if err != nil {
			serviceutil.Fatal("failed to read file", err)
		}

		res, err := waypoint.ParseStatsResponse(string(contents))
		if err != nil {
			errs := multierr.Errors(err)
			lines := make([]string, len(errs))
			for i, e := range errs {
				lines[i] = "  " + e.Error()
			}
			fmt.Fprintf(os.Stderr, "%d errors:\n%s\n", len(errs), strings.Join(lines, "\n"))
			os.Exit(1)
		}
		renderStats(res)
	},
}
