package commands

import (
	"fmt"
	"os"
	"strconv"

	"halorun-backend/internal/catalog"
	"halorun-backend/internal/components/telemetry"
	"halorun-backend/internal/servicerecords"
	"halorun-backend/lib/util/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(recordsCmd)
}

var recordsCmd = &cobra.Command{
	Use:   "records <player> <game id>",
	Short: "Prints the service records of a player for a game, merged across campaign modes.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		gameId, err := strconv.Atoi(args[1])
		if err != nil {
			serviceutil.Fatal("invalid game id", err)
		}

		cfg := loadConfig()
		service := servicerecords.NewService(createClient(cfg), cfg.Credentials(), telemetry.SlogAPI{})

		records, ok := service.FindByPlayerAndGame(cmd.Context(), args[0], catalog.GameId(gameId))
		if !ok {
			serviceutil.Fatal("failed to find service records", fmt.Errorf("see logs above"))
		}

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"Mission", "Mode", "Difficulty", "Time", "Score", "Par Time", "Par Score"})
		for _, record := range records {
			mission, _ := catalog.MissionByGameIdAndId(record.GameId, record.MissionId)
			for _, run := range record.Runs {
				runTime := run.Time
				t.AppendRow(table.Row{
					fmt.Sprintf("%d. %s", record.MissionId, mission.Name),
					run.CampaignMode.String(),
					run.Difficulty.String(),
					formatDuration(&runTime),
					run.Score,
					formatDuration(mission.ParTime),
					formatScore(mission.ParScore),
				})
			}
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}

