package commands

import (
	"context"
	"fmt"
	"os"

	"halorun-backend/internal/components/telemetry"
	"halorun-backend/internal/config"
	"halorun-backend/internal/scrapers/waypoint"
	"halorun-backend/lib/restyutil"
	"halorun-backend/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var (
	configPath *string
	envPath    *string
	dumpDir    *string
)

var rootCmd = &cobra.Command{
	Use:   "waypoint-cli",
	Short: "waypoint-cli is a CLI for manually scraping and debugging halo waypoint service records.",
}

func init() {
	configPath = rootCmd.PersistentFlags().String("config", "config.json5", "The config file to read credentials from.")
	envPath = rootCmd.PersistentFlags().String("env", ".env", "The dotenv file to read credentials from.")
	dumpDir = rootCmd.PersistentFlags().String("dump", "", "A directory to dump every http exchange to (credentials are redacted).")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() config.Config {
	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	return cfg
}

// createClient returns an uncached client, every command invocation is a fresh scrape.
func createClient(cfg config.Config) *waypoint.Client {
	opts, err := cfg.WaypointOptions()
	if err != nil {
		serviceutil.Fatal("invalid waypoint config", err)
	}
	if *dumpDir != "" {
		output, err := restyutil.NewFilesystemOutput(*dumpDir)
		if err != nil {
			serviceutil.Fatal("failed to create dump directory", err)
		}
		opts.Output = output
	}
	return waypoint.NewClient(opts, telemetry.SlogAPI{})
}
