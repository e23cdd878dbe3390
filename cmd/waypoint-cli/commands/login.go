package commands

import (
	"fmt"
	"log/slog"
	"time"

	"halorun-backend/lib/util/serviceutil"

	"github.com/spf13/cobra"
)

var showToken *bool

func init() {
	showToken = loginCmd.Flags().Bool("show", false, "Print the full session token instead of a prefix.")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login [--show]",
	Short: "Performs the login handshake and prints the resulting session token.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		client := createClient(cfg)

		t1 := time.Now()
		token, err := client.GetAuth(cmd.Context(), cfg.Credentials())
		if err != nil {
			serviceutil.Fatal("failed to login", err)
		}
		slog.Info("login time", "seconds", time.Since(t1).Seconds())

		out := string(token)
		if !*showToken && len(out) > 12 {
			out = out[:12] + "..."
		}
		fmt.Println(out)
	},
}
