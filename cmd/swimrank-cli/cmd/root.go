package cmd

import (
	"fmt"
	"os"
	"time"

	"swimrankings-backend/lib/scrapers/swimrankings"
	"swimrankings-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var timeout time.Duration

var client *swimrankings.Client
var refdata *swimrankings.RefData

var rootCmd = &cobra.Command{
	Use:   "swimrank-cli",
	Short: "swimrank-cli is a CLI interface for querying swimrankings.net.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		client, err = swimrankings.NewClient(swimrankings.ClientOptions{
			Timeout: timeout,
		})
		if err != nil {
			return err
		}
		refdata = swimrankings.NewRefData(client)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().DurationVar(
		&timeout, "timeout", time.Second*30,
		"timeout applied to every request",
	)
}

func Execute() {
	telemetry.InitSlog(os.Getenv("DEBUG") != "")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
