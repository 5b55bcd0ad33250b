package cmd

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(periodsCmd)
}

var periodsCmd = &cobra.Command{
	Use:   "periods",
	Short: "List the time periods the site keeps rankings for.",
	Run: func(cmd *cobra.Command, args []string) {
		periods, err := refdata.FetchTimePeriods(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		out := table.NewWriter()
		out.SetOutputMirror(os.Stdout)
		out.AppendHeader(table.Row{"Code", "Year", "Month", "Label"})
		for _, p := range periods {
			out.AppendRow(table.Row{p.Code, p.Year, p.Month, p.Label})
		}
		out.Render()
	},
}
