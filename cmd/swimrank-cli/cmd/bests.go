package cmd

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	bestsCmd.Flags().StringVar(&bestsSeason, "season", "", `optional season filter, e.g. "2024"`)
	rootCmd.AddCommand(bestsCmd)
}

var bestsSeason string

var bestsCmd = &cobra.Command{
	Use:   "bests <athlete id>",
	Short: "List the personal bests of one athlete.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		details, err := client.GetDetails(cmd.Context(), args[0])
		if err != nil {
			log.Fatal(err)
		}

		bests := details.Bests
		if bestsSeason != "" {
			bests, err = client.GetSeasonBests(cmd.Context(), args[0], bestsSeason)
			if err != nil {
				log.Fatal(err)
			}
		}

		out := table.NewWriter()
		out.SetOutputMirror(os.Stdout)
		out.AppendHeader(table.Row{"Event", "Course", "Time", "Pts", "Date", "Meet"})
		for _, pb := range bests {
			out.AppendRow(table.Row{
				pb.Event, pb.Course, pb.Time, pb.FinaPoints, pb.Date, pb.Meet,
			})
		}
		out.Render()
	},
}
