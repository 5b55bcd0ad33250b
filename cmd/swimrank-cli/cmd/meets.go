package cmd

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	meetsCmd.Flags().StringVar(&meetsNation, "nation", "", `nation name or 3-letter code, e.g. "Belgium" or "BEL"`)
	meetsCmd.Flags().StringVar(&meetsPeriod, "period", "", `time period code, e.g. "2024_m07"`)
	rootCmd.AddCommand(meetsCmd)
}

var (
	meetsNation string
	meetsPeriod string
)

var meetsCmd = &cobra.Command{
	Use:   "meets",
	Short: "List meets, optionally filtered by nation and time period.",
	Run: func(cmd *cobra.Command, args []string) {
		nationID := ""
		if meetsNation != "" {
			id, ok := refdata.NationIDByCode(cmd.Context(), meetsNation)
			if !ok {
				// tolerate misspelled nation names
				country, found := refdata.FindCountryByName(cmd.Context(), meetsNation)
				if !found {
					log.Fatalf("unknown nation %q", meetsNation)
				}
				id = country.NationID
			}
			nationID = id
		}

		meets, err := client.ListMeets(cmd.Context(), nationID, meetsPeriod)
		if err != nil {
			log.Fatal(err)
		}

		out := table.NewWriter()
		out.SetOutputMirror(os.Stdout)
		out.AppendHeader(table.Row{"Meet Id", "Date", "City", "Name", "Course"})
		for _, m := range meets {
			out.AppendRow(table.Row{m.ID, m.Date, m.City, m.Name, m.Course})
		}
		out.Render()
	},
}
