package cmd

import (
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(nationsCmd)
}

var nationsCmd = &cobra.Command{
	Use:   "nations",
	Short: "List the nations the site keeps rankings for.",
	Run: func(cmd *cobra.Command, args []string) {
		countries, err := refdata.FetchCountries(cmd.Context())
		if err != nil {
			log.Fatal(err)
		}

		out := table.NewWriter()
		out.SetOutputMirror(os.Stdout)
		out.AppendHeader(table.Row{"Nation Id", "Code", "Name"})
		for _, c := range countries {
			out.AppendRow(table.Row{c.NationID, c.Code, c.Name})
		}
		out.Render()
	},
}
