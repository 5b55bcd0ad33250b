package cmd

import (
	"log"
	"os"

	"swimrankings-backend/lib/scrapers/swimrankings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	searchCmd.Flags().StringVar(&searchFirstName, "first", "", "optional first name filter")
	searchCmd.Flags().StringVar(&searchGender, "gender", "all", `one of "all", "male", "female"`)
	searchCmd.Flags().StringVar(&searchCountry, "country", "", "optional 3-letter country code filter")
	rootCmd.AddCommand(searchCmd)
}

var (
	searchFirstName string
	searchGender    string
	searchCountry   string
)

var searchCmd = &cobra.Command{
	Use:   "search <last name>",
	Short: "Search athletes by last name.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		athletes, err := client.SearchAthletes(cmd.Context(), args[0], swimrankings.SearchOptions{
			FirstName: searchFirstName,
			Gender:    searchGender,
		})
		if err != nil {
			log.Fatal(err)
		}
		if searchCountry != "" {
			athletes = athletes.FilterByCountry(searchCountry)
		}

		out := table.NewWriter()
		out.SetOutputMirror(os.Stdout)
		out.AppendHeader(table.Row{"Id", "Name", "Born", "Gender", "Nation", "Club"})
		for _, a := range athletes.All() {
			out.AppendRow(table.Row{
				a.ID, a.FullName(), a.BirthYear, a.Gender, a.CountryCode, a.ClubName,
			})
		}
		out.Render()
	},
}
