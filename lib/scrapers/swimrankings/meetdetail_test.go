package swimrankings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListMeetClubs(t *testing.T) {
	client, _ := newFixtureClient(t)

	clubs, err := client.ListMeetClubs(context.Background(), "654321")
	require.NoError(t, err)
	require.Equal(t, []MeetClub{
		{ID: "65", Name: "Zwemclub Gent"},
		{ID: "88", Name: "Brussels Swimming Team"},
	}, clubs)
}

func TestListMeetEvents(t *testing.T) {
	client, _ := newFixtureClient(t)

	events, err := client.ListMeetEvents(context.Background(), "654321")
	require.NoError(t, err)
	require.Len(t, events, 3)

	// men's menu first, placeholder entries skipped
	require.Equal(t, MeetEvent{ID: "16", Gender: GenderMale, Name: "50m Freestyle"}, events[0])
	require.Equal(t, MeetEvent{ID: "17", Gender: GenderMale, Name: "100m Freestyle"}, events[1])

	// the same event id reappears under the women's menu
	require.Equal(t, MeetEvent{ID: "16", Gender: GenderFemale, Name: "50m Freestyle"}, events[2])
}

func TestListMeetRaces(t *testing.T) {
	client, _ := newFixtureClient(t)

	races, err := client.ListMeetRaces(context.Background(), "654321", "16", GenderMale)
	require.NoError(t, err)
	require.Equal(t, []MeetRace{
		{Number: 1, Name: "50m Freestyle Men - Final"},
		{Number: 2, Name: "50m Freestyle Men - Prelim"},
	}, races)
}

func TestListMeetResults(t *testing.T) {
	client, _ := newFixtureClient(t)

	results, err := client.ListMeetResults(context.Background(), "654321", "16", GenderMale, 1)
	require.NoError(t, err)
	require.Len(t, results, 2)

	require.Equal(t, MeetResult{
		ID:          "88101",
		AthleteID:   "4292888",
		AthleteName: "DRUWEL, Mauro",
		ClubName:    "Zwemclub Gent",
		Time:        "23.87",
		Splits:      []string{"11.50", "23.87"},
	}, results[0])

	// rows without a tooltip carry no splits
	require.Equal(t, "88230", results[1].ID)
	require.Empty(t, results[1].Splits)

	seconds, err := results[0].Seconds()
	require.NoError(t, err)
	require.InDelta(t, 23.87, seconds, 0.001)

	// the second table is a separate race
	prelim, err := client.ListMeetResults(context.Background(), "654321", "16", GenderMale, 2)
	require.NoError(t, err)
	require.Len(t, prelim, 1)
	require.Equal(t, "88099", prelim[0].ID)
}

func TestListMeetResultsRaceOutOfRange(t *testing.T) {
	client, _ := newFixtureClient(t)

	_, err := client.ListMeetResults(context.Background(), "654321", "16", GenderMale, 3)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = client.ListMeetResults(context.Background(), "654321", "16", GenderMale, 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestGetResultTime(t *testing.T) {
	client, _ := newFixtureClient(t)

	time, err := client.GetResultTime(context.Background(), "88101")
	require.NoError(t, err)
	require.Equal(t, "23.87", time)
}

func TestParseSplitTimes(t *testing.T) {
	attr := `Tip('<table><tr><td class=\'split1\'>11.50</td></tr><tr><td class=\'split1\'>23.87</td></tr></table>')`
	require.Equal(t, []string{"11.50", "23.87"}, parseSplitTimes(attr))
	require.Empty(t, parseSplitTimes(""))
}
