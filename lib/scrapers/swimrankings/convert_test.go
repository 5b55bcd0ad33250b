package swimrankings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSwimTime(t *testing.T) {
	testCases := []struct {
		in      string
		seconds float64
		fails   bool
	}{
		{in: "23.87", seconds: 23.87},
		{in: "53.40", seconds: 53.40},
		{in: "1:02.53", seconds: 62.53},
		{in: "4:12.09M", seconds: 252.09},
		{in: "17:05.90", seconds: 1025.90},
		{in: "1:02:03.40", seconds: 3723.40},
		{in: " 23.87 ", seconds: 23.87},
		{in: "", fails: true},
		{in: "M", fails: true},
		{in: "abc", fails: true},
		{in: "1:2:3:4.5", fails: true},
	}

	for _, test := range testCases {
		seconds, err := ParseSwimTime(test.in)
		if test.fails {
			require.Error(t, err, "input %q", test.in)
			require.ErrorIs(t, err, Err)
			continue
		}
		require.NoError(t, err, "input %q", test.in)
		require.InDelta(t, test.seconds, seconds, 0.0001, "input %q", test.in)
	}
}

func TestParseGender(t *testing.T) {
	gender, err := ParseGender("male")
	require.NoError(t, err)
	require.Equal(t, GenderMale, gender)

	gender, err = ParseGender("female")
	require.NoError(t, err)
	require.Equal(t, GenderFemale, gender)

	gender, err = ParseGender("all")
	require.NoError(t, err)
	require.Equal(t, GenderAll, gender)

	gender, err = ParseGender("")
	require.NoError(t, err)
	require.Equal(t, GenderAll, gender)

	for _, token := range []string{"Male", "FEMALE", "m", "f", "unknown"} {
		_, err := ParseGender(token)
		require.ErrorIs(t, err, ErrInvalidGender, "token %q", token)
	}
}

func TestParseBirthYear(t *testing.T) {
	require.Equal(t, 2004, parseBirthYear("2004"))
	require.Equal(t, 0, parseBirthYear(""))
	require.Equal(t, 0, parseBirthYear("04"))
	require.Equal(t, 0, parseBirthYear("1850"))
	require.Equal(t, 0, parseBirthYear("3000"))
	require.Equal(t, 0, parseBirthYear("abcd"))
}

func TestGenderFromImage(t *testing.T) {
	require.Equal(t, GenderMale, genderFromImage("images/gender1.png"))
	require.Equal(t, GenderFemale, genderFromImage("images/gender2.png"))
	require.Equal(t, GenderAll, genderFromImage(""))
	require.Equal(t, GenderAll, genderFromImage("images/flag.png"))
}

func TestRowToAthlete(t *testing.T) {
	athlete, err := rowToAthlete(searchRow{
		athleteID: "4292888",
		fullName:  "DRUWEL, Mauro",
		birthYear: "2004",
		genderImg: "images/gender1.png",
		country:   "bel",
		club:      "Zwemclub Gent",
	})
	require.NoError(t, err)
	require.Equal(t, "DRUWEL", athlete.LastName)
	require.Equal(t, "Mauro", athlete.FirstName)
	require.Equal(t, "BEL", athlete.CountryCode)
	require.Equal(t, GenderMale, athlete.Gender)

	_, err = rowToAthlete(searchRow{fullName: "DRUWEL, Mauro"})
	require.ErrorIs(t, err, ErrParse)
}

func TestOptionToCountry(t *testing.T) {
	// explicit "XXX - Name" labels
	country, err := optionToCountry("73", "GER - Germany")
	require.NoError(t, err)
	require.Equal(t, Country{NationID: "73", Code: "GER", Name: "Germany"}, country)

	// plain labels fall back to a derived code
	country, err = optionToCountry("43", "Belgium")
	require.NoError(t, err)
	require.Equal(t, Country{NationID: "43", Code: "BEL", Name: "Belgium"}, country)

	_, err = optionToCountry("", "Belgium")
	require.ErrorIs(t, err, ErrParse)
}

func TestOptionToTimePeriod(t *testing.T) {
	period, err := optionToTimePeriod("2024_m07", "July 2024")
	require.NoError(t, err)
	require.Equal(t, TimePeriod{Code: "2024_m07", Year: 2024, Month: 7, Label: "July 2024"}, period)

	for _, code := range []string{"RECENT", "BYTYPE", "2024", "2024_m13", "2024_m0"} {
		_, err := optionToTimePeriod(code, "")
		require.ErrorIs(t, err, ErrParse, "code %q", code)
	}
}

func TestRowToPersonalBest(t *testing.T) {
	best, err := rowToPersonalBest(bestRow{
		event:  "100m Freestyle",
		course: "50m",
		time:   "53.40",
		points: "612",
	})
	require.NoError(t, err)
	require.Equal(t, CourseLong, best.Course)
	require.Equal(t, 612, best.FinaPoints)

	_, err = rowToPersonalBest(bestRow{event: "100m Freestyle"})
	require.ErrorIs(t, err, ErrParse)
	_, err = rowToPersonalBest(bestRow{time: "53.40"})
	require.ErrorIs(t, err, ErrParse)
}
