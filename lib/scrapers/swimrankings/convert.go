package swimrankings

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"swimrankings-backend/lib/textutil"

	"golang.org/x/text/unicode/norm"
)

// conversions from raw extracted rows into domain records. these are
// pure functions, no network or cache access happens here.

// the site mixes composed and decomposed unicode in athlete and meet
// names, fold everything to one form
func normalize(s string) string {
	return norm.NFKC.String(s)
}

func genderFromImage(src string) Gender {
	switch {
	case strings.Contains(src, "gender1"):
		return GenderMale
	case strings.Contains(src, "gender2"):
		return GenderFemale
	}
	return GenderAll
}

// parseBirthYear accepts a 4-digit year in a plausible range,
// anything else counts as absent.
func parseBirthYear(s string) int {
	if len(s) != 4 {
		return 0
	}
	year, err := strconv.Atoi(s)
	if err != nil || year < 1900 || year > 2100 {
		return 0
	}
	return year
}

func rowToAthlete(row searchRow) (Athlete, error) {
	if row.athleteID == "" {
		return Athlete{}, parseError("search row without athlete id")
	}

	last, first := textutil.SplitDisplayName(normalize(row.fullName))
	return Athlete{
		ID:          row.athleteID,
		FirstName:   first,
		LastName:    last,
		BirthYear:   parseBirthYear(row.birthYear),
		Gender:      genderFromImage(row.genderImg),
		CountryCode: strings.ToUpper(row.country),
		ClubName:    normalize(row.club),
	}, nil
}

func rowToPersonalBest(row bestRow) (PersonalBest, error) {
	if row.event == "" || row.time == "" {
		return PersonalBest{}, parseError("personal-best row without event or time")
	}

	points, _ := strconv.Atoi(row.points)
	return PersonalBest{
		Event:      normalize(row.event),
		Course:     parseCourse(row.course),
		Time:       row.time,
		FinaPoints: points,
		Date:       normalize(row.date),
		Meet:       normalize(row.meet),
		Location:   normalize(row.location),
	}, nil
}

// nation labels usually render as "BEL - Belgium". when the label
// carries no explicit code, it falls back to the first three letters
// of the name.
var nationLabelRegex = regexp.MustCompile(`^([A-Z]{3}) - (.+)$`)

func optionToCountry(value, label string) (Country, error) {
	if value == "" {
		return Country{}, parseError("nation option without a value")
	}
	label = normalize(label)

	if groups := nationLabelRegex.FindStringSubmatch(label); groups != nil {
		return Country{NationID: value, Code: groups[1], Name: groups[2]}, nil
	}

	code := label
	if len(code) > 3 {
		code = code[:3]
	}
	return Country{
		NationID: value,
		Code:     strings.ToUpper(code),
		Name:     label,
	}, nil
}

var periodCodeRegex = regexp.MustCompile(`^(\d{4})_m(\d{1,2})$`)

func optionToTimePeriod(value, label string) (TimePeriod, error) {
	groups := periodCodeRegex.FindStringSubmatch(value)
	if groups == nil {
		return TimePeriod{}, parseError("unrecognized time-period code " + value)
	}

	year, err := strconv.Atoi(groups[1])
	if err != nil {
		return TimePeriod{}, parseError("unrecognized time-period year in " + value)
	}
	month, err := strconv.Atoi(groups[2])
	if err != nil || month < 1 || month > 12 {
		return TimePeriod{}, parseError("unrecognized time-period month in " + value)
	}

	return TimePeriod{
		Code:  value,
		Year:  year,
		Month: month,
		Label: normalize(label),
	}, nil
}

func rowToMeet(row meetRow) (Meet, error) {
	if row.meetID == "" {
		return Meet{}, parseError("meet row without meet id")
	}
	return Meet{
		ID:     row.meetID,
		Date:   normalize(row.date),
		City:   normalize(row.city),
		Name:   normalize(row.name),
		Course: parseCourse(row.course),
	}, nil
}

func rowToAthleteMeet(row athleteMeetRow) (AthleteMeet, error) {
	if row.meetID == "" {
		return AthleteMeet{}, parseError("athlete meet row without meet id")
	}
	return AthleteMeet{
		MeetID: row.meetID,
		Date:   normalize(row.date),
		City:   normalize(row.city),
		Name:   normalize(row.name),
	}, nil
}

func rowToMeetClub(row meetClubRow) (MeetClub, error) {
	if row.clubID == "" {
		return MeetClub{}, parseError("club row without club id")
	}
	return MeetClub{
		ID:   row.clubID,
		Name: normalize(row.name),
	}, nil
}

// split times are embedded in the tooltip markup of the swim-time
// link, as escaped split1 cells
var splitTimeRegex = regexp.MustCompile(`<td class=\\'split1\\'>(.*?)</td>`)

func parseSplitTimes(attr string) []string {
	var splits []string
	for _, groups := range splitTimeRegex.FindAllStringSubmatch(attr, -1) {
		split := strings.TrimSpace(groups[1])
		if split != "" {
			splits = append(splits, split)
		}
	}
	return splits
}

func rowToMeetResult(row meetResultRow) (MeetResult, error) {
	if row.resultID == "" {
		return MeetResult{}, parseError("result row without result id")
	}
	return MeetResult{
		ID:          row.resultID,
		AthleteID:   row.athleteID,
		AthleteName: normalize(row.athleteName),
		ClubName:    normalize(row.clubName),
		Time:        row.time,
		Splits:      parseSplitTimes(row.splitsAttr),
	}, nil
}

func rowToClubAthlete(row clubAthleteRow) (ClubAthlete, error) {
	if row.athleteID == "" {
		return ClubAthlete{}, parseError("roster row without athlete id")
	}
	last, first := textutil.SplitDisplayName(normalize(row.fullName))
	return ClubAthlete{
		ID:        row.athleteID,
		FirstName: first,
		LastName:  last,
	}, nil
}

// ParseSwimTime converts a source-formatted swim time like "1:02.53",
// "57.80" or "17:05.90M" into seconds. a trailing "M" (a converted
// time marker the site uses) is ignored.
func ParseSwimTime(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "M")
	if s == "" {
		return 0, fmt.Errorf("%w: empty swim time", Err)
	}

	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("%w: unrecognized swim time %q", Err, s)
	}

	var total float64
	for _, part := range parts {
		n, err := strconv.ParseFloat(part, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%w: unrecognized swim time %q", Err, s)
		}
		total = total*60 + n
	}
	return total, nil
}
