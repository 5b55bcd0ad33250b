package swimrankings

import (
	"fmt"
	"net/url"
	"time"
)

type Gender int

const (
	// GenderAll doubles as "unspecified" on legacy athlete rows whose
	// markup carries no recognizable gender marker.
	GenderAll Gender = iota
	GenderMale
	GenderFemale
)

// ParseGender validates one of the documented tokens "all", "male",
// "female". the tokens are case sensitive, anything else fails with
// ErrInvalidGender before any network traffic happens. the empty
// string maps to GenderAll so that the zero value of search options
// means "no filter".
func ParseGender(token string) (Gender, error) {
	switch token {
	case "", "all":
		return GenderAll, nil
	case "male":
		return GenderMale, nil
	case "female":
		return GenderFemale, nil
	}
	return GenderAll, fmt.Errorf("%w: %q", ErrInvalidGender, token)
}

func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	}
	return "all"
}

// the site encodes the gender filter as -1/1/2
func (g Gender) queryValue() string {
	switch g {
	case GenderMale:
		return "1"
	case GenderFemale:
		return "2"
	}
	return "-1"
}

// Course is the pool length category of a swim time.
type Course int

const (
	CourseUnknown Course = iota
	CourseShort
	CourseLong
)

func (c Course) String() string {
	switch c {
	case CourseShort:
		return "short"
	case CourseLong:
		return "long"
	}
	return "unknown"
}

// the site renders course as "25m" / "50m" cells
func parseCourse(label string) Course {
	switch label {
	case "25m":
		return CourseShort
	case "50m":
		return CourseLong
	}
	return CourseUnknown
}

// Athlete is one row of a search result.
type Athlete struct {
	// opaque id assigned by the source site
	ID        string
	FirstName string
	LastName  string
	// 0 when the source omits it
	BirthYear   int
	Gender      Gender
	CountryCode string
	ClubName    string
}

// FullName returns the display form the site uses, "LAST, First".
func (a Athlete) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	return a.LastName + ", " + a.FirstName
}

// ProfileURL derives the athlete's detail page address from its id.
func (a Athlete) ProfileURL() string {
	return fmt.Sprintf(
		"%s?page=athleteDetail&athleteId=%s",
		defaultBaseURL, url.QueryEscape(a.ID),
	)
}

// PersonalBest is an athlete's fastest recorded time for one
// event/course combination. Event and Time are always present, the
// remaining fields are best effort since the source omits them on
// older results.
type PersonalBest struct {
	Event  string
	Course Course
	// preserves source formatting, e.g. "1:02.53" or "57.80M".
	// use Seconds for a numeric form.
	Time       string
	FinaPoints int
	Date       string
	Meet       string
	Location   string
}

// Seconds converts the source-formatted swim time into seconds.
func (pb PersonalBest) Seconds() (float64, error) {
	return ParseSwimTime(pb.Time)
}

// AthleteDetails is the result of one detail-page fetch. it is never
// cached, every call observes the live page.
type AthleteDetails struct {
	AthleteID string
	Bests     []PersonalBest
	// free-form key/value pairs scraped from the profile header
	ProfileInfo map[string]string
	// capture time, not a value from the page
	LastUpdated time.Time
}

// Country is one entry of the site's nation reference table.
type Country struct {
	// internal numeric identifier of the site, distinct from Code
	NationID string
	// ISO-like 3-letter code
	Code string
	Name string
}

// TimePeriod is one entry of the site's time-period reference table,
// a month the site keeps rankings for.
type TimePeriod struct {
	// composite code of the form <year>_m<month>
	Code  string
	Year  int
	Month int
	Label string
}
