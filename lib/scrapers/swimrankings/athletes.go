package swimrankings

import (
	"fmt"
	"strconv"
	"strings"
)

// Athletes is the ordered result of one completed search. insertion
// order is the source page order, which the site returns
// most-relevant-first. the collection is immutable, every filter and
// slice produces a new one.
type Athletes struct {
	items []Athlete
}

// newAthletes is the only constructor. a search that matched nothing
// fails here with ErrAthleteNotFound, derived filters on an existing
// collection may legitimately be empty instead.
func newAthletes(items []Athlete) (Athletes, error) {
	if len(items) == 0 {
		return Athletes{}, ErrAthleteNotFound
	}
	return Athletes{items: items}, nil
}

func (a Athletes) Len() int {
	return len(a.items)
}

func (a Athletes) IsEmpty() bool {
	return len(a.items) == 0
}

// At returns the athlete at index i. negative indexes count from the
// end. out-of-range access fails with ErrIndexOutOfRange.
func (a Athletes) At(i int) (Athlete, error) {
	idx := i
	if idx < 0 {
		idx += len(a.items)
	}
	if idx < 0 || idx >= len(a.items) {
		return Athlete{}, fmt.Errorf("%w: %d with length %d", ErrIndexOutOfRange, i, len(a.items))
	}
	return a.items[idx], nil
}

// Slice returns the sub-collection [lo, hi). like sequence slicing,
// negative bounds count from the end and out-of-range bounds clamp.
func (a Athletes) Slice(lo, hi int) Athletes {
	n := len(a.items)
	if lo < 0 {
		lo += n
	}
	if hi < 0 {
		hi += n
	}
	lo = max(0, min(lo, n))
	hi = max(0, min(hi, n))
	if lo >= hi {
		return Athletes{}
	}
	return Athletes{items: a.items[lo:hi]}
}

// All returns a copy of the stored sequence for range iteration.
func (a Athletes) All() []Athlete {
	out := make([]Athlete, len(a.items))
	copy(out, a.items)
	return out
}

func (a Athletes) filter(keep func(Athlete) bool) Athletes {
	var items []Athlete
	for _, athlete := range a.items {
		if keep(athlete) {
			items = append(items, athlete)
		}
	}
	return Athletes{items: items}
}

// FilterByCountry matches the 3-letter country code
// case-insensitively.
func (a Athletes) FilterByCountry(code string) Athletes {
	return a.filter(func(athlete Athlete) bool {
		return strings.EqualFold(athlete.CountryCode, code)
	})
}

func (a Athletes) FilterByBirthYear(year int) Athletes {
	return a.FilterByBirthYearRange(year, year)
}

// FilterByBirthYearRange keeps athletes born in [minYear, maxYear],
// inclusive on both ends. athletes without a known birth year never
// match.
func (a Athletes) FilterByBirthYearRange(minYear, maxYear int) Athletes {
	return a.filter(func(athlete Athlete) bool {
		return athlete.BirthYear != 0 &&
			athlete.BirthYear >= minYear &&
			athlete.BirthYear <= maxYear
	})
}

func (a Athletes) FilterByGender(gender Gender) Athletes {
	return a.filter(func(athlete Athlete) bool {
		return athlete.Gender == gender
	})
}

// Records flattens the collection into one string map per athlete,
// suitable for serialization. the field set is fixed.
func (a Athletes) Records() []map[string]string {
	records := make([]map[string]string, len(a.items))
	for i, athlete := range a.items {
		year := ""
		if athlete.BirthYear != 0 {
			year = strconv.Itoa(athlete.BirthYear)
		}
		records[i] = map[string]string{
			"id":           athlete.ID,
			"full_name":    athlete.FullName(),
			"first_name":   athlete.FirstName,
			"last_name":    athlete.LastName,
			"birth_year":   year,
			"gender":       athlete.Gender.String(),
			"country_code": athlete.CountryCode,
			"club_name":    athlete.ClubName,
			"profile_url":  athlete.ProfileURL(),
		}
	}
	return records
}
