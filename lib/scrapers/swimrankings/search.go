package swimrankings

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"swimrankings-backend/lib/textutil"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

type SearchOptions struct {
	FirstName string
	// one of "all", "male", "female". the empty string means "all".
	Gender string
	// internal club id filter, "" searches all clubs
	ClubID string
	// internal nation id filter, "" searches all nations
	NationID string
}

// SearchAthletes runs an athlete search by last name and constructs
// the result collection. a search that matches nothing fails with
// ErrAthleteNotFound, an unknown gender token fails with
// ErrInvalidGender before any network call.
func (c *Client) SearchAthletes(ctx context.Context, lastName string, opts SearchOptions) (Athletes, error) {
	ctx, span := tracer.Start(ctx, "client:SearchAthletes")
	defer span.End()
	span.SetAttributes(attribute.String("last_name", lastName))

	gender, err := ParseGender(opts.Gender)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "invalid gender token")
		return Athletes{}, err
	}

	raw, err := c.fetchPage(ctx, pageAthleteSearch, searchParams(lastName, opts, gender))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch search page")
		return Athletes{}, err
	}
	doc, err := parseDocument(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse search page")
		return Athletes{}, err
	}

	rows, err := extractSearchRows(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract search rows")
		return Athletes{}, err
	}

	var athletes []Athlete
	skipped := 0
	for _, row := range rows {
		athlete, err := rowToAthlete(row)
		if err != nil {
			skipped++
			continue
		}
		athletes = append(athletes, athlete)
	}
	if skipped > 0 {
		span.SetAttributes(attribute.Int("skipped_rows", skipped))
	}

	if len(athletes) == 0 {
		return Athletes{}, fmt.Errorf("%w: %q", ErrAthleteNotFound, lastName)
	}
	return newAthletes(athletes)
}

var parenthesizedYear = regexp.MustCompile(`\((\d{4})\)`)

// GetDetails fetches one athlete's detail page and returns the
// personal bests together with the scraped profile header. the page
// is re-fetched on every call, there is no per-athlete cache.
func (c *Client) GetDetails(ctx context.Context, athleteID string) (AthleteDetails, error) {
	ctx, span := tracer.Start(ctx, "client:GetDetails")
	defer span.End()
	span.SetAttributes(attribute.String("athlete_id", athleteID))

	header, bests, err := c.fetchDetailPage(ctx, athleteID, "")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch athlete detail")
		return AthleteDetails{}, err
	}

	return AthleteDetails{
		AthleteID:   athleteID,
		Bests:       bests,
		ProfileInfo: profileInfo(header),
		LastUpdated: c.now(),
	}, nil
}

// GetSeasonBests fetches the personal bests restricted to one season,
// e.g. "2024". the empty season means all seasons.
func (c *Client) GetSeasonBests(ctx context.Context, athleteID, season string) ([]PersonalBest, error) {
	ctx, span := tracer.Start(ctx, "client:GetSeasonBests")
	defer span.End()

	_, bests, err := c.fetchDetailPage(ctx, athleteID, season)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch season bests")
		return nil, err
	}
	return bests, nil
}

func (c *Client) fetchDetailPage(ctx context.Context, athleteID, season string) (detailHeader, []PersonalBest, error) {
	raw, err := c.fetchPage(ctx, pageAthleteDetail, detailParams(athleteID, season))
	if err != nil {
		return detailHeader{}, nil, err
	}
	doc, err := parseDocument(raw)
	if err != nil {
		return detailHeader{}, nil, err
	}

	// the profile section is a required anchor, the bests table is
	// not: an athlete without recorded times is a valid page
	header, err := extractDetailHeader(doc)
	if err != nil {
		return detailHeader{}, nil, err
	}
	rows, err := extractBestRows(doc)
	if err != nil {
		return detailHeader{}, nil, err
	}

	var bests []PersonalBest
	for _, row := range rows {
		best, err := rowToPersonalBest(row)
		if err != nil {
			continue
		}
		bests = append(bests, best)
	}
	return header, bests, nil
}

// profileInfo flattens the detail-page header into the free-form
// key/value mapping exposed on AthleteDetails.
func profileInfo(header detailHeader) map[string]string {
	info := map[string]string{}

	nameLine := normalize(header.nameLine)
	if groups := parenthesizedYear.FindStringSubmatch(nameLine); groups != nil {
		info["birth_year"] = groups[1]
		nameLine = strings.TrimSpace(parenthesizedYear.ReplaceAllString(nameLine, ""))
	}
	if nameLine != "" {
		last, first := textutil.SplitDisplayName(nameLine)
		info["last_name"] = last
		if first != "" {
			info["first_name"] = first
		}
	}

	if gender := genderFromImage(header.genderImg); gender != GenderAll {
		info["gender"] = gender.String()
	}

	if nation := normalize(header.nationLine); nation != "" {
		if groups := nationLabelRegex.FindStringSubmatch(nation); groups != nil {
			info["country_code"] = groups[1]
			info["country_name"] = groups[2]
		} else {
			info["country_name"] = nation
		}
	}

	if club := normalize(header.clubLine); club != "" {
		info["club_name"] = club
	}

	return info
}
