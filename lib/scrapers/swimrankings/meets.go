package swimrankings

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// Meet is one row of the site's meet listings.
type Meet struct {
	ID     string
	Date   string
	City   string
	Name   string
	Course Course
}

// AthleteMeet is one meet an athlete participated in.
type AthleteMeet struct {
	MeetID string
	Date   string
	City   string
	Name   string
}

// ClubRoster selects which part of a club's roster to list.
type ClubRoster string

const (
	// currently active athletes only
	RosterCurrent  ClubRoster = "CURRENT"
	RosterAllMen   ClubRoster = "ALL_MEN"
	RosterAllWomen ClubRoster = "ALL_WOMEN"
)

// ClubAthlete is one entry of a club roster. the roster page carries
// less detail than a search result.
type ClubAthlete struct {
	ID        string
	FirstName string
	LastName  string
}

func (a ClubAthlete) FullName() string {
	if a.FirstName == "" {
		return a.LastName
	}
	return a.LastName + ", " + a.FirstName
}

// ListMeets lists the meets of one nation and time period. the empty
// nation id means all nations, the empty period id means the site's
// recent view.
func (c *Client) ListMeets(ctx context.Context, nationID, periodID string) ([]Meet, error) {
	ctx, span := tracer.Start(ctx, "client:ListMeets")
	defer span.End()
	span.SetAttributes(
		attribute.String("nation_id", nationID),
		attribute.String("period_id", periodID),
	)

	raw, err := c.fetchPage(ctx, pageMeetSelect, meetSelectParams(nationID, periodID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch meet listing")
		return nil, err
	}
	doc, err := parseDocument(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse meet listing")
		return nil, err
	}

	rows, err := extractMeetRows(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract meet rows")
		return nil, err
	}

	var meets []Meet
	for _, row := range rows {
		meet, err := rowToMeet(row)
		if err != nil {
			continue
		}
		meets = append(meets, meet)
	}
	return meets, nil
}

// ListAthleteMeets lists the meets one athlete has participated in.
func (c *Client) ListAthleteMeets(ctx context.Context, athleteID string) ([]AthleteMeet, error) {
	ctx, span := tracer.Start(ctx, "client:ListAthleteMeets")
	defer span.End()
	span.SetAttributes(attribute.String("athlete_id", athleteID))

	raw, err := c.fetchPage(ctx, pageAthleteDetail, athleteMeetParams(athleteID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch athlete meets")
		return nil, err
	}
	doc, err := parseDocument(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse athlete meets")
		return nil, err
	}

	rows, err := extractAthleteMeetRows(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract athlete meet rows")
		return nil, err
	}

	var meets []AthleteMeet
	for _, row := range rows {
		meet, err := rowToAthleteMeet(row)
		if err != nil {
			continue
		}
		meets = append(meets, meet)
	}
	return meets, nil
}

// ListClubAthletes lists a club's roster.
func (c *Client) ListClubAthletes(ctx context.Context, clubID string, roster ClubRoster) ([]ClubAthlete, error) {
	ctx, span := tracer.Start(ctx, "client:ListClubAthletes")
	defer span.End()
	span.SetAttributes(attribute.String("club_id", clubID))

	if roster == "" {
		roster = RosterCurrent
	}

	raw, err := c.fetchPage(ctx, pageClubRanking, clubRankingParams(clubID, roster))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch club roster")
		return nil, err
	}
	doc, err := parseDocument(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse club roster")
		return nil, err
	}

	rows, err := extractClubAthleteRows(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract roster rows")
		return nil, err
	}

	var athletes []ClubAthlete
	for _, row := range rows {
		athlete, err := rowToClubAthlete(row)
		if err != nil {
			continue
		}
		athletes = append(athletes, athlete)
	}
	return athletes, nil
}
