package swimrankings

import (
	"context"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// MeetClub is one club that entered a meet.
type MeetClub struct {
	ID   string
	Name string
}

// MeetEvent is one event on a meet's program. the site keeps separate
// event menus per gender, so the same event id can appear once for men
// and once for women.
type MeetEvent struct {
	ID     string
	Gender Gender
	Name   string
}

// MeetRace is one race within an event, a heat, prelim or final. the
// site assigns races no id of their own, they are addressed by their
// 1-based position on the event page.
type MeetRace struct {
	Number int
	Name   string
}

// MeetResult is one swim of one race.
type MeetResult struct {
	ID          string
	AthleteID   string
	AthleteName string
	ClubName    string
	// preserves source formatting, same as PersonalBest.Time
	Time string
	// intermediate times in page order, empty when the source
	// renders none
	Splits []string
}

// Seconds converts the source-formatted swim time into seconds.
func (r MeetResult) Seconds() (float64, error) {
	return ParseSwimTime(r.Time)
}

// ListMeetClubs lists the clubs that participated in one meet.
func (c *Client) ListMeetClubs(ctx context.Context, meetID string) ([]MeetClub, error) {
	ctx, span := tracer.Start(ctx, "client:ListMeetClubs")
	defer span.End()
	span.SetAttributes(attribute.String("meet_id", meetID))

	doc, err := c.fetchMeetDetail(ctx, meetDetailParams(meetID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch meet detail")
		return nil, err
	}

	rows, err := extractMeetClubRows(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract club rows")
		return nil, err
	}

	var clubs []MeetClub
	for _, row := range rows {
		club, err := rowToMeetClub(row)
		if err != nil {
			continue
		}
		clubs = append(clubs, club)
	}
	return clubs, nil
}

// ListMeetEvents lists the events on one meet's program, men's events
// first.
func (c *Client) ListMeetEvents(ctx context.Context, meetID string) ([]MeetEvent, error) {
	ctx, span := tracer.Start(ctx, "client:ListMeetEvents")
	defer span.End()
	span.SetAttributes(attribute.String("meet_id", meetID))

	doc, err := c.fetchMeetDetail(ctx, meetDetailParams(meetID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch meet detail")
		return nil, err
	}

	options, err := extractMeetEventOptions(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract event menus")
		return nil, err
	}

	events := make([]MeetEvent, 0, len(options))
	for _, opt := range options {
		events = append(events, MeetEvent{
			ID:     opt.eventID,
			Gender: opt.gender,
			Name:   normalize(opt.name),
		})
	}
	return events, nil
}

// ListMeetRaces lists the races swum within one event of a meet, in
// page order.
func (c *Client) ListMeetRaces(ctx context.Context, meetID, eventID string, gender Gender) ([]MeetRace, error) {
	ctx, span := tracer.Start(ctx, "client:ListMeetRaces")
	defer span.End()
	span.SetAttributes(
		attribute.String("meet_id", meetID),
		attribute.String("event_id", eventID),
	)

	doc, err := c.fetchMeetDetail(ctx, meetEventParams(meetID, eventID, gender))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch event page")
		return nil, err
	}

	names := extractRaceNames(doc)
	races := make([]MeetRace, 0, len(names))
	for i, name := range names {
		races = append(races, MeetRace{Number: i + 1, Name: normalize(name)})
	}
	return races, nil
}

// ListMeetResults lists the results of one race, addressed by its
// 1-based number as returned by ListMeetRaces. an out-of-range race
// number fails with ErrIndexOutOfRange.
func (c *Client) ListMeetResults(ctx context.Context, meetID, eventID string, gender Gender, race int) ([]MeetResult, error) {
	ctx, span := tracer.Start(ctx, "client:ListMeetResults")
	defer span.End()
	span.SetAttributes(
		attribute.String("meet_id", meetID),
		attribute.String("event_id", eventID),
		attribute.Int("race", race),
	)

	doc, err := c.fetchMeetDetail(ctx, meetEventParams(meetID, eventID, gender))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch event page")
		return nil, err
	}

	rows, err := extractMeetResultRows(doc, race)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract result rows")
		return nil, err
	}

	var results []MeetResult
	for _, row := range rows {
		result, err := rowToMeetResult(row)
		if err != nil {
			continue
		}
		results = append(results, result)
	}
	return results, nil
}

// GetResultTime fetches the recorded time of one result by its id,
// preserving the source formatting.
func (c *Client) GetResultTime(ctx context.Context, resultID string) (string, error) {
	ctx, span := tracer.Start(ctx, "client:GetResultTime")
	defer span.End()
	span.SetAttributes(attribute.String("result_id", resultID))

	raw, err := c.fetchPage(ctx, pageResultDetail, resultDetailParams(resultID))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch result detail")
		return "", err
	}
	doc, err := parseDocument(raw)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse result detail")
		return "", err
	}

	time, err := extractResultTime(doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract result time")
		return "", err
	}
	return time, nil
}

func (c *Client) fetchMeetDetail(ctx context.Context, params url.Values) (*goquery.Document, error) {
	raw, err := c.fetchPage(ctx, pageMeetDetail, params)
	if err != nil {
		return nil, err
	}
	return parseDocument(raw)
}
