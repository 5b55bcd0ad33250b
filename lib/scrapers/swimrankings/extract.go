package swimrankings

import (
	"fmt"
	"strings"

	"swimrankings-backend/lib/htmlutil"

	"github.com/PuerkitoBio/goquery"
)

// extraction is two-phase: the structural anchor of each page kind is
// located first (its absence is either "zero results" or ErrParse,
// depending on the kind), then optional cells are read best-effort
// into raw row structs. unknown extra columns are ignored. conversion
// into domain records happens in convert.go.

func parseDocument(rawHTML string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, parseError("unreadable markup: " + err.Error())
	}
	return doc, nil
}

type searchRow struct {
	athleteID string
	fullName  string
	birthYear string
	genderImg string
	country   string
	club      string
}

// extractSearchRows reads the athlete-search result table. a missing
// table is not a failure, the site renders no table when nothing
// matches.
func extractSearchRows(doc *goquery.Document) ([]searchRow, error) {
	table := doc.Find("table.athleteSearch")
	if table.Length() == 0 {
		return nil, nil
	}

	var rows []searchRow
	withID := 0
	table.Find("tr.athleteSearch0, tr.athleteSearch1").Each(func(_ int, tr *goquery.Selection) {
		nameLink := tr.Find("td.name a")

		row := searchRow{
			athleteID: htmlutil.QueryParam(nameLink.AttrOr("href", ""), "athleteId"),
			fullName:  htmlutil.CleanText(nameLink.Text()),
			birthYear: htmlutil.CleanText(tr.Find("td.date").Text()),
			genderImg: tr.Find("img").AttrOr("src", ""),
			country:   htmlutil.CleanText(tr.Find("td.code").Text()),
			club:      htmlutil.CleanText(tr.Find("td.club").Text()),
		}
		if row.athleteID != "" {
			withID++
		}
		rows = append(rows, row)
	})

	// rows without the id column are individually skipped during
	// conversion, but an id missing from every row means the column
	// itself is gone
	if len(rows) > 0 && withID == 0 {
		return nil, parseError("athlete id missing from every search row")
	}

	return rows, nil
}

type detailHeader struct {
	nameLine   string
	genderImg  string
	nationLine string
	clubLine   string
}

// extractDetailHeader reads the profile section of the athlete-detail
// page. the section is a required anchor, a detail page without it is
// malformed.
func extractDetailHeader(doc *goquery.Document) (detailHeader, error) {
	info := doc.Find("div#athleteinfo")
	if info.Length() == 0 {
		return detailHeader{}, parseError("missing athleteinfo section")
	}

	name := info.Find("div#name")
	header := detailHeader{
		nameLine:  htmlutil.CleanText(name.Text()),
		genderImg: name.Find("img").AttrOr("src", ""),
	}

	// the nationclub block renders as "XXX - Country<br>Club Name"
	lines := htmlutil.SplitBr(info.Find("div#nationclub"))
	if len(lines) > 0 {
		header.nationLine = lines[0]
	}
	if len(lines) > 1 {
		header.clubLine = strings.Join(lines[1:], " ")
	}

	return header, nil
}

type bestRow struct {
	event    string
	course   string
	time     string
	points   string
	date     string
	location string
	meet     string
}

// extractBestRows reads the personal-bests table of the detail page.
// the table is optional, an athlete without recorded times renders
// none.
func extractBestRows(doc *goquery.Document) ([]bestRow, error) {
	table := doc.Find("table.athleteBest")
	if table.Length() == 0 {
		return nil, nil
	}

	var rows []bestRow
	complete := 0
	table.Find("tr.athleteBest0, tr.athleteBest1").Each(func(_ int, tr *goquery.Selection) {
		row := bestRow{
			event:    htmlutil.CleanText(tr.Find("td.event").Text()),
			course:   htmlutil.CleanText(tr.Find("td.course").Text()),
			time:     htmlutil.CleanText(tr.Find("td.time, td.swimtimeImportant").First().Text()),
			points:   htmlutil.CleanText(tr.Find("td.code").Text()),
			date:     htmlutil.CleanText(tr.Find("td.date").Text()),
			location: htmlutil.CleanText(tr.Find("td.city").Text()),
			meet:     htmlutil.CleanText(tr.Find("td.name").Text()),
		}
		if row.event != "" && row.time != "" {
			complete++
		}
		rows = append(rows, row)
	})

	if len(rows) > 0 && complete == 0 {
		return nil, parseError("event/time missing from every personal-best row")
	}

	return rows, nil
}

type option struct {
	value string
	label string
}

// extractOptions reads (value, label) pairs from a named selection
// control. reference-data pages render their tables as <select>
// controls, so a missing control is a markup change.
func extractOptions(doc *goquery.Document, selectName string, placeholders ...string) ([]option, error) {
	sel := doc.Find("select[name=" + selectName + "]")
	if sel.Length() == 0 {
		return nil, parseError("missing selection control " + selectName)
	}

	skip := make(map[string]bool, len(placeholders))
	for _, p := range placeholders {
		skip[p] = true
	}

	var options []option
	sel.Find("option").Each(func(_ int, opt *goquery.Selection) {
		value := opt.AttrOr("value", "")
		if value == "" || skip[value] {
			return
		}
		options = append(options, option{
			value: value,
			label: htmlutil.CleanText(opt.Text()),
		})
	})

	return options, nil
}

type meetRow struct {
	meetID string
	date   string
	city   string
	name   string
	course string
}

// extractMeetRows reads the meet listing tables of the meetSelect
// page. listings can be split across several tables on the page.
func extractMeetRows(doc *goquery.Document) ([]meetRow, error) {
	tables := doc.Find("table.meetSearch")
	if tables.Length() == 0 {
		return nil, nil
	}

	var rows []meetRow
	withID := 0
	tables.Find("tr.meetSearch0, tr.meetSearch1").Each(func(_ int, tr *goquery.Selection) {
		cityLink := tr.Find("td.city a")

		row := meetRow{
			meetID: htmlutil.QueryParam(cityLink.AttrOr("href", ""), "meetId"),
			date:   htmlutil.CleanText(tr.Find("td.date").Text()),
			city:   htmlutil.CleanText(cityLink.Text()),
			name:   htmlutil.CleanText(tr.Find("td.name").Last().Find("a").Text()),
			course: htmlutil.CleanText(tr.Find("td.course").Text()),
		}
		if row.meetID != "" {
			withID++
		}
		rows = append(rows, row)
	})

	if len(rows) > 0 && withID == 0 {
		return nil, parseError("meet id missing from every meet row")
	}

	return rows, nil
}

type athleteMeetRow struct {
	meetID string
	date   string
	city   string
	name   string
}

// extractAthleteMeetRows reads the meet-history table of the
// athlete-detail page.
func extractAthleteMeetRows(doc *goquery.Document) ([]athleteMeetRow, error) {
	table := doc.Find("table.athleteMeet")
	if table.Length() == 0 {
		return nil, nil
	}

	var rows []athleteMeetRow
	withID := 0
	table.Find("tr.athleteMeet0, tr.athleteMeet1").Each(func(_ int, tr *goquery.Selection) {
		cityLink := tr.Find("td.city a")

		row := athleteMeetRow{
			meetID: htmlutil.QueryParam(cityLink.AttrOr("href", ""), "meetId"),
			date:   htmlutil.CleanText(tr.Find("td.date").Text()),
			city:   htmlutil.CleanText(cityLink.Text()),
			name:   htmlutil.CleanText(cityLink.AttrOr("title", "")),
		}
		if row.meetID != "" {
			withID++
		}
		rows = append(rows, row)
	})

	if len(rows) > 0 && withID == 0 {
		return nil, parseError("meet id missing from every athlete meet row")
	}

	return rows, nil
}

type meetClubRow struct {
	clubID string
	name   string
}

// extractMeetClubRows reads the participating-clubs table of the meet
// detail page. the site reuses the meetSearch table class there but
// switches to meetResult row classes.
func extractMeetClubRows(doc *goquery.Document) ([]meetClubRow, error) {
	table := doc.Find("table.meetSearch")
	if table.Length() == 0 {
		return nil, nil
	}

	var rows []meetClubRow
	withID := 0
	table.Find("tr.meetResult0, tr.meetResult1").Each(func(_ int, tr *goquery.Selection) {
		link := tr.Find("td.club a")

		row := meetClubRow{
			clubID: htmlutil.QueryParam(link.AttrOr("href", ""), "clubId"),
			name:   htmlutil.CleanText(link.Text()),
		}
		if row.clubID != "" {
			withID++
		}
		rows = append(rows, row)
	})

	if len(rows) > 0 && withID == 0 {
		return nil, parseError("club id missing from every club row")
	}

	return rows, nil
}

type meetEventOption struct {
	eventID string
	gender  Gender
	name    string
}

// extractMeetEventOptions reads the per-gender event menus of the meet
// detail page. a meet page without the navigation block has no events
// to offer, which is valid for meets with unpublished programs.
func extractMeetEventOptions(doc *goquery.Document) ([]meetEventOption, error) {
	table := doc.Find("table.navigation")
	if table.Length() == 0 {
		return nil, nil
	}

	var options []meetEventOption
	collect := func(marker string, gender Gender) {
		table.Find("td.navigation").EachWithBreak(func(_ int, td *goquery.Selection) bool {
			if !strings.Contains(td.Text(), marker) {
				return true
			}
			td.Find("option").Each(func(_ int, opt *goquery.Selection) {
				value := opt.AttrOr("value", "")
				// "0" is the "select an event" placeholder
				if value == "" || value == "0" {
					return
				}
				options = append(options, meetEventOption{
					eventID: value,
					gender:  gender,
					name:    htmlutil.CleanText(opt.Text()),
				})
			})
			return false
		})
	}
	collect("Men's events:", GenderMale)
	collect("Women's events:", GenderFemale)

	return options, nil
}

// extractRaceNames reads the heading of every result table on an event
// page, in page order. races have no id of their own, their position
// is the handle.
func extractRaceNames(doc *goquery.Document) []string {
	var names []string
	doc.Find("table.meetResult").Each(func(_ int, table *goquery.Selection) {
		heading := table.Find("tr.meetResultHead th.event").First()
		names = append(names, htmlutil.CleanText(heading.Text()))
	})
	return names
}

type meetResultRow struct {
	resultID    string
	athleteID   string
	athleteName string
	clubName    string
	time        string
	splitsAttr  string
}

// extractMeetResultRows reads the rows of one race's result table,
// addressed by its 1-based position among the event page's tables.
func extractMeetResultRows(doc *goquery.Document, race int) ([]meetResultRow, error) {
	tables := doc.Find("table.meetResult")
	if race < 1 || race > tables.Length() {
		return nil, fmt.Errorf("%w: race %d with %d races", ErrIndexOutOfRange, race, tables.Length())
	}

	var rows []meetResultRow
	withID := 0
	tables.Eq(race-1).Find("tr.meetResult0, tr.meetResult1").Each(func(_ int, tr *goquery.Selection) {
		nameLinks := tr.Find("td.name a")
		timeLink := tr.Find("td.swimtime a")

		row := meetResultRow{
			resultID:    htmlutil.QueryParam(timeLink.AttrOr("href", ""), "id"),
			athleteID:   htmlutil.QueryParam(nameLinks.First().AttrOr("href", ""), "athleteId"),
			athleteName: htmlutil.CleanText(nameLinks.First().Text()),
			clubName:    htmlutil.CleanText(nameLinks.Eq(1).Text()),
			time:        htmlutil.CleanText(timeLink.Text()),
			// split times hide in a tooltip handler attribute
			splitsAttr: timeLink.AttrOr("onmouseover", ""),
		}
		if row.resultID != "" {
			withID++
		}
		rows = append(rows, row)
	})

	if len(rows) > 0 && withID == 0 {
		return nil, parseError("result id missing from every result row")
	}

	return rows, nil
}

// extractResultTime reads the headline time of the result detail page.
func extractResultTime(doc *goquery.Document) (string, error) {
	cell := doc.Find("td.swimtimeLarge")
	if cell.Length() == 0 {
		return "", parseError("missing swimtimeLarge cell")
	}
	return htmlutil.CleanText(cell.First().Text()), nil
}

type clubAthleteRow struct {
	athleteID string
	fullName  string
}

// extractClubAthleteRows reads the roster tables of the club ranking
// page.
func extractClubAthleteRows(doc *goquery.Document) ([]clubAthleteRow, error) {
	tables := doc.Find("table.athleteList")
	if tables.Length() == 0 {
		return nil, nil
	}

	var rows []clubAthleteRow
	withID := 0
	tables.Find("tr.athleteSearch0, tr.athleteSearch1").Each(func(_ int, tr *goquery.Selection) {
		nameLink := tr.Find("td.name a")

		row := clubAthleteRow{
			athleteID: htmlutil.QueryParam(nameLink.AttrOr("href", ""), "athleteId"),
			fullName:  htmlutil.CleanText(nameLink.Text()),
		}
		if row.athleteID != "" {
			withID++
		}
		rows = append(rows, row)
	})

	if len(rows) > 0 && withID == 0 {
		return nil, parseError("athlete id missing from every roster row")
	}

	return rows, nil
}
