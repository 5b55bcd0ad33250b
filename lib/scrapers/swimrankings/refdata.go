package swimrankings

import (
	"context"
	"slices"
	"strings"
	"sync"

	"swimrankings-backend/lib/textutil"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// similarity below which FindCountryByName reports no match
const countryNameMatchThreshold = 0.8

// RefData memoizes the two slow-changing reference tables the site
// exposes, countries and time periods. each slot is populated at most
// once until ClearCache. population assigns the fully-built slice in
// one step, so concurrent first calls may fetch redundantly but never
// observe a half-written slot.
//
// the Fetch* variants always hit the network and bypass the slots,
// the Cached* variants populate on first use, and the lookup helpers
// absorb errors and report plain misses since reference lookups are
// expected to miss.
type RefData struct {
	client *Client

	mu           sync.Mutex
	countries    []Country
	countriesSet bool
	periods      []TimePeriod
	periodsSet   bool
}

func NewRefData(client *Client) *RefData {
	return &RefData{client: client}
}

// FetchCountries always performs a fresh network round trip.
func (r *RefData) FetchCountries(ctx context.Context) ([]Country, error) {
	ctx, span := tracer.Start(ctx, "refdata:FetchCountries")
	defer span.End()

	doc, err := r.fetchMeetSelect(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch reference page")
		return nil, err
	}

	// "$$$" is the leading "all nations" placeholder
	options, err := extractOptions(doc, "nationId", "$$$")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract nation options")
		return nil, err
	}

	seen := make(map[string]bool, len(options))
	var countries []Country
	for _, opt := range options {
		country, err := optionToCountry(opt.value, opt.label)
		if err != nil || seen[country.NationID] {
			continue
		}
		seen[country.NationID] = true
		countries = append(countries, country)
	}
	return countries, nil
}

// FetchTimePeriods always performs a fresh network round trip. the
// result is sorted most recent first.
func (r *RefData) FetchTimePeriods(ctx context.Context) ([]TimePeriod, error) {
	ctx, span := tracer.Start(ctx, "refdata:FetchTimePeriods")
	defer span.End()

	doc, err := r.fetchMeetSelect(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch reference page")
		return nil, err
	}

	// "RECENT" and "BYTYPE" are placeholder views, not periods
	options, err := extractOptions(doc, "selectPage", "RECENT", "BYTYPE")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to extract period options")
		return nil, err
	}

	var periods []TimePeriod
	for _, opt := range options {
		period, err := optionToTimePeriod(opt.value, opt.label)
		if err != nil {
			continue
		}
		periods = append(periods, period)
	}
	if len(options) > 0 && len(periods) == 0 {
		err := parseError("no period option matched the <year>_m<month> form")
		span.RecordError(err)
		span.SetStatus(codes.Error, "period code format changed")
		return nil, err
	}

	slices.SortFunc(periods, func(a, b TimePeriod) int {
		if a.Year != b.Year {
			return b.Year - a.Year
		}
		return b.Month - a.Month
	})
	return periods, nil
}

func (r *RefData) fetchMeetSelect(ctx context.Context) (*goquery.Document, error) {
	raw, err := r.client.fetchPage(ctx, pageMeetSelect, meetSelectParams("", ""))
	if err != nil {
		return nil, err
	}
	return parseDocument(raw)
}

// CachedCountries returns the memoized country set, fetching it on
// first use.
func (r *RefData) CachedCountries(ctx context.Context) ([]Country, error) {
	r.mu.Lock()
	if r.countriesSet {
		cached := r.countries
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	// fetch happens outside the lock, a concurrent populate is
	// redundant but harmless
	countries, err := r.FetchCountries(ctx)
	if err != nil {
		return nil, err
	}

	// an empty fetch result still marks the slot populated
	r.mu.Lock()
	r.countries = countries
	r.countriesSet = true
	r.mu.Unlock()
	return countries, nil
}

// CachedTimePeriods returns the memoized time-period set, fetching it
// on first use.
func (r *RefData) CachedTimePeriods(ctx context.Context) ([]TimePeriod, error) {
	r.mu.Lock()
	if r.periodsSet {
		cached := r.periods
		r.mu.Unlock()
		return cached, nil
	}
	r.mu.Unlock()

	periods, err := r.FetchTimePeriods(ctx)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.periods = periods
	r.periodsSet = true
	r.mu.Unlock()
	return periods, nil
}

// ClearCache resets both slots, the next access re-fetches.
func (r *RefData) ClearCache() {
	r.mu.Lock()
	r.countries = nil
	r.countriesSet = false
	r.periods = nil
	r.periodsSet = false
	r.mu.Unlock()
}

// CountryName resolves a nation id to its display name.
func (r *RefData) CountryName(ctx context.Context, nationID string) (string, bool) {
	countries, err := r.CachedCountries(ctx)
	if err != nil {
		return "", false
	}
	for _, c := range countries {
		if c.NationID == nationID {
			return c.Name, true
		}
	}
	return "", false
}

// CountryCode resolves a nation id to its 3-letter code.
func (r *RefData) CountryCode(ctx context.Context, nationID string) (string, bool) {
	countries, err := r.CachedCountries(ctx)
	if err != nil {
		return "", false
	}
	for _, c := range countries {
		if c.NationID == nationID {
			return c.Code, true
		}
	}
	return "", false
}

// NationIDByCode resolves a 3-letter code, case-insensitively, to the
// site's internal nation id.
func (r *RefData) NationIDByCode(ctx context.Context, code string) (string, bool) {
	countries, err := r.CachedCountries(ctx)
	if err != nil {
		return "", false
	}
	for _, c := range countries {
		if strings.EqualFold(c.Code, code) {
			return c.NationID, true
		}
	}
	return "", false
}

// FindCountryByName returns the country whose display name is closest
// to the given one, tolerating misspellings.
func (r *RefData) FindCountryByName(ctx context.Context, name string) (Country, bool) {
	countries, err := r.CachedCountries(ctx)
	if err != nil {
		return Country{}, false
	}

	names := make([]string, len(countries))
	for i, c := range countries {
		names[i] = c.Name
	}
	best, score := textutil.ClosestMatch(name, names)
	if score < countryNameMatchThreshold {
		return Country{}, false
	}
	for _, c := range countries {
		if c.Name == best {
			return c, true
		}
	}
	return Country{}, false
}

// AvailableYears enumerates the years covered by the time-period
// table, most recent first. nil means the table could not be fetched.
func (r *RefData) AvailableYears(ctx context.Context) []int {
	periods, err := r.CachedTimePeriods(ctx)
	if err != nil {
		return nil
	}

	var years []int
	for _, p := range periods {
		if len(years) == 0 || years[len(years)-1] != p.Year {
			years = append(years, p.Year)
		}
	}
	return years
}

// MonthsForYear returns the months the table covers within one year,
// most recent first. nil means the year is absent or the table could
// not be fetched.
func (r *RefData) MonthsForYear(ctx context.Context, year int) []int {
	periods, err := r.CachedTimePeriods(ctx)
	if err != nil {
		return nil
	}

	var months []int
	for _, p := range periods {
		if p.Year == year {
			months = append(months, p.Month)
		}
	}
	return months
}
