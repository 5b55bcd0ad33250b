package swimrankings

import (
	"context"
	"net/http/cookiejar"
	"net/url"
	"time"

	"swimrankings-backend/lib/telemetry"
	"swimrankings-backend/lib/timezone"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/codes"
)

const defaultBaseURL = "https://www.swimrankings.net/index.php"

// pageKind identifies one of the logical request/response shapes the
// site exposes through its single index.php endpoint.
type pageKind int

const (
	pageAthleteSearch pageKind = iota
	pageAthleteDetail
	pageMeetSelect
	pageMeetDetail
	pageResultDetail
	pageClubRanking
)

func (k pageKind) String() string {
	switch k {
	case pageAthleteSearch:
		return "athleteSearch"
	case pageAthleteDetail:
		return "athleteDetail"
	case pageMeetSelect:
		return "meetSelect"
	case pageMeetDetail:
		return "meetDetail"
	case pageResultDetail:
		return "resultDetail"
	case pageClubRanking:
		return "clubRanking"
	}
	return "unknown"
}

type ClientOptions struct {
	// defaults to the public swimrankings endpoint
	BaseURL string
	// defaults to 30s
	Timeout time.Duration
	// the site throttles aggressive clients, so requests are spread
	// over a sliding window by default. tests against a local fixture
	// server turn this off.
	DisableRateLimit bool
	// clock used for capture timestamps, defaults to timezone.Now
	Now func() time.Time
}

// Client fetches raw pages from swimrankings.net. it performs no
// retries and no implicit caching, both are caller concerns.
type Client struct {
	baseURL *url.URL
	http    *resty.Client
	limiter *rateLimiter
	now     func() time.Time
}

func NewClient(opts ClientOptions) (*Client, error) {
	rawURL := opts.BaseURL
	if rawURL == "" {
		rawURL = defaultBaseURL
	}
	baseURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = time.Second * 30
	}

	client := resty.New()
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/123.0.0.0 Safari/537.36")
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseURL.Hostname()))
	client.SetTimeout(timeout)

	telemetry.InstrumentResty(client, "scrapers/swimrankings/http")

	c := &Client{
		baseURL: baseURL,
		http:    client,
		now:     opts.Now,
	}
	if c.now == nil {
		c.now = timezone.Now
	}
	if !opts.DisableRateLimit {
		c.limiter = newRateLimiter(defaultRateLimit, defaultRateWindow)
		client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return c.limiter.wait(req.Context())
		})
	}
	return c, nil
}

// fetchPage performs one GET against the endpoint and returns the raw
// markup. every transport failure and non-2xx status is reported as
// ErrNetwork with the original cause attached.
func (c *Client) fetchPage(ctx context.Context, kind pageKind, params url.Values) (string, error) {
	ctx, span := tracer.Start(ctx, "client:fetchPage")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		SetQueryParamsFromValues(params).
		Get(c.baseURL.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch "+kind.String())
		return "", networkError(err)
	}
	if res.IsError() {
		span.SetStatus(codes.Error, "unexpected status for "+kind.String())
		return "", networkStatusError(res.Status())
	}

	return string(res.Body()), nil
}

func searchParams(lastName string, opts SearchOptions, gender Gender) url.Values {
	clubID := opts.ClubID
	if clubID == "" {
		clubID = "-1"
	}
	params := url.Values{}
	params.Set("internalRequest", "athleteFind")
	params.Set("athlete_clubId", clubID)
	params.Set("athlete_gender", gender.queryValue())
	params.Set("athlete_lastname", lastName)
	params.Set("athlete_firstname", opts.FirstName)
	if opts.NationID != "" {
		params.Set("athlete_nationId", opts.NationID)
	}
	return params
}

func detailParams(athleteID, season string) url.Values {
	if season == "" {
		season = "-1"
	}
	params := url.Values{}
	params.Set("page", "athleteDetail")
	params.Set("athleteId", athleteID)
	params.Set("pbest", season)
	return params
}

func athleteMeetParams(athleteID string) url.Values {
	params := url.Values{}
	params.Set("page", "athleteDetail")
	params.Set("athleteId", athleteID)
	params.Set("athletePage", "MEET")
	return params
}

func meetSelectParams(nationID, periodID string) url.Values {
	if nationID == "" {
		nationID = "0"
	}
	if periodID == "" {
		periodID = "RECENT"
	}
	params := url.Values{}
	params.Set("page", "meetSelect")
	params.Set("nationId", nationID)
	params.Set("selectPage", periodID)
	return params
}

func meetDetailParams(meetID string) url.Values {
	params := url.Values{}
	params.Set("page", "meetDetail")
	params.Set("meetId", meetID)
	return params
}

func meetEventParams(meetID, eventID string, gender Gender) url.Values {
	params := meetDetailParams(meetID)
	params.Set("styleId", eventID)
	params.Set("gender", gender.queryValue())
	return params
}

func resultDetailParams(resultID string) url.Values {
	params := url.Values{}
	params.Set("page", "resultDetail")
	params.Set("id", resultID)
	return params
}

func clubRankingParams(clubID string, roster ClubRoster) url.Values {
	params := url.Values{}
	params.Set("page", "rankingDetail")
	params.Set("clubId", clubID)
	params.Set("stroke", "9")
	params.Set("athleteGender", string(roster))
	return params
}
