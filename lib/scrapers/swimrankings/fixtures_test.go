package swimrankings

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"swimrankings-backend/lib/telemetry"

	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC)

// fixtureServer serves the testdata pages the way index.php would,
// routing on the same discriminating query parameters, and counts
// every request it sees.
type fixtureServer struct {
	server   *httptest.Server
	requests atomic.Int64
}

func (fs *fixtureServer) Requests() int64 {
	return fs.requests.Load()
}

func serveFixture(t testing.TB, w http.ResponseWriter, name string) {
	data, err := os.ReadFile(filepath.Join("testdata", name))
	if err != nil {
		t.Fatal(err)
	}
	w.Header().Set("content-type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}

func newFixtureClient(t testing.TB) (*Client, *fixtureServer) {
	cleanup := telemetry.SetupForTesting(t, "test:swimrankings")
	t.Cleanup(cleanup)

	fs := &fixtureServer{}
	fs.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fs.requests.Add(1)

		q := r.URL.Query()
		switch {
		case q.Get("internalRequest") == "athleteFind":
			if q.Get("athlete_lastname") == "Nobody" {
				serveFixture(t, w, "search_empty.html")
				return
			}
			serveFixture(t, w, "search.html")
		case q.Get("page") == "athleteDetail" && q.Get("athletePage") == "MEET":
			serveFixture(t, w, "athletemeets.html")
		case q.Get("page") == "athleteDetail":
			switch q.Get("athleteId") {
			case "6200917":
				serveFixture(t, w, "detail_nobests.html")
			case "999":
				serveFixture(t, w, "detail_noinfo.html")
			case "500":
				http.Error(w, "internal error", http.StatusInternalServerError)
			default:
				serveFixture(t, w, "detail.html")
			}
		case q.Get("page") == "meetSelect":
			serveFixture(t, w, "meetselect.html")
		case q.Get("page") == "meetDetail":
			if q.Get("styleId") != "" {
				serveFixture(t, w, "meetresults.html")
				return
			}
			serveFixture(t, w, "meetdetail.html")
		case q.Get("page") == "resultDetail":
			serveFixture(t, w, "resultdetail.html")
		case q.Get("page") == "rankingDetail":
			serveFixture(t, w, "clubranking.html")
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(fs.server.Close)

	client, err := NewClient(ClientOptions{
		BaseURL:          fs.server.URL + "/index.php",
		Timeout:          time.Second * 5,
		DisableRateLimit: true,
		Now:              func() time.Time { return fixedNow },
	})
	require.NoError(t, err)

	return client, fs
}
