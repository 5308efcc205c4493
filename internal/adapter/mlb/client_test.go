package mlb

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

const schedulePayload = `{
	"totalGames": 2,
	"dates": [{
		"games": [
			{
				"gamePk": 745804,
				"gameDate": "2024-07-03T23:05:00Z",
				"venue": {"id": 3313, "name": "Yankee Stadium"},
				"teams": {
					"away": {"team": {"id": 139, "name": "Tampa Bay Rays"}},
					"home": {"team": {"id": 147, "name": "New York Yankees"}}
				}
			},
			{
				"gamePk": 745812,
				"gameDate": "2024-07-04T02:10:00Z",
				"venue": {"id": 22, "name": "Dodger Stadium"},
				"teams": {
					"away": {"team": {"id": 109, "name": "Arizona Diamondbacks"}},
					"home": {"team": {"id": 119, "name": "Los Angeles Dodgers"}}
				}
			}
		]
	}]
}`

func TestClient_Schedule_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/schedule", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "1", q.Get("sportId"))
		assert.Equal(t, "2024-07-03", q.Get("date"))
		assert.Equal(t, "venue", q.Get("hydrate"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(schedulePayload))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	games, err := c.Schedule(context.Background(), time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, games, 2)

	first := games[0]
	assert.Equal(t, 745804, first.GamePk)
	assert.Equal(t, 3313, first.VenueID)
	assert.Equal(t, "Yankee Stadium", first.VenueName)
	assert.Equal(t, "Tampa Bay Rays", first.AwayTeam)
	assert.Equal(t, 139, first.AwayTeamID)
	assert.Equal(t, "New York Yankees", first.HomeTeam)
	assert.Equal(t, 147, first.HomeTeamID)
	assert.Equal(t, time.Date(2024, 7, 3, 23, 5, 0, 0, time.UTC), first.StartTime)

	// A 02:10 UTC start is still the requested slate date in venue-local time.
	assert.Equal(t, 745812, games[1].GamePk)
}

func TestClient_Schedule_EmptyDay(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalGames": 0, "dates": []}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	games, err := c.Schedule(context.Background(), time.Date(2024, 12, 25, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestClient_Schedule_SkipsUnparseableStartTime(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"totalGames": 2,
			"dates": [{
				"games": [
					{"gamePk": 1, "gameDate": "not-a-time", "venue": {"id": 1, "name": "A"},
					 "teams": {"away": {"team": {"id": 1, "name": "X"}}, "home": {"team": {"id": 2, "name": "Y"}}}},
					{"gamePk": 2, "gameDate": "2024-07-03T23:05:00Z", "venue": {"id": 2, "name": "B"},
					 "teams": {"away": {"team": {"id": 3, "name": "Z"}}, "home": {"team": {"id": 4, "name": "W"}}}}
				]
			}]
		}`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	games, err := c.Schedule(context.Background(), time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, 2, games[0].GamePk)
}

func TestClient_Schedule_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Schedule(context.Background(), time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 503")
}

func TestClient_Schedule_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"totalGames":`))
	}))
	defer srv.Close()

	c := testClient(srv.URL)
	_, err := c.Schedule(context.Background(), time.Date(2024, 7, 3, 0, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode schedule")
}
