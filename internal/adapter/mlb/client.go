// Package mlb implements domain.ScheduleSource against the MLB Stats API.
package mlb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/gameday-weather/internal/domain"
)

const sportIDMLB = "1"

// Client fetches the MLB game schedule from statsapi.mlb.com.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates a schedule client.
func NewClient(baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// Schedule lists the games scheduled for the given date. The venue hydration
// keeps the response self-contained; game times come back as UTC instants.
func (c *Client) Schedule(ctx context.Context, date time.Time) ([]domain.GameContext, error) {
	params := url.Values{
		"sportId": {sportIDMLB},
		"date":    {date.Format("2006-01-02")},
		"hydrate": {"venue"},
	}
	fullURL := c.baseURL + "/api/v1/schedule?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("schedule request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("statsapi error: status %d", resp.StatusCode)
	}

	var sched scheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&sched); err != nil {
		return nil, fmt.Errorf("decode schedule: %w", err)
	}

	games := make([]domain.GameContext, 0, sched.TotalGames)
	for _, day := range sched.Dates {
		for _, g := range day.Games {
			start, err := time.Parse(time.RFC3339, g.GameDate)
			if err != nil {
				c.logger.Warn("skipping game with unparseable start time",
					"game_pk", g.GamePk,
					"game_date", g.GameDate)
				continue
			}
			games = append(games, domain.GameContext{
				GamePk:     g.GamePk,
				StartTime:  start,
				VenueID:    g.Venue.ID,
				VenueName:  g.Venue.Name,
				AwayTeam:   g.Teams.Away.Team.Name,
				AwayTeamID: g.Teams.Away.Team.ID,
				HomeTeam:   g.Teams.Home.Team.Name,
				HomeTeamID: g.Teams.Home.Team.ID,
			})
		}
	}

	return games, nil
}

// Stats API response types, trimmed to the fields the engine reads.

type scheduleResponse struct {
	TotalGames int            `json:"totalGames"`
	Dates      []scheduleDate `json:"dates"`
}

type scheduleDate struct {
	Games []scheduleGame `json:"games"`
}

type scheduleGame struct {
	GamePk   int           `json:"gamePk"`
	GameDate string        `json:"gameDate"`
	Venue    scheduleVenue `json:"venue"`
	Teams    scheduleTeams `json:"teams"`
}

type scheduleVenue struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type scheduleTeams struct {
	Away scheduleSide `json:"away"`
	Home scheduleSide `json:"home"`
}

type scheduleSide struct {
	Team scheduleTeam `json:"team"`
}

type scheduleTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
