// Package odds fetches MLB moneyline and totals markets from the-odds-api
// and packages them as a timestamped snapshot for downstream consumers.
package odds

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/jonboulle/clockwork"
)

const (
	defaultBaseURL = "https://api.the-odds-api.com"
	sportKey       = "baseball_mlb"
	regions        = "us"
	markets        = "h2h,totals"
	oddsFormat     = "american"
)

// Snapshot is a fetched odds payload plus the metadata consumers use to judge
// its freshness. Events are kept as raw JSON so upstream market additions
// pass through without a schema change here.
type Snapshot struct {
	LastUpdated time.Time         `json:"last_updated"`
	Sport       string            `json:"sport"`
	GameCount   int               `json:"game_count"`
	Odds        []json.RawMessage `json:"odds"`
}

// Client fetches odds snapshots from the-odds-api.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	clock      clockwork.Clock
	logger     *slog.Logger
}

// NewClient creates an odds client. The API key is mandatory; the provider
// rejects unkeyed requests.
func NewClient(apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    defaultBaseURL,
		apiKey:     apiKey,
		clock:      clockwork.NewRealClock(),
		logger:     logger,
	}
}

// FetchSnapshot pulls the current MLB odds and stamps them with the fetch
// time.
func (c *Client) FetchSnapshot(ctx context.Context) (Snapshot, error) {
	params := url.Values{
		"apiKey":     {c.apiKey},
		"regions":    {regions},
		"markets":    {markets},
		"oddsFormat": {oddsFormat},
	}
	fullURL := fmt.Sprintf("%s/v4/sports/%s/odds/?%s", c.baseURL, sportKey, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return Snapshot{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Snapshot{}, fmt.Errorf("odds request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return Snapshot{}, fmt.Errorf("odds API error: status %d: %s", resp.StatusCode, body)
	}

	var events []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return Snapshot{}, fmt.Errorf("decode odds: %w", err)
	}

	c.logger.Info("fetched odds snapshot", "games", len(events))

	return Snapshot{
		LastUpdated: c.clock.Now(),
		Sport:       sportKey,
		GameCount:   len(events),
		Odds:        events,
	}, nil
}
