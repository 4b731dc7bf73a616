package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/thesavant42/launchdeck/internal/models"
	"golang.org/x/net/publicsuffix"
)

const (
	// UpcomingLaunchesURL is the public SpaceX upcoming launches endpoint
	UpcomingLaunchesURL = "https://api.spacexdata.com/v5/launches/upcoming"
	userAgent           = "launchdeck/1.0"
	defaultTimeout      = 30 * time.Second

	// MaxLaunches is how many launches survive the mapper
	MaxLaunches = 6

	// PendingDetails replaces missing mission details
	PendingDetails = "Mission brief pending final review."
)

// ErrTelemetryUnavailable is returned when the endpoint answers with a non-2xx status
var ErrTelemetryUnavailable = errors.New("Unable to reach SpaceX telemetry")

// LaunchClient fetches upcoming launches
type LaunchClient struct {
	httpClient *http.Client
	url        string
	logger     *log.Logger
}

// NewLaunchClient creates a client for the given endpoint. An empty endpoint
// falls back to UpcomingLaunchesURL and a zero timeout to 30 seconds.
func NewLaunchClient(endpoint string, timeout time.Duration, logger *log.Logger) *LaunchClient {
	if endpoint == "" {
		endpoint = UpcomingLaunchesURL
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &LaunchClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		url:    endpoint,
		logger: logger,
	}
}

// FetchUpcoming performs a single GET and returns the mapped launches
func (c *LaunchClient) FetchUpcoming(ctx context.Context) ([]models.Launch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Failed to create request", "url", c.url, "error", err)
		}
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	if c.logger != nil {
		c.logger.Info("GET", "endpoint", c.url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if c.logger != nil {
			c.logger.Error("Request failed", "url", c.url, "error", err)
		}
		return nil, fmt.Errorf("failed to fetch launches: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		if c.logger != nil {
			c.logger.Error("API error", "status", resp.StatusCode, "response", string(body))
		}
		return nil, ErrTelemetryUnavailable
	}

	var records []models.LaunchRecord
	if err := json.NewDecoder(resp.Body).Decode(&records); err != nil {
		if c.logger != nil {
			c.logger.Error("Decode failed", "error", err)
		}
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	launches := MapLaunches(records)
	if c.logger != nil {
		c.logger.Debug("Mapped launches", "received", len(records), "kept", len(launches))
	}
	return launches, nil
}

// MapLaunches normalizes raw records, sorts them by date ascending and keeps
// the first MaxLaunches. Records with unparseable dates sort first.
func MapLaunches(records []models.LaunchRecord) []models.Launch {
	launches := make([]models.Launch, 0, len(records))
	for _, r := range records {
		launches = append(launches, mapLaunch(r))
	}

	sort.SliceStable(launches, func(i, j int) bool {
		return launches[i].Date().Before(launches[j].Date())
	})

	if len(launches) > MaxLaunches {
		launches = launches[:MaxLaunches]
	}
	return launches
}

func mapLaunch(r models.LaunchRecord) models.Launch {
	l := models.Launch{
		ID:      r.ID,
		Name:    r.Name,
		DateUTC: r.DateUTC,
		Details: PendingDetails,
		Success: r.Success,
	}
	if r.Details != nil {
		l.Details = *r.Details
	}
	if r.Links != nil {
		if r.Links.Patch != nil {
			l.Links.Patch.Small = r.Links.Patch.Small
		}
		l.Links.Article = r.Links.Article
		l.Links.Webcast = r.Links.Webcast
	}
	return l
}

// ParseLaunchesFromJSON parses and maps a raw launches payload (for loading from files)
func ParseLaunchesFromJSON(data []byte) ([]models.Launch, error) {
	var records []models.LaunchRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}
	return MapLaunches(records), nil
}

// ArticleHost reduces an article URL to its registrable domain
// Examples:
//   - "https://www.spaceflightnow.com/launch/x" -> "spaceflightnow.com"
//   - "https://news.bbc.co.uk/a" -> "bbc.co.uk"
func ArticleHost(link string) string {
	link = strings.TrimSpace(link)
	if link == "" {
		return ""
	}
	parsed, err := url.Parse(link)
	if err != nil || parsed.Hostname() == "" {
		return ""
	}
	host := strings.TrimSuffix(parsed.Hostname(), ".")
	root, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return root
}
