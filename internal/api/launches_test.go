package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/thesavant42/launchdeck/internal/models"
)

func strPtr(s string) *string { return &s }

// TestMapLaunchesSortsAndDefaults covers the two-record scenario: out of order
// dates and a null details field
func TestMapLaunchesSortsAndDefaults(t *testing.T) {
	payload := []byte(`[
		{"id":"b","name":"Second","date_utc":"2025-01-01T00:00:00.000Z","details":"Crew rotation","success":null,"links":{"patch":{"small":"https://img/b.png"},"article":null,"webcast":"https://yt/b"}},
		{"id":"a","name":"First","date_utc":"2024-12-01T00:00:00.000Z","details":null,"success":null}
	]`)

	got, err := ParseLaunchesFromJSON(payload)
	if err != nil {
		t.Fatalf("ParseLaunchesFromJSON() error = %v", err)
	}

	want := []models.Launch{
		{
			ID:      "a",
			Name:    "First",
			DateUTC: "2024-12-01T00:00:00.000Z",
			Details: PendingDetails,
		},
		{
			ID:      "b",
			Name:    "Second",
			DateUTC: "2025-01-01T00:00:00.000Z",
			Details: "Crew rotation",
			Links: models.LaunchLinks{
				Patch:   models.PatchLinks{Small: strPtr("https://img/b.png")},
				Webcast: strPtr("https://yt/b"),
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MapLaunches() mismatch (-want +got):\n%s", diff)
	}
}

// TestMapLaunchesDateOnlyStrings sorts bare dates and zone-less timestamps
// the same way as full RFC 3339 values
func TestMapLaunchesDateOnlyStrings(t *testing.T) {
	payload := []byte(`[
		{"id":"c","name":"Third","date_utc":"2025-02-01T12:00:00","details":null},
		{"id":"b","name":"Second","date_utc":"2025-01-01","details":null},
		{"id":"a","name":"First","date_utc":"2024-12-01","details":null}
	]`)

	got, err := ParseLaunchesFromJSON(payload)
	if err != nil {
		t.Fatalf("ParseLaunchesFromJSON() error = %v", err)
	}

	var ids []string
	for _, l := range got {
		ids = append(ids, l.ID)
		if l.Details != PendingDetails {
			t.Errorf("%s Details = %q, want placeholder", l.ID, l.Details)
		}
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, ids); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}

	want := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	if d := got[1].Date(); !d.Equal(want) {
		t.Errorf("Date() = %v, want %v", d, want)
	}
}

// TestMapLaunchesTruncates verifies the output is sorted and capped at MaxLaunches
func TestMapLaunchesTruncates(t *testing.T) {
	tests := []struct {
		name    string
		count   int
		wantLen int
	}{
		{"empty", 0, 0},
		{"under cap", 3, 3},
		{"at cap", MaxLaunches, MaxLaunches},
		{"over cap", 10, MaxLaunches},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
			records := make([]models.LaunchRecord, tt.count)
			for i := range records {
				// reverse chronological so the mapper has to reorder
				d := base.Add(time.Duration(tt.count-i) * 24 * time.Hour)
				records[i] = models.LaunchRecord{
					ID:      fmt.Sprintf("L-%d", i),
					DateUTC: d.Format(time.RFC3339),
				}
			}

			got := MapLaunches(records)
			if len(got) != tt.wantLen {
				t.Fatalf("len(MapLaunches()) = %d, want %d", len(got), tt.wantLen)
			}
			for i := 1; i < len(got); i++ {
				if got[i].Date().Before(got[i-1].Date()) {
					t.Errorf("launch %d (%s) sorted before %d (%s)", i, got[i].DateUTC, i-1, got[i-1].DateUTC)
				}
			}
		})
	}
}

func TestMapLaunchesKeepsApiOrderForEqualDates(t *testing.T) {
	records := []models.LaunchRecord{
		{ID: "x", DateUTC: "2026-03-01T00:00:00Z"},
		{ID: "y", DateUTC: "2026-03-01T00:00:00Z"},
		{ID: "z", DateUTC: "not a date"},
	}
	got := MapLaunches(records)
	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if diff := cmp.Diff([]string{"z", "x", "y"}, ids); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
}

func TestFetchUpcoming(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		if r.Method != http.MethodGet {
			t.Errorf("method = %s, want GET", r.Method)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `[{"id":"1","name":"Starlink","date_utc":"2026-11-01T10:00:00.000Z","details":null,"success":null,"links":{"article":"https://www.spaceflightnow.com/x"}}]`)
	}))
	defer srv.Close()

	client := NewLaunchClient(srv.URL, time.Second, nil)
	launches, err := client.FetchUpcoming(context.Background())
	if err != nil {
		t.Fatalf("FetchUpcoming() error = %v", err)
	}
	if len(launches) != 1 {
		t.Fatalf("len = %d, want 1", len(launches))
	}
	if launches[0].Details != PendingDetails {
		t.Errorf("Details = %q, want placeholder", launches[0].Details)
	}
	if launches[0].ArticleURL() != "https://www.spaceflightnow.com/x" {
		t.Errorf("ArticleURL() = %q", launches[0].ArticleURL())
	}
	if gotAgent != userAgent {
		t.Errorf("User-Agent = %q, want %q", gotAgent, userAgent)
	}
}

func TestFetchUpcomingErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		check   func(t *testing.T, err error)
	}{
		{
			name: "non-OK status",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "upstream down", http.StatusBadGateway)
			},
			check: func(t *testing.T, err error) {
				if !errors.Is(err, ErrTelemetryUnavailable) {
					t.Errorf("error = %v, want ErrTelemetryUnavailable", err)
				}
				if err.Error() != "Unable to reach SpaceX telemetry" {
					t.Errorf("message = %q", err.Error())
				}
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"not":"an array"`)
			},
			check: func(t *testing.T, err error) {
				if !strings.Contains(err.Error(), "failed to decode response") {
					t.Errorf("error = %v, want decode failure", err)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewLaunchClient(srv.URL, time.Second, nil).FetchUpcoming(context.Background())
			if err == nil {
				t.Fatal("FetchUpcoming() error = nil, want error")
			}
			tt.check(t, err)
		})
	}
}

func TestFetchUpcomingHonorsCancellation(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLaunchClient(srv.URL, 5*time.Second, nil).FetchUpcoming(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upcoming.json")
	data := `[{"id":"f1","name":"From disk","date_utc":"2026-05-05T00:00:00Z","details":"Static fire"}]`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	launches, err := FileSource{Path: path}.FetchUpcoming(context.Background())
	if err != nil {
		t.Fatalf("FetchUpcoming() error = %v", err)
	}
	if len(launches) != 1 || launches[0].Details != "Static fire" {
		t.Errorf("launches = %+v", launches)
	}

	_, err = FileSource{Path: filepath.Join(t.TempDir(), "missing.json")}.FetchUpcoming(context.Background())
	if err == nil {
		t.Error("expected error for missing file")
	}
}

// TestArticleHost tests registrable domain extraction
func TestArticleHost(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"https://www.spaceflightnow.com/launch/1", "spaceflightnow.com"},
		{"https://news.bbc.co.uk/story", "bbc.co.uk"},
		{"http://localhost:8080/x", "localhost"},
		{"", ""},
		{"not a url", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ArticleHost(tt.input); got != tt.want {
				t.Errorf("ArticleHost(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestFetchUpcomingIntegration calls the live API
// Run with: go test -v -run TestFetchUpcomingIntegration ./internal/api/
func TestFetchUpcomingIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	launches, err := NewLaunchClient("", 0, nil).FetchUpcoming(context.Background())
	if err != nil {
		t.Skipf("live endpoint unavailable: %v", err)
	}
	if len(launches) > MaxLaunches {
		t.Errorf("got %d launches, want at most %d", len(launches), MaxLaunches)
	}
	for i, l := range launches {
		t.Logf("  %d: %s (%s)", i, l.Name, l.DateUTC)
	}
}
