package ui

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/thesavant42/launchdeck/internal/missions"
	"gopkg.in/yaml.v3"
)

func newTestReport(t *testing.T) Report {
	t.Helper()
	store, err := missions.Open(context.Background(), missions.NewMemoryBackend(), nil)
	if err != nil {
		t.Fatal(err)
	}
	store.TogglePin("b2")
	store.TogglePin("a1")
	store.SetReadiness("b2", 88)
	store.SelectMission("b2")

	r := NewReport(testLaunches(), store, time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC))
	r.Location = time.UTC
	return r
}

func TestGenerateMarkdownReport(t *testing.T) {
	r := newTestReport(t)
	md := GenerateMarkdownReport(r)

	for _, want := range []string{
		"# Mission Control Report",
		"**Generated:** 2026-11-01 12:00:00",
		"**Mission of focus:** Crew-12",
		"**Pinned missions:** 2",
		"| yes | Crew-12 | Dec 1, 2026 3:00 PM | Investigating | TBD |",
		"|  | Transporter-16 |",
		"## Tracked missions",
		"| Crew-12 | 88% | Crew rotation |",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
	// tracked missions follow manifest order
	tracked := md[strings.Index(md, "## Tracked missions"):]
	if strings.Index(tracked, "| Starlink 10-4 | ") > strings.Index(tracked, "| Crew-12 | 88%") {
		t.Errorf("tracked missions out of manifest order:\n%s", md)
	}
}

func TestGenerateMarkdownReportEmpty(t *testing.T) {
	store, err := missions.Open(context.Background(), missions.NewMemoryBackend(), nil)
	if err != nil {
		t.Fatal(err)
	}
	md := GenerateMarkdownReport(NewReport(nil, store, time.Now()))
	for _, want := range []string{"Awaiting manifest", "No launches returned from API.", "Pin missions from the manifest", "**Avg readiness:** --%"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarshalPreferencesYAML(t *testing.T) {
	r := newTestReport(t)
	data, err := MarshalPreferencesYAML(r)
	if err != nil {
		t.Fatalf("MarshalPreferencesYAML() error = %v", err)
	}

	var doc preferencesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		t.Fatalf("yaml.Unmarshal() error = %v\n%s", err, data)
	}
	if doc.SelectedMissionID != "b2" {
		t.Errorf("SelectedMissionID = %q, want b2", doc.SelectedMissionID)
	}
	if diff := cmp.Diff([]string{"b2", "a1"}, doc.PinnedMissionIDs); diff != "" {
		t.Errorf("PinnedMissionIDs mismatch (-want +got):\n%s", diff)
	}
	var tracked []string
	for _, td := range doc.Tracked {
		tracked = append(tracked, td.ID)
	}
	if diff := cmp.Diff([]string{"a1", "b2"}, tracked); diff != "" {
		t.Errorf("Tracked mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderExportRejectsUnknownFormat(t *testing.T) {
	if _, err := RenderExport(newTestReport(t), "pdf"); err == nil {
		t.Error("RenderExport(pdf) error = nil, want error")
	}
}

func TestDefaultExportName(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		format string
		want   string
	}{
		{FormatMarkdown, "launchdeck-2026-10-19.md"},
		{"md", "launchdeck-2026-10-19.md"},
		{FormatYAML, "launchdeck-2026-10-19.yaml"},
		{"YML", "launchdeck-2026-10-19.yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			if got := DefaultExportName(tt.format, now); got != tt.want {
				t.Errorf("DefaultExportName(%q) = %q, want %q", tt.format, got, tt.want)
			}
		})
	}
}

func TestExportReportWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.md")
	got, err := ExportReport(newTestReport(t), FormatMarkdown, path)
	if err != nil {
		t.Fatalf("ExportReport() error = %v", err)
	}
	if got != path {
		t.Errorf("ExportReport() path = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "# Mission Control Report") {
		t.Errorf("unexpected file content:\n%s", data)
	}
}
