package ui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Export formats
const (
	FormatMarkdown = "markdown"
	FormatYAML     = "yaml"
)

// preferencesDoc is the YAML export shape. Pinned missions carry their
// effective readiness so the dump reads on its own.
type preferencesDoc struct {
	Generated          string         `yaml:"generated"`
	SelectedMissionID  string         `yaml:"selected_mission_id,omitempty"`
	PinnedMissionIDs   []string       `yaml:"pinned_mission_ids"`
	ReadinessByMission map[string]int `yaml:"readiness_by_mission"`
	Tracked            []trackedDoc   `yaml:"tracked,omitempty"`
}

type trackedDoc struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Window    string `yaml:"window"`
	Readiness int    `yaml:"readiness"`
}

// MarshalPreferencesYAML dumps the preferences and tracked missions as YAML
func MarshalPreferencesYAML(r Report) ([]byte, error) {
	prefs := r.Preferences.Clone()
	doc := preferencesDoc{
		Generated:          r.Generated.UTC().Format(time.RFC3339),
		SelectedMissionID:  prefs.Selected(),
		PinnedMissionIDs:   prefs.PinnedMissionIDs,
		ReadinessByMission: prefs.ReadinessByMission,
	}
	for _, l := range r.Tracked() {
		doc.Tracked = append(doc.Tracked, trackedDoc{
			ID:        l.ID,
			Name:      l.Name,
			Window:    l.DateUTC,
			Readiness: r.Store.EnsureReadiness(l.ID),
		})
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal preferences: %w", err)
	}
	return out, nil
}

// RenderExport renders the report in the given format
func RenderExport(r Report, format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case FormatMarkdown, "md":
		return []byte(GenerateMarkdownReport(r)), nil
	case FormatYAML, "yml":
		return MarshalPreferencesYAML(r)
	default:
		return nil, fmt.Errorf("unknown export format %q (want markdown or yaml)", format)
	}
}

// IsYAMLFormat reports whether format selects the preferences dump, which
// needs no manifest
func IsYAMLFormat(format string) bool {
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return true
	}
	return false
}

// DefaultExportName returns a dated filename for the format
func DefaultExportName(format string, now time.Time) string {
	timestamp := now.Format("2006-01-02")
	switch strings.ToLower(format) {
	case FormatYAML, "yml":
		return fmt.Sprintf("launchdeck-%s.yaml", timestamp)
	default:
		return fmt.Sprintf("launchdeck-%s.md", timestamp)
	}
}

// ExportReport renders the report and writes it to filename, or to a dated
// default name when filename is empty. Returns the path written.
func ExportReport(r Report, format, filename string) (string, error) {
	data, err := RenderExport(r, format)
	if err != nil {
		return "", err
	}
	if filename == "" {
		filename = DefaultExportName(format, r.Generated)
	}
	if err := os.WriteFile(filename, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return filename, nil
}
