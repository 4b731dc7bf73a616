package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/thesavant42/launchdeck/internal/missions"
	"github.com/thesavant42/launchdeck/internal/models"
)

// Report is everything the CLI report printers and the markdown export need
type Report struct {
	Launches    []models.Launch
	Preferences models.Preferences
	Store       *missions.Store
	Location    *time.Location
	Generated   time.Time
}

// NewReport snapshots the store's preferences alongside the launches
func NewReport(launches []models.Launch, store *missions.Store, now time.Time) Report {
	return Report{
		Launches:    launches,
		Preferences: store.Preferences(),
		Store:       store,
		Generated:   now,
	}
}

func (r Report) location() *time.Location {
	if r.Location == nil {
		return time.Local
	}
	return r.Location
}

// Tracked returns the pinned launches in manifest order
func (r Report) Tracked() []models.Launch {
	return missions.TrackedMissions(r.Launches, r.Preferences)
}

// AverageLabel is the average readiness as "NN%", or "--%" when nothing is tracked
func (r Report) AverageLabel() string {
	avg, ok := r.Store.AverageReadiness(r.Tracked())
	if !ok {
		return "--%"
	}
	return fmt.Sprintf("%d%%", avg)
}

// PrintManifest prints the launch manifest as a fixed-width table
//
// This is a CLI report (non-interactive), so the table structure is built
// with string formatting and lipgloss only colors the text. Interactive
// tables use bubbles/table (see tui.go).
func PrintManifest(w io.Writer, r Report) {
	if len(r.Launches) == 0 {
		fmt.Fprintln(w, HintStyle.Render("No launches returned from API."))
		return
	}

	fmt.Fprintln(w, TitleStyle.Render("Mission manifest"))

	colWidths := []int{3, 24, 30, 20, 13, 32} // Pin, ID, Mission, Window, Status, Article
	header := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s  %-*s",
		colWidths[0], "Pin",
		colWidths[1], "ID",
		colWidths[2], "Mission",
		colWidths[3], "Window",
		colWidths[4], "Status",
		colWidths[5], "Article")
	fmt.Fprintln(w, StatsStyle.Render(header))
	fmt.Fprintln(w, lipgloss.NewStyle().Foreground(ColorBorder).Render(strings.Repeat("─", StringWidth(header))))

	focused, hasFocus := missions.FocusedMission(r.Launches, r.Preferences)
	for _, l := range r.Launches {
		pin := "[ ]"
		if r.Preferences.IsPinned(l.ID) {
			pin = "[*]"
		}
		row := fmt.Sprintf("%-*s  %-*s  %-*s  %-*s  %-*s  %-*s",
			colWidths[0], pin,
			colWidths[1], truncateToWidth(l.ID, colWidths[1]),
			colWidths[2], truncateToWidth(l.Name, colWidths[2]),
			colWidths[3], FormatWindow(l, r.location()),
			colWidths[4], StatusLabel(l),
			colWidths[5], truncateToWidth(BriefingLabel(l), colWidths[5]))

		if hasFocus && l.ID == focused.ID {
			fmt.Fprintln(w, AccentStyle.Render(row))
		} else {
			fmt.Fprintln(w, NormalStyle.Render(row))
		}
	}
	fmt.Fprintln(w)
}

// PrintAnalytics prints tracked missions with their readiness and the average
func PrintAnalytics(w io.Writer, r Report) {
	tracked := r.Tracked()

	fmt.Fprintln(w, TitleStyle.Render("Analytics & readiness"))
	fmt.Fprintf(w, "%s %s   %s %s\n",
		RenderDim("Tracked missions:"), StatsStyle.Render(fmt.Sprintf("%d", len(tracked))),
		RenderDim("Avg readiness:"), StatsStyle.Render(r.AverageLabel()))
	fmt.Fprintln(w)

	if len(tracked) == 0 {
		fmt.Fprintln(w, HintStyle.Render("Pin missions from the manifest to start shaping readiness targets."))
		return
	}

	bar := NewReadinessBar(30)
	for _, l := range tracked {
		score := r.Store.EnsureReadiness(l.ID)
		fmt.Fprintf(w, "%-32s %4s  %s\n",
			truncateToWidth(l.Name, 32),
			fmt.Sprintf("%d%%", score),
			bar.ViewAs(ReadinessFraction(score)))
	}
	fmt.Fprintln(w)
}

// WriteSuccess writes a success message to w
func WriteSuccess(w io.Writer, message string) {
	successStyle := lipgloss.NewStyle().
		Foreground(ColorSuccess).
		Bold(true)
	fmt.Fprintln(w, successStyle.Render(message))
}

// PrintError prints an error message to stderr
func PrintError(message string) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("Error: "+message))
}

// GenerateMarkdownReport renders the manifest and tracked missions as markdown
func GenerateMarkdownReport(r Report) string {
	var sb strings.Builder

	sb.WriteString("# Mission Control Report\n\n")
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n\n", r.Generated.In(r.location()).Format("2006-01-02 15:04:05")))

	focus := "Awaiting manifest"
	if l, ok := missions.FocusedMission(r.Launches, r.Preferences); ok {
		focus = l.Name
	}
	sb.WriteString(fmt.Sprintf("**Mission of focus:** %s\n", focus))
	sb.WriteString(fmt.Sprintf("**Pinned missions:** %d\n", len(r.Preferences.PinnedMissionIDs)))
	sb.WriteString(fmt.Sprintf("**Avg readiness:** %s\n\n", r.AverageLabel()))

	sb.WriteString("## Upcoming launches\n\n")
	if len(r.Launches) == 0 {
		sb.WriteString("No launches returned from API.\n\n")
	} else {
		sb.WriteString("| Pinned | Mission | Window | Status | Article |\n")
		sb.WriteString("|--------|---------|--------|--------|---------|\n")
		for _, l := range r.Launches {
			pinned := ""
			if r.Preferences.IsPinned(l.ID) {
				pinned = "yes"
			}
			article := BriefingLabel(l)
			if article != "TBD" {
				article = fmt.Sprintf("[%s](%s)", article, l.ArticleURL())
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s | %s | %s |\n",
				pinned, escapeCell(l.Name), FormatWindow(l, r.location()), StatusLabel(l), article))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Tracked missions\n\n")
	tracked := r.Tracked()
	if len(tracked) == 0 {
		sb.WriteString("Pin missions from the manifest to start shaping readiness targets.\n")
		return sb.String()
	}
	sb.WriteString("| Mission | Readiness | Details |\n")
	sb.WriteString("|---------|-----------|---------|\n")
	for _, l := range tracked {
		sb.WriteString(fmt.Sprintf("| %s | %d%% | %s |\n",
			escapeCell(l.Name), r.Store.EnsureReadiness(l.ID), escapeCell(l.Details)))
	}

	return sb.String()
}

// escapeCell keeps a value from breaking a markdown table row
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
