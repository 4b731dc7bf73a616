package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/thesavant42/launchdeck/internal/api"
	"github.com/thesavant42/launchdeck/internal/models"
)

// WindowLayout is the medium date + short time format used for launch windows
const WindowLayout = "Jan 2, 2006 3:04 PM"

// Status pill labels
const (
	LabelOnSchedule    = "On schedule"
	LabelInvestigating = "Investigating"
)

// StatusLabel is "Investigating" for launches flagged unsuccessful,
// "On schedule" otherwise (including success == nil)
func StatusLabel(l models.Launch) string {
	if l.Delayed() {
		return LabelInvestigating
	}
	return LabelOnSchedule
}

// RenderStatusPill renders the colored status pill for a launch
func RenderStatusPill(l models.Launch) string {
	if l.Delayed() {
		return PillInvestigatingStyle.Render(LabelInvestigating)
	}
	return PillOnScheduleStyle.Render(LabelOnSchedule)
}

// BriefingLabel is "Briefing -> <host>" when the launch has an article link,
// "TBD" otherwise
func BriefingLabel(l models.Launch) string {
	host := api.ArticleHost(l.ArticleURL())
	if host == "" {
		return "TBD"
	}
	return "Briefing -> " + host
}

// PinLabel is the action label for the pin toggle
func PinLabel(pinned bool) string {
	if pinned {
		return "Unpin from board"
	}
	return "Pin to board"
}

// FormatWindow formats the launch date in loc, or "TBC" when it cannot be parsed
func FormatWindow(l models.Launch, loc *time.Location) string {
	t := l.Date()
	if t.IsZero() {
		return "TBC"
	}
	return t.In(loc).Format(WindowLayout)
}

// RelativeWindow is the humanized distance from now to the launch,
// e.g. "3 days from now"
func RelativeWindow(l models.Launch, now time.Time) string {
	t := l.Date()
	if t.IsZero() {
		return ""
	}
	return humanize.RelTime(t, now, "ago", "from now")
}

// CardOptions carries the store state a card shows alongside the launch
type CardOptions struct {
	Pinned   bool
	Focused  bool
	Selected bool // cursor is on this card
	Location *time.Location
	Now      time.Time
}

// RenderLaunchCard renders one launch as a multi-line card that fits width
func RenderLaunchCard(l models.Launch, opts CardOptions, width int) string {
	loc := opts.Location
	if loc == nil {
		loc = time.Local
	}

	marker := "[ ]"
	if opts.Pinned {
		marker = "[*]"
	}
	heading := fmt.Sprintf("%s %s", marker, l.Name)
	if opts.Focused {
		heading += "  " + RenderAccent("FOCUS")
	}

	var b strings.Builder
	if opts.Selected {
		b.WriteString(RenderSelectedWidth(heading, width))
	} else {
		b.WriteString(TitleStyle.Render(heading))
	}
	b.WriteString("\n")

	b.WriteString("    ")
	b.WriteString(RenderStatusPill(l))
	b.WriteString("  ")
	window := FormatWindow(l, loc)
	if !opts.Now.IsZero() {
		if rel := RelativeWindow(l, opts.Now); rel != "" {
			window += " (" + rel + ")"
		}
	}
	b.WriteString(RenderNormal("Window: " + window))
	b.WriteString("  ")
	b.WriteString(RenderDim("Article: " + BriefingLabel(l)))
	b.WriteString("\n")

	b.WriteString("    ")
	b.WriteString(RenderDim(truncateToWidth(l.Details, width-4)))
	b.WriteString("\n")

	return b.String()
}
