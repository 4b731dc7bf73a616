package ui

// view_helpers.go provides common View() rendering helpers.
// Use these to build consistent two-box layouts across all pages.

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
)

// =============================================================================
// Table Rendering with Full-Width Selection
// =============================================================================

// RenderTableWithSelection renders a bubbles table with a full-width
// selection highlight. ApplyTableStyles leaves the table's own Selected style
// neutral so this is the only place the highlight is drawn.
//
// bubbles/table View() output is the header on line 0 followed by the visible
// data rows. A divider is inserted under the header here.
func RenderTableWithSelection(t table.Model, layout Layout) string {
	tableOutput := t.View()
	lines := strings.Split(tableOutput, "\n")
	var result []string

	cursor := t.Cursor()

	// Calculate visible cursor index based on table scrolling
	// Table height is the number of visible data rows (doesn't include header)
	height := t.Height()
	totalRows := len(t.Rows())

	// Calculate scroll offset to match bubbles table internal viewport logic
	// When totalRows <= height, no scrolling occurs (start = 0)
	// When totalRows > height and cursor moves past visible area, viewport scrolls
	start := 0
	if totalRows > height {
		// Scrolling is possible
		if cursor >= height {
			start = cursor - height + 1
		}
		// Clamp start to valid range: cannot scroll past the point where
		// the last row is at the bottom of the viewport
		maxStart := totalRows - height
		if start > maxStart {
			start = maxStart
		}
	}
	visibleCursorIndex := cursor - start

	for i, line := range lines {
		if i == 0 {
			result = append(result, NormalStyle.Render(line), FullWidthDivider(layout.InnerWidth))
			continue
		}
		// Escape codes are stripped inside RenderSelectedWidth so embedded
		// resets cannot cut the highlight short
		if i-1 == visibleCursorIndex && t.Focused() {
			result = append(result, RenderSelectedWidth(line, layout.InnerWidth))
			continue
		}
		result = append(result, NormalStyle.Render(line))
	}

	return strings.Join(result, "\n")
}

// =============================================================================
// View Header - Title + Divider Pattern
// =============================================================================

// ViewHeader renders title + full-width divider + spacing.
// Use at the start of all View() content to ensure consistent headers.
//
// Example:
//
//	content := ViewHeader("Pick a mission", layout.InnerWidth)
//	content += RenderTableWithSelection(m.Table, m.Layout)
//	return BuildTwoBoxView(content, "up/down: navigate", layout)
func ViewHeader(title string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// ViewHeaderWithSubtitle renders title + subtitle + divider + spacing.
func ViewHeaderWithSubtitle(title, subtitle string, innerWidth int) string {
	var b strings.Builder
	b.WriteString(RenderTitle(title))
	b.WriteString("\n")
	if subtitle != "" {
		b.WriteString(RenderDim(subtitle))
		b.WriteString("\n")
	}
	b.WriteString(strings.Repeat("─", innerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// =============================================================================
// Text Centering
// =============================================================================

// CenterText centers text within given width.
// Uses StringWidth() for accurate ANSI-aware width calculation.
func CenterText(text string, width int) string {
	textW := StringWidth(text)
	if textW >= width {
		return text
	}
	padding := (width - textW) / 2
	return strings.Repeat(" ", padding) + text
}

// =============================================================================
// Dividers and Separators
// =============================================================================

// FullWidthDivider returns a horizontal divider spanning the inner width.
func FullWidthDivider(innerWidth int) string {
	return strings.Repeat("─", innerWidth)
}
