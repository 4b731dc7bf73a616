package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Layout constants - single source of truth for all viewport dimensions
const (
	MinViewportWidth = 80
	MaxViewportWidth = 140
	DefaultWidth     = 100 // Used when terminal size is unknown
	DefaultHeight    = 32
	MinTableHeight   = 4
	BorderPadding    = 2  // left/right border chars
	chromeHeight     = 12 // header, divider, status, help box and margins
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // terminal height
	InnerWidth     int // ViewportWidth - border chars (THE ONE RULE)
	TableWidth     int // sum of column widths, leaves room for cell padding
	TableHeight    int // visible data rows
}

// NewLayout creates a Layout from the terminal size, clamping the width to min/max
func NewLayout(terminalWidth, terminalHeight int) Layout {
	width := clamp(terminalWidth, MinViewportWidth, MaxViewportWidth)
	if terminalHeight <= 0 {
		terminalHeight = DefaultHeight
	}
	tableHeight := terminalHeight - chromeHeight
	if tableHeight < MinTableHeight {
		tableHeight = MinTableHeight
	}
	return Layout{
		ViewportWidth:  width,
		ViewportHeight: terminalHeight,
		InnerWidth:     width - BorderPadding,
		TableWidth:     width - BorderPadding - 12,
		TableHeight:    tableHeight,
	}
}

// DefaultLayout returns a layout using the default size
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("196") // red
	ColorHighlight = lipgloss.Color("88")  // dark red background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("226") // bright yellow
	ColorAccentDim = lipgloss.Color("220") // yellow (progress)
	ColorTextDim   = lipgloss.Color("241") // gray
	ColorSuccess   = lipgloss.Color("82")  // green
	ColorBlack     = lipgloss.Color("0")   // black
)

// Common styles - reusable style definitions
var (
	// Border style for main viewport
	// STYLE GUIDE: Always use .Width(InnerWidth) with NO .Padding()
	// so the rendered box including borders is exactly ViewportWidth
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Help box border - white, one row
	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorText)

	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)

	// Selected row/item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Normal text style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Dim text style
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)

	// Hint/help text style
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Italic(true)

	// Accent style for highlighted text (yellow)
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Error text
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorBorder).
			Bold(true)

	// Status line under the main content
	StatusMsgStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Italic(true)

	// Tab styles
	TabActiveStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true).
			Padding(0, 2)

	TabInactiveStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Padding(0, 2)

	// Launch status pills
	PillOnScheduleStyle = lipgloss.NewStyle().
				Foreground(ColorBlack).
				Background(ColorSuccess).
				Padding(0, 1)

	PillInvestigatingStyle = lipgloss.NewStyle().
				Foreground(ColorText).
				Background(ColorBorder).
				Padding(0, 1)

	// Stats footer style
	StatsStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText)
)

// BorderedBox returns a style for bordered content boxes with the layout width
func BorderedBox(layout Layout) lipgloss.Style {
	return BorderStyle.Width(layout.InnerWidth)
}

// =============================================================================
// Render helpers
// =============================================================================

// RenderTitle renders bold white title text
func RenderTitle(s string) string {
	return TitleStyle.Render(s)
}

// RenderDim renders gray secondary text
func RenderDim(s string) string {
	return DimStyle.Render(s)
}

// RenderNormal renders plain white text
func RenderNormal(s string) string {
	return NormalStyle.Render(s)
}

// RenderAccent renders yellow highlighted text
func RenderAccent(s string) string {
	return AccentStyle.Render(s)
}

// RenderError renders red error text
func RenderError(s string) string {
	return ErrorStyle.Render(s)
}

func RenderTabActive(s string) string {
	return TabActiveStyle.Render(s)
}

func RenderTabInactive(s string) string {
	return TabInactiveStyle.Render(s)
}

// RenderSelectedWidth renders s highlighted and padded to width
func RenderSelectedWidth(s string, width int) string {
	clean := stripEscapeCodes(s)
	if w := StringWidth(clean); w < width {
		clean += strings.Repeat(" ", width-w)
	} else if w > width {
		clean = truncateToWidth(clean, width)
	}
	return SelectedStyle.Render(clean)
}

// StringWidth returns the printable cell width of s, ignoring ANSI sequences
func StringWidth(s string) int {
	return ansi.StringWidth(s)
}

// stripEscapeCodes removes ANSI escape sequences
func stripEscapeCodes(s string) string {
	return ansi.Strip(s)
}

// truncateToWidth cuts s to at most width cells, ending with an ellipsis
func truncateToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "…")
}

// PadContentToHeight pads content with newlines to fill target height
func PadContentToHeight(content string, targetHeight int) string {
	lines := strings.Count(content, "\n") + 1
	if lines >= targetHeight {
		return content
	}
	return content + strings.Repeat("\n", targetHeight-lines)
}

// BuildTwoBoxView constructs the standard two-box layout.
//
//	┌────────────────────────┐
//	│ Main content           │  <- Red border
//	│                        │
//	└────────────────────────┘
//	┌────────────────────────┐
//	│   Centered help text   │  <- White border, 1 row
//	└────────────────────────┘
func BuildTwoBoxView(content, helpText string, layout Layout) string {
	mainHeight := layout.ViewportHeight - 6 // help box (3) + main box borders (2) + top margin
	if mainHeight < MinTableHeight {
		mainHeight = MinTableHeight
	}
	content = PadContentToHeight(strings.TrimRight(content, "\n"), mainHeight)

	main := BorderedBox(layout).Render(content)
	help := HelpBoxStyle.
		Width(layout.InnerWidth).
		Render(CenterText(HintStyle.Render(helpText), layout.InnerWidth))

	return lipgloss.JoinVertical(lipgloss.Left, main, help)
}

// =============================================================================
// Component theming
// =============================================================================

// ApplyTableStyles sets the header border and a neutral selection style.
// The visible selection highlight is applied by RenderTableWithSelection.
func ApplyTableStyles(t *table.Model) {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(false).
		Bold(true).
		Foreground(ColorText)
	s.Cell = s.Cell.Foreground(ColorText)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)
}

// NewAppTheme creates a huh theme matching the app's style guide
// White text, red highlights/selection
func NewAppTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)
	t.Blurred.Title = t.Focused.Title

	t.Focused.Description = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Description = t.Focused.Description

	t.Focused.Base = lipgloss.NewStyle().
		Foreground(ColorText)
	t.Blurred.Base = t.Focused.Base

	// Focus bar (the | indicator) - red
	t.Focused.FocusedButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Background(ColorBorder).
		Bold(true).
		Padding(0, 1)

	t.Focused.BlurredButton = lipgloss.NewStyle().
		Foreground(ColorText).
		Padding(0, 1)

	t.Focused.ErrorMessage = ErrorStyle
	t.Focused.ErrorIndicator = ErrorStyle

	// Text input styling
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().
		Foreground(ColorBorder)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().
		Foreground(ColorTextDim)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().
		Foreground(ColorBorder)

	return t
}
