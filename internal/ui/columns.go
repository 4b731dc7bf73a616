package ui

// columns.go provides generic column width calculation for bubbles/table.
// Use ColumnSpec and CalculateColumns() instead of duplicating percentage-based math.

import (
	"github.com/charmbracelet/bubbles/table"
)

// =============================================================================
// Column Specification Types
// =============================================================================

// ColumnSpec defines a table column with flexible or fixed width.
// Use FlexRatio for columns that should expand/contract with terminal width.
// Use FixedWidth for columns that should maintain constant width.
type ColumnSpec struct {
	Title      string
	MinWidth   int // Minimum width (0 = no minimum)
	FixedWidth int // If > 0, use this exact width (ignores FlexRatio)
	FlexRatio  int // Relative ratio for flexible columns (0 = fixed-only)
}

// =============================================================================
// Column Calculation
// =============================================================================

// CalculateColumns computes column widths from specs.
// Flexible columns split remaining space by ratio after fixed columns are allocated.
//
// Example:
//
//	columns := CalculateColumns([]ColumnSpec{
//	    {Title: "Mission", FlexRatio: 60, MinWidth: 16},
//	    {Title: "Article", FlexRatio: 40, MinWidth: 12},
//	    {Title: "Window", FixedWidth: 22},
//	}, layout.TableWidth)
//
// This allocates 22 chars to "Window", then splits remaining space
// 60:40 between "Mission" and "Article", respecting minimums.
func CalculateColumns(specs []ColumnSpec, totalWidth int) []table.Column {
	if totalWidth < 50 {
		totalWidth = 50
	}

	// First pass: allocate fixed widths and sum flex ratios
	fixedTotal := 0
	flexTotal := 0
	for _, s := range specs {
		if s.FixedWidth > 0 {
			fixedTotal += s.FixedWidth
		} else {
			flexTotal += s.FlexRatio
		}
	}

	remaining := totalWidth - fixedTotal
	if remaining < 0 {
		remaining = 0
	}

	// Second pass: calculate final widths
	columns := make([]table.Column, len(specs))
	for i, s := range specs {
		var width int
		if s.FixedWidth > 0 {
			width = s.FixedWidth
		} else if flexTotal > 0 {
			width = remaining * s.FlexRatio / flexTotal
		}

		// Apply minimum width constraint
		if s.MinWidth > 0 && width < s.MinWidth {
			width = s.MinWidth
		}

		columns[i] = table.Column{Title: s.Title, Width: width}
	}

	return columns
}

// =============================================================================
// Pre-defined Column Layouts
// =============================================================================

// Fixed column widths shared by the manifest and picker tables
const (
	ColWidthPin    = 5
	ColWidthWindow = 22
	ColWidthStatus = 15
)

// ManifestColumns returns column specs for the Missions page manifest table.
func ManifestColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Pin", FixedWidth: ColWidthPin},
		{Title: "Mission", FlexRatio: 55, MinWidth: 16},
		{Title: "Window", FixedWidth: ColWidthWindow},
		{Title: "Status", FixedWidth: ColWidthStatus},
		{Title: "Article", FlexRatio: 45, MinWidth: 12},
	}
}

// PickerColumns returns column specs for the mission picker.
func PickerColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Mission", FlexRatio: 100, MinWidth: 20},
		{Title: "Window", FixedWidth: ColWidthWindow},
	}
}
