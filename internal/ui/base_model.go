package ui

// base_model.go provides common TUI functionality for Bubble Tea models.

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// BaseTableModel - Embed in table-based models
// =============================================================================

// BaseTableModel provides common table state: the table, current layout,
// quit flag and the selected row (-1 = no selection).
type BaseTableModel struct {
	Table    table.Model
	Layout   Layout
	Quitting bool
	Selected int
}

// NewBaseTableModel creates a BaseTableModel with default layout.
func NewBaseTableModel() BaseTableModel {
	return BaseTableModel{
		Layout:   DefaultLayout(),
		Selected: -1,
	}
}

// InitTable creates and configures a table with proper styling and dimensions.
// Use this instead of manually calling table.New() to ensure consistent setup.
//
// Example:
//
//	columns := CalculateColumns(ManifestColumns(), layout.TableWidth)
//	m.Table = InitTable(columns, rows, layout)
func InitTable(columns []table.Column, rows []table.Row, layout Layout) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(layout.TableHeight),
	)

	ApplyTableStyles(&t)

	// Ensure cursor starts at the top for proper viewport positioning
	t.GotoTop()

	return t
}

// HandleWindowResize updates layout dimensions and the table height.
func (m *BaseTableModel) HandleWindowResize(width, height int) {
	m.Layout = NewLayout(width, height)
	m.Table.SetHeight(m.Layout.TableHeight)
}

// HasSelection returns true if a selection was made (Selected >= 0).
func (m BaseTableModel) HasSelection() bool {
	return m.Selected >= 0
}

// =============================================================================
// Standard Init/Update Helpers
// =============================================================================

// StandardInit returns the standard Init command for table models.
func StandardInit() tea.Cmd {
	return tea.WindowSize()
}

// HandleQuitKeys returns true and Quit cmd for q/ctrl+c.
//
// Example:
//
//	case tea.KeyMsg:
//	    if quit, cmd := HandleQuitKeys(msg.String()); quit {
//	        m.Quitting = true
//	        return m, cmd
//	    }
func HandleQuitKeys(key string) (bool, tea.Cmd) {
	switch key {
	case "q", "ctrl+c":
		return true, tea.Quit
	}
	return false, nil
}

// HandleNavigationKeys handles standard up/down/j/k navigation.
// Returns new cursor position (clamped to valid range).
func HandleNavigationKeys(key string, cursor, maxItems int) int {
	switch key {
	case "up", "k":
		if cursor > 0 {
			return cursor - 1
		}
	case "down", "j":
		if cursor < maxItems-1 {
			return cursor + 1
		}
	}
	if cursor >= maxItems {
		cursor = maxItems - 1
	}
	if cursor < 0 {
		return 0
	}
	return cursor
}
