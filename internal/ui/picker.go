package ui

// picker.go provides the mission picker used by `launchdeck focus` when no
// mission id is given.

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/thesavant42/launchdeck/internal/models"
)

// MissionPickerModel is a table selector over the launch manifest
type MissionPickerModel struct {
	BaseTableModel
	launches []models.Launch
	title    string
	loc      *time.Location
}

// NewMissionPickerModel creates a picker with the cursor on the focused launch
func NewMissionPickerModel(launches []models.Launch, focusedID string) MissionPickerModel {
	m := MissionPickerModel{
		BaseTableModel: NewBaseTableModel(),
		launches:       launches,
		title:          "Pick a mission to focus",
		loc:            time.Local,
	}
	m.Table = InitTable(CalculateColumns(PickerColumns(), m.Layout.TableWidth), m.rows(), m.Layout)
	for i, l := range launches {
		if l.ID == focusedID {
			m.Table.SetCursor(i)
			break
		}
	}
	return m
}

func (m MissionPickerModel) rows() []table.Row {
	rows := make([]table.Row, len(m.launches))
	for i, l := range m.launches {
		rows[i] = table.Row{l.Name, FormatWindow(l, m.loc)}
	}
	return rows
}

func (m MissionPickerModel) Init() tea.Cmd {
	return StandardInit()
}

func (m MissionPickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.HandleWindowResize(msg.Width, msg.Height)
		m.Table.SetColumns(CalculateColumns(PickerColumns(), m.Layout.TableWidth))
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.Selected = -1
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if len(m.launches) > 0 {
				m.Selected = m.Table.Cursor()
			}
			m.Quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m MissionPickerModel) View() string {
	if m.Quitting {
		return ""
	}
	subtitle := fmt.Sprintf("%d launches in the manifest", len(m.launches))
	content := ViewHeaderWithSubtitle(m.title, subtitle, m.Layout.InnerWidth)
	content += RenderTableWithSelection(m.Table, m.Layout)
	return BuildTwoBoxView(content, "↑/↓: navigate | Enter: focus | Esc: cancel", m.Layout)
}

// SelectedLaunch returns the picked launch; ok is false if the user cancelled
func (m MissionPickerModel) SelectedLaunch() (models.Launch, bool) {
	if !m.HasSelection() || m.Selected >= len(m.launches) {
		return models.Launch{}, false
	}
	return m.launches[m.Selected], true
}

// RunMissionPicker runs the picker TUI and returns the chosen launch.
// ok is false if the user cancelled.
func RunMissionPicker(launches []models.Launch, focusedID string) (models.Launch, bool, error) {
	if len(launches) == 0 {
		return models.Launch{}, false, fmt.Errorf("no launches to pick from")
	}
	p := tea.NewProgram(NewMissionPickerModel(launches, focusedID), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return models.Launch{}, false, fmt.Errorf("picker error: %w", err)
	}
	l, ok := finalModel.(MissionPickerModel).SelectedLaunch()
	return l, ok, nil
}
