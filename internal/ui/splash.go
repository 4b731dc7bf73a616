package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const splashDuration = 1500 * time.Millisecond

var splashLines = []string{
	"L A U N C H D E C K",
	"",
	"mission control for upcoming launches",
}

// SplashModel is the TUI model for the splash screen
type SplashModel struct {
	width  int
	height int
	done   bool
}

type splashTimeoutMsg struct{}

func waitForTimeout() tea.Cmd {
	return tea.Tick(splashDuration, func(t time.Time) tea.Msg {
		return splashTimeoutMsg{}
	})
}

func (m SplashModel) Init() tea.Cmd {
	return waitForTimeout()
}

func (m SplashModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg, splashTimeoutMsg:
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m SplashModel) View() string {
	if m.done {
		return ""
	}

	layout := NewLayout(m.width, m.height)
	boxHeight := layout.ViewportHeight - 4
	if boxHeight < 10 {
		boxHeight = 10
	}

	var b strings.Builder
	for i, line := range splashLines {
		switch i {
		case 0:
			line = AccentStyle.Render(line)
		default:
			line = DimStyle.Render(line)
		}
		b.WriteString(CenterText(line, layout.InnerWidth))
		b.WriteString("\n")
	}

	return BorderStyle.
		Width(layout.InnerWidth).
		Height(boxHeight).
		AlignVertical(lipgloss.Center).
		Render(strings.TrimRight(b.String(), "\n"))
}

// ShowSplash displays the splash screen until a key is pressed or the
// timeout passes
func ShowSplash() error {
	model := SplashModel{
		width:  DefaultWidth,
		height: DefaultHeight,
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
