package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"
	"github.com/thesavant42/launchdeck/internal/feed"
	"github.com/thesavant42/launchdeck/internal/missions"
	"github.com/thesavant42/launchdeck/internal/models"
)

// Message types for async operations

// feedChangedMsg signals that the feed or the preference store changed
type feedChangedMsg struct{}

// refreshDoneMsg carries the result of a Mount or Refresh call
type refreshDoneMsg struct {
	err error
}

// Help text per page
const (
	dashboardHelp = "↑/↓: select | p: pin | f/Enter: focus | c: clear focus | R: hard refresh | Tab: page | ?: help | q: quit"
	missionsHelp  = "↑/↓: navigate | p: pin | f/Enter: focus | r: refresh | Tab: page | ?: help | q: quit"
	analyticsHelp = "↑/↓: select | ←/→: ±1 | shift+←/→: ±5 | Tab: page | ?: help | q: quit"
)

// AppOptions configures the dashboard model
type AppOptions struct {
	Logger   *log.Logger
	Location *time.Location   // launch windows are shown in this zone (default local)
	Now      func() time.Time // clock for relative times (default time.Now)
}

// App is the interactive mission control model: Dashboard, Missions and
// Analytics pages over one launch feed and one preference store
type App struct {
	PageState

	ctx    context.Context
	feed   *feed.Feed
	store  *missions.Store
	logger *log.Logger
	loc    *time.Location
	now    func() time.Time

	page     Page
	snapshot feed.Snapshot

	changes          chan struct{}
	unsubscribe      func()
	unsubscribeStore func()

	spinner  spinner.Model
	manifest table.Model
	bar      progress.Model

	dashCursor      int
	analyticsCursor int
}

// NewApp creates the dashboard model on the page the route resolves to
func NewApp(ctx context.Context, f *feed.Feed, store *missions.Store, route string, opts AppOptions) App {
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	// Coalescing signal: the update loop re-reads the snapshot and the
	// preferences on wake-up
	changes := make(chan struct{}, 1)
	signal := func() {
		select {
		case changes <- struct{}{}:
		default:
		}
	}
	unsubscribe := f.Subscribe(func(feed.Snapshot) { signal() })
	unsubscribeStore := store.Subscribe(func(models.Preferences) { signal() })

	layout := DefaultLayout()
	m := App{
		PageState:        NewPageState(layout),
		ctx:              ctx,
		feed:             f,
		store:            store,
		logger:           opts.Logger,
		loc:              opts.Location,
		now:              opts.Now,
		page:             ResolveRoute(route),
		snapshot:         f.Snapshot(),
		changes:          changes,
		unsubscribe:      unsubscribe,
		unsubscribeStore: unsubscribeStore,
		spinner:          NewAppSpinner(),
		manifest:         InitTable(CalculateColumns(ManifestColumns(), layout.TableWidth), nil, layout),
		bar:              NewReadinessBar(readinessBarWidth),
	}
	m.syncManifest()
	return m
}

// Page returns the active page
func (m App) Page() Page {
	return m.page
}

// Close detaches from the feed and the store and cancels any in-flight fetch
func (m App) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	if m.unsubscribeStore != nil {
		m.unsubscribeStore()
	}
	m.feed.Close()
}

// Init implements tea.Model
func (m App) Init() tea.Cmd {
	return tea.Batch(
		StandardInit(),
		m.spinner.Tick,
		waitForFeed(m.changes),
		m.mount(),
	)
}

// waitForFeed blocks until the feed or the store publishes a change
func waitForFeed(changes <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return feedChangedMsg{}
	}
}

func (m App) mount() tea.Cmd {
	f, ctx := m.feed, m.ctx
	return func() tea.Msg {
		return refreshDoneMsg{err: f.Mount(ctx)}
	}
}

// refresh runs a non-silent refresh: status flips to loading immediately
func (m App) refresh() tea.Cmd {
	f, ctx := m.feed, m.ctx
	return func() tea.Msg {
		return refreshDoneMsg{err: f.Refresh(ctx, feed.RefreshOptions{})}
	}
}

// Update implements tea.Model
func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.ClearExpiredStatus()

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if m.UpdateLayout(msg.Width, msg.Height) {
			m.manifest.SetColumns(CalculateColumns(ManifestColumns(), m.Layout.TableWidth))
			m.manifest.SetHeight(m.Layout.TableHeight)
		}
		return m, nil

	case feedChangedMsg:
		m.syncSnapshot()
		return m, waitForFeed(m.changes)

	case refreshDoneMsg:
		m.syncSnapshot()
		if msg.err != nil && !errors.Is(msg.err, feed.ErrSuperseded) && m.logger != nil {
			m.logger.Warn("Refresh finished with error", "error", msg.err)
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	if quit, cmd := HandleQuitKeys(key); quit {
		m.Quitting = true
		return m, cmd
	}

	if m.HelpVisible {
		if key == "?" || key == "esc" {
			m.HelpVisible = false
		}
		return m, nil
	}

	switch key {
	case "?":
		m.HelpVisible = true
		return m, nil
	case "tab":
		m.page = m.page.next()
		return m, nil
	case "shift+tab":
		m.page = m.page.prev()
		return m, nil
	case "1", "2", "3":
		m.page = pages[key[0]-'1']
		return m, nil
	case "e":
		m.export(FormatMarkdown)
		return m, nil
	case "E":
		m.export(FormatYAML)
		return m, nil
	}

	switch m.page {
	case PageMissions:
		return m.handleMissionsKey(msg)
	case PageAnalytics:
		return m.handleAnalyticsKey(key)
	default:
		return m.handleDashboardKey(key)
	}
}

func (m App) handleDashboardKey(key string) (tea.Model, tea.Cmd) {
	launches := m.snapshot.Launches

	switch key {
	case "up", "k", "down", "j":
		m.dashCursor = HandleNavigationKeys(key, m.dashCursor, len(launches))
	case "p":
		if l, ok := m.launchAt(m.dashCursor); ok {
			m.togglePin(l)
		}
	case "f", "enter":
		if l, ok := m.launchAt(m.dashCursor); ok {
			m.focus(l)
		}
	case "c":
		m.store.ClearSelection()
		m.SetStatus("Focus cleared", statusDuration)
	case "R":
		return m, m.refresh()
	}
	return m, nil
}

func (m App) handleMissionsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p":
		if l, ok := m.launchAt(m.manifest.Cursor()); ok {
			m.togglePin(l)
		}
		return m, nil
	case "f", "enter":
		if l, ok := m.launchAt(m.manifest.Cursor()); ok {
			m.focus(l)
		}
		return m, nil
	case "r", "R":
		return m, m.refresh()
	}

	var cmd tea.Cmd
	m.manifest, cmd = m.manifest.Update(msg)
	return m, cmd
}

func (m App) handleAnalyticsKey(key string) (tea.Model, tea.Cmd) {
	tracked := missions.TrackedMissions(m.snapshot.Launches, m.store.Preferences())

	if delta, ok := readinessDelta(key); ok {
		if m.analyticsCursor < len(tracked) {
			l := tracked[m.analyticsCursor]
			current := m.store.EnsureReadiness(l.ID)
			m.store.SetReadiness(l.ID, float64(current+delta))
		}
		return m, nil
	}

	m.analyticsCursor = HandleNavigationKeys(key, m.analyticsCursor, len(tracked))
	return m, nil
}

// =============================================================================
// Store actions
// =============================================================================

func (m *App) togglePin(l models.Launch) {
	m.store.TogglePin(l.ID)
	if m.store.IsPinned(l.ID) {
		m.SetStatus("Pinned "+l.Name, statusDuration)
	} else {
		m.SetStatus("Unpinned "+l.Name, statusDuration)
	}
	m.syncManifest()
}

func (m *App) focus(l models.Launch) {
	m.store.SelectMission(l.ID)
	m.SetStatus("Focused "+l.Name, statusDuration)
}

func (m *App) export(format string) {
	path, err := ExportReport(NewReport(m.snapshot.Launches, m.store, m.now()), format, "")
	if err != nil {
		m.SetStatus("Export failed: "+err.Error(), statusDuration)
		return
	}
	m.SetStatus("Exported to "+path, statusDuration)
}

func (m App) launchAt(i int) (models.Launch, bool) {
	if i < 0 || i >= len(m.snapshot.Launches) {
		return models.Launch{}, false
	}
	return m.snapshot.Launches[i], true
}

// syncSnapshot pulls the latest feed state and keeps cursors in range
func (m *App) syncSnapshot() {
	m.snapshot = m.feed.Snapshot()
	m.dashCursor = HandleNavigationKeys("", m.dashCursor, len(m.snapshot.Launches))
	m.syncManifest()
}

// syncManifest rebuilds the Missions table rows from the snapshot and store
func (m *App) syncManifest() {
	prefs := m.store.Preferences()
	rows := make([]table.Row, len(m.snapshot.Launches))
	for i, l := range m.snapshot.Launches {
		pin := "[ ]"
		if prefs.IsPinned(l.ID) {
			pin = "[*]"
		}
		rows[i] = table.Row{pin, l.Name, FormatWindow(l, m.loc), StatusLabel(l), BriefingLabel(l)}
	}
	m.manifest.SetRows(rows)
	if len(rows) == 0 {
		return
	}
	// a table built without rows starts with the cursor at -1
	if c := m.manifest.Cursor(); c < 0 {
		m.manifest.SetCursor(0)
	} else if c >= len(rows) {
		m.manifest.SetCursor(len(rows) - 1)
	}
}

// =============================================================================
// Views
// =============================================================================

// View implements tea.Model
func (m App) View() string {
	if m.Quitting {
		return ""
	}
	if m.HelpVisible {
		return m.renderHelp()
	}

	switch m.page {
	case PageMissions:
		return m.renderMissions()
	case PageAnalytics:
		return m.renderAnalytics()
	default:
		return m.renderDashboard()
	}
}

// renderHeader renders the app title and the page tabs
func (m App) renderHeader() string {
	var parts []string
	for _, p := range pages {
		if p == m.page {
			parts = append(parts, RenderTabActive(p.String()))
		} else {
			parts = append(parts, RenderTabInactive(p.String()))
		}
	}
	return RenderTitle("Mission Control") + "   " + strings.Join(parts, " ") + "\n"
}

type metric struct {
	label string
	value string
}

// renderMetrics lays out label/value pairs side by side
func (m App) renderMetrics(metrics []metric) string {
	width := m.Layout.InnerWidth / len(metrics)
	cells := make([]string, len(metrics))
	for i, mt := range metrics {
		cells[i] = lipgloss.NewStyle().Width(width).Render(
			RenderDim(mt.label) + "\n" + StatsStyle.Render(mt.value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...) + "\n"
}

func (m App) renderStatus(b *PageViewBuilder) {
	if m.HasStatus() {
		b.Status(m.StatusMsg)
	}
	if err := m.store.PersistErr(); err != nil {
		b.Error("Preferences not saved: " + err.Error())
	}
}

func (m App) renderDashboard() string {
	launches := m.snapshot.Launches
	prefs := m.store.Preferences()

	b := NewPageView(m.Layout).
		CustomContent(m.renderHeader()).
		Divider().
		Spacing(1).
		DimText("Mission of focus")

	focused, ok := missions.FocusedMission(launches, prefs)
	readiness := "--"
	if ok {
		b.Title(focused.Name).Text(truncateToWidth(focused.Details, m.Layout.InnerWidth))
		readiness = fmt.Sprintf("%d%%", m.store.EnsureReadiness(focused.ID))
	} else {
		b.Title("Awaiting manifest")
	}

	next := "TBC"
	if l, ok := m.snapshot.NextLaunch(); ok {
		next = FormatWindow(l, m.loc)
	}
	b.Spacing(1).CustomContent(m.renderMetrics([]metric{
		{"Readiness", readiness},
		{"Pinned missions", fmt.Sprintf("%d", len(prefs.PinnedMissionIDs))},
		{"Next launch", next},
	}))

	b.Divider().
		DimText("Live manifest").
		Title("Upcoming launches")
	if c := m.feed.Cache(); c != nil {
		b.DimText("Updated " + humanize.RelTime(c.WrittenAt, m.now(), "ago", "from now"))
	}

	switch m.snapshot.Status {
	case feed.StatusLoading:
		b.CustomContent(m.spinner.View() + " " + RenderDim("Syncing with launchpad...") + "\n")
	case feed.StatusError:
		b.Error(m.snapshot.Err)
	}

	b.CustomContent(m.renderCards(launches, prefs))
	m.renderStatus(b)
	return b.Help(dashboardHelp).Build()
}

// renderCards renders as many launch cards as fit, scrolled to keep the
// cursor visible
func (m App) renderCards(launches []models.Launch, prefs models.Preferences) string {
	if len(launches) == 0 {
		return ""
	}

	fit := (m.Layout.ViewportHeight - 26) / 3
	if fit < 1 {
		fit = 1
	}
	start := 0
	if m.dashCursor >= fit {
		start = m.dashCursor - fit + 1
	}
	end := start + fit
	if end > len(launches) {
		end = len(launches)
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for i := start; i < end; i++ {
		l := launches[i]
		sb.WriteString(RenderLaunchCard(l, CardOptions{
			Pinned:   prefs.IsPinned(l.ID),
			Focused:  prefs.Selected() == l.ID,
			Selected: i == m.dashCursor,
			Location: m.loc,
			Now:      m.now(),
		}, m.Layout.InnerWidth))
	}
	if hidden := len(launches) - (end - start); hidden > 0 {
		sb.WriteString(RenderDim(fmt.Sprintf("(%d of %d launches shown)", end-start, len(launches))))
		sb.WriteString("\n")
	}
	return sb.String()
}

func (m App) renderMissions() string {
	b := NewPageView(m.Layout).
		CustomContent(m.renderHeader()).
		Divider().
		Spacing(1).
		DimText("Planning").
		Title("Mission manifest")

	if m.snapshot.Status == feed.StatusLoading {
		b.CustomContent(m.spinner.View() + " " + RenderDim("Fetching manifest...") + "\n")
	}
	if m.snapshot.Err != "" {
		b.Error(m.snapshot.Err)
	}

	launches := m.snapshot.Launches
	if len(launches) == 0 && m.snapshot.Status == feed.StatusSuccess {
		b.Text("No launches returned from API.")
	}

	if len(launches) > 0 {
		b.QueryInfo(fmt.Sprintf("%d launches | %d pinned", len(launches), len(m.store.Preferences().PinnedMissionIDs)))
		b.Table(m.manifest)
		if l, ok := m.launchAt(m.manifest.Cursor()); ok {
			b.Spacing(1).
				DimText(truncateToWidth(l.Details, m.Layout.InnerWidth)).
				DimText(fmt.Sprintf("p: %s | f: Focus", PinLabel(m.store.IsPinned(l.ID))))
		}
	}

	m.renderStatus(b)
	return b.Help(missionsHelp).Build()
}

func (m App) renderAnalytics() string {
	prefs := m.store.Preferences()
	tracked := missions.TrackedMissions(m.snapshot.Launches, prefs)

	avg := "--%"
	if a, ok := m.store.AverageReadiness(tracked); ok {
		avg = fmt.Sprintf("%d%%", a)
	}

	b := NewPageView(m.Layout).
		CustomContent(m.renderHeader()).
		Divider().
		Spacing(1).
		DimText("Systems").
		Title("Analytics & readiness").
		Spacing(1).
		CustomContent(m.renderMetrics([]metric{
			{"Tracked missions", fmt.Sprintf("%d", len(tracked))},
			{"Avg readiness", avg},
		})).
		Divider()

	if len(tracked) == 0 {
		b.CustomContent(HintStyle.Render("Pin missions from the manifest to start shaping readiness targets.") + "\n")
	}

	nameWidth := m.Layout.InnerWidth - readinessBarWidth - 10
	for i, l := range tracked {
		score := m.store.EnsureReadiness(l.ID)
		name := truncateToWidth(l.Name, nameWidth)
		name += strings.Repeat(" ", max(0, nameWidth-StringWidth(name)))
		line := fmt.Sprintf("%s %4s  %s", name, fmt.Sprintf("%d%%", score), m.bar.ViewAs(ReadinessFraction(score)))
		if i == m.analyticsCursor {
			b.CustomContent(AccentStyle.Render("> ") + line + "\n")
		} else {
			b.CustomContent("  " + line + "\n")
		}
		b.DimText("  " + truncateToWidth(l.Details, m.Layout.InnerWidth-2))
	}

	m.renderStatus(b)
	return b.Help(analyticsHelp).Build()
}

func (m App) renderHelp() string {
	help := `Keyboard Controls:
  Tab / shift+Tab  Next / previous page
  1 2 3            Dashboard, Missions, Analytics
  ↑/↓ or j/k       Move selection
  p                Pin / unpin the selected mission
  f or Enter       Focus the selected mission
  c                Clear focus (Dashboard)
  R / r            Refresh the manifest from the network
  ←/→              Readiness -1 / +1 (Analytics)
  shift+←/→        Readiness -5 / +5 (Analytics)
  e / E            Export markdown report / YAML preferences
  ?                Toggle this help
  q                Quit
`
	content := ViewHeader("Help", m.Layout.InnerWidth) + NormalStyle.Render(help)
	return BuildTwoBoxView(content, "?: close help", m.Layout)
}

// RunDashboard starts the interactive dashboard on the page route resolves to
// and blocks until the user quits. The feed is closed on return.
func RunDashboard(ctx context.Context, f *feed.Feed, store *missions.Store, route string, logger *log.Logger) error {
	app := NewApp(ctx, f, store, route, AppOptions{Logger: logger})
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("dashboard error: %w", err)
	}
	return nil
}
