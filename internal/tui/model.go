package tui

import (
	"fmt"
	stdtime "time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lucventura/clinicday/internal/clinic"
	"github.com/lucventura/clinicday/internal/config"
	"github.com/lucventura/clinicday/internal/layout"
	"github.com/lucventura/clinicday/internal/sync"
	"github.com/lucventura/clinicday/internal/tui/components"
)

// Minimum terminal dimensions
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 16
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))
)

// keyMap defines the key bindings for the day view
type keyMap struct {
	Quit    key.Binding
	PrevDay key.Binding
	NextDay key.Binding
	Today   key.Binding
	Refresh key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		PrevDay: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h", "previous day"),
		),
		NextDay: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l", "next day"),
		),
		Today: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "today"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
	}
}

// Model represents the main TUI state
type Model struct {
	service     *clinic.Service
	settings    config.Settings
	watcher     *sync.Watcher
	currentDate string
	currentDay  *clinic.Day
	dayLayout   *clinic.DayLayout

	keys      keyMap
	dayGrid   *components.DayGrid
	statusBar *components.StatusBar

	width     int
	height    int
	lastError error

	terminalTooSmall bool
}

type dayLoadedMsg struct {
	date string
	day  *clinic.Day
	dl   *clinic.DayLayout
}

type fileChangedMsg struct{}

type errMsg struct {
	err error
}

// NewModel creates a new TUI model
func NewModel(service *clinic.Service, settings config.Settings, date string) *Model {
	var watcher *sync.Watcher
	if dbPath, err := config.DatabasePath(); err == nil {
		// Continue without live refresh if the watcher cannot be created
		watcher, _ = sync.NewWatcher(dbPath)
	}

	grid := layout.Grid{
		StartHour:      settings.GridStartHour,
		EndHour:        settings.GridEndHour,
		UnitsPerHour:   float64(settings.RowsPerHour),
		Padding:        float64(settings.ColumnPadding),
		MinEventHeight: float64(settings.MinEventRows),
	}

	return &Model{
		service:     service,
		settings:    settings,
		watcher:     watcher,
		currentDate: date,
		keys:        defaultKeyMap(),
		dayGrid:     components.NewDayGrid(grid),
		statusBar:   components.NewStatusBar(),
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadDay()}

	if m.watcher != nil {
		if err := m.watcher.Start(); err == nil {
			cmds = append(cmds, m.waitForFileChange())
		}
	}

	return tea.Batch(cmds...)
}

// loadDay loads and lays out the current date.
func (m *Model) loadDay() tea.Cmd {
	capturedDate := m.currentDate
	return func() tea.Msg {
		day, err := m.service.GetDay(capturedDate)
		if err != nil {
			return errMsg{err}
		}
		dl, err := m.service.LayoutDay(capturedDate)
		if err != nil {
			return errMsg{err}
		}
		return dayLoadedMsg{date: capturedDate, day: day, dl: dl}
	}
}

// waitForFileChange waits for database change events from the watcher.
// The closure blocks on the watcher channel so Update stays responsive.
func (m *Model) waitForFileChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}

	return func() tea.Msg {
		if _, ok := <-m.watcher.Changes(); !ok {
			return nil
		}
		return fileChangedMsg{}
	}
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case dayLoadedMsg:
		return m.handleDayLoaded(msg)

	case fileChangedMsg:
		// Reload whatever date is showing, then re-arm the watcher
		return m, tea.Batch(m.loadDay(), m.waitForFileChange())

	case errMsg:
		m.lastError = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		return m, nil
	}
}

func (m *Model) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.terminalTooSmall = msg.Width < MinTerminalWidth || msg.Height < MinTerminalHeight

	m.dayGrid.SetSize(msg.Width, msg.Height-2)
	m.statusBar.SetWidth(msg.Width)
	return m, nil
}

func (m *Model) handleDayLoaded(msg dayLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.date != m.currentDate {
		return m, nil // stale load from a date we already navigated away from
	}
	m.currentDay = msg.day
	m.dayLayout = msg.dl
	m.lastError = nil

	dayStart, err := msg.day.Start()
	if err != nil {
		m.lastError = err
		return m, nil
	}
	m.dayGrid.UpdateEvents(msg.dl.Events, eventLabels(msg.day), dayStart)
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.watcher != nil {
			m.watcher.Stop()
		}
		return m, tea.Quit
	case key.Matches(msg, m.keys.PrevDay):
		return m.shiftDate(-1)
	case key.Matches(msg, m.keys.NextDay):
		return m.shiftDate(1)
	case key.Matches(msg, m.keys.Today):
		m.currentDate = stdtime.Now().Format(clinic.DateFormat)
		return m, m.loadDay()
	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadDay()
	default:
		return m, nil
	}
}

func (m *Model) shiftDate(days int) (tea.Model, tea.Cmd) {
	t, err := stdtime.ParseInLocation(clinic.DateFormat, m.currentDate, stdtime.Local)
	if err != nil {
		m.lastError = err
		return m, nil
	}
	m.currentDate = t.AddDate(0, 0, days).Format(clinic.DateFormat)
	return m, m.loadDay()
}

// View renders the TUI
func (m *Model) View() string {
	if m.terminalTooSmall {
		return fmt.Sprintf("Terminal too small (need at least %dx%d)", MinTerminalWidth, MinTerminalHeight)
	}

	if m.dayLayout == nil && m.lastError == nil {
		return "Loading..."
	}

	header := headerStyle.Render(fmt.Sprintf("%s  %s", m.settings.ClinicName, m.currentDate))

	var body string
	switch {
	case m.lastError != nil:
		body = errorStyle.Render(fmt.Sprintf("Error: %v", m.lastError))
	case len(m.dayLayout.Events) == 0:
		body = m.dayGrid.EmptyView()
	default:
		body = m.dayGrid.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, m.statusBar.View())
}

// eventLabels maps event IDs to the text shown inside their boxes.
func eventLabels(d *clinic.Day) map[string]string {
	labels := make(map[string]string, len(d.Appointments)+len(d.Blocks))
	for _, appt := range d.Appointments {
		labels[appt.ID] = appt.PatientName
	}
	for _, block := range d.Blocks {
		labels[block.ID] = block.Label
	}
	return labels
}
