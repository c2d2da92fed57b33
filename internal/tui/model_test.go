package tui

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lucventura/clinicday/internal/clinic"
	"github.com/lucventura/clinicday/internal/config"
	"github.com/lucventura/clinicday/internal/layout"
)

func newTestModel(t *testing.T) *Model {
	t.Setenv("CLINICDAY_DATA_DIR", t.TempDir())

	m := NewModel(nil, config.DefaultSettings(), "2026-03-16")
	if m.watcher != nil {
		t.Cleanup(m.watcher.Stop)
	}
	return m
}

func TestNewModelDefaults(t *testing.T) {
	m := newTestModel(t)

	if m.currentDate != "2026-03-16" {
		t.Errorf("Expected currentDate 2026-03-16, got %s", m.currentDate)
	}
	if m.dayGrid == nil {
		t.Error("Expected day grid to be created")
	}
	if m.statusBar == nil {
		t.Error("Expected status bar to be created")
	}
}

func TestWindowSizeTooSmall(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	m = updated.(*Model)

	if !m.terminalTooSmall {
		t.Error("Expected terminalTooSmall for 40x10")
	}
	if view := m.View(); !strings.Contains(view, "Terminal too small") {
		t.Errorf("Expected too-small message, got %q", view)
	}

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(*Model)

	if m.terminalTooSmall {
		t.Error("Expected terminalTooSmall to clear at 100x30")
	}
}

func TestDateNavigationKeys(t *testing.T) {
	m := newTestModel(t)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'l'}})
	m = updated.(*Model)
	if m.currentDate != "2026-03-17" {
		t.Errorf("Expected next day 2026-03-17, got %s", m.currentDate)
	}
	if cmd == nil {
		t.Error("Expected a reload command after navigation")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}})
	m = updated.(*Model)
	if m.currentDate != "2026-03-16" {
		t.Errorf("Expected previous day 2026-03-16, got %s", m.currentDate)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'t'}})
	m = updated.(*Model)
	if want := time.Now().Format(clinic.DateFormat); m.currentDate != want {
		t.Errorf("Expected today %s, got %s", want, m.currentDate)
	}
}

func TestDayLoadedIgnoresStaleDates(t *testing.T) {
	m := newTestModel(t)

	stale := dayLoadedMsg{
		date: "2026-03-10",
		day:  clinic.NewDay("2026-03-10"),
		dl:   &clinic.DayLayout{Date: "2026-03-10"},
	}
	updated, _ := m.Update(stale)
	m = updated.(*Model)

	if m.dayLayout != nil {
		t.Error("Expected stale load to be dropped")
	}
}

func TestDayLoadedUpdatesView(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = updated.(*Model)

	day := clinic.NewDay("2026-03-16")
	appt := clinic.NewAppointment("Ada Lovelace", "Checkup",
		time.Date(2026, 3, 16, 9, 0, 0, 0, time.Local),
		time.Date(2026, 3, 16, 10, 0, 0, 0, time.Local))
	day.Appointments = append(day.Appointments, *appt)

	dl := &clinic.DayLayout{
		Date:   "2026-03-16",
		Events: layout.LayoutDay([]layout.Event{appt.Event()}),
	}

	updated, _ = m.Update(dayLoadedMsg{date: "2026-03-16", day: day, dl: dl})
	m = updated.(*Model)

	view := m.View()
	if !strings.Contains(view, "2026-03-16") {
		t.Errorf("Expected header to show the date, got:\n%s", view)
	}
	if !strings.Contains(view, "Ada Lovelace") {
		t.Errorf("Expected the appointment to render, got:\n%s", view)
	}
}

func TestErrMsgShownInView(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(errMsg{err: fmt.Errorf("database gone")})
	m = updated.(*Model)

	if view := m.View(); !strings.Contains(view, "database gone") {
		t.Errorf("Expected error in view, got %q", view)
	}
}
