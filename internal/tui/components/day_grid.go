package components

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/lucventura/clinicday/internal/layout"
)

var (
	gutterStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	appointmentStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("25"))

	blockStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("236"))

	gridEmptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Italic(true)
)

const gutterWidth = 6 // "08:00 "

// cell is one character position on the schedule canvas.
type cell struct {
	ch   rune
	kind layout.EventKind
	set  bool
}

// DayGrid is a Bubble Tea component that renders one day's positioned events
// on an hour-by-hour canvas. Overlapping events appear side by side in the
// columns the layout engine assigned them.
type DayGrid struct {
	grid     layout.Grid
	events   []layout.PositionedEvent
	labels   map[string]string
	dayStart time.Time
	width    int
	height   int
}

// NewDayGrid creates a new DayGrid component
func NewDayGrid(grid layout.Grid) *DayGrid {
	return &DayGrid{
		grid:   grid,
		labels: make(map[string]string),
		width:  80,
		height: 24,
	}
}

// SetSize updates the dimensions of the grid
func (dg *DayGrid) SetSize(width, height int) {
	dg.width = width
	dg.height = height
	dg.grid.AvailableWidth = float64(width - gutterWidth)
}

// UpdateEvents replaces the rendered events. Labels map event IDs to the
// text shown inside each box (patient name or block label).
func (dg *DayGrid) UpdateEvents(events []layout.PositionedEvent, labels map[string]string, dayStart time.Time) {
	dg.events = events
	dg.labels = labels
	dg.dayStart = dayStart
}

// View renders the day grid
func (dg *DayGrid) View() string {
	if dg.width <= gutterWidth || dg.height <= 0 {
		return ""
	}

	rows := dg.grid.Hours() * int(dg.grid.UnitsPerHour)
	cols := dg.width - gutterWidth
	if rows <= 0 || cols <= 0 {
		return ""
	}

	canvas := make([][]cell, rows)
	for i := range canvas {
		canvas[i] = make([]cell, cols)
	}

	// Blocks first so appointments paint over the availability behind them.
	for _, e := range dg.events {
		if e.Kind == layout.KindBlock {
			dg.paint(canvas, e)
		}
	}
	for _, e := range dg.events {
		if e.Kind == layout.KindAppointment {
			dg.paint(canvas, e)
		}
	}

	var sb strings.Builder
	for row := 0; row < rows; row++ {
		sb.WriteString(dg.renderGutter(row))
		sb.WriteString(dg.renderRow(canvas[row]))
		if row < rows-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// paint writes one event's box onto the canvas.
func (dg *DayGrid) paint(canvas [][]cell, e layout.PositionedEvent) {
	top := int(dg.grid.VerticalOffset(e.Start, dg.dayStart))
	height := int(dg.grid.EventHeight(e.Start, e.End))
	if height < 1 {
		height = 1
	}

	colWidth, xOffset := dg.grid.ColumnGeometry(e.Column, e.TotalColumns)
	left := int(xOffset)
	width := int(colWidth)
	if width < 1 {
		width = 1
	}

	label := dg.labels[e.ID]
	if label == "" {
		label = e.ID
	}

	for row := top; row < top+height; row++ {
		if row < 0 || row >= len(canvas) {
			continue
		}
		for col := left; col < left+width; col++ {
			if col < 0 || col >= len(canvas[row]) {
				continue
			}
			ch := ' '
			if row == top {
				idx := col - left
				if idx < len(label) {
					ch = rune(label[idx])
				}
			}
			canvas[row][col] = cell{ch: ch, kind: e.Kind, set: true}
		}
	}
}

// renderGutter renders the time column for a canvas row. Only rows on an
// hour boundary get a clock label.
func (dg *DayGrid) renderGutter(row int) string {
	units := int(dg.grid.UnitsPerHour)
	if units > 0 && row%units == 0 {
		hour := dg.grid.StartHour + row/units
		return gutterStyle.Render(fmt.Sprintf("%02d:00 ", hour))
	}
	return strings.Repeat(" ", gutterWidth)
}

// renderRow renders one canvas row, styling runs of cells by event kind.
func (dg *DayGrid) renderRow(cells []cell) string {
	var sb strings.Builder
	var run strings.Builder
	var runKind layout.EventKind
	runSet := false

	flush := func() {
		if run.Len() == 0 {
			return
		}
		s := run.String()
		switch {
		case !runSet:
			sb.WriteString(s)
		case runKind == layout.KindAppointment:
			sb.WriteString(appointmentStyle.Render(s))
		default:
			sb.WriteString(blockStyle.Render(s))
		}
		run.Reset()
	}

	for _, c := range cells {
		if run.Len() > 0 && (c.set != runSet || (c.set && c.kind != runKind)) {
			flush()
		}
		runSet = c.set
		runKind = c.kind
		if c.set {
			run.WriteRune(c.ch)
		} else {
			run.WriteRune(' ')
		}
	}
	flush()

	return sb.String()
}

// EmptyView renders the placeholder shown when nothing is scheduled.
func (dg *DayGrid) EmptyView() string {
	return gridEmptyStyle.Render("Nothing scheduled")
}
