package layout

import "time"

// Grid holds the geometry of one rendered day: the visible hour range, the
// vertical scale, and the horizontal space events share. Units are abstract
// (pixels, terminal rows); the engine only does the arithmetic.
type Grid struct {
	StartHour      int     // first visible hour of the day (e.g. 8)
	EndHour        int     // hour the grid ends at (e.g. 18)
	UnitsPerHour   float64 // vertical units per hour of time
	AvailableWidth float64 // horizontal units available for event columns
	Padding        float64 // horizontal units reserved around a cluster
	MinEventHeight float64 // floor so very short events stay legible
}

// VerticalOffset converts an instant to a vertical offset from the top of
// the grid. Instants before the grid's start hour produce negative offsets;
// clamping is the caller's choice.
func (g Grid) VerticalOffset(t, dayStart time.Time) float64 {
	gridStart := dayStart.Add(time.Duration(g.StartHour) * time.Hour)
	return t.Sub(gridStart).Hours() * g.UnitsPerHour
}

// EventHeight converts an interval to a vertical size, floored at
// MinEventHeight.
func (g Grid) EventHeight(start, end time.Time) float64 {
	h := end.Sub(start).Hours() * g.UnitsPerHour
	if h < g.MinEventHeight {
		return g.MinEventHeight
	}
	return h
}

// ColumnGeometry converts a (column, totalColumns) assignment into a width
// and horizontal offset within the available width. totalColumns must be
// at least 1.
func (g Grid) ColumnGeometry(column, totalColumns int) (width, xOffset float64) {
	width = (g.AvailableWidth - g.Padding) / float64(totalColumns)
	xOffset = float64(column)*width + g.Padding/2
	return width, xOffset
}

// Hours returns the number of hours the grid spans.
func (g Grid) Hours() int {
	return g.EndHour - g.StartHour
}
