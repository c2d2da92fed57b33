package layout

import (
	"fmt"
	"reflect"
	"testing"
)

func TestAssignColumns_Empty(t *testing.T) {
	if got := AssignColumns(nil); got != nil {
		t.Errorf("AssignColumns(nil) = %v, want nil", got)
	}
}

func TestAssignColumns_SingleEvent(t *testing.T) {
	positioned := AssignColumns(Cluster{ev("a", at(9, 0), at(10, 0))})

	if len(positioned) != 1 {
		t.Fatalf("expected 1 positioned event, got %d", len(positioned))
	}
	if positioned[0].Column != 0 || positioned[0].TotalColumns != 1 {
		t.Errorf("got column %d/%d, want 0/1", positioned[0].Column, positioned[0].TotalColumns)
	}
}

// TestAssignColumns_Nested: an event fully inside another needs a second
// column, since the outer event still occupies column 0 when it starts.
func TestAssignColumns_Nested(t *testing.T) {
	events := []Event{
		ev("outer", at(9, 0), at(12, 0)),
		ev("inner", at(10, 0), at(11, 0)),
	}

	positioned := LayoutDay(events)

	if len(positioned) != 2 {
		t.Fatalf("expected 2 positioned events, got %d", len(positioned))
	}
	byID := positionedByID(positioned)
	if byID["outer"].Column != 0 {
		t.Errorf("outer column = %d, want 0", byID["outer"].Column)
	}
	if byID["inner"].Column != 1 {
		t.Errorf("inner column = %d, want 1", byID["inner"].Column)
	}
	for _, p := range positioned {
		if p.TotalColumns != 2 {
			t.Errorf("event %s TotalColumns = %d, want 2", p.ID, p.TotalColumns)
		}
	}
}

// TestAssignColumns_Minimality: k events sharing the same interval are all
// pairwise overlapping, so exactly k columns must be used, each distinct.
func TestAssignColumns_Minimality(t *testing.T) {
	const k = 5
	var events []Event
	for i := 0; i < k; i++ {
		events = append(events, ev(fmt.Sprintf("e%d", i), at(10, 0), at(11, 0)))
	}

	positioned := LayoutDay(events)

	if len(positioned) != k {
		t.Fatalf("expected %d positioned events, got %d", k, len(positioned))
	}
	columns := make(map[int]bool)
	for _, p := range positioned {
		if p.TotalColumns != k {
			t.Errorf("event %s TotalColumns = %d, want %d", p.ID, p.TotalColumns, k)
		}
		if p.Column < 0 || p.Column >= p.TotalColumns {
			t.Errorf("event %s column %d out of range [0,%d)", p.ID, p.Column, p.TotalColumns)
		}
		columns[p.Column] = true
	}
	if len(columns) != k {
		t.Errorf("expected %d distinct columns, got %d", k, len(columns))
	}
}

// TestAssignColumns_ColumnReuse: a column freed by an earlier event is
// reused by a later event, keeping the layout at the true maximum of
// simultaneously active events.
func TestAssignColumns_ColumnReuse(t *testing.T) {
	events := []Event{
		ev("a", at(9, 0), at(10, 0)),
		ev("b", at(9, 30), at(11, 0)),
		ev("c", at(10, 0), at(10, 30)), // a has ended: column 0 is free again
	}

	positioned := LayoutDay(events)

	byID := positionedByID(positioned)
	if byID["c"].Column != 0 {
		t.Errorf("c should reuse column 0, got %d", byID["c"].Column)
	}
	for _, p := range positioned {
		if p.TotalColumns != 2 {
			t.Errorf("event %s TotalColumns = %d, want 2 (never more than max concurrency)", p.ID, p.TotalColumns)
		}
	}
}

// TestLayoutDay_NoCoAssignedOverlaps is the core safety property: two events
// in the same cluster and column must never overlap in time.
func TestLayoutDay_NoCoAssignedOverlaps(t *testing.T) {
	events := []Event{
		ev("a", at(9, 0), at(10, 0)),
		ev("b", at(9, 30), at(10, 30)),
		ev("c", at(9, 45), at(10, 15)),
		ev("d", at(10, 15), at(11, 0)),
		ev("e", at(10, 30), at(12, 0)),
		ev("f", at(13, 0), at(14, 0)),
	}

	positioned := LayoutDay(events)

	for i := 0; i < len(positioned); i++ {
		for j := i + 1; j < len(positioned); j++ {
			a, b := positioned[i], positioned[j]
			if a.TotalColumns == b.TotalColumns && a.Column == b.Column && a.Overlaps(b.Event) {
				// Same column is only a collision within the same cluster;
				// overlapping events are always clustered together, so an
				// overlapping pair sharing a column is a genuine violation.
				t.Errorf("events %s and %s overlap but share column %d", a.ID, b.ID, a.Column)
			}
		}
	}
}

// TestLayoutDay_Scenario pins the documented three-appointment layout:
// A=[09:00,10:00) B=[09:30,10:30) C=[09:45,10:15) form one 3-column cluster.
func TestLayoutDay_Scenario(t *testing.T) {
	events := []Event{
		ev("A", at(9, 0), at(10, 0)),
		ev("B", at(9, 30), at(10, 30)),
		ev("C", at(9, 45), at(10, 15)),
	}

	positioned := LayoutDay(events)

	if len(positioned) != 3 {
		t.Fatalf("expected 3 positioned events, got %d", len(positioned))
	}
	byID := positionedByID(positioned)
	wantColumns := map[string]int{"A": 0, "B": 1, "C": 2}
	for id, want := range wantColumns {
		if byID[id].Column != want {
			t.Errorf("event %s column = %d, want %d", id, byID[id].Column, want)
		}
		if byID[id].TotalColumns != 3 {
			t.Errorf("event %s TotalColumns = %d, want 3", id, byID[id].TotalColumns)
		}
	}

	grid := Grid{AvailableWidth: 300, Padding: 0}
	for id, col := range wantColumns {
		width, x := grid.ColumnGeometry(col, 3)
		if width != 100 {
			t.Errorf("event %s width = %v, want 100", id, width)
		}
		if want := float64(col) * 100; x != want {
			t.Errorf("event %s xOffset = %v, want %v", id, x, want)
		}
	}
}

// TestLayoutDay_Idempotent: the layout is a deterministic function of the
// event set, so repeated runs agree exactly.
func TestLayoutDay_Idempotent(t *testing.T) {
	events := []Event{
		ev("c", at(9, 45), at(10, 15)),
		ev("a", at(9, 0), at(10, 0)),
		ev("d", at(11, 0), at(11, 30)),
		ev("b", at(9, 30), at(10, 30)),
	}

	first := LayoutDay(events)
	second := LayoutDay(events)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated layout runs on the same input should be identical")
	}
}

func positionedByID(positioned []PositionedEvent) map[string]PositionedEvent {
	byID := make(map[string]PositionedEvent, len(positioned))
	for _, p := range positioned {
		byID[p.ID] = p
	}
	return byID
}
