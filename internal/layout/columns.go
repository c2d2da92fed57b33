package layout

import "time"

// PositionedEvent is the layout output for one event: the event plus the
// horizontal lane it was assigned within its cluster.
// Invariant: 0 <= Column < TotalColumns.
type PositionedEvent struct {
	Event
	Column       int `json:"column"`
	TotalColumns int `json:"total_columns"`
}

// AssignColumns assigns each event of a cluster to the first column that is
// free by the time the event starts, opening a new column when none is.
// Every returned event carries the cluster-wide column count.
//
// Because a cluster is an interval graph, this first-fit greedy over the
// clustering sort order uses exactly as many columns as the maximum number
// of simultaneously active events, never more.
func AssignColumns(cluster Cluster) []PositionedEvent {
	if len(cluster) == 0 {
		return nil
	}

	positioned := make([]PositionedEvent, 0, len(cluster))
	var columnEnds []time.Time

	for _, event := range cluster {
		column := -1
		for i, end := range columnEnds {
			if !end.After(event.Start) {
				column = i
				break
			}
		}
		if column == -1 {
			column = len(columnEnds)
			columnEnds = append(columnEnds, event.End)
		} else {
			columnEnds[column] = event.End
		}

		positioned = append(positioned, PositionedEvent{Event: event, Column: column})
	}

	for i := range positioned {
		positioned[i].TotalColumns = len(columnEnds)
	}

	return positioned
}

// LayoutDay clusters a day's events and assigns columns per cluster.
// The result is ordered by cluster, then by the clustering sort order
// within each cluster, and is identical across repeated calls with the
// same input set.
func LayoutDay(events []Event) []PositionedEvent {
	var positioned []PositionedEvent
	for _, cluster := range ClusterEvents(events) {
		positioned = append(positioned, AssignColumns(cluster)...)
	}
	return positioned
}
