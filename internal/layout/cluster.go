package layout

import "sort"

// Cluster is a maximal group of events connected by a chain of pairwise
// overlaps. Clusters are built fresh on every layout pass and discarded
// after column assignment.
type Cluster []Event

// ClusterEvents partitions a day's events into conflict clusters. Input
// order is irrelevant; the result is deterministic for a given event set.
//
// Events are sorted by start ascending, ties broken by end descending so the
// longest event of a tied group is considered first and anchors column 0.
// A single sweep then tracks the maximum end seen in the current cluster:
// once an event starts at or after that boundary, no overlap chain can reach
// it, so the cluster is closed and a new one begins.
//
// An empty input yields a nil cluster list.
func ClusterEvents(events []Event) []Cluster {
	if len(events) == 0 {
		return nil
	}

	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Start.Equal(sorted[j].Start) {
			return sorted[i].End.After(sorted[j].End)
		}
		return sorted[i].Start.Before(sorted[j].Start)
	})

	var clusters []Cluster
	current := Cluster{sorted[0]}
	clusterEnd := sorted[0].End

	for _, event := range sorted[1:] {
		if !event.Start.Before(clusterEnd) {
			// No overlap with anything seen so far; close the cluster.
			clusters = append(clusters, current)
			current = Cluster{event}
			clusterEnd = event.End
			continue
		}

		current = append(current, event)
		if event.End.After(clusterEnd) {
			clusterEnd = event.End
		}
	}

	return append(clusters, current)
}
