package layout

import (
	"sort"
	"time"
)

// BlockSegment is one visible sub-interval of an availability block after
// the portions covered by appointments have been subtracted. Offsets are
// minutes relative to the start of the day.
type BlockSegment struct {
	StartOffsetMinutes int `json:"start_offset_minutes"`
	EndOffsetMinutes   int `json:"end_offset_minutes"`
}

type timeRange struct {
	start, end time.Time
}

// SegmentBlock computes the visible sub-intervals of block once the parts
// covered by the given appointments are removed. Only appointments that
// actually overlap the block contribute; each is first clipped to the
// block's range.
//
// Segments are non-overlapping, sorted by start, and together with the
// clipped appointment ranges exactly reconstruct the block interval. A block
// with no intruding appointments yields one full-length segment; a block
// fully covered by appointments yields none.
func SegmentBlock(block Event, appointments []Event, dayStart time.Time) []BlockSegment {
	var occupied []timeRange
	for _, appt := range appointments {
		if !appt.Overlaps(block) {
			continue
		}
		r := timeRange{start: appt.Start, end: appt.End}
		if r.start.Before(block.Start) {
			r.start = block.Start
		}
		if r.end.After(block.End) {
			r.end = block.End
		}
		occupied = append(occupied, r)
	}

	if len(occupied) == 0 {
		return []BlockSegment{newSegment(block.Start, block.End, dayStart)}
	}

	sort.Slice(occupied, func(i, j int) bool {
		return occupied[i].start.Before(occupied[j].start)
	})

	var segments []BlockSegment
	cursor := block.Start
	for _, r := range occupied {
		if r.start.After(cursor) {
			segments = append(segments, newSegment(cursor, r.start, dayStart))
		}
		if r.end.After(cursor) {
			cursor = r.end
		}
	}
	if cursor.Before(block.End) {
		segments = append(segments, newSegment(cursor, block.End, dayStart))
	}

	return segments
}

func newSegment(start, end, dayStart time.Time) BlockSegment {
	return BlockSegment{
		StartOffsetMinutes: int(start.Sub(dayStart) / time.Minute),
		EndOffsetMinutes:   int(end.Sub(dayStart) / time.Minute),
	}
}

// DurationMinutes returns the segment length in minutes.
func (s BlockSegment) DurationMinutes() int {
	return s.EndOffsetMinutes - s.StartOffsetMinutes
}
