package venuesmem

import (
	"sort"
	"time"
)

type reservation struct {
	id    string
	venue *venue
	rooms []*room
	start time.Time
	end   time.Time
}

// overlaps reports whether the reservation shares at least one calendar date
// with [start, end]. Both ranges are inclusive on both ends, so ranges that
// touch at a boundary date overlap.
func (r *reservation) overlaps(start, end time.Time) bool {
	// Two inclusive ranges are disjoint only if one ends strictly before the
	// other begins.
	return !(r.end.Before(start) || end.Before(r.start))
}

func hasDateOverlap(reservations []*reservation, start, end time.Time) bool {
	for _, res := range reservations {
		if res.overlaps(start, end) {
			return true
		}
	}
	return false
}

// reservationsWithRoom returns the subset of reservations that include the
// given room. Rooms are compared by identity, so renames and resizes do not
// detach a room from its reservations.
func reservationsWithRoom(reservations []*reservation, rm *room) []*reservation {
	var result []*reservation
	for _, res := range reservations {
		for _, reserved := range res.rooms {
			if reserved == rm {
				result = append(result, res)
				break
			}
		}
	}
	return result
}

func searchReservationByID(reservations []*reservation, id string) *reservation {
	for _, res := range reservations {
		if res.id == id {
			return res
		}
	}
	return nil
}

// sortByStartDate returns a copy of reservations in ascending start date
// order. The sort is stable: reservations with equal start dates keep their
// insertion order. The input slice is never mutated.
func sortByStartDate(reservations []*reservation) []*reservation {
	sorted := make([]*reservation, len(reservations))
	copy(sorted, reservations)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].start.Before(sorted[j].start)
	})
	return sorted
}
