package venuesmem

import (
	"time"

	"github.com/castaneai/venues"
)

type venue struct {
	name         string
	rooms        []*room
	reservations []*reservation
}

func newVenue(name string) *venue {
	return &venue{name: name}
}

func (v *venue) addRoom(name string, size venues.RoomSize) *room {
	rm := &room{name: name, size: size}
	v.rooms = append(v.rooms, rm)
	return rm
}

func (v *venue) removeRoom(target *room) {
	for i, rm := range v.rooms {
		if rm == target {
			v.rooms = append(v.rooms[:i], v.rooms[i+1:]...)
			return
		}
	}
}

func (v *venue) findRoom(name string) *room {
	for _, rm := range v.rooms {
		if rm.name == name {
			return rm
		}
	}
	return nil
}

// availableRooms selects rooms for an inclusive date range and per-size room
// counts. Rooms are scanned once in insertion order; the first free room of a
// still-needed size class is always picked, so the selection is deterministic
// given the same booking history. The result is all-or-nothing: either every
// requested count is satisfied, or ok is false and no rooms are returned.
func (v *venue) availableRooms(start, end time.Time, small, medium, large int) ([]*room, bool) {
	need := map[venues.RoomSize]int{
		venues.RoomSizeSmall:  small,
		venues.RoomSizeMedium: medium,
		venues.RoomSizeLarge:  large,
	}
	var selected []*room
	for _, rm := range v.rooms {
		// Size classes outside the enum have no entry, so such rooms are
		// never selected.
		if need[rm.size] <= 0 {
			continue
		}
		withRoom := reservationsWithRoom(v.reservations, rm)
		if len(withRoom) == 0 || !hasDateOverlap(withRoom, start, end) {
			selected = append(selected, rm)
			need[rm.size]--
		}
	}
	for _, remaining := range need {
		if remaining > 0 {
			return nil, false
		}
	}
	return selected, true
}

// makeReservation appends a reservation without re-checking availability; the
// caller must have selected rooms via availableRooms for the same date range.
func (v *venue) makeReservation(id string, rooms []*room, start, end time.Time) *reservation {
	res := &reservation{id: id, venue: v, rooms: rooms, start: start, end: end}
	v.reservations = append(v.reservations, res)
	return res
}

// cancelReservation is a no-op if the reservation was already removed.
func (v *venue) cancelReservation(target *reservation) {
	for i, res := range v.reservations {
		if res == target {
			v.reservations = append(v.reservations[:i], v.reservations[i+1:]...)
			return
		}
	}
}
