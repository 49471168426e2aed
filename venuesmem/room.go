package venuesmem

import "github.com/castaneai/venues"

// room is owned by exactly one venue. Its identity is the struct itself, so
// name and size may change after creation without disturbing reservations
// that reference it.
type room struct {
	name string
	size venues.RoomSize
}

func (r *room) rename(name string) {
	r.name = name
}

func (r *room) resize(size venues.RoomSize) {
	r.size = size
}
