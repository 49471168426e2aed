package venues

import (
	"context"
	"time"
)

type Backend interface {
	// AddRoom adds a room to a venue. The venue is created on first sight of
	// its name. Room order within a venue is allocation priority.
	AddRoom(ctx context.Context, req AddRoomRequest) error

	// RenameRoom renames a room. Existing reservations keep referencing the
	// room by identity and are not affected.
	RenameRoom(ctx context.Context, req RenameRoomRequest) error

	// ResizeRoom changes the size class of a room. Existing reservations are
	// not affected.
	ResizeRoom(ctx context.Context, req ResizeRoomRequest) error

	// RemoveRoom removes a room from its venue's allocation order. Existing
	// reservations on the room are not affected.
	RemoveRoom(ctx context.Context, req RemoveRoomRequest) error

	// ListOccupancy reports every room of a venue in allocation order, each
	// with its reservations sorted ascending by start date.
	// If the venue does not exist, Error is returned with code: ErrorStatusNotFound.
	ListOccupancy(ctx context.Context, req ListOccupancyRequest) (*ListOccupancyResponse, error)
}

type RoomSize string

const (
	RoomSizeSmall  RoomSize = "small"
	RoomSizeMedium RoomSize = "medium"
	RoomSizeLarge  RoomSize = "large"
)

type AddRoomRequest struct {
	VenueName string
	RoomName  string
	Size      RoomSize
}

type RenameRoomRequest struct {
	VenueName string
	RoomName  string
	NewName   string
}

type ResizeRoomRequest struct {
	VenueName string
	RoomName  string
	NewSize   RoomSize
}

type RemoveRoomRequest struct {
	VenueName string
	RoomName  string
}

type ListOccupancyRequest struct {
	VenueName string
}

type ListOccupancyResponse struct {
	Rooms []RoomOccupancy
}

type RoomOccupancy struct {
	RoomName     string
	Reservations []ReservationSummary
}

type ReservationSummary struct {
	ReservationID string
	Start         time.Time
	End           time.Time
}
