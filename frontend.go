package venues

import (
	"context"
	"time"
)

type Frontend interface {
	// RequestBooking books rooms across the registered venues for an inclusive
	// date range. The first venue (in registration order) that can satisfy all
	// requested room counts wins. If no venue can satisfy the request, it
	// returns Error with code: ErrorStatusResourceExhausted.
	RequestBooking(ctx context.Context, req BookingRequest) (*BookingResponse, error)

	// ChangeBooking rebooks an existing reservation with new dates and room
	// counts, keeping its id. Availability is evaluated while the old
	// reservation still holds its rooms; on success the old reservation is
	// cancelled, on rejection it is left untouched.
	// If the reservation does not exist, Error is returned with code: ErrorStatusNotFound.
	ChangeBooking(ctx context.Context, req BookingRequest) (*BookingResponse, error)

	// CancelBooking removes a reservation and frees its rooms.
	// If the reservation does not exist, Error is returned with code: ErrorStatusNotFound.
	CancelBooking(ctx context.Context, req CancelBookingRequest) error
}

type BookingRequest struct {
	ReservationID string

	// Start and End are calendar dates, inclusive on both ends.
	Start time.Time
	End   time.Time

	// Requested room counts per size class.
	Small  int
	Medium int
	Large  int
}

type BookingResponse struct {
	ReservationID string
	VenueName     string
	RoomNames     []string
}

type CancelBookingRequest struct {
	ReservationID string
}
