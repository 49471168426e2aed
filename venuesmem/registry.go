package venuesmem

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/castaneai/venues"
)

// Registry is the in-memory venue hire engine. It owns every venue in
// registration order and implements both the booking-facing venues.Frontend
// and the inventory-facing venues.Backend.
//
// All state lives in process memory; nothing survives a restart. Commands are
// expected to arrive strictly one at a time, but a single mutex serializes
// every operation so the registry stays consistent if a host drives it from
// multiple goroutines. In particular ChangeBooking's check-commit-cancel
// sequence executes under one lock acquisition.
type Registry struct {
	mu     sync.Mutex
	venues []*venue
}

func NewRegistry() *Registry {
	return &Registry{}
}

var (
	_ venues.Frontend = (*Registry)(nil)
	_ venues.Backend  = (*Registry)(nil)
)

func (r *Registry) AddRoom(ctx context.Context, req venues.AddRoomRequest) error {
	if req.VenueName == "" {
		return venues.NewError(venues.ErrorStatusInvalidRequest, errors.New("missing venue name"))
	}
	if req.RoomName == "" {
		return venues.NewError(venues.ErrorStatusInvalidRequest, errors.New("missing room name"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.getOrCreateVenue(req.VenueName)
	v.addRoom(req.RoomName, req.Size)
	return nil
}

func (r *Registry) RenameRoom(ctx context.Context, req venues.RenameRoomRequest) error {
	if req.NewName == "" {
		return venues.NewError(venues.ErrorStatusInvalidRequest, errors.New("missing new room name"))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, err := r.findRoom(req.VenueName, req.RoomName)
	if err != nil {
		return err
	}
	rm.rename(req.NewName)
	return nil
}

func (r *Registry) ResizeRoom(ctx context.Context, req venues.ResizeRoomRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	rm, err := r.findRoom(req.VenueName, req.RoomName)
	if err != nil {
		return err
	}
	rm.resize(req.NewSize)
	return nil
}

func (r *Registry) RemoveRoom(ctx context.Context, req venues.RemoveRoomRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.findVenue(req.VenueName)
	if v == nil {
		return venues.NewError(venues.ErrorStatusNotFound, fmt.Errorf("venue %q not found", req.VenueName))
	}
	rm := v.findRoom(req.RoomName)
	if rm == nil {
		return venues.NewError(venues.ErrorStatusNotFound, fmt.Errorf("room %q not found in venue %q", req.RoomName, req.VenueName))
	}
	v.removeRoom(rm)
	return nil
}

func (r *Registry) RequestBooking(ctx context.Context, req venues.BookingRequest) (*venues.BookingResponse, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findReservation(req.ReservationID) != nil {
		return nil, venues.NewError(venues.ErrorStatusInvalidRequest, fmt.Errorf("reservation id %q already exists", req.ReservationID))
	}
	return r.commitBooking(req)
}

func (r *Registry) ChangeBooking(ctx context.Context, req venues.BookingRequest) (*venues.BookingResponse, error) {
	if err := validateBookingRequest(req); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	old := r.findReservation(req.ReservationID)
	if old == nil {
		return nil, venues.NewError(venues.ErrorStatusNotFound, fmt.Errorf("reservation %q not found", req.ReservationID))
	}
	// Availability is evaluated while the old reservation still holds its
	// rooms. On rejection it stays untouched; on success the new reservation
	// is committed first and only then is the old one cancelled.
	resp, err := r.commitBooking(req)
	if err != nil {
		return nil, err
	}
	old.venue.cancelReservation(old)
	return resp, nil
}

func (r *Registry) CancelBooking(ctx context.Context, req venues.CancelBookingRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := r.findReservation(req.ReservationID)
	if res == nil {
		return venues.NewError(venues.ErrorStatusNotFound, fmt.Errorf("reservation %q not found", req.ReservationID))
	}
	res.venue.cancelReservation(res)
	return nil
}

func (r *Registry) ListOccupancy(ctx context.Context, req venues.ListOccupancyRequest) (*venues.ListOccupancyResponse, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v := r.findVenue(req.VenueName)
	if v == nil {
		return nil, venues.NewError(venues.ErrorStatusNotFound, fmt.Errorf("venue %q not found", req.VenueName))
	}
	resp := &venues.ListOccupancyResponse{}
	for _, rm := range v.rooms {
		occ := venues.RoomOccupancy{
			RoomName:     rm.name,
			Reservations: []venues.ReservationSummary{},
		}
		for _, res := range sortByStartDate(reservationsWithRoom(v.reservations, rm)) {
			occ.Reservations = append(occ.Reservations, venues.ReservationSummary{
				ReservationID: res.id,
				Start:         res.start,
				End:           res.end,
			})
		}
		resp.Rooms = append(resp.Rooms, occ)
	}
	return resp, nil
}

// commitBooking scans venues in registration order and commits the booking at
// the first venue that can satisfy it. Callers must hold r.mu.
func (r *Registry) commitBooking(req venues.BookingRequest) (*venues.BookingResponse, error) {
	for _, v := range r.venues {
		rooms, ok := v.availableRooms(req.Start, req.End, req.Small, req.Medium, req.Large)
		if !ok {
			continue
		}
		res := v.makeReservation(req.ReservationID, rooms, req.Start, req.End)
		roomNames := make([]string, 0, len(res.rooms))
		for _, rm := range res.rooms {
			roomNames = append(roomNames, rm.name)
		}
		return &venues.BookingResponse{
			ReservationID: res.id,
			VenueName:     v.name,
			RoomNames:     roomNames,
		}, nil
	}
	return nil, venues.NewError(venues.ErrorStatusResourceExhausted, fmt.Errorf("no venue can satisfy booking %q", req.ReservationID))
}

func (r *Registry) getOrCreateVenue(name string) *venue {
	if v := r.findVenue(name); v != nil {
		return v
	}
	v := newVenue(name)
	r.venues = append(r.venues, v)
	return v
}

func (r *Registry) findVenue(name string) *venue {
	for _, v := range r.venues {
		if v.name == name {
			return v
		}
	}
	return nil
}

func (r *Registry) findRoom(venueName, roomName string) (*room, error) {
	v := r.findVenue(venueName)
	if v == nil {
		return nil, venues.NewError(venues.ErrorStatusNotFound, fmt.Errorf("venue %q not found", venueName))
	}
	rm := v.findRoom(roomName)
	if rm == nil {
		return nil, venues.NewError(venues.ErrorStatusNotFound, fmt.Errorf("room %q not found in venue %q", roomName, venueName))
	}
	return rm, nil
}

func (r *Registry) findReservation(id string) *reservation {
	for _, v := range r.venues {
		if res := searchReservationByID(v.reservations, id); res != nil {
			return res
		}
	}
	return nil
}

func validateBookingRequest(req venues.BookingRequest) error {
	if req.ReservationID == "" {
		return venues.NewError(venues.ErrorStatusInvalidRequest, errors.New("missing reservation id"))
	}
	if req.End.Before(req.Start) {
		return venues.NewError(venues.ErrorStatusInvalidRequest, fmt.Errorf("end date %s is before start date %s", req.End.Format(time.DateOnly), req.Start.Format(time.DateOnly)))
	}
	if req.Small < 0 || req.Medium < 0 || req.Large < 0 {
		return venues.NewError(venues.ErrorStatusInvalidRequest, errors.New("negative room count"))
	}
	if req.Small+req.Medium+req.Large == 0 {
		return venues.NewError(venues.ErrorStatusInvalidRequest, errors.New("booking must request at least one room"))
	}
	return nil
}
