package venuescli

import (
	"time"

	"github.com/castaneai/venues"
)

const (
	statusSuccess  = "success"
	statusRejected = "rejected"
)

type bookingResultJSON struct {
	Status string   `json:"status"`
	Venue  string   `json:"venue,omitempty"`
	Rooms  []string `json:"rooms,omitempty"`
}

type roomOccupancyJSON struct {
	Room         string            `json:"room"`
	Reservations []reservationJSON `json:"reservations"`
}

type reservationJSON struct {
	ID    string `json:"id"`
	Start string `json:"start"`
	End   string `json:"end"`
}

func encodeBookingSuccess(resp *venues.BookingResponse) bookingResultJSON {
	return bookingResultJSON{
		Status: statusSuccess,
		Venue:  resp.VenueName,
		Rooms:  resp.RoomNames,
	}
}

func encodeBookingRejected() bookingResultJSON {
	return bookingResultJSON{Status: statusRejected}
}

// encodeOccupancy always emits a JSON array, and an empty (never null)
// reservations array per room.
func encodeOccupancy(resp *venues.ListOccupancyResponse) []roomOccupancyJSON {
	result := []roomOccupancyJSON{}
	for _, occ := range resp.Rooms {
		rj := roomOccupancyJSON{
			Room:         occ.RoomName,
			Reservations: []reservationJSON{},
		}
		for _, res := range occ.Reservations {
			rj.Reservations = append(rj.Reservations, reservationJSON{
				ID:    res.ReservationID,
				Start: res.Start.Format(time.DateOnly),
				End:   res.End.Format(time.DateOnly),
			})
		}
		result = append(result, rj)
	}
	return result
}
