package venuescli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/castaneai/venues"
)

const (
	commandNameRoom    = "room"
	commandNameRequest = "request"
	commandNameChange  = "change"
	commandNameList    = "list"
	commandNameCancel  = "cancel"
)

// Command is one decoded input line. The concrete type selects the operation,
// so the engine never sees the raw JSON envelope.
type Command interface {
	commandName() string
}

type RoomCommand struct {
	VenueName string
	RoomName  string
	Size      venues.RoomSize
}

func (RoomCommand) commandName() string { return commandNameRoom }

type RequestCommand struct {
	Booking venues.BookingRequest
}

func (RequestCommand) commandName() string { return commandNameRequest }

type ChangeCommand struct {
	Booking venues.BookingRequest
}

func (ChangeCommand) commandName() string { return commandNameChange }

type ListCommand struct {
	VenueName string
}

func (ListCommand) commandName() string { return commandNameList }

type CancelCommand struct {
	ReservationID string
}

func (CancelCommand) commandName() string { return commandNameCancel }

// commandJSON is the superset envelope of all five command kinds; the
// "command" key selects which fields are meaningful.
type commandJSON struct {
	Command string `json:"command"`
	Venue   string `json:"venue"`
	Room    string `json:"room"`
	Size    string `json:"size"`
	ID      string `json:"id"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Small   int    `json:"small"`
	Medium  int    `json:"medium"`
	Large   int    `json:"large"`
}

// DecodeCommand decodes a single JSON command line into a Command. Dates must
// be ISO-8601 calendar dates (YYYY-MM-DD).
func DecodeCommand(line []byte) (Command, error) {
	var j commandJSON
	if err := json.Unmarshal(line, &j); err != nil {
		return nil, fmt.Errorf("failed to decode command: %w", err)
	}
	switch j.Command {
	case commandNameRoom:
		return RoomCommand{VenueName: j.Venue, RoomName: j.Room, Size: venues.RoomSize(j.Size)}, nil
	case commandNameRequest, commandNameChange:
		start, err := time.Parse(time.DateOnly, j.Start)
		if err != nil {
			return nil, fmt.Errorf("failed to parse start date %q: %w", j.Start, err)
		}
		end, err := time.Parse(time.DateOnly, j.End)
		if err != nil {
			return nil, fmt.Errorf("failed to parse end date %q: %w", j.End, err)
		}
		booking := venues.BookingRequest{
			ReservationID: j.ID,
			Start:         start,
			End:           end,
			Small:         j.Small,
			Medium:        j.Medium,
			Large:         j.Large,
		}
		if j.Command == commandNameRequest {
			return RequestCommand{Booking: booking}, nil
		}
		return ChangeCommand{Booking: booking}, nil
	case commandNameList:
		return ListCommand{VenueName: j.Venue}, nil
	case commandNameCancel:
		return CancelCommand{ReservationID: j.ID}, nil
	default:
		return nil, fmt.Errorf("unknown command %q", j.Command)
	}
}
