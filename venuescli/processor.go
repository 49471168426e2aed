package venuescli

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/castaneai/venues"
)

const outputIndent = "  "

// Processor drives the engine from a stream of line-delimited JSON commands,
// writing pretty-printed JSON results in command order. It is strictly
// sequential: one command finishes before the next line is read.
type Processor struct {
	frontend venues.Frontend
	backend  venues.Backend
	out      io.Writer
}

func NewProcessor(frontend venues.Frontend, backend venues.Backend, out io.Writer) *Processor {
	return &Processor{frontend: frontend, backend: backend, out: out}
}

// Run consumes commands from in until end-of-stream. Blank lines are skipped.
// The first malformed line stops the run with an error naming the line number.
func (p *Processor) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		cmd, err := DecodeCommand([]byte(line))
		if err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
		if err := p.process(ctx, cmd); err != nil {
			return fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}
	return nil
}

func (p *Processor) process(ctx context.Context, cmd Command) error {
	switch c := cmd.(type) {
	case RoomCommand:
		return p.backend.AddRoom(ctx, venues.AddRoomRequest{
			VenueName: c.VenueName,
			RoomName:  c.RoomName,
			Size:      c.Size,
		})
	case RequestCommand:
		resp, err := p.frontend.RequestBooking(ctx, c.Booking)
		return p.writeBookingResult(resp, err)
	case ChangeCommand:
		resp, err := p.frontend.ChangeBooking(ctx, c.Booking)
		return p.writeBookingResult(resp, err)
	case ListCommand:
		resp, err := p.backend.ListOccupancy(ctx, venues.ListOccupancyRequest{VenueName: c.VenueName})
		if err != nil {
			if venues.ErrorHasStatus(err, venues.ErrorStatusNotFound) {
				slog.Warn(fmt.Sprintf("list for unknown venue %q", c.VenueName))
				return p.writeJSON([]roomOccupancyJSON{})
			}
			return err
		}
		return p.writeJSON(encodeOccupancy(resp))
	case CancelCommand:
		err := p.frontend.CancelBooking(ctx, venues.CancelBookingRequest{ReservationID: c.ReservationID})
		if err != nil && !venues.ErrorHasStatus(err, venues.ErrorStatusNotFound) {
			return err
		}
		// cancelling an unknown reservation is a no-op
		return nil
	default:
		return fmt.Errorf("unhandled command %q", cmd.commandName())
	}
}

// writeBookingResult maps the engine outcome of a request/change to the
// success/rejected output contract. A booking no venue can satisfy is a
// normal outcome, not a fault; not-found and invalid bookings are also
// reported as rejections, with a warning.
func (p *Processor) writeBookingResult(resp *venues.BookingResponse, err error) error {
	if err != nil {
		if venues.ErrorHasStatus(err, venues.ErrorStatusResourceExhausted) {
			return p.writeJSON(encodeBookingRejected())
		}
		if venues.ErrorHasStatus(err, venues.ErrorStatusNotFound) || venues.ErrorHasStatus(err, venues.ErrorStatusInvalidRequest) {
			slog.Warn(fmt.Sprintf("booking rejected: %v", err))
			return p.writeJSON(encodeBookingRejected())
		}
		return err
	}
	return p.writeJSON(encodeBookingSuccess(resp))
}

func (p *Processor) writeJSON(v any) error {
	out, err := json.MarshalIndent(v, "", outputIndent)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	if _, err := fmt.Fprintln(p.out, string(out)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
