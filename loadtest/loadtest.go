package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"

	"github.com/castaneai/venues"
	"github.com/castaneai/venues/venuesmem"
	"github.com/castaneai/venues/venuesotel"
)

const (
	serviceName   = "venues_loadtest"
	venueCount    = 10
	roomsPerVenue = 30
)

func main() {
	ctx, shutdown := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer shutdown()

	otelRes, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		err := fmt.Errorf("failed to create otel resource: %w", err)
		slog.Error(err.Error(), "error", err)
		os.Exit(1)
	}
	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpointURL("http://localhost:4317"))
	if err != nil {
		err := fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		slog.Error(err.Error(), "error", err)
		os.Exit(1)
	}
	defer exporter.Shutdown(context.Background())
	otel.SetMeterProvider(metric.NewMeterProvider(
		metric.WithReader(metric.NewPeriodicReader(exporter, metric.WithInterval(10*time.Second))),
		metric.WithResource(otelRes),
	))

	registry := venuesmem.NewRegistry()
	sizes := []venues.RoomSize{venues.RoomSizeSmall, venues.RoomSizeMedium, venues.RoomSizeLarge}
	for v := 0; v < venueCount; v++ {
		for r := 0; r < roomsPerVenue; r++ {
			err := registry.AddRoom(ctx, venues.AddRoomRequest{
				VenueName: fmt.Sprintf("venue%d", v),
				RoomName:  fmt.Sprintf("room%d-%d", v, r),
				Size:      sizes[r%len(sizes)],
			})
			if err != nil {
				err := fmt.Errorf("failed to add room: %w", err)
				slog.Error(err.Error(), "error", err)
				os.Exit(1)
			}
		}
	}
	frontend, err := venuesotel.NewFrontend(registry)
	if err != nil {
		err := fmt.Errorf("failed to create venues Frontend: %w", err)
		slog.Error(err.Error(), "error", err)
		os.Exit(1)
	}

	slog.Info("venues loadtest is running...")

	baseDate := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	ticker := time.NewTicker(10 * time.Millisecond)
	i := 0
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			slog.Info("shutting down...")
			return
		case <-ticker.C:
			i++
			start := baseDate.AddDate(0, 0, i%365)
			req := venues.BookingRequest{
				ReservationID: fmt.Sprintf("booking%d", i),
				Start:         start,
				End:           start.AddDate(0, 0, 2),
				Small:         1,
				Medium:        i % 2,
				Large:         i % 3 % 2,
			}
			if _, err := frontend.RequestBooking(ctx, req); err != nil {
				if !venues.ErrorHasStatus(err, venues.ErrorStatusResourceExhausted) {
					err := fmt.Errorf("failed to request booking: %w", err)
					slog.Error(err.Error(), "error", err)
				}
			}
			// keep the pool from filling up for good
			if i > 100 {
				_ = frontend.CancelBooking(ctx, venues.CancelBookingRequest{ReservationID: fmt.Sprintf("booking%d", i-100)})
			}
		}
	}
}
