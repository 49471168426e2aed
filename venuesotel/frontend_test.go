package venuesotel

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/castaneai/venues"
	"github.com/castaneai/venues/venuesmem"
)

func mustDate(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestFrontendBookingMetrics(t *testing.T) {
	ctx := t.Context()
	reader := sdkmetric.NewManualReader()
	otel.SetMeterProvider(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))

	registry := venuesmem.NewRegistry()
	require.NoError(t, registry.AddRoom(ctx, venues.AddRoomRequest{VenueName: "Zoo", RoomName: "Penguin", Size: venues.RoomSizeSmall}))
	frontend, err := NewFrontend(registry)
	require.NoError(t, err)

	_, err = frontend.RequestBooking(ctx, venues.BookingRequest{ReservationID: "r1", Start: mustDate("2024-01-01"), End: mustDate("2024-01-03"), Small: 1})
	require.NoError(t, err)
	_, err = frontend.RequestBooking(ctx, venues.BookingRequest{ReservationID: "r2", Start: mustDate("2024-01-02"), End: mustDate("2024-01-05"), Small: 1})
	require.True(t, venues.ErrorHasStatus(err, venues.ErrorStatusResourceExhausted))
	_, err = frontend.ChangeBooking(ctx, venues.BookingRequest{ReservationID: "ghost", Start: mustDate("2024-02-01"), End: mustDate("2024-02-03"), Small: 1})
	require.True(t, venues.ErrorHasStatus(err, venues.ErrorStatusNotFound))

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))
	require.Equal(t, int64(1), bookingCountValue(t, &rm, "request", "ok"))
	require.Equal(t, int64(1), bookingCountValue(t, &rm, "request", "rejected"))
	require.Equal(t, int64(1), bookingCountValue(t, &rm, "change", "error"))
}

func bookingCountValue(t *testing.T, rm *metricdata.ResourceMetrics, op, status string) int64 {
	t.Helper()
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "venues.booking.count_total" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok)
			for _, dp := range sum.DataPoints {
				opVal, _ := dp.Attributes.Value(attribute.Key("op"))
				statusVal, _ := dp.Attributes.Value(attribute.Key("status"))
				if opVal.AsString() == op && statusVal.AsString() == status {
					return dp.Value
				}
			}
		}
	}
	t.Fatalf("no booking count datapoint for op=%s status=%s", op, status)
	return 0
}
