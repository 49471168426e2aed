package venuesotel

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/castaneai/venues"
)

const (
	bookingOpKey     = attribute.Key("op")
	bookingStatusKey = attribute.Key("status")
)

var (
	bookingOpRequest = bookingOpKey.String("request")
	bookingOpChange  = bookingOpKey.String("change")

	bookingStatusOK       = bookingStatusKey.String("ok")
	bookingStatusRejected = bookingStatusKey.String("rejected")
	bookingStatusError    = bookingStatusKey.String("error")
)

type frontend struct {
	inner          venues.Frontend
	meterProvider  metric.MeterProvider
	bookingCount   metric.Int64Counter
	bookingLatency metric.Float64Histogram
}

// NewFrontend wraps a venues.Frontend with booking count and latency metrics,
// labelled by operation and outcome.
func NewFrontend(inner venues.Frontend) (venues.Frontend, error) {
	meterProvider := otel.GetMeterProvider()
	meter := meterProvider.Meter(scopeName)
	bookingCount, err := meter.Int64Counter("venues.booking.count_total")
	if err != nil {
		return nil, err
	}
	bookingLatency, err := meter.Float64Histogram("venues.booking_latency_seconds",
		metric.WithUnit("s"), metric.WithExplicitBucketBoundaries(latencyHistogramBuckets...))
	if err != nil {
		return nil, err
	}
	return &frontend{
		inner:          inner,
		meterProvider:  meterProvider,
		bookingCount:   bookingCount,
		bookingLatency: bookingLatency,
	}, nil
}

func (f *frontend) RequestBooking(ctx context.Context, req venues.BookingRequest) (*venues.BookingResponse, error) {
	return f.recordBooking(ctx, bookingOpRequest, func() (*venues.BookingResponse, error) {
		return f.inner.RequestBooking(ctx, req)
	})
}

func (f *frontend) ChangeBooking(ctx context.Context, req venues.BookingRequest) (*venues.BookingResponse, error) {
	return f.recordBooking(ctx, bookingOpChange, func() (*venues.BookingResponse, error) {
		return f.inner.ChangeBooking(ctx, req)
	})
}

func (f *frontend) CancelBooking(ctx context.Context, req venues.CancelBookingRequest) error {
	return f.inner.CancelBooking(ctx, req)
}

func (f *frontend) recordBooking(ctx context.Context, opAttr attribute.KeyValue, call func() (*venues.BookingResponse, error)) (*venues.BookingResponse, error) {
	statusAttr := bookingStatusOK
	start := time.Now()
	defer func() {
		f.bookingCount.Add(ctx, 1, metric.WithAttributes(opAttr, statusAttr))
		f.bookingLatency.Record(ctx, time.Since(start).Seconds(), metric.WithAttributes(opAttr, statusAttr))
	}()
	resp, err := call()
	if err != nil {
		if venues.ErrorHasStatus(err, venues.ErrorStatusResourceExhausted) {
			statusAttr = bookingStatusRejected
		} else {
			statusAttr = bookingStatusError
		}
		return nil, err
	}
	return resp, nil
}
