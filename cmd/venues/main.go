package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	semconv "go.opentelemetry.io/otel/semconv/v1.30.0"

	"github.com/castaneai/venues/venuescli"
	"github.com/castaneai/venues/venuesmem"
	"github.com/castaneai/venues/venuesotel"
)

const serviceName = "venues"

var version = "dev"

type config struct {
	// When set, booking metrics are exported over OTLP gRPC.
	OTLPEndpoint   string        `envconfig:"OTLP_ENDPOINT"`
	MetricInterval time.Duration `envconfig:"METRIC_INTERVAL" default:"10s"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "venues",
		Short: "In-memory venue hire system driven by line-delimited JSON commands on stdin",
		RunE:  runProcessor,
	}
	root.AddCommand(newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version info",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("venues %s\n", version)
		},
	}
}

func runProcessor(cmd *cobra.Command, args []string) error {
	var conf config
	envconfig.MustProcess("VENUES", &conf)

	ctx, shutdown := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer shutdown()

	if conf.OTLPEndpoint != "" {
		cleanup, err := setupMetrics(ctx, &conf)
		if err != nil {
			return fmt.Errorf("failed to set up metrics: %w", err)
		}
		defer cleanup()
	}

	registry := venuesmem.NewRegistry()
	frontend, err := venuesotel.NewFrontend(registry)
	if err != nil {
		return fmt.Errorf("failed to create frontend: %w", err)
	}

	processor := venuescli.NewProcessor(frontend, registry, cmd.OutOrStdout())
	if err := processor.Run(ctx, cmd.InOrStdin()); err != nil {
		return fmt.Errorf("failed to process commands: %w", err)
	}
	return nil
}

func setupMetrics(ctx context.Context, conf *config) (func(), error) {
	otelRes, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return nil, fmt.Errorf("failed to create otel resource: %w", err)
	}
	exporter, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithEndpointURL(conf.OTLPEndpoint))
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
	}
	provider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(conf.MetricInterval))),
		sdkmetric.WithResource(otelRes),
	)
	otel.SetMeterProvider(provider)
	return func() {
		if err := provider.Shutdown(context.Background()); err != nil {
			slog.Error(err.Error(), "error", err)
		}
	}, nil
}
