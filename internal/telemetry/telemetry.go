// Package telemetry wires OpenTelemetry trace and metric export over OTLP/gRPC.
package telemetry

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	grpcinsecure "google.golang.org/grpc/credentials/insecure"
)

// Options configures the exporters built by Setup.
type Options struct {
	// Endpoint is the OTLP/gRPC collector address, host:port.
	Endpoint string
	// ServiceName labels exported telemetry. Defaults to "vehicle-appraisal".
	ServiceName string
	// ServiceVersion is stamped onto the resource when set.
	ServiceVersion string
	// Insecure disables TLS on the collector connection.
	Insecure bool
	// MetricInterval is the periodic reader interval. Defaults to 30s.
	MetricInterval time.Duration
}

// ShutdownFunc flushes and stops all exporters started by Setup.
type ShutdownFunc func(context.Context) error

// Setup installs global tracer and meter providers exporting to an OTLP
// collector over a shared gRPC connection. The returned shutdown function
// must be called on exit; it flushes both pipelines, closes the connection,
// and joins any errors.
func Setup(ctx context.Context, opts Options) (ShutdownFunc, error) {
	if opts.Endpoint == "" {
		return nil, errors.New("telemetry endpoint is required")
	}
	if opts.ServiceName == "" {
		opts.ServiceName = "vehicle-appraisal"
	}
	if opts.MetricInterval <= 0 {
		opts.MetricInterval = 30 * time.Second
	}

	res, err := newResource(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("building telemetry resource: %w", err)
	}

	conn, err := dialCollector(opts)
	if err != nil {
		return nil, fmt.Errorf("connecting to collector %s: %w", opts.Endpoint, err)
	}

	tp, err := newTracerProvider(ctx, conn, res)
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("starting trace exporter: %w", err)
	}

	mp, err := newMeterProvider(ctx, conn, res, opts.MetricInterval)
	if err != nil {
		// Trace pipeline already started; tear it down before failing.
		_ = tp.Shutdown(ctx)
		_ = conn.Close()
		return nil, fmt.Errorf("starting metric exporter: %w", err)
	}

	otel.SetTracerProvider(tp)
	otel.SetMeterProvider(mp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	shutdown := func(ctx context.Context) error {
		return errors.Join(tp.Shutdown(ctx), mp.Shutdown(ctx), conn.Close())
	}
	return shutdown, nil
}

// dialCollector opens the gRPC connection both exporters share.
func dialCollector(opts Options) (*grpc.ClientConn, error) {
	creds := credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	if opts.Insecure {
		creds = grpcinsecure.NewCredentials()
	}
	return grpc.NewClient(opts.Endpoint, grpc.WithTransportCredentials(creds))
}

func newResource(ctx context.Context, opts Options) (*resource.Resource, error) {
	attrs := []resource.Option{
		resource.WithAttributes(semconv.ServiceName(opts.ServiceName)),
	}
	if opts.ServiceVersion != "" {
		attrs = append(attrs, resource.WithAttributes(semconv.ServiceVersion(opts.ServiceVersion)))
	}
	return resource.New(ctx, attrs...)
}

func newTracerProvider(ctx context.Context, conn *grpc.ClientConn, res *resource.Resource) (*sdktrace.TracerProvider, error) {
	exp, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	return sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exp),
		sdktrace.WithResource(res),
	), nil
}

func newMeterProvider(ctx context.Context, conn *grpc.ClientConn, res *resource.Resource, interval time.Duration) (*sdkmetric.MeterProvider, error) {
	exp, err := otlpmetricgrpc.New(ctx, otlpmetricgrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	return sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exp,
			sdkmetric.WithInterval(interval))),
		sdkmetric.WithResource(res),
	), nil
}
