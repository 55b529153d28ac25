// Package telemetry initializes OpenTelemetry tracing and metrics with OTLP
// exporters over gRPC. It registers global providers so instrumented packages
// can call otel.Tracer and otel.Meter directly, and returns a ShutdownFunc that
// flushes both pipelines. When Init is never called the global no-op
// providers stay in place.
package telemetry

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdkresource "go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.34.0"
)

// config holds exporter settings shared by the trace and metric pipelines.
type config struct {
	endpoint string // collector host:port, empty uses the OTEL_EXPORTER_OTLP_ENDPOINT default
	insecure bool   // disable TLS towards the collector
}

// Option configures the exporters created by Init.
type Option func(*config)

// WithEndpoint sets the collector address (host:port) for both exporters.
func WithEndpoint(endpoint string) Option {
	return func(c *config) {
		c.endpoint = endpoint
	}
}

// WithInsecure disables TLS towards the collector.
func WithInsecure() Option {
	return func(c *config) {
		c.insecure = true
	}
}

func (c config) metricOptions() []otlpmetricgrpc.Option {
	var opts []otlpmetricgrpc.Option
	if c.endpoint != "" {
		opts = append(opts, otlpmetricgrpc.WithEndpoint(c.endpoint))
	}
	if c.insecure {
		opts = append(opts, otlpmetricgrpc.WithInsecure())
	}
	return opts
}

func (c config) traceOptions() []otlptracegrpc.Option {
	var opts []otlptracegrpc.Option
	if c.endpoint != "" {
		opts = append(opts, otlptracegrpc.WithEndpoint(c.endpoint))
	}
	if c.insecure {
		opts = append(opts, otlptracegrpc.WithInsecure())
	}
	return opts
}

// initMeterProvider sets up an OTLP gRPC MeterProvider using a
// periodic reader and the given Resource. It also registers the
// provider as the global MeterProvider.
func initMeterProvider(ctx context.Context, res *sdkresource.Resource, cfg config) (*sdkmetric.MeterProvider, error) {
	exporter, err := otlpmetricgrpc.New(ctx, cfg.metricOptions()...)
	if err != nil {
		return nil, err
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)
	return mp, nil
}

// initTracerProvider sets up an OTLP gRPC TracerProvider using a
// batched exporter and the given Resource. It also registers the
// provider as the global TracerProvider.
func initTracerProvider(ctx context.Context, res *sdkresource.Resource, cfg config) (*sdktrace.TracerProvider, error) {
	exporter, err := otlptracegrpc.New(ctx, cfg.traceOptions()...)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	return tp, nil
}

// newResource constructs an OpenTelemetry Resource by merging the default
// system resource with a ServiceName attribute for the given service.
func newResource(serviceName string) (*sdkresource.Resource, error) {
	return sdkresource.Merge(
		sdkresource.Default(),
		sdkresource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

// ShutdownFunc defines a callback to flush and stop all telemetry providers.
// Call this function at application shutdown to ensure all telemetry is sent.
type ShutdownFunc func(ctx context.Context) error

// Init configures OpenTelemetry metrics and traces for serviceName.
//
// The returned ShutdownFunc flushes and stops both providers. If the tracer
// provider fails to start, the already created meter provider is shut down
// before returning the error.
func Init(ctx context.Context, serviceName string, opts ...Option) (ShutdownFunc, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := newResource(serviceName)
	if err != nil {
		return nil, err
	}

	mp, err := initMeterProvider(ctx, res, cfg)
	if err != nil {
		return nil, err
	}

	tp, err := initTracerProvider(ctx, res, cfg)
	if err != nil {
		return nil, errors.Join(err, mp.Shutdown(ctx))
	}

	return func(ctx context.Context) error {
		return errors.Join(
			mp.Shutdown(ctx),
			tp.Shutdown(ctx),
		)
	}, nil
}
