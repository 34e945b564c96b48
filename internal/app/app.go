package app

import (
	"context"
	"fmt"
	"io"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fibiter/internal/config"
	"github.com/agbru/fibiter/internal/fibonacci"
	"github.com/agbru/fibiter/internal/logging"
	"github.com/agbru/fibiter/internal/metrics"
)

// TracerName identifies the spans emitted by the application.
const TracerName = "github.com/agbru/fibiter"

// Application represents the fibiter application instance.
type Application struct {
	Config     config.AppConfig
	Calculator fibonacci.Calculator
	Logger     logging.Logger
	Metrics    *metrics.Metrics
	Tracer     trace.Tracer
	ErrWriter  io.Writer

	tracerProvider *sdktrace.TracerProvider
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithConfig replaces the configuration loaded from the environment.
func WithConfig(cfg config.AppConfig) AppOption {
	return func(a *Application) { a.Config = cfg }
}

// WithCalculator sets the Calculator used by Run.
func WithCalculator(c fibonacci.Calculator) AppOption {
	return func(a *Application) { a.Calculator = c }
}

// WithLogger sets the logger. By default a zerolog logger writing to the
// error writer at the configured level is used.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithMetrics sets the Prometheus collectors.
func WithMetrics(m *metrics.Metrics) AppOption {
	return func(a *Application) { a.Metrics = m }
}

// WithTracer sets the tracer. By default an SDK provider is created that
// logs finished spans at debug level.
func WithTracer(t trace.Tracer) AppOption {
	return func(a *Application) { a.Tracer = t }
}

// New creates a new Application from the environment and the given options.
// Configuration errors are reported on errWriter and returned.
func New(errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{Config: config.LoadConfig(), ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	if err := app.Config.Validate(); err != nil {
		fmt.Fprintf(errWriter, "Configuration error: %v\n", err)
		return nil, err
	}

	if app.Calculator == nil {
		app.Calculator = fibonacci.NewCalculator()
	}
	if app.Logger == nil {
		level, _ := app.Config.Level()
		app.Logger = logging.NewLeveledLogger(errWriter, "fibiter", level)
	}
	if app.Metrics == nil {
		app.Metrics = metrics.NewMetrics()
	}
	if app.Tracer == nil {
		app.tracerProvider = newTracerProvider(app.Logger)
		app.Tracer = app.tracerProvider.Tracer(TracerName)
	}
	return app, nil
}

// Shutdown flushes and stops the tracer provider created by New. It does
// nothing when the tracer was supplied with WithTracer.
func (a *Application) Shutdown(ctx context.Context) error {
	if a.tracerProvider == nil {
		return nil
	}
	return a.tracerProvider.Shutdown(ctx)
}
