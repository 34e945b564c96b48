package app

import (
	"context"
	"errors"
	"io"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/fibiter/internal/cli"
	apperrors "github.com/agbru/fibiter/internal/errors"
	"github.com/agbru/fibiter/internal/format"
	"github.com/agbru/fibiter/internal/logging"
	"github.com/agbru/fibiter/internal/metrics"
	"github.com/agbru/fibiter/internal/ui"
)

// Run computes F(Config.N) once, writes the result line to out and returns
// the process exit code. An invalid index is reported on ErrWriter.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)

	n := a.Config.N
	algo := a.Calculator.Name()
	_, span := a.Tracer.Start(ctx, "fibonacci.compute", trace.WithAttributes(
		attribute.Int64("fib.n", n),
		attribute.String("fib.algorithm", algo),
	))
	defer span.End()

	start := time.Now()
	res := a.Calculator.Compute(n)
	elapsed := time.Since(start)

	outcome := metrics.Outcome(res.IsValid())
	a.Metrics.ObserveComputation(n, outcome, elapsed)
	span.SetAttributes(attribute.String("fib.outcome", outcome))
	a.Logger.Debug("computation finished",
		logging.Int64("n", n),
		logging.String("algorithm", algo),
		logging.String("outcome", outcome),
		logging.String("duration", format.FormatExecutionDuration(elapsed)),
	)
	a.writeMetrics()

	if err := cli.DisplayResult(out, n, res); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		var validationErr apperrors.ValidationError
		if errors.As(err, &validationErr) {
			cli.DisplayInvalidInput(a.ErrWriter, n, err)
		} else {
			a.Logger.Error("failed to display result", err, logging.Int64("n", n))
		}
		return apperrors.ExitCodeFor(err)
	}
	return apperrors.ExitSuccess
}

// writeMetrics exports the registry to Config.MetricsFile when one is set.
// A failed export is logged and does not change the exit code.
func (a *Application) writeMetrics() {
	path := a.Config.MetricsFile
	if path == "" {
		return
	}
	if err := a.Metrics.WriteToTextfile(path); err != nil {
		a.Logger.Error("failed to write metrics", err, logging.String("path", path))
		return
	}
	a.Logger.Info("metrics written", logging.String("path", path))
}
