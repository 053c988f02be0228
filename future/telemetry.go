package future

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// tracer and meter are obtained from the global OpenTelemetry providers.
// Until an embedding application starts telemetry/trace.Provider or
// telemetry/metric.Provider, these record against the no-op providers, so
// instrumentation is always safe to leave enabled.
var (
	tracer = otel.Tracer("future")
	meter  = otel.Meter("future")

	resolvedCounter, _  = meter.Int64Counter("future.resolved")
	failedCounter, _    = meter.Int64Counter("future.failed")
	cancelledCounter, _ = meter.Int64Counter("future.cancelled")
)

// startSpan begins a span named after the combinator constructing a
// downstream Future. The span ends when that Future reaches a terminal
// state; see state.settle.
func startSpan(name string) trace.Span {
	_, span := tracer.Start(context.Background(), name)
	return span
}

// recordTerminal increments the counter matching st.
func recordTerminal(st State) {
	ctx := context.Background()
	switch st {
	case Done:
		resolvedCounter.Add(ctx, 1)
	case Failed:
		failedCounter.Add(ctx, 1)
	case Cancelled:
		cancelledCounter.Add(ctx, 1)
	}
}
