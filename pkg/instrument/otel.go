package instrument

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/sigil-dev/sigil"
)

// Default tracer name for sigil graphs.
const defaultTracerName = "sigil"

// TraceConfig configures the OpenTelemetry instrumentation.
type TraceConfig struct {
	// TracerName is the name of the tracer (default: "sigil").
	TracerName string

	// Attributes are static attributes attached to every span.
	Attributes []attribute.KeyValue

	// SpanOnCachedRead also opens spans for reads served from cache.
	// Default: only recomputing reads are traced.
	SpanOnCachedRead bool

	// tracer is the resolved tracer instance.
	tracer trace.Tracer
}

// TraceOption configures the OpenTelemetry instrumentation.
type TraceOption func(*TraceConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TraceOption {
	return func(c *TraceConfig) {
		c.TracerName = name
	}
}

// WithAttributes sets static attributes added to every span.
func WithAttributes(attrs ...attribute.KeyValue) TraceOption {
	return func(c *TraceConfig) {
		c.Attributes = attrs
	}
}

// WithSpanOnCachedRead enables spans for cache-served reads as well.
func WithSpanOnCachedRead(enabled bool) TraceOption {
	return func(c *TraceConfig) {
		c.SpanOnCachedRead = enabled
	}
}

// WithTracer sets an explicit tracer, bypassing the global provider.
func WithTracer(tracer trace.Tracer) TraceOption {
	return func(c *TraceConfig) {
		c.tracer = tracer
	}
}

// TracedDerived wraps a sigil.Derived and opens a span around every read
// that recomputes. Cache-served reads produce no span. The wrapper
// satisfies the Source capability so traced views compose into graphs.
type TracedDerived[G comparable, V, O any] struct {
	inner  *sigil.Derived[G, V, O]
	name   string
	config TraceConfig
}

// TraceDerived wraps d. The view's name is attached to every span as the
// sigil.derived attribute.
func TraceDerived[G comparable, V, O any](name string, d *sigil.Derived[G, V, O], opts ...TraceOption) *TracedDerived[G, V, O] {
	config := TraceConfig{
		TracerName: defaultTracerName,
	}
	for _, opt := range opts {
		opt(&config)
	}
	if config.tracer == nil {
		config.tracer = otel.Tracer(config.TracerName)
	}

	return &TracedDerived[G, V, O]{
		inner:  d,
		name:   name,
		config: config,
	}
}

// Get returns the view's output. A read that recomputes runs inside a
// "sigil.recompute" span; with WithSpanOnCachedRead, cache-served reads
// open a "sigil.read" span instead. Spans carry the view name, a
// sigil.stale attribute and the configured static attributes.
func (d *TracedDerived[G, V, O]) Get(ctx context.Context) O {
	stale := d.inner.InputChanged()
	if !stale && !d.config.SpanOnCachedRead {
		return d.inner.Get()
	}

	spanName := "sigil.read"
	if stale {
		spanName = "sigil.recompute"
	}
	_, span := d.config.tracer.Start(ctx, spanName,
		trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()

	span.SetAttributes(
		attribute.String("sigil.derived", d.name),
		attribute.Bool("sigil.stale", stale),
	)
	if len(d.config.Attributes) > 0 {
		span.SetAttributes(d.config.Attributes...)
	}

	return d.inner.Get()
}

// InputChanged reports whether the wrapped view is stale.
func (d *TracedDerived[G, V, O]) InputChanged() bool {
	return d.inner.InputChanged()
}

// Generation returns the wrapped view's output-cell counter.
func (d *TracedDerived[G, V, O]) Generation() sigil.Generation {
	return d.inner.Generation()
}

// Value returns the cached output without checking staleness.
func (d *TracedDerived[G, V, O]) Value() O {
	return d.inner.Value()
}

// Unwrap returns the underlying derived view.
func (d *TracedDerived[G, V, O]) Unwrap() *sigil.Derived[G, V, O] {
	return d.inner
}

var _ sigil.Source[sigil.Generation, int] = (*TracedDerived[sigil.Generation, int, int])(nil)
