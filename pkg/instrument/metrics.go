package instrument

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/sigil-dev/sigil"
)

// MetricsConfig configures the Prometheus instrumentation.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "sigil").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for recompute duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus instrumentation.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the recompute-duration histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

// defaultMetricsConfig returns the default metrics configuration.
func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace:   "sigil",
		Subsystem:   "",
		ConstLabels: nil,
		Buckets:     prometheus.DefBuckets,
		Registry:    prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors shared by instrumented signals
// and derived views. One Metrics value typically serves a whole graph;
// individual wrappers are distinguished by their "name" label.
type Metrics struct {
	writesTotal          *prometheus.CounterVec
	readsTotal           *prometheus.CounterVec
	recomputesTotal      *prometheus.CounterVec
	cachedReadsTotal     *prometheus.CounterVec
	stalenessChecksTotal *prometheus.CounterVec
	recomputeDuration    *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with the configured
// registry.
//
// Metrics collected:
//   - sigil_signal_writes_total: Counter of mutations by signal name
//   - sigil_signal_reads_total: Counter of reads by signal name
//   - sigil_derived_recomputes_total: Counter of recomputations by view name
//   - sigil_derived_cached_reads_total: Counter of reads served from cache
//   - sigil_derived_staleness_checks_total: Counter of generation comparisons
//   - sigil_derived_recompute_duration_seconds: Histogram of recompute time
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		writesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "signal_writes_total",
			Help:        "Total number of signal mutations",
			ConstLabels: config.ConstLabels,
		}, []string{"name"}),

		readsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "signal_reads_total",
			Help:        "Total number of signal reads",
			ConstLabels: config.ConstLabels,
		}, []string{"name"}),

		recomputesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "derived_recomputes_total",
			Help:        "Total number of derived-view recomputations",
			ConstLabels: config.ConstLabels,
		}, []string{"name"}),

		cachedReadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "derived_cached_reads_total",
			Help:        "Total number of derived-view reads served from cache",
			ConstLabels: config.ConstLabels,
		}, []string{"name"}),

		stalenessChecksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "derived_staleness_checks_total",
			Help:        "Total number of derived-view staleness comparisons",
			ConstLabels: config.ConstLabels,
		}, []string{"name"}),

		recomputeDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "derived_recompute_duration_seconds",
			Help:        "Derived-view recompute duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"name"}),
	}
}

// Signal wraps a sigil.Signal and counts reads and writes as it forwards
// them. It satisfies the Source capability, so derived views can read it
// directly.
type Signal[T any] struct {
	inner *sigil.Signal[T]
	m     *Metrics
	name  string
}

// NewSignal wraps s with counting under the given name label.
func NewSignal[T any](m *Metrics, name string, s *sigil.Signal[T]) *Signal[T] {
	return &Signal[T]{inner: s, m: m, name: name}
}

// Get returns the current value, counting a read.
func (s *Signal[T]) Get() T {
	s.m.readsTotal.WithLabelValues(s.name).Inc()
	return s.inner.Get()
}

// Set replaces the value, counting a write.
func (s *Signal[T]) Set(value T) {
	s.m.writesTotal.WithLabelValues(s.name).Inc()
	s.inner.Set(value)
}

// Update replaces the value with fn(current), counting a write.
func (s *Signal[T]) Update(fn func(T) T) {
	s.m.writesTotal.WithLabelValues(s.name).Inc()
	s.inner.Update(fn)
}

// GetMut advances the generation and returns a pointer to the value,
// counting a write.
func (s *Signal[T]) GetMut() *T {
	s.m.writesTotal.WithLabelValues(s.name).Inc()
	return s.inner.GetMut()
}

// Generation returns the wrapped signal's generation counter.
func (s *Signal[T]) Generation() sigil.Generation {
	return s.inner.Generation()
}

// Value returns the current value, counting a read.
func (s *Signal[T]) Value() T {
	return s.Get()
}

// Unwrap returns the underlying signal.
func (s *Signal[T]) Unwrap() *sigil.Signal[T] {
	return s.inner
}

// Derived wraps a sigil.Derived and counts cache hits, recomputations and
// recompute duration. It satisfies the Source capability, so further views
// can derive from it.
type Derived[G comparable, V, O any] struct {
	inner *sigil.Derived[G, V, O]
	m     *Metrics
	name  string
}

// NewDerived wraps d with counting under the given name label.
func NewDerived[G comparable, V, O any](m *Metrics, name string, d *sigil.Derived[G, V, O]) *Derived[G, V, O] {
	return &Derived[G, V, O]{inner: d, m: m, name: name}
}

// Get returns the view's output. A read that recomputes is counted and
// timed; a read served from cache increments the cached-read counter.
// Either way the staleness comparison itself is counted.
func (d *Derived[G, V, O]) Get() O {
	if !d.InputChanged() {
		d.m.cachedReadsTotal.WithLabelValues(d.name).Inc()
		return d.inner.Get()
	}

	start := time.Now()
	out := d.inner.Get()
	d.m.recomputeDuration.WithLabelValues(d.name).Observe(time.Since(start).Seconds())
	d.m.recomputesTotal.WithLabelValues(d.name).Inc()
	return out
}

// InputChanged reports whether the wrapped view is stale, counting the
// comparison.
func (d *Derived[G, V, O]) InputChanged() bool {
	d.m.stalenessChecksTotal.WithLabelValues(d.name).Inc()
	return d.inner.InputChanged()
}

// Generation returns the wrapped view's output-cell counter.
func (d *Derived[G, V, O]) Generation() sigil.Generation {
	return d.inner.Generation()
}

// Value returns the cached output without checking staleness.
func (d *Derived[G, V, O]) Value() O {
	return d.inner.Value()
}

// Unwrap returns the underlying derived view.
func (d *Derived[G, V, O]) Unwrap() *sigil.Derived[G, V, O] {
	return d.inner
}

var (
	_ sigil.Source[sigil.Generation, int] = (*Signal[int])(nil)
	_ sigil.Source[sigil.Generation, int] = (*Derived[sigil.Generation, int, int])(nil)
)
